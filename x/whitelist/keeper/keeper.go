package keeper

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	corestoretypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

type Keeper struct {
	cdc          codec.Codec
	storeService corestoretypes.KVStoreService

	Schema   collections.Schema
	Accounts collections.Map[[]byte, types.Account]
	Params   collections.Item[types.Params]

	bankKeeper types.BankKeeper

	// programID is the identity the program owned accounts are derived under.
	programID          types.Pubkey
	whitelistStateAddr types.Pubkey

	ac address.Codec
}

// NewKeeper creates a new whitelist Keeper instance
func NewKeeper(
	cdc codec.Codec,
	storeService corestoretypes.KVStoreService,
	bankKeeper types.BankKeeper,
	ac address.Codec,
	programID types.Pubkey,
) *Keeper {
	if programID.IsZero() {
		panic("program id must be set")
	}

	whitelistStateAddr, _, err := types.WhitelistStateAddress(programID)
	if err != nil {
		panic(err)
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := &Keeper{
		cdc:          cdc,
		storeService: storeService,

		Accounts: collections.NewMap(sb, types.AccountsPrefix, "accounts", collections.BytesKey, types.AccountValueCodec{}),
		Params:   collections.NewItem(sb, types.ParamsKey, "params", codec.CollValue[types.Params](cdc)),

		bankKeeper: bankKeeper,

		programID:          programID,
		whitelistStateAddr: whitelistStateAddr,

		ac: ac,
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema
	return k
}

// ProgramID returns the identity the program owned accounts are derived under.
func (k Keeper) ProgramID() types.Pubkey {
	return k.programID
}

// WhitelistStateAddress returns the address of the whitelist state account.
func (k Keeper) WhitelistStateAddress() types.Pubkey {
	return k.whitelistStateAddr
}

// ExtraAccountMetaListAddress returns the address of the extra account meta list of mint.
func (k Keeper) ExtraAccountMetaListAddress(mint types.Pubkey) (types.Pubkey, error) {
	addr, _, err := types.ExtraAccountMetaListAddress(mint, k.programID)
	return addr, err
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// Atomic runs fn on a branch of the store which is written back, together with the
// emitted events, only if fn succeeds.
func (k Keeper) Atomic(ctx context.Context, fn func(ctx context.Context) error) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}

	write()
	return nil
}
