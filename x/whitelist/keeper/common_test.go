package keeper_test

import (
	"testing"
	"time"

	"github.com/cometbft/cometbft/crypto/secp256k1"
	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"

	"github.com/initia-labs/whitelist-hook/x/whitelist/config"
	"github.com/initia-labs/whitelist-hook/x/whitelist/keeper"
	"github.com/initia-labs/whitelist-hook/x/whitelist/testutil"
	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

var programID = types.MustPubkeyFromBase58(config.DefaultProgramID)

func makeCodec() codec.Codec {
	encodingConfig := moduletestutil.MakeTestEncodingConfig()
	types.RegisterInterfaces(encodingConfig.InterfaceRegistry)
	types.RegisterLegacyAminoCodec(encodingConfig.Amino)
	return encodingConfig.Codec
}

func createTestInput(t testing.TB) (sdk.Context, *keeper.Keeper) {
	ctrl := gomock.NewController(t)
	bankKeeper := testutil.NewMockBankKeeper(ctrl)
	bankKeeper.EXPECT().
		SendCoinsFromAccountToModule(gomock.Any(), gomock.Any(), types.ModuleName, gomock.Any()).
		Return(nil).
		AnyTimes()

	return _createTestInput(t, dbm.NewMemDB(), bankKeeper)
}

func _createTestInput(
	t testing.TB,
	db dbm.DB,
	bankKeeper types.BankKeeper,
) (sdk.Context, *keeper.Keeper) {
	keys := storetypes.NewKVStoreKeys(types.StoreKey)
	ms := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	for _, v := range keys {
		ms.MountStoreWithDB(v, storetypes.StoreTypeIAVL, db)
	}

	require.NoError(t, ms.LoadLatestVersion())

	ctx := sdk.NewContext(ms, tmproto.Header{
		Height: 1234567,
		Time:   time.Date(2020, time.April, 22, 12, 0, 0, 0, time.UTC),
	}, false, log.NewNopLogger())

	ac := address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix())
	whitelistKeeper := keeper.NewKeeper(
		makeCodec(),
		runtime.NewKVStoreService(keys[types.StoreKey]),
		bankKeeper,
		ac,
		programID,
	)

	require.NoError(t, whitelistKeeper.Params.Set(ctx, types.DefaultParams()))

	return ctx, whitelistKeeper
}

// minimumBalance returns the rent of an account of space bytes under the default params.
func minimumBalance(t testing.TB, space int) uint64 {
	balance, err := types.DefaultParams().MinimumBalance(space)
	require.NoError(t, err)
	return balance
}

func newPubkey(t testing.TB) types.Pubkey {
	addr := sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
	pk, err := types.PubkeyFromAccAddress(addr)
	require.NoError(t, err)
	return pk
}

func mintPubkey(seed byte) types.Pubkey {
	var mint types.Pubkey
	for i := range mint {
		mint[i] = seed + byte(i)
	}
	return mint
}

func hasEvent(ctx sdk.Context, eventType string) bool {
	for _, event := range ctx.EventManager().Events() {
		if event.Type == eventType {
			return true
		}
	}
	return false
}

// transferHookAccounts returns the accounts the token program passes to Execute.
func transferHookAccounts(t testing.TB, k *keeper.Keeper, mint, owner types.Pubkey) []types.AccountMeta {
	metaListAddr, err := k.ExtraAccountMetaListAddress(mint)
	require.NoError(t, err)

	return []types.AccountMeta{
		types.NewAccountMeta(newPubkey(t), false),
		types.NewReadonlyAccountMeta(mint, false),
		types.NewAccountMeta(newPubkey(t), false),
		types.NewReadonlyAccountMeta(owner, true),
		types.NewReadonlyAccountMeta(metaListAddr, false),
		types.NewAccountMeta(k.WhitelistStateAddress(), false),
	}
}
