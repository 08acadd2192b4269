package keeper_test

import (
	"testing"
	"time"

	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/stretchr/testify/require"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"
	"github.com/cosmos/cosmos-sdk/x/auth"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/cosmos/cosmos-sdk/x/bank"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"

	"github.com/initia-labs/whitelist-hook/x/whitelist/keeper"
	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

// createBankTestInput wires the whitelist keeper into a bank keeper the way an
// app does: rent is paid through bank and every send runs the transfer hook.
func createBankTestInput(t testing.TB) (sdk.Context, *keeper.Keeper, bankkeeper.BaseKeeper) {
	keys := storetypes.NewKVStoreKeys(authtypes.StoreKey, banktypes.StoreKey, types.StoreKey)
	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	for _, v := range keys {
		ms.MountStoreWithDB(v, storetypes.StoreTypeIAVL, db)
	}

	require.NoError(t, ms.LoadLatestVersion())

	ctx := sdk.NewContext(ms, tmproto.Header{
		Height: 1234567,
		Time:   time.Date(2020, time.April, 22, 12, 0, 0, 0, time.UTC),
	}, false, log.NewNopLogger())

	encodingConfig := moduletestutil.MakeTestEncodingConfig(auth.AppModuleBasic{}, bank.AppModuleBasic{})
	types.RegisterInterfaces(encodingConfig.InterfaceRegistry)
	appCodec := encodingConfig.Codec

	maccPerms := map[string][]string{
		minttypes.ModuleName: {authtypes.Minter},
		types.ModuleName:     nil,
	}

	bech32Prefix := sdk.GetConfig().GetBech32AccountAddrPrefix()
	ac := address.NewBech32Codec(bech32Prefix)
	authorityAddr := authtypes.NewModuleAddress(govtypes.ModuleName).String()

	accountKeeper := authkeeper.NewAccountKeeper(
		appCodec,
		runtime.NewKVStoreService(keys[authtypes.StoreKey]),
		authtypes.ProtoBaseAccount,
		maccPerms,
		ac,
		bech32Prefix,
		authorityAddr,
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		appCodec,
		runtime.NewKVStoreService(keys[banktypes.StoreKey]),
		accountKeeper,
		map[string]bool{},
		authorityAddr,
		log.NewNopLogger(),
	)
	require.NoError(t, bankKeeper.SetParams(ctx, banktypes.DefaultParams()))

	whitelistKeeper := keeper.NewKeeper(
		appCodec,
		runtime.NewKVStoreService(keys[types.StoreKey]),
		bankKeeper,
		ac,
		programID,
	)
	require.NoError(t, whitelistKeeper.Params.Set(ctx, types.DefaultParams()))

	bankKeeper.AppendSendRestriction(whitelistKeeper.SendRestrictionFn)

	return ctx, whitelistKeeper, bankKeeper
}

func fundAccount(t testing.TB, ctx sdk.Context, bankKeeper bankkeeper.BaseKeeper, addr sdk.AccAddress, amt sdk.Coins) {
	require.NoError(t, bankKeeper.MintCoins(ctx, minttypes.ModuleName, amt))
	require.NoError(t, bankKeeper.SendCoinsFromModuleToAccount(ctx, minttypes.ModuleName, addr, amt))
}

func Test_BankSend_TransferHook(t *testing.T) {
	ctx, k, bankKeeper := createBankTestInput(t)
	ms := keeper.NewMsgServerImpl(k)

	admin := newPubkey(t)
	sender := newPubkey(t)
	stranger := newPubkey(t)
	recipient := types.PubkeyToAccAddress(newPubkey(t))

	// funded before the hook is registered; the mint module is not whitelisted
	fundAccount(t, ctx, bankKeeper, types.PubkeyToAccAddress(admin), sdk.NewCoins(sdk.NewInt64Coin("uinit", 100_000_000)))
	fundAccount(t, ctx, bankKeeper, types.PubkeyToAccAddress(sender), sdk.NewCoins(sdk.NewInt64Coin("uwhite", 1_000)))
	fundAccount(t, ctx, bankKeeper, types.PubkeyToAccAddress(stranger), sdk.NewCoins(sdk.NewInt64Coin("uwhite", 1_000), sdk.NewInt64Coin("uinit", 1_000)))

	_, err := ms.InitializeExtraAccountMetaList(ctx, types.NewMsgInitializeExtraAccountMetaList(types.PubkeyToAccAddress(admin).String(), "uwhite"))
	require.NoError(t, err)

	rent := minimumBalance(t, types.WhitelistStateSize) +
		minimumBalance(t, types.ExtraAccountMetaListSizeOf(1))
	require.Equal(t, int64(100_000_000-rent), bankKeeper.GetBalance(ctx, types.PubkeyToAccAddress(admin), "uinit").Amount.Int64())
	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
	require.Equal(t, int64(rent), bankKeeper.GetBalance(ctx, moduleAddr, "uinit").Amount.Int64())

	_, err = ms.AddToWhitelist(ctx, types.NewMsgAddToWhitelist(types.PubkeyToAccAddress(admin).String(), types.PubkeyToAccAddress(sender).String()))
	require.NoError(t, err)

	err = bankKeeper.SendCoins(ctx, types.PubkeyToAccAddress(sender), recipient, sdk.NewCoins(sdk.NewInt64Coin("uwhite", 50)))
	require.NoError(t, err)
	require.Equal(t, int64(50), bankKeeper.GetBalance(ctx, recipient, "uwhite").Amount.Int64())

	err = bankKeeper.SendCoins(ctx, types.PubkeyToAccAddress(stranger), recipient, sdk.NewCoins(sdk.NewInt64Coin("uwhite", 50)))
	require.ErrorIs(t, err, types.ErrNotWhitelisted)
	require.Equal(t, int64(1_000), bankKeeper.GetBalance(ctx, types.PubkeyToAccAddress(stranger), "uwhite").Amount.Int64())

	// coins without a registered hook move freely
	err = bankKeeper.SendCoins(ctx, types.PubkeyToAccAddress(stranger), recipient, sdk.NewCoins(sdk.NewInt64Coin("uinit", 50)))
	require.NoError(t, err)

	_, err = ms.RemoveFromWhitelist(ctx, types.NewMsgRemoveFromWhitelist(types.PubkeyToAccAddress(admin).String(), types.PubkeyToAccAddress(sender).String()))
	require.NoError(t, err)

	err = bankKeeper.SendCoins(ctx, types.PubkeyToAccAddress(sender), recipient, sdk.NewCoins(sdk.NewInt64Coin("uwhite", 50)))
	require.ErrorIs(t, err, types.ErrNotWhitelisted)
}

func Test_BankSend_InitializeExtraAccountMetaList_RentRefunded(t *testing.T) {
	ctx, k, bankKeeper := createBankTestInput(t)
	admin := newPubkey(t)
	fundAccount(t, ctx, bankKeeper, types.PubkeyToAccAddress(admin), sdk.NewCoins(sdk.NewInt64Coin("uinit", 100_000_000)))

	metaListAddr, err := k.ExtraAccountMetaListAddress(types.MintFromDenom("uwhite"))
	require.NoError(t, err)
	require.NoError(t, k.Accounts.Set(ctx, metaListAddr.Bytes(), types.Account{Owner: programID}))

	// the whitelist state rent is paid before the meta list creation fails
	_, err = k.InitializeExtraAccountMetaList(ctx, admin, types.MintFromDenom("uwhite"))
	require.ErrorIs(t, err, types.ErrAlreadyInitialized)
	require.Equal(t, int64(100_000_000), bankKeeper.GetBalance(ctx, types.PubkeyToAccAddress(admin), "uinit").Amount.Int64())
	require.True(t, bankKeeper.GetBalance(ctx, authtypes.NewModuleAddress(types.ModuleName), "uinit").IsZero())
}
