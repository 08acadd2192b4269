package whitelist_test

import (
	"testing"
	"time"

	abci "github.com/cometbft/cometbft/abci/types"
	"github.com/cometbft/cometbft/crypto/secp256k1"
	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/baseapp"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"

	"github.com/initia-labs/whitelist-hook/x/whitelist"
	"github.com/initia-labs/whitelist-hook/x/whitelist/config"
	"github.com/initia-labs/whitelist-hook/x/whitelist/keeper"
	"github.com/initia-labs/whitelist-hook/x/whitelist/testutil"
	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

func createTestApp(t *testing.T) (sdk.Context, moduletestutil.TestEncodingConfig, *keeper.Keeper, whitelist.AppModule) {
	encodingConfig := moduletestutil.MakeTestEncodingConfig(whitelist.AppModuleBasic{})

	key := storetypes.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	ms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	require.NoError(t, ms.LoadLatestVersion())

	ctx := sdk.NewContext(ms, tmproto.Header{
		Height: 1234567,
		Time:   time.Date(2020, time.April, 22, 12, 0, 0, 0, time.UTC),
	}, false, log.NewNopLogger())

	bankKeeper := testutil.NewMockBankKeeper(gomock.NewController(t))
	bankKeeper.EXPECT().
		SendCoinsFromAccountToModule(gomock.Any(), gomock.Any(), types.ModuleName, gomock.Any()).
		Return(nil).
		AnyTimes()

	k := keeper.NewKeeper(
		encodingConfig.Codec,
		runtime.NewKVStoreService(key),
		bankKeeper,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		types.MustPubkeyFromBase58(config.DefaultProgramID),
	)
	am := whitelist.NewAppModule(encodingConfig.Codec, k)
	am.InitGenesis(ctx, encodingConfig.Codec, am.DefaultGenesis(encodingConfig.Codec))

	return ctx, encodingConfig, k, am
}

func Test_AppModuleBasic_Genesis(t *testing.T) {
	cdc := moduletestutil.MakeTestEncodingConfig(whitelist.AppModuleBasic{}).Codec
	basic := whitelist.AppModuleBasic{}
	require.Equal(t, types.ModuleName, basic.Name())

	bz := basic.DefaultGenesis(cdc)
	require.NoError(t, basic.ValidateGenesis(cdc, nil, bz))

	var genState types.GenesisState
	require.NoError(t, cdc.UnmarshalJSON(bz, &genState))
	require.Equal(t, types.DefaultParams(), genState.Params)
	require.Nil(t, genState.WhitelistState)
	require.Empty(t, genState.Accounts)

	require.Error(t, basic.ValidateGenesis(cdc, nil, []byte(`{"params":{"rent_denom":"!"}}`)))
	require.Error(t, basic.ValidateGenesis(cdc, nil, []byte(`{`)))
}

func Test_AppModule_RegisterServices(t *testing.T) {
	ctx, encodingConfig, k, am := createTestApp(t)

	msr := baseapp.NewMsgServiceRouter()
	msr.SetInterfaceRegistry(encodingConfig.InterfaceRegistry)
	qr := baseapp.NewGRPCQueryRouter()
	qr.SetInterfaceRegistry(encodingConfig.InterfaceRegistry)

	am.RegisterServices(module.NewConfigurator(encodingConfig.Codec, msr, qr))

	payer := sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
	msg := types.NewMsgInitializeExtraAccountMetaList(payer.String(), "uwhite")

	handler := msr.Handler(msg)
	require.NotNil(t, handler)
	require.NotNil(t, msr.Handler(&types.MsgAddToWhitelist{}))
	require.NotNil(t, msr.Handler(&types.MsgRemoveFromWhitelist{}))
	require.NotNil(t, msr.Handler(&types.MsgInitializeWhitelistState{}))

	res, err := handler(ctx, msg)
	require.NoError(t, err)
	require.Len(t, res.MsgResponses, 1)

	var msgRes types.MsgInitializeExtraAccountMetaListResponse
	require.NoError(t, encodingConfig.Codec.Unmarshal(res.MsgResponses[0].Value, &msgRes))
	require.Equal(t, k.WhitelistStateAddress().String(), msgRes.WhitelistState)

	admin, err := types.PubkeyFromAccAddress(payer)
	require.NoError(t, err)

	state, err := k.GetWhitelistState(ctx)
	require.NoError(t, err)
	require.Equal(t, admin, state.Admin)
	require.True(t, state.IsInitialized)

	route := qr.Route("/whitelist.v1.Query/IsWhitelisted")
	require.NotNil(t, route)

	reqBz, err := encodingConfig.Codec.Marshal(&types.QueryIsWhitelistedRequest{Address: payer.String()})
	require.NoError(t, err)

	queryRes, err := route(ctx, &abci.RequestQuery{Data: reqBz})
	require.NoError(t, err)

	var isRes types.QueryIsWhitelistedResponse
	require.NoError(t, encodingConfig.Codec.Unmarshal(queryRes.Value, &isRes))
	require.False(t, isRes.Whitelisted)
}

func Test_AppModule_ExportGenesis(t *testing.T) {
	ctx, encodingConfig, k, am := createTestApp(t)
	admin := types.MustPubkeyFromBase58("4wBqpZM9xaSheZzJSMawUKKwhdpChKbZ5eu5ky4Vigw")

	_, err := k.InitializeExtraAccountMetaList(ctx, admin, types.MintFromDenom("uwhite"))
	require.NoError(t, err)

	bz := am.ExportGenesis(ctx, encodingConfig.Codec)
	require.NoError(t, am.ValidateGenesis(encodingConfig.Codec, nil, bz))
	require.Contains(t, string(bz), `"admin":"4wBqpZM9xaSheZzJSMawUKKwhdpChKbZ5eu5ky4Vigw"`)

	var genState types.GenesisState
	require.NoError(t, encodingConfig.Codec.UnmarshalJSON(bz, &genState))
	require.Equal(t, uint64(12_340_080), genState.WhitelistState.Lamports)
}
