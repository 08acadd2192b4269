package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

func Test_InitGenesis(t *testing.T) {
	ctx, k := createTestInput(t)
	admin := newPubkey(t)
	addrs := []types.Pubkey{newPubkey(t), newPubkey(t)}

	params := types.NewParams("", 1, 1)
	genState := types.NewGenesisState(params, &types.GenesisWhitelistState{
		IsInitialized:    true,
		Admin:            admin.String(),
		AllowedAddresses: []string{addrs[0].String(), addrs[1].String()},
		Lamports:         1_000,
	})
	require.NoError(t, types.ValidateGenesis(genState))
	require.NoError(t, k.InitGenesis(ctx, genState))

	res, err := k.Params.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, params, res)

	state, err := k.GetWhitelistState(ctx)
	require.NoError(t, err)
	require.True(t, state.IsInitialized)
	require.Equal(t, admin, state.Admin)
	require.Equal(t, addrs, state.AllowedAddresses())

	acc, err := k.GetAccount(ctx, k.WhitelistStateAddress())
	require.NoError(t, err)
	require.Equal(t, uint64(1_000), acc.Lamports)

	require.NoError(t, k.TransferHook(ctx, addrs[0], 1))
}

func Test_InitGenesis_WhitelistStateAsAccount(t *testing.T) {
	ctx, k := createTestInput(t)

	genState := types.DefaultGenesisState()
	genState.Accounts = []types.GenesisAccount{
		types.NewGenesisAccount(k.WhitelistStateAddress(), types.Account{Owner: programID, Data: make([]byte, types.WhitelistStateSize)}),
	}
	require.Error(t, k.InitGenesis(ctx, genState))
}

func Test_ExportGenesis(t *testing.T) {
	ctx, k := createTestInput(t)

	genState, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.Equal(t, types.DefaultGenesisState(), genState)

	admin := newPubkey(t)
	addrA := newPubkey(t)
	metaListAddr, err := k.InitializeExtraAccountMetaList(ctx, admin, types.MintFromDenom("uwhite"))
	require.NoError(t, err)
	require.NoError(t, k.AddToWhitelist(ctx, admin, addrA))

	genState, err = k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, types.ValidateGenesis(genState))
	require.Equal(t, &types.GenesisWhitelistState{
		IsInitialized:    true,
		Admin:            admin.String(),
		AllowedAddresses: []string{addrA.String()},
		Lamports:         12_340_080,
	}, genState.WhitelistState)
	require.Len(t, genState.Accounts, 1)
	require.Equal(t, metaListAddr.String(), genState.Accounts[0].Address)

	// import into a fresh chain
	ctx2, k2 := createTestInput(t)
	require.NoError(t, k2.InitGenesis(ctx2, genState))

	exported, err := k2.ExportGenesis(ctx2)
	require.NoError(t, err)
	require.Equal(t, genState, exported)

	coins := sdk.NewCoins(sdk.NewInt64Coin("uwhite", 1))
	_, err = k2.SendRestrictionFn(ctx2, types.PubkeyToAccAddress(addrA), types.PubkeyToAccAddress(admin), coins)
	require.NoError(t, err)

	_, err = k2.SendRestrictionFn(ctx2, types.PubkeyToAccAddress(admin), types.PubkeyToAccAddress(addrA), coins)
	require.ErrorIs(t, err, types.ErrNotWhitelisted)
}

func Test_ExportGenesis_AccountsRoundTrip(t *testing.T) {
	ctx, k := createTestInput(t)
	admin := newPubkey(t)
	mint := types.MintFromDenom("uwhite")

	metaListAddr, err := k.InitializeExtraAccountMetaList(ctx, admin, mint)
	require.NoError(t, err)
	require.NoError(t, k.AddToWhitelist(ctx, admin, newPubkey(t)))

	stateAcc, err := k.GetAccount(ctx, k.WhitelistStateAddress())
	require.NoError(t, err)
	require.Equal(t, minimumBalance(t, types.WhitelistStateSize), stateAcc.Lamports)

	metaListAcc, err := k.GetAccount(ctx, metaListAddr)
	require.NoError(t, err)

	genState, err := k.ExportGenesis(ctx)
	require.NoError(t, err)

	ctx2, k2 := createTestInput(t)
	require.NoError(t, k2.InitGenesis(ctx2, genState))

	imported, err := k2.GetAccount(ctx2, k2.WhitelistStateAddress())
	require.NoError(t, err)
	require.Equal(t, stateAcc, imported)

	imported, err = k2.GetAccount(ctx2, metaListAddr)
	require.NoError(t, err)
	require.Equal(t, metaListAcc, imported)
}
