package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

func Test_ValidateGenesis(t *testing.T) {
	require.NoError(t, types.ValidateGenesis(types.DefaultGenesisState()))

	genState := types.DefaultGenesisState()
	genState.Params.RentDenom = "!"
	require.ErrorIs(t, types.ValidateGenesis(genState), types.ErrInvalidParams)

	genState = types.NewGenesisState(types.DefaultParams(), &types.GenesisWhitelistState{})
	require.Error(t, types.ValidateGenesis(genState))

	genState = types.NewGenesisState(types.DefaultParams(), &types.GenesisWhitelistState{Admin: "0OIl"})
	require.ErrorIs(t, types.ValidateGenesis(genState), sdkerrors.ErrInvalidAddress)

	allowed := make([]string, types.MaxAllowedAddresses+1)
	for i := range allowed {
		allowed[i] = types.Pubkey{}.String()
	}
	genState = types.NewGenesisState(types.DefaultParams(), &types.GenesisWhitelistState{
		Admin:            sequentialPubkey().String(),
		AllowedAddresses: allowed,
	})
	require.ErrorIs(t, types.ValidateGenesis(genState), types.ErrCapacityExceeded)

	acc := types.Account{Owner: testProgramID}
	genState = types.DefaultGenesisState()
	genState.Accounts = []types.GenesisAccount{
		types.NewGenesisAccount(sequentialPubkey(), acc),
		types.NewGenesisAccount(sequentialPubkey(), acc),
	}
	require.Error(t, types.ValidateGenesis(genState))

	genState.Accounts = []types.GenesisAccount{{Address: sequentialPubkey().String()}}
	require.ErrorIs(t, types.ValidateGenesis(genState), sdkerrors.ErrInvalidAddress)
}

func Test_GenesisWhitelistState(t *testing.T) {
	state := types.NewWhitelistState(sequentialPubkey(), true)
	require.NoError(t, state.Push(testProgramID))

	genState := types.NewGenesisWhitelistState(state, 12_340_080)
	require.Equal(t, uint64(12_340_080), genState.Lamports)
	require.Equal(t, []string{testProgramID.String()}, genState.AllowedAddresses)

	decoded, err := genState.ToWhitelistState()
	require.NoError(t, err)
	require.Equal(t, state, decoded)
}

func Test_GenesisJSON(t *testing.T) {
	cdc := moduletestutil.MakeTestEncodingConfig().Codec

	genState := types.NewGenesisState(types.DefaultParams(), &types.GenesisWhitelistState{
		IsInitialized:    true,
		Admin:            sequentialPubkey().String(),
		AllowedAddresses: []string{types.Pubkey{}.String()},
		Lamports:         12_340_080,
	})
	genState.Accounts = []types.GenesisAccount{
		types.NewGenesisAccount(types.Pubkey{1}, types.Account{Lamports: 10, Owner: testProgramID, Data: []byte{1, 2, 3}}),
	}

	bz, err := cdc.MarshalJSON(genState)
	require.NoError(t, err)
	require.Contains(t, string(bz), `"admin":"4wBqpZM9xaSheZzJSMawUKKwhdpChKbZ5eu5ky4Vigw"`)
	require.Contains(t, string(bz), `"allowed_addresses":["11111111111111111111111111111111"]`)
	require.Contains(t, string(bz), `"lamports":"12340080"`)

	var decoded types.GenesisState
	require.NoError(t, cdc.UnmarshalJSON(bz, &decoded))
	require.Equal(t, genState, &decoded)
	require.NoError(t, types.ValidateGenesis(&decoded))
}
