package types_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

func Test_PackSeeds(t *testing.T) {
	seeds := []types.Seed{
		types.LiteralSeed([]byte("ab")),
		types.InstructionDataSeed(8, 8),
		types.AccountKeySeed(1),
		types.AccountDataSeed(2, 4, 32),
	}

	config, err := types.PackSeeds(seeds)
	require.NoError(t, err)

	expected := [32]byte{1, 2, 'a', 'b', 2, 8, 8, 3, 1, 4, 2, 4, 32}
	require.Equal(t, expected, config)

	unpacked, err := types.UnpackSeeds(config)
	require.NoError(t, err)
	require.Equal(t, seeds, unpacked)
}

func Test_PackSeeds_Invalid(t *testing.T) {
	_, err := types.PackSeeds([]types.Seed{types.LiteralSeed(make([]byte, 31))})
	require.ErrorIs(t, err, types.ErrInvalidSeeds)

	_, err = types.PackSeeds([]types.Seed{{Kind: 9}})
	require.ErrorIs(t, err, types.ErrInvalidSeeds)

	_, err = types.UnpackSeeds([32]byte{9})
	require.ErrorIs(t, err, types.ErrInvalidSeeds)

	var truncated [32]byte
	truncated[30] = byte(types.SeedAccountData)
	_, err = types.UnpackSeeds(truncated)
	require.ErrorIs(t, err, types.ErrInvalidSeeds)
}

func Test_ExtraAccountMetaList(t *testing.T) {
	require.Equal(t, 51, types.ExtraAccountMetaListSizeOf(1))

	meta, err := types.NewExtraAccountMetaWithSeeds([]types.Seed{types.LiteralSeed([]byte("whitelist-state"))}, false, true)
	require.NoError(t, err)

	data := make([]byte, types.ExtraAccountMetaListSizeOf(1))
	require.NoError(t, types.InitExtraAccountMetaList(data, types.ExecuteDiscriminator, []types.ExtraAccountMeta{meta}))

	require.Equal(t, types.ExecuteDiscriminator[:], data[:8])
	require.Equal(t, uint32(39), binary.LittleEndian.Uint32(data[8:12]))
	require.Equal(t, uint32(1), binary.LittleEndian.Uint32(data[12:16]))
	require.Equal(t, byte(1), data[16])
	require.Equal(t, append([]byte{1, 15}, "whitelist-state"...), data[17:34])
	require.Equal(t, []byte{0, 1}, data[49:51])

	metas, err := types.UnpackExtraAccountMetaList(data, types.ExecuteDiscriminator)
	require.NoError(t, err)
	require.Equal(t, []types.ExtraAccountMeta{meta}, metas)

	err = types.InitExtraAccountMetaList(data, types.ExecuteDiscriminator, []types.ExtraAccountMeta{meta})
	require.ErrorIs(t, err, types.ErrAlreadyInitialized)

	_, err = types.UnpackExtraAccountMetaList(data, types.UpdateExtraAccountMetaListDiscriminator)
	require.ErrorIs(t, err, types.ErrInvalidAccountData)

	err = types.InitExtraAccountMetaList(make([]byte, 50), types.ExecuteDiscriminator, []types.ExtraAccountMeta{meta})
	require.ErrorIs(t, err, types.ErrInvalidAccountData)
}

func Test_ResolveExtraAccountMetas(t *testing.T) {
	mint := sequentialPubkey()
	owner := types.Pubkey{0x0a}
	fixed := types.Pubkey{0x0f}

	stateMeta, err := types.NewExtraAccountMetaWithSeeds([]types.Seed{types.LiteralSeed([]byte("whitelist-state"))}, false, true)
	require.NoError(t, err)
	mintMeta, err := types.NewExtraAccountMetaWithSeeds([]types.Seed{
		types.LiteralSeed([]byte("extra-account-metas")),
		types.AccountKeySeed(1),
	}, false, false)
	require.NoError(t, err)
	amountMeta, err := types.NewExtraAccountMetaWithSeeds([]types.Seed{types.InstructionDataSeed(8, 8)}, false, false)
	require.NoError(t, err)
	dataMeta, err := types.NewExtraAccountMetaWithSeeds([]types.Seed{types.AccountDataSeed(0, 0, 4)}, false, false)
	require.NoError(t, err)
	externalMeta, err := types.NewExtraAccountMetaWithExternalSeeds(5, []types.Seed{types.LiteralSeed([]byte("g"))}, false, false)
	require.NoError(t, err)

	metas := []types.ExtraAccountMeta{
		stateMeta,
		types.NewExtraAccountMetaFromPubkey(fixed, true, false),
		mintMeta,
		amountMeta,
		dataMeta,
		externalMeta,
	}

	data := types.NewExecuteInstructionData(50)
	source := types.Pubkey{0x01}
	accounts := []types.AccountMeta{
		types.NewAccountMeta(source, false),
		types.NewReadonlyAccountMeta(mint, false),
		types.NewAccountMeta(types.Pubkey{0x02}, false),
		types.NewReadonlyAccountMeta(owner, true),
		types.NewReadonlyAccountMeta(testProgramID, false),
	}

	accountData := func(addr types.Pubkey) ([]byte, error) {
		require.Equal(t, source, addr)
		return []byte{9, 8, 7, 6, 5}, nil
	}

	resolved, err := types.ResolveExtraAccountMetas(metas, data, accounts, testProgramID, accountData)
	require.NoError(t, err)
	require.Len(t, resolved, len(accounts)+len(metas))
	require.Equal(t, accounts, resolved[:len(accounts)])

	stateAddr, _, err := types.WhitelistStateAddress(testProgramID)
	require.NoError(t, err)
	require.Equal(t, types.NewAccountMeta(stateAddr, false), resolved[5])

	require.Equal(t, types.AccountMeta{Pubkey: fixed, IsSigner: true}, resolved[6])

	metaListAddr, _, err := types.ExtraAccountMetaListAddress(mint, testProgramID)
	require.NoError(t, err)
	require.Equal(t, metaListAddr, resolved[7].Pubkey)

	amountAddr, _, err := types.FindProgramAddress([][]byte{data[8:16]}, testProgramID)
	require.NoError(t, err)
	require.Equal(t, amountAddr, resolved[8].Pubkey)

	dataAddr, _, err := types.FindProgramAddress([][]byte{{9, 8, 7, 6}}, testProgramID)
	require.NoError(t, err)
	require.Equal(t, dataAddr, resolved[9].Pubkey)

	// derived under the program found at index 5, the resolved whitelist state
	externalAddr, _, err := types.FindProgramAddress([][]byte{[]byte("g")}, stateAddr)
	require.NoError(t, err)
	require.Equal(t, externalAddr, resolved[10].Pubkey)
}

func Test_ResolveExtraAccountMetas_Invalid(t *testing.T) {
	accounts := []types.AccountMeta{types.NewAccountMeta(types.Pubkey{1}, false)}

	keyMeta, err := types.NewExtraAccountMetaWithSeeds([]types.Seed{types.AccountKeySeed(3)}, false, false)
	require.NoError(t, err)
	_, err = types.ResolveExtraAccountMetas([]types.ExtraAccountMeta{keyMeta}, nil, accounts, testProgramID, nil)
	require.ErrorIs(t, err, types.ErrNotEnoughAccountKeys)

	dataMeta, err := types.NewExtraAccountMetaWithSeeds([]types.Seed{types.InstructionDataSeed(8, 8)}, false, false)
	require.NoError(t, err)
	_, err = types.ResolveExtraAccountMetas([]types.ExtraAccountMeta{dataMeta}, []byte{1, 2}, accounts, testProgramID, nil)
	require.ErrorIs(t, err, types.ErrInvalidInstructionData)

	accountDataMeta, err := types.NewExtraAccountMetaWithSeeds([]types.Seed{types.AccountDataSeed(0, 0, 4)}, false, false)
	require.NoError(t, err)
	_, err = types.ResolveExtraAccountMetas([]types.ExtraAccountMeta{accountDataMeta}, nil, accounts, testProgramID, nil)
	require.ErrorIs(t, err, types.ErrAccountNotFound)

	unknown := types.ExtraAccountMeta{Discriminator: 2}
	_, err = types.ResolveExtraAccountMetas([]types.ExtraAccountMeta{unknown}, nil, accounts, testProgramID, nil)
	require.ErrorIs(t, err, types.ErrInvalidAccountData)
}
