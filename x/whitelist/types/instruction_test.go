package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

func Test_Discriminators(t *testing.T) {
	require.Equal(t, types.Discriminator{105, 37, 101, 197, 75, 251, 102, 26}, types.ExecuteDiscriminator)
	require.Equal(t, "2b220d31a758ebeb", types.InitializeExtraAccountMetaListDiscriminator.String())
	require.Equal(t, "9d692a926655f1ae", types.UpdateExtraAccountMetaListDiscriminator.String())

	require.Equal(t, "581be64c0e2cfebe", types.InitializeWhitelistStateInstruction.String())
	require.Equal(t, "5cc5aec5297c1303", types.InitializeExtraAccountMetaListInstruction.String())
	require.Equal(t, "9dd3343690510537", types.AddToWhitelistInstruction.String())
	require.Equal(t, "0790d8eff3ecc1eb", types.RemoveFromWhitelistInstruction.String())
	require.Equal(t, "dc39dc987e7d61a8", types.TransferHookInstructionDiscriminator.String())

	require.True(t, types.ExecuteDiscriminator.Matches(types.NewExecuteInstructionData(1)))
	require.False(t, types.ExecuteDiscriminator.Matches([]byte{105, 37}))
}

func Test_UnpackTransferHookInstruction_Execute(t *testing.T) {
	data := []byte{105, 37, 101, 197, 75, 251, 102, 26, 50, 0, 0, 0, 0, 0, 0, 0}
	ix, err := types.UnpackTransferHookInstruction(data)
	require.NoError(t, err)
	require.Equal(t, types.TransferHookExecute, ix.Kind)
	require.Equal(t, uint64(50), ix.Amount)
	require.Equal(t, data, ix.Pack())
	require.Equal(t, data, types.NewExecuteInstructionData(50))

	// trailing bytes are ignored
	ix, err = types.UnpackTransferHookInstruction(append(data, 0xff))
	require.NoError(t, err)
	require.Equal(t, uint64(50), ix.Amount)
}

func Test_UnpackTransferHookInstruction_ExtraAccountMetas(t *testing.T) {
	meta, err := types.NewExtraAccountMetaWithSeeds([]types.Seed{types.LiteralSeed([]byte("whitelist-state"))}, false, true)
	require.NoError(t, err)

	for _, kind := range []types.TransferHookInstructionKind{
		types.TransferHookInitializeExtraAccountMetaList,
		types.TransferHookUpdateExtraAccountMetaList,
	} {
		data := types.TransferHookInstruction{Kind: kind, ExtraAccountMetas: []types.ExtraAccountMeta{meta}}.Pack()
		require.Len(t, data, 8+4+types.ExtraAccountMetaLength)

		ix, err := types.UnpackTransferHookInstruction(data)
		require.NoError(t, err)
		require.Equal(t, kind, ix.Kind)
		require.Equal(t, []types.ExtraAccountMeta{meta}, ix.ExtraAccountMetas)
	}
}

func Test_UnpackTransferHookInstruction_Invalid(t *testing.T) {
	for name, data := range map[string][]byte{
		"empty":           nil,
		"short":           {105, 37, 101, 197, 75, 251, 102},
		"missing amount":  {105, 37, 101, 197, 75, 251, 102, 26, 50, 0, 0},
		"unknown":         {0, 0, 0, 0, 0, 0, 0, 0, 50, 0, 0, 0, 0, 0, 0, 0},
		"truncated metas": append(types.InitializeExtraAccountMetaListDiscriminator[:], 1, 0, 0, 0, 1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := types.UnpackTransferHookInstruction(data)
			require.ErrorIs(t, err, types.ErrInvalidInstructionData)
		})
	}
}

func Test_ProgramInstructionData(t *testing.T) {
	addr := sequentialPubkey()

	data := types.NewAddToWhitelistInstructionData(addr)
	require.Len(t, data, 40)
	require.True(t, types.AddToWhitelistInstruction.Matches(data))
	require.Equal(t, addr[:], data[8:])

	data = types.NewRemoveFromWhitelistInstructionData(addr)
	require.True(t, types.RemoveFromWhitelistInstruction.Matches(data))
	require.Equal(t, addr[:], data[8:])

	data = types.NewTransferHookInstructionData(50)
	require.Equal(t, []byte{0xdc, 0x39, 0xdc, 0x98, 0x7e, 0x7d, 0x61, 0xa8, 50, 0, 0, 0, 0, 0, 0, 0}, data)

	// builders never alias the discriminators
	data = types.NewInitializeWhitelistStateInstructionData()
	data[0] ^= 0xff
	require.Equal(t, "581be64c0e2cfebe", types.InitializeWhitelistStateInstruction.String())
}
