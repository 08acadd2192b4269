package types_test

import (
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

func Test_WhitelistStateLayout(t *testing.T) {
	require.Equal(t, 1645, types.WhitelistStateSize)
	require.Equal(t, "f6762c3c4725c937", types.WhitelistStateDiscriminator.String())

	admin := sequentialPubkey()
	addrA := types.Pubkey{0xaa}
	addrB := types.Pubkey{0xbb}

	state := types.NewWhitelistState(admin, true)
	require.NoError(t, state.Push(addrA))
	require.NoError(t, state.Push(addrB))

	bz := state.Marshal()
	require.Len(t, bz, types.WhitelistStateSize)
	require.Equal(t, "f6762c3c4725c937", hex.EncodeToString(bz[0:8]))
	require.Equal(t, byte(1), bz[8])
	require.Equal(t, admin[:], bz[9:41])
	require.Equal(t, uint32(2), binary.LittleEndian.Uint32(bz[41:45]))
	require.Equal(t, addrA[:], bz[45:77])
	require.Equal(t, addrB[:], bz[77:109])
	require.Equal(t, make([]byte, types.WhitelistStateSize-109), bz[109:])

	decoded, err := types.UnmarshalWhitelistState(bz)
	require.NoError(t, err)
	require.Equal(t, state, decoded)

	uninitialized := types.NewWhitelistState(admin, false)
	require.Equal(t, byte(0), uninitialized.Marshal()[8])
}

func Test_UnmarshalWhitelistState_Invalid(t *testing.T) {
	bz := types.NewWhitelistState(sequentialPubkey(), true).Marshal()

	_, err := types.UnmarshalWhitelistState(bz[:44])
	require.ErrorIs(t, err, types.ErrInvalidAccountData)

	wrongDiscriminator := append([]byte(nil), bz...)
	wrongDiscriminator[0] ^= 0xff
	_, err = types.UnmarshalWhitelistState(wrongDiscriminator)
	require.ErrorIs(t, err, types.ErrInvalidAccountData)

	wrongBool := append([]byte(nil), bz...)
	wrongBool[8] = 2
	_, err = types.UnmarshalWhitelistState(wrongBool)
	require.ErrorIs(t, err, types.ErrInvalidAccountData)

	wrongCount := append([]byte(nil), bz...)
	binary.LittleEndian.PutUint32(wrongCount[41:45], types.MaxAllowedAddresses+1)
	_, err = types.UnmarshalWhitelistState(wrongCount)
	require.ErrorIs(t, err, types.ErrInvalidAccountData)
}

func Test_WhitelistState_PushRemove(t *testing.T) {
	state := types.NewWhitelistState(sequentialPubkey(), false)
	addrX := types.Pubkey{1}
	addrY := types.Pubkey{2}

	require.NoError(t, state.Push(addrX))
	require.NoError(t, state.Push(addrY))
	require.NoError(t, state.Push(addrX))
	require.Equal(t, 3, state.Len())

	require.True(t, state.Remove(addrX))
	require.Equal(t, []types.Pubkey{addrY, addrX}, state.AllowedAddresses())
	require.True(t, state.Contains(addrX))

	require.False(t, state.Remove(types.Pubkey{3}))
	require.Equal(t, 2, state.Len())

	require.True(t, state.Remove(addrX))
	require.True(t, state.Remove(addrY))
	require.False(t, state.Contains(addrX))
	require.Empty(t, state.AllowedAddresses())
}

func Test_WhitelistState_Capacity(t *testing.T) {
	state := types.NewWhitelistState(sequentialPubkey(), true)
	for i := 0; i < types.MaxAllowedAddresses; i++ {
		require.NoError(t, state.Push(types.Pubkey{byte(i)}))
	}

	err := state.Push(types.Pubkey{0xff})
	require.ErrorIs(t, err, types.ErrCapacityExceeded)
	require.Equal(t, types.MaxAllowedAddresses, state.Len())
	require.False(t, state.Contains(types.Pubkey{0xff}))

	decoded, err := types.UnmarshalWhitelistState(state.Marshal())
	require.NoError(t, err)
	require.Equal(t, state, decoded)
}
