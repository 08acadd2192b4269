package types_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

func Test_PubkeyFromAccAddress(t *testing.T) {
	legacy := sdk.AccAddress(bytes.Repeat([]byte{0xab}, 20))
	pk, err := types.PubkeyFromAccAddress(legacy)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 12), pk[:12])
	require.Equal(t, []byte(legacy), pk[12:])
	require.Equal(t, legacy, types.PubkeyToAccAddress(pk))

	full := sdk.AccAddress(bytes.Repeat([]byte{0xcd}, 32))
	pk, err = types.PubkeyFromAccAddress(full)
	require.NoError(t, err)
	require.Equal(t, []byte(full), pk[:])
	require.Equal(t, full, types.PubkeyToAccAddress(pk))

	_, err = types.PubkeyFromAccAddress(sdk.AccAddress{1, 2, 3})
	require.ErrorIs(t, err, sdkerrors.ErrInvalidAddress)
}

func Test_PubkeyBase58(t *testing.T) {
	pk, err := types.PubkeyFromBase58("4wBqpZM9xaSheZzJSMawUKKwhdpChKbZ5eu5ky4Vigw")
	require.NoError(t, err)
	require.Equal(t, sequentialPubkey(), pk)

	require.Equal(t, "11111111111111111111111111111111", types.Pubkey{}.String())
	require.True(t, types.Pubkey{}.IsZero())

	_, err = types.PubkeyFromBase58("0OIl")
	require.ErrorIs(t, err, sdkerrors.ErrInvalidAddress)

	// 31 bytes
	_, err = types.PubkeyFromBase58("1111111111111111111111111111111")
	require.ErrorIs(t, err, sdkerrors.ErrInvalidAddress)
}

func Test_PubkeyJSON(t *testing.T) {
	bz, err := json.Marshal(sequentialPubkey())
	require.NoError(t, err)
	require.Equal(t, `"4wBqpZM9xaSheZzJSMawUKKwhdpChKbZ5eu5ky4Vigw"`, string(bz))

	var pk types.Pubkey
	require.NoError(t, json.Unmarshal(bz, &pk))
	require.Equal(t, sequentialPubkey(), pk)

	require.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &pk))
}

func Test_PubkeyFromAccAddress_PaddedCollision(t *testing.T) {
	legacy := sdk.AccAddress(bytes.Repeat([]byte{0xab}, 20))

	// a 32-byte address whose first 12 bytes are zero reads like a padded 20-byte one
	padded := sdk.AccAddress(append(make([]byte, 12), legacy...))
	_, err := types.PubkeyFromAccAddress(padded)
	require.ErrorIs(t, err, sdkerrors.ErrInvalidAddress)

	// a single non-zero byte in the prefix keeps the 32-byte form
	almost := sdk.AccAddress(append([]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, legacy...))
	pk, err := types.PubkeyFromAccAddress(almost)
	require.NoError(t, err)
	require.Equal(t, almost, types.PubkeyToAccAddress(pk))

	for _, addr := range []sdk.AccAddress{legacy, almost, sdk.AccAddress(bytes.Repeat([]byte{0xcd}, 32))} {
		pk, err := types.PubkeyFromAccAddress(addr)
		require.NoError(t, err)
		require.Equal(t, addr, types.PubkeyToAccAddress(pk))
	}
}
