package types_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

var testProgramID = types.MustPubkeyFromBase58("F8JTJRsEngZsdw4HkZDHmDWjJtVXUWCPeSgKFondXVbQ")

func sequentialPubkey() types.Pubkey {
	var pk types.Pubkey
	for i := range pk {
		pk[i] = byte(i + 1)
	}
	return pk
}

func Test_WhitelistStateAddress(t *testing.T) {
	addr, bump, err := types.WhitelistStateAddress(testProgramID)
	require.NoError(t, err)
	require.Equal(t, "CvFSLiKktF2JmSaQCLcJNRvuWP82u5ihPD154FYTYUN3", addr.String())
	require.Equal(t, uint8(255), bump)
	require.False(t, types.IsOnCurve(addr))

	created, err := types.CreateProgramAddress([][]byte{[]byte("whitelist-state"), {bump}}, testProgramID)
	require.NoError(t, err)
	require.Equal(t, addr, created)
}

func Test_ExtraAccountMetaListAddress(t *testing.T) {
	mint := sequentialPubkey()
	require.Equal(t, "4wBqpZM9xaSheZzJSMawUKKwhdpChKbZ5eu5ky4Vigw", mint.String())

	addr, bump, err := types.ExtraAccountMetaListAddress(mint, testProgramID)
	require.NoError(t, err)
	require.Equal(t, "8YHvx9HG4kLrEYgn7bSFFpTkQScGnBv7GK7gCZeJvozn", addr.String())
	require.Equal(t, uint8(255), bump)

	other, _, err := types.ExtraAccountMetaListAddress(types.Pubkey{}, testProgramID)
	require.NoError(t, err)
	require.NotEqual(t, addr, other)
}

func Test_FindProgramAddress_SkipsCurvePoints(t *testing.T) {
	addr, bump, err := types.FindProgramAddress([][]byte{[]byte("a")}, testProgramID)
	require.NoError(t, err)
	require.Equal(t, "BmJWyx35fqzKEhm3JpFnyrvC6mwheWRdPeuP591HyKYz", addr.String())
	require.Equal(t, uint8(252), bump)

	addr, bump, err = types.FindProgramAddress([][]byte{[]byte("g")}, testProgramID)
	require.NoError(t, err)
	require.Equal(t, "EbeQa2RsJZbCXNZdirks7cRTS79PpTBVCBsHuH1NSmQW", addr.String())
	require.Equal(t, uint8(248), bump)

	// 254 hashes onto the curve
	_, err = types.CreateProgramAddress([][]byte{[]byte("whitelist-state"), {254}}, testProgramID)
	require.ErrorIs(t, err, types.ErrInvalidSeeds)
}

func Test_FindProgramAddress_InvalidSeeds(t *testing.T) {
	_, _, err := types.FindProgramAddress([][]byte{bytes.Repeat([]byte{1}, types.MaxSeedLength+1)}, testProgramID)
	require.ErrorIs(t, err, types.ErrInvalidSeeds)

	seeds := make([][]byte, types.MaxSeeds)
	_, _, err = types.FindProgramAddress(seeds, testProgramID)
	require.ErrorIs(t, err, types.ErrInvalidSeeds)

	_, err = types.CreateProgramAddress(make([][]byte, types.MaxSeeds+1), testProgramID)
	require.ErrorIs(t, err, types.ErrInvalidSeeds)
}

func Test_IsOnCurve(t *testing.T) {
	// the program id is an ed25519 public key
	require.True(t, types.IsOnCurve(testProgramID))
}

func Test_MintFromDenom(t *testing.T) {
	mint := types.MintFromDenom("uwhite")
	require.False(t, mint.IsZero())
	require.Equal(t, mint, types.MintFromDenom("uwhite"))
	require.NotEqual(t, mint, types.MintFromDenom("uinit"))
}
