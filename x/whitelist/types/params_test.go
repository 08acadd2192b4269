package types_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

func Test_Params(t *testing.T) {
	params := types.DefaultParams()
	require.NoError(t, params.Validate())

	balance, err := params.MinimumBalance(types.WhitelistStateSize)
	require.NoError(t, err)
	require.Equal(t, uint64((128+1645)*3480*2), balance)

	balance, err = params.MinimumBalance(types.ExtraAccountMetaListSizeOf(1))
	require.NoError(t, err)
	require.Equal(t, uint64((128+51)*3480*2), balance)
	require.Contains(t, params.String(), "rent_denom: uinit")

	require.NoError(t, types.NewParams("", 0, 0).Validate())
	require.ErrorIs(t, types.NewParams("1x", 1, 1).Validate(), types.ErrInvalidParams)
}

func Test_Params_MinimumBalanceOverflow(t *testing.T) {
	params := types.NewParams("uinit", math.MaxUint64/2, 2)
	_, err := params.MinimumBalance(types.WhitelistStateSize)
	require.ErrorIs(t, err, types.ErrInvalidParams)
	require.ErrorIs(t, params.Validate(), types.ErrInvalidParams)

	// largest rate whose whitelist state rent still fits
	rate := uint64(math.MaxUint64) / uint64(128+types.WhitelistStateSize)
	params = types.NewParams("uinit", rate, 1)
	require.NoError(t, params.Validate())

	balance, err := params.MinimumBalance(types.WhitelistStateSize)
	require.NoError(t, err)
	require.Equal(t, rate*uint64(128+types.WhitelistStateSize), balance)

	params.ExemptionThreshold = 2
	require.ErrorIs(t, params.Validate(), types.ErrInvalidParams)

	_, err = types.DefaultParams().MinimumBalance(-1)
	require.ErrorIs(t, err, types.ErrInvalidParams)
}

func Test_AccountValueCodec(t *testing.T) {
	codec := types.AccountValueCodec{}
	acc := types.Account{Lamports: 1_245_840, Owner: testProgramID, Data: []byte{1, 2, 3}}

	bz, err := codec.Encode(acc)
	require.NoError(t, err)
	require.Len(t, bz, 8+32+4+3)

	decoded, err := codec.Decode(bz)
	require.NoError(t, err)
	require.Equal(t, acc, decoded)

	_, err = codec.Decode(bz[:len(bz)-1])
	require.Error(t, err)

	_, err = codec.Decode(append(bz, 0))
	require.Error(t, err)
}
