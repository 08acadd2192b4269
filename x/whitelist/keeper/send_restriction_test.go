package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

func Test_SendRestrictionFn(t *testing.T) {
	ctx, k := createTestInput(t)
	admin := newPubkey(t)
	sender := newPubkey(t)
	recipient := types.PubkeyToAccAddress(newPubkey(t))

	_, err := k.InitializeExtraAccountMetaList(ctx, admin, types.MintFromDenom("uwhite"))
	require.NoError(t, err)
	require.NoError(t, k.AddToWhitelist(ctx, admin, sender))

	coins := sdk.NewCoins(sdk.NewInt64Coin("uwhite", 50))
	to, err := k.SendRestrictionFn(ctx, types.PubkeyToAccAddress(sender), recipient, coins)
	require.NoError(t, err)
	require.Equal(t, recipient, to)

	_, err = k.SendRestrictionFn(ctx, types.PubkeyToAccAddress(newPubkey(t)), recipient, coins)
	require.ErrorIs(t, err, types.ErrNotWhitelisted)

	// the recipient is not checked
	_, err = k.SendRestrictionFn(ctx, types.PubkeyToAccAddress(sender), types.PubkeyToAccAddress(newPubkey(t)), coins)
	require.NoError(t, err)
}

func Test_SendRestrictionFn_UnregisteredDenom(t *testing.T) {
	ctx, k := createTestInput(t)
	admin := newPubkey(t)
	stranger := types.PubkeyToAccAddress(newPubkey(t))
	recipient := types.PubkeyToAccAddress(newPubkey(t))

	// no whitelist at all
	_, err := k.SendRestrictionFn(ctx, stranger, recipient, sdk.NewCoins(sdk.NewInt64Coin("uinit", 10)))
	require.NoError(t, err)

	_, err = k.InitializeExtraAccountMetaList(ctx, admin, types.MintFromDenom("uwhite"))
	require.NoError(t, err)

	_, err = k.SendRestrictionFn(ctx, stranger, recipient, sdk.NewCoins(sdk.NewInt64Coin("uinit", 10)))
	require.NoError(t, err)

	// any registered coin in the batch runs the hook
	mixed := sdk.NewCoins(sdk.NewInt64Coin("uinit", 10), sdk.NewInt64Coin("uwhite", 10))
	_, err = k.SendRestrictionFn(ctx, stranger, recipient, mixed)
	require.ErrorIs(t, err, types.ErrNotWhitelisted)
}

func Test_SendRestrictionFn_AmountOverflow(t *testing.T) {
	ctx, k := createTestInput(t)
	admin := newPubkey(t)
	_, err := k.InitializeExtraAccountMetaList(ctx, admin, types.MintFromDenom("uwhite"))
	require.NoError(t, err)
	require.NoError(t, k.AddToWhitelist(ctx, admin, admin))

	huge := math.NewIntFromUint64(^uint64(0)).AddRaw(1)
	_, err = k.SendRestrictionFn(ctx, types.PubkeyToAccAddress(admin), types.PubkeyToAccAddress(newPubkey(t)), sdk.NewCoins(sdk.NewCoin("uwhite", huge)))
	require.Error(t, err)
}
