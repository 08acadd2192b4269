package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/initia-labs/whitelist-hook/x/whitelist/keeper"
	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

func Test_MsgServer_InitializeWhitelistState(t *testing.T) {
	ctx, k := createTestInput(t)
	ms := keeper.NewMsgServerImpl(k)
	admin := newPubkey(t)

	res, err := ms.InitializeWhitelistState(ctx, types.NewMsgInitializeWhitelistState(types.PubkeyToAccAddress(admin).String()))
	require.NoError(t, err)
	require.Equal(t, k.WhitelistStateAddress().String(), res.WhitelistState)
	require.True(t, hasEvent(ctx, types.EventTypeInitializeWhitelistState))

	_, err = ms.InitializeWhitelistState(ctx, types.NewMsgInitializeWhitelistState(types.PubkeyToAccAddress(admin).String()))
	require.ErrorIs(t, err, types.ErrAlreadyInitialized)

	_, err = ms.InitializeWhitelistState(ctx, types.NewMsgInitializeWhitelistState("invalid"))
	require.ErrorIs(t, err, sdkerrors.ErrInvalidAddress)
}

func Test_MsgServer_InitializeExtraAccountMetaList(t *testing.T) {
	ctx, k := createTestInput(t)
	ms := keeper.NewMsgServerImpl(k)
	admin := newPubkey(t)

	_, err := ms.InitializeExtraAccountMetaList(ctx, types.NewMsgInitializeExtraAccountMetaList(types.PubkeyToAccAddress(admin).String(), "!"))
	require.Error(t, err)

	res, err := ms.InitializeExtraAccountMetaList(ctx, types.NewMsgInitializeExtraAccountMetaList(types.PubkeyToAccAddress(admin).String(), "uwhite"))
	require.NoError(t, err)
	require.Equal(t, k.WhitelistStateAddress().String(), res.WhitelistState)

	expected, err := k.ExtraAccountMetaListAddress(types.MintFromDenom("uwhite"))
	require.NoError(t, err)
	require.Equal(t, expected.String(), res.ExtraAccountMetaList)

	state, err := k.GetWhitelistState(ctx)
	require.NoError(t, err)
	require.True(t, state.IsInitialized)
	require.Equal(t, admin, state.Admin)
}

func Test_MsgServer_AddRemove(t *testing.T) {
	ctx, k := createTestInput(t)
	ms := keeper.NewMsgServerImpl(k)
	admin := newPubkey(t)
	addrA := newPubkey(t)
	_, err := ms.InitializeWhitelistState(ctx, types.NewMsgInitializeWhitelistState(types.PubkeyToAccAddress(admin).String()))
	require.NoError(t, err)

	_, err = ms.AddToWhitelist(ctx, types.NewMsgAddToWhitelist(types.PubkeyToAccAddress(admin).String(), types.PubkeyToAccAddress(addrA).String()))
	require.NoError(t, err)

	ok, err := k.IsWhitelisted(ctx, addrA)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = ms.AddToWhitelist(ctx, types.NewMsgAddToWhitelist(types.PubkeyToAccAddress(newPubkey(t)).String(), types.PubkeyToAccAddress(addrA).String()))
	require.ErrorIs(t, err, types.ErrNotAdmin)

	_, err = ms.RemoveFromWhitelist(ctx, types.NewMsgRemoveFromWhitelist(types.PubkeyToAccAddress(newPubkey(t)).String(), types.PubkeyToAccAddress(addrA).String()))
	require.ErrorIs(t, err, types.ErrNotAdmin)

	res, err := ms.RemoveFromWhitelist(ctx, types.NewMsgRemoveFromWhitelist(types.PubkeyToAccAddress(admin).String(), types.PubkeyToAccAddress(addrA).String()))
	require.NoError(t, err)
	require.True(t, res.Removed)

	res, err = ms.RemoveFromWhitelist(ctx, types.NewMsgRemoveFromWhitelist(types.PubkeyToAccAddress(admin).String(), types.PubkeyToAccAddress(addrA).String()))
	require.NoError(t, err)
	require.False(t, res.Removed)

	ok, err = k.IsWhitelisted(ctx, addrA)
	require.NoError(t, err)
	require.False(t, ok)
}

func Test_MsgServer_AddToWhitelist_Capacity(t *testing.T) {
	ctx, k := createTestInput(t)
	ms := keeper.NewMsgServerImpl(k)
	admin := newPubkey(t)
	_, err := ms.InitializeWhitelistState(ctx, types.NewMsgInitializeWhitelistState(types.PubkeyToAccAddress(admin).String()))
	require.NoError(t, err)

	for i := 0; i < types.MaxAllowedAddresses; i++ {
		_, err := ms.AddToWhitelist(ctx, types.NewMsgAddToWhitelist(types.PubkeyToAccAddress(admin).String(), types.PubkeyToAccAddress(newPubkey(t)).String()))
		require.NoError(t, err)
	}

	_, err = ms.AddToWhitelist(ctx, types.NewMsgAddToWhitelist(types.PubkeyToAccAddress(admin).String(), types.PubkeyToAccAddress(newPubkey(t)).String()))
	require.ErrorIs(t, err, types.ErrCapacityExceeded)
}
