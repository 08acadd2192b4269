package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/initia-labs/whitelist-hook/x/whitelist/keeper"
	"github.com/initia-labs/whitelist-hook/x/whitelist/testutil"
	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

func Test_InitializeWhitelistState(t *testing.T) {
	ctx, k := createTestInput(t)
	admin := newPubkey(t)

	err := k.InitializeWhitelistState(ctx, admin)
	require.NoError(t, err)
	require.True(t, hasEvent(ctx, types.EventTypeInitializeWhitelistState))

	state, err := k.GetWhitelistState(ctx)
	require.NoError(t, err)
	require.Equal(t, admin, state.Admin)
	require.False(t, state.IsInitialized)
	require.Empty(t, state.AllowedAddresses())

	acc, err := k.GetAccount(ctx, k.WhitelistStateAddress())
	require.NoError(t, err)
	require.Equal(t, programID, acc.Owner)
	require.Len(t, acc.Data, types.WhitelistStateSize)
	require.Equal(t, minimumBalance(t, types.WhitelistStateSize), acc.Lamports)

	// the account can be created only once
	err = k.InitializeWhitelistState(ctx, newPubkey(t))
	require.ErrorIs(t, err, types.ErrAlreadyInitialized)

	state, err = k.GetWhitelistState(ctx)
	require.NoError(t, err)
	require.Equal(t, admin, state.Admin)
}

func Test_InitializeExtraAccountMetaList(t *testing.T) {
	ctx, k := createTestInput(t)
	admin := newPubkey(t)
	mint := mintPubkey(1)

	metaListAddr, err := k.InitializeExtraAccountMetaList(ctx, admin, mint)
	require.NoError(t, err)
	require.Equal(t, types.MustPubkeyFromBase58("8YHvx9HG4kLrEYgn7bSFFpTkQScGnBv7GK7gCZeJvozn"), metaListAddr)
	require.True(t, hasEvent(ctx, types.EventTypeInitializeExtraAccountMetaList))

	state, err := k.GetWhitelistState(ctx)
	require.NoError(t, err)
	require.Equal(t, admin, state.Admin)
	require.True(t, state.IsInitialized)
	require.Empty(t, state.AllowedAddresses())

	acc, err := k.GetAccount(ctx, metaListAddr)
	require.NoError(t, err)
	require.Len(t, acc.Data, types.ExtraAccountMetaListSizeOf(1))
	require.Equal(t, minimumBalance(t, types.ExtraAccountMetaListSizeOf(1)), acc.Lamports)

	addr, metas, err := k.GetExtraAccountMetaList(ctx, mint)
	require.NoError(t, err)
	require.Equal(t, metaListAddr, addr)

	expected, err := keeper.WhitelistExtraAccountMetas()
	require.NoError(t, err)
	require.Equal(t, expected, metas)
	require.False(t, metas[0].IsSigner)
	require.True(t, metas[0].IsWritable)

	// the whitelist state already exists, so no other mint can be registered
	_, err = k.InitializeExtraAccountMetaList(ctx, admin, mintPubkey(2))
	require.ErrorIs(t, err, types.ErrAlreadyInitialized)

	_, _, err = k.GetExtraAccountMetaList(ctx, mintPubkey(2))
	require.ErrorIs(t, err, types.ErrAccountNotFound)
}

func Test_InitializeExtraAccountMetaList_AfterInitialize(t *testing.T) {
	ctx, k := createTestInput(t)
	admin := newPubkey(t)

	require.NoError(t, k.InitializeWhitelistState(ctx, admin))

	_, err := k.InitializeExtraAccountMetaList(ctx, admin, mintPubkey(1))
	require.ErrorIs(t, err, types.ErrAlreadyInitialized)

	state, err := k.GetWhitelistState(ctx)
	require.NoError(t, err)
	require.False(t, state.IsInitialized)
}

func Test_InitializeExtraAccountMetaList_MetaListInUse(t *testing.T) {
	ctx, k := createTestInput(t)
	admin := newPubkey(t)
	mint := mintPubkey(1)

	metaListAddr, err := k.ExtraAccountMetaListAddress(mint)
	require.NoError(t, err)
	require.NoError(t, k.Accounts.Set(ctx, metaListAddr.Bytes(), types.Account{Owner: programID}))

	_, err = k.InitializeExtraAccountMetaList(ctx, admin, mint)
	require.ErrorIs(t, err, types.ErrAlreadyInitialized)
	require.False(t, hasEvent(ctx, types.EventTypeCreateAccount))

	// the whitelist state created before the failure is rolled back
	exists, err := k.HasAccount(ctx, k.WhitelistStateAddress())
	require.NoError(t, err)
	require.False(t, exists)

	_, err = k.GetWhitelistState(ctx)
	require.ErrorIs(t, err, types.ErrAccountNotFound)
}

func Test_InitializeWhitelistState_Rent(t *testing.T) {
	ctrl := gomock.NewController(t)
	bankKeeper := testutil.NewMockBankKeeper(ctrl)
	ctx, k := _createTestInput(t, dbm.NewMemDB(), bankKeeper)

	admin := newPubkey(t)
	rent := minimumBalance(t, types.WhitelistStateSize)
	require.Equal(t, uint64(12_340_080), rent)

	bankKeeper.EXPECT().
		SendCoinsFromAccountToModule(gomock.Any(), types.PubkeyToAccAddress(admin), types.ModuleName, sdk.NewCoins(sdk.NewCoin("uinit", math.NewIntFromUint64(rent)))).
		Return(nil)
	require.NoError(t, k.InitializeWhitelistState(ctx, admin))
}

func Test_InitializeWhitelistState_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	bankKeeper := testutil.NewMockBankKeeper(ctrl)
	ctx, k := _createTestInput(t, dbm.NewMemDB(), bankKeeper)

	bankKeeper.EXPECT().
		SendCoinsFromAccountToModule(gomock.Any(), gomock.Any(), types.ModuleName, gomock.Any()).
		Return(sdkerrors.ErrInsufficientFunds)

	err := k.InitializeWhitelistState(ctx, newPubkey(t))
	require.ErrorIs(t, err, sdkerrors.ErrInsufficientFunds)

	_, err = k.GetWhitelistState(ctx)
	require.ErrorIs(t, err, types.ErrAccountNotFound)
}

func Test_InitializeWhitelistState_RentDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	bankKeeper := testutil.NewMockBankKeeper(ctrl)
	ctx, k := _createTestInput(t, dbm.NewMemDB(), bankKeeper)

	params := types.DefaultParams()
	params.RentDenom = ""
	require.NoError(t, k.Params.Set(ctx, params))

	// no bank call is expected
	require.NoError(t, k.InitializeWhitelistState(ctx, newPubkey(t)))

	acc, err := k.GetAccount(ctx, k.WhitelistStateAddress())
	require.NoError(t, err)
	require.Zero(t, acc.Lamports)
}

func Test_AddToWhitelist(t *testing.T) {
	ctx, k := createTestInput(t)
	admin := newPubkey(t)
	addrA := newPubkey(t)
	_, err := k.InitializeExtraAccountMetaList(ctx, admin, mintPubkey(1))
	require.NoError(t, err)

	require.NoError(t, k.AddToWhitelist(ctx, admin, addrA))
	require.True(t, hasEvent(ctx, types.EventTypeAddToWhitelist))

	ok, err := k.IsWhitelisted(ctx, addrA)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, k.TransferHook(ctx, addrA, 100))
}

func Test_AddToWhitelist_NotAdmin(t *testing.T) {
	ctx, k := createTestInput(t)
	admin := newPubkey(t)
	addrA := newPubkey(t)
	require.NoError(t, k.InitializeWhitelistState(ctx, admin))
	require.NoError(t, k.AddToWhitelist(ctx, admin, addrA))

	before, err := k.GetAccount(ctx, k.WhitelistStateAddress())
	require.NoError(t, err)

	err = k.AddToWhitelist(ctx, newPubkey(t), newPubkey(t))
	require.ErrorIs(t, err, types.ErrNotAdmin)

	_, err = k.RemoveFromWhitelist(ctx, newPubkey(t), addrA)
	require.ErrorIs(t, err, types.ErrNotAdmin)

	after, err := k.GetAccount(ctx, k.WhitelistStateAddress())
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func Test_AddToWhitelist_NotInitialized(t *testing.T) {
	ctx, k := createTestInput(t)

	err := k.AddToWhitelist(ctx, newPubkey(t), newPubkey(t))
	require.ErrorIs(t, err, types.ErrAccountNotFound)
}

func Test_AddToWhitelist_Duplicates(t *testing.T) {
	ctx, k := createTestInput(t)
	admin := newPubkey(t)
	addrX := newPubkey(t)
	require.NoError(t, k.InitializeWhitelistState(ctx, admin))

	require.NoError(t, k.AddToWhitelist(ctx, admin, addrX))
	require.NoError(t, k.AddToWhitelist(ctx, admin, addrX))

	removed, err := k.RemoveFromWhitelist(ctx, admin, addrX)
	require.NoError(t, err)
	require.True(t, removed)

	state, err := k.GetWhitelistState(ctx)
	require.NoError(t, err)
	require.Equal(t, []types.Pubkey{addrX}, state.AllowedAddresses())

	ok, err := k.IsWhitelisted(ctx, addrX)
	require.NoError(t, err)
	require.True(t, ok)
}

func Test_AddToWhitelist_Capacity(t *testing.T) {
	ctx, k := createTestInput(t)
	admin := newPubkey(t)
	require.NoError(t, k.InitializeWhitelistState(ctx, admin))

	for i := 0; i < types.MaxAllowedAddresses; i++ {
		require.NoError(t, k.AddToWhitelist(ctx, admin, newPubkey(t)))
	}

	before, err := k.GetWhitelistState(ctx)
	require.NoError(t, err)
	require.Equal(t, types.MaxAllowedAddresses, before.Len())

	err = k.AddToWhitelist(ctx, admin, newPubkey(t))
	require.ErrorIs(t, err, types.ErrCapacityExceeded)

	after, err := k.GetWhitelistState(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func Test_RemoveFromWhitelist(t *testing.T) {
	ctx, k := createTestInput(t)
	admin := newPubkey(t)
	addrs := []types.Pubkey{newPubkey(t), newPubkey(t), newPubkey(t)}
	require.NoError(t, k.InitializeWhitelistState(ctx, admin))
	for _, addr := range addrs {
		require.NoError(t, k.AddToWhitelist(ctx, admin, addr))
	}

	removed, err := k.RemoveFromWhitelist(ctx, admin, addrs[1])
	require.NoError(t, err)
	require.True(t, removed)
	require.True(t, hasEvent(ctx, types.EventTypeRemoveFromWhitelist))

	state, err := k.GetWhitelistState(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []types.Pubkey{addrs[0], addrs[2]}, state.AllowedAddresses())

	err = k.TransferHook(ctx, addrs[1], 1)
	require.ErrorIs(t, err, types.ErrNotWhitelisted)
}

func Test_RemoveFromWhitelist_Absent(t *testing.T) {
	ctx, k := createTestInput(t)
	admin := newPubkey(t)
	addrA := newPubkey(t)
	require.NoError(t, k.InitializeWhitelistState(ctx, admin))
	require.NoError(t, k.AddToWhitelist(ctx, admin, addrA))

	before, err := k.GetWhitelistState(ctx)
	require.NoError(t, err)

	removed, err := k.RemoveFromWhitelist(ctx, admin, newPubkey(t))
	require.NoError(t, err)
	require.False(t, removed)

	after, err := k.GetWhitelistState(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func Test_TransferHook(t *testing.T) {
	ctx, k := createTestInput(t)
	admin := newPubkey(t)
	addrA := newPubkey(t)
	addrB := newPubkey(t)
	require.NoError(t, k.InitializeWhitelistState(ctx, admin))
	require.NoError(t, k.AddToWhitelist(ctx, admin, addrA))

	before, err := k.GetAccount(ctx, k.WhitelistStateAddress())
	require.NoError(t, err)

	require.NoError(t, k.TransferHook(ctx, addrA, 0))
	require.NoError(t, k.TransferHook(ctx, addrA, ^uint64(0)))

	err = k.TransferHook(ctx, addrB, 100)
	require.ErrorIs(t, err, types.ErrNotWhitelisted)

	// the admin is not implicitly whitelisted
	err = k.TransferHook(ctx, admin, 100)
	require.ErrorIs(t, err, types.ErrNotWhitelisted)

	after, err := k.GetAccount(ctx, k.WhitelistStateAddress())
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func Test_GetWhitelistState_InvalidOwner(t *testing.T) {
	ctx, k := createTestInput(t)
	require.NoError(t, k.InitializeWhitelistState(ctx, newPubkey(t)))

	acc, err := k.GetAccount(ctx, k.WhitelistStateAddress())
	require.NoError(t, err)
	acc.Owner = newPubkey(t)
	require.NoError(t, k.Accounts.Set(ctx, k.WhitelistStateAddress().Bytes(), acc))

	_, err = k.GetWhitelistState(ctx)
	require.ErrorIs(t, err, types.ErrInvalidAccountOwner)
}
