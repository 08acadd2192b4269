package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

// GetWhitelistState loads the whitelist state account.
func (k Keeper) GetWhitelistState(ctx context.Context) (types.WhitelistState, error) {
	acc, err := k.GetAccount(ctx, k.whitelistStateAddr)
	if err != nil {
		return types.WhitelistState{}, err
	}

	if acc.Owner != k.programID {
		return types.WhitelistState{}, types.ErrInvalidAccountOwner.Wrapf("whitelist state owned by %s", acc.Owner)
	}

	return types.UnmarshalWhitelistState(acc.Data)
}

func (k Keeper) setWhitelistState(ctx context.Context, state types.WhitelistState) error {
	acc, err := k.GetAccount(ctx, k.whitelistStateAddr)
	if err != nil {
		return err
	}

	bz := state.Marshal()
	if len(bz) > len(acc.Data) {
		return types.ErrCapacityExceeded.Wrapf("whitelist state needs %d bytes, account has %d", len(bz), len(acc.Data))
	}

	copy(acc.Data, bz)
	return k.Accounts.Set(ctx, k.whitelistStateAddr.Bytes(), acc)
}

func (k Keeper) createWhitelistState(ctx context.Context, payer types.Pubkey, isInitialized bool) error {
	if _, err := k.createAccount(ctx, payer, k.whitelistStateAddr, types.WhitelistStateSize); err != nil {
		return err
	}

	return k.setWhitelistState(ctx, types.NewWhitelistState(payer, isInitialized))
}

// InitializeWhitelistState creates the whitelist state account with payer as admin
// and no allowed address. The initialized flag is left unset on this path.
func (k Keeper) InitializeWhitelistState(ctx context.Context, payer types.Pubkey) error {
	if err := k.createWhitelistState(ctx, payer, false); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeInitializeWhitelistState,
		sdk.NewAttribute(types.AttributeKeyAccount, k.whitelistStateAddr.String()),
		sdk.NewAttribute(types.AttributeKeyAdmin, payer.String()),
	))

	k.Logger(ctx).Info("whitelist state initialized", "admin", payer.String())

	return nil
}

// WhitelistExtraAccountMetas returns the accounts the transfer hook needs on top of
// the Execute accounts: the whitelist state, derived from its literal seed.
func WhitelistExtraAccountMetas() ([]types.ExtraAccountMeta, error) {
	meta, err := types.NewExtraAccountMetaWithSeeds(
		[]types.Seed{types.LiteralSeed(types.WhitelistStateSeed)},
		false,
		true,
	)
	if err != nil {
		return nil, err
	}

	return []types.ExtraAccountMeta{meta}, nil
}

// InitializeExtraAccountMetaList registers the transfer hook of mint. It creates the
// extra account meta list account and the whitelist state, with payer as admin and
// the initialized flag set. It fails when either account already exists, in which
// case neither account is created.
func (k Keeper) InitializeExtraAccountMetaList(ctx context.Context, payer, mint types.Pubkey) (metaListAddr types.Pubkey, err error) {
	err = k.Atomic(ctx, func(ctx context.Context) error {
		metaListAddr, err = k.initializeExtraAccountMetaList(ctx, payer, mint)
		return err
	})
	if err != nil {
		return types.Pubkey{}, err
	}

	k.Logger(ctx).Info("extra account meta list initialized", "mint", mint.String(), "admin", payer.String())

	return metaListAddr, nil
}

func (k Keeper) initializeExtraAccountMetaList(ctx context.Context, payer, mint types.Pubkey) (types.Pubkey, error) {
	if err := k.createWhitelistState(ctx, payer, true); err != nil {
		return types.Pubkey{}, err
	}

	metaListAddr, err := k.ExtraAccountMetaListAddress(mint)
	if err != nil {
		return types.Pubkey{}, err
	}

	metas, err := WhitelistExtraAccountMetas()
	if err != nil {
		return types.Pubkey{}, err
	}

	acc, err := k.createAccount(ctx, payer, metaListAddr, types.ExtraAccountMetaListSizeOf(len(metas)))
	if err != nil {
		return types.Pubkey{}, err
	}

	if err := types.InitExtraAccountMetaList(acc.Data, types.ExecuteDiscriminator, metas); err != nil {
		return types.Pubkey{}, err
	}

	if err := k.Accounts.Set(ctx, metaListAddr.Bytes(), acc); err != nil {
		return types.Pubkey{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeInitializeExtraAccountMetaList,
		sdk.NewAttribute(types.AttributeKeyAccount, metaListAddr.String()),
		sdk.NewAttribute(types.AttributeKeyMint, mint.String()),
		sdk.NewAttribute(types.AttributeKeyAdmin, payer.String()),
	))

	return metaListAddr, nil
}

// GetExtraAccountMetaList returns the extra account metas registered for mint.
func (k Keeper) GetExtraAccountMetaList(ctx context.Context, mint types.Pubkey) (types.Pubkey, []types.ExtraAccountMeta, error) {
	metaListAddr, err := k.ExtraAccountMetaListAddress(mint)
	if err != nil {
		return types.Pubkey{}, nil, err
	}

	acc, err := k.GetAccount(ctx, metaListAddr)
	if err != nil {
		return types.Pubkey{}, nil, err
	}

	if acc.Owner != k.programID {
		return types.Pubkey{}, nil, types.ErrInvalidAccountOwner.Wrapf("extra account meta list owned by %s", acc.Owner)
	}

	metas, err := types.UnpackExtraAccountMetaList(acc.Data, types.ExecuteDiscriminator)
	if err != nil {
		return types.Pubkey{}, nil, err
	}

	return metaListAddr, metas, nil
}

// AddToWhitelist appends addr to the whitelist. Only the admin may call it.
func (k Keeper) AddToWhitelist(ctx context.Context, admin, addr types.Pubkey) error {
	state, err := k.GetWhitelistState(ctx)
	if err != nil {
		return err
	}

	if state.Admin != admin {
		return types.ErrNotAdmin.Wrapf("expected %s, got %s", state.Admin, admin)
	}

	if err := state.Push(addr); err != nil {
		return err
	}

	if err := k.setWhitelistState(ctx, state); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAddToWhitelist,
		sdk.NewAttribute(types.AttributeKeyAdmin, admin.String()),
		sdk.NewAttribute(types.AttributeKeyAddress, addr.String()),
	))

	k.Logger(ctx).Info("address added to whitelist", "address", addr.String(), "size", state.Len())

	return nil
}

// RemoveFromWhitelist removes the first occurrence of addr from the whitelist.
// Removing an absent address succeeds and leaves the whitelist untouched. Only the
// admin may call it.
func (k Keeper) RemoveFromWhitelist(ctx context.Context, admin, addr types.Pubkey) (bool, error) {
	state, err := k.GetWhitelistState(ctx)
	if err != nil {
		return false, err
	}

	if state.Admin != admin {
		return false, types.ErrNotAdmin.Wrapf("expected %s, got %s", state.Admin, admin)
	}

	removed := state.Remove(addr)
	if removed {
		if err := k.setWhitelistState(ctx, state); err != nil {
			return false, err
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRemoveFromWhitelist,
		sdk.NewAttribute(types.AttributeKeyAdmin, admin.String()),
		sdk.NewAttribute(types.AttributeKeyAddress, addr.String()),
		sdk.NewAttribute(types.AttributeKeyRemoved, strconv.FormatBool(removed)),
	))

	k.Logger(ctx).Info("address removed from whitelist", "address", addr.String(), "removed", removed)

	return removed, nil
}

// IsWhitelisted reports whether addr is in the whitelist.
func (k Keeper) IsWhitelisted(ctx context.Context, addr types.Pubkey) (bool, error) {
	state, err := k.GetWhitelistState(ctx)
	if err != nil {
		return false, err
	}

	return state.Contains(addr), nil
}
