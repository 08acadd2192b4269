package keeper

import (
	"context"
	"errors"
	"strconv"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

// GetAccount returns the account stored at addr.
func (k Keeper) GetAccount(ctx context.Context, addr types.Pubkey) (types.Account, error) {
	acc, err := k.Accounts.Get(ctx, addr.Bytes())
	if errors.Is(err, collections.ErrNotFound) {
		return types.Account{}, types.ErrAccountNotFound.Wrapf("account %s", addr)
	} else if err != nil {
		return types.Account{}, err
	}

	return acc, nil
}

// HasAccount reports whether an account is stored at addr.
func (k Keeper) HasAccount(ctx context.Context, addr types.Pubkey) (bool, error) {
	return k.Accounts.Has(ctx, addr.Bytes())
}

// MinimumBalance returns the rent exempt balance of an account holding space bytes.
func (k Keeper) MinimumBalance(ctx context.Context, space int) (uint64, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return 0, err
	}

	return params.MinimumBalance(space)
}

// createAccount allocates a zeroed, program owned account of space bytes at addr.
// The rent exempt balance is collected from payer. An account which already
// exists at addr is never overwritten.
func (k Keeper) createAccount(ctx context.Context, payer, addr types.Pubkey, space int) (types.Account, error) {
	exists, err := k.HasAccount(ctx, addr)
	if err != nil {
		return types.Account{}, err
	} else if exists {
		return types.Account{}, types.ErrAlreadyInitialized.Wrapf("account %s already in use", addr)
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return types.Account{}, err
	}

	var lamports uint64
	if params.RentDenom != "" {
		if lamports, err = params.MinimumBalance(space); err != nil {
			return types.Account{}, err
		}
	}
	if lamports > 0 {
		rent := sdk.NewCoins(sdk.NewCoin(params.RentDenom, math.NewIntFromUint64(lamports)))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, types.PubkeyToAccAddress(payer), types.ModuleName, rent); err != nil {
			return types.Account{}, err
		}
	}

	acc := types.Account{
		Lamports: lamports,
		Owner:    k.programID,
		Data:     make([]byte, space),
	}
	if err := k.Accounts.Set(ctx, addr.Bytes(), acc); err != nil {
		return types.Account{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeCreateAccount,
		sdk.NewAttribute(types.AttributeKeyAccount, addr.String()),
		sdk.NewAttribute(types.AttributeKeyPayer, payer.String()),
		sdk.NewAttribute(types.AttributeKeyLamports, strconv.FormatUint(lamports, 10)),
		sdk.NewAttribute(types.AttributeKeySpace, strconv.Itoa(space)),
	))

	k.Logger(ctx).Info("account created", "account", addr.String(), "payer", payer.String(), "space", space)

	return acc, nil
}

// accountData returns a reader of the stored account data.
func (k Keeper) accountData(ctx context.Context) types.AccountDataFn {
	return func(addr types.Pubkey) ([]byte, error) {
		acc, err := k.GetAccount(ctx, addr)
		if err != nil {
			return nil, err
		}

		return acc.Data, nil
	}
}
