package keeper

import (
	"context"
	"errors"
	"fmt"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

// InitGenesis initializes the whitelist module's state from a given genesis state.
// Accounts are created with their exported balance and no rent is collected.
func (k Keeper) InitGenesis(ctx context.Context, genState *types.GenesisState) error {
	if err := k.Params.Set(ctx, genState.Params); err != nil {
		return err
	}

	if genState.WhitelistState != nil {
		state, err := genState.WhitelistState.ToWhitelistState()
		if err != nil {
			return err
		}

		acc := types.Account{
			Lamports: genState.WhitelistState.Lamports,
			Owner:    k.programID,
			Data:     state.Marshal(),
		}
		if err := k.Accounts.Set(ctx, k.whitelistStateAddr.Bytes(), acc); err != nil {
			return err
		}
	}

	for _, genAcc := range genState.Accounts {
		addr, acc, err := genAcc.ToAccount()
		if err != nil {
			return err
		}

		if addr == k.whitelistStateAddr {
			return fmt.Errorf("whitelist state must be set through whitelist_state")
		}

		if err := k.Accounts.Set(ctx, addr.Bytes(), acc); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis returns the whitelist module's genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return nil, err
	}

	genState := types.NewGenesisState(params, nil)

	state, err := k.GetWhitelistState(ctx)
	if err == nil {
		acc, err := k.GetAccount(ctx, k.whitelistStateAddr)
		if err != nil {
			return nil, err
		}

		genState.WhitelistState = types.NewGenesisWhitelistState(state, acc.Lamports)
	} else if !errors.Is(err, types.ErrAccountNotFound) {
		return nil, err
	}

	err = k.Accounts.Walk(ctx, nil, func(addr []byte, acc types.Account) (stop bool, err error) {
		pk, err := types.PubkeyFromBytes(addr)
		if err != nil {
			return true, err
		}

		if pk != k.whitelistStateAddr {
			genState.Accounts = append(genState.Accounts, types.NewGenesisAccount(pk, acc))
		}

		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return genState, nil
}
