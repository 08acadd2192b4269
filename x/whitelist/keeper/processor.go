package keeper

import (
	"context"
	"encoding/binary"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

type instructionHandler func(k Keeper, ctx context.Context, accounts []types.AccountMeta, args []byte) error

var instructionHandlers = map[types.Discriminator]instructionHandler{
	types.InitializeWhitelistStateInstruction:       Keeper.processInitializeWhitelistState,
	types.InitializeExtraAccountMetaListInstruction: Keeper.processInitializeExtraAccountMetaList,
	types.AddToWhitelistInstruction:                 Keeper.processAddToWhitelist,
	types.RemoveFromWhitelistInstruction:            Keeper.processRemoveFromWhitelist,
	types.TransferHookInstructionDiscriminator:      Keeper.processTransferHook,
}

// ProcessInstruction is the program entrypoint. Instruction data starting with one
// of the program discriminators is dispatched to its handler, anything else goes
// to Fallback. Either every effect of the instruction is applied or none is.
func (k Keeper) ProcessInstruction(ctx context.Context, accounts []types.AccountMeta, data []byte) error {
	return k.Atomic(ctx, func(ctx context.Context) error {
		if len(data) >= types.DiscriminatorLength {
			discriminator := types.Discriminator(data[:types.DiscriminatorLength])
			if handler, ok := instructionHandlers[discriminator]; ok {
				return handler(k, ctx, accounts, data[types.DiscriminatorLength:])
			}
		}

		return k.Fallback(ctx, accounts, data)
	})
}

// Fallback handles the instructions the token program sends through the transfer
// hook interface. Execute is forwarded to the transfer hook, every other
// instruction is rejected.
func (k Keeper) Fallback(ctx context.Context, accounts []types.AccountMeta, data []byte) error {
	ix, err := types.UnpackTransferHookInstruction(data)
	if err != nil {
		return err
	}

	switch ix.Kind {
	case types.TransferHookExecute:
		return k.executeTransferHook(ctx, accounts, ix.Amount)
	default:
		return types.ErrInvalidInstructionData.Wrapf("unsupported transfer hook instruction %s", ix.Kind)
	}
}

func (k Keeper) processInitializeWhitelistState(ctx context.Context, accounts []types.AccountMeta, _ []byte) error {
	// payer, whitelist_state, system_program
	if err := requireAccounts(accounts, 3); err != nil {
		return err
	}

	payer := accounts[0]
	if err := requireSigner(payer); err != nil {
		return err
	}
	if err := k.requireWhitelistState(accounts[1]); err != nil {
		return err
	}

	return k.InitializeWhitelistState(ctx, payer.Pubkey)
}

func (k Keeper) processInitializeExtraAccountMetaList(ctx context.Context, accounts []types.AccountMeta, _ []byte) error {
	// payer, extra_account_meta_list, mint, system_program, whitelist_state
	if err := requireAccounts(accounts, 5); err != nil {
		return err
	}

	payer, mint := accounts[0], accounts[2].Pubkey
	if err := requireSigner(payer); err != nil {
		return err
	}
	if err := k.requireExtraAccountMetaList(accounts[1], mint); err != nil {
		return err
	}
	if err := k.requireWhitelistState(accounts[4]); err != nil {
		return err
	}

	_, err := k.InitializeExtraAccountMetaList(ctx, payer.Pubkey, mint)
	return err
}

func (k Keeper) processAddToWhitelist(ctx context.Context, accounts []types.AccountMeta, args []byte) error {
	admin, addr, err := k.manageWhitelistArgs(accounts, args)
	if err != nil {
		return err
	}

	return k.AddToWhitelist(ctx, admin, addr)
}

func (k Keeper) processRemoveFromWhitelist(ctx context.Context, accounts []types.AccountMeta, args []byte) error {
	admin, addr, err := k.manageWhitelistArgs(accounts, args)
	if err != nil {
		return err
	}

	_, err = k.RemoveFromWhitelist(ctx, admin, addr)
	return err
}

func (k Keeper) manageWhitelistArgs(accounts []types.AccountMeta, args []byte) (types.Pubkey, types.Pubkey, error) {
	if len(args) < types.PubkeyLength {
		return types.Pubkey{}, types.Pubkey{}, types.ErrInvalidInstructionData.Wrap("missing address argument")
	}

	// admin, whitelist_state
	if err := requireAccounts(accounts, 2); err != nil {
		return types.Pubkey{}, types.Pubkey{}, err
	}

	admin := accounts[0]
	if err := requireSigner(admin); err != nil {
		return types.Pubkey{}, types.Pubkey{}, err
	}
	if err := k.requireWhitelistState(accounts[1]); err != nil {
		return types.Pubkey{}, types.Pubkey{}, err
	}

	return admin.Pubkey, types.Pubkey(args[:types.PubkeyLength]), nil
}

func (k Keeper) processTransferHook(ctx context.Context, accounts []types.AccountMeta, args []byte) error {
	if len(args) < 8 {
		return types.ErrInvalidInstructionData.Wrap("missing amount argument")
	}

	return k.executeTransferHook(ctx, accounts, binary.LittleEndian.Uint64(args[:8]))
}

func (k Keeper) executeTransferHook(ctx context.Context, accounts []types.AccountMeta, amount uint64) error {
	// source_token, mint, destination_token, owner, extra_account_meta_list, whitelist_state
	if err := requireAccounts(accounts, 6); err != nil {
		return err
	}

	if err := k.requireExtraAccountMetaList(accounts[4], accounts[1].Pubkey); err != nil {
		return err
	}
	if err := k.requireWhitelistState(accounts[5]); err != nil {
		return err
	}

	return k.TransferHook(ctx, accounts[3].Pubkey, amount)
}

func requireAccounts(accounts []types.AccountMeta, n int) error {
	if len(accounts) < n {
		return types.ErrNotEnoughAccountKeys.Wrapf("expected %d accounts, got %d", n, len(accounts))
	}

	return nil
}

func requireSigner(account types.AccountMeta) error {
	if !account.IsSigner {
		return types.ErrMissingRequiredSignature.Wrapf("account %s", account.Pubkey)
	}

	return nil
}

func (k Keeper) requireWhitelistState(account types.AccountMeta) error {
	if account.Pubkey != k.whitelistStateAddr {
		return types.ErrConstraintSeeds.Wrapf("whitelist state: expected %s, got %s", k.whitelistStateAddr, account.Pubkey)
	}

	return nil
}

func (k Keeper) requireExtraAccountMetaList(account types.AccountMeta, mint types.Pubkey) error {
	expected, err := k.ExtraAccountMetaListAddress(mint)
	if err != nil {
		return err
	}

	if account.Pubkey != expected {
		return types.ErrConstraintSeeds.Wrapf("extra account meta list: expected %s, got %s", expected, account.Pubkey)
	}

	return nil
}
