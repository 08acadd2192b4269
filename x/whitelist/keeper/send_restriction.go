package keeper

import (
	"context"
	"errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

var _ banktypes.SendRestrictionFn = Keeper{}.SendRestrictionFn

// SendRestrictionFn runs the transfer hook for every coin whose mint has a
// registered extra account meta list. It plays the token program's part: the
// hook accounts are resolved from the registered metas and the program is
// invoked with an Execute instruction. Coins without registration pass through.
func (k Keeper) SendRestrictionFn(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) (sdk.AccAddress, error) {
	for _, coin := range amt {
		mint := types.MintFromDenom(coin.Denom)
		metaListAddr, metas, err := k.GetExtraAccountMetaList(ctx, mint)
		if errors.Is(err, types.ErrAccountNotFound) {
			continue
		} else if err != nil {
			return nil, err
		}

		if !coin.Amount.IsUint64() {
			return nil, sdkerrors.ErrInvalidCoins.Wrapf("amount of %s exceeds u64", coin.Denom)
		}

		owner, err := types.PubkeyFromAccAddress(fromAddr)
		if err != nil {
			return nil, err
		}

		destination, err := types.PubkeyFromAccAddress(toAddr)
		if err != nil {
			return nil, err
		}

		data := types.NewExecuteInstructionData(coin.Amount.Uint64())
		accounts := []types.AccountMeta{
			types.NewReadonlyAccountMeta(owner, false),
			types.NewReadonlyAccountMeta(mint, false),
			types.NewReadonlyAccountMeta(destination, false),
			types.NewReadonlyAccountMeta(owner, false),
			types.NewReadonlyAccountMeta(metaListAddr, false),
		}

		accounts, err = types.ResolveExtraAccountMetas(metas, data, accounts, k.programID, k.accountData(ctx))
		if err != nil {
			return nil, err
		}

		if err := k.ProcessInstruction(ctx, accounts, data); err != nil {
			return nil, err
		}
	}

	return toAddr, nil
}
