package keeper

import (
	"context"

	metrics "github.com/hashicorp/go-metrics"

	"github.com/cosmos/cosmos-sdk/telemetry"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

// TransferHook validates a transfer right before it is finalized. It succeeds iff
// owner, the authority of the source holding, is whitelisted. The amount does not
// take part in the decision. The whitelist is never mutated.
func (k Keeper) TransferHook(ctx context.Context, owner types.Pubkey, amount uint64) (err error) {
	defer func() {
		result := types.LabelAccepted
		if err != nil {
			result = types.LabelRejected
		}

		telemetry.IncrCounterWithLabels(
			[]string{types.ModuleName, "transfer_hook"},
			1,
			[]metrics.Label{telemetry.NewLabel(types.LabelResult, result)},
		)
	}()

	state, err := k.GetWhitelistState(ctx)
	if err != nil {
		return err
	}

	if !state.Contains(owner) {
		return types.ErrNotWhitelisted.Wrapf("owner %s", owner)
	}

	k.Logger(ctx).Debug("transfer approved", "owner", owner.String(), "amount", amount)

	return nil
}
