package keeper

import (
	"context"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

type msgServer struct {
	*Keeper
}

var _ types.MsgServer = msgServer{}

// NewMsgServerImpl returns an implementation of the whitelist MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(k *Keeper) types.MsgServer {
	return &msgServer{Keeper: k}
}

// InitializeWhitelistState implements types.MsgServer.
func (ms msgServer) InitializeWhitelistState(ctx context.Context, msg *types.MsgInitializeWhitelistState) (*types.MsgInitializeWhitelistStateResponse, error) {
	if err := msg.Validate(ms.ac); err != nil {
		return nil, err
	}

	payer, err := ms.pubkeyFromString(msg.Payer)
	if err != nil {
		return nil, err
	}

	err = ms.Atomic(ctx, func(ctx context.Context) error {
		return ms.Keeper.InitializeWhitelistState(ctx, payer)
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgInitializeWhitelistStateResponse{WhitelistState: ms.whitelistStateAddr.String()}, nil
}

// InitializeExtraAccountMetaList implements types.MsgServer.
func (ms msgServer) InitializeExtraAccountMetaList(ctx context.Context, msg *types.MsgInitializeExtraAccountMetaList) (*types.MsgInitializeExtraAccountMetaListResponse, error) {
	if err := msg.Validate(ms.ac); err != nil {
		return nil, err
	}

	payer, err := ms.pubkeyFromString(msg.Payer)
	if err != nil {
		return nil, err
	}

	var metaListAddr types.Pubkey
	err = ms.Atomic(ctx, func(ctx context.Context) error {
		metaListAddr, err = ms.Keeper.InitializeExtraAccountMetaList(ctx, payer, types.MintFromDenom(msg.Denom))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgInitializeExtraAccountMetaListResponse{
		ExtraAccountMetaList: metaListAddr.String(),
		WhitelistState:       ms.whitelistStateAddr.String(),
	}, nil
}

// AddToWhitelist implements types.MsgServer.
func (ms msgServer) AddToWhitelist(ctx context.Context, msg *types.MsgAddToWhitelist) (*types.MsgAddToWhitelistResponse, error) {
	if err := msg.Validate(ms.ac); err != nil {
		return nil, err
	}

	admin, err := ms.pubkeyFromString(msg.Admin)
	if err != nil {
		return nil, err
	}

	addr, err := ms.pubkeyFromString(msg.Address)
	if err != nil {
		return nil, err
	}

	err = ms.Atomic(ctx, func(ctx context.Context) error {
		return ms.Keeper.AddToWhitelist(ctx, admin, addr)
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgAddToWhitelistResponse{}, nil
}

// RemoveFromWhitelist implements types.MsgServer.
func (ms msgServer) RemoveFromWhitelist(ctx context.Context, msg *types.MsgRemoveFromWhitelist) (*types.MsgRemoveFromWhitelistResponse, error) {
	if err := msg.Validate(ms.ac); err != nil {
		return nil, err
	}

	admin, err := ms.pubkeyFromString(msg.Admin)
	if err != nil {
		return nil, err
	}

	addr, err := ms.pubkeyFromString(msg.Address)
	if err != nil {
		return nil, err
	}

	var removed bool
	err = ms.Atomic(ctx, func(ctx context.Context) error {
		removed, err = ms.Keeper.RemoveFromWhitelist(ctx, admin, addr)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgRemoveFromWhitelistResponse{Removed: removed}, nil
}

func (k Keeper) pubkeyFromString(addr string) (types.Pubkey, error) {
	bz, err := k.ac.StringToBytes(addr)
	if err != nil {
		return types.Pubkey{}, err
	}

	return types.PubkeyFromAccAddress(bz)
}
