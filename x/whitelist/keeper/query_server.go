package keeper

import (
	"context"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

var _ types.QueryServer = QueryServerImpl{}

type QueryServerImpl struct {
	*Keeper
}

// NewQueryServer returns an implementation of the whitelist QueryServer interface
// for the provided Keeper.
func NewQueryServer(k *Keeper) QueryServerImpl {
	return QueryServerImpl{k}
}

// Params implements types.QueryServer.
func (q QueryServerImpl) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	params, err := q.Keeper.Params.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryParamsResponse{Params: params}, nil
}

// WhitelistState implements types.QueryServer.
func (q QueryServerImpl) WhitelistState(ctx context.Context, req *types.QueryWhitelistStateRequest) (*types.QueryWhitelistStateResponse, error) {
	state, err := q.GetWhitelistState(ctx)
	if err != nil {
		return nil, err
	}

	acc, err := q.GetAccount(ctx, q.whitelistStateAddr)
	if err != nil {
		return nil, err
	}

	genState := types.NewGenesisWhitelistState(state, acc.Lamports)
	return &types.QueryWhitelistStateResponse{
		Address:          q.whitelistStateAddr.String(),
		IsInitialized:    genState.IsInitialized,
		Admin:            genState.Admin,
		AllowedAddresses: genState.AllowedAddresses,
		Lamports:         genState.Lamports,
	}, nil
}

// IsWhitelisted implements types.QueryServer.
func (q QueryServerImpl) IsWhitelisted(ctx context.Context, req *types.QueryIsWhitelistedRequest) (*types.QueryIsWhitelistedResponse, error) {
	addr, err := q.pubkeyFromString(req.Address)
	if err != nil {
		return nil, err
	}

	whitelisted, err := q.Keeper.IsWhitelisted(ctx, addr)
	if err != nil {
		return nil, err
	}

	return &types.QueryIsWhitelistedResponse{Whitelisted: whitelisted}, nil
}

// ExtraAccountMetaList implements types.QueryServer.
func (q QueryServerImpl) ExtraAccountMetaList(ctx context.Context, req *types.QueryExtraAccountMetaListRequest) (*types.QueryExtraAccountMetaListResponse, error) {
	mint := types.MintFromDenom(req.Denom)
	addr, metas, err := q.GetExtraAccountMetaList(ctx, mint)
	if err != nil {
		return nil, err
	}

	return &types.QueryExtraAccountMetaListResponse{
		Address:           addr.String(),
		Mint:              mint.String(),
		ExtraAccountMetas: types.NewExtraAccountMetaInfos(metas),
	}, nil
}
