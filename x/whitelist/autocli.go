package whitelist

import (
	autocliv1 "cosmossdk.io/api/cosmos/autocli/v1"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

// AutoCLIOptions implements the autocli.HasAutoCLIConfig interface.
func (am AppModule) AutoCLIOptions() *autocliv1.ModuleOptions {
	return &autocliv1.ModuleOptions{
		Query: &autocliv1.ServiceCommandDescriptor{
			Service: types.Query_serviceDesc.ServiceName,
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod: "Params",
					Use:       "params",
					Short:     "Query the parameters of the whitelist module",
				},
				{
					RpcMethod: "WhitelistState",
					Use:       "whitelist-state",
					Short:     "Query the whitelist state account",
				},
				{
					RpcMethod:      "IsWhitelisted",
					Use:            "is-whitelisted [address]",
					Short:          "Query whether an address is in the whitelist",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "address"}},
				},
				{
					RpcMethod:      "ExtraAccountMetaList",
					Use:            "extra-account-meta-list [denom]",
					Short:          "Query the extra account metas registered for a denom",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "denom"}},
				},
			},
		},
		Tx: &autocliv1.ServiceCommandDescriptor{
			Service: types.Msg_serviceDesc.ServiceName,
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod: "InitializeWhitelistState",
					Use:       "initialize-whitelist-state",
					Short:     "Create the whitelist state with the signer as admin",
				},
				{
					RpcMethod:      "InitializeExtraAccountMetaList",
					Use:            "initialize-extra-account-meta-list [denom]",
					Short:          "Register the transfer hook of a denom",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "denom"}},
				},
				{
					RpcMethod:      "AddToWhitelist",
					Use:            "add-to-whitelist [address]",
					Short:          "Add an address to the whitelist",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "address"}},
				},
				{
					RpcMethod:      "RemoveFromWhitelist",
					Use:            "remove-from-whitelist [address]",
					Short:          "Remove an address from the whitelist",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "address"}},
				},
			},
		},
	}
}
