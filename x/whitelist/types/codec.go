package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/legacy"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/msgservice"
)

// RegisterLegacyAminoCodec registers the whitelist messages on the provided
// LegacyAmino codec. These types are used for Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	legacy.RegisterAminoMsg(cdc, &MsgInitializeWhitelistState{}, "whitelist/MsgInitializeWhitelistState")
	legacy.RegisterAminoMsg(cdc, &MsgInitializeExtraAccountMetaList{}, "whitelist/MsgInitExtraAccountMetas")
	legacy.RegisterAminoMsg(cdc, &MsgAddToWhitelist{}, "whitelist/MsgAddToWhitelist")
	legacy.RegisterAminoMsg(cdc, &MsgRemoveFromWhitelist{}, "whitelist/MsgRemoveFromWhitelist")

	cdc.RegisterConcrete(Params{}, "whitelist/Params", nil)
}

// RegisterInterfaces registers the whitelist messages to protobuf Any.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations(
		(*sdk.Msg)(nil),
		&MsgInitializeWhitelistState{},
		&MsgInitializeExtraAccountMetaList{},
		&MsgAddToWhitelist{},
		&MsgRemoveFromWhitelist{},
	)

	msgservice.RegisterMsgServiceDesc(registry, &_Msg_serviceDesc)
}
