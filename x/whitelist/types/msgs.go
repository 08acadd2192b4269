package types

import (
	"cosmossdk.io/core/address"
	"cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var (
	_ sdk.Msg = &MsgInitializeWhitelistState{}
	_ sdk.Msg = &MsgInitializeExtraAccountMetaList{}
	_ sdk.Msg = &MsgAddToWhitelist{}
	_ sdk.Msg = &MsgRemoveFromWhitelist{}
)

// NewMsgInitializeWhitelistState creates a new MsgInitializeWhitelistState instance
func NewMsgInitializeWhitelistState(payer string) *MsgInitializeWhitelistState {
	return &MsgInitializeWhitelistState{Payer: payer}
}

// NewMsgInitializeExtraAccountMetaList creates a new MsgInitializeExtraAccountMetaList instance
func NewMsgInitializeExtraAccountMetaList(payer, denom string) *MsgInitializeExtraAccountMetaList {
	return &MsgInitializeExtraAccountMetaList{Payer: payer, Denom: denom}
}

// NewMsgAddToWhitelist creates a new MsgAddToWhitelist instance
func NewMsgAddToWhitelist(admin, addr string) *MsgAddToWhitelist {
	return &MsgAddToWhitelist{Admin: admin, Address: addr}
}

// NewMsgRemoveFromWhitelist creates a new MsgRemoveFromWhitelist instance
func NewMsgRemoveFromWhitelist(admin, addr string) *MsgRemoveFromWhitelist {
	return &MsgRemoveFromWhitelist{Admin: admin, Address: addr}
}

// Validate performs a basic check of the MsgInitializeWhitelistState fields.
func (msg MsgInitializeWhitelistState) Validate(ac address.Codec) error {
	return validateAddress(ac, msg.Payer)
}

// Validate performs a basic check of the MsgInitializeExtraAccountMetaList fields.
func (msg MsgInitializeExtraAccountMetaList) Validate(ac address.Codec) error {
	if err := validateAddress(ac, msg.Payer); err != nil {
		return err
	}

	return sdk.ValidateDenom(msg.Denom)
}

// Validate performs a basic check of the MsgAddToWhitelist fields.
func (msg MsgAddToWhitelist) Validate(ac address.Codec) error {
	if err := validateAddress(ac, msg.Admin); err != nil {
		return err
	}

	return validateAddress(ac, msg.Address)
}

// Validate performs a basic check of the MsgRemoveFromWhitelist fields.
func (msg MsgRemoveFromWhitelist) Validate(ac address.Codec) error {
	if err := validateAddress(ac, msg.Admin); err != nil {
		return err
	}

	return validateAddress(ac, msg.Address)
}

func validateAddress(ac address.Codec, addr string) error {
	bz, err := ac.StringToBytes(addr)
	if err != nil {
		return errors.Wrapf(sdkerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}

	if _, err := PubkeyFromAccAddress(bz); err != nil {
		return err
	}

	return nil
}
