package types

import (
	"bytes"
	"encoding/binary"
)

// Discriminators of the program's own instructions.
var (
	InitializeWhitelistStateInstruction       = InstructionDiscriminator("initialize_whitelist_state")
	InitializeExtraAccountMetaListInstruction = InstructionDiscriminator("initialize_extra_account_meta_list")
	AddToWhitelistInstruction                 = InstructionDiscriminator("add_to_whitelist")
	RemoveFromWhitelistInstruction            = InstructionDiscriminator("remove_from_whitelist")
	TransferHookInstructionDiscriminator      = InstructionDiscriminator("transfer_hook")
)

// NewInitializeWhitelistStateInstructionData encodes initialize_whitelist_state.
// Accounts: [payer (signer, writable), whitelist_state (writable), system_program].
func NewInitializeWhitelistStateInstructionData() []byte {
	return bytes.Clone(InitializeWhitelistStateInstruction[:])
}

// NewInitializeExtraAccountMetaListInstructionData encodes initialize_extra_account_meta_list.
// Accounts: [payer (signer, writable), extra_account_meta_list (writable), mint,
// system_program, whitelist_state (writable)].
func NewInitializeExtraAccountMetaListInstructionData() []byte {
	return bytes.Clone(InitializeExtraAccountMetaListInstruction[:])
}

// NewAddToWhitelistInstructionData encodes add_to_whitelist(address).
// Accounts: [admin (signer), whitelist_state (writable)].
func NewAddToWhitelistInstructionData(addr Pubkey) []byte {
	return append(AddToWhitelistInstruction[:], addr[:]...)
}

// NewRemoveFromWhitelistInstructionData encodes remove_from_whitelist(address).
// Accounts: [admin (signer), whitelist_state (writable)].
func NewRemoveFromWhitelistInstructionData(addr Pubkey) []byte {
	return append(RemoveFromWhitelistInstruction[:], addr[:]...)
}

// NewTransferHookInstructionData encodes transfer_hook(amount).
// Accounts: [source_token, mint, destination_token, owner, extra_account_meta_list, whitelist_state].
func NewTransferHookInstructionData(amount uint64) []byte {
	data := make([]byte, DiscriminatorLength+8)
	copy(data, TransferHookInstructionDiscriminator[:])
	binary.LittleEndian.PutUint64(data[DiscriminatorLength:], amount)
	return data
}
