package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Whitelist Errors
var (
	// ErrNotAdmin raised when a non-admin signer tries to manage the whitelist
	ErrNotAdmin = errorsmod.Register(ModuleName, 2, "not authorized to manage whitelist")

	// ErrNotWhitelisted raised when the transfer owner is not in the whitelist
	ErrNotWhitelisted = errorsmod.Register(ModuleName, 3, "address not whitelisted")

	// ErrAlreadyInitialized raised when an account already exists at the derived address
	ErrAlreadyInitialized = errorsmod.Register(ModuleName, 4, "account already in use")

	// ErrCapacityExceeded raised when the whitelist account has no room for another address
	ErrCapacityExceeded = errorsmod.Register(ModuleName, 5, "whitelist capacity exceeded")

	// ErrInvalidInstructionData raised when the instruction data can not be decoded
	ErrInvalidInstructionData = errorsmod.Register(ModuleName, 6, "invalid instruction data")

	// ErrAccountNotFound raised when no account exists at the given address
	ErrAccountNotFound = errorsmod.Register(ModuleName, 7, "account not found")

	// ErrInvalidAccountData raised when the account data can not be decoded
	ErrInvalidAccountData = errorsmod.Register(ModuleName, 8, "invalid account data")

	// ErrInvalidSeeds raised when the seeds do not produce a valid program address
	ErrInvalidSeeds = errorsmod.Register(ModuleName, 9, "invalid seeds")

	// ErrMissingRequiredSignature raised when a required signer did not sign
	ErrMissingRequiredSignature = errorsmod.Register(ModuleName, 10, "missing required signature")

	// ErrNotEnoughAccountKeys raised when the instruction carries fewer accounts than required
	ErrNotEnoughAccountKeys = errorsmod.Register(ModuleName, 11, "not enough account keys")

	// ErrInvalidAccountOwner raised when the account is not owned by the program
	ErrInvalidAccountOwner = errorsmod.Register(ModuleName, 12, "invalid account owner")

	// ErrConstraintSeeds raised when an account does not match its derived address
	ErrConstraintSeeds = errorsmod.Register(ModuleName, 13, "a seeds constraint was violated")

	// ErrInvalidParams raised when the module params are invalid
	ErrInvalidParams = errorsmod.Register(ModuleName, 14, "invalid params")
)
