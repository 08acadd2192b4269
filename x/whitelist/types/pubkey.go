package types

import (
	"bytes"

	"github.com/gagliardetto/solana-go"

	"cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// PubkeyLength is the byte length of an account identity.
const PubkeyLength = solana.PublicKeyLength

// legacyAddressLength is the length of secp256k1 derived account addresses.
const legacyAddressLength = 20

// Pubkey is a 32-byte account identity. It is rendered in base58.
type Pubkey = solana.PublicKey

// PubkeyFromBytes converts a 32-byte slice into a Pubkey.
func PubkeyFromBytes(bz []byte) (Pubkey, error) {
	if len(bz) != PubkeyLength {
		return Pubkey{}, errors.Wrapf(sdkerrors.ErrInvalidAddress, "expected %d bytes, got %d", PubkeyLength, len(bz))
	}

	return solana.PublicKeyFromBytes(bz), nil
}

// PubkeyFromBase58 parses a base58 encoded identity.
func PubkeyFromBase58(s string) (Pubkey, error) {
	pk, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return Pubkey{}, errors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid base58 identity %q: %v", s, err)
	}

	return pk, nil
}

// MustPubkeyFromBase58 is PubkeyFromBase58 but panics on error.
func MustPubkeyFromBase58(s string) Pubkey {
	pk, err := PubkeyFromBase58(s)
	if err != nil {
		panic(err)
	}

	return pk
}

// PubkeyFromAccAddress maps a cosmos account address onto an identity.
// 20-byte addresses are left padded with zeros. 32-byte addresses are used as is,
// except those starting with 12 zero bytes which would collide with a padded
// 20-byte address.
func PubkeyFromAccAddress(addr sdk.AccAddress) (Pubkey, error) {
	var pk Pubkey
	switch len(addr) {
	case PubkeyLength:
		if hasLegacyPadding(addr) {
			return pk, errors.Wrap(sdkerrors.ErrInvalidAddress, "32-byte address collides with a padded 20-byte address")
		}
		copy(pk[:], addr)
	case legacyAddressLength:
		copy(pk[PubkeyLength-legacyAddressLength:], addr)
	default:
		return pk, errors.Wrapf(sdkerrors.ErrInvalidAddress, "unsupported address length %d", len(addr))
	}

	return pk, nil
}

// PubkeyToAccAddress is the inverse of PubkeyFromAccAddress. Identities starting
// with 12 zero bytes map to 20-byte addresses.
func PubkeyToAccAddress(pk Pubkey) sdk.AccAddress {
	if hasLegacyPadding(pk[:]) {
		return sdk.AccAddress(bytes.Clone(pk[PubkeyLength-legacyAddressLength:]))
	}

	return sdk.AccAddress(bytes.Clone(pk[:]))
}

func hasLegacyPadding(bz []byte) bool {
	var zeros [PubkeyLength - legacyAddressLength]byte
	return bytes.Equal(bz[:PubkeyLength-legacyAddressLength], zeros[:])
}
