package types

import (
	"github.com/gagliardetto/solana-go"

	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// MaxSeeds is the maximum number of seeds, bump included, of a program address.
	MaxSeeds = solana.MaxSeeds

	// MaxSeedLength is the maximum byte length of a single seed.
	MaxSeedLength = solana.MaxSeedLength
)

// CreateProgramAddress derives the program address of seeds under programID.
// The address must not be a valid ed25519 point, so that no private key can sign for it.
func CreateProgramAddress(seeds [][]byte, programID Pubkey) (Pubkey, error) {
	if err := validateSeeds(seeds, MaxSeeds); err != nil {
		return Pubkey{}, err
	}

	pk, err := solana.CreateProgramAddress(seeds, programID)
	if err != nil {
		return Pubkey{}, ErrInvalidSeeds.Wrap(err.Error())
	}

	return pk, nil
}

// FindProgramAddress searches the bump seed, from 255 downwards, that yields a
// valid program address for seeds under programID.
func FindProgramAddress(seeds [][]byte, programID Pubkey) (Pubkey, uint8, error) {
	// one slot is taken by the bump
	if err := validateSeeds(seeds, MaxSeeds-1); err != nil {
		return Pubkey{}, 0, err
	}

	pk, bump, err := solana.FindProgramAddress(seeds[:len(seeds):len(seeds)], programID)
	if err != nil {
		return Pubkey{}, 0, ErrInvalidSeeds.Wrap(err.Error())
	}

	return pk, bump, nil
}

func validateSeeds(seeds [][]byte, maxSeeds int) error {
	if len(seeds) > maxSeeds {
		return ErrInvalidSeeds.Wrapf("too many seeds: %d", len(seeds))
	}
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return ErrInvalidSeeds.Wrapf("seed length %d exceeds %d", len(seed), MaxSeedLength)
		}
	}

	return nil
}

// IsOnCurve reports whether pk decodes to a point of the ed25519 curve.
func IsOnCurve(pk Pubkey) bool {
	return solana.IsOnCurve(pk[:])
}

// WhitelistStateAddress returns the address of the whitelist state account.
func WhitelistStateAddress(programID Pubkey) (Pubkey, uint8, error) {
	return FindProgramAddress([][]byte{WhitelistStateSeed}, programID)
}

// ExtraAccountMetaListAddress returns the address of the extra account meta list of mint.
func ExtraAccountMetaListAddress(mint, programID Pubkey) (Pubkey, uint8, error) {
	return FindProgramAddress([][]byte{ExtraAccountMetasSeed, mint[:]}, programID)
}

// MintFromDenom returns the mint identity governing the coins of denom.
func MintFromDenom(denom string) Pubkey {
	return solana.PublicKeyFromBytes(address.Module(ModuleName, []byte("mint"), []byte(denom)))
}
