package types

import (
	"gopkg.in/yaml.v3"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	DefaultRentDenom           = "uinit"
	DefaultLamportsPerByteYear = uint64(3480)
	DefaultExemptionThreshold  = uint64(2)
)

// accountStorageOverhead is the per account byte overhead charged on top of its data.
const accountStorageOverhead = 128

// NewParams creates a new Params instance with given values.
func NewParams(rentDenom string, lamportsPerByteYear, exemptionThreshold uint64) Params {
	return Params{
		RentDenom:           rentDenom,
		LamportsPerByteYear: lamportsPerByteYear,
		ExemptionThreshold:  exemptionThreshold,
	}
}

// DefaultParams returns the default whitelist params
func DefaultParams() Params {
	return NewParams(
		DefaultRentDenom,
		DefaultLamportsPerByteYear,
		DefaultExemptionThreshold,
	)
}

func (p Params) String() string {
	out, err := yaml.Marshal(p)
	if err != nil {
		panic(err)
	}
	return string(out)
}

// Validate rejects an invalid rent denom and rates whose rent of the largest
// program account does not fit in a uint64.
func (p Params) Validate() error {
	if p.RentDenom != "" {
		if err := sdk.ValidateDenom(p.RentDenom); err != nil {
			return ErrInvalidParams.Wrap(err.Error())
		}
	}

	if _, err := p.MinimumBalance(WhitelistStateSize); err != nil {
		return err
	}

	return nil
}

// MinimumBalance returns the balance an account of dataLen bytes needs to be rent exempt.
func (p Params) MinimumBalance(dataLen int) (uint64, error) {
	if dataLen < 0 {
		return 0, ErrInvalidParams.Wrapf("negative account size %d", dataLen)
	}

	balance := math.NewInt(accountStorageOverhead + int64(dataLen)).
		Mul(math.NewIntFromUint64(p.LamportsPerByteYear)).
		Mul(math.NewIntFromUint64(p.ExemptionThreshold))
	if !balance.IsUint64() {
		return 0, ErrInvalidParams.Wrapf("rent of a %d byte account overflows uint64", dataLen)
	}

	return balance.Uint64(), nil
}
