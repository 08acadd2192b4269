package types

import (
	"encoding/hex"

	bin "github.com/gagliardetto/binary"
)

// DiscriminatorLength is the byte length of account and instruction discriminators.
const DiscriminatorLength = 8

// Discriminator is the 8-byte tag prefixing account data and instruction data.
type Discriminator [DiscriminatorLength]byte

// NewDiscriminator returns the first 8 bytes of sha256("namespace:name").
func NewDiscriminator(namespace, name string) Discriminator {
	var d Discriminator
	copy(d[:], bin.Sighash(namespace, name))
	return d
}

// AccountDiscriminator returns the discriminator of the account type with the given name.
func AccountDiscriminator(name string) Discriminator {
	return NewDiscriminator("account", name)
}

// InstructionDiscriminator returns the discriminator of the program instruction with the given name.
func InstructionDiscriminator(name string) Discriminator {
	return NewDiscriminator("global", name)
}

// Matches reports whether data starts with the discriminator.
func (d Discriminator) Matches(data []byte) bool {
	return len(data) >= DiscriminatorLength && Discriminator(data[:DiscriminatorLength]) == d
}

func (d Discriminator) String() string {
	return hex.EncodeToString(d[:])
}
