package types

import (
	"encoding/binary"
)

// SeedKind tags the packed seed configurations of an ExtraAccountMeta.
type SeedKind uint8

const (
	SeedUninitialized   SeedKind = 0
	SeedLiteral         SeedKind = 1
	SeedInstructionData SeedKind = 2
	SeedAccountKey      SeedKind = 3
	SeedAccountData     SeedKind = 4
)

// Seed is one step of an address derivation resolved at execution time.
type Seed struct {
	Kind SeedKind

	// Bytes is the literal value of a SeedLiteral.
	Bytes []byte
	// Index is the instruction data offset of a SeedInstructionData, or the
	// account index of a SeedAccountKey or SeedAccountData.
	Index uint8
	// DataIndex is the account data offset of a SeedAccountData.
	DataIndex uint8
	// Length is the byte length of a SeedInstructionData or SeedAccountData.
	Length uint8
}

func LiteralSeed(bz []byte) Seed {
	return Seed{Kind: SeedLiteral, Bytes: bz}
}

func InstructionDataSeed(index, length uint8) Seed {
	return Seed{Kind: SeedInstructionData, Index: index, Length: length}
}

func AccountKeySeed(index uint8) Seed {
	return Seed{Kind: SeedAccountKey, Index: index}
}

func AccountDataSeed(accountIndex, dataIndex, length uint8) Seed {
	return Seed{Kind: SeedAccountData, Index: accountIndex, DataIndex: dataIndex, Length: length}
}

func (s Seed) packedLen() int {
	switch s.Kind {
	case SeedLiteral:
		return 2 + len(s.Bytes)
	case SeedInstructionData:
		return 3
	case SeedAccountKey:
		return 2
	case SeedAccountData:
		return 4
	default:
		return 0
	}
}

// PackSeeds packs seeds into the 32-byte address config of an ExtraAccountMeta.
func PackSeeds(seeds []Seed) ([PubkeyLength]byte, error) {
	var config [PubkeyLength]byte

	offset := 0
	for _, seed := range seeds {
		n := seed.packedLen()
		if n == 0 {
			return config, ErrInvalidSeeds.Wrapf("unknown seed kind %d", seed.Kind)
		}
		if seed.Kind == SeedLiteral && len(seed.Bytes) > MaxSeedLength {
			return config, ErrInvalidSeeds.Wrapf("literal seed length %d exceeds %d", len(seed.Bytes), MaxSeedLength)
		}
		if offset+n > PubkeyLength {
			return config, ErrInvalidSeeds.Wrap("seed configuration exceeds 32 bytes")
		}

		config[offset] = byte(seed.Kind)
		switch seed.Kind {
		case SeedLiteral:
			config[offset+1] = uint8(len(seed.Bytes))
			copy(config[offset+2:], seed.Bytes)
		case SeedInstructionData:
			config[offset+1] = seed.Index
			config[offset+2] = seed.Length
		case SeedAccountKey:
			config[offset+1] = seed.Index
		case SeedAccountData:
			config[offset+1] = seed.Index
			config[offset+2] = seed.DataIndex
			config[offset+3] = seed.Length
		}
		offset += n
	}

	return config, nil
}

// UnpackSeeds reads seeds from an address config until the first uninitialized byte.
func UnpackSeeds(config [PubkeyLength]byte) ([]Seed, error) {
	var seeds []Seed

	offset := 0
	for offset < PubkeyLength && SeedKind(config[offset]) != SeedUninitialized {
		kind := SeedKind(config[offset])
		seed := Seed{Kind: kind}
		n := seed.packedLen()
		if n == 0 {
			return nil, ErrInvalidSeeds.Wrapf("unknown seed kind %d", kind)
		}
		if offset+n > PubkeyLength {
			return nil, ErrInvalidSeeds.Wrap("truncated seed configuration")
		}

		switch kind {
		case SeedLiteral:
			length := int(config[offset+1])
			if offset+2+length > PubkeyLength {
				return nil, ErrInvalidSeeds.Wrap("truncated literal seed")
			}
			seed.Bytes = append([]byte(nil), config[offset+2:offset+2+length]...)
			n = 2 + length
		case SeedInstructionData:
			seed.Index = config[offset+1]
			seed.Length = config[offset+2]
		case SeedAccountKey:
			seed.Index = config[offset+1]
		case SeedAccountData:
			seed.Index = config[offset+1]
			seed.DataIndex = config[offset+2]
			seed.Length = config[offset+3]
		}

		seeds = append(seeds, seed)
		offset += n
	}

	return seeds, nil
}

// ExtraAccountMetaLength is the packed size of an ExtraAccountMeta.
const ExtraAccountMetaLength = 1 + PubkeyLength + 1 + 1

const (
	// extraAccountMetaFixed marks a fixed address.
	extraAccountMetaFixed uint8 = 0
	// extraAccountMetaProgramSeeds marks an address derived under the hook program.
	extraAccountMetaProgramSeeds uint8 = 1
	// extraAccountMetaExternalSeeds is added to the index of the account holding the
	// program id the address is derived under.
	extraAccountMetaExternalSeeds uint8 = 1 << 7
)

// ExtraAccountMeta describes how to locate an account required by the transfer hook.
type ExtraAccountMeta struct {
	Discriminator uint8
	AddressConfig [PubkeyLength]byte
	IsSigner      bool
	IsWritable    bool
}

// NewExtraAccountMetaFromPubkey describes a fixed account.
func NewExtraAccountMetaFromPubkey(pk Pubkey, isSigner, isWritable bool) ExtraAccountMeta {
	return ExtraAccountMeta{
		Discriminator: extraAccountMetaFixed,
		AddressConfig: pk,
		IsSigner:      isSigner,
		IsWritable:    isWritable,
	}
}

// NewExtraAccountMetaWithSeeds describes an account derived from seeds under the hook program.
func NewExtraAccountMetaWithSeeds(seeds []Seed, isSigner, isWritable bool) (ExtraAccountMeta, error) {
	config, err := PackSeeds(seeds)
	if err != nil {
		return ExtraAccountMeta{}, err
	}

	return ExtraAccountMeta{
		Discriminator: extraAccountMetaProgramSeeds,
		AddressConfig: config,
		IsSigner:      isSigner,
		IsWritable:    isWritable,
	}, nil
}

// NewExtraAccountMetaWithExternalSeeds describes an account derived from seeds under
// the program found at programIndex of the instruction accounts.
func NewExtraAccountMetaWithExternalSeeds(programIndex uint8, seeds []Seed, isSigner, isWritable bool) (ExtraAccountMeta, error) {
	if programIndex >= extraAccountMetaExternalSeeds {
		return ExtraAccountMeta{}, ErrInvalidSeeds.Wrapf("program index %d out of range", programIndex)
	}

	meta, err := NewExtraAccountMetaWithSeeds(seeds, isSigner, isWritable)
	if err != nil {
		return ExtraAccountMeta{}, err
	}

	meta.Discriminator = extraAccountMetaExternalSeeds + programIndex
	return meta, nil
}

func (m ExtraAccountMeta) pack(bz []byte) {
	bz[0] = m.Discriminator
	copy(bz[1:1+PubkeyLength], m.AddressConfig[:])
	bz[1+PubkeyLength] = boolByte(m.IsSigner)
	bz[2+PubkeyLength] = boolByte(m.IsWritable)
}

func unpackExtraAccountMeta(bz []byte) (ExtraAccountMeta, error) {
	var m ExtraAccountMeta
	if len(bz) != ExtraAccountMetaLength {
		return m, ErrInvalidAccountData.Wrapf("extra account meta must be %d bytes", ExtraAccountMetaLength)
	}

	m.Discriminator = bz[0]
	copy(m.AddressConfig[:], bz[1:1+PubkeyLength])

	var err error
	if m.IsSigner, err = byteBool(bz[1+PubkeyLength]); err != nil {
		return m, err
	}
	if m.IsWritable, err = byteBool(bz[2+PubkeyLength]); err != nil {
		return m, err
	}

	return m, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func byteBool(b byte) (bool, error) {
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidAccountData.Wrapf("invalid bool value %d", b)
	}
}

// packExtraAccountMetas writes count (u32 LE) followed by the packed metas.
func packExtraAccountMetas(metas []ExtraAccountMeta) []byte {
	bz := make([]byte, 4+len(metas)*ExtraAccountMetaLength)
	binary.LittleEndian.PutUint32(bz[:4], uint32(len(metas)))
	for i, meta := range metas {
		offset := 4 + i*ExtraAccountMetaLength
		meta.pack(bz[offset : offset+ExtraAccountMetaLength])
	}
	return bz
}

func unpackExtraAccountMetas(bz []byte) ([]ExtraAccountMeta, error) {
	if len(bz) < 4 {
		return nil, ErrInvalidAccountData.Wrap("missing extra account meta count")
	}

	count := binary.LittleEndian.Uint32(bz[:4])
	if uint64(len(bz)-4) != uint64(count)*ExtraAccountMetaLength {
		return nil, ErrInvalidAccountData.Wrapf("%d extra account metas do not fit %d bytes", count, len(bz)-4)
	}

	metas := make([]ExtraAccountMeta, count)
	for i := range metas {
		offset := 4 + i*ExtraAccountMetaLength
		meta, err := unpackExtraAccountMeta(bz[offset : offset+ExtraAccountMetaLength])
		if err != nil {
			return nil, err
		}
		metas[i] = meta
	}

	return metas, nil
}
