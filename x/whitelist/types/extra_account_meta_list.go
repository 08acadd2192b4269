package types

import (
	"encoding/binary"
)

// tlvHeaderLength is the discriminator and u32 length prefixing a TLV entry.
const tlvHeaderLength = DiscriminatorLength + 4

// ExtraAccountMetaListSizeOf returns the account size needed to store n metas.
func ExtraAccountMetaListSizeOf(n int) int {
	return tlvHeaderLength + 4 + n*ExtraAccountMetaLength
}

// InitExtraAccountMetaList writes metas into data as a TLV entry tagged with the
// discriminator of the instruction they are resolved for.
func InitExtraAccountMetaList(data []byte, instruction Discriminator, metas []ExtraAccountMeta) error {
	value := packExtraAccountMetas(metas)
	if len(data) < tlvHeaderLength+len(value) {
		return ErrInvalidAccountData.Wrapf("account data too small: need %d bytes, have %d", tlvHeaderLength+len(value), len(data))
	}

	var zero Discriminator
	if Discriminator(data[:DiscriminatorLength]) != zero {
		return ErrAlreadyInitialized.Wrap("extra account meta list already initialized")
	}

	copy(data[:DiscriminatorLength], instruction[:])
	binary.LittleEndian.PutUint32(data[DiscriminatorLength:tlvHeaderLength], uint32(len(value)))
	copy(data[tlvHeaderLength:], value)
	return nil
}

// UnpackExtraAccountMetaList reads the metas stored for the given instruction.
func UnpackExtraAccountMetaList(data []byte, instruction Discriminator) ([]ExtraAccountMeta, error) {
	offset := 0
	for offset+tlvHeaderLength <= len(data) {
		length := int(binary.LittleEndian.Uint32(data[offset+DiscriminatorLength : offset+tlvHeaderLength]))
		start := offset + tlvHeaderLength
		if start+length > len(data) {
			return nil, ErrInvalidAccountData.Wrap("truncated tlv entry")
		}

		if Discriminator(data[offset:offset+DiscriminatorLength]) == instruction {
			return unpackExtraAccountMetas(data[start : start+length])
		}

		offset = start + length
	}

	return nil, ErrInvalidAccountData.Wrapf("no extra account metas for instruction %s", instruction)
}

// AccountDataFn returns the data of the account at the given address.
type AccountDataFn func(addr Pubkey) ([]byte, error)

// ResolveExtraAccountMetas appends the accounts described by metas to accounts.
// Seeds may refer to instruction data, to the given accounts and to the metas
// resolved before them.
func ResolveExtraAccountMetas(
	metas []ExtraAccountMeta,
	instructionData []byte,
	accounts []AccountMeta,
	programID Pubkey,
	accountData AccountDataFn,
) ([]AccountMeta, error) {
	resolved := make([]AccountMeta, len(accounts), len(accounts)+len(metas))
	copy(resolved, accounts)

	for _, meta := range metas {
		var pk Pubkey
		switch {
		case meta.Discriminator == extraAccountMetaFixed:
			pk = meta.AddressConfig
		case meta.Discriminator == extraAccountMetaProgramSeeds:
			addr, err := resolvePDA(meta.AddressConfig, programID, instructionData, resolved, accountData)
			if err != nil {
				return nil, err
			}
			pk = addr
		case meta.Discriminator >= extraAccountMetaExternalSeeds:
			index := int(meta.Discriminator - extraAccountMetaExternalSeeds)
			if index >= len(resolved) {
				return nil, ErrNotEnoughAccountKeys.Wrapf("program account index %d out of range", index)
			}
			addr, err := resolvePDA(meta.AddressConfig, resolved[index].Pubkey, instructionData, resolved, accountData)
			if err != nil {
				return nil, err
			}
			pk = addr
		default:
			return nil, ErrInvalidAccountData.Wrapf("unknown extra account meta discriminator %d", meta.Discriminator)
		}

		resolved = append(resolved, AccountMeta{
			Pubkey:     pk,
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		})
	}

	return resolved, nil
}

func resolvePDA(
	config [PubkeyLength]byte,
	programID Pubkey,
	instructionData []byte,
	accounts []AccountMeta,
	accountData AccountDataFn,
) (Pubkey, error) {
	seeds, err := UnpackSeeds(config)
	if err != nil {
		return Pubkey{}, err
	}

	seedBytes := make([][]byte, 0, len(seeds))
	for _, seed := range seeds {
		switch seed.Kind {
		case SeedLiteral:
			seedBytes = append(seedBytes, seed.Bytes)
		case SeedInstructionData:
			end := int(seed.Index) + int(seed.Length)
			if end > len(instructionData) {
				return Pubkey{}, ErrInvalidInstructionData.Wrapf("seed reads instruction data [%d:%d) out of %d bytes", seed.Index, end, len(instructionData))
			}
			seedBytes = append(seedBytes, instructionData[seed.Index:end])
		case SeedAccountKey:
			if int(seed.Index) >= len(accounts) {
				return Pubkey{}, ErrNotEnoughAccountKeys.Wrapf("seed account index %d out of range", seed.Index)
			}
			seedBytes = append(seedBytes, accounts[seed.Index].Pubkey.Bytes())
		case SeedAccountData:
			if int(seed.Index) >= len(accounts) {
				return Pubkey{}, ErrNotEnoughAccountKeys.Wrapf("seed account index %d out of range", seed.Index)
			}
			if accountData == nil {
				return Pubkey{}, ErrAccountNotFound.Wrap("account data is not available")
			}
			data, err := accountData(accounts[seed.Index].Pubkey)
			if err != nil {
				return Pubkey{}, err
			}
			end := int(seed.DataIndex) + int(seed.Length)
			if end > len(data) {
				return Pubkey{}, ErrInvalidAccountData.Wrapf("seed reads account data [%d:%d) out of %d bytes", seed.DataIndex, end, len(data))
			}
			seedBytes = append(seedBytes, data[seed.DataIndex:end])
		}
	}

	pk, _, err := FindProgramAddress(seedBytes, programID)
	return pk, err
}
