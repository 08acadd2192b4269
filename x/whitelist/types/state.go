package types

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
)

// MaxAllowedAddresses is the number of identities the whitelist account has room for.
const MaxAllowedAddresses = 50

// WhitelistStateSize is the fixed byte size of the whitelist state account:
// discriminator | is_initialized | admin | count (u32 LE) | allowed addresses.
const WhitelistStateSize = DiscriminatorLength + 1 + PubkeyLength + 4 + PubkeyLength*MaxAllowedAddresses

const (
	isInitializedOffset = DiscriminatorLength
	adminOffset         = isInitializedOffset + 1
	countOffset         = adminOffset + PubkeyLength
	allowedOffset       = countOffset + 4
)

// WhitelistStateDiscriminator tags whitelist state account data.
var WhitelistStateDiscriminator = AccountDiscriminator("WhitelistState")

// WhitelistState holds the admin and the insertion ordered allowed addresses.
// Duplicated addresses are kept.
type WhitelistState struct {
	IsInitialized bool
	Admin         Pubkey

	allowed [MaxAllowedAddresses]Pubkey
	count   int
}

// NewWhitelistState returns an empty whitelist managed by admin.
func NewWhitelistState(admin Pubkey, isInitialized bool) WhitelistState {
	return WhitelistState{
		IsInitialized: isInitialized,
		Admin:         admin,
	}
}

// Len returns the number of allowed entries.
func (s WhitelistState) Len() int {
	return s.count
}

// AllowedAddresses returns a copy of the allowed entries in insertion order.
func (s WhitelistState) AllowedAddresses() []Pubkey {
	out := make([]Pubkey, s.count)
	copy(out, s.allowed[:s.count])
	return out
}

// Contains reports whether addr is allowed.
func (s WhitelistState) Contains(addr Pubkey) bool {
	return s.indexOf(addr) >= 0
}

func (s WhitelistState) indexOf(addr Pubkey) int {
	for i := 0; i < s.count; i++ {
		if s.allowed[i] == addr {
			return i
		}
	}
	return -1
}

// Push appends addr. It fails once the account is full.
func (s *WhitelistState) Push(addr Pubkey) error {
	if s.count == MaxAllowedAddresses {
		return ErrCapacityExceeded.Wrapf("whitelist holds at most %d addresses", MaxAllowedAddresses)
	}

	s.allowed[s.count] = addr
	s.count++
	return nil
}

// Remove deletes the first occurrence of addr, shifting the following entries.
// It returns false if addr was not found.
func (s *WhitelistState) Remove(addr Pubkey) bool {
	idx := s.indexOf(addr)
	if idx < 0 {
		return false
	}

	copy(s.allowed[idx:s.count-1], s.allowed[idx+1:s.count])
	s.count--
	s.allowed[s.count] = Pubkey{}
	return true
}

// whitelistStateBody is the Borsh encoded body following the discriminator.
type whitelistStateBody struct {
	IsInitialized    bool
	Admin            Pubkey
	AllowedAddresses []Pubkey
}

// Marshal serializes the state into the fixed size account layout. The Borsh
// encoded body is zero padded up to WhitelistStateSize.
func (s WhitelistState) Marshal() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, WhitelistStateSize))
	buf.Write(WhitelistStateDiscriminator[:])

	body := whitelistStateBody{
		IsInitialized:    s.IsInitialized,
		Admin:            s.Admin,
		AllowedAddresses: s.allowed[:s.count],
	}
	if err := bin.NewBorshEncoder(buf).Encode(body); err != nil {
		panic(err)
	}

	bz := make([]byte, WhitelistStateSize)
	copy(bz, buf.Bytes())
	return bz
}

// UnmarshalWhitelistState decodes whitelist state account data.
func UnmarshalWhitelistState(bz []byte) (WhitelistState, error) {
	var s WhitelistState
	if len(bz) < allowedOffset {
		return s, ErrInvalidAccountData.Wrapf("whitelist state too short: %d bytes", len(bz))
	}
	if !WhitelistStateDiscriminator.Matches(bz) {
		return s, ErrInvalidAccountData.Wrap("account discriminator mismatch")
	}
	if v := bz[isInitializedOffset]; v > 1 {
		return s, ErrInvalidAccountData.Wrapf("invalid bool value %d", v)
	}

	count, err := bin.NewBorshDecoder(bz[countOffset:allowedOffset]).ReadUint32(bin.LE)
	if err != nil {
		return s, ErrInvalidAccountData.Wrap(err.Error())
	}
	if count > MaxAllowedAddresses {
		return s, ErrInvalidAccountData.Wrapf("invalid allowed address count %d", count)
	}

	var body whitelistStateBody
	if err := bin.NewBorshDecoder(bz[DiscriminatorLength:]).Decode(&body); err != nil {
		return s, ErrInvalidAccountData.Wrapf("invalid whitelist state body: %v", err)
	}

	s.IsInitialized = body.IsInitialized
	s.Admin = body.Admin
	s.count = copy(s.allowed[:], body.AllowedAddresses)
	return s, nil
}
