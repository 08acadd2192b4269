package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	bin "github.com/gagliardetto/binary"

	collcodec "cosmossdk.io/collections/codec"
)

// Account is a program owned account record.
type Account struct {
	Lamports uint64 `json:"lamports"`
	Owner    Pubkey `json:"owner"`
	Data     []byte `json:"data"`
}

// AccountMeta describes an account passed to an instruction.
type AccountMeta struct {
	Pubkey     Pubkey
	IsSigner   bool
	IsWritable bool
}

// NewAccountMeta returns a writable account meta.
func NewAccountMeta(pk Pubkey, isSigner bool) AccountMeta {
	return AccountMeta{Pubkey: pk, IsSigner: isSigner, IsWritable: true}
}

// NewReadonlyAccountMeta returns a read-only account meta.
func NewReadonlyAccountMeta(pk Pubkey, isSigner bool) AccountMeta {
	return AccountMeta{Pubkey: pk, IsSigner: isSigner}
}

var _ collcodec.ValueCodec[Account] = AccountValueCodec{}

// AccountValueCodec Borsh encodes an account as lamports (u64 LE) | owner | data length (u32 LE) | data.
type AccountValueCodec struct{}

func (AccountValueCodec) Encode(acc Account) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := bin.NewBorshEncoder(buf).Encode(acc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (AccountValueCodec) Decode(bz []byte) (Account, error) {
	var acc Account
	dec := bin.NewBorshDecoder(bz)
	if err := dec.Decode(&acc); err != nil {
		return Account{}, fmt.Errorf("invalid account record: %w", err)
	}
	if dec.Remaining() != 0 {
		return Account{}, fmt.Errorf("account record has %d trailing bytes", dec.Remaining())
	}

	return acc, nil
}

func (AccountValueCodec) EncodeJSON(acc Account) ([]byte, error) {
	return json.Marshal(acc)
}

func (AccountValueCodec) DecodeJSON(bz []byte) (Account, error) {
	var acc Account
	err := json.Unmarshal(bz, &acc)
	return acc, err
}

func (AccountValueCodec) Stringify(acc Account) string {
	return fmt.Sprintf("Account{Lamports: %d, Owner: %s, DataLen: %d}", acc.Lamports, acc.Owner, len(acc.Data))
}

func (AccountValueCodec) ValueType() string {
	return "whitelist/Account"
}
