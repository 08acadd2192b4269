package types

import (
	"encoding/binary"
	"fmt"
)

// Discriminators of the transfer hook interface instructions.
var (
	ExecuteDiscriminator                        = NewDiscriminator("spl-transfer-hook-interface", "execute")
	InitializeExtraAccountMetaListDiscriminator = NewDiscriminator("spl-transfer-hook-interface", "initialize-extra-account-metas")
	UpdateExtraAccountMetaListDiscriminator     = NewDiscriminator("spl-transfer-hook-interface", "update-extra-account-metas")
)

// TransferHookInstructionKind enumerates the transfer hook interface instructions.
type TransferHookInstructionKind uint8

const (
	TransferHookExecute TransferHookInstructionKind = iota
	TransferHookInitializeExtraAccountMetaList
	TransferHookUpdateExtraAccountMetaList
)

func (k TransferHookInstructionKind) String() string {
	switch k {
	case TransferHookExecute:
		return "Execute"
	case TransferHookInitializeExtraAccountMetaList:
		return "InitializeExtraAccountMetaList"
	case TransferHookUpdateExtraAccountMetaList:
		return "UpdateExtraAccountMetaList"
	default:
		return fmt.Sprintf("TransferHookInstructionKind(%d)", uint8(k))
	}
}

// TransferHookInstruction is a decoded transfer hook interface instruction.
type TransferHookInstruction struct {
	Kind TransferHookInstructionKind

	// Amount is set for Execute.
	Amount uint64
	// ExtraAccountMetas is set for InitializeExtraAccountMetaList and UpdateExtraAccountMetaList.
	ExtraAccountMetas []ExtraAccountMeta
}

// UnpackTransferHookInstruction decodes instruction data sent by the token program.
func UnpackTransferHookInstruction(data []byte) (TransferHookInstruction, error) {
	if len(data) < DiscriminatorLength {
		return TransferHookInstruction{}, ErrInvalidInstructionData.Wrapf("instruction data too short: %d bytes", len(data))
	}

	rest := data[DiscriminatorLength:]
	switch Discriminator(data[:DiscriminatorLength]) {
	case ExecuteDiscriminator:
		if len(rest) < 8 {
			return TransferHookInstruction{}, ErrInvalidInstructionData.Wrap("missing execute amount")
		}
		return TransferHookInstruction{
			Kind:   TransferHookExecute,
			Amount: binary.LittleEndian.Uint64(rest[:8]),
		}, nil

	case InitializeExtraAccountMetaListDiscriminator:
		metas, err := unpackExtraAccountMetas(rest)
		if err != nil {
			return TransferHookInstruction{}, ErrInvalidInstructionData.Wrap(err.Error())
		}
		return TransferHookInstruction{
			Kind:              TransferHookInitializeExtraAccountMetaList,
			ExtraAccountMetas: metas,
		}, nil

	case UpdateExtraAccountMetaListDiscriminator:
		metas, err := unpackExtraAccountMetas(rest)
		if err != nil {
			return TransferHookInstruction{}, ErrInvalidInstructionData.Wrap(err.Error())
		}
		return TransferHookInstruction{
			Kind:              TransferHookUpdateExtraAccountMetaList,
			ExtraAccountMetas: metas,
		}, nil

	default:
		return TransferHookInstruction{}, ErrInvalidInstructionData.Wrapf("unknown transfer hook instruction %x", data[:DiscriminatorLength])
	}
}

// Pack encodes the instruction in the transfer hook interface layout.
func (ix TransferHookInstruction) Pack() []byte {
	switch ix.Kind {
	case TransferHookExecute:
		return NewExecuteInstructionData(ix.Amount)
	case TransferHookInitializeExtraAccountMetaList:
		return append(InitializeExtraAccountMetaListDiscriminator[:], packExtraAccountMetas(ix.ExtraAccountMetas)...)
	case TransferHookUpdateExtraAccountMetaList:
		return append(UpdateExtraAccountMetaListDiscriminator[:], packExtraAccountMetas(ix.ExtraAccountMetas)...)
	default:
		return nil
	}
}

// NewExecuteInstructionData encodes an Execute instruction for amount.
func NewExecuteInstructionData(amount uint64) []byte {
	data := make([]byte, DiscriminatorLength+8)
	copy(data, ExecuteDiscriminator[:])
	binary.LittleEndian.PutUint64(data[DiscriminatorLength:], amount)
	return data
}
