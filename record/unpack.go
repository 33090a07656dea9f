// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/util"
)

// field extractors, each returns the remaining buffer

func unpackUint64(buffer Packed) (uint64, Packed, error) {
	value, count := util.FromVarint64(buffer)
	if 0 == count {
		return 0, nil, fault.CannotDecodeRecord
	}
	return value, buffer[count:], nil
}

func unpackIdentity(buffer Packed) (identity.Identity, Packed, error) {
	if len(buffer) < identity.Size {
		return identity.Identity{}, nil, fault.CannotDecodeRecord
	}
	id, err := identity.FromBytes(buffer[:identity.Size])
	if nil != err {
		return identity.Identity{}, nil, err
	}
	return id, buffer[identity.Size:], nil
}

func unpackBool(buffer Packed) (bool, Packed, error) {
	if len(buffer) < 1 {
		return false, nil, fault.CannotDecodeRecord
	}
	switch buffer[0] {
	case 0:
		return false, buffer[1:], nil
	case 1:
		return true, buffer[1:], nil
	default:
		return false, nil, fault.CannotDecodeRecord
	}
}

// Type - record type code from the leading tag
//
// returns InvalidTag if the buffer is too short or out of range
func (packed Packed) Type() TagType {
	tag, count := util.FromVarint64(packed)
	if 0 == count || tag >= uint64(InvalidTag) {
		return InvalidTag
	}
	return TagType(tag)
}

// Unpack - decode a packed record
//
// the tag determines the concrete type returned
func (packed Packed) Unpack() (Record, error) {
	tag, buffer, err := unpackUint64(packed)
	if nil != err {
		return nil, err
	}

	switch TagType(tag) {

	case AssetDataTag:
		asset := &AssetData{}
		if asset.Owner, buffer, err = unpackIdentity(buffer); nil != err {
			return nil, fault.NotAnAssetRecord
		}
		if asset.InitialValuation, buffer, err = unpackUint64(buffer); nil != err {
			return nil, fault.NotAnAssetRecord
		}
		if asset.CurrentValuation, buffer, err = unpackUint64(buffer); nil != err {
			return nil, fault.NotAnAssetRecord
		}
		if asset.TotalTokens, buffer, err = unpackUint64(buffer); nil != err {
			return nil, fault.NotAnAssetRecord
		}
		if asset.Transferable, buffer, err = unpackBool(buffer); nil != err {
			return nil, fault.NotAnAssetRecord
		}
		if asset.CreatedTick, buffer, err = unpackUint64(buffer); nil != err {
			return nil, fault.NotAnAssetRecord
		}
		if 0 != len(buffer) {
			return nil, fault.NotAnAssetRecord
		}
		if err = asset.validate(); nil != err {
			return nil, err
		}
		return asset, nil

	case HolderListTag:
		count, buffer, err := unpackUint64(buffer)
		if nil != err {
			return nil, fault.NotAHolderList
		}
		// divide rather than multiply so a corrupt huge count
		// cannot wrap the length check or size the allocation
		if 0 != len(buffer)%identity.Size || count != uint64(len(buffer)/identity.Size) {
			return nil, fault.NotAHolderList
		}
		list := make(HolderList, 0, count)
		for i := uint64(0); i < count; i += 1 {
			var holder identity.Identity
			if holder, buffer, err = unpackIdentity(buffer); nil != err {
				return nil, fault.NotAHolderList
			}
			list = append(list, holder)
		}
		if err = list.validate(); nil != err {
			return nil, err
		}
		return list, nil

	case EscrowRecordTag:
		escrow := &EscrowRecord{}
		if escrow.AssetId, buffer, err = unpackUint64(buffer); nil != err {
			return nil, fault.NotAnEscrowRecord
		}
		if escrow.Licensor, buffer, err = unpackIdentity(buffer); nil != err {
			return nil, fault.NotAnEscrowRecord
		}
		if escrow.Licensee, buffer, err = unpackIdentity(buffer); nil != err {
			return nil, fault.NotAnEscrowRecord
		}
		if escrow.FeeAmount, buffer, err = unpackUint64(buffer); nil != err {
			return nil, fault.NotAnEscrowRecord
		}
		if len(buffer) < 1 {
			return nil, fault.NotAnEscrowRecord
		}
		escrow.Status = Status(buffer[0])
		buffer = buffer[1:]
		if escrow.ConditionsMet, buffer, err = unpackBool(buffer); nil != err {
			return nil, fault.NotAnEscrowRecord
		}
		if escrow.ExpirationTick, buffer, err = unpackUint64(buffer); nil != err {
			return nil, fault.NotAnEscrowRecord
		}
		if escrow.CreatedTick, buffer, err = unpackUint64(buffer); nil != err {
			return nil, fault.NotAnEscrowRecord
		}
		if 0 != len(buffer) {
			return nil, fault.NotAnEscrowRecord
		}
		if err = escrow.validate(); nil != err {
			return nil, err
		}
		return escrow, nil

	case TransferEventTag:
		transfer := &TransferEvent{}
		if transfer.AssetId, buffer, err = unpackUint64(buffer); nil != err {
			return nil, fault.CannotDecodeRecord
		}
		if transfer.From, buffer, err = unpackIdentity(buffer); nil != err {
			return nil, fault.CannotDecodeRecord
		}
		if transfer.To, buffer, err = unpackIdentity(buffer); nil != err {
			return nil, fault.CannotDecodeRecord
		}
		if transfer.Amount, buffer, err = unpackUint64(buffer); nil != err {
			return nil, fault.CannotDecodeRecord
		}
		if 0 != len(buffer) {
			return nil, fault.CannotDecodeRecord
		}
		if err = transfer.validate(); nil != err {
			return nil, err
		}
		return transfer, nil

	default:
		return nil, fault.CannotDecodeRecord
	}
}

// UnpackAsset - decode a packed record that must be an asset
func (packed Packed) UnpackAsset() (*AssetData, error) {
	r, err := packed.Unpack()
	if nil != err {
		return nil, err
	}
	asset, ok := r.(*AssetData)
	if !ok {
		return nil, fault.NotAnAssetRecord
	}
	return asset, nil
}

// UnpackHolderList - decode a packed record that must be a holder list
func (packed Packed) UnpackHolderList() (HolderList, error) {
	r, err := packed.Unpack()
	if nil != err {
		return nil, err
	}
	list, ok := r.(HolderList)
	if !ok {
		return nil, fault.NotAHolderList
	}
	return list, nil
}

// UnpackEscrow - decode a packed record that must be an escrow
func (packed Packed) UnpackEscrow() (*EscrowRecord, error) {
	r, err := packed.Unpack()
	if nil != err {
		return nil, err
	}
	escrow, ok := r.(*EscrowRecord)
	if !ok {
		return nil, fault.NotAnEscrowRecord
	}
	return escrow, nil
}
