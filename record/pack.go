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

// field appenders, all fields are concatenated in declaration order

func appendUint64(buffer Packed, value uint64) Packed {
	return append(buffer, util.ToVarint64(value)...)
}

func appendIdentity(buffer Packed, id identity.Identity) Packed {
	return append(buffer, id.Bytes()...)
}

func appendBool(buffer Packed, flag bool) Packed {
	b := byte(0)
	if flag {
		b = 1
	}
	return append(buffer, b)
}

func (asset *AssetData) validate() error {
	switch {
	case asset.Owner.IsZero():
		return fault.InvalidIdentity
	case 0 == asset.InitialValuation, 0 == asset.CurrentValuation:
		return fault.InvalidValuation
	case 0 == asset.TotalTokens:
		return fault.InvalidTokenAmount
	}
	return nil
}

// Pack - pack an asset record
func (asset *AssetData) Pack() (Packed, error) {
	if err := asset.validate(); nil != err {
		return nil, err
	}
	buffer := appendUint64(Packed{}, uint64(AssetDataTag))
	buffer = appendIdentity(buffer, asset.Owner)
	buffer = appendUint64(buffer, asset.InitialValuation)
	buffer = appendUint64(buffer, asset.CurrentValuation)
	buffer = appendUint64(buffer, asset.TotalTokens)
	buffer = appendBool(buffer, asset.Transferable)
	buffer = appendUint64(buffer, asset.CreatedTick)
	return buffer, nil
}

func (list HolderList) validate() error {
	for _, holder := range list {
		if holder.IsZero() {
			return fault.InvalidIdentity
		}
	}
	return nil
}

// Pack - pack a holder list
func (list HolderList) Pack() (Packed, error) {
	if err := list.validate(); nil != err {
		return nil, err
	}
	buffer := appendUint64(Packed{}, uint64(HolderListTag))
	buffer = appendUint64(buffer, uint64(len(list)))
	for _, holder := range list {
		buffer = appendIdentity(buffer, holder)
	}
	return buffer, nil
}

func (escrow *EscrowRecord) validate() error {
	switch {
	case 0 == escrow.AssetId:
		return fault.InvalidAssetId
	case escrow.Licensor.IsZero(), escrow.Licensee.IsZero():
		return fault.InvalidIdentity
	case escrow.Licensor == escrow.Licensee:
		return fault.LicenseeIsOwner
	case 0 == escrow.FeeAmount:
		return fault.InvalidFeeAmount
	case !escrow.Status.IsValid():
		return fault.NotAnEscrowRecord
	}
	return nil
}

// Pack - pack an escrow record
func (escrow *EscrowRecord) Pack() (Packed, error) {
	if err := escrow.validate(); nil != err {
		return nil, err
	}
	buffer := appendUint64(Packed{}, uint64(EscrowRecordTag))
	buffer = appendUint64(buffer, escrow.AssetId)
	buffer = appendIdentity(buffer, escrow.Licensor)
	buffer = appendIdentity(buffer, escrow.Licensee)
	buffer = appendUint64(buffer, escrow.FeeAmount)
	buffer = append(buffer, byte(escrow.Status))
	buffer = appendBool(buffer, escrow.ConditionsMet)
	buffer = appendUint64(buffer, escrow.ExpirationTick)
	buffer = appendUint64(buffer, escrow.CreatedTick)
	return buffer, nil
}

func (transfer *TransferEvent) validate() error {
	switch {
	case 0 == transfer.AssetId:
		return fault.InvalidAssetId
	case transfer.From.IsZero(), transfer.To.IsZero():
		return fault.InvalidIdentity
	case transfer.From == transfer.To:
		return fault.SelfTransferNotAllowed
	case 0 == transfer.Amount:
		return fault.InvalidTokenAmount
	}
	return nil
}

// Pack - pack a transfer event
func (transfer *TransferEvent) Pack() (Packed, error) {
	if err := transfer.validate(); nil != err {
		return nil, err
	}
	buffer := appendUint64(Packed{}, uint64(TransferEventTag))
	buffer = appendUint64(buffer, transfer.AssetId)
	buffer = appendIdentity(buffer, transfer.From)
	buffer = appendIdentity(buffer, transfer.To)
	buffer = appendUint64(buffer, transfer.Amount)
	return buffer, nil
}
