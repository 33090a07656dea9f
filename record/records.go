// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
)

// TagType - type code for stored records and broadcast events
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	AssetDataTag     = TagType(iota) // asset metadata
	HolderListTag    = TagType(iota) // ordered identities with a nonzero balance
	EscrowRecordTag  = TagType(iota) // licensing escrow agreement
	TransferEventTag = TagType(iota) // committed token movement

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
type Record interface {
	Pack() (Packed, error)
}

// AssetData - the metadata of a registered asset
//
// the asset id is the storage key and is not part of the record
type AssetData struct {
	Owner            identity.Identity `json:"owner"`
	InitialValuation uint64            `json:"initialValuation"`
	CurrentValuation uint64            `json:"currentValuation"`
	TotalTokens      uint64            `json:"totalTokens"`
	Transferable     bool              `json:"transferable"`
	CreatedTick      uint64            `json:"createdTick"`
}

// HolderList - the identities holding a nonzero balance of one
// asset, in insertion order
type HolderList []identity.Identity

// EscrowRecord - one licensing escrow agreement
//
// the storage key is asset id and licensee; both are repeated in the
// record so that a packed record is self contained when broadcast
type EscrowRecord struct {
	AssetId        uint64            `json:"assetId"`
	Licensor       identity.Identity `json:"licensor"`
	Licensee       identity.Identity `json:"licensee"`
	FeeAmount      uint64            `json:"feeAmount"`
	Status         Status            `json:"status"`
	ConditionsMet  bool              `json:"conditionsMet"`
	ExpirationTick uint64            `json:"expirationTick"`
	CreatedTick    uint64            `json:"createdTick"`
}

// TransferEvent - a committed token movement for broadcast
type TransferEvent struct {
	AssetId uint64            `json:"assetId"`
	From    identity.Identity `json:"from"`
	To      identity.Identity `json:"to"`
	Amount  uint64            `json:"amount"`
}

// RecordName - name of a record type for display and event routing
func RecordName(record interface{}) (string, error) {
	switch record.(type) {
	case *AssetData, AssetData:
		return "AssetData", nil
	case HolderList:
		return "HolderList", nil
	case *EscrowRecord, EscrowRecord:
		return "EscrowRecord", nil
	case *TransferEvent, TransferEvent:
		return "TransferEvent", nil
	default:
		return "*unknown*", fault.CannotDecodeRecord
	}
}
