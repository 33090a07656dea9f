// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package escrow - time boxed licensing agreements
//
// an escrow record walks Created → Funded → Settled or Refunded. the
// fee sits in custody on the host ledger between deposit and release,
// so every state change that moves value calls the settlement adapter
// first and commits the record only after the movement succeeded.
package escrow

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/clock"
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/record"
	"github.com/tessera-ledger/tesserad/settlement"
	"github.com/tessera-ledger/tesserad/storage"
)

// globals
type globalDataType struct {
	sync.RWMutex
	log         *logger.L
	escrows     *storage.PoolHandle
	assets      *storage.PoolHandle
	clk         clock.Clock
	adapter     settlement.Adapter
	testing     bool
	initialised bool
}

// global storage
var globalData globalDataType

// Initialise - connect the escrow manager to its pools, clock and
// settlement adapter
func Initialise(escrows *storage.PoolHandle, assets *storage.PoolHandle, clk clock.Clock, adapter settlement.Adapter, testing bool) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("escrow")
	globalData.log.Info("starting…")

	globalData.escrows = escrows
	globalData.assets = assets
	globalData.clk = clk
	globalData.adapter = adapter
	globalData.testing = testing

	globalData.initialised = true

	return nil
}

// Finalise - shut down the escrow manager
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("finished")
	globalData.log.Flush()

	globalData.initialised = false

	return nil
}

// storage key of an escrow record
func escrowKey(assetId uint64, licensee identity.Identity) []byte {
	key := make([]byte, 8, 8+identity.Size)
	binary.BigEndian.PutUint64(key, assetId)
	return append(key, licensee.Bytes()...)
}

// fetch and decode a stored escrow record
// returns nil when no record exists at the key
func fetchEscrow(assetId uint64, licensee identity.Identity) (*record.EscrowRecord, error) {
	packed := record.Packed(globalData.escrows.Get(escrowKey(assetId, licensee)))
	if nil == packed {
		return nil, nil
	}
	rec, err := packed.UnpackEscrow()
	if nil != err {
		globalData.log.Criticalf("stored escrow: %d decode error: %s", assetId, err)
		return nil, err
	}
	return rec, nil
}

// fetch and decode the asset under an agreement
// returns nil when the asset does not exist
func fetchAsset(assetId uint64) (*record.AssetData, error) {
	packed := record.Packed(globalData.assets.Get(assetKey(assetId)))
	if nil == packed {
		return nil, nil
	}
	data, err := packed.UnpackAsset()
	if nil != err {
		globalData.log.Criticalf("stored asset: %d decode error: %s", assetId, err)
		return nil, err
	}
	return data, nil
}

// storage key of an asset
func assetKey(assetId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, assetId)
	return key
}

// reference of one escrow instance for the settlement adapter
func reference(rec *record.EscrowRecord) settlement.Reference {
	return settlement.NewReference(rec.AssetId, rec.Licensee, rec.Licensor, rec.CreatedTick)
}
