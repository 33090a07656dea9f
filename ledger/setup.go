// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - fractional token balances and their holder lists
//
// balances are conserved: for every asset the balances sum to the
// fixed token supply minted at registration. a holder list mirrors
// exactly the identities with a nonzero balance and is bounded, zero
// balances are stored as zero and leave the list.
package ledger

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/holderset"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/record"
	"github.com/tessera-ledger/tesserad/storage"
)

// MaximumHolders - bound on distinct holders of one asset
const MaximumHolders = 10

// globals
type globalDataType struct {
	sync.RWMutex
	log         *logger.L
	assets      *storage.PoolHandle
	balances    *storage.PoolHandle
	holders     *storage.PoolHandle
	testing     bool
	initialised bool
}

// global storage
var globalData globalDataType

// Initialise - connect the ledger to its pools
func Initialise(assets *storage.PoolHandle, balances *storage.PoolHandle, holders *storage.PoolHandle, testing bool) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	globalData.assets = assets
	globalData.balances = balances
	globalData.holders = holders
	globalData.testing = testing

	globalData.initialised = true

	return nil
}

// Finalise - shut down the ledger
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

// storage key of an asset and its holder list
func assetKey(assetId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, assetId)
	return key
}

// storage key of one balance
func balanceKey(assetId uint64, holder identity.Identity) []byte {
	key := make([]byte, 8, 8+identity.Size)
	binary.BigEndian.PutUint64(key, assetId)
	return append(key, holder.Bytes()...)
}

// fetch and decode a stored asset
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

// fetch and decode the holder list of an asset
func fetchHolders(assetId uint64) (*holderset.Set, error) {
	packed := record.Packed(globalData.holders.Get(assetKey(assetId)))
	if nil == packed {
		return holderset.New(MaximumHolders), nil
	}
	list, err := packed.UnpackHolderList()
	if nil != err {
		globalData.log.Criticalf("stored holder list: %d decode error: %s", assetId, err)
		return nil, err
	}
	set, err := holderset.FromList(MaximumHolders, list)
	if nil != err {
		globalData.log.Criticalf("stored holder list: %d inconsistent: %s", assetId, err)
		return nil, err
	}
	return set, nil
}
