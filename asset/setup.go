// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - registry of intangible assets
//
// an asset is registered once with a fixed token supply and carries a
// mutable current valuation. registration mints the whole supply to
// the registrant in the same storage batch, there is no later mint.
package asset

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/clock"
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/record"
	"github.com/tessera-ledger/tesserad/storage"
)

// globals
type globalDataType struct {
	sync.RWMutex
	log           *logger.L
	assets        *storage.PoolHandle
	clk           clock.Clock
	administrator identity.Identity // zero when no administrator is configured
	testing       bool
	initialised   bool
}

// global storage
var globalData globalDataType

// Initialise - connect the registry to its pool and clock
//
// the administrator identity may additionally update any valuation, a
// zero value disables that override
func Initialise(assets *storage.PoolHandle, clk clock.Clock, administrator identity.Identity, testing bool) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("asset")
	globalData.log.Info("starting…")

	globalData.assets = assets
	globalData.clk = clk
	globalData.administrator = administrator
	globalData.testing = testing

	globalData.initialised = true

	return nil
}

// Finalise - shut down the registry
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

// storage key of an asset
func assetKey(assetId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, assetId)
	return key
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
