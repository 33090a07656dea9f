// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/record"
)

// Get - read the stored record of an asset
func Get(assetId uint64) (*record.AssetData, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	data, err := fetchAsset(assetId)
	if nil != err {
		return nil, err
	}
	if nil == data {
		return nil, fault.AssetNotFound
	}
	return data, nil
}

// Exists - check whether an asset id is taken
func Exists(assetId uint64) bool {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return false
	}
	return globalData.assets.Has(assetKey(assetId))
}
