// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/messagebus"
	"github.com/tessera-ledger/tesserad/record"
	"github.com/tessera-ledger/tesserad/storage"
)

// UpdateValuation - replace the current valuation of an asset
//
// only the owner or the configured administrator may revalue, every
// other attribute is immutable after registration
func UpdateValuation(assetId uint64, newValuation uint64, caller identity.Identity) (*record.AssetData, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	if 0 == assetId {
		return nil, fault.InvalidAssetId
	}
	if err := caller.ValidForNetwork(globalData.testing); nil != err {
		return nil, err
	}
	if 0 == newValuation {
		return nil, fault.InvalidValuation
	}

	data, err := fetchAsset(assetId)
	if nil != err {
		return nil, err
	}
	if nil == data {
		return nil, fault.AssetNotFound
	}

	if caller != data.Owner && (globalData.administrator.IsZero() || caller != globalData.administrator) {
		return nil, fault.NotOwnerOrAdministrator
	}

	data.CurrentValuation = newValuation
	packed, err := data.Pack()
	if nil != err {
		return nil, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	trx.Put(globalData.assets, assetKey(assetId), packed)

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	globalData.log.Infof("asset: %d valuation: %d by: %s", assetId, newValuation, caller)

	messagebus.Bus.Broadcast.Send("asset", assetKey(assetId), packed)

	return data, nil
}
