// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/ledger"
	"github.com/tessera-ledger/tesserad/messagebus"
	"github.com/tessera-ledger/tesserad/record"
	"github.com/tessera-ledger/tesserad/storage"
)

// Register - create an asset and mint its whole supply to the caller
//
// the asset id is externally assigned and must be unused, the current
// valuation starts at the initial one and transfers start enabled
func Register(assetId uint64, initialValuation uint64, tokenAmount uint64, caller identity.Identity) (*record.AssetData, error) {
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
	if 0 == initialValuation {
		return nil, fault.InvalidValuation
	}
	if 0 == tokenAmount {
		return nil, fault.InvalidTokenAmount
	}

	if globalData.assets.Has(assetKey(assetId)) {
		return nil, fault.AssetAlreadyExists
	}

	data := record.AssetData{
		Owner:            caller,
		InitialValuation: initialValuation,
		CurrentValuation: initialValuation,
		TotalTokens:      tokenAmount,
		Transferable:     true,
		CreatedTick:      globalData.clk.Tick(),
	}
	packed, err := data.Pack()
	if nil != err {
		return nil, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	trx.Put(globalData.assets, assetKey(assetId), packed)

	// the whole supply goes to the registrant in the same batch
	err = ledger.Mint(trx, assetId, tokenAmount, caller)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	globalData.log.Infof("registered asset: %d owner: %s tokens: %d", assetId, caller, tokenAmount)

	messagebus.Bus.Broadcast.Send("asset", assetKey(assetId), packed)

	return &data, nil
}
