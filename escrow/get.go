// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/record"
)

// Get - fetch one agreement by asset, licensee and licensor
//
// a record whose stored licensor differs from the queried one reports
// not found rather than leaking the real party.
func Get(assetId uint64, licensee identity.Identity, licensor identity.Identity) (*record.EscrowRecord, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	if 0 == assetId {
		return nil, fault.InvalidAssetId
	}
	if err := licensee.ValidForNetwork(globalData.testing); nil != err {
		return nil, err
	}
	if err := licensor.ValidForNetwork(globalData.testing); nil != err {
		return nil, err
	}

	rec, err := fetchEscrow(assetId, licensee)
	if nil != err {
		return nil, err
	}
	if nil == rec || licensor != rec.Licensor {
		return nil, fault.EscrowNotFound
	}

	return rec, nil
}
