// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/record"
	"github.com/tessera-ledger/tesserad/storage"
)

// Mint - set the opening supply of a new asset
//
// only called from asset registration inside the registration batch,
// the caller serialises and commits. nothing may exist at the asset's
// keys beforehand.
func Mint(trx storage.Transaction, assetId uint64, amount uint64, to identity.Identity) error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	if 0 == amount {
		return fault.InvalidTokenAmount
	}
	if to.IsZero() {
		return fault.InvalidIdentity
	}

	if trx.Has(globalData.balances, balanceKey(assetId, to)) || trx.Has(globalData.holders, assetKey(assetId)) {
		return fault.DataInconsistent
	}

	packed, err := record.HolderList{to}.Pack()
	if nil != err {
		return err
	}

	trx.PutN(globalData.balances, balanceKey(assetId, to), amount)
	trx.Put(globalData.holders, assetKey(assetId), packed)

	return nil
}
