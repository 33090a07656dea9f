// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
)

// BalanceOf - tokens of one asset held by one identity
//
// zero for any unknown pair
func BalanceOf(assetId uint64, holder identity.Identity) uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0
	}

	balance, _ := globalData.balances.GetN(balanceKey(assetId, holder))
	return balance
}

// Holders - identities with a nonzero balance, in first-held order
func Holders(assetId uint64) ([]identity.Identity, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	set, err := fetchHolders(assetId)
	if nil != err {
		return nil, err
	}
	return set.Items(), nil
}
