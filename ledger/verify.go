// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"encoding/binary"

	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
)

// Verify - audit the stored state of one asset
//
// the balances must sum to the fixed supply and the holder list must
// be exactly the identities with a nonzero balance
func Verify(assetId uint64) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	data, err := fetchAsset(assetId)
	if nil != err {
		return err
	}
	if nil == data {
		return fault.AssetNotFound
	}

	prefix := assetKey(assetId)
	sum := uint64(0)
	nonzero := make(map[identity.Identity]struct{})

	cursor := globalData.balances.NewFetchCursor().Seek(prefix)

fetch_loop:
	for {
		elements, err := cursor.Fetch(20)
		if nil != err {
			return err
		}
		if 0 == len(elements) {
			break fetch_loop
		}
		for _, e := range elements {
			if !bytes.HasPrefix(e.Key, prefix) {
				break fetch_loop
			}
			if 8+identity.Size != len(e.Key) || 8 != len(e.Value) {
				globalData.log.Errorf("asset: %d malformed balance entry: %x", assetId, e.Key)
				return fault.DataInconsistent
			}
			balance := binary.BigEndian.Uint64(e.Value)
			if 0 == balance {
				continue
			}
			holder, err := identity.FromBytes(e.Key[8:])
			if nil != err {
				return err
			}
			sum += balance
			nonzero[holder] = struct{}{}
		}
	}

	if sum != data.TotalTokens {
		globalData.log.Errorf("asset: %d balance sum: %d supply: %d", assetId, sum, data.TotalTokens)
		return fault.DataInconsistent
	}

	set, err := fetchHolders(assetId)
	if nil != err {
		return err
	}
	if set.Size() != len(nonzero) {
		globalData.log.Errorf("asset: %d holder list size: %d nonzero holders: %d", assetId, set.Size(), len(nonzero))
		return fault.DataInconsistent
	}
	for holder := range nonzero {
		if !set.Exists(holder) {
			globalData.log.Errorf("asset: %d holder missing from list: %s", assetId, holder)
			return fault.DataInconsistent
		}
	}

	return nil
}
