// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/messagebus"
	"github.com/tessera-ledger/tesserad/record"
	"github.com/tessera-ledger/tesserad/storage"
)

// Transfer - move tokens of one asset between two holders
//
// only the current holder may move its own tokens. every check runs
// before any write so a failure leaves all pools untouched. a holder
// leaving with a zero balance frees its place in the holder list
// before the recipient is counted.
func Transfer(assetId uint64, amount uint64, from identity.Identity, to identity.Identity, caller identity.Identity) (*record.TransferEvent, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	if 0 == assetId {
		return nil, fault.InvalidAssetId
	}
	if err := from.ValidForNetwork(globalData.testing); nil != err {
		return nil, err
	}
	if err := to.ValidForNetwork(globalData.testing); nil != err {
		return nil, err
	}

	data, err := fetchAsset(assetId)
	if nil != err {
		return nil, err
	}
	if nil == data {
		return nil, fault.AssetNotFound
	}

	if 0 == amount {
		return nil, fault.InvalidTokenAmount
	}
	if from == to {
		return nil, fault.SelfTransferNotAllowed
	}
	if caller != from {
		return nil, fault.NotTokenOwner
	}
	if !data.Transferable {
		return nil, fault.AssetNotTransferable
	}

	fromBalance, _ := globalData.balances.GetN(balanceKey(assetId, from))
	if fromBalance < amount {
		return nil, fault.InsufficientTokens
	}
	toBalance, _ := globalData.balances.GetN(balanceKey(assetId, to))

	holders, err := fetchHolders(assetId)
	if nil != err {
		return nil, err
	}

	// the sender leaving frees its place before the recipient needs one
	next := holders.Copy()
	if fromBalance == amount {
		next.Remove(from)
	}
	if 0 == toBalance {
		err = next.Add(to)
		if nil != err {
			return nil, err
		}
	}

	packedHolders, err := record.HolderList(next.Items()).Pack()
	if nil != err {
		return nil, err
	}

	event := record.TransferEvent{
		AssetId: assetId,
		From:    from,
		To:      to,
		Amount:  amount,
	}
	packedEvent, err := event.Pack()
	if nil != err {
		return nil, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	// zero balances stay as zeroed entries
	trx.PutN(globalData.balances, balanceKey(assetId, from), fromBalance-amount)
	trx.PutN(globalData.balances, balanceKey(assetId, to), toBalance+amount)
	trx.Put(globalData.holders, assetKey(assetId), packedHolders)

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	globalData.log.Infof("asset: %d moved: %d from: %s to: %s", assetId, amount, from, to)

	messagebus.Bus.Broadcast.Send("transfer", packedEvent)

	return &event, nil
}
