// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/messagebus"
	"github.com/tessera-ledger/tesserad/record"
	"github.com/tessera-ledger/tesserad/storage"
)

// Create - open a licensing agreement for an asset
//
// only the asset owner may license, one agreement per asset and
// licensee. a previous record at the key blocks creation unless it is
// terminal or was never funded and has expired; a replacement always
// gets a later creation tick than the record it overwrites so its
// settlement reference is fresh.
func Create(assetId uint64, licensee identity.Identity, feeAmount uint64, duration uint64, caller identity.Identity) (*record.EscrowRecord, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	if 0 == assetId {
		return nil, fault.InvalidAssetId
	}
	if err := licensee.ValidForNetwork(globalData.testing); nil != err {
		return nil, err
	}
	if err := caller.ValidForNetwork(globalData.testing); nil != err {
		return nil, err
	}
	if 0 == feeAmount {
		return nil, fault.InvalidFeeAmount
	}
	if 0 == duration {
		return nil, fault.InvalidDuration
	}

	data, err := fetchAsset(assetId)
	if nil != err {
		return nil, err
	}
	if nil == data {
		return nil, fault.AssetNotFound
	}
	if caller != data.Owner {
		return nil, fault.NotAssetOwner
	}
	if licensee == data.Owner {
		return nil, fault.LicenseeIsOwner
	}

	now := globalData.clk.Tick()

	previous, err := fetchEscrow(assetId, licensee)
	if nil != err {
		return nil, err
	}

	createdTick := now
	if nil != previous {
		void := record.StatusCreated == previous.Status && now >= previous.ExpirationTick
		if !previous.Status.IsTerminal() && !void {
			return nil, fault.EscrowAlreadyActive
		}
		// a replaced record never shares a creation tick
		if createdTick <= previous.CreatedTick {
			createdTick = previous.CreatedTick + 1
		}
	}

	rec := record.EscrowRecord{
		AssetId:        assetId,
		Licensor:       data.Owner,
		Licensee:       licensee,
		FeeAmount:      feeAmount,
		Status:         record.StatusCreated,
		ConditionsMet:  false,
		ExpirationTick: createdTick + duration,
		CreatedTick:    createdTick,
	}
	packed, err := rec.Pack()
	if nil != err {
		return nil, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	trx.Put(globalData.escrows, escrowKey(assetId, licensee), packed)

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	globalData.log.Infof("escrow: %d licensee: %s fee: %d expires: %d", assetId, licensee, feeAmount, rec.ExpirationTick)

	messagebus.Bus.Broadcast.Send("escrow", escrowKey(assetId, licensee), packed)

	return &rec, nil
}
