// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/messagebus"
	"github.com/tessera-ledger/tesserad/record"
	"github.com/tessera-ledger/tesserad/storage"
)

// RefundFee - return an expired deposit to the licensee
//
// only the licensor can refund and only after expiry, and never once
// the conditions were attested, the attestation entitles the licensor
// to settlement instead. the fee moves back to the licensee and the
// record becomes Refunded.
func RefundFee(assetId uint64, licensee identity.Identity, caller identity.Identity) (*record.EscrowRecord, error) {
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

	rec, err := fetchEscrow(assetId, licensee)
	if nil != err {
		return nil, err
	}
	if nil == rec {
		return nil, fault.EscrowNotFound
	}

	if caller != rec.Licensor {
		return nil, fault.NotEscrowLicensor
	}

	switch rec.Status {
	case record.StatusSettled:
		return nil, fault.EscrowAlreadySettled
	case record.StatusRefunded:
		return nil, fault.EscrowAlreadyRefunded
	case record.StatusCreated:
		return nil, fault.EscrowNotFunded
	}

	// an attested agreement settles, it does not refund
	if rec.ConditionsMet {
		return nil, fault.EscrowAlreadySettled
	}

	if globalData.clk.Tick() < rec.ExpirationTick {
		return nil, fault.EscrowNotYetExpired
	}

	refunded := *rec
	refunded.Status = record.StatusRefunded
	packed, err := refunded.Pack()
	if nil != err {
		return nil, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	err = globalData.adapter.ReleaseFromCustody(rec.FeeAmount, rec.Licensee, reference(rec))
	if nil != err {
		trx.Abort()
		globalData.log.Errorf("escrow: %d refund refused: %s", assetId, err)
		return nil, fault.SettlementFailed
	}

	trx.Put(globalData.escrows, escrowKey(assetId, licensee), packed)

	err = trx.Commit()
	if nil != err {
		// the fee already left custody, aborting here would lose the refund
		globalData.log.Criticalf("escrow: %d commit error after release: %s", assetId, err)
		logger.Panicf("escrow: %d commit error after release: %s", assetId, err)
	}

	globalData.log.Infof("escrow: %d refunded to: %s fee: %d", assetId, licensee, rec.FeeAmount)

	messagebus.Bus.Broadcast.Send("escrow", escrowKey(assetId, licensee), packed)

	return &refunded, nil
}
