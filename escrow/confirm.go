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

// ConfirmConditions - licensor attests the conditions and settles
//
// releases the fee from custody to the licensor and marks the record
// Settled. confirmation is valid after expiry as long as no refund was
// taken, whichever terminal action lands first wins. when the release
// is refused the conditions flag is still persisted so the entitlement
// survives and the release can be retried.
func ConfirmConditions(assetId uint64, licensee identity.Identity, caller identity.Identity) (*record.EscrowRecord, error) {
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

	settled := *rec
	settled.ConditionsMet = true
	settled.Status = record.StatusSettled
	settledPacked, err := settled.Pack()
	if nil != err {
		return nil, err
	}

	confirmed := *rec
	confirmed.ConditionsMet = true
	confirmedPacked, err := confirmed.Pack()
	if nil != err {
		return nil, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	err = globalData.adapter.ReleaseFromCustody(rec.FeeAmount, rec.Licensor, reference(rec))
	if nil != err {
		globalData.log.Errorf("escrow: %d release refused: %s", assetId, err)

		// keep the attestation even though the payout failed
		trx.Put(globalData.escrows, escrowKey(assetId, licensee), confirmedPacked)
		err = trx.Commit()
		if nil != err {
			return nil, err
		}
		messagebus.Bus.Broadcast.Send("escrow", escrowKey(assetId, licensee), confirmedPacked)
		return nil, fault.SettlementFailed
	}

	trx.Put(globalData.escrows, escrowKey(assetId, licensee), settledPacked)

	err = trx.Commit()
	if nil != err {
		// the fee already left custody, aborting here would lose the settlement
		globalData.log.Criticalf("escrow: %d commit error after release: %s", assetId, err)
		logger.Panicf("escrow: %d commit error after release: %s", assetId, err)
	}

	globalData.log.Infof("escrow: %d settled to: %s fee: %d", assetId, rec.Licensor, rec.FeeAmount)

	messagebus.Bus.Broadcast.Send("escrow", escrowKey(assetId, licensee), settledPacked)

	return &settled, nil
}
