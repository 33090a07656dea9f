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

// DepositFee - pay the licensing fee into custody
//
// the licensee funds the agreement before it expires. the claimed
// licensor must match the stored record, inconsistent keys are an
// explicit error not a silent miss. the record becomes Funded only
// after the host ledger accepted the debit.
func DepositFee(assetId uint64, licensee identity.Identity, licensor identity.Identity, caller identity.Identity) (*record.EscrowRecord, error) {
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
	if err := licensor.ValidForNetwork(globalData.testing); nil != err {
		return nil, err
	}
	if err := caller.ValidForNetwork(globalData.testing); nil != err {
		return nil, err
	}

	rec, err := fetchEscrow(assetId, licensee)
	if nil != err {
		return nil, err
	}

	// a terminal record is a dead agreement, not a fundable one
	if nil == rec || rec.Status.IsTerminal() {
		return nil, fault.EscrowNotFound
	}

	if licensor != rec.Licensor {
		return nil, fault.LicensorMismatch
	}
	if caller != licensee {
		return nil, fault.NotEscrowLicensee
	}
	if record.StatusFunded == rec.Status {
		return nil, fault.EscrowAlreadyFunded
	}
	if globalData.clk.Tick() >= rec.ExpirationTick {
		return nil, fault.EscrowExpired
	}

	funded := *rec
	funded.Status = record.StatusFunded
	packed, err := funded.Pack()
	if nil != err {
		return nil, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	err = globalData.adapter.DebitToCustody(rec.FeeAmount, rec.Licensee, reference(rec))
	if nil != err {
		trx.Abort()
		globalData.log.Errorf("escrow: %d deposit refused: %s", assetId, err)
		return nil, fault.SettlementFailed
	}

	trx.Put(globalData.escrows, escrowKey(assetId, licensee), packed)

	err = trx.Commit()
	if nil != err {
		// the fee is already in custody, aborting here would lose it
		globalData.log.Criticalf("escrow: %d commit error after debit: %s", assetId, err)
		logger.Panicf("escrow: %d commit error after debit: %s", assetId, err)
	}

	globalData.log.Infof("escrow: %d funded by: %s fee: %d", assetId, licensee, rec.FeeAmount)

	messagebus.Bus.Broadcast.Send("escrow", escrowKey(assetId, licensee), packed)

	return &funded, nil
}
