// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tessera-ledger/tesserad/escrow"
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/record"
)

func TestCreate(t *testing.T) {
	setupWithCustodian(t)
	defer teardown()

	rec, err := escrow.Create(testAsset, licenseeAccount, testFee, testDuration, licensorAccount)
	assert.Nil(t, err, "create error")
	assert.Equal(t, testAsset, rec.AssetId, "wrong asset")
	assert.Equal(t, licensorAccount, rec.Licensor, "wrong licensor")
	assert.Equal(t, licenseeAccount, rec.Licensee, "wrong licensee")
	assert.Equal(t, testFee, rec.FeeAmount, "wrong fee")
	assert.Equal(t, record.StatusCreated, rec.Status, "wrong status")
	assert.False(t, rec.ConditionsMet, "conditions must start unmet")
	assert.Equal(t, startTick, rec.CreatedTick, "wrong creation tick")
	assert.Equal(t, startTick+testDuration, rec.ExpirationTick, "wrong expiration tick")

	stored, err := escrow.Get(testAsset, licenseeAccount, licensorAccount)
	assert.Nil(t, err, "get error")
	assert.Equal(t, *rec, *stored, "stored record differs")
}

func TestCreateRejectsBadArguments(t *testing.T) {
	setupWithCustodian(t)
	defer teardown()

	_, err := escrow.Create(0, licenseeAccount, testFee, testDuration, licensorAccount)
	assert.Equal(t, fault.InvalidAssetId, err, "zero asset id not rejected")

	_, err = escrow.Create(testAsset, licenseeAccount, 0, testDuration, licensorAccount)
	assert.Equal(t, fault.InvalidFeeAmount, err, "zero fee not rejected")

	_, err = escrow.Create(testAsset, licenseeAccount, testFee, 0, licensorAccount)
	assert.Equal(t, fault.InvalidDuration, err, "zero duration not rejected")

	_, err = escrow.Create(9, licenseeAccount, testFee, testDuration, licensorAccount)
	assert.Equal(t, fault.AssetNotFound, err, "unknown asset not rejected")

	_, err = escrow.Create(testAsset, licenseeAccount, testFee, testDuration, otherAccount)
	assert.Equal(t, fault.NotAssetOwner, err, "non owner licensor not rejected")

	_, err = escrow.Create(testAsset, licensorAccount, testFee, testDuration, licensorAccount)
	assert.Equal(t, fault.LicenseeIsOwner, err, "owner as licensee not rejected")
}

func TestCreateWhileActive(t *testing.T) {
	setupWithCustodian(t)
	defer teardown()

	_, err := escrow.Create(testAsset, licenseeAccount, testFee, testDuration, licensorAccount)
	assert.Nil(t, err, "create error")

	// a pending agreement blocks a second one
	_, err = escrow.Create(testAsset, licenseeAccount, testFee, testDuration, licensorAccount)
	assert.Equal(t, fault.EscrowAlreadyActive, err, "active agreement not protected")

	// and a funded one stays blocked even after expiry
	_, err = escrow.DepositFee(testAsset, licenseeAccount, licensorAccount, licenseeAccount)
	assert.Nil(t, err, "deposit error")
	testClock.Advance(testDuration)
	_, err = escrow.Create(testAsset, licenseeAccount, testFee, testDuration, licensorAccount)
	assert.Equal(t, fault.EscrowAlreadyActive, err, "funded agreement not protected")
}

func TestCreateReplacesExpiredUnfunded(t *testing.T) {
	setupWithCustodian(t)
	defer teardown()

	_, err := escrow.Create(testAsset, licenseeAccount, testFee, testDuration, licensorAccount)
	assert.Nil(t, err, "create error")

	testClock.Advance(testDuration)

	rec, err := escrow.Create(testAsset, licenseeAccount, testFee+5, testDuration, licensorAccount)
	assert.Nil(t, err, "replacement create error")
	assert.Equal(t, record.StatusCreated, rec.Status, "wrong status")
	assert.Equal(t, testFee+5, rec.FeeAmount, "wrong fee")
	assert.Equal(t, startTick+testDuration, rec.CreatedTick, "wrong creation tick")
}

func TestCreateReplacesSettled(t *testing.T) {
	setupWithCustodian(t)
	defer teardown()

	_, err := escrow.Create(testAsset, licenseeAccount, testFee, testDuration, licensorAccount)
	assert.Nil(t, err, "create error")
	_, err = escrow.DepositFee(testAsset, licenseeAccount, licensorAccount, licenseeAccount)
	assert.Nil(t, err, "deposit error")
	_, err = escrow.ConfirmConditions(testAsset, licenseeAccount, licensorAccount)
	assert.Nil(t, err, "confirm error")

	// the whole first round ran inside one tick, the replacement still
	// gets a creation tick of its own
	rec, err := escrow.Create(testAsset, licenseeAccount, testFee, testDuration, licensorAccount)
	assert.Nil(t, err, "replacement create error")
	assert.Equal(t, record.StatusCreated, rec.Status, "wrong status")
	assert.False(t, rec.ConditionsMet, "conditions flag carried over")
	assert.Equal(t, startTick+1, rec.CreatedTick, "replacement shares a creation tick")
	assert.Equal(t, startTick+1+testDuration, rec.ExpirationTick, "wrong expiration tick")
}
