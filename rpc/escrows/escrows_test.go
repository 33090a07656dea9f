// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrows_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/asset"
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/mode"
	"github.com/tessera-ledger/tesserad/record"
	"github.com/tessera-ledger/tesserad/rpc/escrows"
	"github.com/tessera-ledger/tesserad/rpc/fixtures"
	"github.com/tessera-ledger/tesserad/settlement"
)

const (
	testAsset    = uint64(7)
	testFee      = uint64(500)
	testDuration = uint64(40)
)

func setupService(t *testing.T) *escrows.Escrow {
	fixtures.SetupEngine(t)

	_, err := asset.Register(testAsset, 250000, 1000, fixtures.Owner)
	if nil != err {
		t.Fatalf("register error: %s", err)
	}

	return escrows.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
	)
}

func TestEscrowLifecycleSettled(t *testing.T) {
	e := setupService(t)
	defer fixtures.TeardownEngine()

	var createReply escrows.CreateReply
	err := e.Create(&escrows.CreateArguments{
		AssetId:   testAsset,
		Licensee:  fixtures.Licensee,
		FeeAmount: testFee,
		Duration:  testDuration,
		Caller:    fixtures.Owner,
	}, &createReply)
	assert.Nil(t, err, "wrong Create")
	assert.Equal(t, record.StatusCreated, createReply.Escrow.Status, "wrong status")
	assert.Equal(t, fixtures.Owner, createReply.Escrow.Licensor, "wrong licensor")
	assert.Equal(t, fixtures.Clock.Tick()+testDuration, createReply.Escrow.ExpirationTick, "wrong expiration")

	var depositReply escrows.DepositReply
	err = e.Deposit(&escrows.DepositArguments{
		AssetId:  testAsset,
		Licensee: fixtures.Licensee,
		Licensor: fixtures.Owner,
		Caller:   fixtures.Licensee,
	}, &depositReply)
	assert.Nil(t, err, "wrong Deposit")
	assert.Equal(t, record.StatusFunded, depositReply.Escrow.Status, "wrong status")
	assert.Equal(t, fixtures.LicenseeOpening-testFee, settlement.BalanceOf(fixtures.Licensee), "wrong licensee funds")
	assert.Equal(t, testFee, settlement.CustodyBalance(), "wrong custody")

	var confirmReply escrows.ConfirmReply
	err = e.Confirm(&escrows.ConfirmArguments{
		AssetId:  testAsset,
		Licensee: fixtures.Licensee,
		Caller:   fixtures.Owner,
	}, &confirmReply)
	assert.Nil(t, err, "wrong Confirm")
	assert.Equal(t, record.StatusSettled, confirmReply.Escrow.Status, "wrong status")
	assert.True(t, confirmReply.Escrow.ConditionsMet, "wrong conditions flag")
	assert.Equal(t, testFee, settlement.BalanceOf(fixtures.Owner), "wrong licensor funds")
	assert.Equal(t, uint64(0), settlement.CustodyBalance(), "wrong custody")
}

func TestEscrowLifecycleRefunded(t *testing.T) {
	e := setupService(t)
	defer fixtures.TeardownEngine()

	var createReply escrows.CreateReply
	err := e.Create(&escrows.CreateArguments{
		AssetId:   testAsset,
		Licensee:  fixtures.Licensee,
		FeeAmount: testFee,
		Duration:  testDuration,
		Caller:    fixtures.Owner,
	}, &createReply)
	assert.Nil(t, err, "wrong Create")

	var depositReply escrows.DepositReply
	err = e.Deposit(&escrows.DepositArguments{
		AssetId:  testAsset,
		Licensee: fixtures.Licensee,
		Licensor: fixtures.Owner,
		Caller:   fixtures.Licensee,
	}, &depositReply)
	assert.Nil(t, err, "wrong Deposit")

	var refundReply escrows.RefundReply
	refund := escrows.RefundArguments{
		AssetId:  testAsset,
		Licensee: fixtures.Licensee,
		Caller:   fixtures.Owner,
	}

	err = e.Refund(&refund, &refundReply)
	assert.Equal(t, fault.EscrowNotYetExpired, err, "wrong error")

	fixtures.Clock.Advance(testDuration)

	err = e.Refund(&refund, &refundReply)
	assert.Nil(t, err, "wrong Refund")
	assert.Equal(t, record.StatusRefunded, refundReply.Escrow.Status, "wrong status")
	assert.Equal(t, fixtures.LicenseeOpening, settlement.BalanceOf(fixtures.Licensee), "wrong licensee funds")
	assert.Equal(t, uint64(0), settlement.CustodyBalance(), "wrong custody")
}

func TestEscrowCreateWhenNotAssetOwner(t *testing.T) {
	e := setupService(t)
	defer fixtures.TeardownEngine()

	var reply escrows.CreateReply
	err := e.Create(&escrows.CreateArguments{
		AssetId:   testAsset,
		Licensee:  fixtures.Licensee,
		FeeAmount: testFee,
		Duration:  testDuration,
		Caller:    fixtures.Other,
	}, &reply)
	assert.Equal(t, fault.NotAssetOwner, err, "wrong error")
}

func TestEscrowDepositWhenNotLicensee(t *testing.T) {
	e := setupService(t)
	defer fixtures.TeardownEngine()

	var createReply escrows.CreateReply
	err := e.Create(&escrows.CreateArguments{
		AssetId:   testAsset,
		Licensee:  fixtures.Licensee,
		FeeAmount: testFee,
		Duration:  testDuration,
		Caller:    fixtures.Owner,
	}, &createReply)
	assert.Nil(t, err, "wrong Create")

	var reply escrows.DepositReply
	err = e.Deposit(&escrows.DepositArguments{
		AssetId:  testAsset,
		Licensee: fixtures.Licensee,
		Licensor: fixtures.Owner,
		Caller:   fixtures.Other,
	}, &reply)
	assert.Equal(t, fault.NotEscrowLicensee, err, "wrong error")
}

func TestEscrowGet(t *testing.T) {
	e := setupService(t)
	defer fixtures.TeardownEngine()

	var createReply escrows.CreateReply
	err := e.Create(&escrows.CreateArguments{
		AssetId:   testAsset,
		Licensee:  fixtures.Licensee,
		FeeAmount: testFee,
		Duration:  testDuration,
		Caller:    fixtures.Owner,
	}, &createReply)
	assert.Nil(t, err, "wrong Create")

	var reply escrows.GetReply
	err = e.Get(&escrows.GetArguments{
		AssetId:  testAsset,
		Licensee: fixtures.Licensee,
		Licensor: fixtures.Owner,
	}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, record.StatusCreated, reply.Escrow.Status, "wrong status")
	assert.Equal(t, testFee, reply.Escrow.FeeAmount, "wrong fee")

	err = e.Get(&escrows.GetArguments{
		AssetId:  testAsset,
		Licensee: fixtures.Licensee,
		Licensor: fixtures.Other,
	}, &reply)
	assert.Equal(t, fault.EscrowNotFound, err, "wrong error")
}

func TestEscrowCreateWhenNotInNormal(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	e := escrows.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return false },
	)

	var reply escrows.CreateReply
	err := e.Create(&escrows.CreateArguments{
		AssetId:   testAsset,
		Licensee:  fixtures.Licensee,
		FeeAmount: testFee,
		Duration:  testDuration,
		Caller:    fixtures.Owner,
	}, &reply)
	assert.Equal(t, fault.NotAvailableDuringSynchronise, err, "wrong error")
}
