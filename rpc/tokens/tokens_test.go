// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/asset"
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/mode"
	"github.com/tessera-ledger/tesserad/rpc/fixtures"
	"github.com/tessera-ledger/tesserad/rpc/tokens"
)

const (
	testAsset     = uint64(7)
	testValuation = uint64(250000)
	testSupply    = uint64(1000)
)

func registerTestAsset(t *testing.T) {
	_, err := asset.Register(testAsset, testValuation, testSupply, fixtures.Owner)
	if nil != err {
		t.Fatalf("register error: %s", err)
	}
}

func TestTokensTransfer(t *testing.T) {
	fixtures.SetupEngine(t)
	defer fixtures.TeardownEngine()
	registerTestAsset(t)

	tok := tokens.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
	)

	arg := tokens.TransferArguments{
		AssetId: testAsset,
		Amount:  300,
		From:    fixtures.Owner,
		To:      fixtures.Licensee,
		Caller:  fixtures.Owner,
	}
	var reply tokens.TransferReply

	err := tok.Transfer(&arg, &reply)
	assert.Nil(t, err, "wrong Transfer")
	assert.Equal(t, testAsset, reply.Event.AssetId, "wrong asset id")
	assert.Equal(t, fixtures.Owner, reply.Event.From, "wrong from")
	assert.Equal(t, fixtures.Licensee, reply.Event.To, "wrong to")
	assert.Equal(t, uint64(300), reply.Event.Amount, "wrong amount")

	var balance tokens.BalanceReply
	err = tok.Balance(&tokens.BalanceArguments{AssetId: testAsset, Holder: fixtures.Licensee}, &balance)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, uint64(300), balance.Balance, "wrong licensee balance")

	err = tok.Balance(&tokens.BalanceArguments{AssetId: testAsset, Holder: fixtures.Owner}, &balance)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, testSupply-300, balance.Balance, "wrong owner balance")
}

func TestTokensTransferWhenNotOwner(t *testing.T) {
	fixtures.SetupEngine(t)
	defer fixtures.TeardownEngine()
	registerTestAsset(t)

	tok := tokens.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
	)

	arg := tokens.TransferArguments{
		AssetId: testAsset,
		Amount:  300,
		From:    fixtures.Owner,
		To:      fixtures.Licensee,
		Caller:  fixtures.Other,
	}
	var reply tokens.TransferReply

	err := tok.Transfer(&arg, &reply)
	assert.Equal(t, fault.NotTokenOwner, err, "wrong error")
}

func TestTokensTransferWhenInsufficient(t *testing.T) {
	fixtures.SetupEngine(t)
	defer fixtures.TeardownEngine()
	registerTestAsset(t)

	tok := tokens.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
	)

	arg := tokens.TransferArguments{
		AssetId: testAsset,
		Amount:  testSupply + 1,
		From:    fixtures.Owner,
		To:      fixtures.Licensee,
		Caller:  fixtures.Owner,
	}
	var reply tokens.TransferReply

	err := tok.Transfer(&arg, &reply)
	assert.Equal(t, fault.InsufficientTokens, err, "wrong error")
}

func TestTokensTransferWhenNotInNormal(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	tok := tokens.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return false },
	)

	arg := tokens.TransferArguments{
		AssetId: testAsset,
		Amount:  300,
		From:    fixtures.Owner,
		To:      fixtures.Licensee,
		Caller:  fixtures.Owner,
	}
	var reply tokens.TransferReply

	err := tok.Transfer(&arg, &reply)
	assert.Equal(t, fault.NotAvailableDuringSynchronise, err, "wrong error")
}

func TestTokensBalanceWhenUnknown(t *testing.T) {
	fixtures.SetupEngine(t)
	defer fixtures.TeardownEngine()

	tok := tokens.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
	)

	var reply tokens.BalanceReply
	err := tok.Balance(&tokens.BalanceArguments{AssetId: 9999, Holder: fixtures.Owner}, &reply)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, uint64(0), reply.Balance, "wrong balance")
}

func TestTokensHolders(t *testing.T) {
	fixtures.SetupEngine(t)
	defer fixtures.TeardownEngine()
	registerTestAsset(t)

	tok := tokens.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
	)

	arg := tokens.TransferArguments{
		AssetId: testAsset,
		Amount:  300,
		From:    fixtures.Owner,
		To:      fixtures.Licensee,
		Caller:  fixtures.Owner,
	}
	var transferReply tokens.TransferReply
	err := tok.Transfer(&arg, &transferReply)
	assert.Nil(t, err, "wrong Transfer")

	var reply tokens.HoldersReply
	err = tok.Holders(&tokens.HoldersArguments{AssetId: testAsset}, &reply)
	assert.Nil(t, err, "wrong Holders")
	assert.Equal(t, 2, len(reply.Holders), "wrong holder count")
	assert.Equal(t, fixtures.Owner, reply.Holders[0], "wrong first holder")
	assert.Equal(t, fixtures.Licensee, reply.Holders[1], "wrong second holder")

	err = tok.Holders(&tokens.HoldersArguments{AssetId: 9999}, &reply)
	assert.Nil(t, err, "wrong Holders")
	assert.Equal(t, 0, len(reply.Holders), "wrong holder count")
}
