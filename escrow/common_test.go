// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/asset"
	"github.com/tessera-ledger/tesserad/clock"
	"github.com/tessera-ledger/tesserad/escrow"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/ledger"
	"github.com/tessera-ledger/tesserad/settlement"
	"github.com/tessera-ledger/tesserad/storage"
)

// test files
const (
	databaseFileName = "test"
	networkName      = "testing"
	loggerFile       = "test.log"
)

const (
	testAsset    = uint64(1)
	testFee      = uint64(120)
	testDuration = uint64(50)
	startTick    = uint64(100)

	licenseeOpening = uint64(500)
)

var (
	licensorAccount identity.Identity
	licenseeAccount identity.Identity
	otherAccount    identity.Identity
)

var testClock *clock.Stepped

func init() {
	licensorAccount, _, _ = identity.Generate(true)
	licenseeAccount, _, _ = identity.Generate(true)
	otherAccount, _, _ = identity.Generate(true)
}

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName + ".leveldb")
	os.RemoveAll(loggerFile)
}

func setupLogger() {
	_ = logger.Initialise(logger.Configuration{
		Directory: ".",
		File:      loggerFile,
		Size:      50000,
		Count:     10,
	})
}

// configure for testing with one registered asset
//
// fee movements go through the supplied adapter
func setup(t *testing.T, adapter settlement.Adapter) {
	removeFiles()
	setupLogger()

	err := storage.Initialise(databaseFileName, networkName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	testClock = clock.NewStepped(startTick)

	err = ledger.Initialise(storage.Pool.Assets, storage.Pool.Balances, storage.Pool.Holders, true)
	if nil != err {
		t.Fatalf("ledger initialise error: %s", err)
	}

	err = asset.Initialise(storage.Pool.Assets, testClock, identity.Identity{}, true)
	if nil != err {
		t.Fatalf("asset initialise error: %s", err)
	}

	err = escrow.Initialise(storage.Pool.Escrows, storage.Pool.Assets, testClock, adapter, true)
	if nil != err {
		t.Fatalf("escrow initialise error: %s", err)
	}

	_, err = asset.Register(testAsset, 50000, 1000, licensorAccount)
	if nil != err {
		t.Fatalf("asset register error: %s", err)
	}
}

// configure for testing against the in-process custodian
//
// the licensee starts with a seeded host ledger balance
func setupWithCustodian(t *testing.T) {
	removeFiles()
	setupLogger()

	seeds := map[string]uint64{
		licenseeAccount.String(): licenseeOpening,
	}
	err := settlement.Initialise("", seeds)
	if nil != err {
		t.Fatalf("settlement initialise error: %s", err)
	}

	setup(t, settlement.Custodian())
}

// post test cleanup
func teardown() {
	_ = escrow.Finalise()
	_ = asset.Finalise()
	_ = ledger.Finalise()
	_ = settlement.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}
