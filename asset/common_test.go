// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/asset"
	"github.com/tessera-ledger/tesserad/clock"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/ledger"
	"github.com/tessera-ledger/tesserad/storage"
)

// test files
const (
	databaseFileName = "test"
	networkName      = "testing"
	loggerFile       = "test.log"
)

const startTick = uint64(100)

var (
	ownerAccount identity.Identity
	adminAccount identity.Identity
	otherAccount identity.Identity
)

var testClock *clock.Stepped

func init() {
	ownerAccount, _, _ = identity.Generate(true)
	adminAccount, _, _ = identity.Generate(true)
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

// configure for testing
//
// a zero administrator disables the revaluation override
func setup(t *testing.T, administrator identity.Identity) {
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

	err = asset.Initialise(storage.Pool.Assets, testClock, administrator, true)
	if nil != err {
		t.Fatalf("asset initialise error: %s", err)
	}
}

// post test cleanup
func teardown() {
	_ = asset.Finalise()
	_ = ledger.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}
