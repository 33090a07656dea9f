// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

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

const (
	testAsset  = uint64(1)
	testSupply = uint64(1000)
)

var (
	ownerAccount  identity.Identity
	secondAccount identity.Identity
	thirdAccount  identity.Identity
)

func init() {
	ownerAccount, _, _ = identity.Generate(true)
	secondAccount, _, _ = identity.Generate(true)
	thirdAccount, _, _ = identity.Generate(true)
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
func setup(t *testing.T) {
	removeFiles()
	setupLogger()

	err := storage.Initialise(databaseFileName, networkName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = ledger.Initialise(storage.Pool.Assets, storage.Pool.Balances, storage.Pool.Holders, true)
	if nil != err {
		t.Fatalf("ledger initialise error: %s", err)
	}

	err = asset.Initialise(storage.Pool.Assets, clock.NewStepped(100), identity.Identity{}, true)
	if nil != err {
		t.Fatalf("asset initialise error: %s", err)
	}

	_, err = asset.Register(testAsset, 50000, testSupply, ownerAccount)
	if nil != err {
		t.Fatalf("asset register error: %s", err)
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
