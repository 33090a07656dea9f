// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/storage"
)

// a second initialise must be rejected
func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(databaseFileName, networkName, storage.ReadWrite)
	if fault.AlreadyInitialised != err {
		t.Fatalf("unexpected initialise error: %s", err)
	}
}

// data written for one network must not open under another
func TestNetworkMismatch(t *testing.T) {
	setup(t)
	storage.Finalise()
	defer removeFiles()

	err := storage.Initialise(databaseFileName, "live", storage.ReadWrite)
	if fault.WrongNetworkForData != err {
		t.Fatalf("unexpected initialise error: %s", err)
	}
}

// a read only open of a missing database must fail
func TestReadOnlyMissingDatabase(t *testing.T) {
	removeFiles()
	defer removeFiles()

	err := storage.Initialise(databaseFileName, networkName, storage.ReadOnly)
	if nil == err {
		storage.Finalise()
		t.Fatalf("read only initialise of missing database did not fail")
	}
}
