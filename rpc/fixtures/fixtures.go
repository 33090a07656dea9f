// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the RPC service tests
package fixtures

import (
	"io/ioutil"
	"os"
	"path"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/asset"
	"github.com/tessera-ledger/tesserad/clock"
	"github.com/tessera-ledger/tesserad/escrow"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/ledger"
	"github.com/tessera-ledger/tesserad/settlement"
	"github.com/tessera-ledger/tesserad/storage"
	"github.com/tessera-ledger/tesserad/util"
)

// LogCategory - logger tag for test servers and services
const LogCategory = "testing"

const (
	databaseFileName    = "test"
	networkName         = "testing"
	loggerFile          = "test.log"
	certificateFileName = "test.crt"
	keyFileName         = "test.key"

	startTick = uint64(100)

	// host ledger balance seeded for the licensee
	LicenseeOpening = uint64(10000)
)

// identities shared by the service tests
var (
	Owner    identity.Identity // asset owner, escrow licensor
	Licensee identity.Identity
	Other    identity.Identity
)

// Clock - stepped clock driving the engine during a test
var Clock *clock.Stepped

func init() {
	Owner, _, _ = identity.Generate(true)
	Licensee, _, _ = identity.Generate(true)
	Other, _, _ = identity.Generate(true)
}

func removeFiles() {
	os.RemoveAll(databaseFileName + ".leveldb")
	os.RemoveAll(loggerFile)
	os.RemoveAll(certificateFileName)
	os.RemoveAll(keyFileName)
}

// Certificate - file name of a self signed test certificate
//
// the pair is generated beneath dir on first use
func Certificate(dir string) string {
	makeCertificatePair(dir)
	return path.Join(dir, certificateFileName)
}

// Key - file name of the private key matching Certificate
func Key(dir string) string {
	makeCertificatePair(dir)
	return path.Join(dir, keyFileName)
}

func makeCertificatePair(dir string) {
	certificateName := path.Join(dir, certificateFileName)
	keyName := path.Join(dir, keyFileName)

	if util.EnsureFileExists(certificateName) && util.EnsureFileExists(keyName) {
		return
	}

	org := "tesserad self signed cert for: testing"
	validUntil := time.Now().Add(24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, false, nil)
	if nil != err {
		panic("cannot generate test certificate: " + err.Error())
	}

	if err := ioutil.WriteFile(certificateName, cert, 0666); nil != err {
		panic("cannot write test certificate: " + err.Error())
	}
	if err := ioutil.WriteFile(keyName, key, 0600); nil != err {
		os.Remove(certificateName)
		panic("cannot write test key: " + err.Error())
	}
}

// SetupTestLogger - logger only, for tests that never touch storage
func SetupTestLogger() {
	removeFiles()
	_ = logger.Initialise(logger.Configuration{
		Directory: ".",
		File:      loggerFile,
		Size:      50000,
		Count:     10,
	})
}

// TeardownTestLogger - undo SetupTestLogger
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// SetupEngine - boot the whole engine against a temporary database
//
// settlement runs the in-process custodian with the licensee seeded,
// no asset is registered
func SetupEngine(t *testing.T) {
	SetupTestLogger()

	seeds := map[string]uint64{
		Licensee.String(): LicenseeOpening,
	}
	err := settlement.Initialise("", seeds)
	if nil != err {
		t.Fatalf("settlement initialise error: %s", err)
	}

	err = storage.Initialise(databaseFileName, networkName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	Clock = clock.NewStepped(startTick)

	err = ledger.Initialise(storage.Pool.Assets, storage.Pool.Balances, storage.Pool.Holders, true)
	if nil != err {
		t.Fatalf("ledger initialise error: %s", err)
	}

	err = asset.Initialise(storage.Pool.Assets, Clock, identity.Identity{}, true)
	if nil != err {
		t.Fatalf("asset initialise error: %s", err)
	}

	err = escrow.Initialise(storage.Pool.Escrows, storage.Pool.Assets, Clock, settlement.Custodian(), true)
	if nil != err {
		t.Fatalf("escrow initialise error: %s", err)
	}
}

// TeardownEngine - undo SetupEngine
func TeardownEngine() {
	_ = escrow.Finalise()
	_ = asset.Finalise()
	_ = ledger.Finalise()
	_ = settlement.Finalise()
	storage.Finalise()
	TeardownTestLogger()
}
