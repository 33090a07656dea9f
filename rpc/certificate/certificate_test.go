// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/rpc/certificate"
	"github.com/tessera-ledger/tesserad/rpc/fixtures"
	"github.com/tessera-ledger/tesserad/util"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer := fixtures.Certificate(".")
	key := fixtures.Key(".")

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.LoadX509KeyPair(cer, key)

	assert.Equal(t, util.Fingerprint(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
}

func TestGetWhenCertificateMissing(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		"no-such.crt",
		"no-such.key",
	)
	assert.Equal(t, fault.CertificateFileNotFound, err, "wrong error")
}

func TestGetWhenKeyMissing(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer := fixtures.Certificate(".")

	_, _, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		"no-such.key",
	)
	assert.Equal(t, fault.KeyFileNotFound, err, "wrong error")
}
