// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/util"
)

// Get - load a certificate and key pair from disk and return the TLS
// configuration together with the certificate fingerprint
//
// the fingerprint is quoted in the log so clients can pin the
// self-signed certificate
//
// FreeBSD: openssl x509 -outform DER -in tessera-rpc.crt | sha3sum -a 256
func Get(log *logger.L, name string, certificateFileName string, keyFileName string) (*tls.Config, util.FingerprintBytes, error) {
	var fin util.FingerprintBytes

	if !util.EnsureFileExists(certificateFileName) {
		log.Errorf("certificate: %q does not exist", certificateFileName)
		return nil, fin, fault.CertificateFileNotFound
	}

	if !util.EnsureFileExists(keyFileName) {
		log.Errorf("private key: %q does not exist", keyFileName)
		return nil, fin, fault.KeyFileNotFound
	}

	keyPair, err := tls.LoadX509KeyPair(certificateFileName, keyFileName)
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = util.Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}
