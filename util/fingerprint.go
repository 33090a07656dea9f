// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"golang.org/x/crypto/sha3"
)

// FingerprintBytes - type for a certificate fingerprint
type FingerprintBytes [32]byte

// Fingerprint - fingerprint a certificate
//
// SHA3-256 of the DER encoded certificate, quoted in the log at
// startup so clients can pin the self-signed certificate
func Fingerprint(certificate []byte) FingerprintBytes {
	return sha3.Sum256(certificate)
}
