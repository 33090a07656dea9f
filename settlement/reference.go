// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settlement

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/util"
)

// ReferenceLength - number of bytes in a reference
const ReferenceLength = 32

// Reference - idempotency token for one custody movement
//
// derived from the escrow record the movement settles so that a
// retried release hits the same token and cannot pay twice
type Reference [ReferenceLength]byte

// NewReference - derive the reference for one escrow instance
//
// the nonce is the creation tick of the escrow record, a replacement
// record for the same parties therefore gets a fresh reference
func NewReference(assetId uint64, licensee identity.Identity, licensor identity.Identity, nonce uint64) Reference {
	buffer := make([]byte, 0, 2*identity.Size+18)
	buffer = append(buffer, util.ToVarint64(assetId)...)
	buffer = append(buffer, licensee.Bytes()...)
	buffer = append(buffer, licensor.Bytes()...)
	buffer = append(buffer, util.ToVarint64(nonce)...)
	return Reference(sha3.Sum256(buffer))
}

// String - hex form for logs and the REST payload
func (ref Reference) String() string {
	return hex.EncodeToString(ref[:])
}

// MarshalText - for JSON encoding
func (ref Reference) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(ref))
	buffer := make([]byte, size)
	hex.Encode(buffer, ref[:])
	return buffer, nil
}

// UnmarshalText - for JSON decoding
func (ref *Reference) UnmarshalText(s []byte) error {
	if ReferenceLength != hex.DecodedLen(len(s)) {
		return fault.InvalidReference
	}
	byteCount, err := hex.Decode(ref[:], s)
	if nil != err {
		return err
	}
	if ReferenceLength != byteCount {
		return fault.InvalidReference
	}
	return nil
}
