// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/tessera-ledger/tesserad/fault"
)

// enumeration of supported key algorithms
const (
	ED25519 = iota + 1
	// end of list (one greater than last item)
	algorithmLimit
)

// miscellaneous constants
const (
	KeyLength = ed25519.PublicKeySize // raw key bytes
	Size      = KeyLength + 1         // wire form: variant byte + key

	checksumLength = 4

	// bits in the variant byte starting from LSB
	identityCode = 0x01
	testCode     = 0x02

	algorithmShift = 4 // algorithm occupies the high nibble
)

// Identity - a principal on the ledger
//
// the zero value is not a valid identity; values are comparable and
// can be used directly as map keys
type Identity struct {
	variant byte
	key     [KeyLength]byte
}

// New - wrap a raw public key as an identity
func New(publicKey []byte, testnet bool) (Identity, error) {
	if KeyLength != len(publicKey) {
		return Identity{}, fault.InvalidIdentityLength
	}
	variant := byte(ED25519<<algorithmShift | identityCode)
	if testnet {
		variant |= testCode
	}
	id := Identity{variant: variant}
	copy(id.key[:], publicKey)
	return id, nil
}

// Generate - create a new identity and its private key
func Generate(testnet bool) (Identity, []byte, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return Identity{}, nil, err
	}
	id, err := New(publicKey, testnet)
	if nil != err {
		return Identity{}, nil, err
	}
	return id, privateKey, nil
}

// FromBytes - decode the wire form produced by Bytes
func FromBytes(buffer []byte) (Identity, error) {
	if Size != len(buffer) {
		return Identity{}, fault.InvalidIdentityLength
	}
	variant := buffer[0]
	if identityCode != variant&identityCode {
		return Identity{}, fault.InvalidIdentity
	}
	algorithm := variant >> algorithmShift
	if algorithm < ED25519 || algorithm >= algorithmLimit {
		return Identity{}, fault.InvalidIdentity
	}
	id := Identity{variant: variant}
	copy(id.key[:], buffer[1:])
	return id, nil
}

// FromBase58 - decode the checksummed text form produced by String
func FromBase58(s string) (Identity, error) {
	decoded, err := base58.Decode(s)
	if nil != err {
		return Identity{}, fault.InvalidIdentity
	}
	if Size+checksumLength != len(decoded) {
		return Identity{}, fault.InvalidIdentityLength
	}
	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return Identity{}, fault.ChecksumMismatch
	}
	return FromBytes(decoded[:checksumStart])
}

// Bytes - wire form: variant byte followed by the raw key
func (id Identity) Bytes() []byte {
	buffer := make([]byte, 0, Size)
	buffer = append(buffer, id.variant)
	return append(buffer, id.key[:]...)
}

// String - Base58 text form with a SHA3-256 checksum tail
func (id Identity) String() string {
	buffer := id.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - for JSON encoding
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - for JSON decoding
func (id *Identity) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*id = decoded
	return nil
}

// IsTesting - true for test network identities
func (id Identity) IsTesting() bool {
	return testCode == id.variant&testCode
}

// IsZero - true for the invalid zero value
func (id Identity) IsZero() bool {
	return 0 == id.variant
}

// ValidForNetwork - reject identities from the wrong network
func (id Identity) ValidForNetwork(testing bool) error {
	if id.IsZero() {
		return fault.InvalidIdentity
	}
	if id.IsTesting() != testing {
		return fault.WrongNetworkForIdentity
	}
	return nil
}
