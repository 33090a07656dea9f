// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/ledger"
	"github.com/tessera-ledger/tesserad/record"
	"github.com/tessera-ledger/tesserad/storage"
)

// raw balance key as stored in the balance pool
func rawBalanceKey(assetId uint64, holder identity.Identity) []byte {
	key := make([]byte, 8, 8+identity.Size)
	binary.BigEndian.PutUint64(key, assetId)
	return append(key, holder.Bytes()...)
}

// raw asset key as stored in the asset and holder pools
func rawAssetKey(assetId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, assetId)
	return key
}

func damage(t *testing.T, f func(trx storage.Transaction)) {
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction begin error")
	f(trx)
	err = trx.Commit()
	assert.Nil(t, err, "commit error")
}

func TestVerifyClean(t *testing.T) {
	setup(t)
	defer teardown()

	assert.Nil(t, ledger.Verify(testAsset), "verify error on fresh asset")
	assert.Equal(t, fault.AssetNotFound, ledger.Verify(9), "unknown asset not rejected")
}

func TestVerifyDetectsBalanceMismatch(t *testing.T) {
	setup(t)
	defer teardown()

	damage(t, func(trx storage.Transaction) {
		trx.PutN(storage.Pool.Balances, rawBalanceKey(testAsset, ownerAccount), testSupply+1)
	})

	assert.Equal(t, fault.DataInconsistent, ledger.Verify(testAsset), "inflated balance not detected")
}

func TestVerifyDetectsHolderMismatch(t *testing.T) {
	setup(t)
	defer teardown()

	damage(t, func(trx storage.Transaction) {
		packed, err := record.HolderList{ownerAccount, secondAccount}.Pack()
		assert.Nil(t, err, "pack error")
		trx.Put(storage.Pool.Holders, rawAssetKey(testAsset), packed)
	})

	assert.Equal(t, fault.DataInconsistent, ledger.Verify(testAsset), "phantom holder not detected")
}

func TestVerifyDetectsDamagedKey(t *testing.T) {
	setup(t)
	defer teardown()

	damage(t, func(trx storage.Transaction) {
		value := make([]byte, 8)
		binary.BigEndian.PutUint64(value, 1)
		trx.Put(storage.Pool.Balances, append(rawAssetKey(testAsset), 0x01), value)
	})

	assert.Equal(t, fault.DataInconsistent, ledger.Verify(testAsset), "damaged key not detected")
}
