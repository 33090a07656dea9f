// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/ledger"
	"github.com/tessera-ledger/tesserad/record"
	"github.com/tessera-ledger/tesserad/storage"
)

// one asset with everything the database holds about it
type assetDump struct {
	AssetId  uint64              `json:"assetId,string"`
	Asset    *record.AssetData   `json:"asset"`
	Holders  []identity.Identity `json:"holders"`
	Balances map[string]uint64   `json:"balances"`
}

type databaseDump struct {
	Assets  []assetDump            `json:"assets"`
	Escrows []*record.EscrowRecord `json:"escrows"`
}

// export the open database as indented JSON
func dumpDatabase(w io.Writer) error {

	dump := databaseDump{
		Assets:  []assetDump{},
		Escrows: []*record.EscrowRecord{},
	}

	err := storage.Pool.Assets.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 8 != len(key) {
			return fmt.Errorf("asset key: %x has invalid length", key)
		}
		assetId := binary.BigEndian.Uint64(key)

		data, err := record.Packed(value).UnpackAsset()
		if nil != err {
			return err
		}

		holders, err := ledger.Holders(assetId)
		if nil != err {
			return err
		}

		balances := make(map[string]uint64, len(holders))
		for _, holder := range holders {
			balances[holder.String()] = ledger.BalanceOf(assetId, holder)
		}

		dump.Assets = append(dump.Assets, assetDump{
			AssetId:  assetId,
			Asset:    data,
			Holders:  holders,
			Balances: balances,
		})
		return nil
	})
	if nil != err {
		return err
	}

	err = storage.Pool.Escrows.NewFetchCursor().Map(func(key []byte, value []byte) error {
		rec, err := record.Packed(value).UnpackEscrow()
		if nil != err {
			return err
		}
		dump.Escrows = append(dump.Escrows, rec)
		return nil
	})
	if nil != err {
		return err
	}

	b, err := json.MarshalIndent(dump, "", "  ")
	if nil != err {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

// run the ledger consistency scan over every registered asset
//
// checks supply conservation and that each holder list matches the
// nonzero balances exactly
func verifyLedger() error {

	return storage.Pool.Assets.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 8 != len(key) {
			return fmt.Errorf("asset key: %x has invalid length", key)
		}
		assetId := binary.BigEndian.Uint64(key)

		if err := ledger.Verify(assetId); nil != err {
			return fmt.Errorf("asset: %d verify error: %s", assetId, err)
		}
		return nil
	})
}
