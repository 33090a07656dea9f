// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk data store
//
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. asset id     = big endian uint64 (8 bytes)
// 4. identity     = variant byte ++ 32 byte public key (33 bytes)
// 5. balance      = big endian uint64 (8 bytes)
// 6. *others*     = byte values of various length
//
// Assets:
//
//   A ++ asset id              - registered asset
//                                data: packed asset record
//   H ++ asset id              - current holders of an asset
//                                data: packed holder list record
//
// Ledger:
//
//   Q ++ asset id ++ identity  - one token balance
//                                data: balance
//
// Escrow:
//
//   E ++ asset id ++ identity  - escrow agreement keyed by asset and licensee
//                                data: packed escrow record
//
// Testing:
//
//   Z ++ key                   - testing data
package storage
