// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package settlement - movement of licensing fees in and out of custody
//
// the ledger itself never carries the settlement currency, it only
// instructs an adapter to move value on the host ledger that does.
// escrow deposits debit the licensee into a custody account and a
// later settle or refund releases the same amount out again.
//
// two adapters are provided:
//   - an in-process custodian holding host ledger balances in memory
//     with a tagged binary backup file (local and testing networks)
//   - a REST client for a real host ledger (live network)
//
// releases are idempotent: every movement carries a reference derived
// from the escrow record it settles and an adapter that has already
// processed a reference reports success without moving funds again.
// this makes a failed release safe to retry without double payment.
package settlement
