// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - event stream for committed records
//
// this module broadcasts every committed mutation on a CURVE
// encrypted PUB socket so that audit and mirroring processes can
// follow the ledger without polling
//
// each message is multipart:
//
//   frame 0: topic, one of: "asset", "transfer" or "escrow"
//   frame 1…: the packed record
//
// subscribers use standard ZeroMQ prefix subscriptions to select
// the topics they want
package publish
