// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/counter"
	"github.com/tessera-ledger/tesserad/mode"
	"github.com/tessera-ledger/tesserad/rpc/assets"
	"github.com/tessera-ledger/tesserad/rpc/escrows"
	"github.com/tessera-ledger/tesserad/rpc/node"
	"github.com/tessera-ledger/tesserad/rpc/tokens"
)

// Create - register every RPC service on one server
func Create(log *logger.L, version string, rpcCount *counter.Counter, custody node.CustodyReader, adjust node.AdjustFunc) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(assets.New(log, mode.Is))
	_ = server.Register(tokens.New(log, mode.Is))
	_ = server.Register(escrows.New(log, mode.Is))
	_ = server.Register(node.New(log, start, version, rpcCount, custody, adjust))

	return server
}
