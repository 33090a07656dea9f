// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/counter"
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/mode"
	"github.com/tessera-ledger/tesserad/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// CustodyInfo - totals reported by a local custodian
type CustodyInfo struct {
	Held     uint64 `json:"held,string"`
	Total    uint64 `json:"total,string"`
	Accounts int    `json:"accounts"`
	Releases int    `json:"releases"`
}

// CustodyReader - fetch custodian totals, nil result when the daemon
// settles through a remote host ledger
type CustodyReader func() *CustodyInfo

// AdjustFunc - advance a stepped clock, returns the new tick
type AdjustFunc func(steps uint64) uint64

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Custody CustodyReader
	Adjust  AdjustFunc
	counter *counter.Counter
}

func New(log *logger.L, start time.Time, version string, rpcCount *counter.Counter, custody CustodyReader, adjust AdjustFunc) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Custody: custody,
		Adjust:  adjust,
		counter: rpcCount,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Network string       `json:"network"`
	Mode    string       `json:"mode"`
	RPCs    uint64       `json:"rpcs"`
	Version string       `json:"version"`
	Uptime  string       `json:"uptime"`
	Custody *CustodyInfo `json:"custody,omitempty"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Network = mode.NetworkName()
	reply.Mode = mode.String()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	if nil != node.Custody {
		reply.Custody = node.Custody()
	}

	return nil
}

// ---

// AdvanceArguments - arguments for RPC request
type AdvanceArguments struct {
	Steps uint64 `json:"steps,string"`
}

// AdvanceReply - results from RPC request
type AdvanceReply struct {
	Tick uint64 `json:"tick,string"`
}

// AdvanceClock - step the engine clock forward
//
// only wired up when a stepped clock is configured, which the daemon
// restricts to the local network
func (node *Node) AdvanceClock(arguments *AdvanceArguments, reply *AdvanceReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Adjust {
		return fault.ClockNotAdjustable
	}
	if 0 == arguments.Steps {
		return fault.InvalidCount
	}

	node.Log.Infof("Node.AdvanceClock: %+v", arguments)

	reply.Tick = node.Adjust(arguments.Steps)

	return nil
}
