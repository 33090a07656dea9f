// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/ledger"
	"github.com/tessera-ledger/tesserad/metrics"
	"github.com/tessera-ledger/tesserad/mode"
	"github.com/tessera-ledger/tesserad/record"
	"github.com/tessera-ledger/tesserad/rpc/ratelimit"
)

// Tokens - type for the RPC
type Tokens struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
}

const (
	rateLimitTokens = 200
	rateBurstTokens = 100
)

func New(log *logger.L, isNormalMode func(mode.Mode) bool) *Tokens {
	return &Tokens{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitTokens, rateBurstTokens),
		IsNormalMode: isNormalMode,
	}
}

// ---

// TransferArguments - arguments for RPC request
type TransferArguments struct {
	AssetId uint64            `json:"assetId,string"`
	Amount  uint64            `json:"amount,string"`
	From    identity.Identity `json:"from"`
	To      identity.Identity `json:"to"`
	Caller  identity.Identity `json:"caller"`
}

// TransferReply - results from RPC request
type TransferReply struct {
	Event *record.TransferEvent `json:"event"`
}

// Transfer - move tokens between holders of one asset
func (tokens *Tokens) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	if !tokens.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	tokens.Log.Infof("Tokens.Transfer: %+v", arguments)

	event, err := ledger.Transfer(arguments.AssetId, arguments.Amount, arguments.From, arguments.To, arguments.Caller)
	if nil != err {
		return err
	}

	metrics.Operation("tokens.transfer")

	reply.Event = event

	return nil
}

// ---

// BalanceArguments - arguments for RPC request
type BalanceArguments struct {
	AssetId uint64            `json:"assetId,string"`
	Holder  identity.Identity `json:"holder"`
}

// BalanceReply - results from RPC request
type BalanceReply struct {
	AssetId uint64            `json:"assetId,string"`
	Holder  identity.Identity `json:"holder"`
	Balance uint64            `json:"balance,string"`
}

// Balance - tokens of one asset held by one identity
//
// zero for an unknown asset or a non-holder
func (tokens *Tokens) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	if !tokens.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	tokens.Log.Infof("Tokens.Balance: %+v", arguments)

	reply.AssetId = arguments.AssetId
	reply.Holder = arguments.Holder
	reply.Balance = ledger.BalanceOf(arguments.AssetId, arguments.Holder)

	return nil
}

// ---

// HoldersArguments - arguments for RPC request
type HoldersArguments struct {
	AssetId uint64 `json:"assetId,string"`
}

// HoldersReply - results from RPC request
type HoldersReply struct {
	AssetId uint64              `json:"assetId,string"`
	Holders []identity.Identity `json:"holders"`
}

// Holders - every identity with a nonzero balance, oldest first
func (tokens *Tokens) Holders(arguments *HoldersArguments, reply *HoldersReply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	if !tokens.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	tokens.Log.Infof("Tokens.Holders: %+v", arguments)

	holders, err := ledger.Holders(arguments.AssetId)
	if nil != err {
		return err
	}

	reply.AssetId = arguments.AssetId
	reply.Holders = holders

	return nil
}
