// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrows

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/escrow"
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/metrics"
	"github.com/tessera-ledger/tesserad/mode"
	"github.com/tessera-ledger/tesserad/record"
	"github.com/tessera-ledger/tesserad/rpc/ratelimit"
)

// Escrow - type for the RPC
type Escrow struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
}

const (
	rateLimitEscrow = 200
	rateBurstEscrow = 100
)

func New(log *logger.L, isNormalMode func(mode.Mode) bool) *Escrow {
	return &Escrow{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitEscrow, rateBurstEscrow),
		IsNormalMode: isNormalMode,
	}
}

// ---

// CreateArguments - arguments for RPC request
type CreateArguments struct {
	AssetId   uint64            `json:"assetId,string"`
	Licensee  identity.Identity `json:"licensee"`
	FeeAmount uint64            `json:"feeAmount,string"`
	Duration  uint64            `json:"duration,string"`
	Caller    identity.Identity `json:"caller"`
}

// CreateReply - results from RPC request
type CreateReply struct {
	Escrow *record.EscrowRecord `json:"escrow"`
}

// Create - open a licensing agreement, caller must own the asset
func (e *Escrow) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	if !e.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	e.Log.Infof("Escrow.Create: %+v", arguments)

	rec, err := escrow.Create(arguments.AssetId, arguments.Licensee, arguments.FeeAmount, arguments.Duration, arguments.Caller)
	if nil != err {
		return err
	}

	metrics.Operation("escrow.create")

	reply.Escrow = rec

	return nil
}

// ---

// DepositArguments - arguments for RPC request
type DepositArguments struct {
	AssetId  uint64            `json:"assetId,string"`
	Licensee identity.Identity `json:"licensee"`
	Licensor identity.Identity `json:"licensor"`
	Caller   identity.Identity `json:"caller"`
}

// DepositReply - results from RPC request
type DepositReply struct {
	Escrow *record.EscrowRecord `json:"escrow"`
}

// Deposit - take the licence fee into custody, caller must be the
// licensee
func (e *Escrow) Deposit(arguments *DepositArguments, reply *DepositReply) error {

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	if !e.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	e.Log.Infof("Escrow.Deposit: %+v", arguments)

	rec, err := escrow.DepositFee(arguments.AssetId, arguments.Licensee, arguments.Licensor, arguments.Caller)
	if nil != err {
		return err
	}

	metrics.Operation("escrow.deposit")

	reply.Escrow = rec

	return nil
}

// ---

// ConfirmArguments - arguments for RPC request
type ConfirmArguments struct {
	AssetId  uint64            `json:"assetId,string"`
	Licensee identity.Identity `json:"licensee"`
	Caller   identity.Identity `json:"caller"`
}

// ConfirmReply - results from RPC request
type ConfirmReply struct {
	Escrow *record.EscrowRecord `json:"escrow"`
}

// Confirm - attest the licensing conditions and release the fee to
// the licensor, caller must be the licensor
func (e *Escrow) Confirm(arguments *ConfirmArguments, reply *ConfirmReply) error {

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	if !e.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	e.Log.Infof("Escrow.Confirm: %+v", arguments)

	rec, err := escrow.ConfirmConditions(arguments.AssetId, arguments.Licensee, arguments.Caller)
	if nil != err {
		return err
	}

	metrics.Operation("escrow.confirm")

	reply.Escrow = rec

	return nil
}

// ---

// RefundArguments - arguments for RPC request
type RefundArguments struct {
	AssetId  uint64            `json:"assetId,string"`
	Licensee identity.Identity `json:"licensee"`
	Caller   identity.Identity `json:"caller"`
}

// RefundReply - results from RPC request
type RefundReply struct {
	Escrow *record.EscrowRecord `json:"escrow"`
}

// Refund - return the fee of an expired unattested agreement to the
// licensee, caller must be the licensor
func (e *Escrow) Refund(arguments *RefundArguments, reply *RefundReply) error {

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	if !e.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	e.Log.Infof("Escrow.Refund: %+v", arguments)

	rec, err := escrow.RefundFee(arguments.AssetId, arguments.Licensee, arguments.Caller)
	if nil != err {
		return err
	}

	metrics.Operation("escrow.refund")

	reply.Escrow = rec

	return nil
}

// ---

// GetArguments - arguments for RPC request
type GetArguments struct {
	AssetId  uint64            `json:"assetId,string"`
	Licensee identity.Identity `json:"licensee"`
	Licensor identity.Identity `json:"licensor"`
}

// GetReply - results from RPC request
type GetReply struct {
	Escrow *record.EscrowRecord `json:"escrow"`
}

// Get - fetch one agreement record
func (e *Escrow) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	if !e.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	e.Log.Infof("Escrow.Get: %+v", arguments)

	rec, err := escrow.Get(arguments.AssetId, arguments.Licensee, arguments.Licensor)
	if nil != err {
		return err
	}

	reply.Escrow = rec

	return nil
}
