// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/asset"
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/metrics"
	"github.com/tessera-ledger/tesserad/mode"
	"github.com/tessera-ledger/tesserad/record"
	"github.com/tessera-ledger/tesserad/rpc/ratelimit"
)

// Assets - type for the RPC
type Assets struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
}

const (
	rateLimitAssets = 200
	rateBurstAssets = 100
)

func New(log *logger.L, isNormalMode func(mode.Mode) bool) *Assets {
	return &Assets{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitAssets, rateBurstAssets),
		IsNormalMode: isNormalMode,
	}
}

// ---

// RegisterArguments - arguments for RPC request
type RegisterArguments struct {
	AssetId          uint64            `json:"assetId,string"`
	InitialValuation uint64            `json:"initialValuation,string"`
	TotalTokens      uint64            `json:"totalTokens,string"`
	Owner            identity.Identity `json:"owner"`
}

// RegisterReply - results from RPC request
type RegisterReply struct {
	AssetId uint64            `json:"assetId,string"`
	Asset   *record.AssetData `json:"asset"`
}

// Register - create an asset and mint its supply to the owner
func (assets *Assets) Register(arguments *RegisterArguments, reply *RegisterReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	assets.Log.Infof("Assets.Register: %+v", arguments)

	rec, err := asset.Register(arguments.AssetId, arguments.InitialValuation, arguments.TotalTokens, arguments.Owner)
	if nil != err {
		return err
	}

	metrics.Operation("assets.register")

	reply.AssetId = arguments.AssetId
	reply.Asset = rec

	return nil
}

// ---

// UpdateValuationArguments - arguments for RPC request
type UpdateValuationArguments struct {
	AssetId      uint64            `json:"assetId,string"`
	NewValuation uint64            `json:"newValuation,string"`
	Caller       identity.Identity `json:"caller"`
}

// UpdateValuationReply - results from RPC request
type UpdateValuationReply struct {
	AssetId uint64            `json:"assetId,string"`
	Asset   *record.AssetData `json:"asset"`
}

// UpdateValuation - set the current valuation of an asset
//
// allowed for the asset owner and for the administrator
func (assets *Assets) UpdateValuation(arguments *UpdateValuationArguments, reply *UpdateValuationReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	assets.Log.Infof("Assets.UpdateValuation: %+v", arguments)

	rec, err := asset.UpdateValuation(arguments.AssetId, arguments.NewValuation, arguments.Caller)
	if nil != err {
		return err
	}

	metrics.Operation("assets.update_valuation")

	reply.AssetId = arguments.AssetId
	reply.Asset = rec

	return nil
}

// ---

// GetArguments - arguments for RPC request
type GetArguments struct {
	AssetId uint64 `json:"assetId,string"`
}

// GetReply - results from RPC request
type GetReply struct {
	AssetId uint64            `json:"assetId,string"`
	Asset   *record.AssetData `json:"asset"`
}

// Get - fetch the record of one asset
func (assets *Assets) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	assets.Log.Infof("Assets.Get: %+v", arguments)

	rec, err := asset.Get(arguments.AssetId)
	if nil != err {
		return err
	}

	reply.AssetId = arguments.AssetId
	reply.Asset = rec

	return nil
}
