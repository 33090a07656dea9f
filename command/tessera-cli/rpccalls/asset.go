// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/rpc/assets"
)

// RegisterData - parameters for an asset registration
type RegisterData struct {
	AssetId          uint64
	InitialValuation uint64
	TotalTokens      uint64
	Owner            identity.Identity
}

// Register - create an asset and mint its supply to the owner
func (client *Client) Register(registerConfig *RegisterData) (*assets.RegisterReply, error) {

	args := assets.RegisterArguments{
		AssetId:          registerConfig.AssetId,
		InitialValuation: registerConfig.InitialValuation,
		TotalTokens:      registerConfig.TotalTokens,
		Owner:            registerConfig.Owner,
	}

	client.printJson("Register Request", args)

	reply := &assets.RegisterReply{}
	if err := client.client.Call("Assets.Register", args, reply); err != nil {
		return nil, err
	}

	client.printJson("Register Reply", reply)

	return reply, nil
}

// UpdateValuationData - parameters for a valuation change
type UpdateValuationData struct {
	AssetId      uint64
	NewValuation uint64
	Caller       identity.Identity
}

// UpdateValuation - set the current valuation of an asset
func (client *Client) UpdateValuation(valuationConfig *UpdateValuationData) (*assets.UpdateValuationReply, error) {

	args := assets.UpdateValuationArguments{
		AssetId:      valuationConfig.AssetId,
		NewValuation: valuationConfig.NewValuation,
		Caller:       valuationConfig.Caller,
	}

	client.printJson("UpdateValuation Request", args)

	reply := &assets.UpdateValuationReply{}
	if err := client.client.Call("Assets.UpdateValuation", args, reply); err != nil {
		return nil, err
	}

	client.printJson("UpdateValuation Reply", reply)

	return reply, nil
}

// GetAsset - fetch the record of one asset
func (client *Client) GetAsset(assetId uint64) (*assets.GetReply, error) {

	args := assets.GetArguments{
		AssetId: assetId,
	}

	client.printJson("Asset Get Request", args)

	reply := &assets.GetReply{}
	if err := client.client.Call("Assets.Get", args, reply); err != nil {
		return nil, err
	}

	client.printJson("Asset Get Reply", reply)

	return reply, nil
}
