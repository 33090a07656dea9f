// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/rpc/tokens"
)

// TransferData - parameters for a token movement
type TransferData struct {
	AssetId uint64
	Amount  uint64
	From    identity.Identity
	To      identity.Identity
	Caller  identity.Identity
}

// Transfer - move tokens between holders of one asset
func (client *Client) Transfer(transferConfig *TransferData) (*tokens.TransferReply, error) {

	args := tokens.TransferArguments{
		AssetId: transferConfig.AssetId,
		Amount:  transferConfig.Amount,
		From:    transferConfig.From,
		To:      transferConfig.To,
		Caller:  transferConfig.Caller,
	}

	client.printJson("Transfer Request", args)

	reply := &tokens.TransferReply{}
	if err := client.client.Call("Tokens.Transfer", args, reply); err != nil {
		return nil, err
	}

	client.printJson("Transfer Reply", reply)

	return reply, nil
}

// GetBalance - tokens of one asset held by one identity
func (client *Client) GetBalance(assetId uint64, holder identity.Identity) (*tokens.BalanceReply, error) {

	args := tokens.BalanceArguments{
		AssetId: assetId,
		Holder:  holder,
	}

	client.printJson("Balance Request", args)

	reply := &tokens.BalanceReply{}
	if err := client.client.Call("Tokens.Balance", args, reply); err != nil {
		return nil, err
	}

	client.printJson("Balance Reply", reply)

	return reply, nil
}

// GetHolders - every identity with a nonzero balance, oldest first
func (client *Client) GetHolders(assetId uint64) (*tokens.HoldersReply, error) {

	args := tokens.HoldersArguments{
		AssetId: assetId,
	}

	client.printJson("Holders Request", args)

	reply := &tokens.HoldersReply{}
	if err := client.client.Call("Tokens.Holders", args, reply); err != nil {
		return nil, err
	}

	client.printJson("Holders Reply", reply)

	return reply, nil
}
