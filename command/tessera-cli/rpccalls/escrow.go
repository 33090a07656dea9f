// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/rpc/escrows"
)

// EscrowCreateData - parameters for a new licensing agreement
type EscrowCreateData struct {
	AssetId   uint64
	Licensee  identity.Identity
	FeeAmount uint64
	Duration  uint64
	Caller    identity.Identity
}

// CreateEscrow - open a licensing escrow, caller must be the asset owner
func (client *Client) CreateEscrow(createConfig *EscrowCreateData) (*escrows.CreateReply, error) {

	args := escrows.CreateArguments{
		AssetId:   createConfig.AssetId,
		Licensee:  createConfig.Licensee,
		FeeAmount: createConfig.FeeAmount,
		Duration:  createConfig.Duration,
		Caller:    createConfig.Caller,
	}

	client.printJson("Escrow Create Request", args)

	reply := &escrows.CreateReply{}
	if err := client.client.Call("Escrow.Create", args, reply); err != nil {
		return nil, err
	}

	client.printJson("Escrow Create Reply", reply)

	return reply, nil
}

// DepositFee - pay the licensing fee into custody, caller must be the licensee
func (client *Client) DepositFee(assetId uint64, licensee identity.Identity, licensor identity.Identity, caller identity.Identity) (*escrows.DepositReply, error) {

	args := escrows.DepositArguments{
		AssetId:  assetId,
		Licensee: licensee,
		Licensor: licensor,
		Caller:   caller,
	}

	client.printJson("Escrow Deposit Request", args)

	reply := &escrows.DepositReply{}
	if err := client.client.Call("Escrow.Deposit", args, reply); err != nil {
		return nil, err
	}

	client.printJson("Escrow Deposit Reply", reply)

	return reply, nil
}

// ConfirmConditions - attest the licensing conditions and settle
func (client *Client) ConfirmConditions(assetId uint64, licensee identity.Identity, caller identity.Identity) (*escrows.ConfirmReply, error) {

	args := escrows.ConfirmArguments{
		AssetId:  assetId,
		Licensee: licensee,
		Caller:   caller,
	}

	client.printJson("Escrow Confirm Request", args)

	reply := &escrows.ConfirmReply{}
	if err := client.client.Call("Escrow.Confirm", args, reply); err != nil {
		return nil, err
	}

	client.printJson("Escrow Confirm Reply", reply)

	return reply, nil
}

// RefundFee - return an expired unattested deposit to the licensee
func (client *Client) RefundFee(assetId uint64, licensee identity.Identity, caller identity.Identity) (*escrows.RefundReply, error) {

	args := escrows.RefundArguments{
		AssetId:  assetId,
		Licensee: licensee,
		Caller:   caller,
	}

	client.printJson("Escrow Refund Request", args)

	reply := &escrows.RefundReply{}
	if err := client.client.Call("Escrow.Refund", args, reply); err != nil {
		return nil, err
	}

	client.printJson("Escrow Refund Reply", reply)

	return reply, nil
}

// GetEscrow - fetch one escrow record
func (client *Client) GetEscrow(assetId uint64, licensee identity.Identity, licensor identity.Identity) (*escrows.GetReply, error) {

	args := escrows.GetArguments{
		AssetId:  assetId,
		Licensee: licensee,
		Licensor: licensor,
	}

	client.printJson("Escrow Get Request", args)

	reply := &escrows.GetReply{}
	if err := client.client.Call("Escrow.Get", args, reply); err != nil {
		return nil, err
	}

	client.printJson("Escrow Get Reply", reply)

	return reply, nil
}
