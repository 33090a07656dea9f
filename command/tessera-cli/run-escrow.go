// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/tessera-ledger/tesserad/command/tessera-cli/rpccalls"
)

func runEscrowCreate(c *cli.Context) error {

	m := configuration(c)

	assetId, err := checkUint64(c, "asset")
	if nil != err {
		return err
	}
	fee, err := checkUint64(c, "fee")
	if nil != err {
		return err
	}
	duration, err := checkUint64(c, "duration")
	if nil != err {
		return err
	}
	licensee, err := checkIdentity(c, "licensee")
	if nil != err {
		return err
	}
	caller, err := checkIdentity(c, "caller")
	if nil != err {
		return err
	}

	client, err := dialClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	createConfig := &rpccalls.EscrowCreateData{
		AssetId:   assetId,
		Licensee:  licensee,
		FeeAmount: fee,
		Duration:  duration,
		Caller:    caller,
	}

	response, err := client.CreateEscrow(createConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runEscrowDeposit(c *cli.Context) error {

	m := configuration(c)

	assetId, err := checkUint64(c, "asset")
	if nil != err {
		return err
	}
	licensee, err := checkIdentity(c, "licensee")
	if nil != err {
		return err
	}
	licensor, err := checkIdentity(c, "licensor")
	if nil != err {
		return err
	}
	caller, err := checkIdentity(c, "caller")
	if nil != err {
		return err
	}

	client, err := dialClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.DepositFee(assetId, licensee, licensor, caller)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runEscrowConfirm(c *cli.Context) error {

	m := configuration(c)

	assetId, err := checkUint64(c, "asset")
	if nil != err {
		return err
	}
	licensee, err := checkIdentity(c, "licensee")
	if nil != err {
		return err
	}
	caller, err := checkIdentity(c, "caller")
	if nil != err {
		return err
	}

	client, err := dialClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ConfirmConditions(assetId, licensee, caller)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runEscrowRefund(c *cli.Context) error {

	m := configuration(c)

	assetId, err := checkUint64(c, "asset")
	if nil != err {
		return err
	}
	licensee, err := checkIdentity(c, "licensee")
	if nil != err {
		return err
	}
	caller, err := checkIdentity(c, "caller")
	if nil != err {
		return err
	}

	client, err := dialClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RefundFee(assetId, licensee, caller)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runEscrowGet(c *cli.Context) error {

	m := configuration(c)

	assetId, err := checkUint64(c, "asset")
	if nil != err {
		return err
	}
	licensee, err := checkIdentity(c, "licensee")
	if nil != err {
		return err
	}
	licensor, err := checkIdentity(c, "licensor")
	if nil != err {
		return err
	}

	client, err := dialClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetEscrow(assetId, licensee, licensor)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
