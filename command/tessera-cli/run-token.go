// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/tessera-ledger/tesserad/command/tessera-cli/rpccalls"
)

func runTransfer(c *cli.Context) error {

	m := configuration(c)

	assetId, err := checkUint64(c, "asset")
	if nil != err {
		return err
	}
	amount, err := checkUint64(c, "amount")
	if nil != err {
		return err
	}
	from, err := checkIdentity(c, "from")
	if nil != err {
		return err
	}
	to, err := checkIdentity(c, "to")
	if nil != err {
		return err
	}

	client, err := dialClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	// only the sender may move its own tokens
	transferConfig := &rpccalls.TransferData{
		AssetId: assetId,
		Amount:  amount,
		From:    from,
		To:      to,
		Caller:  from,
	}

	response, err := client.Transfer(transferConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runBalance(c *cli.Context) error {

	m := configuration(c)

	assetId, err := checkUint64(c, "asset")
	if nil != err {
		return err
	}
	holder, err := checkIdentity(c, "holder")
	if nil != err {
		return err
	}

	client, err := dialClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetBalance(assetId, holder)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runHolders(c *cli.Context) error {

	m := configuration(c)

	assetId, err := checkUint64(c, "asset")
	if nil != err {
		return err
	}

	client, err := dialClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetHolders(assetId)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
