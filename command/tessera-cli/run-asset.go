// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/tessera-ledger/tesserad/command/tessera-cli/rpccalls"
)

func runRegister(c *cli.Context) error {

	m := configuration(c)

	assetId, err := checkUint64(c, "asset")
	if nil != err {
		return err
	}
	valuation, err := checkUint64(c, "valuation")
	if nil != err {
		return err
	}
	tokens, err := checkUint64(c, "tokens")
	if nil != err {
		return err
	}
	owner, err := checkIdentity(c, "owner")
	if nil != err {
		return err
	}

	client, err := dialClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	registerConfig := &rpccalls.RegisterData{
		AssetId:          assetId,
		InitialValuation: valuation,
		TotalTokens:      tokens,
		Owner:            owner,
	}

	response, err := client.Register(registerConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runUpdateValuation(c *cli.Context) error {

	m := configuration(c)

	assetId, err := checkUint64(c, "asset")
	if nil != err {
		return err
	}
	valuation, err := checkUint64(c, "valuation")
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

	valuationConfig := &rpccalls.UpdateValuationData{
		AssetId:      assetId,
		NewValuation: valuation,
		Caller:       caller,
	}

	response, err := client.UpdateValuation(valuationConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runAsset(c *cli.Context) error {

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

	response, err := client.GetAsset(assetId)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
