// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runInfo(c *cli.Context) error {

	m := configuration(c)

	client, err := dialClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetNodeInfo()
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runAdvanceClock(c *cli.Context) error {

	m := configuration(c)

	steps, err := checkUint64(c, "steps")
	if nil != err {
		return err
	}

	client, err := dialClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AdvanceClock(steps)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
