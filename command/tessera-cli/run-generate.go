// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/tessera-ledger/tesserad/identity"
)

// printed key pair, the CLI never stores keys
type generatedIdentity struct {
	Identity   identity.Identity `json:"identity"`
	PrivateKey string            `json:"privateKey"`
	Testnet    bool              `json:"testnet"`
}

func runGenerate(c *cli.Context) error {

	m := configuration(c)

	id, privateKey, err := identity.Generate(m.testnet)
	if nil != err {
		return err
	}

	printJson(m.w, generatedIdentity{
		Identity:   id,
		PrivateKey: hex.EncodeToString(privateKey),
		Testnet:    m.testnet,
	})

	return nil
}
