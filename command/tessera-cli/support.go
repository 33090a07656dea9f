// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/tessera-ledger/tesserad/command/tessera-cli/rpccalls"
	"github.com/tessera-ledger/tesserad/identity"
)

// fetch the metadata assembled by app.Before
func configuration(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

// open the RPC connection named by the global connect flag
func dialClient(m *metadata) (*rpccalls.Client, error) {
	if "" == m.connect {
		return nil, fmt.Errorf("missing connect HOST:PORT")
	}
	return rpccalls.NewClient(m.testnet, m.connect, m.verbose, m.e)
}

// decode a base58 identity flag and check it matches the network
func checkIdentity(c *cli.Context, flag string) (identity.Identity, error) {

	s := c.String(flag)
	if "" == s {
		return identity.Identity{}, fmt.Errorf("missing %s identity", flag)
	}

	m := configuration(c)

	id, err := identity.FromBase58(s)
	if nil != err {
		return identity.Identity{}, fmt.Errorf("%s identity: %q error: %s", flag, s, err)
	}
	if err := id.ValidForNetwork(m.testnet); nil != err {
		return identity.Identity{}, fmt.Errorf("%s identity: %q error: %s", flag, s, err)
	}
	return id, nil
}

// a required positive number flag
func checkUint64(c *cli.Context, flag string) (uint64, error) {
	n := c.Uint64(flag)
	if 0 == n {
		return 0, fmt.Errorf("missing or zero %s", flag)
	}
	return n, nil
}

func printJson(handle io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(handle, "unable to marshal: %v\n", message)
		return
	}
	fmt.Fprintf(handle, "%s\n", b)
}
