// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/tessera-ledger/tesserad/network"
	"github.com/tessera-ledger/tesserad/version"
)

type metadata struct {
	connect string
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

func main() {

	app := cli.NewApp()
	app.Name = "tessera-cli"
	app.Usage = "connect to a tesserad and operate on assets, tokens and escrows"
	app.Version = version.Version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: network.Live,
			Usage: " connect to tessera `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "",
			Usage: "*tesserad host/IP and port, `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:    "info",
			Aliases: []string{"status"},
			Usage:   "display node status",
			Action:  runInfo,
		},
		{
			Name:      "register",
			Usage:     "register an asset and mint its tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "valuation, V",
					Usage: "*initial valuation `AMOUNT`",
				},
				cli.Uint64Flag{
					Name:  "tokens, t",
					Usage: "*total token supply `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Usage: "*owner `IDENTITY`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "update-valuation",
			Usage:     "set the current valuation of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "valuation, V",
					Usage: "*new valuation `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "caller, u",
					Usage: "*caller `IDENTITY` (owner or administrator)",
				},
			},
			Action: runUpdateValuation,
		},
		{
			Name:      "asset",
			Usage:     "display one asset record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset `NUMBER`",
				},
			},
			Action: runAsset,
		},
		{
			Name:      "balance",
			Usage:     "display the token balance of one holder",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset `NUMBER`",
				},
				cli.StringFlag{
					Name:  "holder, o",
					Usage: "*holder `IDENTITY`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "holders",
			Usage:     "display every holder of one asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset `NUMBER`",
				},
			},
			Action: runHolders,
		},
		{
			Name:      "transfer",
			Usage:     "move tokens to another holder",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "amount, m",
					Usage: "*token `AMOUNT` to move",
				},
				cli.StringFlag{
					Name:  "from, f",
					Usage: "*sending `IDENTITY`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Usage: "*receiving `IDENTITY`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "escrow-create",
			Usage:     "open a licensing escrow for an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset `NUMBER`",
				},
				cli.StringFlag{
					Name:  "licensee, l",
					Usage: "*licensee `IDENTITY`",
				},
				cli.Uint64Flag{
					Name:  "fee, f",
					Usage: "*licensing fee `AMOUNT`",
				},
				cli.Uint64Flag{
					Name:  "duration, d",
					Usage: "*ticks until the agreement expires `NUMBER`",
				},
				cli.StringFlag{
					Name:  "caller, u",
					Usage: "*caller `IDENTITY` (asset owner)",
				},
			},
			Action: runEscrowCreate,
		},
		{
			Name:      "escrow-deposit",
			Usage:     "pay the licensing fee into custody",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset `NUMBER`",
				},
				cli.StringFlag{
					Name:  "licensee, l",
					Usage: "*licensee `IDENTITY`",
				},
				cli.StringFlag{
					Name:  "licensor, r",
					Usage: "*licensor `IDENTITY`",
				},
				cli.StringFlag{
					Name:  "caller, u",
					Usage: "*caller `IDENTITY` (licensee)",
				},
			},
			Action: runEscrowDeposit,
		},
		{
			Name:      "escrow-confirm",
			Usage:     "attest the licensing conditions and settle",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset `NUMBER`",
				},
				cli.StringFlag{
					Name:  "licensee, l",
					Usage: "*licensee `IDENTITY`",
				},
				cli.StringFlag{
					Name:  "caller, u",
					Usage: "*caller `IDENTITY` (licensor)",
				},
			},
			Action: runEscrowConfirm,
		},
		{
			Name:      "escrow-refund",
			Usage:     "return an expired deposit to the licensee",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset `NUMBER`",
				},
				cli.StringFlag{
					Name:  "licensee, l",
					Usage: "*licensee `IDENTITY`",
				},
				cli.StringFlag{
					Name:  "caller, u",
					Usage: "*caller `IDENTITY` (licensor)",
				},
			},
			Action: runEscrowRefund,
		},
		{
			Name:      "escrow-get",
			Usage:     "display one escrow record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset `NUMBER`",
				},
				cli.StringFlag{
					Name:  "licensee, l",
					Usage: "*licensee `IDENTITY`",
				},
				cli.StringFlag{
					Name:  "licensor, r",
					Usage: "*licensor `IDENTITY`",
				},
			},
			Action: runEscrowGet,
		},
		{
			Name:      "advance-clock",
			Usage:     "step a local network node's clock forward",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "steps, s",
					Value: 1,
					Usage: " ticks to advance `NUMBER`",
				},
			},
			Action: runAdvanceClock,
		},
		{
			Name:   "generate-identity",
			Usage:  "generate an identity key pair, printed only, never stored",
			Action: runGenerate,
		},
		{
			Name:  "version",
			Usage: "display tessera-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version.Version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		networkName := c.GlobalString("network")
		if !network.Valid(networkName) {
			return fmt.Errorf("network: %q can only be live/testing/local", networkName)
		}

		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			testnet: network.IsTesting(networkName),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
