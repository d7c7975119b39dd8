// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/clawswapd/command/clawswap-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "clawswap-cli"
	app.Usage = "marketplace and barter client for clawswapd"
	app.Version = version
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
			Value: "testing",
			Usage: " connect to clawswapd `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:   "password, p",
			Value:  "",
			Usage:  " identity `PASSWORD`",
			EnvVar: "CLAWSWAP_PASSWORD",
		},
	}

	countFlags := []cli.Flag{
		cli.Uint64Flag{
			Name:  "start, s",
			Value: 0,
			Usage: " first `ID` to list",
		},
		cli.IntFlag{
			Name:  "count, c",
			Value: 20,
			Usage: " maximum `COUNT` of records",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "initialise clawswap-cli configuration with a first identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*clawswapd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "private-key, k",
					Value: "",
					Usage: " import an existing base58 private `KEY`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "generate",
			Usage:     "add a new identity to the configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "private-key, k",
					Value: "",
					Usage: " import an existing base58 private `KEY`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:   "identities",
			Usage:  "list identities in the configuration",
			Action: runIdentities,
		},
		{
			Name:   "info",
			Usage:  "display clawswapd status",
			Action: runInfo,
		},
		{
			Name:  "balance",
			Usage: "display the balance of an account",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " identity name or base58 `ACCOUNT` [default identity]",
				},
			},
			Action: runBalance,
		},
		{
			Name:  "credit",
			Usage: "fund the identity on a test chain",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*`AMOUNT` to add",
				},
			},
			Action: runCredit,
		},
		{
			Name:  "registry",
			Usage: "global registry operations",
			Subcommands: []cli.Command{
				{
					Name:   "init",
					Usage:  "create the registry with the identity as arbitration authority",
					Action: runRegistryInit,
				},
				{
					Name:   "info",
					Usage:  "display the authority and id counters",
					Action: runRegistryInfo,
				},
			},
		},
		{
			Name:  "need",
			Usage: "need operations",
			Subcommands: []cli.Command{
				{
					Name:      "create",
					Usage:     "post a need",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "title, t", Usage: "*`TITLE` of the work"},
						cli.StringFlag{Name: "description, d", Usage: " `TEXT` describing the work"},
						cli.StringFlag{Name: "category, c", Usage: " `CATEGORY` of the work"},
						cli.Uint64Flag{Name: "budget, b", Usage: " informational `AMOUNT`"},
						cli.Int64Flag{Name: "deadline", Usage: " unix `SECONDS`, 0 for none"},
					},
					Action: runNeedCreate,
				},
				{
					Name:      "cancel",
					Usage:     "withdraw an open need",
					ArgsUsage: "NEED-ID",
					Action:    runNeedCancel,
				},
				{
					Name:      "get",
					Usage:     "display one need",
					ArgsUsage: "NEED-ID",
					Action:    runNeedGet,
				},
				{
					Name:  "list",
					Usage: "list needs",
					Flags: append([]cli.Flag{
						cli.StringFlag{Name: "creator", Usage: " identity name or base58 `ACCOUNT`"},
						cli.StringFlag{Name: "status", Usage: " only needs with `STATUS`"},
					}, countFlags...),
					Action: runNeedList,
				},
			},
		},
		{
			Name:  "offer",
			Usage: "offer operations",
			Subcommands: []cli.Command{
				{
					Name:      "create",
					Usage:     "respond to a need",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.Uint64Flag{Name: "need, n", Usage: "*`NEED-ID` to respond to"},
						cli.Uint64Flag{Name: "price", Usage: "*`AMOUNT` asked"},
						cli.StringFlag{Name: "message, m", Usage: " `TEXT` for the client"},
					},
					Action: runOfferCreate,
				},
				{
					Name:      "cancel",
					Usage:     "withdraw a pending offer",
					ArgsUsage: "OFFER-ID",
					Action:    runOfferCancel,
				},
				{
					Name:      "get",
					Usage:     "display one offer",
					ArgsUsage: "OFFER-ID",
					Action:    runOfferGet,
				},
				{
					Name:  "list",
					Usage: "list offers for a need or by a provider",
					Flags: append([]cli.Flag{
						cli.Uint64Flag{Name: "need, n", Usage: " `NEED-ID`"},
						cli.StringFlag{Name: "provider", Usage: " identity name or base58 `ACCOUNT`"},
					}, countFlags...),
					Action: runOfferList,
				},
			},
		},
		{
			Name:  "deal",
			Usage: "deal operations",
			Subcommands: []cli.Command{
				{
					Name:      "accept",
					Usage:     "accept an offer, moving its price to escrow",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.Uint64Flag{Name: "need, n", Usage: "*`NEED-ID`"},
						cli.Uint64Flag{Name: "offer, o", Usage: "*`OFFER-ID`"},
					},
					Action: runDealAccept,
				},
				{
					Name:      "deliver",
					Usage:     "submit the delivery of a deal",
					ArgsUsage: "DEAL-ID",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "hash", Usage: " `DIGEST` of the delivered work"},
						cli.StringFlag{Name: "content, c", Usage: " delivery `TEXT`"},
					},
					Action: runDealDeliver,
				},
				{
					Name:      "confirm",
					Usage:     "confirm delivery, releasing the escrow to the provider",
					ArgsUsage: "DEAL-ID",
					Action:    runDealConfirm,
				},
				{
					Name:      "dispute",
					Usage:     "raise a dispute",
					ArgsUsage: "DEAL-ID",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "reason, r", Usage: " `TEXT`"},
					},
					Action: runDealDispute,
				},
				{
					Name:      "resolve",
					Usage:     "settle a dispute as arbitration authority",
					ArgsUsage: "DEAL-ID",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "resolution, r", Usage: "*`RESOLUTION` [RefundClient|PayProvider]"},
					},
					Action: runDealResolve,
				},
				{
					Name:      "get",
					Usage:     "display one deal and its escrow",
					ArgsUsage: "DEAL-ID",
					Action:    runDealGet,
				},
				{
					Name:  "list",
					Usage: "list deals of an account",
					Flags: append([]cli.Flag{
						cli.StringFlag{Name: "party", Usage: " identity name or base58 `ACCOUNT` [default identity]"},
					}, countFlags...),
					Action: runDealList,
				},
			},
		},
		{
			Name:  "barter",
			Usage: "barter operations",
			Subcommands: []cli.Command{
				{
					Name:      "create",
					Usage:     "propose an exchange",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "offer, o", Usage: "*what is given `TEXT`"},
						cli.StringFlag{Name: "want, w", Usage: "*what is wanted `TEXT`"},
						cli.StringFlag{Name: "target, t", Usage: " only this identity name or base58 `ACCOUNT` may accept"},
					},
					Action: runBarterCreate,
				},
				{
					Name:      "accept",
					Usage:     "become the counterpart of an open barter",
					ArgsUsage: "BARTER-ID",
					Action:    runBarterAccept,
				},
				{
					Name:      "deliver",
					Usage:     "deliver the identity's side",
					ArgsUsage: "BARTER-ID",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "content, c", Usage: " delivery `TEXT`"},
						cli.StringFlag{Name: "hash", Usage: " `DIGEST` of the delivered item"},
					},
					Action: runBarterDeliver,
				},
				{
					Name:      "confirm",
					Usage:     "confirm the other side's delivery",
					ArgsUsage: "BARTER-ID",
					Action:    runBarterConfirm,
				},
				{
					Name:      "cancel",
					Usage:     "withdraw an open barter",
					ArgsUsage: "BARTER-ID",
					Action:    runBarterCancel,
				},
				{
					Name:      "dispute",
					Usage:     "end an exchange in dispute",
					ArgsUsage: "BARTER-ID",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "reason, r", Usage: " `TEXT`"},
					},
					Action: runBarterDispute,
				},
				{
					Name:      "get",
					Usage:     "display one barter",
					ArgsUsage: "BARTER-ID",
					Action:    runBarterGet,
				},
				{
					Name:  "list",
					Usage: "list barters of an account",
					Flags: append([]cli.Flag{
						cli.StringFlag{Name: "participant", Usage: " identity name or base58 `ACCOUNT` [default identity]"},
					}, countFlags...),
					Action: runBarterList,
				},
			},
		},
		{
			Name:   "stats",
			Usage:  "display marketplace totals",
			Action: runStats,
		},
		{
			Name:  "profile",
			Usage: "display the activity of an account",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " identity name or base58 `ACCOUNT` [default identity]",
				},
			},
			Action: runProfile,
		},
		{
			Name:  "events",
			Usage: "display the event log",
			Flags: []cli.Flag{
				cli.Uint64Flag{Name: "start, s", Usage: " first `SEQUENCE`"},
				cli.IntFlag{Name: "count, c", Value: 20, Usage: " maximum `COUNT` of events"},
			},
			Action: runEvents,
		},
		{
			Name:      "watch",
			Usage:     "print events from the publisher as they occur",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "publisher, P", Usage: "*publisher `HOST:PORT`"},
				cli.StringFlag{Name: "server-key", Usage: " publisher public key `HEX` [from info]"},
				cli.IntFlag{Name: "limit, l", Usage: " stop after `COUNT` events, 0 for no limit"},
			},
			Action: runWatch,
		},
		{
			Name:  "version",
			Usage: "display clawswap-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		network, testnet, err := checkNetwork(c.GlobalString("network"))
		if nil != err {
			return err
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			home, err := os.UserHomeDir()
			if nil != err {
				return err
			}
			p = path.Join(home, ".config")
		}

		file := path.Join(p, app.Name, network+"-"+app.Name+".json")
		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := os.Stat(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}
			c.App.Metadata["config"] = &metadata{
				file:    file,
				testnet: testnet,
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		config, err := configuration.Load(file)
		if nil != err {
			return err
		}
		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			testnet: config.TestNet,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || !m.save {
			return nil
		}
		if m.verbose {
			fmt.Fprintf(m.e, "updating config file: %s\n", m.file)
		}
		return configuration.Save(m.file, m.config)
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
