// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/command/clawswap-cli/configuration"
)

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	connect, err := checkConnect(c.String("connect"))
	if nil != err {
		return err
	}

	description := c.String("description")

	key, err := makeKey(c.String("private-key"), m.testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "testnet: %t\n", m.testnet)
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// create the folder hierarchy for configuration if not existing
	configDir := path.Dir(m.file)
	d, err := checkFileExists(configDir)
	if nil != err {
		if err := os.MkdirAll(configDir, 0o750); nil != err {
			return err
		}
	} else if !d {
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	config := configuration.New(connect, m.testnet)

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptNewPassword()
		if nil != err {
			return err
		}
	}

	err = config.AddIdentity(name, description, key, password)
	if nil != err {
		return err
	}

	m.config = config
	m.save = true

	return printJson(m.w, identityReply{
		Name:    name,
		Account: key.Account(),
	})
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	key, err := makeKey(c.String("private-key"), m.testnet)
	if nil != err {
		return err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptNewPassword()
		if nil != err {
			return err
		}
	}

	err = m.config.AddIdentity(name, c.String("description"), key, password)
	if nil != err {
		return err
	}
	m.save = true

	return printJson(m.w, identityReply{
		Name:    name,
		Account: key.Account(),
	})
}

func runIdentities(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	type entry struct {
		Name        string `json:"name"`
		Default     bool   `json:"default"`
		Description string `json:"description"`
		Account     string `json:"account"`
	}

	list := make([]entry, 0, len(m.config.Identities))
	for _, name := range m.config.Names() {
		id := m.config.Identities[name]
		list = append(list, entry{
			Name:        name,
			Default:     name == m.config.DefaultIdentity,
			Description: id.Description,
			Account:     id.Account,
		})
	}
	return printJson(m.w, list)
}

type identityReply struct {
	Name    string           `json:"name"`
	Account *account.Account `json:"account"`
}

// import a base58 private key or generate a fresh one
func makeKey(privateKey string, testnet bool) (*account.PrivateKey, error) {
	if "" == privateKey {
		return account.NewPrivateKey(testnet)
	}
	return account.PrivateKeyFromBase58(privateKey)
}
