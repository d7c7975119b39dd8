// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/command/clawswap-cli/rpccalls"
	"github.com/bitmark-inc/clawswapd/fault"
)

// errors local to the client
var (
	ErrInvalidNetwork  = fault.InvalidError("network must be one of: live, testing, local")
	ErrMissingConnect  = fault.InvalidError("connect is required")
	ErrMissingId       = fault.InvalidError("an id argument is required")
	ErrMissingName     = fault.InvalidError("identity name is required")
	ErrMissingOption   = fault.InvalidError("required option is missing")
	ErrInvalidPassword = fault.InvalidError("password must be at least 8 characters")
	ErrPasswordMatch   = fault.InvalidError("passwords do not match")
)

// live is the only network with real balances
func checkNetwork(network string) (string, bool, error) {
	switch strings.ToLower(network) {
	case "live", "clawswap":
		return "live", false, nil
	case "testing", "test":
		return "testing", true, nil
	case "local":
		return "local", true, nil
	default:
		return "", false, ErrInvalidNetwork
	}
}

func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrMissingName
	}
	return name, nil
}

func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", ErrMissingConnect
	}
	return connect, nil
}

// first positional argument as a record id
func checkId(c *cli.Context) (uint64, error) {
	s := c.Args().First()
	if "" == s {
		return 0, ErrMissingId
	}
	return strconv.ParseUint(s, 10, 64)
}

// select the identity flag or the configured default
func identityName(c *cli.Context, m *metadata) string {
	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}
	return name
}

// an account given as either an identity name or base58 text
func accountFromName(m *metadata, s string) (*account.Account, error) {
	if acc, err := m.config.Account(s); nil == err {
		return acc, nil
	}
	return account.FromBase58(s)
}

// like accountFromName but an empty string selects the identity
func accountOrIdentity(c *cli.Context, m *metadata, s string) (*account.Account, error) {
	if "" == s {
		s = identityName(c, m)
	}
	return accountFromName(m, s)
}

// optional account, nil when unset
func optionalAccount(m *metadata, s string) (*account.Account, error) {
	if "" == s {
		return nil, nil
	}
	return accountFromName(m, s)
}

// connection for read only calls
func queryClient(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.testnet, m.config.Connect, nil, m.verbose, m.e)
}

// connection carrying the decrypted identity key
func signingClient(c *cli.Context, m *metadata) (*rpccalls.Client, error) {
	name := identityName(c, m)
	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
	}

	password := c.GlobalString("password")
	if "" == password {
		var err error
		password, err = promptPassword()
		if nil != err {
			return nil, err
		}
	}

	key, err := m.config.Private(password, name)
	if nil != err {
		return nil, err
	}
	return rpccalls.NewClient(m.testnet, m.config.Connect, key, m.verbose, m.e)
}

func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
