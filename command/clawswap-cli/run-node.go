// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := queryClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetInfo()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	acc, err := accountOrIdentity(c, m, c.String("account"))
	if nil != err {
		return err
	}

	client, err := queryClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetBalance(acc)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runCredit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrMissingOption
	}

	client, err := signingClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Credit(amount)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runRegistryInit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := signingClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.InitialiseRegistry()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runRegistryInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := queryClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.RegistryInfo()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runStats(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := queryClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetStats()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runProfile(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	acc, err := accountOrIdentity(c, m, c.String("account"))
	if nil != err {
		return err
	}

	client, err := queryClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetProfile(acc)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runEvents(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := queryClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetEvents(c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
