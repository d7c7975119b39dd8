// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runBarterCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	offer := c.String("offer")
	want := c.String("want")
	if "" == offer || "" == want {
		return ErrMissingOption
	}

	target, err := optionalAccount(m, c.String("target"))
	if nil != err {
		return err
	}

	client, err := signingClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateBarter(offer, want, target)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runBarterAccept(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c)
	if nil != err {
		return err
	}

	client, err := signingClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.AcceptBarter(id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runBarterDeliver(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c)
	if nil != err {
		return err
	}

	client, err := signingClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.DeliverBarter(id, c.String("content"), c.String("hash"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runBarterConfirm(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c)
	if nil != err {
		return err
	}

	client, err := signingClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ConfirmBarter(id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runBarterCancel(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c)
	if nil != err {
		return err
	}

	client, err := signingClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CancelBarter(id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runBarterDispute(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c)
	if nil != err {
		return err
	}

	client, err := signingClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.DisputeBarter(id, c.String("reason"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runBarterGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c)
	if nil != err {
		return err
	}

	client, err := queryClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetBarter(id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runBarterList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	participant, err := accountOrIdentity(c, m, c.String("participant"))
	if nil != err {
		return err
	}

	client, err := queryClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListBarters(participant, c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
