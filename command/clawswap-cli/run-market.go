// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/clawswapd/command/clawswap-cli/rpccalls"
	"github.com/bitmark-inc/clawswapd/record"
)

// need

func runNeedCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	title := c.String("title")
	if "" == title {
		return ErrMissingOption
	}

	client, err := signingClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateNeed(&rpccalls.NeedData{
		Title:       title,
		Description: c.String("description"),
		Category:    c.String("category"),
		Budget:      c.Uint64("budget"),
		Deadline:    c.Int64("deadline"),
	})
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runNeedCancel(c *cli.Context) error {

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

	reply, err := client.CancelNeed(id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runNeedGet(c *cli.Context) error {

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

	reply, err := client.GetNeed(id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runNeedList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	creator, err := optionalAccount(m, c.String("creator"))
	if nil != err {
		return err
	}

	var status *record.NeedStatus
	if s := c.String("status"); "" != s {
		status = new(record.NeedStatus)
		if err := status.UnmarshalText([]byte(s)); nil != err {
			return err
		}
	}

	client, err := queryClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListNeeds(creator, status, c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

// offer

func runOfferCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("need") || !c.IsSet("price") {
		return ErrMissingOption
	}

	client, err := signingClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateOffer(c.Uint64("need"), c.Uint64("price"), c.String("message"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runOfferCancel(c *cli.Context) error {

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

	reply, err := client.CancelOffer(id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runOfferGet(c *cli.Context) error {

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

	reply, err := client.GetOffer(id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runOfferList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	provider, err := optionalAccount(m, c.String("provider"))
	if nil != err {
		return err
	}
	if nil == provider && !c.IsSet("need") {
		return ErrMissingOption
	}

	client, err := queryClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListOffers(provider, c.Uint64("need"), c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

// deal

func runDealAccept(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("need") || !c.IsSet("offer") {
		return ErrMissingOption
	}

	client, err := signingClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.AcceptOffer(c.Uint64("need"), c.Uint64("offer"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runDealDeliver(c *cli.Context) error {

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

	reply, err := client.SubmitDelivery(id, c.String("hash"), c.String("content"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runDealConfirm(c *cli.Context) error {

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

	reply, err := client.ConfirmDelivery(id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runDealDispute(c *cli.Context) error {

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

	reply, err := client.RaiseDispute(id, c.String("reason"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runDealResolve(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c)
	if nil != err {
		return err
	}

	var resolution record.Resolution
	if err := resolution.UnmarshalText([]byte(c.String("resolution"))); nil != err {
		return err
	}

	client, err := signingClient(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ResolveDispute(id, resolution)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runDealGet(c *cli.Context) error {

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

	reply, err := client.GetDeal(id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runDealList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	party, err := accountOrIdentity(c, m, c.String("party"))
	if nil != err {
		return err
	}

	client, err := queryClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListDeals(party, c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
