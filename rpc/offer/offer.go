// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offer

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/market"
	"github.com/bitmark-inc/clawswapd/mode"
	"github.com/bitmark-inc/clawswapd/record"
	"github.com/bitmark-inc/clawswapd/rpc/ratelimit"
	"github.com/bitmark-inc/clawswapd/transactionrecord"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitOffer = 200
	rateBurstOffer = 100
)

// Offer - type for the RPC
type Offer struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Market         market.Market
	ReadOnly       bool
}

// New - create the Offer RPC handler
func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	isTestingChain func() bool,
	m market.Market,
	readOnly bool,
) *Offer {
	return &Offer{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitOffer, rateBurstOffer),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		Market:         m,
		ReadOnly:       readOnly,
	}
}

// Reply - result of a mutating offer call
type Reply struct {
	TxId  transactionrecord.TxId `json:"txId"`
	Offer *record.Offer          `json:"offer"`
}

func (o *Offer) verify(arguments transactionrecord.Request) (*transactionrecord.TxId, error) {
	if o.ReadOnly {
		return nil, fault.NotAvailableInReadOnlyMode
	}
	if !o.IsNormalMode(mode.Normal) {
		return nil, fault.NotAvailableDuringStartup
	}
	return transactionrecord.Verify(arguments, o.IsTestingChain())
}

// Create - respond to an open need
func (o *Offer) Create(arguments *transactionrecord.OfferCreate, reply *Reply) error {
	if err := ratelimit.Limit(o.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Provider {
		return fault.MissingParameters
	}

	o.Log.Infof("Offer.Create: %+v", arguments)

	txId, err := o.verify(arguments)
	if nil != err {
		return err
	}

	offer, err := o.Market.CreateOffer(txId, arguments.NeedId, arguments.Provider, arguments.Price, arguments.Message)
	if nil != err {
		return err
	}

	reply.TxId = *txId
	reply.Offer = offer
	return nil
}

// Cancel - withdraw a pending offer
func (o *Offer) Cancel(arguments *transactionrecord.OfferCancel, reply *Reply) error {
	if err := ratelimit.Limit(o.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Provider {
		return fault.MissingParameters
	}

	o.Log.Infof("Offer.Cancel: %+v", arguments)

	txId, err := o.verify(arguments)
	if nil != err {
		return err
	}

	offer, err := o.Market.CancelOffer(txId, arguments.OfferId, arguments.Provider)
	if nil != err {
		return err
	}

	reply.TxId = *txId
	reply.Offer = offer
	return nil
}

// GetArguments - offer to fetch
type GetArguments struct {
	Id uint64 `json:"id"`
}

// Get - fetch one offer
func (o *Offer) Get(arguments *GetArguments, reply *record.Offer) error {
	if err := ratelimit.Limit(o.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	offer, err := record.GetOffer(record.Committed, arguments.Id)
	if nil != err {
		return err
	}
	*reply = *offer
	return nil
}

// ListArguments - a page of the offers made against one need
type ListArguments struct {
	NeedId uint64 `json:"needId"`
	Start  uint64 `json:"start"`
	Count  int    `json:"count"`
}

// ListReply - a page of offers and the start of the next page
type ListReply struct {
	Offers    []*record.Offer `json:"offers"`
	NextStart uint64          `json:"nextStart"`
}

// List - offers for a need in id order
func (o *Offer) List(arguments *ListArguments, reply *ListReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(o.Limiter, arguments.Count, record.MaximumListCount); nil != err {
		return err
	}

	o.Log.Debugf("Offer.List: %+v", arguments)

	if _, err := record.GetNeed(record.Committed, arguments.NeedId); nil != err {
		return err
	}

	offers, err := record.ListOffersByNeed(arguments.NeedId, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	fill(reply, offers, arguments.Start)
	return nil
}

// ListByProviderArguments - a page of one account's offers
type ListByProviderArguments struct {
	Provider *account.Account `json:"provider"`
	Start    uint64           `json:"start"`
	Count    int              `json:"count"`
}

// ListByProvider - offers made by an account
func (o *Offer) ListByProvider(arguments *ListByProviderArguments, reply *ListReply) error {
	if nil == arguments || nil == arguments.Provider {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(o.Limiter, arguments.Count, record.MaximumListCount); nil != err {
		return err
	}

	o.Log.Debugf("Offer.ListByProvider: %+v", arguments)

	offers, err := record.ListOffersByProvider(arguments.Provider, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	fill(reply, offers, arguments.Start)
	return nil
}

func fill(reply *ListReply, offers []*record.Offer, start uint64) {
	reply.Offers = offers
	reply.NextStart = start
	if len(offers) > 0 {
		reply.NextStart = offers[len(offers)-1].Id + 1
	}
}
