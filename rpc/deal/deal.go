// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deal

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/ledger"
	"github.com/bitmark-inc/clawswapd/market"
	"github.com/bitmark-inc/clawswapd/mode"
	"github.com/bitmark-inc/clawswapd/record"
	"github.com/bitmark-inc/clawswapd/rpc/ratelimit"
	"github.com/bitmark-inc/clawswapd/transactionrecord"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitDeal = 200
	rateBurstDeal = 100
)

// Deal - type for the RPC
type Deal struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Market         market.Market
	ReadOnly       bool
}

// New - create the Deal RPC handler
func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	isTestingChain func() bool,
	m market.Market,
	readOnly bool,
) *Deal {
	return &Deal{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitDeal, rateBurstDeal),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		Market:         m,
		ReadOnly:       readOnly,
	}
}

// Reply - result of a mutating deal call
type Reply struct {
	TxId transactionrecord.TxId `json:"txId"`
	Deal *record.Deal           `json:"deal"`
}

func (d *Deal) verify(arguments transactionrecord.Request) (*transactionrecord.TxId, error) {
	if d.ReadOnly {
		return nil, fault.NotAvailableInReadOnlyMode
	}
	if !d.IsNormalMode(mode.Normal) {
		return nil, fault.NotAvailableDuringStartup
	}
	return transactionrecord.Verify(arguments, d.IsTestingChain())
}

// run one signed deal operation
func (d *Deal) apply(name string, arguments transactionrecord.Request, reply *Reply, f func(*transactionrecord.TxId) (*record.Deal, error)) error {
	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	d.Log.Infof("Deal.%s: %+v", name, arguments)

	txId, err := d.verify(arguments)
	if nil != err {
		return err
	}

	deal, err := f(txId)
	if nil != err {
		return err
	}

	reply.TxId = *txId
	reply.Deal = deal
	return nil
}

// Accept - accept an offer on the caller's need, moving the price to escrow
func (d *Deal) Accept(arguments *transactionrecord.DealAccept, reply *Reply) error {
	if nil == arguments || nil == arguments.Client {
		return fault.MissingParameters
	}
	return d.apply("Accept", arguments, reply, func(txId *transactionrecord.TxId) (*record.Deal, error) {
		return d.Market.AcceptOffer(txId, arguments.NeedId, arguments.OfferId, arguments.Client)
	})
}

// SubmitDelivery - provider hands over the work
func (d *Deal) SubmitDelivery(arguments *transactionrecord.DealDeliver, reply *Reply) error {
	if nil == arguments || nil == arguments.Provider {
		return fault.MissingParameters
	}
	return d.apply("SubmitDelivery", arguments, reply, func(txId *transactionrecord.TxId) (*record.Deal, error) {
		return d.Market.SubmitDelivery(txId, arguments.DealId, arguments.Provider, arguments.Hash, arguments.Content)
	})
}

// ConfirmDelivery - client accepts the work, releasing escrow to the provider
func (d *Deal) ConfirmDelivery(arguments *transactionrecord.DealConfirm, reply *Reply) error {
	if nil == arguments || nil == arguments.Client {
		return fault.MissingParameters
	}
	return d.apply("ConfirmDelivery", arguments, reply, func(txId *transactionrecord.TxId) (*record.Deal, error) {
		return d.Market.ConfirmDelivery(txId, arguments.DealId, arguments.Client)
	})
}

// RaiseDispute - either party freezes the deal
func (d *Deal) RaiseDispute(arguments *transactionrecord.DealDispute, reply *Reply) error {
	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}
	return d.apply("RaiseDispute", arguments, reply, func(txId *transactionrecord.TxId) (*record.Deal, error) {
		return d.Market.RaiseDispute(txId, arguments.DealId, arguments.Caller, arguments.Reason)
	})
}

// ResolveDispute - the authority settles a disputed deal
func (d *Deal) ResolveDispute(arguments *transactionrecord.DealResolve, reply *Reply) error {
	if nil == arguments || nil == arguments.Authority {
		return fault.MissingParameters
	}
	return d.apply("ResolveDispute", arguments, reply, func(txId *transactionrecord.TxId) (*record.Deal, error) {
		return d.Market.ResolveDispute(txId, arguments.DealId, arguments.Authority, arguments.Resolution)
	})
}

// GetArguments - deal to fetch
type GetArguments struct {
	Id uint64 `json:"id"`
}

// GetReply - a deal and the funds its escrow currently holds
type GetReply struct {
	Deal   *record.Deal `json:"deal"`
	Escrow uint64       `json:"escrow"`
}

// Get - fetch one deal
func (d *Deal) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	deal, err := record.GetDeal(record.Committed, arguments.Id)
	if nil != err {
		return err
	}
	reply.Deal = deal
	reply.Escrow = ledger.Balance(ledger.EscrowAddress(deal.Id))
	return nil
}

// ListByPartyArguments - a page of one account's deals
type ListByPartyArguments struct {
	Party *account.Account `json:"party"`
	Start uint64           `json:"start"`
	Count int              `json:"count"`
}

// ListReply - a page of deals and the start of the next page
type ListReply struct {
	Deals     []*record.Deal `json:"deals"`
	NextStart uint64         `json:"nextStart"`
}

// ListByParty - deals where an account is client or provider
func (d *Deal) ListByParty(arguments *ListByPartyArguments, reply *ListReply) error {
	if nil == arguments || nil == arguments.Party {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(d.Limiter, arguments.Count, record.MaximumListCount); nil != err {
		return err
	}

	d.Log.Debugf("Deal.ListByParty: %+v", arguments)

	deals, err := record.ListDealsByParty(arguments.Party, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Deals = deals
	reply.NextStart = arguments.Start
	if len(deals) > 0 {
		reply.NextStart = deals[len(deals)-1].Id + 1
	}
	return nil
}
