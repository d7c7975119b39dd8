// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package need

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
	rateLimitNeed = 200
	rateBurstNeed = 100
)

// Need - type for the RPC
type Need struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Market         market.Market
	ReadOnly       bool
}

// New - create the Need RPC handler
func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	isTestingChain func() bool,
	m market.Market,
	readOnly bool,
) *Need {
	return &Need{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitNeed, rateBurstNeed),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		Market:         m,
		ReadOnly:       readOnly,
	}
}

// Reply - result of a mutating need call
type Reply struct {
	TxId transactionrecord.TxId `json:"txId"`
	Need *record.Need           `json:"need"`
}

// checks common to every mutating call
func (n *Need) verify(arguments transactionrecord.Request) (*transactionrecord.TxId, error) {
	if n.ReadOnly {
		return nil, fault.NotAvailableInReadOnlyMode
	}
	if !n.IsNormalMode(mode.Normal) {
		return nil, fault.NotAvailableDuringStartup
	}
	return transactionrecord.Verify(arguments, n.IsTestingChain())
}

// Create - post a new need
func (n *Need) Create(arguments *transactionrecord.NeedCreate, reply *Reply) error {
	if err := ratelimit.Limit(n.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Creator {
		return fault.MissingParameters
	}

	n.Log.Infof("Need.Create: %+v", arguments)

	txId, err := n.verify(arguments)
	if nil != err {
		return err
	}

	need, err := n.Market.CreateNeed(txId, arguments.Creator, arguments.Title, arguments.Description, arguments.Category, arguments.Budget, arguments.Deadline)
	if nil != err {
		return err
	}

	reply.TxId = *txId
	reply.Need = need
	return nil
}

// Cancel - withdraw an open need
func (n *Need) Cancel(arguments *transactionrecord.NeedCancel, reply *Reply) error {
	if err := ratelimit.Limit(n.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Creator {
		return fault.MissingParameters
	}

	n.Log.Infof("Need.Cancel: %+v", arguments)

	txId, err := n.verify(arguments)
	if nil != err {
		return err
	}

	need, err := n.Market.CancelNeed(txId, arguments.NeedId, arguments.Creator)
	if nil != err {
		return err
	}

	reply.TxId = *txId
	reply.Need = need
	return nil
}

// GetArguments - need to fetch
type GetArguments struct {
	Id uint64 `json:"id"`
}

// Get - fetch one need
func (n *Need) Get(arguments *GetArguments, reply *record.Need) error {
	if err := ratelimit.Limit(n.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	need, err := record.GetNeed(record.Committed, arguments.Id)
	if nil != err {
		return err
	}
	*reply = *need
	return nil
}

// ListArguments - a page of needs, optionally of one status
type ListArguments struct {
	Start  uint64             `json:"start"`
	Count  int                `json:"count"`
	Status *record.NeedStatus `json:"status,omitempty"`
}

// ListReply - a page of needs and the start of the next page
type ListReply struct {
	Needs     []*record.Need `json:"needs"`
	NextStart uint64         `json:"nextStart"`
}

// List - needs in id order
func (n *Need) List(arguments *ListArguments, reply *ListReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(n.Limiter, arguments.Count, record.MaximumListCount); nil != err {
		return err
	}

	n.Log.Debugf("Need.List: %+v", arguments)

	needs, err := record.ListNeeds(arguments.Start, arguments.Count, arguments.Status)
	if nil != err {
		return err
	}
	fill(reply, needs, arguments.Start)
	return nil
}

// ListByCreatorArguments - a page of one account's needs
type ListByCreatorArguments struct {
	Creator *account.Account `json:"creator"`
	Start   uint64           `json:"start"`
	Count   int              `json:"count"`
}

// ListByCreator - needs posted by an account
func (n *Need) ListByCreator(arguments *ListByCreatorArguments, reply *ListReply) error {
	if nil == arguments || nil == arguments.Creator {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(n.Limiter, arguments.Count, record.MaximumListCount); nil != err {
		return err
	}

	n.Log.Debugf("Need.ListByCreator: %+v", arguments)

	needs, err := record.ListNeedsByCreator(arguments.Creator, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	fill(reply, needs, arguments.Start)
	return nil
}

// an empty page leaves the cursor where it was
func fill(reply *ListReply, needs []*record.Need, start uint64) {
	reply.Needs = needs
	reply.NextStart = start
	if len(needs) > 0 {
		reply.NextStart = needs[len(needs)-1].Id + 1
	}
}
