// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package barter

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/barter"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/mode"
	"github.com/bitmark-inc/clawswapd/record"
	"github.com/bitmark-inc/clawswapd/rpc/ratelimit"
	"github.com/bitmark-inc/clawswapd/transactionrecord"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitBarter = 200
	rateBurstBarter = 100
)

// Barter - type for the RPC
type Barter struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Engine         barter.Barter
	ReadOnly       bool
}

// New - create the Barter RPC handler
func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	isTestingChain func() bool,
	engine barter.Barter,
	readOnly bool,
) *Barter {
	return &Barter{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitBarter, rateBurstBarter),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		Engine:         engine,
		ReadOnly:       readOnly,
	}
}

// Reply - result of a mutating barter call
type Reply struct {
	TxId   transactionrecord.TxId `json:"txId"`
	Barter *record.Barter         `json:"barter"`
}

func (b *Barter) apply(name string, arguments transactionrecord.Request, reply *Reply, f func(*transactionrecord.TxId) (*record.Barter, error)) error {
	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}
	if b.ReadOnly {
		return fault.NotAvailableInReadOnlyMode
	}

	b.Log.Infof("Barter.%s: %+v", name, arguments)

	if !b.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	txId, err := transactionrecord.Verify(arguments, b.IsTestingChain())
	if nil != err {
		return err
	}

	result, err := f(txId)
	if nil != err {
		return err
	}

	reply.TxId = *txId
	reply.Barter = result
	return nil
}

// Create - propose an exchange
func (b *Barter) Create(arguments *transactionrecord.BarterCreate, reply *Reply) error {
	if nil == arguments || nil == arguments.Initiator {
		return fault.MissingParameters
	}
	return b.apply("Create", arguments, reply, func(txId *transactionrecord.TxId) (*record.Barter, error) {
		return b.Engine.Create(txId, arguments.Initiator, arguments.Offer, arguments.Want, arguments.Target)
	})
}

// Accept - become the counterpart of an open barter
func (b *Barter) Accept(arguments *transactionrecord.BarterAccept, reply *Reply) error {
	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}
	return b.apply("Accept", arguments, reply, func(txId *transactionrecord.TxId) (*record.Barter, error) {
		return b.Engine.Accept(txId, arguments.BarterId, arguments.Caller)
	})
}

// SubmitDelivery - deliver the caller's side
func (b *Barter) SubmitDelivery(arguments *transactionrecord.BarterDeliver, reply *Reply) error {
	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}
	return b.apply("SubmitDelivery", arguments, reply, func(txId *transactionrecord.TxId) (*record.Barter, error) {
		return b.Engine.SubmitDelivery(txId, arguments.BarterId, arguments.Caller, arguments.Content, arguments.Hash)
	})
}

// ConfirmSide - confirm what the other participant delivered
func (b *Barter) ConfirmSide(arguments *transactionrecord.BarterConfirm, reply *Reply) error {
	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}
	return b.apply("ConfirmSide", arguments, reply, func(txId *transactionrecord.TxId) (*record.Barter, error) {
		return b.Engine.ConfirmSide(txId, arguments.BarterId, arguments.Caller)
	})
}

// Cancel - withdraw an open barter
func (b *Barter) Cancel(arguments *transactionrecord.BarterCancel, reply *Reply) error {
	if nil == arguments || nil == arguments.Initiator {
		return fault.MissingParameters
	}
	return b.apply("Cancel", arguments, reply, func(txId *transactionrecord.TxId) (*record.Barter, error) {
		return b.Engine.Cancel(txId, arguments.BarterId, arguments.Initiator)
	})
}

// Dispute - dispute an exchange in progress
func (b *Barter) Dispute(arguments *transactionrecord.BarterDispute, reply *Reply) error {
	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}
	return b.apply("Dispute", arguments, reply, func(txId *transactionrecord.TxId) (*record.Barter, error) {
		return b.Engine.Dispute(txId, arguments.BarterId, arguments.Caller, arguments.Reason)
	})
}

// GetArguments - barter to fetch
type GetArguments struct {
	Id uint64 `json:"id"`
}

// Get - fetch one barter
func (b *Barter) Get(arguments *GetArguments, reply *record.Barter) error {
	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	result, err := record.GetBarter(record.Committed, arguments.Id)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// ListByParticipantArguments - a page of one account's barters
type ListByParticipantArguments struct {
	Participant *account.Account `json:"participant"`
	Start       uint64           `json:"start"`
	Count       int              `json:"count"`
}

// ListReply - a page of barters and the start of the next page
type ListReply struct {
	Barters   []*record.Barter `json:"barters"`
	NextStart uint64           `json:"nextStart"`
}

// ListByParticipant - barters an account initiated or accepted
func (b *Barter) ListByParticipant(arguments *ListByParticipantArguments, reply *ListReply) error {
	if nil == arguments || nil == arguments.Participant {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(b.Limiter, arguments.Count, record.MaximumListCount); nil != err {
		return err
	}

	b.Log.Debugf("Barter.ListByParticipant: %+v", arguments)

	barters, err := record.ListBartersByParticipant(arguments.Participant, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Barters = barters
	reply.NextStart = arguments.Start
	if len(barters) > 0 {
		reply.NextStart = barters[len(barters)-1].Id + 1
	}
	return nil
}
