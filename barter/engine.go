// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package barter - fund free exchange of work between two accounts
//
// side A is delivered by the initiator and confirmed by the
// counterpart, side B the reverse; both confirmations complete it
package barter

import (
	"time"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/event"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/record"
	"github.com/bitmark-inc/clawswapd/registry"
	"github.com/bitmark-inc/clawswapd/storage"
	"github.com/bitmark-inc/clawswapd/transactionrecord"
	"github.com/bitmark-inc/logger"
)

// Barter - the operations offered to the RPC layer
type Barter interface {
	Create(txId *transactionrecord.TxId, initiator *account.Account, offer string, want string, target *account.Account) (*record.Barter, error)
	Accept(txId *transactionrecord.TxId, barterId uint64, caller *account.Account) (*record.Barter, error)
	SubmitDelivery(txId *transactionrecord.TxId, barterId uint64, caller *account.Account, content string, hash string) (*record.Barter, error)
	ConfirmSide(txId *transactionrecord.TxId, barterId uint64, caller *account.Account) (*record.Barter, error)
	Cancel(txId *transactionrecord.TxId, barterId uint64, caller *account.Account) (*record.Barter, error)
	Dispute(txId *transactionrecord.TxId, barterId uint64, caller *account.Account, reason string) (*record.Barter, error)
}

// Engine - storage backed Barter
type Engine struct {
	log     *logger.L
	emitter event.Emitter
	clock   func() time.Time
}

// New - create an engine, a nil clock means time.Now
func New(log *logger.L, emitter event.Emitter, clock func() time.Time) *Engine {
	if nil == clock {
		clock = time.Now
	}
	return &Engine{
		log:     log,
		emitter: emitter,
		clock:   clock,
	}
}

// load, check and rewrite one barter in a single transaction
type change func(b *record.Barter) ([]event.Event, error)

func (e *Engine) modify(txId *transactionrecord.TxId, barterId uint64, f change) (*record.Barter, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	defer trx.Abort()

	err = transactionrecord.Claim(trx, txId, e.clock().Unix())
	if nil != err {
		return nil, err
	}

	b, err := record.GetBarter(trx, barterId)
	if nil != err {
		return nil, err
	}

	// a counterpart recorded before acceptance is only a pinned target
	open := record.BarterOpen == b.Status && nil == b.Counterpart

	events, err := f(b)
	if nil != err {
		return nil, err
	}
	record.PutBarter(trx, b, false, open && nil != b.Counterpart)
	trx.OnCommit(func() {
		for _, ev := range events {
			e.emitter.Emit(ev)
		}
	})

	err = trx.Commit()
	if nil != err {
		e.log.Errorf("commit failed: %s", err)
		return nil, err
	}
	return b, nil
}

// Create - propose an exchange, a nil target lets anyone accept
func (e *Engine) Create(txId *transactionrecord.TxId, initiator *account.Account, offer string, want string, target *account.Account) (*record.Barter, error) {
	if len(offer) > record.MaxDescriptionLength {
		return nil, fault.BarterOfferTooLong
	}
	if len(want) > record.MaxDescriptionLength {
		return nil, fault.BarterWantTooLong
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	defer trx.Abort()

	now := e.clock().Unix()
	err = transactionrecord.Claim(trx, txId, now)
	if nil != err {
		return nil, err
	}

	r, err := registry.Load(trx)
	if nil != err {
		return nil, err
	}

	b := &record.Barter{
		Id:          r.NextId(registry.Barter),
		Initiator:   initiator,
		Counterpart: target,
		Offer:       offer,
		Want:        want,
		Status:      record.BarterOpen,
		CreatedAt:   now,
	}
	record.PutBarter(trx, b, true, false)
	r.Save(trx)
	trx.OnCommit(func() {
		e.emitter.Emit(event.BarterCreated{
			Id:        b.Id,
			Initiator: initiator,
			Offer:     offer,
			Want:      want,
		})
	})

	err = trx.Commit()
	if nil != err {
		e.log.Errorf("commit failed: %s", err)
		return nil, err
	}

	e.log.Infof("barter: %d created by: %s", b.Id, initiator)
	return b, nil
}

// Accept - bind the counterpart and start the exchange
func (e *Engine) Accept(txId *transactionrecord.TxId, barterId uint64, caller *account.Account) (*record.Barter, error) {
	b, err := e.modify(txId, barterId, func(b *record.Barter) ([]event.Event, error) {
		if record.BarterOpen != b.Status {
			return nil, fault.BarterNotOpen
		}
		if b.Initiator.Equal(caller) {
			return nil, fault.CannotAcceptOwnBarter
		}
		if nil != b.Counterpart && !b.Counterpart.Equal(caller) {
			return nil, fault.WrongBarterTarget
		}

		b.Counterpart = caller
		b.Status = record.BarterInProgress

		return []event.Event{
			event.BarterAccepted{
				Id:          b.Id,
				Counterpart: caller,
			},
		}, nil
	})
	if nil != err {
		e.log.Warnf("accept barter: %d  caller: %s  error: %s", barterId, caller, err)
		return nil, err
	}

	e.log.Infof("barter: %d accepted by: %s", barterId, caller)
	return b, nil
}

// SubmitDelivery - record the caller's side of the exchange
//
// a side may be resubmitted until it is confirmed
func (e *Engine) SubmitDelivery(txId *transactionrecord.TxId, barterId uint64, caller *account.Account, content string, hash string) (*record.Barter, error) {
	if len(content) > record.MaxDeliveryContentLength {
		return nil, fault.DeliveryContentTooLong
	}
	if len(hash) > record.MaxDeliveryHashLength {
		return nil, fault.DeliveryHashTooLong
	}

	b, err := e.modify(txId, barterId, func(b *record.Barter) ([]event.Event, error) {
		if record.BarterInProgress != b.Status {
			return nil, fault.BarterNotInProgress
		}
		if !b.IsParticipant(caller) {
			return nil, fault.NotBarterParticipant
		}

		side, label := &b.B, record.SideB
		if b.Initiator.Equal(caller) {
			side, label = &b.A, record.SideA
		}
		if side.Confirmed {
			return nil, fault.AlreadyConfirmed
		}
		side.Submitted = true
		side.Content = content
		side.Hash = hash

		return []event.Event{
			event.BarterDeliverySubmitted{
				BarterId: b.Id,
				Side:     label,
				Hash:     hash,
			},
		}, nil
	})
	if nil != err {
		e.log.Warnf("barter delivery: %d  caller: %s  error: %s", barterId, caller, err)
		return nil, err
	}

	e.log.Infof("barter: %d delivery from: %s", barterId, caller)
	return b, nil
}

// ConfirmSide - accept the other party's delivery
func (e *Engine) ConfirmSide(txId *transactionrecord.TxId, barterId uint64, caller *account.Account) (*record.Barter, error) {
	b, err := e.modify(txId, barterId, func(b *record.Barter) ([]event.Event, error) {
		if record.BarterInProgress != b.Status {
			return nil, fault.BarterNotInProgress
		}
		if !b.IsParticipant(caller) {
			return nil, fault.NotBarterParticipant
		}

		side := &b.A
		if b.Initiator.Equal(caller) {
			side = &b.B
		}
		if side.Confirmed {
			return nil, fault.AlreadyConfirmed
		}
		if !side.Submitted {
			return nil, fault.DeliveryNotReady
		}
		side.Confirmed = true

		events := []event.Event{
			event.BarterConfirmed{
				BarterId:    b.Id,
				ConfirmedBy: caller,
			},
		}
		if b.A.Confirmed && b.B.Confirmed {
			b.Status = record.BarterCompleted
			events = append(events, event.BarterCompleted{Id: b.Id})
		}
		return events, nil
	})
	if nil != err {
		e.log.Warnf("barter confirm: %d  caller: %s  error: %s", barterId, caller, err)
		return nil, err
	}

	e.log.Infof("barter: %d confirmed by: %s  status: %s", barterId, caller, b.Status)
	return b, nil
}

// Cancel - initiator withdraws an open barter
func (e *Engine) Cancel(txId *transactionrecord.TxId, barterId uint64, caller *account.Account) (*record.Barter, error) {
	b, err := e.modify(txId, barterId, func(b *record.Barter) ([]event.Event, error) {
		if record.BarterOpen != b.Status {
			return nil, fault.BarterNotOpen
		}
		if !b.Initiator.Equal(caller) {
			return nil, fault.NotBarterInitiator
		}

		b.Status = record.BarterCancelled

		return []event.Event{
			event.BarterCancelled{Id: b.Id},
		}, nil
	})
	if nil != err {
		e.log.Warnf("barter cancel: %d  caller: %s  error: %s", barterId, caller, err)
		return nil, err
	}

	e.log.Infof("barter: %d cancelled", barterId)
	return b, nil
}

// Dispute - halt an exchange in progress, there is no resolution
func (e *Engine) Dispute(txId *transactionrecord.TxId, barterId uint64, caller *account.Account, reason string) (*record.Barter, error) {
	if len(reason) > record.MaxReasonLength {
		return nil, fault.DisputeReasonTooLong
	}

	b, err := e.modify(txId, barterId, func(b *record.Barter) ([]event.Event, error) {
		if record.BarterInProgress != b.Status {
			return nil, fault.BarterNotInProgress
		}
		if !b.IsParticipant(caller) {
			return nil, fault.NotBarterParticipant
		}

		b.Status = record.BarterDisputed
		b.DisputeReason = reason

		return []event.Event{
			event.BarterDisputed{
				Id:       b.Id,
				RaisedBy: caller,
				Reason:   reason,
			},
		}, nil
	})
	if nil != err {
		e.log.Warnf("barter dispute: %d  caller: %s  error: %s", barterId, caller, err)
		return nil, err
	}

	e.log.Infof("barter: %d disputed by: %s", barterId, caller)
	return b, nil
}
