// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - need, offer and deal lifecycle with escrow
//
// every operation runs in one storage transaction: load, validate,
// mutate (including any fund movement) and commit, events are emitted
// before the next transaction starts
package market

import (
	"time"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/event"
	"github.com/bitmark-inc/clawswapd/ledger"
	"github.com/bitmark-inc/clawswapd/record"
	"github.com/bitmark-inc/clawswapd/registry"
	"github.com/bitmark-inc/clawswapd/storage"
	"github.com/bitmark-inc/clawswapd/transactionrecord"
	"github.com/bitmark-inc/logger"
)

// Market - the operations offered to the RPC layer
type Market interface {
	InitialiseRegistry(txId *transactionrecord.TxId, authority *account.Account) (*registry.Registry, error)
	Credit(txId *transactionrecord.TxId, acc *account.Account, amount uint64) (uint64, error)

	CreateNeed(txId *transactionrecord.TxId, creator *account.Account, title string, description string, category string, budget uint64, deadline int64) (*record.Need, error)
	CancelNeed(txId *transactionrecord.TxId, needId uint64, caller *account.Account) (*record.Need, error)
	CreateOffer(txId *transactionrecord.TxId, needId uint64, provider *account.Account, price uint64, message string) (*record.Offer, error)
	CancelOffer(txId *transactionrecord.TxId, offerId uint64, caller *account.Account) (*record.Offer, error)

	AcceptOffer(txId *transactionrecord.TxId, needId uint64, offerId uint64, client *account.Account) (*record.Deal, error)
	SubmitDelivery(txId *transactionrecord.TxId, dealId uint64, provider *account.Account, hash string, content string) (*record.Deal, error)
	ConfirmDelivery(txId *transactionrecord.TxId, dealId uint64, client *account.Account) (*record.Deal, error)
	RaiseDispute(txId *transactionrecord.TxId, dealId uint64, caller *account.Account, reason string) (*record.Deal, error)
	ResolveDispute(txId *transactionrecord.TxId, dealId uint64, authority *account.Account, resolution record.Resolution) (*record.Deal, error)
}

// Engine - storage backed Market
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

// operation body run inside the transaction
type step func(trx storage.Transaction, now int64) ([]event.Event, error)

// run one operation: nothing is written unless every check passes
// and the batch commits; events are emitted in commit order
func (e *Engine) update(txId *transactionrecord.TxId, f step) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	now := e.clock().Unix()

	err = transactionrecord.Claim(trx, txId, now)
	if nil != err {
		return err
	}

	events, err := f(trx, now)
	if nil != err {
		return err
	}
	trx.OnCommit(func() {
		for _, ev := range events {
			e.emitter.Emit(ev)
		}
	})

	err = trx.Commit()
	if nil != err {
		e.log.Errorf("commit failed: %s", err)
		return err
	}
	return nil
}

// InitialiseRegistry - create the global registry
func (e *Engine) InitialiseRegistry(txId *transactionrecord.TxId, authority *account.Account) (*registry.Registry, error) {
	var r *registry.Registry
	err := e.update(txId, func(trx storage.Transaction, now int64) ([]event.Event, error) {
		var err error
		r, err = registry.Initialise(trx, authority)
		return nil, err
	})
	if nil != err {
		e.log.Warnf("registry initialise: error: %s", err)
		return nil, err
	}
	e.log.Infof("registry initialised: authority: %s", authority)
	return r, nil
}

// Credit - add funds to an account, returning the new balance
func (e *Engine) Credit(txId *transactionrecord.TxId, acc *account.Account, amount uint64) (uint64, error) {
	balance := uint64(0)
	err := e.update(txId, func(trx storage.Transaction, now int64) ([]event.Event, error) {
		address := ledger.AccountAddress(acc)
		err := ledger.Credit(trx, address, amount)
		balance = ledger.BalanceInTransaction(trx, address)
		return nil, err
	})
	if nil != err {
		e.log.Warnf("credit: account: %s  amount: %d  error: %s", acc, amount, err)
		return 0, err
	}
	e.log.Infof("credit: account: %s  amount: %d  balance: %d", acc, amount, balance)
	return balance, nil
}
