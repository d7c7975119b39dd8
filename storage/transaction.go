// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/clawswapd/fault"
)

// Transaction - the single database write transaction
//
// reads through a transaction see its own uncommitted writes;
// Commit writes everything as one LevelDB batch and Abort discards
// it, either releases the transaction for the next caller
//
// functions registered with OnCommit run after a successful write
// and before the next transaction can begin, so their side effects
// follow commit order
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	OnCommit(func())
	Commit() error
	Abort()
}

// serialises use of the database batch
type transaction struct {
	sync.Mutex
	access *access
}

func newTransaction(a *access) *transaction {
	return &transaction{
		access: a,
	}
}

// one per NewDBTransaction call
type activeTransaction struct {
	t         *transaction
	finished  bool
	committed []func()
}

func (t *transaction) begin() Transaction {
	t.Lock()
	t.access.reset()
	return &activeTransaction{
		t: t,
	}
}

func (a *activeTransaction) Put(handle *PoolHandle, key []byte, value []byte) {
	a.t.access.put(handle.prefixKey(key), value)
}

func (a *activeTransaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	a.t.access.put(handle.prefixKey(key), encodeN(value))
}

func (a *activeTransaction) Delete(handle *PoolHandle, key []byte) {
	a.t.access.delete(handle.prefixKey(key))
}

func (a *activeTransaction) Get(handle *PoolHandle, key []byte) []byte {
	return a.t.access.getPending(handle.prefixKey(key))
}

func (a *activeTransaction) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, a.Get(handle, key))
}

func (a *activeTransaction) Has(handle *PoolHandle, key []byte) bool {
	return a.t.access.hasPending(handle.prefixKey(key))
}

// OnCommit - queue f to run once the batch is written, dropped on abort
func (a *activeTransaction) OnCommit(f func()) {
	a.committed = append(a.committed, f)
}

// Commit - write all pending changes atomically
func (a *activeTransaction) Commit() error {
	if a.finished {
		return fault.TransactionFinished
	}
	a.finished = true
	defer a.t.Unlock()

	if 0 != a.t.access.pending() {
		err := a.t.access.commit()
		if nil != err {
			a.committed = nil
			return err
		}
	}

	for _, f := range a.committed {
		f()
	}
	a.committed = nil
	return nil
}

// Abort - discard all pending changes
//
// does nothing after Commit, so it can be deferred
func (a *activeTransaction) Abort() {
	if a.finished {
		return
	}
	a.finished = true
	a.committed = nil
	a.t.access.reset()
	a.t.Unlock()
}
