// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/storage"
)

func TestDoubleInitialise(t *testing.T) {
	setup(t)
	defer teardown()

	err := storage.Initialise(databasePath(), storage.ReadWrite)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")
}

func TestCommitIsVisible(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	if !assert.Nil(t, err, "new transaction") {
		return
	}

	trx.Put(storage.Pool.Needs, []byte("key-one"), []byte("data-one"))
	trx.PutN(storage.Pool.Balances, []byte("acc"), 1234)

	// pending write visible only inside the transaction
	assert.Equal(t, []byte("data-one"), trx.Get(storage.Pool.Needs, []byte("key-one")))
	assert.True(t, trx.Has(storage.Pool.Needs, []byte("key-one")))
	assert.Nil(t, storage.Pool.Needs.Get([]byte("key-one")), "committed read before commit")

	n, found := trx.GetN(storage.Pool.Balances, []byte("acc"))
	assert.True(t, found)
	assert.Equal(t, uint64(1234), n)

	assert.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, []byte("data-one"), storage.Pool.Needs.Get([]byte("key-one")))
	assert.True(t, storage.Pool.Needs.Has([]byte("key-one")))
	assert.False(t, storage.Pool.Offers.Has([]byte("key-one")), "pools are separate")

	n, found = storage.Pool.Balances.GetN([]byte("acc"))
	assert.True(t, found)
	assert.Equal(t, uint64(1234), n)

	assert.Equal(t, fault.TransactionFinished, trx.Commit(), "second commit")
	trx.Abort() // no effect
	assert.True(t, storage.Pool.Needs.Has([]byte("key-one")))
}

func TestAbortDiscards(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err)
	trx.Put(storage.Pool.Deals, []byte("kept"), []byte("value"))
	assert.Nil(t, trx.Commit())

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err)
	trx.Put(storage.Pool.Deals, []byte("discarded"), []byte("value"))
	trx.Delete(storage.Pool.Deals, []byte("kept"))

	assert.False(t, trx.Has(storage.Pool.Deals, []byte("kept")), "pending delete hides committed data")
	assert.Nil(t, trx.Get(storage.Pool.Deals, []byte("kept")))
	trx.Abort()

	assert.True(t, storage.Pool.Deals.Has([]byte("kept")))
	assert.False(t, storage.Pool.Deals.Has([]byte("discarded")))

	// next transaction starts clean
	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err)
	assert.False(t, trx.Has(storage.Pool.Deals, []byte("discarded")))
	assert.True(t, trx.Has(storage.Pool.Deals, []byte("kept")))
	trx.Abort()
}

func TestTransactionsAreSerialised(t *testing.T) {
	setup(t)
	defer teardown()

	first, err := storage.NewDBTransaction()
	assert.Nil(t, err)

	started := make(chan struct{})
	done := make(chan uint64)
	go func() {
		close(started)
		second, err := storage.NewDBTransaction()
		if nil != err {
			done <- 0
			return
		}
		n, _ := second.GetN(storage.Pool.Registry, []byte("counter"))
		second.PutN(storage.Pool.Registry, []byte("counter"), n+1)
		second.Commit()
		done <- n + 1
	}()

	<-started
	first.PutN(storage.Pool.Registry, []byte("counter"), 10)

	select {
	case <-done:
		t.Fatal("second transaction ran while first was active")
	case <-time.After(50 * time.Millisecond):
	}

	assert.Nil(t, first.Commit())
	assert.Equal(t, uint64(11), <-done, "second transaction saw committed value")

	n, _ := storage.Pool.Registry.GetN([]byte("counter"))
	assert.Equal(t, uint64(11), n)
}

func TestOnCommit(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err)
	ran := false
	trx.OnCommit(func() { ran = true })
	trx.Put(storage.Pool.Registry, []byte("k"), []byte("v"))
	trx.Abort()
	assert.False(t, ran, "ran after abort")

	first, err := storage.NewDBTransaction()
	assert.Nil(t, err)

	order := make(chan string, 2)
	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(started)
		second, err := storage.NewDBTransaction()
		if nil == err {
			second.OnCommit(func() { order <- "second" })
			second.Commit()
		}
		close(done)
	}()

	<-started
	first.Put(storage.Pool.Registry, []byte("k"), []byte("v"))
	first.OnCommit(func() {
		// the second transaction must still be waiting
		time.Sleep(20 * time.Millisecond)
		order <- "first"
	})
	assert.Nil(t, first.Commit())
	<-done

	assert.Equal(t, "first", <-order, "wrong first callback")
	assert.Equal(t, "second", <-order, "wrong second callback")
}

func TestReadOnly(t *testing.T) {
	setup(t)
	storage.Finalise()
	defer teardown()

	err := storage.Initialise(databasePath(), storage.ReadOnly)
	if !assert.Nil(t, err, "read only open") {
		return
	}
	assert.True(t, storage.IsReadOnly())

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.NotAvailableInReadOnlyMode, err)
}

func TestNotInitialised(t *testing.T) {
	setupTestLogger()
	defer teardown()

	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.NotInitialised, err)
}
