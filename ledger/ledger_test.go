// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/ledger"
	"github.com/bitmark-inc/clawswapd/storage"
)

func TestCreditAndTransfer(t *testing.T) {
	setup(t)
	defer teardown()

	alice := ledger.AccountAddress(makeAccount(t))
	escrow := ledger.EscrowAddress(3)

	trx, err := storage.NewDBTransaction()
	if !assert.Nil(t, err) {
		return
	}
	assert.Nil(t, ledger.Credit(trx, alice, 1000))
	assert.Nil(t, ledger.Transfer(trx, alice, escrow, 400))
	assert.Equal(t, uint64(600), ledger.BalanceInTransaction(trx, alice))
	assert.Equal(t, uint64(0), ledger.Balance(alice), "not yet committed")
	assert.Nil(t, trx.Commit())

	assert.Equal(t, uint64(600), ledger.Balance(alice))
	assert.Equal(t, uint64(400), ledger.Balance(escrow))

	total, err := ledger.TotalEscrow()
	assert.Nil(t, err)
	assert.Equal(t, uint64(400), total)
}

func TestInsufficientFunds(t *testing.T) {
	setup(t)
	defer teardown()

	alice := ledger.AccountAddress(makeAccount(t))
	bob := ledger.AccountAddress(makeAccount(t))

	trx, err := storage.NewDBTransaction()
	if !assert.Nil(t, err) {
		return
	}
	assert.Nil(t, ledger.Credit(trx, alice, 10))
	assert.Equal(t, fault.InsufficientFunds, ledger.Transfer(trx, alice, bob, 11))
	assert.Equal(t, uint64(10), ledger.BalanceInTransaction(trx, alice), "failed transfer wrote nothing")
	assert.Equal(t, uint64(0), ledger.BalanceInTransaction(trx, bob))
	assert.Nil(t, ledger.Transfer(trx, alice, bob, 0), "zero transfer")
	assert.Nil(t, trx.Commit())
}

func TestDrain(t *testing.T) {
	setup(t)
	defer teardown()

	provider := ledger.AccountAddress(makeAccount(t))
	escrow := ledger.EscrowAddress(0)

	trx, err := storage.NewDBTransaction()
	if !assert.Nil(t, err) {
		return
	}
	assert.Nil(t, ledger.Credit(trx, escrow, 75))
	amount, err := ledger.Drain(trx, escrow, provider)
	assert.Nil(t, err)
	assert.Equal(t, uint64(75), amount)
	assert.Nil(t, trx.Commit())

	assert.Equal(t, uint64(75), ledger.Balance(provider))
	assert.Equal(t, uint64(0), ledger.Balance(escrow))
	assert.False(t, storage.Pool.Escrow.Has(escrowKey(0)), "zero balance is not stored")
}

func TestOverflow(t *testing.T) {
	setup(t)
	defer teardown()

	alice := ledger.AccountAddress(makeAccount(t))
	bob := ledger.AccountAddress(makeAccount(t))

	trx, err := storage.NewDBTransaction()
	if !assert.Nil(t, err) {
		return
	}
	assert.Nil(t, ledger.Credit(trx, alice, math.MaxUint64))
	assert.Equal(t, fault.BalanceOverflow, ledger.Credit(trx, alice, 1))
	assert.Nil(t, ledger.Credit(trx, bob, 1))
	assert.Equal(t, fault.BalanceOverflow, ledger.Transfer(trx, bob, alice, 1))
	assert.Equal(t, uint64(1), ledger.BalanceInTransaction(trx, bob))
	trx.Abort()
}

func escrowKey(id uint64) []byte {
	return []byte{0, 0, 0, 0, 0, 0, 0, byte(id)}
}
