// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the single fungible balance unit
//
// Every holder of funds is an Address: an account's spendable balance
// lives in the Balances pool and a deal's custody lives in the Escrow
// pool under the deal id.  A missing key is a zero balance and a zero
// balance is never stored.
package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/storage"
)

// Address - a (pool, key) pair that can hold funds
type Address struct {
	pool *storage.PoolHandle
	key  []byte
}

// AccountAddress - spendable balance of an account
func AccountAddress(acc *account.Account) Address {
	return Address{
		pool: storage.Pool.Balances,
		key:  acc.Bytes(),
	}
}

// EscrowAddress - custody held by a deal
func EscrowAddress(dealId uint64) Address {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, dealId)
	return Address{
		pool: storage.Pool.Escrow,
		key:  key,
	}
}

// Balance - committed amount held at an address
func Balance(address Address) uint64 {
	n, _ := address.pool.GetN(address.key)
	return n
}

// BalanceInTransaction - amount including pending writes of trx
func BalanceInTransaction(trx storage.Transaction, address Address) uint64 {
	n, _ := trx.GetN(address.pool, address.key)
	return n
}

// Credit - add newly created funds to an address
func Credit(trx storage.Transaction, address Address, amount uint64) error {
	balance := BalanceInTransaction(trx, address)
	if balance+amount < balance {
		return fault.BalanceOverflow
	}
	set(trx, address, balance+amount)
	return nil
}

// Transfer - move funds between two addresses
//
// nothing is written unless the whole transfer succeeds
func Transfer(trx storage.Transaction, from Address, to Address, amount uint64) error {
	if 0 == amount {
		return nil
	}

	fromBalance := BalanceInTransaction(trx, from)
	if fromBalance < amount {
		return fault.InsufficientFunds
	}

	toBalance := BalanceInTransaction(trx, to)
	if toBalance+amount < toBalance {
		return fault.BalanceOverflow
	}

	set(trx, from, fromBalance-amount)
	set(trx, to, toBalance+amount)
	return nil
}

// Drain - move the entire balance of from to to, returning the amount
func Drain(trx storage.Transaction, from Address, to Address) (uint64, error) {
	amount := BalanceInTransaction(trx, from)
	err := Transfer(trx, from, to, amount)
	if nil != err {
		return 0, err
	}
	return amount, nil
}

// TotalEscrow - sum of all committed deal custody
func TotalEscrow() (uint64, error) {
	total := uint64(0)
	err := storage.Pool.Escrow.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 8 != len(value) {
			return fault.RecordTruncated
		}
		total += binary.BigEndian.Uint64(value)
		return nil
	})
	return total, err
}

func set(trx storage.Transaction, address Address, amount uint64) {
	if 0 == amount {
		trx.Delete(address.pool, address.key)
		return
	}
	trx.PutN(address.pool, address.key, amount)
}
