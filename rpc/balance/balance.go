// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/ledger"
	"github.com/bitmark-inc/clawswapd/market"
	"github.com/bitmark-inc/clawswapd/mode"
	"github.com/bitmark-inc/clawswapd/rpc/ratelimit"
	"github.com/bitmark-inc/clawswapd/transactionrecord"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitBalance = 200
	rateBurstBalance = 100

	// crediting is slow so a test chain cannot be flooded
	rateLimitCredit = 2
	rateBurstCredit = 5
)

// Balance - type for the RPC
type Balance struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	CreditLimiter  *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Market         market.Market
	ReadOnly       bool
}

// New - create the Balance RPC handler
func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	isTestingChain func() bool,
	m market.Market,
	readOnly bool,
) *Balance {
	return &Balance{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitBalance, rateBurstBalance),
		CreditLimiter:  rate.NewLimiter(rateLimitCredit, rateBurstCredit),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		Market:         m,
		ReadOnly:       readOnly,
	}
}

// GetArguments - account to query
type GetArguments struct {
	Account *account.Account `json:"account"`
}

// Reply - an account's spendable funds
type Reply struct {
	Account *account.Account `json:"account"`
	Balance uint64           `json:"balance,string"`
}

// Get - current balance of an account
func (b *Balance) Get(arguments *GetArguments, reply *Reply) error {
	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Account {
		return fault.MissingParameters
	}

	reply.Account = arguments.Account
	reply.Balance = ledger.Balance(ledger.AccountAddress(arguments.Account))
	return nil
}

// CreditReply - result of funding an account
type CreditReply struct {
	TxId    transactionrecord.TxId `json:"txId"`
	Account *account.Account       `json:"account"`
	Balance uint64                 `json:"balance,string"`
}

// Credit - add funds to an account, test and local chains only
func (b *Balance) Credit(arguments *transactionrecord.BalanceCredit, reply *CreditReply) error {
	if err := ratelimit.Limit(b.CreditLimiter); nil != err {
		return err
	}
	if b.ReadOnly {
		return fault.NotAvailableInReadOnlyMode
	}
	if nil == arguments || nil == arguments.Account {
		return fault.MissingParameters
	}

	b.Log.Infof("Balance.Credit: %+v", arguments)

	if !b.IsTestingChain() {
		return fault.NotAvailableOnLiveChain
	}
	if !b.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	txId, err := transactionrecord.Verify(arguments, true)
	if nil != err {
		return err
	}

	balance, err := b.Market.Credit(txId, arguments.Account, arguments.Amount)
	if nil != err {
		return err
	}

	reply.TxId = *txId
	reply.Account = arguments.Account
	reply.Balance = balance
	return nil
}
