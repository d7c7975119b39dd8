// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/market"
	"github.com/bitmark-inc/clawswapd/mode"
	"github.com/bitmark-inc/clawswapd/registry"
	"github.com/bitmark-inc/clawswapd/rpc/ratelimit"
	"github.com/bitmark-inc/clawswapd/transactionrecord"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitRegistry = 200
	rateBurstRegistry = 100
)

// Registry - type for the RPC
type Registry struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Market         market.Market
	ReadOnly       bool
}

// New - create the Registry RPC handler
func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	isTestingChain func() bool,
	m market.Market,
	readOnly bool,
) *Registry {
	return &Registry{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		Market:         m,
		ReadOnly:       readOnly,
	}
}

// InitialiseReply - the new registry
type InitialiseReply struct {
	TxId     transactionrecord.TxId `json:"txId"`
	Registry *registry.Registry     `json:"registry"`
}

// Initialise - create the registry naming the arbitration authority
func (r *Registry) Initialise(arguments *transactionrecord.RegistryInitialise, reply *InitialiseReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if r.ReadOnly {
		return fault.NotAvailableInReadOnlyMode
	}
	if nil == arguments || nil == arguments.Authority {
		return fault.MissingParameters
	}

	r.Log.Infof("Registry.Initialise: %+v", arguments)

	if !r.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	txId, err := transactionrecord.Verify(arguments, r.IsTestingChain())
	if nil != err {
		return err
	}

	result, err := r.Market.InitialiseRegistry(txId, arguments.Authority)
	if nil != err {
		return err
	}

	reply.TxId = *txId
	reply.Registry = result
	return nil
}

// InfoArguments - no parameters
type InfoArguments struct{}

// Info - the authority and the id counters
func (r *Registry) Info(arguments *InfoArguments, reply *registry.Registry) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	result, err := registry.Get()
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}
