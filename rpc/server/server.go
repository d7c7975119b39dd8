// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/clawswapd/barter"
	"github.com/bitmark-inc/clawswapd/counter"
	"github.com/bitmark-inc/clawswapd/market"
	"github.com/bitmark-inc/clawswapd/mode"
	"github.com/bitmark-inc/clawswapd/rpc/balance"
	rpcbarter "github.com/bitmark-inc/clawswapd/rpc/barter"
	"github.com/bitmark-inc/clawswapd/rpc/deal"
	"github.com/bitmark-inc/clawswapd/rpc/need"
	"github.com/bitmark-inc/clawswapd/rpc/node"
	"github.com/bitmark-inc/clawswapd/rpc/offer"
	"github.com/bitmark-inc/clawswapd/rpc/registry"
	"github.com/bitmark-inc/clawswapd/storage"
	"github.com/bitmark-inc/logger"
)

// Engines - the domain operations exposed over RPC
type Engines struct {
	Market    market.Market
	Barter    barter.Barter
	PublicKey func() []byte
}

// Create - a server with every RPC type registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, engines Engines) *rpc.Server {

	start := time.Now().UTC()
	readOnly := storage.IsReadOnly()

	server := rpc.NewServer()

	_ = server.Register(registry.New(log, mode.Is, mode.IsTesting, engines.Market, readOnly))
	_ = server.Register(need.New(log, mode.Is, mode.IsTesting, engines.Market, readOnly))
	_ = server.Register(offer.New(log, mode.Is, mode.IsTesting, engines.Market, readOnly))
	_ = server.Register(deal.New(log, mode.Is, mode.IsTesting, engines.Market, readOnly))
	_ = server.Register(rpcbarter.New(log, mode.Is, mode.IsTesting, engines.Barter, readOnly))
	_ = server.Register(balance.New(log, mode.Is, mode.IsTesting, engines.Market, readOnly))
	_ = server.Register(node.New(log, start, version, rpcCount, engines.PublicKey))

	return server
}
