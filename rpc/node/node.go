// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/counter"
	"github.com/bitmark-inc/clawswapd/eventlog"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/market"
	"github.com/bitmark-inc/clawswapd/mode"
	"github.com/bitmark-inc/clawswapd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	PublicKey func() []byte
	counter   *counter.Counter
}

// New - create the Node RPC handler
//
// publicKey gives the event publisher's CURVE key, nil if not publishing
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, publicKey func() []byte) *Node {
	return &Node{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		PublicKey: publicKey,
		counter:   counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain     string `json:"chain"`
	Mode      string `json:"mode"`
	RPCs      uint64 `json:"rpcs"`
	Events    uint64 `json:"events,string"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	PublicKey string `json:"publicKey,omitempty"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.RPCs = node.counter.Uint64()
	reply.Events = eventlog.NextSequence()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	if nil != node.PublicKey {
		if key := node.PublicKey(); nil != key {
			reply.PublicKey = hex.EncodeToString(key)
		}
	}
	return nil
}

// ---

// StatsArguments - empty arguments for stats request
type StatsArguments struct{}

// Stats - marketplace totals
func (node *Node) Stats(_ *StatsArguments, reply *market.Stats) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	stats, err := market.GetStats()
	if nil != err {
		return err
	}
	*reply = *stats
	return nil
}

// ---

// ProfileArguments - account to summarise
type ProfileArguments struct {
	Account *account.Account `json:"account"`
}

// Profile - an account's balance and activity
func (node *Node) Profile(arguments *ProfileArguments, reply *market.Profile) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Account {
		return fault.MissingParameters
	}

	profile, err := market.GetProfile(arguments.Account)
	if nil != err {
		return err
	}
	*reply = *profile
	return nil
}

// ---

// EventsArguments - a page of the event log
type EventsArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// EventsReply - recorded events and the sequence to continue from
type EventsReply struct {
	Events    []eventlog.Entry `json:"events"`
	NextStart uint64           `json:"nextStart,string"`
}

// Events - recorded events from a sequence number
func (node *Node) Events(arguments *EventsArguments, reply *EventsReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(node.Limiter, arguments.Count, eventlog.MaximumFetchCount); nil != err {
		return err
	}

	events, err := eventlog.Fetch(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Events = events
	reply.NextStart = arguments.Start
	if len(events) > 0 {
		reply.NextStart = events[len(events)-1].Sequence + 1
	}
	return nil
}
