// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/market"
	"github.com/bitmark-inc/clawswapd/rpc/node"
)

// GetInfo - daemon status
func (client *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetStats - marketplace totals
func (client *Client) GetStats() (*market.Stats, error) {
	var reply market.Stats
	if err := client.call("Node.Stats", &node.StatsArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetProfile - activity summary of an account
func (client *Client) GetProfile(acc *account.Account) (*market.Profile, error) {
	var reply market.Profile
	if err := client.call("Node.Profile", &node.ProfileArguments{Account: acc}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetEvents - a page of the event log
func (client *Client) GetEvents(start uint64, count int) (*node.EventsReply, error) {
	var reply node.EventsReply
	if err := client.call("Node.Events", &node.EventsArguments{Start: start, Count: count}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
