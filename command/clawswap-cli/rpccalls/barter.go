// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/record"
	rpcbarter "github.com/bitmark-inc/clawswapd/rpc/barter"
	"github.com/bitmark-inc/clawswapd/transactionrecord"
)

// CreateBarter - propose an exchange, target nil for an open barter
func (client *Client) CreateBarter(offer string, want string, target *account.Account) (*rpcbarter.Reply, error) {
	r := &transactionrecord.BarterCreate{
		Initiator: client.Account(),
		Offer:     offer,
		Want:      want,
		Target:    target,
		Nonce:     nonce(),
	}
	if err := client.sign(r, func(s account.Signature) { r.Signature = s }); nil != err {
		return nil, err
	}

	var reply rpcbarter.Reply
	if err := client.call("Barter.Create", r, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AcceptBarter - become the counterpart
func (client *Client) AcceptBarter(barterId uint64) (*rpcbarter.Reply, error) {
	r := &transactionrecord.BarterAccept{
		BarterId: barterId,
		Caller:   client.Account(),
		Nonce:    nonce(),
	}
	if err := client.sign(r, func(s account.Signature) { r.Signature = s }); nil != err {
		return nil, err
	}

	var reply rpcbarter.Reply
	if err := client.call("Barter.Accept", r, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// DeliverBarter - deliver the caller's side
func (client *Client) DeliverBarter(barterId uint64, content string, hash string) (*rpcbarter.Reply, error) {
	r := &transactionrecord.BarterDeliver{
		BarterId: barterId,
		Caller:   client.Account(),
		Content:  content,
		Hash:     hash,
		Nonce:    nonce(),
	}
	if err := client.sign(r, func(s account.Signature) { r.Signature = s }); nil != err {
		return nil, err
	}

	var reply rpcbarter.Reply
	if err := client.call("Barter.SubmitDelivery", r, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ConfirmBarter - confirm the other side's delivery
func (client *Client) ConfirmBarter(barterId uint64) (*rpcbarter.Reply, error) {
	r := &transactionrecord.BarterConfirm{
		BarterId: barterId,
		Caller:   client.Account(),
		Nonce:    nonce(),
	}
	if err := client.sign(r, func(s account.Signature) { r.Signature = s }); nil != err {
		return nil, err
	}

	var reply rpcbarter.Reply
	if err := client.call("Barter.ConfirmSide", r, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// CancelBarter - withdraw an open barter
func (client *Client) CancelBarter(barterId uint64) (*rpcbarter.Reply, error) {
	r := &transactionrecord.BarterCancel{
		BarterId:  barterId,
		Initiator: client.Account(),
		Nonce:     nonce(),
	}
	if err := client.sign(r, func(s account.Signature) { r.Signature = s }); nil != err {
		return nil, err
	}

	var reply rpcbarter.Reply
	if err := client.call("Barter.Cancel", r, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// DisputeBarter - end an exchange in dispute
func (client *Client) DisputeBarter(barterId uint64, reason string) (*rpcbarter.Reply, error) {
	r := &transactionrecord.BarterDispute{
		BarterId: barterId,
		Caller:   client.Account(),
		Reason:   reason,
		Nonce:    nonce(),
	}
	if err := client.sign(r, func(s account.Signature) { r.Signature = s }); nil != err {
		return nil, err
	}

	var reply rpcbarter.Reply
	if err := client.call("Barter.Dispute", r, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetBarter - one barter
func (client *Client) GetBarter(id uint64) (*record.Barter, error) {
	var reply record.Barter
	if err := client.call("Barter.Get", &rpcbarter.GetArguments{Id: id}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListBarters - barters where participant is on either side
func (client *Client) ListBarters(participant *account.Account, start uint64, count int) (*rpcbarter.ListReply, error) {
	arguments := &rpcbarter.ListByParticipantArguments{
		Participant: participant,
		Start:       start,
		Count:       count,
	}
	var reply rpcbarter.ListReply
	if err := client.call("Barter.ListByParticipant", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
