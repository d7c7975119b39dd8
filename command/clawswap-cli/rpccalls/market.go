// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/record"
	"github.com/bitmark-inc/clawswapd/registry"
	"github.com/bitmark-inc/clawswapd/rpc/balance"
	"github.com/bitmark-inc/clawswapd/rpc/deal"
	"github.com/bitmark-inc/clawswapd/rpc/need"
	"github.com/bitmark-inc/clawswapd/rpc/offer"
	rpcregistry "github.com/bitmark-inc/clawswapd/rpc/registry"
	"github.com/bitmark-inc/clawswapd/transactionrecord"
)

// NeedData - fields of a new need
type NeedData struct {
	Title       string
	Description string
	Category    string
	Budget      uint64
	Deadline    int64
}

// InitialiseRegistry - name the client's account as arbitration authority
func (client *Client) InitialiseRegistry() (*rpcregistry.InitialiseReply, error) {
	r := &transactionrecord.RegistryInitialise{
		Authority: client.Account(),
		Nonce:     nonce(),
	}
	if err := client.sign(r, func(s account.Signature) { r.Signature = s }); nil != err {
		return nil, err
	}

	var reply rpcregistry.InitialiseReply
	if err := client.call("Registry.Initialise", r, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// RegistryInfo - the authority and counters
func (client *Client) RegistryInfo() (*registry.Registry, error) {
	var reply registry.Registry
	if err := client.call("Registry.Info", &rpcregistry.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// CreateNeed - post a need
func (client *Client) CreateNeed(data *NeedData) (*need.Reply, error) {
	r := &transactionrecord.NeedCreate{
		Creator:     client.Account(),
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		Budget:      data.Budget,
		Deadline:    data.Deadline,
		Nonce:       nonce(),
	}
	if err := client.sign(r, func(s account.Signature) { r.Signature = s }); nil != err {
		return nil, err
	}

	var reply need.Reply
	if err := client.call("Need.Create", r, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// CancelNeed - withdraw an open need
func (client *Client) CancelNeed(needId uint64) (*need.Reply, error) {
	r := &transactionrecord.NeedCancel{
		NeedId:  needId,
		Creator: client.Account(),
		Nonce:   nonce(),
	}
	if err := client.sign(r, func(s account.Signature) { r.Signature = s }); nil != err {
		return nil, err
	}

	var reply need.Reply
	if err := client.call("Need.Cancel", r, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetNeed - one need
func (client *Client) GetNeed(id uint64) (*record.Need, error) {
	var reply record.Need
	if err := client.call("Need.Get", &need.GetArguments{Id: id}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListNeeds - a page of needs, either by creator or by optional status
func (client *Client) ListNeeds(creator *account.Account, status *record.NeedStatus, start uint64, count int) (*need.ListReply, error) {
	var reply need.ListReply
	if nil != creator {
		arguments := &need.ListByCreatorArguments{
			Creator: creator,
			Start:   start,
			Count:   count,
		}
		if err := client.call("Need.ListByCreator", arguments, &reply); nil != err {
			return nil, err
		}
		return &reply, nil
	}

	arguments := &need.ListArguments{
		Start:  start,
		Count:  count,
		Status: status,
	}
	if err := client.call("Need.List", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// CreateOffer - respond to a need
func (client *Client) CreateOffer(needId uint64, price uint64, message string) (*offer.Reply, error) {
	r := &transactionrecord.OfferCreate{
		NeedId:   needId,
		Provider: client.Account(),
		Price:    price,
		Message:  message,
		Nonce:    nonce(),
	}
	if err := client.sign(r, func(s account.Signature) { r.Signature = s }); nil != err {
		return nil, err
	}

	var reply offer.Reply
	if err := client.call("Offer.Create", r, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// CancelOffer - withdraw a pending offer
func (client *Client) CancelOffer(offerId uint64) (*offer.Reply, error) {
	r := &transactionrecord.OfferCancel{
		OfferId:  offerId,
		Provider: client.Account(),
		Nonce:    nonce(),
	}
	if err := client.sign(r, func(s account.Signature) { r.Signature = s }); nil != err {
		return nil, err
	}

	var reply offer.Reply
	if err := client.call("Offer.Cancel", r, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetOffer - one offer
func (client *Client) GetOffer(id uint64) (*record.Offer, error) {
	var reply record.Offer
	if err := client.call("Offer.Get", &offer.GetArguments{Id: id}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListOffers - a page of offers, by provider if given, otherwise for a need
func (client *Client) ListOffers(provider *account.Account, needId uint64, start uint64, count int) (*offer.ListReply, error) {
	var reply offer.ListReply
	if nil != provider {
		arguments := &offer.ListByProviderArguments{
			Provider: provider,
			Start:    start,
			Count:    count,
		}
		if err := client.call("Offer.ListByProvider", arguments, &reply); nil != err {
			return nil, err
		}
		return &reply, nil
	}

	arguments := &offer.ListArguments{
		NeedId: needId,
		Start:  start,
		Count:  count,
	}
	if err := client.call("Offer.List", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AcceptOffer - turn an offer into a deal, funding the escrow
func (client *Client) AcceptOffer(needId uint64, offerId uint64) (*deal.Reply, error) {
	r := &transactionrecord.DealAccept{
		NeedId:  needId,
		OfferId: offerId,
		Client:  client.Account(),
		Nonce:   nonce(),
	}
	if err := client.sign(r, func(s account.Signature) { r.Signature = s }); nil != err {
		return nil, err
	}

	var reply deal.Reply
	if err := client.call("Deal.Accept", r, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// SubmitDelivery - provider delivers
func (client *Client) SubmitDelivery(dealId uint64, hash string, content string) (*deal.Reply, error) {
	r := &transactionrecord.DealDeliver{
		DealId:   dealId,
		Provider: client.Account(),
		Hash:     hash,
		Content:  content,
		Nonce:    nonce(),
	}
	if err := client.sign(r, func(s account.Signature) { r.Signature = s }); nil != err {
		return nil, err
	}

	var reply deal.Reply
	if err := client.call("Deal.SubmitDelivery", r, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ConfirmDelivery - client releases the escrow
func (client *Client) ConfirmDelivery(dealId uint64) (*deal.Reply, error) {
	r := &transactionrecord.DealConfirm{
		DealId: dealId,
		Client: client.Account(),
		Nonce:  nonce(),
	}
	if err := client.sign(r, func(s account.Signature) { r.Signature = s }); nil != err {
		return nil, err
	}

	var reply deal.Reply
	if err := client.call("Deal.ConfirmDelivery", r, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// RaiseDispute - either party disputes
func (client *Client) RaiseDispute(dealId uint64, reason string) (*deal.Reply, error) {
	r := &transactionrecord.DealDispute{
		DealId: dealId,
		Caller: client.Account(),
		Reason: reason,
		Nonce:  nonce(),
	}
	if err := client.sign(r, func(s account.Signature) { r.Signature = s }); nil != err {
		return nil, err
	}

	var reply deal.Reply
	if err := client.call("Deal.RaiseDispute", r, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ResolveDispute - authority settles a dispute
func (client *Client) ResolveDispute(dealId uint64, resolution record.Resolution) (*deal.Reply, error) {
	r := &transactionrecord.DealResolve{
		DealId:     dealId,
		Authority:  client.Account(),
		Resolution: resolution,
		Nonce:      nonce(),
	}
	if err := client.sign(r, func(s account.Signature) { r.Signature = s }); nil != err {
		return nil, err
	}

	var reply deal.Reply
	if err := client.call("Deal.ResolveDispute", r, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetDeal - one deal and its escrow
func (client *Client) GetDeal(id uint64) (*deal.GetReply, error) {
	var reply deal.GetReply
	if err := client.call("Deal.Get", &deal.GetArguments{Id: id}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListDeals - deals where party is client or provider
func (client *Client) ListDeals(party *account.Account, start uint64, count int) (*deal.ListReply, error) {
	arguments := &deal.ListByPartyArguments{
		Party: party,
		Start: start,
		Count: count,
	}
	var reply deal.ListReply
	if err := client.call("Deal.ListByParty", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetBalance - spendable funds of an account
func (client *Client) GetBalance(acc *account.Account) (*balance.Reply, error) {
	var reply balance.Reply
	if err := client.call("Balance.Get", &balance.GetArguments{Account: acc}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Credit - fund the client account on a test chain
func (client *Client) Credit(amount uint64) (*balance.CreditReply, error) {
	r := &transactionrecord.BalanceCredit{
		Account: client.Account(),
		Amount:  amount,
		Nonce:   nonce(),
	}
	if err := client.sign(r, func(s account.Signature) { r.Signature = s }); nil != err {
		return nil, err
	}

	var reply balance.CreditReply
	if err := client.call("Balance.Credit", r, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
