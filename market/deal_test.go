// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/event"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/ledger"
	"github.com/bitmark-inc/clawswapd/market"
	"github.com/bitmark-inc/clawswapd/record"
	"github.com/bitmark-inc/clawswapd/registry"
)

func balance(acc *account.Account) uint64 {
	return ledger.Balance(ledger.AccountAddress(acc))
}

func escrow(dealId uint64) uint64 {
	return ledger.Balance(ledger.EscrowAddress(dealId))
}

// client funded, one need and one pending offer
func openDeal(t *testing.T, f *fixture, price uint64) (*account.Account, *account.Account, *record.Deal) {
	client := makeAccount(t)
	provider := makeAccount(t)
	f.fund(t, client, 1000)

	need, err := f.engine.CreateNeed(nil, client, "logo", "", "", price, 0)
	if nil != err {
		t.Fatalf("create need error: %s", err)
	}
	offer, err := f.engine.CreateOffer(nil, need.Id, provider, price, "")
	if nil != err {
		t.Fatalf("create offer error: %s", err)
	}
	deal, err := f.engine.AcceptOffer(nil, need.Id, offer.Id, client)
	if nil != err {
		t.Fatalf("accept offer error: %s", err)
	}
	return client, provider, deal
}

func TestHappyPath(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	client, provider, deal := openDeal(t, f, 300)

	assert.Equal(t, record.DealInProgress, deal.Status, "wrong deal status")
	assert.Equal(t, uint64(300), deal.Amount, "wrong amount")
	assert.Equal(t, uint64(700), balance(client), "wrong client balance")
	assert.Equal(t, uint64(300), escrow(deal.Id), "wrong escrow")

	need, _ := record.GetNeed(record.Committed, deal.NeedId)
	assert.Equal(t, record.NeedInProgress, need.Status, "wrong need status")
	offer, _ := record.GetOffer(record.Committed, deal.OfferId)
	assert.Equal(t, record.OfferAccepted, offer.Status, "wrong offer status")

	_, err := f.engine.ConfirmDelivery(nil, deal.Id, client)
	assert.Equal(t, fault.DeliveryNotSubmitted, err, "confirm before delivery")

	_, err = f.engine.SubmitDelivery(nil, deal.Id, client, "h", "c")
	assert.Equal(t, fault.NotProvider, err, "wrong deliverer error")

	delivered, err := f.engine.SubmitDelivery(nil, deal.Id, provider, "sha256:abc", "https://example.com/logo.png")
	assert.Nil(t, err, "wrong delivery error")
	assert.Equal(t, record.DealDeliverySubmitted, delivered.Status, "wrong deal status")

	_, err = f.engine.SubmitDelivery(nil, deal.Id, provider, "h", "c")
	assert.Equal(t, fault.DealNotInProgress, err, "wrong repeat delivery error")

	_, err = f.engine.ConfirmDelivery(nil, deal.Id, provider)
	assert.Equal(t, fault.NotClient, err, "wrong confirmer error")

	completed, err := f.engine.ConfirmDelivery(nil, deal.Id, client)
	assert.Nil(t, err, "wrong confirm error")
	assert.Equal(t, record.DealCompleted, completed.Status, "wrong deal status")
	assert.Equal(t, "sha256:abc", completed.DeliveryHash, "wrong hash")

	assert.Equal(t, uint64(700), balance(client), "wrong client balance")
	assert.Equal(t, uint64(300), balance(provider), "wrong provider balance")
	assert.Equal(t, uint64(0), escrow(deal.Id), "escrow not released")

	need, _ = record.GetNeed(record.Committed, deal.NeedId)
	assert.Equal(t, record.NeedCompleted, need.Status, "wrong need status")

	_, err = f.engine.ConfirmDelivery(nil, deal.Id, client)
	assert.Equal(t, fault.DeliveryNotSubmitted, err, "second settlement")
	assert.Equal(t, uint64(300), balance(provider), "paid twice")

	assert.Equal(t, []string{
		"NeedCreated",
		"OfferCreated",
		"DealCreated",
		"DeliverySubmitted",
		"DeliveryConfirmed",
	}, f.eventNames())
	assert.Equal(t, event.DeliveryConfirmed{DealId: deal.Id, Client: client, Provider: provider, Amount: 300}, f.events[4])
}

func TestNoCancelOrDisputeOutOfState(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	client, provider, deal := openDeal(t, f, 300)

	_, err := f.engine.CancelNeed(nil, deal.NeedId, client)
	assert.Equal(t, fault.NeedNotOpen, err, "cancelled need with a deal")

	need, _ := record.GetNeed(record.Committed, deal.NeedId)
	assert.Equal(t, record.NeedInProgress, need.Status, "wrong need status")
	assert.Equal(t, uint64(300), escrow(deal.Id), "wrong escrow")
	assert.Equal(t, uint64(700), balance(client), "wrong client balance")

	_, err = f.engine.SubmitDelivery(nil, deal.Id, provider, "h", "c")
	assert.Nil(t, err, "wrong delivery error")
	_, err = f.engine.ConfirmDelivery(nil, deal.Id, client)
	assert.Nil(t, err, "wrong confirm error")

	_, err = f.engine.RaiseDispute(nil, deal.Id, client, "too late")
	assert.Equal(t, fault.DealNotDisputable, err, "disputed completed deal")

	completed, _ := record.GetDeal(record.Committed, deal.Id)
	assert.Equal(t, record.DealCompleted, completed.Status, "wrong deal status")
	assert.Equal(t, uint64(300), balance(provider), "wrong provider balance")

	assert.Equal(t, []string{
		"NeedCreated",
		"OfferCreated",
		"DealCreated",
		"DeliverySubmitted",
		"DeliveryConfirmed",
	}, f.eventNames())
}

func TestAcceptOfferInsufficientFunds(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	client := makeAccount(t)
	provider := makeAccount(t)
	f.fund(t, client, 100)

	need, _ := f.engine.CreateNeed(nil, client, "logo", "", "", 0, 0)
	offer, _ := f.engine.CreateOffer(nil, need.Id, provider, 101, "")

	_, err := f.engine.AcceptOffer(nil, need.Id, offer.Id, client)
	assert.Equal(t, fault.InsufficientFunds, err, "wrong error")

	assert.Equal(t, uint64(100), balance(client), "funds moved")
	assert.Equal(t, uint64(0), escrow(0), "escrow written")

	need, _ = record.GetNeed(record.Committed, need.Id)
	assert.Equal(t, record.NeedOpen, need.Status, "need changed")
	offer, _ = record.GetOffer(record.Committed, offer.Id)
	assert.Equal(t, record.OfferPending, offer.Status, "offer changed")

	_, err = record.GetDeal(record.Committed, 0)
	assert.Equal(t, fault.DealNotFound, err, "deal written")

	r, _ := registry.Get()
	assert.Equal(t, uint64(0), r.DealCounter, "deal counter moved")
	assert.Equal(t, []string{"NeedCreated", "OfferCreated"}, f.eventNames())
}

func TestAcceptOfferChecks(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	client := makeAccount(t)
	provider := makeAccount(t)
	f.fund(t, client, 1000)

	need, _ := f.engine.CreateNeed(nil, client, "one", "", "", 0, 0)
	other, _ := f.engine.CreateNeed(nil, client, "two", "", "", 0, 0)
	offer, _ := f.engine.CreateOffer(nil, need.Id, provider, 10, "")
	otherOffer, _ := f.engine.CreateOffer(nil, other.Id, provider, 10, "")

	_, err := f.engine.AcceptOffer(nil, need.Id, otherOffer.Id, client)
	assert.Equal(t, fault.OfferNeedMismatch, err, "wrong mismatch error")

	_, err = f.engine.AcceptOffer(nil, need.Id, offer.Id, provider)
	assert.Equal(t, fault.NotNeedCreator, err, "wrong acceptor error")

	_, err = f.engine.AcceptOffer(nil, need.Id, 42, client)
	assert.Equal(t, fault.OfferNotFound, err, "wrong missing offer error")

	_, err = f.engine.AcceptOffer(nil, need.Id, offer.Id, client)
	assert.Nil(t, err, "wrong accept error")

	second, _ := f.engine.CreateOffer(nil, other.Id, provider, 10, "")
	_, err = f.engine.CancelOffer(nil, second.Id, provider)
	assert.Nil(t, err, "wrong cancel error")
	_, err = f.engine.AcceptOffer(nil, other.Id, second.Id, client)
	assert.Equal(t, fault.OfferNotPending, err, "accepted cancelled offer")

	_, err = f.engine.AcceptOffer(nil, need.Id, offer.Id, client)
	assert.Equal(t, fault.NeedNotOpen, err, "accepted twice")
	assert.Equal(t, uint64(990), balance(client), "wrong client balance")
}

func TestDisputeRefund(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	client, provider, deal := openDeal(t, f, 250)
	outsider := makeAccount(t)

	_, err := f.engine.RaiseDispute(nil, deal.Id, outsider, "bad")
	assert.Equal(t, fault.NotDealParticipant, err, "wrong outsider error")

	_, err = f.engine.RaiseDispute(nil, deal.Id, client, strings.Repeat("r", 257))
	assert.Equal(t, fault.DisputeReasonTooLong, err, "wrong length error")

	_, err = f.engine.ResolveDispute(nil, deal.Id, f.authority, record.RefundClient)
	assert.Equal(t, fault.DealNotDisputed, err, "resolved undisputed deal")

	disputed, err := f.engine.RaiseDispute(nil, deal.Id, client, "no delivery")
	assert.Nil(t, err, "wrong dispute error")
	assert.Equal(t, record.DealDisputed, disputed.Status, "wrong status")
	assert.Equal(t, "no delivery", disputed.DisputeReason, "wrong reason")

	_, err = f.engine.RaiseDispute(nil, deal.Id, provider, "again")
	assert.Equal(t, fault.DealNotDisputable, err, "disputed twice")

	_, err = f.engine.SubmitDelivery(nil, deal.Id, provider, "h", "c")
	assert.Equal(t, fault.DealNotInProgress, err, "delivered while disputed")

	_, err = f.engine.ResolveDispute(nil, deal.Id, client, record.RefundClient)
	assert.Equal(t, fault.NotAuthority, err, "wrong authority error")

	_, err = f.engine.ResolveDispute(nil, deal.Id, f.authority, record.Resolution(9))
	assert.Equal(t, fault.InvalidResolution, err, "wrong resolution error")

	resolved, err := f.engine.ResolveDispute(nil, deal.Id, f.authority, record.RefundClient)
	assert.Nil(t, err, "wrong resolve error")
	assert.Equal(t, record.DealCancelled, resolved.Status, "wrong deal status")

	need, _ := record.GetNeed(record.Committed, deal.NeedId)
	assert.Equal(t, record.NeedCancelled, need.Status, "wrong need status")

	assert.Equal(t, uint64(1000), balance(client), "client not refunded")
	assert.Equal(t, uint64(0), balance(provider), "provider paid")
	assert.Equal(t, uint64(0), escrow(deal.Id), "escrow not released")

	_, err = f.engine.ResolveDispute(nil, deal.Id, f.authority, record.PayProvider)
	assert.Equal(t, fault.DealNotDisputed, err, "settled twice")

	n := len(f.events)
	assert.Equal(t, event.DisputeResolved{DealId: deal.Id, Resolution: record.RefundClient, Amount: 250}, f.events[n-1])
}

func TestDisputePayProvider(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	client, provider, deal := openDeal(t, f, 400)

	_, err := f.engine.SubmitDelivery(nil, deal.Id, provider, "h", "c")
	assert.Nil(t, err, "wrong delivery error")

	_, err = f.engine.RaiseDispute(nil, deal.Id, provider, "client silent")
	assert.Nil(t, err, "wrong dispute error")

	_, err = f.engine.ConfirmDelivery(nil, deal.Id, client)
	assert.Equal(t, fault.DeliveryNotSubmitted, err, "confirmed while disputed")

	resolved, err := f.engine.ResolveDispute(nil, deal.Id, f.authority, record.PayProvider)
	assert.Nil(t, err, "wrong resolve error")
	assert.Equal(t, record.DealCompleted, resolved.Status, "wrong deal status")

	need, _ := record.GetNeed(record.Committed, deal.NeedId)
	assert.Equal(t, record.NeedCompleted, need.Status, "wrong need status")

	assert.Equal(t, uint64(600), balance(client), "wrong client balance")
	assert.Equal(t, uint64(400), balance(provider), "provider not paid")
}

func TestDeliveryLimits(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	_, provider, deal := openDeal(t, f, 1)

	_, err := f.engine.SubmitDelivery(nil, deal.Id, provider, "h", strings.Repeat("c", 513))
	assert.Equal(t, fault.DeliveryContentTooLong, err, "wrong content error")

	_, err = f.engine.SubmitDelivery(nil, deal.Id, provider, strings.Repeat("h", 65), "c")
	assert.Equal(t, fault.DeliveryHashTooLong, err, "wrong hash error")

	_, err = f.engine.SubmitDelivery(nil, 17, provider, "h", "c")
	assert.Equal(t, fault.DealNotFound, err, "wrong missing deal error")
}

// funds are never created or destroyed by deal operations
func TestEscrowConservation(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	c1, p1, d1 := openDeal(t, f, 100)
	c2, p2, d2 := openDeal(t, f, 200)
	c3, p3, d3 := openDeal(t, f, 300)

	total := func() uint64 {
		held, err := ledger.TotalEscrow()
		assert.Nil(t, err, "wrong escrow error")
		return held + balance(c1) + balance(c2) + balance(c3) + balance(p1) + balance(p2) + balance(p3)
	}
	assert.Equal(t, uint64(3000), total(), "after accept")

	_, _ = f.engine.SubmitDelivery(nil, d1.Id, p1, "h", "c")
	_, _ = f.engine.ConfirmDelivery(nil, d1.Id, c1)
	assert.Equal(t, uint64(3000), total(), "after confirm")

	_, _ = f.engine.RaiseDispute(nil, d2.Id, c2, "late")
	_, _ = f.engine.ResolveDispute(nil, d2.Id, f.authority, record.RefundClient)
	assert.Equal(t, uint64(3000), total(), "after refund")

	stats, err := market.GetStats()
	assert.Nil(t, err, "wrong stats error")
	assert.Equal(t, uint64(300), stats.Escrow, "wrong held escrow")
	assert.Equal(t, uint64(3), stats.Deals, "wrong deal count")
	assert.Equal(t, uint64(1), stats.ByState.Completed, "wrong completed needs")
	assert.Equal(t, uint64(1), stats.ByState.Cancelled, "wrong cancelled needs")
	assert.Equal(t, uint64(1), stats.ByState.InProgress, "wrong in progress needs")
	assert.Equal(t, uint64(300), escrow(d3.Id), "wrong remaining escrow")

	profile, err := market.GetProfile(p1)
	assert.Nil(t, err, "wrong profile error")
	assert.Equal(t, uint64(100), profile.Balance, "wrong profile balance")
	assert.Equal(t, 1, profile.Offers, "wrong profile offers")
	assert.Equal(t, 0, profile.DealsAsClient, "wrong client deals")
	assert.Equal(t, 1, profile.DealsAsProvider, "wrong provider deals")

	profile, err = market.GetProfile(c3)
	assert.Nil(t, err, "wrong profile error")
	assert.Equal(t, 1, profile.Needs, "wrong profile needs")
	assert.Equal(t, 1, profile.DealsAsClient, "wrong client deals")
}

func TestCredit(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	alice := makeAccount(t)

	total, err := f.engine.Credit(nil, alice, 10)
	assert.Nil(t, err, "wrong credit error")
	assert.Equal(t, uint64(10), total, "wrong balance")

	_, err = f.engine.Credit(nil, alice, ^uint64(0))
	assert.Equal(t, fault.BalanceOverflow, err, "wrong overflow error")
	assert.Equal(t, uint64(10), balance(alice), "overflow changed balance")

	_, err = f.engine.InitialiseRegistry(nil, alice)
	assert.Equal(t, fault.AlreadyInitialised, err, "wrong reinitialise error")
}
