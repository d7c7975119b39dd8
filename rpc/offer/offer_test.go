// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offer_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clawswapd/event"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/market"
	"github.com/bitmark-inc/clawswapd/mode"
	"github.com/bitmark-inc/clawswapd/record"
	"github.com/bitmark-inc/clawswapd/rpc/fixtures"
	"github.com/bitmark-inc/clawswapd/rpc/mocks"
	"github.com/bitmark-inc/clawswapd/rpc/offer"
	"github.com/bitmark-inc/clawswapd/transactionrecord"
	"github.com/bitmark-inc/logger"
)

func normal(mode.Mode) bool { return true }
func isTesting() bool       { return true }

func TestOfferCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	key := fixtures.TestKey()
	arguments := transactionrecord.OfferCreate{
		NeedId:   7,
		Provider: key.Account(),
		Price:    250,
		Message:  "can do",
		Nonce:    1,
	}
	message, _ := arguments.Pack(key.Account())
	arguments.Signature = key.Sign(message)
	packed, _ := arguments.Pack(key.Account())
	txId := packed.TxId()

	created := &record.Offer{
		Id:       3,
		NeedId:   7,
		Provider: key.Account(),
		Price:    250,
		Message:  "can do",
		Status:   record.OfferPending,
	}

	m := mocks.NewMockMarket(ctl)
	m.EXPECT().CreateOffer(&txId, uint64(7), key.Account(), uint64(250), "can do").Return(created, nil).Times(1)

	o := offer.New(logger.New(fixtures.LogCategory), normal, isTesting, m, false)

	var reply offer.Reply
	err := o.Create(&arguments, &reply)
	assert.Nil(t, err, "wrong Create")
	assert.Equal(t, txId, reply.TxId, "wrong tx id")
	assert.Equal(t, created, reply.Offer, "wrong offer")
}

func TestOfferCancel(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	key := fixtures.TestKey()
	arguments := transactionrecord.OfferCancel{
		OfferId:  3,
		Provider: key.Account(),
		Nonce:    1,
	}
	message, _ := arguments.Pack(key.Account())
	arguments.Signature = key.Sign(message)

	m := mocks.NewMockMarket(ctl)
	m.EXPECT().CancelOffer(gomock.Any(), uint64(3), key.Account()).Return(nil, fault.OfferNotPending).Times(1)

	o := offer.New(logger.New(fixtures.LogCategory), normal, isTesting, m, false)

	var reply offer.Reply
	err := o.Cancel(&arguments, &reply)
	assert.Equal(t, fault.OfferNotPending, err, "wrong Cancel")

	err = o.Cancel(nil, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong nil arguments")
}

func TestOfferQueries(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := fixtures.SetupTestDatabase()
	if !assert.Nil(t, err, "database") {
		t.FailNow()
	}
	defer fixtures.TeardownTestDatabase()

	engine := market.New(logger.New(fixtures.LogCategory), event.BusEmitter{}, nil)
	_, err = engine.InitialiseRegistry(nil, fixtures.TestKey().Account())
	assert.Nil(t, err, "registry")

	client := fixtures.TestKey().Account()
	provider := fixtures.TestKey().Account()
	n, err := engine.CreateNeed(nil, client, "logo", "", "", 100, 0)
	assert.Nil(t, err, "create need")
	_, err = engine.CreateOffer(nil, n.Id, provider, 90, "first")
	assert.Nil(t, err, "create offer")
	_, err = engine.CreateOffer(nil, n.Id, fixtures.TestKey().Account(), 80, "second")
	assert.Nil(t, err, "create offer")

	o := offer.New(logger.New(fixtures.LogCategory), normal, isTesting, engine, false)

	var got record.Offer
	err = o.Get(&offer.GetArguments{Id: 1}, &got)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, "second", got.Message, "wrong message")

	err = o.Get(&offer.GetArguments{Id: 5}, &got)
	assert.Equal(t, fault.OfferNotFound, err, "wrong missing offer")

	var page offer.ListReply
	err = o.List(&offer.ListArguments{NeedId: n.Id, Count: 10}, &page)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, 2, len(page.Offers), "wrong offer count")
	assert.Equal(t, uint64(2), page.NextStart, "wrong next start")

	err = o.List(&offer.ListArguments{NeedId: 9, Count: 10}, &page)
	assert.Equal(t, fault.NeedNotFound, err, "wrong missing need")

	err = o.ListByProvider(&offer.ListByProviderArguments{Provider: provider, Count: 10}, &page)
	assert.Nil(t, err, "wrong ListByProvider")
	if assert.Equal(t, 1, len(page.Offers), "wrong provider offers") {
		assert.Equal(t, uint64(90), page.Offers[0].Price, "wrong price")
	}
}
