// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clawswapd/event"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/record"
	"github.com/bitmark-inc/clawswapd/registry"
	"github.com/bitmark-inc/clawswapd/storage"
	"github.com/bitmark-inc/clawswapd/transactionrecord"
)

func TestCreateNeed(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	alice := makeAccount(t)

	need, err := f.engine.CreateNeed(nil, alice, "logo", "a small logo", "design", 500, 0)
	assert.Nil(t, err, "wrong create error")
	assert.Equal(t, uint64(0), need.Id, "wrong first id")
	assert.Equal(t, record.NeedOpen, need.Status, "wrong status")
	assert.Equal(t, int64(testTimestamp), need.CreatedAt, "wrong timestamp")

	second, err := f.engine.CreateNeed(nil, alice, "icon", "", "", 0, testTimestamp+100)
	assert.Nil(t, err, "wrong create error")
	assert.Equal(t, uint64(1), second.Id, "wrong second id")

	stored, err := record.GetNeed(record.Committed, 0)
	assert.Nil(t, err, "wrong get error")
	assert.Equal(t, need, stored, "wrong stored need")

	r, err := registry.Get()
	assert.Nil(t, err, "wrong registry error")
	assert.Equal(t, uint64(2), r.NeedCounter, "wrong counter")

	assert.Equal(t, []string{"NeedCreated", "NeedCreated"}, f.eventNames())
	assert.Equal(t, event.NeedCreated{Id: 0, Creator: alice, Title: "logo", Budget: 500}, f.events[0])
}

func TestCreateNeedLimits(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	alice := makeAccount(t)

	tests := []struct {
		title       string
		description string
		category    string
		err         error
	}{
		{strings.Repeat("t", 64), strings.Repeat("d", 256), strings.Repeat("c", 32), nil},
		{strings.Repeat("t", 65), "", "", fault.TitleTooLong},
		{"", strings.Repeat("d", 257), "", fault.DescriptionTooLong},
		{"", "", strings.Repeat("c", 33), fault.CategoryTooLong},
	}

	for i, item := range tests {
		_, err := f.engine.CreateNeed(nil, alice, item.title, item.description, item.category, 1, 0)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}

	r, _ := registry.Get()
	assert.Equal(t, uint64(1), r.NeedCounter, "rejected needs must not consume ids")
	assert.Equal(t, 1, len(f.events), "wrong event count")
}

func TestCancelNeed(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	alice := makeAccount(t)
	bob := makeAccount(t)

	need, _ := f.engine.CreateNeed(nil, alice, "logo", "", "", 0, 0)

	_, err := f.engine.CancelNeed(nil, need.Id, bob)
	assert.Equal(t, fault.NotNeedCreator, err, "wrong non creator error")

	_, err = f.engine.CancelNeed(nil, 99, alice)
	assert.Equal(t, fault.NeedNotFound, err, "wrong missing need error")

	cancelled, err := f.engine.CancelNeed(nil, need.Id, alice)
	assert.Nil(t, err, "wrong cancel error")
	assert.Equal(t, record.NeedCancelled, cancelled.Status, "wrong status")

	_, err = f.engine.CancelNeed(nil, need.Id, alice)
	assert.Equal(t, fault.NeedNotOpen, err, "wrong repeat error")

	_, err = f.engine.CreateOffer(nil, need.Id, bob, 10, "")
	assert.Equal(t, fault.NeedNotOpen, err, "offer on cancelled need")

	assert.Equal(t, []string{"NeedCreated", "NeedCancelled"}, f.eventNames())
}

func TestOffers(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	alice := makeAccount(t)
	bob := makeAccount(t)
	carol := makeAccount(t)

	need, _ := f.engine.CreateNeed(nil, alice, "logo", "", "", 0, 0)

	_, err := f.engine.CreateOffer(nil, 7, bob, 10, "")
	assert.Equal(t, fault.NeedNotFound, err, "wrong missing need error")

	_, err = f.engine.CreateOffer(nil, need.Id, bob, 10, strings.Repeat("m", 257))
	assert.Equal(t, fault.MessageTooLong, err, "wrong length error")

	offer, err := f.engine.CreateOffer(nil, need.Id, bob, 10, "can do")
	assert.Nil(t, err, "wrong create error")
	assert.Equal(t, record.OfferPending, offer.Status, "wrong status")
	assert.Equal(t, need.Id, offer.NeedId, "wrong need")

	_, err = f.engine.CancelOffer(nil, offer.Id, carol)
	assert.Equal(t, fault.NotProvider, err, "wrong non provider error")

	cancelled, err := f.engine.CancelOffer(nil, offer.Id, bob)
	assert.Nil(t, err, "wrong cancel error")
	assert.Equal(t, record.OfferCancelled, cancelled.Status, "wrong status")

	_, err = f.engine.CancelOffer(nil, offer.Id, bob)
	assert.Equal(t, fault.OfferNotPending, err, "wrong repeat error")

	offers, err := record.ListOffersByNeed(need.Id, 0, 10)
	assert.Nil(t, err, "wrong list error")
	assert.Equal(t, 1, len(offers), "wrong offer count")

	assert.Equal(t, []string{"NeedCreated", "OfferCreated", "OfferCancelled"}, f.eventNames())
}

func TestReplayedRequest(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	alice := makeAccount(t)
	txId := &transactionrecord.TxId{1, 2, 3}

	_, err := f.engine.CreateNeed(txId, alice, "logo", "", "", 0, 0)
	assert.Nil(t, err, "wrong first error")
	assert.True(t, storage.Pool.Transactions.Has(txId[:]), "request not recorded")

	_, err = f.engine.CreateNeed(txId, alice, "logo", "", "", 0, 0)
	assert.Equal(t, fault.TransactionAlreadyExists, err, "wrong replay error")

	r, _ := registry.Get()
	assert.Equal(t, uint64(1), r.NeedCounter, "replay created a need")
}
