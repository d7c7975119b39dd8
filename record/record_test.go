// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/record"
)

func TestNeedPack(t *testing.T) {
	n := &record.Need{
		Id:          7,
		Creator:     makeAccount(t),
		Title:       "Logo design",
		Description: "vector logo, two colours",
		Category:    "design",
		Budget:      500,
		Status:      record.NeedInProgress,
		CreatedAt:   1700000000,
		Deadline:    1700086400,
	}

	n2, err := record.UnpackNeed(n.Pack())
	assert.Nil(t, err)
	assert.Equal(t, n, n2)

	packed := n.Pack()
	_, err = record.UnpackNeed(packed[:len(packed)-1])
	assert.Equal(t, fault.RecordTruncated, err, "truncated")

	_, err = record.UnpackNeed(append(packed, 0x00))
	assert.Equal(t, fault.RecordTruncated, err, "trailing data")
}

func TestWrongTag(t *testing.T) {
	o := &record.Offer{
		Id:       1,
		NeedId:   0,
		Provider: makeAccount(t),
		Price:    100,
		Status:   record.OfferPending,
	}
	_, err := record.UnpackNeed(o.Pack())
	assert.Equal(t, fault.RecordUnknownTag, err)

	o2, err := record.UnpackOffer(o.Pack())
	assert.Nil(t, err)
	assert.Equal(t, o, o2)
}

func TestDealPack(t *testing.T) {
	d := &record.Deal{
		Id:              3,
		NeedId:          1,
		OfferId:         2,
		Client:          makeAccount(t),
		Provider:        makeAccount(t),
		Amount:          250,
		Status:          record.DealDisputed,
		CreatedAt:       1700000000,
		DeliveryHash:    "sha256:abc",
		DeliveryContent: "https://example.com/artifact",
		DisputeReason:   "late",
	}
	d2, err := record.UnpackDeal(d.Pack())
	assert.Nil(t, err)
	assert.Equal(t, d, d2)
	assert.True(t, d2.IsParticipant(d.Client))
	assert.True(t, d2.IsParticipant(d.Provider))
	assert.False(t, d2.IsParticipant(makeAccount(t)))
}

func TestBarterPack(t *testing.T) {
	initiator := makeAccount(t)
	open := &record.Barter{
		Id:        4,
		Initiator: initiator,
		Offer:     "translation",
		Want:      "proofreading",
		Status:    record.BarterOpen,
		CreatedAt: 1700000000,
	}
	b, err := record.UnpackBarter(open.Pack())
	assert.Nil(t, err)
	assert.Equal(t, open, b)
	assert.Nil(t, b.Counterpart, "open barter has no counterpart")
	assert.True(t, b.IsParticipant(initiator))

	counterpart := makeAccount(t)
	bound := *open
	bound.Counterpart = counterpart
	bound.Status = record.BarterInProgress
	bound.A = record.Side{Submitted: true, Content: "doc", Hash: "h1", Confirmed: false}
	bound.B = record.Side{Submitted: true, Content: "notes", Hash: "h2", Confirmed: true}

	b, err = record.UnpackBarter(bound.Pack())
	assert.Nil(t, err)
	assert.Equal(t, &bound, b)
	assert.True(t, b.IsParticipant(counterpart))
}

func TestStatusText(t *testing.T) {
	buffer, err := json.Marshal(record.DealDeliverySubmitted)
	assert.Nil(t, err)
	assert.Equal(t, `"DeliverySubmitted"`, string(buffer))

	var s record.NeedStatus
	assert.Nil(t, json.Unmarshal([]byte(`"Cancelled"`), &s))
	assert.Equal(t, record.NeedCancelled, s)
	assert.Equal(t, fault.InvalidStatus, s.UnmarshalText([]byte("Closed")))

	var r record.Resolution
	assert.Nil(t, r.UnmarshalText([]byte("PayProvider")))
	assert.Equal(t, record.PayProvider, r)
	assert.Equal(t, fault.InvalidResolution, r.UnmarshalText([]byte("Split")))
	assert.False(t, record.Resolution(9).IsValid())

	assert.True(t, record.NeedCompleted.IsTerminal())
	assert.False(t, record.DealDisputed.IsTerminal())
	assert.True(t, record.BarterDisputed.IsTerminal())
	assert.Equal(t, "Rejected", record.OfferRejected.String())
}
