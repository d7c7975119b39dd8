// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - typed notifications emitted after each committed operation
package event

import (
	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/messagebus"
	"github.com/bitmark-inc/clawswapd/record"
)

// Event - anything that can be emitted
type Event interface {
	Name() string
}

// Emitter - destination for events
type Emitter interface {
	Emit(Event)
}

// NeedCreated - a need was posted
type NeedCreated struct {
	Id      uint64           `json:"id"`
	Creator *account.Account `json:"creator"`
	Title   string           `json:"title"`
	Budget  uint64           `json:"budget"`
}

// NeedCancelled - an open need was withdrawn
type NeedCancelled struct {
	Id      uint64           `json:"id"`
	Creator *account.Account `json:"creator"`
}

// OfferCreated - an offer was made
type OfferCreated struct {
	Id       uint64           `json:"id"`
	NeedId   uint64           `json:"needId"`
	Provider *account.Account `json:"provider"`
	Price    uint64           `json:"price"`
}

// OfferCancelled - a pending offer was withdrawn
type OfferCancelled struct {
	Id       uint64           `json:"id"`
	Provider *account.Account `json:"provider"`
}

// DealCreated - an offer was accepted and funds escrowed
type DealCreated struct {
	Id       uint64           `json:"id"`
	NeedId   uint64           `json:"needId"`
	OfferId  uint64           `json:"offerId"`
	Client   *account.Account `json:"client"`
	Provider *account.Account `json:"provider"`
	Amount   uint64           `json:"amount"`
}

// DeliverySubmitted - the provider delivered
type DeliverySubmitted struct {
	DealId   uint64           `json:"dealId"`
	Provider *account.Account `json:"provider"`
	Hash     string           `json:"hash"`
	Content  string           `json:"content"`
}

// DeliveryConfirmed - escrow released to the provider
type DeliveryConfirmed struct {
	DealId   uint64           `json:"dealId"`
	Client   *account.Account `json:"client"`
	Provider *account.Account `json:"provider"`
	Amount   uint64           `json:"amount"`
}

// DisputeRaised - a deal was disputed
type DisputeRaised struct {
	DealId   uint64           `json:"dealId"`
	RaisedBy *account.Account `json:"raisedBy"`
	Reason   string           `json:"reason"`
}

// DisputeResolved - the authority settled a dispute
type DisputeResolved struct {
	DealId     uint64            `json:"dealId"`
	Resolution record.Resolution `json:"resolution"`
	Amount     uint64            `json:"amount"`
}

// BarterCreated - an exchange was proposed
type BarterCreated struct {
	Id        uint64           `json:"id"`
	Initiator *account.Account `json:"initiator"`
	Offer     string           `json:"offer"`
	Want      string           `json:"want"`
}

// BarterAccepted - the counterpart was bound
type BarterAccepted struct {
	Id          uint64           `json:"id"`
	Counterpart *account.Account `json:"counterpart"`
}

// BarterDeliverySubmitted - one side was delivered
type BarterDeliverySubmitted struct {
	BarterId uint64 `json:"barterId"`
	Side     string `json:"side"`
	Hash     string `json:"hash"`
}

// BarterConfirmed - one side was confirmed
type BarterConfirmed struct {
	BarterId    uint64           `json:"barterId"`
	ConfirmedBy *account.Account `json:"confirmedBy"`
}

// BarterCompleted - both sides confirmed
type BarterCompleted struct {
	Id uint64 `json:"id"`
}

// BarterCancelled - an open barter was withdrawn
type BarterCancelled struct {
	Id uint64 `json:"id"`
}

// BarterDisputed - an exchange was disputed
type BarterDisputed struct {
	Id       uint64           `json:"id"`
	RaisedBy *account.Account `json:"raisedBy"`
	Reason   string           `json:"reason"`
}

// Name - event names
func (NeedCreated) Name() string             { return "NeedCreated" }
func (NeedCancelled) Name() string           { return "NeedCancelled" }
func (OfferCreated) Name() string            { return "OfferCreated" }
func (OfferCancelled) Name() string          { return "OfferCancelled" }
func (DealCreated) Name() string             { return "DealCreated" }
func (DeliverySubmitted) Name() string       { return "DeliverySubmitted" }
func (DeliveryConfirmed) Name() string       { return "DeliveryConfirmed" }
func (DisputeRaised) Name() string           { return "DisputeRaised" }
func (DisputeResolved) Name() string         { return "DisputeResolved" }
func (BarterCreated) Name() string           { return "BarterCreated" }
func (BarterAccepted) Name() string          { return "BarterAccepted" }
func (BarterDeliverySubmitted) Name() string { return "BarterDeliverySubmitted" }
func (BarterConfirmed) Name() string         { return "BarterConfirmed" }
func (BarterCompleted) Name() string         { return "BarterCompleted" }
func (BarterCancelled) Name() string         { return "BarterCancelled" }
func (BarterDisputed) Name() string          { return "BarterDisputed" }

// BusEmitter - emits on the broadcast message bus
type BusEmitter struct{}

// Emit - never blocks
func (BusEmitter) Emit(e Event) {
	messagebus.Bus.Broadcast.Send(e.Name(), e)
}
