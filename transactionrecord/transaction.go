// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/record"
	"github.com/bitmark-inc/clawswapd/util"
)

// TagType - type code for requests
type TagType uint64

// enumerate the possible request record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	RegistryInitialiseTag = TagType(iota) // create the global registry
	NeedCreateTag         = TagType(iota) // post a need
	NeedCancelTag         = TagType(iota) // withdraw an open need
	OfferCreateTag        = TagType(iota) // respond to a need
	OfferCancelTag        = TagType(iota) // withdraw a pending offer
	DealAcceptTag         = TagType(iota) // accept an offer, funds to escrow
	DealDeliverTag        = TagType(iota) // provider delivers
	DealConfirmTag        = TagType(iota) // client confirms, escrow to provider
	DealDisputeTag        = TagType(iota) // either party disputes
	DealResolveTag        = TagType(iota) // authority settles a dispute
	BarterCreateTag       = TagType(iota) // propose an exchange
	BarterAcceptTag       = TagType(iota) // bind the counterpart
	BarterDeliverTag      = TagType(iota) // deliver one side
	BarterConfirmTag      = TagType(iota) // confirm the other side
	BarterCancelTag       = TagType(iota) // withdraw an open barter
	BarterDisputeTag      = TagType(iota) // dispute an exchange
	BalanceCreditTag      = TagType(iota) // test network funding

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Request - generic signed request interface
type Request interface {
	Pack(address *account.Account) (Packed, error)
	Signer() *account.Account
}

// byte sizes for various fields
const (
	maxSignatureLength = 1024
)

// RegistryInitialise - create the registry naming the arbitration authority
type RegistryInitialise struct {
	Authority *account.Account  `json:"authority"`    // base58
	Nonce     uint64            `json:"nonce,string"` // unsigned 0..N
	Signature account.Signature `json:"signature"`    // hex
}

// NeedCreate - post a need
type NeedCreate struct {
	Creator     *account.Account  `json:"creator"`      // base58
	Title       string            `json:"title"`        // utf-8
	Description string            `json:"description"`  // utf-8
	Category    string            `json:"category"`     // utf-8
	Budget      uint64            `json:"budget"`       // informational
	Deadline    int64             `json:"deadline"`     // unix seconds, 0 => none
	Nonce       uint64            `json:"nonce,string"` // unsigned 0..N
	Signature   account.Signature `json:"signature"`    // hex
}

// NeedCancel - withdraw an open need
type NeedCancel struct {
	NeedId    uint64            `json:"needId"`
	Creator   *account.Account  `json:"creator"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// OfferCreate - respond to a need
type OfferCreate struct {
	NeedId    uint64            `json:"needId"`
	Provider  *account.Account  `json:"provider"`
	Price     uint64            `json:"price"`
	Message   string            `json:"message"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// OfferCancel - withdraw a pending offer
type OfferCancel struct {
	OfferId   uint64            `json:"offerId"`
	Provider  *account.Account  `json:"provider"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// DealAccept - accept an offer on one's own need
type DealAccept struct {
	NeedId    uint64            `json:"needId"`
	OfferId   uint64            `json:"offerId"`
	Client    *account.Account  `json:"client"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// DealDeliver - provider submits the work
type DealDeliver struct {
	DealId    uint64            `json:"dealId"`
	Provider  *account.Account  `json:"provider"`
	Hash      string            `json:"hash"`
	Content   string            `json:"content"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// DealConfirm - client accepts the delivery
type DealConfirm struct {
	DealId    uint64            `json:"dealId"`
	Client    *account.Account  `json:"client"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// DealDispute - either party raises a dispute
type DealDispute struct {
	DealId    uint64            `json:"dealId"`
	Caller    *account.Account  `json:"caller"`
	Reason    string            `json:"reason"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// DealResolve - authority settles a dispute
type DealResolve struct {
	DealId     uint64            `json:"dealId"`
	Authority  *account.Account  `json:"authority"`
	Resolution record.Resolution `json:"resolution"`
	Nonce      uint64            `json:"nonce,string"`
	Signature  account.Signature `json:"signature"`
}

// BarterCreate - propose an exchange, Target optionally pins the counterpart
type BarterCreate struct {
	Initiator *account.Account  `json:"initiator"`
	Offer     string            `json:"offer"`
	Want      string            `json:"want"`
	Target    *account.Account  `json:"target,omitempty"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// BarterAccept - become the counterpart
type BarterAccept struct {
	BarterId  uint64            `json:"barterId"`
	Caller    *account.Account  `json:"caller"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// BarterDeliver - deliver the caller's side
type BarterDeliver struct {
	BarterId  uint64            `json:"barterId"`
	Caller    *account.Account  `json:"caller"`
	Content   string            `json:"content"`
	Hash      string            `json:"hash"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// BarterConfirm - confirm the other side's delivery
type BarterConfirm struct {
	BarterId  uint64            `json:"barterId"`
	Caller    *account.Account  `json:"caller"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// BarterCancel - withdraw an open barter
type BarterCancel struct {
	BarterId  uint64            `json:"barterId"`
	Initiator *account.Account  `json:"initiator"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// BarterDispute - dispute an exchange in progress
type BarterDispute struct {
	BarterId  uint64            `json:"barterId"`
	Caller    *account.Account  `json:"caller"`
	Reason    string            `json:"reason"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// BalanceCredit - add funds to an account on a test network
type BalanceCredit struct {
	Account   *account.Account  `json:"account"`
	Amount    uint64            `json:"amount,string"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n || recordType >= uint64(InvalidTag) {
		return NullTag
	}
	return TagType(recordType)
}

// TxId - digest identifying a packed request
func (record Packed) TxId() TxId {
	return sha3.Sum256(record)
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}

// RecordName - returns the name of a request record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *RegistryInitialise, RegistryInitialise:
		return "RegistryInitialise", true
	case *NeedCreate, NeedCreate:
		return "NeedCreate", true
	case *NeedCancel, NeedCancel:
		return "NeedCancel", true
	case *OfferCreate, OfferCreate:
		return "OfferCreate", true
	case *OfferCancel, OfferCancel:
		return "OfferCancel", true
	case *DealAccept, DealAccept:
		return "DealAccept", true
	case *DealDeliver, DealDeliver:
		return "DealDeliver", true
	case *DealConfirm, DealConfirm:
		return "DealConfirm", true
	case *DealDispute, DealDispute:
		return "DealDispute", true
	case *DealResolve, DealResolve:
		return "DealResolve", true
	case *BarterCreate, BarterCreate:
		return "BarterCreate", true
	case *BarterAccept, BarterAccept:
		return "BarterAccept", true
	case *BarterDeliver, BarterDeliver:
		return "BarterDeliver", true
	case *BarterConfirm, BarterConfirm:
		return "BarterConfirm", true
	case *BarterCancel, BarterCancel:
		return "BarterCancel", true
	case *BarterDispute, BarterDispute:
		return "BarterDispute", true
	case *BalanceCredit, BalanceCredit:
		return "BalanceCredit", true
	default:
		return "*unknown*", false
	}
}
