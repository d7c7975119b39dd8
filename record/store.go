// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/storage"
	"github.com/bitmark-inc/logger"
)

// Reader - either a transaction or committed storage
type Reader interface {
	Get(*storage.PoolHandle, []byte) []byte
}

type committed struct{}

// Committed - read committed data only
var Committed Reader = committed{}

func (committed) Get(pool *storage.PoolHandle, key []byte) []byte {
	return pool.Get(key)
}

// GetNeed - load a need
func GetNeed(r Reader, id uint64) (*Need, error) {
	buffer := r.Get(storage.Pool.Needs, IdKey(id))
	if nil == buffer {
		return nil, fault.NeedNotFound
	}
	n, err := UnpackNeed(buffer)
	logger.PanicIfError("record.GetNeed", err)
	return n, nil
}

// GetOffer - load an offer
func GetOffer(r Reader, id uint64) (*Offer, error) {
	buffer := r.Get(storage.Pool.Offers, IdKey(id))
	if nil == buffer {
		return nil, fault.OfferNotFound
	}
	o, err := UnpackOffer(buffer)
	logger.PanicIfError("record.GetOffer", err)
	return o, nil
}

// GetDeal - load a deal
func GetDeal(r Reader, id uint64) (*Deal, error) {
	buffer := r.Get(storage.Pool.Deals, IdKey(id))
	if nil == buffer {
		return nil, fault.DealNotFound
	}
	d, err := UnpackDeal(buffer)
	logger.PanicIfError("record.GetDeal", err)
	return d, nil
}

// GetBarter - load a barter
func GetBarter(r Reader, id uint64) (*Barter, error) {
	buffer := r.Get(storage.Pool.Barters, IdKey(id))
	if nil == buffer {
		return nil, fault.BarterNotFound
	}
	b, err := UnpackBarter(buffer)
	logger.PanicIfError("record.GetBarter", err)
	return b, nil
}

// PutNeed - store a need, isNew also writes its index entry
func PutNeed(trx storage.Transaction, n *Need, isNew bool) {
	trx.Put(storage.Pool.Needs, IdKey(n.Id), n.Pack())
	if isNew {
		trx.Put(storage.Pool.CreatorNeeds, AccountIdKey(n.Creator, n.Id), []byte{})
	}
}

// PutOffer - store an offer, isNew also writes its index entries
func PutOffer(trx storage.Transaction, o *Offer, isNew bool) {
	trx.Put(storage.Pool.Offers, IdKey(o.Id), o.Pack())
	if isNew {
		trx.Put(storage.Pool.NeedOffers, IdIdKey(o.NeedId, o.Id), []byte{})
		trx.Put(storage.Pool.ProviderOffers, AccountIdKey(o.Provider, o.Id), []byte{})
	}
}

// PutDeal - store a deal, isNew also writes its index entries
func PutDeal(trx storage.Transaction, d *Deal, isNew bool) {
	trx.Put(storage.Pool.Deals, IdKey(d.Id), d.Pack())
	if isNew {
		trx.Put(storage.Pool.PartyDeals, AccountIdKey(d.Client, d.Id), []byte{})
		trx.Put(storage.Pool.PartyDeals, AccountIdKey(d.Provider, d.Id), []byte{})
	}
}

// PutBarter - store a barter
//
// isNew indexes the initiator (and a pinned counterpart),
// bindCounterpart indexes a counterpart bound at acceptance
func PutBarter(trx storage.Transaction, b *Barter, isNew bool, bindCounterpart bool) {
	trx.Put(storage.Pool.Barters, IdKey(b.Id), b.Pack())
	if isNew {
		trx.Put(storage.Pool.PartyBarters, AccountIdKey(b.Initiator, b.Id), []byte{})
	}
	if (isNew || bindCounterpart) && nil != b.Counterpart {
		trx.Put(storage.Pool.PartyBarters, AccountIdKey(b.Counterpart, b.Id), []byte{})
	}
}
