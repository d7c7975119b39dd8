// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/storage"
	"github.com/bitmark-inc/clawswapd/util"
	"github.com/bitmark-inc/logger"
)

// Kind - the entity families that draw ids from the registry
type Kind int

// kinds of counter
const (
	Need Kind = iota
	Offer
	Deal
	Barter
)

// registry singleton key in the Registry pool
var registryKey = []byte("registry")

// Registry - the marketplace singleton
//
// each counter holds the id the next entity of that kind will receive
type Registry struct {
	Authority     *account.Account `json:"authority"`
	NeedCounter   uint64           `json:"needCounter"`
	OfferCounter  uint64           `json:"offerCounter"`
	DealCounter   uint64           `json:"dealCounter"`
	BarterCounter uint64           `json:"barterCounter"`
}

// Initialise - create the registry with all counters at zero
func Initialise(trx storage.Transaction, authority *account.Account) (*Registry, error) {
	if trx.Has(storage.Pool.Registry, registryKey) {
		return nil, fault.AlreadyInitialised
	}

	r := &Registry{
		Authority: authority,
	}
	r.Save(trx)
	return r, nil
}

// Load - read the registry inside a transaction
func Load(trx storage.Transaction) (*Registry, error) {
	return unpack(trx.Get(storage.Pool.Registry, registryKey))
}

// Get - read the committed registry
func Get() (*Registry, error) {
	return unpack(storage.Pool.Registry.Get(registryKey))
}

// NextId - allocate an id of the given kind
//
// only valid inside a storage transaction followed by Save
func (r *Registry) NextId(kind Kind) uint64 {
	var counter *uint64
	switch kind {
	case Need:
		counter = &r.NeedCounter
	case Offer:
		counter = &r.OfferCounter
	case Deal:
		counter = &r.DealCounter
	case Barter:
		counter = &r.BarterCounter
	default:
		logger.Panicf("registry: invalid kind: %d", kind)
	}
	id := *counter
	*counter += 1
	return id
}

// IsAuthority - true if acc may resolve disputes
func (r *Registry) IsAuthority(acc *account.Account) bool {
	return r.Authority.Equal(acc)
}

// Save - write the registry as part of trx
func (r *Registry) Save(trx storage.Transaction) {
	trx.Put(storage.Pool.Registry, registryKey, r.pack())
}

func (r *Registry) pack() []byte {
	buffer := util.AppendBytes(nil, r.Authority.Bytes())
	buffer = util.AppendUint64(buffer, r.NeedCounter)
	buffer = util.AppendUint64(buffer, r.OfferCounter)
	buffer = util.AppendUint64(buffer, r.DealCounter)
	buffer = util.AppendUint64(buffer, r.BarterCounter)
	return buffer
}

func unpack(buffer []byte) (*Registry, error) {
	if nil == buffer {
		return nil, fault.NotInitialised
	}

	u := util.NewUnpacker(buffer)
	authorityBytes := u.Bytes()
	r := &Registry{
		NeedCounter:   u.Uint64(),
		OfferCounter:  u.Uint64(),
		DealCounter:   u.Uint64(),
		BarterCounter: u.Uint64(),
	}
	if nil != u.Err() {
		logger.Panicf("registry: corrupt record: %x  error: %s", buffer, u.Err())
	}

	authority, err := account.FromBytes(authorityBytes)
	if nil != err {
		logger.Panicf("registry: corrupt authority: %x  error: %s", authorityBytes, err)
	}
	r.Authority = authority
	return r, nil
}
