// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/storage"
)

// MaximumListCount - largest page a list may return
const MaximumListCount = 100

func checkCount(count int) error {
	if count <= 0 || count > MaximumListCount {
		return fault.InvalidCount
	}
	return nil
}

// ListNeeds - needs with id >= start, optionally only those with a given status
func ListNeeds(start uint64, count int, status *NeedStatus) ([]*Need, error) {
	if err := checkCount(count); nil != err {
		return nil, err
	}

	cursor := storage.Pool.Needs.NewFetchCursor().Seek(IdKey(start))
	needs := make([]*Need, 0, count)
	for len(needs) < count {
		elements, err := cursor.Fetch(count)
		if nil != err {
			return nil, err
		}
		if 0 == len(elements) {
			break
		}
		for _, e := range elements {
			n, err := UnpackNeed(e.Value)
			if nil != err {
				return nil, err
			}
			if nil != status && *status != n.Status {
				continue
			}
			needs = append(needs, n)
			if len(needs) >= count {
				break
			}
		}
	}
	return needs, nil
}

// ListNeedsByCreator - needs created by an account
func ListNeedsByCreator(creator *account.Account, start uint64, count int) ([]*Need, error) {
	ids, err := indexIds(storage.Pool.CreatorNeeds, creator.Bytes(), start, count)
	if nil != err {
		return nil, err
	}
	needs := make([]*Need, 0, len(ids))
	for _, id := range ids {
		n, err := GetNeed(Committed, id)
		if nil != err {
			return nil, err
		}
		needs = append(needs, n)
	}
	return needs, nil
}

// ListOffersByNeed - offers made against a need
func ListOffersByNeed(needId uint64, start uint64, count int) ([]*Offer, error) {
	ids, err := indexIds(storage.Pool.NeedOffers, IdKey(needId), start, count)
	if nil != err {
		return nil, err
	}
	return offers(ids)
}

// ListOffersByProvider - offers made by an account
func ListOffersByProvider(provider *account.Account, start uint64, count int) ([]*Offer, error) {
	ids, err := indexIds(storage.Pool.ProviderOffers, provider.Bytes(), start, count)
	if nil != err {
		return nil, err
	}
	return offers(ids)
}

// ListDealsByParty - deals where an account is client or provider
func ListDealsByParty(party *account.Account, start uint64, count int) ([]*Deal, error) {
	ids, err := indexIds(storage.Pool.PartyDeals, party.Bytes(), start, count)
	if nil != err {
		return nil, err
	}
	deals := make([]*Deal, 0, len(ids))
	for _, id := range ids {
		d, err := GetDeal(Committed, id)
		if nil != err {
			return nil, err
		}
		deals = append(deals, d)
	}
	return deals, nil
}

// ListBartersByParticipant - barters where an account is initiator or counterpart
func ListBartersByParticipant(participant *account.Account, start uint64, count int) ([]*Barter, error) {
	ids, err := indexIds(storage.Pool.PartyBarters, participant.Bytes(), start, count)
	if nil != err {
		return nil, err
	}
	barters := make([]*Barter, 0, len(ids))
	for _, id := range ids {
		b, err := GetBarter(Committed, id)
		if nil != err {
			return nil, err
		}
		barters = append(barters, b)
	}
	return barters, nil
}

// CountIndex - number of index entries under a key prefix
func CountIndex(pool *storage.PoolHandle, keyPrefix []byte) (int, error) {
	n := 0
	err := pool.NewFetchCursorWithPrefix(keyPrefix).Map(func(key []byte, value []byte) error {
		n += 1
		return nil
	})
	return n, err
}

func offers(ids []uint64) ([]*Offer, error) {
	result := make([]*Offer, 0, len(ids))
	for _, id := range ids {
		o, err := GetOffer(Committed, id)
		if nil != err {
			return nil, err
		}
		result = append(result, o)
	}
	return result, nil
}

// ids from an index pool of prefix ++ id keys
func indexIds(pool *storage.PoolHandle, keyPrefix []byte, start uint64, count int) ([]uint64, error) {
	if err := checkCount(count); nil != err {
		return nil, err
	}

	elements, err := pool.NewFetchCursorWithPrefix(keyPrefix).Seek(IdKey(start)).Fetch(count)
	if nil != err {
		return nil, err
	}

	ids := make([]uint64, 0, len(elements))
	for _, e := range elements {
		id, err := IdFromKey(e.Key)
		if nil != err {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
