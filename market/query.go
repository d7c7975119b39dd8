// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/ledger"
	"github.com/bitmark-inc/clawswapd/record"
	"github.com/bitmark-inc/clawswapd/registry"
	"github.com/bitmark-inc/clawswapd/storage"
)

// NeedCounts - number of needs in each state
type NeedCounts struct {
	Open       uint64 `json:"open"`
	InProgress uint64 `json:"inProgress"`
	Completed  uint64 `json:"completed"`
	Cancelled  uint64 `json:"cancelled"`
}

// Stats - marketplace totals from committed data
type Stats struct {
	Needs   uint64     `json:"needs"`
	Offers  uint64     `json:"offers"`
	Deals   uint64     `json:"deals"`
	Barters uint64     `json:"barters"`
	ByState NeedCounts `json:"needStates"`
	Escrow  uint64     `json:"escrow"`
}

// Profile - activity summary of one account
type Profile struct {
	Account         *account.Account `json:"account"`
	Balance         uint64           `json:"balance"`
	Needs           int              `json:"needs"`
	Offers          int              `json:"offers"`
	DealsAsClient   int              `json:"dealsAsClient"`
	DealsAsProvider int              `json:"dealsAsProvider"`
	Barters         int              `json:"barters"`
}

// GetStats - compute the current totals
func GetStats() (*Stats, error) {
	r, err := registry.Get()
	if nil != err {
		return nil, err
	}

	stats := &Stats{
		Needs:   r.NeedCounter,
		Offers:  r.OfferCounter,
		Deals:   r.DealCounter,
		Barters: r.BarterCounter,
	}

	err = storage.Pool.Needs.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n, err := record.UnpackNeed(value)
		if nil != err {
			return err
		}
		switch n.Status {
		case record.NeedOpen:
			stats.ByState.Open += 1
		case record.NeedInProgress:
			stats.ByState.InProgress += 1
		case record.NeedCompleted:
			stats.ByState.Completed += 1
		case record.NeedCancelled:
			stats.ByState.Cancelled += 1
		}
		return nil
	})
	if nil != err {
		return nil, err
	}

	stats.Escrow, err = ledger.TotalEscrow()
	if nil != err {
		return nil, err
	}
	return stats, nil
}

// GetProfile - summarise an account's activity
func GetProfile(acc *account.Account) (*Profile, error) {
	prefix := acc.Bytes()

	p := &Profile{
		Account: acc,
		Balance: ledger.Balance(ledger.AccountAddress(acc)),
	}

	var err error
	p.Needs, err = record.CountIndex(storage.Pool.CreatorNeeds, prefix)
	if nil != err {
		return nil, err
	}
	p.Offers, err = record.CountIndex(storage.Pool.ProviderOffers, prefix)
	if nil != err {
		return nil, err
	}
	p.Barters, err = record.CountIndex(storage.Pool.PartyBarters, prefix)
	if nil != err {
		return nil, err
	}

	// collect ids first, loading inside Map would nest the pool read lock
	ids := []uint64{}
	err = storage.Pool.PartyDeals.NewFetchCursorWithPrefix(prefix).Map(func(key []byte, value []byte) error {
		id, err := record.IdFromKey(key)
		ids = append(ids, id)
		return err
	})
	if nil != err {
		return nil, err
	}

	for _, id := range ids {
		d, err := record.GetDeal(record.Committed, id)
		if nil != err {
			return nil, err
		}
		if d.Client.Equal(acc) {
			p.DealsAsClient += 1
		}
		if d.Provider.Equal(acc) {
			p.DealsAsProvider += 1
		}
	}
	return p, nil
}
