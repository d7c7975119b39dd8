// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/event"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/record"
	"github.com/bitmark-inc/clawswapd/registry"
	"github.com/bitmark-inc/clawswapd/storage"
	"github.com/bitmark-inc/clawswapd/transactionrecord"
)

// CreateNeed - post a new open need
//
// budget is informational only and a zero deadline means none
func (e *Engine) CreateNeed(txId *transactionrecord.TxId, creator *account.Account, title string, description string, category string, budget uint64, deadline int64) (*record.Need, error) {
	if len(title) > record.MaxTitleLength {
		return nil, fault.TitleTooLong
	}
	if len(description) > record.MaxDescriptionLength {
		return nil, fault.DescriptionTooLong
	}
	if len(category) > record.MaxCategoryLength {
		return nil, fault.CategoryTooLong
	}

	var need *record.Need
	err := e.update(txId, func(trx storage.Transaction, now int64) ([]event.Event, error) {
		r, err := registry.Load(trx)
		if nil != err {
			return nil, err
		}

		need = &record.Need{
			Id:          r.NextId(registry.Need),
			Creator:     creator,
			Title:       title,
			Description: description,
			Category:    category,
			Budget:      budget,
			Status:      record.NeedOpen,
			CreatedAt:   now,
			Deadline:    deadline,
		}
		record.PutNeed(trx, need, true)
		r.Save(trx)

		return []event.Event{
			event.NeedCreated{
				Id:      need.Id,
				Creator: creator,
				Title:   title,
				Budget:  budget,
			},
		}, nil
	})
	if nil != err {
		e.log.Warnf("create need: creator: %s  error: %s", creator, err)
		return nil, err
	}

	e.log.Infof("need: %d created by: %s", need.Id, creator)
	return need, nil
}

// CancelNeed - creator withdraws an open need
func (e *Engine) CancelNeed(txId *transactionrecord.TxId, needId uint64, caller *account.Account) (*record.Need, error) {
	var need *record.Need
	err := e.update(txId, func(trx storage.Transaction, now int64) ([]event.Event, error) {
		var err error
		need, err = record.GetNeed(trx, needId)
		if nil != err {
			return nil, err
		}
		if record.NeedOpen != need.Status {
			return nil, fault.NeedNotOpen
		}
		if !need.Creator.Equal(caller) {
			return nil, fault.NotNeedCreator
		}

		need.Status = record.NeedCancelled
		record.PutNeed(trx, need, false)

		return []event.Event{
			event.NeedCancelled{
				Id:      need.Id,
				Creator: caller,
			},
		}, nil
	})
	if nil != err {
		e.log.Warnf("cancel need: %d  caller: %s  error: %s", needId, caller, err)
		return nil, err
	}

	e.log.Infof("need: %d cancelled", needId)
	return need, nil
}

// CreateOffer - respond to an open need
//
// the status check and the creation share one serialised
// transaction, so the need cannot change state in between
func (e *Engine) CreateOffer(txId *transactionrecord.TxId, needId uint64, provider *account.Account, price uint64, message string) (*record.Offer, error) {
	if len(message) > record.MaxMessageLength {
		return nil, fault.MessageTooLong
	}

	var offer *record.Offer
	err := e.update(txId, func(trx storage.Transaction, now int64) ([]event.Event, error) {
		need, err := record.GetNeed(trx, needId)
		if nil != err {
			return nil, err
		}
		if record.NeedOpen != need.Status {
			return nil, fault.NeedNotOpen
		}

		r, err := registry.Load(trx)
		if nil != err {
			return nil, err
		}

		offer = &record.Offer{
			Id:        r.NextId(registry.Offer),
			NeedId:    needId,
			Provider:  provider,
			Price:     price,
			Message:   message,
			Status:    record.OfferPending,
			CreatedAt: now,
		}
		record.PutOffer(trx, offer, true)
		r.Save(trx)

		return []event.Event{
			event.OfferCreated{
				Id:       offer.Id,
				NeedId:   needId,
				Provider: provider,
				Price:    price,
			},
		}, nil
	})
	if nil != err {
		e.log.Warnf("create offer: need: %d  provider: %s  error: %s", needId, provider, err)
		return nil, err
	}

	e.log.Infof("offer: %d on need: %d by: %s  price: %d", offer.Id, needId, provider, price)
	return offer, nil
}

// CancelOffer - provider withdraws a pending offer
func (e *Engine) CancelOffer(txId *transactionrecord.TxId, offerId uint64, caller *account.Account) (*record.Offer, error) {
	var offer *record.Offer
	err := e.update(txId, func(trx storage.Transaction, now int64) ([]event.Event, error) {
		var err error
		offer, err = record.GetOffer(trx, offerId)
		if nil != err {
			return nil, err
		}
		if record.OfferPending != offer.Status {
			return nil, fault.OfferNotPending
		}
		if !offer.Provider.Equal(caller) {
			return nil, fault.NotProvider
		}

		offer.Status = record.OfferCancelled
		record.PutOffer(trx, offer, false)

		return []event.Event{
			event.OfferCancelled{
				Id:       offerId,
				Provider: caller,
			},
		}, nil
	})
	if nil != err {
		e.log.Warnf("cancel offer: %d  caller: %s  error: %s", offerId, caller, err)
		return nil, err
	}

	e.log.Infof("offer: %d cancelled", offerId)
	return offer, nil
}
