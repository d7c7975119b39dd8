// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/event"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/ledger"
	"github.com/bitmark-inc/clawswapd/record"
	"github.com/bitmark-inc/clawswapd/registry"
	"github.com/bitmark-inc/clawswapd/storage"
	"github.com/bitmark-inc/clawswapd/transactionrecord"
)

// AcceptOffer - client accepts an offer and funds the escrow
func (e *Engine) AcceptOffer(txId *transactionrecord.TxId, needId uint64, offerId uint64, client *account.Account) (*record.Deal, error) {
	var deal *record.Deal
	err := e.update(txId, func(trx storage.Transaction, now int64) ([]event.Event, error) {
		need, err := record.GetNeed(trx, needId)
		if nil != err {
			return nil, err
		}
		offer, err := record.GetOffer(trx, offerId)
		if nil != err {
			return nil, err
		}
		if record.NeedOpen != need.Status {
			return nil, fault.NeedNotOpen
		}
		if record.OfferPending != offer.Status {
			return nil, fault.OfferNotPending
		}
		if offer.NeedId != need.Id {
			return nil, fault.OfferNeedMismatch
		}
		if !need.Creator.Equal(client) {
			return nil, fault.NotNeedCreator
		}

		r, err := registry.Load(trx)
		if nil != err {
			return nil, err
		}
		dealId := r.NextId(registry.Deal)

		err = ledger.Transfer(trx, ledger.AccountAddress(client), ledger.EscrowAddress(dealId), offer.Price)
		if nil != err {
			return nil, err
		}

		need.Status = record.NeedInProgress
		record.PutNeed(trx, need, false)

		offer.Status = record.OfferAccepted
		record.PutOffer(trx, offer, false)

		deal = &record.Deal{
			Id:        dealId,
			NeedId:    need.Id,
			OfferId:   offer.Id,
			Client:    client,
			Provider:  offer.Provider,
			Amount:    offer.Price,
			Status:    record.DealInProgress,
			CreatedAt: now,
		}
		record.PutDeal(trx, deal, true)
		r.Save(trx)

		return []event.Event{
			event.DealCreated{
				Id:       dealId,
				NeedId:   need.Id,
				OfferId:  offer.Id,
				Client:   client,
				Provider: offer.Provider,
				Amount:   offer.Price,
			},
		}, nil
	})
	if nil != err {
		e.log.Warnf("accept offer: need: %d  offer: %d  client: %s  error: %s", needId, offerId, client, err)
		return nil, err
	}

	e.log.Infof("deal: %d  need: %d  offer: %d  escrow: %d", deal.Id, needId, offerId, deal.Amount)
	return deal, nil
}

// SubmitDelivery - provider records the delivered work
func (e *Engine) SubmitDelivery(txId *transactionrecord.TxId, dealId uint64, provider *account.Account, hash string, content string) (*record.Deal, error) {
	if len(content) > record.MaxDeliveryContentLength {
		return nil, fault.DeliveryContentTooLong
	}
	if len(hash) > record.MaxDeliveryHashLength {
		return nil, fault.DeliveryHashTooLong
	}

	var deal *record.Deal
	err := e.update(txId, func(trx storage.Transaction, now int64) ([]event.Event, error) {
		var err error
		deal, err = record.GetDeal(trx, dealId)
		if nil != err {
			return nil, err
		}
		if record.DealInProgress != deal.Status {
			return nil, fault.DealNotInProgress
		}
		if !deal.Provider.Equal(provider) {
			return nil, fault.NotProvider
		}

		deal.Status = record.DealDeliverySubmitted
		deal.DeliveryHash = hash
		deal.DeliveryContent = content
		record.PutDeal(trx, deal, false)

		return []event.Event{
			event.DeliverySubmitted{
				DealId:   dealId,
				Provider: provider,
				Hash:     hash,
				Content:  content,
			},
		}, nil
	})
	if nil != err {
		e.log.Warnf("submit delivery: deal: %d  provider: %s  error: %s", dealId, provider, err)
		return nil, err
	}

	e.log.Infof("deal: %d delivery submitted", dealId)
	return deal, nil
}

// ConfirmDelivery - client accepts the delivery, escrow goes to the provider
func (e *Engine) ConfirmDelivery(txId *transactionrecord.TxId, dealId uint64, client *account.Account) (*record.Deal, error) {
	var deal *record.Deal
	err := e.update(txId, func(trx storage.Transaction, now int64) ([]event.Event, error) {
		var err error
		deal, err = record.GetDeal(trx, dealId)
		if nil != err {
			return nil, err
		}
		if record.DealDeliverySubmitted != deal.Status {
			return nil, fault.DeliveryNotSubmitted
		}
		if !deal.Client.Equal(client) {
			return nil, fault.NotClient
		}

		amount, err := settle(trx, deal, deal.Provider, record.DealCompleted, record.NeedCompleted)
		if nil != err {
			return nil, err
		}

		return []event.Event{
			event.DeliveryConfirmed{
				DealId:   dealId,
				Client:   client,
				Provider: deal.Provider,
				Amount:   amount,
			},
		}, nil
	})
	if nil != err {
		e.log.Warnf("confirm delivery: deal: %d  client: %s  error: %s", dealId, client, err)
		return nil, err
	}

	e.log.Infof("deal: %d completed", dealId)
	return deal, nil
}

// RaiseDispute - either party halts the deal for arbitration
func (e *Engine) RaiseDispute(txId *transactionrecord.TxId, dealId uint64, caller *account.Account, reason string) (*record.Deal, error) {
	if len(reason) > record.MaxReasonLength {
		return nil, fault.DisputeReasonTooLong
	}

	var deal *record.Deal
	err := e.update(txId, func(trx storage.Transaction, now int64) ([]event.Event, error) {
		var err error
		deal, err = record.GetDeal(trx, dealId)
		if nil != err {
			return nil, err
		}
		if record.DealInProgress != deal.Status && record.DealDeliverySubmitted != deal.Status {
			return nil, fault.DealNotDisputable
		}
		if !deal.IsParticipant(caller) {
			return nil, fault.NotDealParticipant
		}

		deal.Status = record.DealDisputed
		deal.DisputeReason = reason
		record.PutDeal(trx, deal, false)

		return []event.Event{
			event.DisputeRaised{
				DealId:   dealId,
				RaisedBy: caller,
				Reason:   reason,
			},
		}, nil
	})
	if nil != err {
		e.log.Warnf("raise dispute: deal: %d  caller: %s  error: %s", dealId, caller, err)
		return nil, err
	}

	e.log.Infof("deal: %d disputed by: %s", dealId, caller)
	return deal, nil
}

// ResolveDispute - the registry authority settles a disputed deal
func (e *Engine) ResolveDispute(txId *transactionrecord.TxId, dealId uint64, authority *account.Account, resolution record.Resolution) (*record.Deal, error) {
	if !resolution.IsValid() {
		return nil, fault.InvalidResolution
	}

	var deal *record.Deal
	err := e.update(txId, func(trx storage.Transaction, now int64) ([]event.Event, error) {
		var err error
		deal, err = record.GetDeal(trx, dealId)
		if nil != err {
			return nil, err
		}
		if record.DealDisputed != deal.Status {
			return nil, fault.DealNotDisputed
		}

		r, err := registry.Load(trx)
		if nil != err {
			return nil, err
		}
		if !r.IsAuthority(authority) {
			return nil, fault.NotAuthority
		}

		var amount uint64
		switch resolution {
		case record.RefundClient:
			amount, err = settle(trx, deal, deal.Client, record.DealCancelled, record.NeedCancelled)
		case record.PayProvider:
			amount, err = settle(trx, deal, deal.Provider, record.DealCompleted, record.NeedCompleted)
		}
		if nil != err {
			return nil, err
		}

		return []event.Event{
			event.DisputeResolved{
				DealId:     dealId,
				Resolution: resolution,
				Amount:     amount,
			},
		}, nil
	})
	if nil != err {
		e.log.Warnf("resolve dispute: deal: %d  resolution: %s  error: %s", dealId, resolution, err)
		return nil, err
	}

	e.log.Infof("deal: %d resolved: %s", dealId, resolution)
	return deal, nil
}

// release the whole escrow of a deal to one party and close both
// the deal and its need
func settle(trx storage.Transaction, deal *record.Deal, to *account.Account, dealStatus record.DealStatus, needStatus record.NeedStatus) (uint64, error) {
	amount, err := ledger.Drain(trx, ledger.EscrowAddress(deal.Id), ledger.AccountAddress(to))
	if nil != err {
		return 0, err
	}

	need, err := record.GetNeed(trx, deal.NeedId)
	if nil != err {
		return 0, err
	}
	need.Status = needStatus
	record.PutNeed(trx, need, false)

	deal.Status = dealStatus
	record.PutDeal(trx, deal, false)

	return amount, nil
}
