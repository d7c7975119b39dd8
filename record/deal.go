// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/util"
)

// Deal - escrow contract between a need's creator and an offer's provider
//
// Amount is fixed at acceptance, the funds themselves are held
// in the Escrow pool under the deal id
type Deal struct {
	Id              uint64           `json:"id"`
	NeedId          uint64           `json:"needId"`
	OfferId         uint64           `json:"offerId"`
	Client          *account.Account `json:"client"`
	Provider        *account.Account `json:"provider"`
	Amount          uint64           `json:"amount"`
	Status          DealStatus       `json:"status"`
	CreatedAt       int64            `json:"createdAt"`
	DeliveryHash    string           `json:"deliveryHash,omitempty"`
	DeliveryContent string           `json:"deliveryContent,omitempty"`
	DisputeReason   string           `json:"disputeReason,omitempty"`
}

// IsParticipant - client or provider
func (d *Deal) IsParticipant(acc *account.Account) bool {
	return d.Client.Equal(acc) || d.Provider.Equal(acc)
}

// Pack - persistent form
func (d *Deal) Pack() []byte {
	buffer := util.AppendUint64(nil, dealTag)
	buffer = util.AppendUint64(buffer, d.Id)
	buffer = util.AppendUint64(buffer, d.NeedId)
	buffer = util.AppendUint64(buffer, d.OfferId)
	buffer = appendAccount(buffer, d.Client)
	buffer = appendAccount(buffer, d.Provider)
	buffer = util.AppendUint64(buffer, d.Amount)
	buffer = util.AppendUint64(buffer, uint64(d.Status))
	buffer = util.AppendUint64(buffer, uint64(d.CreatedAt))
	buffer = util.AppendString(buffer, d.DeliveryHash)
	buffer = util.AppendString(buffer, d.DeliveryContent)
	buffer = util.AppendString(buffer, d.DisputeReason)
	return buffer
}

// UnpackDeal - decode a packed deal
func UnpackDeal(buffer []byte) (*Deal, error) {
	u := util.NewUnpacker(buffer)
	if err := unpackTag(u, dealTag); nil != err {
		return nil, err
	}

	d := &Deal{
		Id:      u.Uint64(),
		NeedId:  u.Uint64(),
		OfferId: u.Uint64(),
	}
	client, err := unpackAccount(u)
	if nil != err {
		return nil, err
	}
	provider, err := unpackAccount(u)
	if nil != err {
		return nil, err
	}
	d.Client = client
	d.Provider = provider
	d.Amount = u.Uint64()
	status := u.Uint64()
	d.CreatedAt = int64(u.Uint64())
	d.DeliveryHash = u.String()
	d.DeliveryContent = u.String()
	d.DisputeReason = u.String()

	if err := unpackDone(u); nil != err {
		return nil, err
	}
	if status >= uint64(dealLimit) || nil == d.Client || nil == d.Provider {
		return nil, fault.InvalidItem
	}
	d.Status = DealStatus(status)
	return d, nil
}
