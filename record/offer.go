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

// Offer - a provider's response to one need
type Offer struct {
	Id        uint64           `json:"id"`
	NeedId    uint64           `json:"needId"`
	Provider  *account.Account `json:"provider"`
	Price     uint64           `json:"price"`
	Message   string           `json:"message"`
	Status    OfferStatus      `json:"status"`
	CreatedAt int64            `json:"createdAt"`
}

// Pack - persistent form
func (o *Offer) Pack() []byte {
	buffer := util.AppendUint64(nil, offerTag)
	buffer = util.AppendUint64(buffer, o.Id)
	buffer = util.AppendUint64(buffer, o.NeedId)
	buffer = appendAccount(buffer, o.Provider)
	buffer = util.AppendUint64(buffer, o.Price)
	buffer = util.AppendString(buffer, o.Message)
	buffer = util.AppendUint64(buffer, uint64(o.Status))
	buffer = util.AppendUint64(buffer, uint64(o.CreatedAt))
	return buffer
}

// UnpackOffer - decode a packed offer
func UnpackOffer(buffer []byte) (*Offer, error) {
	u := util.NewUnpacker(buffer)
	if err := unpackTag(u, offerTag); nil != err {
		return nil, err
	}

	o := &Offer{
		Id:     u.Uint64(),
		NeedId: u.Uint64(),
	}
	provider, err := unpackAccount(u)
	if nil != err {
		return nil, err
	}
	o.Provider = provider
	o.Price = u.Uint64()
	o.Message = u.String()
	status := u.Uint64()
	o.CreatedAt = int64(u.Uint64())

	if err := unpackDone(u); nil != err {
		return nil, err
	}
	if status >= uint64(offerLimit) || nil == o.Provider {
		return nil, fault.InvalidItem
	}
	o.Status = OfferStatus(status)
	return o, nil
}
