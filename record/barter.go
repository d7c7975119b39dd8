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

// Side - one half of a barter
type Side struct {
	Submitted bool   `json:"submitted"`
	Content   string `json:"content,omitempty"`
	Hash      string `json:"hash,omitempty"`
	Confirmed bool   `json:"confirmed"`
}

// side labels used in events
const (
	SideA = "A"
	SideB = "B"
)

// Barter - symmetric exchange with no funds
//
// side A is delivered by the initiator, side B by the counterpart;
// a nil Counterpart means anyone except the initiator may accept
type Barter struct {
	Id            uint64           `json:"id"`
	Initiator     *account.Account `json:"initiator"`
	Counterpart   *account.Account `json:"counterpart"`
	Offer         string           `json:"offer"`
	Want          string           `json:"want"`
	Status        BarterStatus     `json:"status"`
	CreatedAt     int64            `json:"createdAt"`
	A             Side             `json:"sideA"`
	B             Side             `json:"sideB"`
	DisputeReason string           `json:"disputeReason,omitempty"`
}

// IsParticipant - initiator or bound counterpart
func (b *Barter) IsParticipant(acc *account.Account) bool {
	return b.Initiator.Equal(acc) || (nil != b.Counterpart && b.Counterpart.Equal(acc))
}

// Pack - persistent form
func (b *Barter) Pack() []byte {
	buffer := util.AppendUint64(nil, barterTag)
	buffer = util.AppendUint64(buffer, b.Id)
	buffer = appendAccount(buffer, b.Initiator)
	buffer = appendAccount(buffer, b.Counterpart)
	buffer = util.AppendString(buffer, b.Offer)
	buffer = util.AppendString(buffer, b.Want)
	buffer = util.AppendUint64(buffer, uint64(b.Status))
	buffer = util.AppendUint64(buffer, uint64(b.CreatedAt))
	buffer = appendSide(buffer, &b.A)
	buffer = appendSide(buffer, &b.B)
	buffer = util.AppendString(buffer, b.DisputeReason)
	return buffer
}

func appendSide(buffer []byte, s *Side) []byte {
	buffer = util.AppendBool(buffer, s.Submitted)
	buffer = util.AppendString(buffer, s.Content)
	buffer = util.AppendString(buffer, s.Hash)
	return util.AppendBool(buffer, s.Confirmed)
}

func unpackSide(u *util.Unpacker) Side {
	return Side{
		Submitted: u.Bool(),
		Content:   u.String(),
		Hash:      u.String(),
		Confirmed: u.Bool(),
	}
}

// UnpackBarter - decode a packed barter
func UnpackBarter(buffer []byte) (*Barter, error) {
	u := util.NewUnpacker(buffer)
	if err := unpackTag(u, barterTag); nil != err {
		return nil, err
	}

	b := &Barter{
		Id: u.Uint64(),
	}
	initiator, err := unpackAccount(u)
	if nil != err {
		return nil, err
	}
	counterpart, err := unpackAccount(u)
	if nil != err {
		return nil, err
	}
	b.Initiator = initiator
	b.Counterpart = counterpart
	b.Offer = u.String()
	b.Want = u.String()
	status := u.Uint64()
	b.CreatedAt = int64(u.Uint64())
	b.A = unpackSide(u)
	b.B = unpackSide(u)
	b.DisputeReason = u.String()

	if err := unpackDone(u); nil != err {
		return nil, err
	}
	if status >= uint64(barterLimit) || nil == b.Initiator {
		return nil, fault.InvalidItem
	}
	b.Status = BarterStatus(status)
	return b, nil
}
