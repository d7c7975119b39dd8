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

// Need - a posted request for work
type Need struct {
	Id          uint64           `json:"id"`
	Creator     *account.Account `json:"creator"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Budget      uint64           `json:"budget"`
	Status      NeedStatus       `json:"status"`
	CreatedAt   int64            `json:"createdAt"`
	Deadline    int64            `json:"deadline,omitempty"` // zero: no deadline
}

// Pack - persistent form
func (n *Need) Pack() []byte {
	buffer := util.AppendUint64(nil, needTag)
	buffer = util.AppendUint64(buffer, n.Id)
	buffer = appendAccount(buffer, n.Creator)
	buffer = util.AppendString(buffer, n.Title)
	buffer = util.AppendString(buffer, n.Description)
	buffer = util.AppendString(buffer, n.Category)
	buffer = util.AppendUint64(buffer, n.Budget)
	buffer = util.AppendUint64(buffer, uint64(n.Status))
	buffer = util.AppendUint64(buffer, uint64(n.CreatedAt))
	buffer = util.AppendUint64(buffer, uint64(n.Deadline))
	return buffer
}

// UnpackNeed - decode a packed need
func UnpackNeed(buffer []byte) (*Need, error) {
	u := util.NewUnpacker(buffer)
	if err := unpackTag(u, needTag); nil != err {
		return nil, err
	}

	n := &Need{
		Id: u.Uint64(),
	}
	creator, err := unpackAccount(u)
	if nil != err {
		return nil, err
	}
	n.Creator = creator
	n.Title = u.String()
	n.Description = u.String()
	n.Category = u.String()
	n.Budget = u.Uint64()
	status := u.Uint64()
	n.CreatedAt = int64(u.Uint64())
	n.Deadline = int64(u.Uint64())

	if err := unpackDone(u); nil != err {
		return nil, err
	}
	if status >= uint64(needLimit) || nil == n.Creator {
		return nil, fault.InvalidItem
	}
	n.Status = NeedStatus(status)
	return n, nil
}
