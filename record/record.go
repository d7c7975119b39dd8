// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - persistent marketplace entities
//
// every record is packed as:
//
//	tag ++ fields
//
// where each field is a Varint64 or a Varint64 length prefixed byte string
package record

import (
	"encoding/binary"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/util"
)

// byte length limits for text fields
const (
	MaxTitleLength           = 64
	MaxDescriptionLength     = 256
	MaxCategoryLength        = 32
	MaxMessageLength         = 256
	MaxDeliveryContentLength = 512
	MaxDeliveryHashLength    = 64
	MaxReasonLength          = 256
)

// record type tags
const (
	needTag   = 1
	offerTag  = 2
	dealTag   = 3
	barterTag = 4
)

// IdKey - big endian storage key for an id
func IdKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// IdFromKey - decode the trailing 8 bytes of a key
func IdFromKey(key []byte) (uint64, error) {
	if len(key) < 8 {
		return 0, fault.RecordTruncated
	}
	return binary.BigEndian.Uint64(key[len(key)-8:]), nil
}

// AccountIdKey - index key: account ++ id
func AccountIdKey(acc *account.Account, id uint64) []byte {
	return append(acc.Bytes(), IdKey(id)...)
}

// IdIdKey - index key: parent id ++ id
func IdIdKey(parent uint64, id uint64) []byte {
	return append(IdKey(parent), IdKey(id)...)
}

func appendAccount(buffer []byte, acc *account.Account) []byte {
	if nil == acc {
		return util.AppendBytes(buffer, []byte{})
	}
	return util.AppendBytes(buffer, acc.Bytes())
}

// returns nil for an empty field
func unpackAccount(u *util.Unpacker) (*account.Account, error) {
	b := u.Bytes()
	if nil != u.Err() {
		return nil, u.Err()
	}
	if 0 == len(b) {
		return nil, nil
	}
	return account.FromBytes(b)
}

func unpackTag(u *util.Unpacker, expected uint64) error {
	tag := u.Uint64()
	if nil != u.Err() {
		return u.Err()
	}
	if expected != tag {
		return fault.RecordUnknownTag
	}
	return nil
}

func unpackDone(u *util.Unpacker) error {
	if nil != u.Err() {
		return u.Err()
	}
	if 0 != u.Remaining() {
		return fault.RecordTruncated
	}
	return nil
}
