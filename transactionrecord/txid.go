// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/storage"
)

// TxId - SHA3-256 of a packed signed request
type TxId [32]byte

// String - hex form
func (txId TxId) String() string {
	return hex.EncodeToString(txId[:])
}

// MarshalText - hex JSON form
func (txId TxId) MarshalText() ([]byte, error) {
	return []byte(txId.String()), nil
}

// UnmarshalText - convert hex text to a TxId
func (txId *TxId) UnmarshalText(s []byte) error {
	if hex.EncodedLen(len(txId)) != len(s) {
		return fault.InvalidItem
	}
	_, err := hex.Decode(txId[:], s)
	return err
}

// Claim - record a request as processed inside trx
//
// a request that was already processed is rejected, so a signed
// request cannot be replayed; a nil id is not recorded
func Claim(trx storage.Transaction, txId *TxId, timestamp int64) error {
	if nil == txId {
		return nil
	}
	if trx.Has(storage.Pool.Transactions, txId[:]) {
		return fault.TransactionAlreadyExists
	}
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, uint64(timestamp))
	trx.Put(storage.Pool.Transactions, txId[:], value)
	return nil
}

// Verify - check the signer's network and the signature of a request
// and return the id that identifies it
func Verify(request Request, testing bool) (*TxId, error) {
	signer := request.Signer()
	if nil == signer {
		return nil, fault.MissingParameters
	}
	if signer.IsTesting() != testing {
		return nil, fault.WrongNetworkForPublicKey
	}

	packed, err := request.Pack(signer)
	if nil != err {
		return nil, err
	}
	txId := packed.TxId()
	return &txId, nil
}
