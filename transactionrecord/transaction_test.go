// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/record"
	"github.com/bitmark-inc/clawswapd/storage"
	"github.com/bitmark-inc/clawswapd/transactionrecord"
)

func makeKey(t *testing.T) *account.PrivateKey {
	privateKey, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	return privateKey
}

// sign the way a client does: pack unsigned, sign, pack again
func signRequest(t *testing.T, r transactionrecord.Request, key *account.PrivateKey, setSignature func(account.Signature)) transactionrecord.Packed {
	message, err := r.Pack(key.Account())
	assert.Equal(t, fault.InvalidSignature, err, "unsigned pack")

	setSignature(key.Sign(message))
	packed, err := r.Pack(key.Account())
	if !assert.Nil(t, err, "signed pack") {
		t.FailNow()
	}
	return packed
}

func TestNeedCreatePack(t *testing.T) {
	key := makeKey(t)
	r := &transactionrecord.NeedCreate{
		Creator:     key.Account(),
		Title:       "Write docs",
		Description: "user guide",
		Category:    "writing",
		Budget:      300,
		Deadline:    1700000000,
		Nonce:       99,
	}
	packed := signRequest(t, r, key, func(s account.Signature) { r.Signature = s })

	assert.Equal(t, transactionrecord.NeedCreateTag, packed.Type())
	assert.True(t, r.Signer().Equal(key.Account()))

	// a different signer fails
	_, err := r.Pack(makeKey(t).Account())
	assert.Equal(t, fault.InvalidSignature, err)

	// any change invalidates the signature
	r.Budget = 301
	_, err = r.Pack(key.Account())
	assert.Equal(t, fault.InvalidSignature, err)
}

func TestDistinctTxIds(t *testing.T) {
	key := makeKey(t)
	r := &transactionrecord.DealConfirm{
		DealId: 4,
		Client: key.Account(),
		Nonce:  1,
	}
	first := signRequest(t, r, key, func(s account.Signature) { r.Signature = s })

	r.Nonce = 2
	second := signRequest(t, r, key, func(s account.Signature) { r.Signature = s })

	assert.NotEqual(t, first.TxId(), second.TxId(), "nonce makes requests distinct")
	assert.Equal(t, 64, len(first.TxId().String()))
}

func TestOptionalTarget(t *testing.T) {
	key := makeKey(t)
	open := &transactionrecord.BarterCreate{
		Initiator: key.Account(),
		Offer:     "a",
		Want:      "b",
	}
	pinned := &transactionrecord.BarterCreate{
		Initiator: key.Account(),
		Offer:     "a",
		Want:      "b",
		Target:    makeKey(t).Account(),
	}
	p1 := signRequest(t, open, key, func(s account.Signature) { open.Signature = s })
	p2 := signRequest(t, pinned, key, func(s account.Signature) { pinned.Signature = s })
	assert.NotEqual(t, p1.TxId(), p2.TxId())
}

func TestMissingParameters(t *testing.T) {
	r := &transactionrecord.DealResolve{
		DealId:     1,
		Resolution: record.PayProvider,
	}
	_, err := r.Pack(makeKey(t).Account())
	assert.Equal(t, fault.MissingParameters, err)
}

func TestJSON(t *testing.T) {
	key := makeKey(t)
	r := transactionrecord.BalanceCredit{
		Account: key.Account(),
		Amount:  1000,
		Nonce:   5,
	}
	packed := signRequest(t, &r, key, func(s account.Signature) { r.Signature = s })

	buffer, err := json.Marshal(r)
	assert.Nil(t, err)

	var r2 transactionrecord.BalanceCredit
	assert.Nil(t, json.Unmarshal(buffer, &r2))
	packed2, err := r2.Pack(r2.Account)
	assert.Nil(t, err)
	assert.Equal(t, packed, packed2)

	name, ok := transactionrecord.RecordName(r2)
	assert.True(t, ok)
	assert.Equal(t, "BalanceCredit", name)
}

func TestClaim(t *testing.T) {
	setup(t)
	defer teardown()

	txId := transactionrecord.Packed("request").TxId()

	trx, err := storage.NewDBTransaction()
	if !assert.Nil(t, err) {
		return
	}
	assert.Nil(t, transactionrecord.Claim(trx, &txId, 1700000000))
	assert.Equal(t, fault.TransactionAlreadyExists, transactionrecord.Claim(trx, &txId, 1700000001))
	assert.Nil(t, transactionrecord.Claim(trx, nil, 1700000001))
	assert.Nil(t, trx.Commit())

	assert.True(t, storage.Pool.Transactions.Has(txId[:]))

	trx, err = storage.NewDBTransaction()
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, fault.TransactionAlreadyExists, transactionrecord.Claim(trx, &txId, 1700000002))
	trx.Abort()
}

func TestVerify(t *testing.T) {
	key := makeKey(t)
	r := &transactionrecord.OfferCancel{
		OfferId:  3,
		Provider: key.Account(),
		Nonce:    7,
	}

	_, err := transactionrecord.Verify(r, true)
	assert.Equal(t, fault.InvalidSignature, err, "unsigned request")

	packed := signRequest(t, r, key, func(s account.Signature) { r.Signature = s })

	txId, err := transactionrecord.Verify(r, true)
	assert.Nil(t, err, "wrong verify error")
	assert.Equal(t, packed.TxId(), *txId, "wrong tx id")

	_, err = transactionrecord.Verify(r, false)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "live chain accepted test key")

	_, err = transactionrecord.Verify(&transactionrecord.OfferCancel{OfferId: 3}, true)
	assert.Equal(t, fault.MissingParameters, err, "missing signer")
}

func TestTxIdText(t *testing.T) {
	txId := transactionrecord.Packed("some packed request").TxId()

	buffer, err := json.Marshal(txId)
	assert.Nil(t, err, "marshal")

	var decoded transactionrecord.TxId
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, txId, decoded, "wrong txId")

	err = decoded.UnmarshalText([]byte("abcd"))
	assert.Equal(t, fault.InvalidItem, err, "short text accepted")
}
