// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/storage"
)

func idKey(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}

func storeIds(t *testing.T, pool *storage.PoolHandle, prefix []byte, ids ...uint64) {
	trx, err := storage.NewDBTransaction()
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	for _, id := range ids {
		trx.Put(pool, append(append([]byte{}, prefix...), idKey(id)...), []byte{byte(id)})
	}
	assert.Nil(t, trx.Commit())
}

func TestFetchPages(t *testing.T) {
	setup(t)
	defer teardown()

	// includes ids whose big endian form has leading zero bytes
	storeIds(t, storage.Pool.Needs, nil, 0, 1, 2, 255, 256, 257)
	storeIds(t, storage.Pool.Offers, nil, 3)

	cursor := storage.Pool.Needs.NewFetchCursor()

	page, err := cursor.Fetch(4)
	assert.Nil(t, err)
	if assert.Equal(t, 4, len(page)) {
		assert.Equal(t, idKey(0), page[0].Key)
		assert.Equal(t, idKey(255), page[3].Key)
		assert.Equal(t, []byte{255}, page[3].Value)
	}

	page, err = cursor.Fetch(4)
	assert.Nil(t, err)
	if assert.Equal(t, 2, len(page), "second page") {
		assert.Equal(t, idKey(256), page[0].Key)
		assert.Equal(t, idKey(257), page[1].Key)
	}

	page, err = cursor.Fetch(4)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(page), "exhausted")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.InvalidCount, err)
}

func TestFetchSeek(t *testing.T) {
	setup(t)
	defer teardown()

	storeIds(t, storage.Pool.Deals, nil, 1, 2, 3, 4, 5)

	page, err := storage.Pool.Deals.NewFetchCursor().Seek(idKey(3)).Fetch(10)
	assert.Nil(t, err)
	if assert.Equal(t, 3, len(page)) {
		assert.Equal(t, idKey(3), page[0].Key)
	}

	last, found := storage.Pool.Deals.LastElement()
	assert.True(t, found)
	assert.Equal(t, idKey(5), last.Key)

	_, found = storage.Pool.Barters.LastElement()
	assert.False(t, found)
}

func TestFetchWithPrefix(t *testing.T) {
	setup(t)
	defer teardown()

	alice := []byte{0x13, 0xaa, 0xff}
	bob := []byte{0x13, 0xab, 0x00}
	storeIds(t, storage.Pool.PartyDeals, alice, 1, 4, 7)
	storeIds(t, storage.Pool.PartyDeals, bob, 2, 3)

	page, err := storage.Pool.PartyDeals.NewFetchCursorWithPrefix(alice).Fetch(10)
	assert.Nil(t, err)
	if assert.Equal(t, 3, len(page)) {
		assert.Equal(t, append(append([]byte{}, alice...), idKey(1)...), page[0].Key)
		assert.Equal(t, append(append([]byte{}, alice...), idKey(7)...), page[2].Key)
	}

	page, err = storage.Pool.PartyDeals.NewFetchCursorWithPrefix(alice).Seek(idKey(2)).Fetch(1)
	assert.Nil(t, err)
	if assert.Equal(t, 1, len(page)) {
		assert.Equal(t, append(append([]byte{}, alice...), idKey(4)...), page[0].Key)
	}

	count := 0
	err = storage.Pool.PartyDeals.NewFetchCursorWithPrefix(bob).Map(func(key []byte, value []byte) error {
		count += 1
		return nil
	})
	assert.Nil(t, err)
	assert.Equal(t, 2, count)
}

func TestMapStopsOnError(t *testing.T) {
	setup(t)
	defer teardown()

	storeIds(t, storage.Pool.Barters, nil, 1, 2, 3)

	calls := 0
	err := storage.Pool.Barters.NewFetchCursor().Map(func(key []byte, value []byte) error {
		calls += 1
		if 2 == calls {
			return fault.InvalidItem
		}
		return nil
	})
	assert.Equal(t, fault.InvalidItem, err)
	assert.Equal(t, 2, calls)
}
