// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/clawswapd/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	keyStart []byte
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of the pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool:     p,
		keyStart: []byte{},
		maxRange: *p.fullRange(),
	}
}

// NewFetchCursorWithPrefix - cursor restricted to keys beginning with keyPrefix
func (p *PoolHandle) NewFetchCursorWithPrefix(keyPrefix []byte) *FetchCursor {
	start := p.prefixKey(keyPrefix)
	return &FetchCursor{
		pool:     p,
		keyStart: append([]byte{}, keyPrefix...),
		maxRange: util.Range{
			Start: start,
			Limit: successor(start),
		},
	}
}

func (p *PoolHandle) fullRange() *util.Range {
	return &util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}
}

// smallest key greater than every key having this prefix
// nil means no limit
func successor(prefix []byte) []byte {
	limit := append([]byte{}, prefix...)
	for i := len(limit) - 1; i >= 0; i -= 1 {
		if limit[i] < 0xff {
			limit[i] += 1
			return limit[:i+1]
		}
	}
	return nil
}

// Seek - move cursor to specific key position
//
// key is relative to any prefix given when the cursor was created
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(append(append([]byte{}, cursor.keyStart...), key...))
	return cursor
}

// Fetch - return some elements starting from the current position
//
// returned keys have the pool prefix removed but retain any cursor key prefix
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if cursor == nil {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == cursor.pool.access || nil == poolData.database {
		return nil, fault.NotInitialised
	}

	iter := cursor.pool.access.iterator(&cursor.maxRange)

	results := make([]Element, 0, count)
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		results = append(results, cursor.pool.element(iter.Key(), iter.Value()))
		if len(results) >= count {
			break iterating
		}
	}
	iter.Release()
	err := iter.Error()

	// next fetch starts immediately after the last key returned
	if n := len(results); n > 0 {
		cursor.maxRange.Start = append(cursor.pool.prefixKey(results[n-1].Key), 0x00)
	}
	return results, err
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if cursor == nil {
		return fault.InvalidCursor
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == cursor.pool.access || nil == poolData.database {
		return fault.NotInitialised
	}

	iter := cursor.pool.access.iterator(&cursor.maxRange)

	var err error
iterating:
	for iter.Next() {
		e := cursor.pool.element(iter.Key(), iter.Value())
		err = f(e.Key, e.Value)
		if err != nil {
			break iterating
		}
	}
	iter.Release()
	if err == nil {
		err = iter.Error()
	}
	return err
}
