// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// database access combining committed data with the pending batch
type access struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	cache *dbCache
}

func newAccess(db *leveldb.DB) *access {
	return &access{
		db:    db,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

// pending writes

func (d *access) put(key []byte, value []byte) {
	v := make([]byte, len(value))
	copy(v, value)
	d.cache.Set(dbPut, string(key), v)
	d.batch.Put(key, v)
}

func (d *access) delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

func (d *access) commit() error {
	err := d.db.Write(d.batch, nil)
	d.reset()
	return err
}

func (d *access) reset() {
	d.batch.Reset()
	d.cache.Clear()
}

func (d *access) pending() int {
	return d.batch.Len()
}

// reads that see pending writes

func (d *access) getPending(key []byte) []byte {
	value, found, deleted := d.cache.Get(string(key))
	if deleted {
		return nil
	}
	if found {
		return value
	}
	return d.getCommitted(key)
}

func (d *access) hasPending(key []byte) bool {
	_, found, deleted := d.cache.Get(string(key))
	if deleted {
		return false
	}
	if found {
		return true
	}
	return d.hasCommitted(key)
}

// reads of committed data only

func (d *access) getCommitted(key []byte) []byte {
	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("storage.get", err)
	return value
}

func (d *access) hasCommitted(key []byte) bool {
	found, err := d.db.Has(key, nil)
	logger.PanicIfError("storage.has", err)
	return found
}

func (d *access) iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
