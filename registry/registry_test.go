// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/registry"
	"github.com/bitmark-inc/clawswapd/storage"
)

func TestInitialise(t *testing.T) {
	setup(t)
	defer teardown()

	_, err := registry.Get()
	assert.Equal(t, fault.NotInitialised, err, "before initialise")

	authority := makeAccount(t)

	trx, err := storage.NewDBTransaction()
	if !assert.Nil(t, err) {
		return
	}
	r, err := registry.Initialise(trx, authority)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), r.NeedCounter)
	assert.Nil(t, trx.Commit())

	r, err = registry.Get()
	assert.Nil(t, err)
	assert.True(t, r.IsAuthority(authority))
	assert.False(t, r.IsAuthority(makeAccount(t)))

	trx, err = storage.NewDBTransaction()
	if !assert.Nil(t, err) {
		return
	}
	_, err = registry.Initialise(trx, makeAccount(t))
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")
	trx.Abort()

	r, _ = registry.Get()
	assert.True(t, r.IsAuthority(authority), "authority unchanged")
}

func TestNextId(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	if !assert.Nil(t, err) {
		return
	}
	r, err := registry.Initialise(trx, makeAccount(t))
	assert.Nil(t, err)

	assert.Equal(t, uint64(0), r.NextId(registry.Need))
	assert.Equal(t, uint64(1), r.NextId(registry.Need))
	assert.Equal(t, uint64(0), r.NextId(registry.Offer))
	assert.Equal(t, uint64(0), r.NextId(registry.Barter))
	r.Save(trx)
	assert.Nil(t, trx.Commit())

	trx, err = storage.NewDBTransaction()
	if !assert.Nil(t, err) {
		return
	}
	r, err = registry.Load(trx)
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), r.NextId(registry.Need))
	assert.Equal(t, uint64(0), r.NextId(registry.Deal))
	r.Save(trx)
	trx.Abort()

	r, err = registry.Get()
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), r.NeedCounter, "aborted allocation not kept")
	assert.Equal(t, uint64(1), r.OfferCounter)
	assert.Equal(t, uint64(0), r.DealCounter)
	assert.Equal(t, uint64(1), r.BarterCounter)
}
