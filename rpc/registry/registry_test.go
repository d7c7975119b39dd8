// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clawswapd/event"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/market"
	"github.com/bitmark-inc/clawswapd/mode"
	"github.com/bitmark-inc/clawswapd/registry"
	"github.com/bitmark-inc/clawswapd/rpc/fixtures"
	"github.com/bitmark-inc/clawswapd/rpc/mocks"
	rpcregistry "github.com/bitmark-inc/clawswapd/rpc/registry"
	"github.com/bitmark-inc/clawswapd/transactionrecord"
	"github.com/bitmark-inc/logger"
)

func normal(mode.Mode) bool { return true }
func isTesting() bool       { return true }

func TestRegistryInitialise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	key := fixtures.TestKey()
	arguments := transactionrecord.RegistryInitialise{
		Authority: key.Account(),
		Nonce:     1,
	}
	message, _ := arguments.Pack(key.Account())
	arguments.Signature = key.Sign(message)

	created := &registry.Registry{Authority: key.Account()}

	m := mocks.NewMockMarket(ctl)
	m.EXPECT().InitialiseRegistry(gomock.Any(), key.Account()).Return(created, nil).Times(1)
	m.EXPECT().InitialiseRegistry(gomock.Any(), key.Account()).Return(nil, fault.AlreadyInitialised).Times(1)

	r := rpcregistry.New(logger.New(fixtures.LogCategory), normal, isTesting, m, false)

	var reply rpcregistry.InitialiseReply
	err := r.Initialise(&arguments, &reply)
	assert.Nil(t, err, "wrong Initialise")
	assert.Equal(t, created, reply.Registry, "wrong registry")

	err = r.Initialise(&arguments, &reply)
	assert.Equal(t, fault.AlreadyInitialised, err, "second Initialise")
}

func TestRegistryInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := fixtures.SetupTestDatabase()
	if !assert.Nil(t, err, "database") {
		t.FailNow()
	}
	defer fixtures.TeardownTestDatabase()

	engine := market.New(logger.New(fixtures.LogCategory), event.BusEmitter{}, nil)
	r := rpcregistry.New(logger.New(fixtures.LogCategory), normal, isTesting, engine, false)

	var info registry.Registry
	err = r.Info(&rpcregistry.InfoArguments{}, &info)
	assert.Equal(t, fault.NotInitialised, err, "info before initialise")

	authority := fixtures.TestKey().Account()
	_, err = engine.InitialiseRegistry(nil, authority)
	assert.Nil(t, err, "registry")
	_, err = engine.CreateNeed(nil, authority, "one", "", "", 0, 0)
	assert.Nil(t, err, "create need")

	err = r.Info(&rpcregistry.InfoArguments{}, &info)
	assert.Nil(t, err, "wrong Info")
	assert.True(t, authority.Equal(info.Authority), "wrong authority")
	assert.Equal(t, uint64(1), info.NeedCounter, "wrong need counter")
	assert.Equal(t, uint64(0), info.DealCounter, "wrong deal counter")
}
