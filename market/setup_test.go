// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/event"
	"github.com/bitmark-inc/clawswapd/event/mocks"
	"github.com/bitmark-inc/clawswapd/market"
	"github.com/bitmark-inc/clawswapd/storage"
)

const (
	testingDirName = "testing"
	testTimestamp  = 1580000000
)

// engine under test plus everything it emitted
type fixture struct {
	ctl       *gomock.Controller
	engine    *market.Engine
	events    []event.Event
	authority *account.Account
}

func setup(t *testing.T) *fixture {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(filepath.Join(testingDirName, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	f := &fixture{
		ctl:       gomock.NewController(t),
		authority: makeAccount(t),
	}

	emitter := mocks.NewMockEmitter(f.ctl)
	emitter.EXPECT().Emit(gomock.Any()).Do(func(e event.Event) {
		f.events = append(f.events, e)
	}).AnyTimes()

	clock := func() time.Time {
		return time.Unix(testTimestamp, 0)
	}
	f.engine = market.New(logger.New("market"), emitter, clock)

	_, err = f.engine.InitialiseRegistry(nil, f.authority)
	if nil != err {
		t.Fatalf("registry initialise error: %s", err)
	}
	return f
}

func teardown(f *fixture) {
	f.ctl.Finish()
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func makeAccount(t *testing.T) *account.Account {
	privateKey, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	return privateKey.Account()
}

// names of the emitted events in order
func (f *fixture) eventNames() []string {
	names := make([]string, len(f.events))
	for i, e := range f.events {
		names[i] = e.Name()
	}
	return names
}

func (f *fixture) fund(t *testing.T, acc *account.Account, amount uint64) {
	_, err := f.engine.Credit(nil, acc, amount)
	if nil != err {
		t.Fatalf("credit error: %s", err)
	}
}
