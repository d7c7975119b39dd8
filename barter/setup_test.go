// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package barter_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/barter"
	"github.com/bitmark-inc/clawswapd/event"
	"github.com/bitmark-inc/clawswapd/event/mocks"
	"github.com/bitmark-inc/clawswapd/registry"
	"github.com/bitmark-inc/clawswapd/storage"
)

const (
	testingDirName = "testing"
)

type fixture struct {
	ctl    *gomock.Controller
	engine *barter.Engine
	events []event.Event
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

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	_, err = registry.Initialise(trx, makeAccount(t))
	if nil != err {
		t.Fatalf("registry initialise error: %s", err)
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}

	f := &fixture{
		ctl: gomock.NewController(t),
	}
	emitter := mocks.NewMockEmitter(f.ctl)
	emitter.EXPECT().Emit(gomock.Any()).Do(func(e event.Event) {
		f.events = append(f.events, e)
	}).AnyTimes()

	f.engine = barter.New(logger.New("barter"), emitter, func() time.Time {
		return time.Unix(1580000000, 0)
	})
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

func (f *fixture) eventNames() []string {
	names := make([]string, len(f.events))
	for i, e := range f.events {
		names[i] = e.Name()
	}
	return names
}
