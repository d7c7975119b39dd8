// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/storage"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - file logger at critical level in a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// SetupTestDatabase - open a scratch database, needs SetupTestLogger first
func SetupTestDatabase() error {
	return storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
}

// TeardownTestDatabase - close the scratch database
func TeardownTestDatabase() {
	storage.Finalise()
}

func removeFiles() {
	os.RemoveAll(dir)
}

// CertificatePair - a fresh self signed certificate and key in PEM form
func CertificatePair() (string, string) {
	validUntil := time.Now().Add(24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair("clawswapd test", validUntil, false, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	return string(cert), string(key)
}

// TestKey - a new test network private key
func TestKey() *account.PrivateKey {
	key, err := account.NewPrivateKey(true)
	if nil != err {
		panic(err)
	}
	return key
}

// LiveKey - a new live network private key
func LiveKey() *account.PrivateKey {
	key, err := account.NewPrivateKey(false)
	if nil != err {
		panic(err)
	}
	return key
}
