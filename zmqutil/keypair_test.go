// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/zmqutil"
)

func TestMakeKeyPair(t *testing.T) {
	dir, err := ioutil.TempDir("", "zmqutil")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	publicFile := filepath.Join(dir, "publisher.public")
	privateFile := filepath.Join(dir, "publisher.private")

	err = zmqutil.MakeKeyPair(publicFile, privateFile)
	assert.Nil(t, err, "wrong make error")

	publicKey, err := zmqutil.ReadPublicKeyFile(publicFile)
	assert.Nil(t, err, "wrong public read error")
	assert.Equal(t, 32, len(publicKey), "wrong public length")

	privateKey, err := zmqutil.ReadPrivateKeyFile(privateFile)
	assert.Nil(t, err, "wrong private read error")
	assert.Equal(t, 32, len(privateKey), "wrong private length")

	_, err = zmqutil.ReadPublicKeyFile(privateFile)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "private read as public")

	err = zmqutil.MakeKeyPair(publicFile, privateFile)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "overwrote key files")

	info, err := os.Stat(privateFile)
	assert.Nil(t, err, "wrong stat error")
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "private key readable by others")
}

func TestParseKey(t *testing.T) {
	zeros := strings.Repeat("00", 32)

	tests := []struct {
		text    string
		private bool
		err     error
	}{
		{"PUBLIC:" + zeros, false, nil},
		{"  PRIVATE:" + zeros + "\n", true, nil},
		{"PUBLIC:" + zeros[2:], false, fault.InvalidPublicKeyFile},
		{"PRIVATE:" + zeros + "00", false, fault.InvalidPrivateKeyFile},
		{"PRIVATE:zz" + zeros[2:], false, fault.InvalidPrivateKeyFile},
		{zeros, false, fault.InvalidPublicKeyFile},
	}

	for i, item := range tests {
		key, private, err := zmqutil.ParseKey(item.text)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		if nil == item.err {
			assert.Equal(t, item.private, private, "%d: wrong kind", i)
			assert.Equal(t, make([]byte, 32), key, "%d: wrong key", i)
		}
	}
}

func TestNewSubscriber(t *testing.T) {
	_, err := zmqutil.NewSubscriber(make([]byte, 32), make([]byte, 31), 0)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "wrong public key error")

	_, err = zmqutil.NewSubscriber(make([]byte, 3), make([]byte, 32), 0)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "wrong private key error")

	s, err := zmqutil.NewSubscriber(make([]byte, 32), make([]byte, 32), 0)
	assert.Nil(t, err, "wrong create error")

	_, err = s.Receive()
	assert.Equal(t, fault.NotInitialised, err, "receive before connect")
	assert.Nil(t, s.Close(), "close before connect")
}

func TestNewKeyPair(t *testing.T) {
	public, private, err := zmqutil.NewKeyPair()
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, 32, len(public), "wrong public length")
	assert.Equal(t, 32, len(private), "wrong private length")
	assert.NotEqual(t, public, private, "keys must differ")
}
