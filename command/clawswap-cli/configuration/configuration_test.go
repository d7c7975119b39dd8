// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/fault"
)

// test encrypt and decrypt one string with various passwords
func TestEncryptDecrypt(t *testing.T) {

	plainText := "The Quick Brown Fox Jumps Over The Lazy Dog"

	passwords := []string{"test", "123", "444", "m,erRGhtk%$33ug62sd al/fajfb.adv"}

	for _, password := range passwords {
		salt, key, err := hashPassword(password)
		if nil != err {
			t.Fatalf("hash error: %s", err)
		}

		encrypted, err := encryptData(plainText, key)
		if nil != err {
			t.Fatalf("encrypt error: %s", err)
		}

		key2, err := generateKey(password, salt)
		if nil != err {
			t.Fatalf("generateKey error: %s", err)
		}

		decrypted, err := decryptData(encrypted, key2)
		if nil != err {
			t.Fatalf("decrypt error: %s", err)
		}
		assert.Equal(t, plainText, decrypted, "wrong plain text")

		wrong, err := generateKey(password+"x", salt)
		if nil != err {
			t.Fatalf("generateKey error: %s", err)
		}
		_, err = decryptData(encrypted, wrong)
		assert.Equal(t, fault.CryptoFailed, err, "decrypted with wrong key")
	}
}

func TestEncryptLimits(t *testing.T) {
	_, key, err := hashPassword("password")
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}
	_, err = encryptData("short", key)
	assert.Equal(t, fault.CryptoFailed, err, "short data encrypted")

	_, err = decryptData("", key)
	assert.Equal(t, fault.CryptoFailed, err, "empty ciphertext decrypted")
}

func TestSaltText(t *testing.T) {
	salt, err := MakeSalt()
	if nil != err {
		t.Fatalf("make salt error: %s", err)
	}
	text, err := salt.MarshalText()
	assert.Nil(t, err, "marshal")
	assert.Equal(t, salt.String(), string(text), "wrong text")

	var s Salt
	assert.Nil(t, s.UnmarshalText(text), "unmarshal")
	assert.Equal(t, *salt, s, "wrong salt")

	assert.Equal(t, fault.InvalidKeyLength, s.UnmarshalText([]byte("abcd")), "short salt accepted")
}

func TestIdentities(t *testing.T) {
	dir, err := ioutil.TempDir("", "clawswap-cli")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "testing-cli.json")

	key, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("key error: %s", err)
	}
	liveKey, err := account.NewPrivateKey(false)
	if nil != err {
		t.Fatalf("key error: %s", err)
	}

	config := New("127.0.0.1:2130", true)
	err = config.AddIdentity("alice", "first", key, "secret password")
	assert.Nil(t, err, "add identity")
	assert.Equal(t, "alice", config.DefaultIdentity, "wrong default")

	err = config.AddIdentity("alice", "again", key, "secret password")
	assert.Equal(t, ErrIdentityNameAlreadyExists, err, "duplicate name")

	err = config.AddIdentity("bob", "live key", liveKey, "secret password")
	assert.Equal(t, ErrNetworkMismatch, err, "live key on test configuration")

	assert.Nil(t, Save(fileName, config), "save")

	loaded, err := Load(fileName)
	if nil != err {
		t.Fatalf("load error: %s", err)
	}
	assert.Equal(t, config, loaded, "wrong reload")
	assert.Equal(t, []string{"alice"}, loaded.Names(), "wrong names")

	acc, err := loaded.Account("alice")
	assert.Nil(t, err, "account")
	assert.True(t, key.Account().Equal(acc), "wrong account")

	private, err := loaded.Private("secret password", "alice")
	assert.Nil(t, err, "private")
	assert.Equal(t, key.String(), private.String(), "wrong private key")

	_, err = loaded.Private("wrong password", "alice")
	assert.Equal(t, fault.WrongPassword, err, "wrong password accepted")

	_, err = loaded.Private("secret password", "carol")
	assert.Equal(t, ErrIdentityNameNotFound, err, "missing identity")

	// second save keeps a backup
	assert.Nil(t, Save(fileName, loaded), "save again")
	_, err = os.Stat(fileName + ".bk")
	assert.Nil(t, err, "no backup")
}
