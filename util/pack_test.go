// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		assert.Equal(t, item.encoded, util.ToVarint64(item.value), "%d: encode", i)

		value, count := util.FromVarint64(append(item.encoded, 0x97, 0x23))
		assert.Equal(t, item.value, value, "%d: decode", i)
		assert.Equal(t, len(item.encoded), count, "%d: count", i)
	}
}

func TestVarint64Truncated(t *testing.T) {
	for i, b := range [][]byte{{}, {0x80}, {0xff, 0xff}} {
		value, count := util.FromVarint64(b)
		assert.Equal(t, uint64(0), value, "%d: value", i)
		assert.Equal(t, 0, count, "%d: count", i)
	}
}

func TestUnpacker(t *testing.T) {
	buffer := util.AppendUint64(nil, 300)
	buffer = util.AppendString(buffer, "a title")
	buffer = util.AppendBytes(buffer, []byte{})
	buffer = util.AppendBool(buffer, true)
	buffer = util.AppendUint64(buffer, 0)

	u := util.NewUnpacker(buffer)
	assert.Equal(t, uint64(300), u.Uint64())
	assert.Equal(t, "a title", u.String())
	assert.Equal(t, []byte{}, u.Bytes())
	assert.True(t, u.Bool())
	assert.Equal(t, uint64(0), u.Uint64())
	assert.Nil(t, u.Err())
	assert.Equal(t, 0, u.Remaining())
	assert.Equal(t, len(buffer), u.Offset())
}

func TestUnpackerTruncated(t *testing.T) {
	buffer := util.AppendString(nil, "some text")

	u := util.NewUnpacker(buffer[:5])
	assert.Equal(t, "", u.String())
	assert.Equal(t, fault.RecordTruncated, u.Err())

	// error is sticky
	assert.Equal(t, uint64(0), u.Uint64())
	assert.False(t, u.Bool())
	assert.Equal(t, fault.RecordTruncated, u.Err())
}

func TestBase58(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0xfe, 0xff}
	s := util.ToBase58(data)
	assert.Equal(t, data, util.FromBase58(s))
	assert.Equal(t, []byte{}, util.FromBase58("0OIl"), "invalid alphabet")
}

func TestCanonicalIPandPort(t *testing.T) {
	tests := []struct {
		in  string
		out string
		err error
	}{
		{"127.0.0.1:1234", "127.0.0.1:1234", nil},
		{" 127.0.0.1 : 2130", "127.0.0.1:2130", nil},
		{"*:2135", "0.0.0.0:2135", nil},
		{"[::1]:443", "[::1]:443", nil},
		{"localhost:80", "", fault.InvalidIpAddress},
		{"127.0.0.1:0", "", fault.InvalidPortNumber},
		{"127.0.0.1:65536", "", fault.InvalidPortNumber},
		{"127.0.0.1", "", fault.InvalidIpAddress},
	}
	for i, item := range tests {
		s, err := util.CanonicalIPandPort(item.in)
		assert.Equal(t, item.err, err, "%d: error", i)
		assert.Equal(t, item.out, s, "%d: result", i)
	}
}
