// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/clawswapd/fault"
)

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// Structure of the result
// byte 1:  ext | B06 | B05 | B04 | B03 | B02 | B01 | B00
// byte 2:  ext | B13 | B12 | B11 | B10 | B09 | B08 | B07
// byte 3:  ext | B20 | B19 | B18 | B17 | B16 | B15 | B14
// byte 4:  ext | B27 | B26 | B25 | B24 | B23 | B22 | B21
// byte 5:  ext | B34 | B33 | B32 | B31 | B30 | B29 | B28
// byte 6:  ext | B41 | B40 | B39 | B38 | B37 | B36 | B35
// byte 7:  ext | B48 | B47 | B46 | B45 | B44 | B43 | B42
// byte 8:  ext | B55 | B54 | B53 | B52 | B51 | B50 | B49
// byte 9:  B63 | B62 | B61 | B60 | B59 | B58 | B57 | B56
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	if value < 0x80 {
		result = append(result, byte(value))
		return result
	}

	for i := 0; i < Varint64MaximumBytes && value != 0; i += 1 {
		ext := uint64(0x80)
		if value < 0x80 {
			ext = 0x00
		}
		result = append(result, byte(value|ext))
		value >>= 7
	}
	return result
}

// FromVarint64 - convert an array of up to Varint64MaximumBytes to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if varint64 buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)

	shift := uint(0)
	count := 0

	for count < len(buffer) {
		currByte := uint64(buffer[count])
		count += 1
		if count < Varint64MaximumBytes {
			result |= currByte & 0x7f << shift
			if 0 == currByte&0x80 {
				return result, count
			}
		} else {
			result |= currByte << shift
			return result, count
		}
		shift += 7
	}
	return 0, 0
}

// AppendUint64 - append a Varint64 encoded value
func AppendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, ToVarint64(value)...)
}

// AppendBytes - append a length prefixed byte slice
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// AppendString - append a length prefixed string
func AppendString(buffer []byte, s string) []byte {
	return AppendBytes(buffer, []byte(s))
}

// AppendBool - append a single byte 0/1
func AppendBool(buffer []byte, b bool) []byte {
	if b {
		return append(buffer, 1)
	}
	return append(buffer, 0)
}

// Unpacker - sequential decoder for buffers built by the Append functions
//
// the first decoding failure is sticky: subsequent calls return
// zero values and Err reports fault.RecordTruncated
type Unpacker struct {
	buffer []byte
	n      int
	err    error
}

// NewUnpacker - start decoding at the beginning of buffer
func NewUnpacker(buffer []byte) *Unpacker {
	return &Unpacker{
		buffer: buffer,
	}
}

// Uint64 - next Varint64 value
func (u *Unpacker) Uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, count := FromVarint64(u.buffer[u.n:])
	if 0 == count {
		u.err = fault.RecordTruncated
		return 0
	}
	u.n += count
	return value
}

// Bytes - next length prefixed byte slice (a copy)
func (u *Unpacker) Bytes() []byte {
	length := u.Uint64()
	if nil != u.err {
		return nil
	}
	if length > uint64(len(u.buffer)-u.n) {
		u.err = fault.RecordTruncated
		return nil
	}
	end := u.n + int(length)
	data := make([]byte, length)
	copy(data, u.buffer[u.n:end])
	u.n = end
	return data
}

// String - next length prefixed string
func (u *Unpacker) String() string {
	return string(u.Bytes())
}

// Bool - next single byte flag
func (u *Unpacker) Bool() bool {
	if nil != u.err {
		return false
	}
	if u.n >= len(u.buffer) {
		u.err = fault.RecordTruncated
		return false
	}
	b := u.buffer[u.n]
	u.n += 1
	return 0 != b
}

// Remaining - count of bytes not yet consumed
func (u *Unpacker) Remaining() int {
	return len(u.buffer) - u.n
}

// Offset - count of bytes consumed
func (u *Unpacker) Offset() int {
	return u.n
}

// Err - first error encountered, if any
func (u *Unpacker) Err() error {
	return u.err
}
