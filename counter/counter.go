// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - connection counts shared by the RPC listeners
package counter

import (
	"sync/atomic"
)

// Counter - number of open connections
type Counter uint64

// Increment - add one, returns the new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Decrement - subtract one, returns the new value
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Acquire - take a slot if fewer than limit are in use
//
// a true result must be paired with Decrement
func (c *Counter) Acquire(limit uint64) bool {
	if c.Increment() <= limit {
		return true
	}
	c.Decrement()
	return false
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - no connections open
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
