// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Every marketplace and barter rejection is a single error value so
// callers compare by identity.  The class of an error (state,
// authorisation, length, balance, ...) is its type and is tested with
// the IsErrX functions; the RPC layer returns the message text to
// clients unchanged.
package fault
