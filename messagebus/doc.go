// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - best-effort fan out of committed events
//
// a sender never blocks: a listener whose queue is full misses the message
package messagebus
