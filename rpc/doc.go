// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - set up and handle all of the incoming JSON RPC requests
// from marketplace clients
//
// standard golang RPC clients can access these services either over a
// TLS connection (client_rpc) or by HTTPS POST to /clawswapd/rpc
// (https_rpc)
package rpc
