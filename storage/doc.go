// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a single LevelDB database split into a series of
// tables.  Each table is defined by a prefix byte that is obtained
// from the prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++      = concatenation of byte data
// 3. id      = big endian uint64 (8 bytes)
// 4. account = key variant ++ 32 byte ed25519 public key
// 5. txId    = request digest as 32 byte SHA3-256(packed request)
// 6. amount  = big endian uint64 (8 bytes)
//
// Marketplace:
//
//	G ++ "registry"        - the global registry
//	                         data: packed registry
//	N ++ id                - need
//	                         data: packed need
//	O ++ id                - offer
//	                         data: packed offer
//	D ++ id                - deal
//	                         data: packed deal
//	B ++ id                - barter
//	                         data: packed barter
//
// Funds:
//
//	A ++ account           - spendable balance
//	                         data: amount
//	E ++ deal id           - escrow held for a deal
//	                         data: amount
//
// Indexes:
//
//	C ++ account ++ id     - needs created by account
//	                         data: (empty)
//	F ++ need id ++ id     - offers made against a need
//	                         data: (empty)
//	R ++ account ++ id     - offers made by provider
//	                         data: (empty)
//	P ++ account ++ id     - deals where account is client or provider
//	                         data: (empty)
//	Q ++ account ++ id     - barters where account is initiator or counterpart
//	                         data: (empty)
//
// Other:
//
//	T ++ txId              - processed signed requests (replay rejection)
//	                         data: unix time of acceptance
//	V ++ sequence          - event log
//	                         data: JSON event
package storage
