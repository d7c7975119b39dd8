// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode

import (
	"sync"

	"github.com/bitmark-inc/clawswapd/chain"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/logger"
)

// Mode - daemon run state
//
// Starting rejects all mutating requests, Normal accepts them
type Mode int

// all possible modes
const (
	Stopped Mode = iota
	Starting
	Normal
	maximum
)

var modeNames = [maximum]string{
	Stopped:  "Stopped",
	Starting: "Starting",
	Normal:   "Normal",
}

var globalData struct {
	sync.RWMutex
	log         *logger.L
	mode        Mode
	chain       string
	testing     bool
	initialised bool
}

// Initialise - enter Starting for the named chain
func Initialise(chainName string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("mode")
	log.Info("starting…")

	if !chain.Valid(chainName) {
		log.Criticalf("mode cannot handle chain: '%s'", chainName)
		return fault.InvalidChain
	}

	globalData.log = log
	globalData.chain = chainName
	globalData.testing = chain.AllowsCredit(chainName)
	globalData.mode = Starting
	globalData.initialised = true

	log.Infof("chain: %s  testing: %t", chainName, globalData.testing)

	return nil
}

// Finalise - return to Stopped
func Finalise() error {
	globalData.Lock()
	if !globalData.initialised {
		globalData.Unlock()
		return fault.NotInitialised
	}
	log := globalData.log
	globalData.Unlock()

	log.Info("shutting down…")

	Set(Stopped)

	globalData.Lock()
	globalData.initialised = false
	globalData.Unlock()

	log.Info("finished")
	log.Flush()

	return nil
}

// Set - change mode, out of range values are ignored
func Set(mode Mode) {
	globalData.Lock()
	log := globalData.log
	if mode < Stopped || mode >= maximum {
		globalData.Unlock()
		if nil != log {
			log.Errorf("ignore invalid set: %d", mode)
		}
		return
	}
	previous := globalData.mode
	globalData.mode = mode
	globalData.Unlock()

	if nil != log {
		log.Infof("set: %s → %s", previous, mode)
	}
}

// Is - detect mode
func Is(mode Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return mode == globalData.mode
}

// IsNot - detect mode
func IsNot(mode Mode) bool {
	return !Is(mode)
}

// IsTesting - true on chains that allow credit
func IsTesting() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.testing
}

// ChainName - name of the current chain
func ChainName() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.chain
}

// String - current mode represented as a string
func String() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.mode.String()
}

func (m Mode) String() string {
	if m < Stopped || m >= maximum {
		return "*Unknown*"
	}
	return modeNames[m]
}
