// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package eventlog - persistent numbered record of emitted events
//
// a background process drains the broadcast bus and appends each
// event to the Events pool keyed by a big endian sequence number
package eventlog

import (
	"encoding/binary"
	"encoding/json"
	"sync"
	"time"

	"github.com/bitmark-inc/clawswapd/background"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/messagebus"
	"github.com/bitmark-inc/clawswapd/storage"
	"github.com/bitmark-inc/logger"
)

// MaximumFetchCount - largest page Fetch may return
const MaximumFetchCount = 100

const queueSize = 1000

// Entry - one logged event
type Entry struct {
	Sequence  uint64          `json:"sequence,string"`
	Name      string          `json:"name"`
	Timestamp int64           `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

type logData struct {
	sync.Mutex

	log *logger.L

	// next sequence number to assign
	next uint64

	background *background.T

	// set once during initialise
	initialised bool
}

var globalData logData

// Initialise - start recording events from the bus
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("eventlog")
	globalData.log.Info("starting…")

	globalData.next = 0
	if last, found := storage.Pool.Events.LastElement(); found {
		if 8 != len(last.Key) {
			globalData.log.Criticalf("corrupt event key: %x", last.Key)
			return fault.RecordTruncated
		}
		globalData.next = binary.BigEndian.Uint64(last.Key) + 1
	}
	globalData.log.Infof("next sequence: %d", globalData.next)

	globalData.initialised = true

	queue := messagebus.Bus.Broadcast.Chan(queueSize)
	globalData.background = background.Start(background.Processes{
		&recorder{queue: queue},
	}, globalData.log)

	return nil
}

// Finalise - stop recording
func Finalise() error {
	globalData.Lock()
	if !globalData.initialised {
		globalData.Unlock()
		return fault.NotInitialised
	}
	globalData.log.Info("shutting down…")
	globalData.log.Flush()
	globalData.Unlock()

	// recorder takes the lock for each append
	globalData.background.Stop()

	globalData.Lock()
	globalData.initialised = false
	globalData.log.Info("finished")
	globalData.log.Flush()
	globalData.Unlock()

	return nil
}

// Append - number and store one event, returns its sequence
func Append(name string, data interface{}, timestamp int64) (uint64, error) {
	buffer, err := json.Marshal(data)
	if nil != err {
		return 0, err
	}

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	entry := Entry{
		Sequence:  globalData.next,
		Name:      name,
		Timestamp: timestamp,
		Data:      buffer,
	}
	packed, err := json.Marshal(entry)
	if nil != err {
		return 0, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}
	defer trx.Abort()

	trx.Put(storage.Pool.Events, sequenceKey(entry.Sequence), packed)
	err = trx.Commit()
	if nil != err {
		return 0, err
	}

	globalData.next += 1
	return entry.Sequence, nil
}

// Fetch - up to count entries with sequence >= start
func Fetch(start uint64, count int) ([]Entry, error) {
	if count <= 0 || count > MaximumFetchCount {
		return nil, fault.InvalidCount
	}

	elements, err := storage.Pool.Events.NewFetchCursor().Seek(sequenceKey(start)).Fetch(count)
	if nil != err {
		return nil, err
	}

	entries := make([]Entry, len(elements))
	for i, e := range elements {
		err := json.Unmarshal(e.Value, &entries[i])
		if nil != err {
			return nil, err
		}
	}
	return entries, nil
}

// NextSequence - the sequence the next event will receive
func NextSequence() uint64 {
	globalData.Lock()
	defer globalData.Unlock()
	return globalData.next
}

func sequenceKey(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}

// background process draining one bus queue
type recorder struct {
	queue <-chan messagebus.Message
}

func (r *recorder) Run(args interface{}, shutdown <-chan struct{}) {
	log := args.(*logger.L)

	log.Info("recorder: starting…")
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case m := <-r.queue:
			if storage.IsReadOnly() {
				continue loop
			}
			n, err := Append(m.Command, m.Parameters, time.Now().Unix())
			if nil != err {
				log.Errorf("append: %s  error: %s", m.Command, err)
				continue loop
			}
			log.Debugf("event: %d  %s", n, m.Command)
		}
	}
	messagebus.Bus.Broadcast.Release(r.queue)
	log.Info("recorder: stopped")
}
