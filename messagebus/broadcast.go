// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Message - an item on the bus
type Message struct {
	Command    string      // event name
	Parameters interface{} // event value
}

// BroadcastQueue - one sender, many listeners
type BroadcastQueue struct {
	sync.RWMutex
	listeners []chan Message
	dropped   uint64
}

// the exported queues
type busses struct {
	Broadcast *BroadcastQueue
}

// Bus - all available message queues
var Bus = busses{
	Broadcast: &BroadcastQueue{},
}

// Send - deliver to every listener that has room
func (queue *BroadcastQueue) Send(command string, parameters interface{}) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.RLock()
	dropped := uint64(0)
	for _, listener := range queue.listeners {
		select {
		case listener <- m:
		default:
			dropped += 1
		}
	}
	queue.RUnlock()

	if dropped > 0 {
		queue.Lock()
		queue.dropped += dropped
		queue.Unlock()
	}
}

// Chan - add a listener with a queue of size items (0 => default)
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()
	return c
}

// Release - remove a listener and close its channel
func (queue *BroadcastQueue) Release(c <-chan Message) {
	queue.Lock()
	defer queue.Unlock()

	for i, listener := range queue.listeners {
		if (<-chan Message)(listener) == c {
			queue.listeners = append(queue.listeners[:i], queue.listeners[i+1:]...)
			close(listener)
			return
		}
	}
}

// Dropped - count of messages not delivered to full listeners
func (queue *BroadcastQueue) Dropped() uint64 {
	queue.RLock()
	defer queue.RUnlock()
	return queue.dropped
}
