// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/clawswapd/messagebus"
	"github.com/bitmark-inc/logger"
)

const (
	heartbeatInterval = 60 * time.Second

	// topics
	EventTopic     = "event"
	HeartbeatTopic = "heart"
)

// Payload - JSON body of an event message
type Payload struct {
	Name string      `json:"name"`
	Data interface{} `json:"data"`
}

type broadcaster struct {
	queue   <-chan messagebus.Message
	socket4 *zmq.Socket
	socket6 *zmq.Socket
	version string
}

// EncodeEvent - the two message parts sent for one bus item
func EncodeEvent(m messagebus.Message) ([][]byte, error) {
	data, err := json.Marshal(Payload{
		Name: m.Command,
		Data: m.Parameters,
	})
	if nil != err {
		return nil, err
	}
	return [][]byte{[]byte(EventTopic), data}, nil
}

func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := args.(*logger.L)

	log.Info("starting…")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case m := <-brdc.queue:
			parts, err := EncodeEvent(m)
			if nil != err {
				log.Errorf("encode: %s  error: %s", m.Command, err)
				continue loop
			}
			log.Debugf("publish: %s", parts[1])
			brdc.send(log, parts)

		case <-heartbeat.C:
			brdc.send(log, [][]byte{[]byte(HeartbeatTopic), []byte(brdc.version)})
		}
	}

	messagebus.Bus.Broadcast.Release(brdc.queue)

	for _, socket := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil != socket {
			socket.Close()
		}
	}
	log.Info("stopped")
}

// PUB sockets never block, a subscriber that is too slow loses messages
func (brdc *broadcaster) send(log *logger.L, parts [][]byte) {
	for _, socket := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil == socket {
			continue
		}
		_, err := socket.SendMessage(parts)
		if nil != err {
			log.Errorf("send error: %s", err)
		}
	}
}
