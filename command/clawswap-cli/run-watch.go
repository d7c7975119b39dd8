// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/clawswapd/publish"
	"github.com/bitmark-inc/clawswapd/zmqutil"
)

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	publisher := c.String("publisher")
	if "" == publisher {
		return ErrMissingOption
	}

	serverKey, err := publisherKey(m, c.String("server-key"))
	if nil != err {
		return err
	}

	public, private, err := zmqutil.NewKeyPair()
	if nil != err {
		return err
	}

	subscriber, err := zmqutil.NewSubscriber(private, public, 0)
	if nil != err {
		return err
	}
	defer subscriber.Close()

	err = subscriber.Connect(publisher, serverKey)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "subscribed: %s\n", subscriber)
	}

	limit := c.Int("limit")
	for n := 0; 0 == limit || n < limit; {
		parts, err := subscriber.Receive()
		if nil != err {
			return err
		}
		if 2 != len(parts) {
			continue
		}
		topic := string(parts[0])
		if publish.EventTopic != topic {
			if m.verbose {
				fmt.Fprintf(m.e, "%s: %s\n", topic, parts[1])
			}
			continue
		}

		var payload publish.Payload
		if err := json.Unmarshal(parts[1], &payload); nil != err {
			fmt.Fprintf(m.e, "invalid event: %s\n", err)
			continue
		}
		if err := printJson(m.w, payload); nil != err {
			return err
		}
		n += 1
	}
	return nil
}

// key from the flag or from the daemon's info
func publisherKey(m *metadata, text string) ([]byte, error) {
	if "" == text {
		client, err := queryClient(m)
		if nil != err {
			return nil, err
		}
		defer client.Close()

		info, err := client.GetInfo()
		if nil != err {
			return nil, err
		}
		text = info.PublicKey
	}
	if "" == text {
		return nil, ErrMissingOption
	}
	return hex.DecodeString(text)
}
