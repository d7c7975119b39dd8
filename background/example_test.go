// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"

	"github.com/bitmark-inc/clawswapd/background"
)

type drain struct {
	queue chan string
	done  chan struct{}
}

func Example() {
	d := &drain{
		queue: make(chan string, 2),
		done:  make(chan struct{}),
	}
	d.queue <- "first"
	d.queue <- "second"

	p := background.Start(background.Processes{d}, "worker")
	<-d.done
	p.Stop()

	// Output:
	// worker: first
	// worker: second
}

func (d *drain) Run(args interface{}, shutdown <-chan struct{}) {
	name := args.(string)
	for {
		select {
		case <-shutdown:
			return
		case item := <-d.queue:
			fmt.Printf("%s: %s\n", name, item)
			if 0 == len(d.queue) {
				close(d.done)
			}
		}
	}
}
