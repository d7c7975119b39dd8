// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/transactionrecord"
)

// ErrNoSigningKey - a mutating call needs a decrypted identity
var ErrNoSigningKey = fault.ProcessError("no signing key")

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	key     *account.PrivateKey
	testnet bool
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a clawswapd
//
// key may be nil for query only use
func NewClient(testnet bool, connect string, key *account.PrivateKey, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}

	return newClient(conn, testnet, key, verbose, handle), nil
}

func newClient(conn net.Conn, testnet bool, key *account.PrivateKey, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		key:     key,
		testnet: testnet,
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the clawswapd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// Account - the signing account, nil when no key is loaded
func (client *Client) Account() *account.Account {
	if nil == client.key {
		return nil
	}
	return client.key.Account()
}

// a fresh nonce so identical requests get distinct ids
func nonce() uint64 {
	return uint64(time.Now().UnixNano())
}

// sign a request with the client key, setSignature stores the
// signature in the concrete record
func (client *Client) sign(r transactionrecord.Request, setSignature func(account.Signature)) error {
	if nil == client.key {
		return ErrNoSigningKey
	}

	message, err := r.Pack(client.key.Account())
	if nil == err {
		return nil // already signed
	}
	if fault.InvalidSignature != err {
		return err
	}

	setSignature(client.key.Sign(message))

	_, err = r.Pack(client.key.Account())
	return err
}

// call one method with verbose tracing of the arguments and reply
func (client *Client) call(method string, arguments interface{}, reply interface{}) error {
	client.printJson(method+" request", arguments)

	err := client.client.Call(method, arguments, reply)
	if nil != err {
		return err
	}

	client.printJson(method+" reply", reply)
	return nil
}

func (client *Client) printJson(title string, message interface{}) {

	if !client.verbose {
		return
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(client.handle, "%s: JSON error: %s\n", title, err)
		return
	}

	fmt.Fprintf(client.handle, "%s:\n%s\n", title, b)
}
