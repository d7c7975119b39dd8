// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"crypto/rand"
	"strings"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/util"
)

const (
	identifierSize = 32
)

// Subscriber - CURVE client side of a publisher
type Subscriber struct {
	publicKey  []byte
	privateKey []byte
	timeout    time.Duration
	address    string
	socket     *zmq.Socket
}

// NewSubscriber - subscriber with a client keypair
//
// a zero timeout makes Receive block
func NewSubscriber(privateKey []byte, publicKey []byte, timeout time.Duration) (*Subscriber, error) {
	if publicLength != len(publicKey) {
		return nil, fault.InvalidPublicKeyFile
	}
	if privateLength != len(privateKey) {
		return nil, fault.InvalidPrivateKeyFile
	}
	return &Subscriber{
		publicKey:  append([]byte{}, publicKey...),
		privateKey: append([]byte{}, privateKey...),
		timeout:    timeout,
	}, nil
}

// Connect - subscribe to all topics of the publisher at hostPort
func (s *Subscriber) Connect(hostPort string, serverPublicKey []byte) error {
	if err := s.Close(); nil != err {
		return err
	}

	canonical, err := util.CanonicalIPandPort(hostPort)
	if nil != err {
		return err
	}

	socket, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		return err
	}

	// local identity is a random value
	id := make([]byte, identifierSize)
	if _, err = rand.Read(id); nil != err {
		socket.Close()
		return err
	}

	options := []func() error{
		func() error { return socket.SetCurveServer(0) },
		func() error { return socket.SetCurvePublickey(string(s.publicKey)) },
		func() error { return socket.SetCurveSecretkey(string(s.privateKey)) },
		func() error { return socket.SetCurveServerkey(string(serverPublicKey)) },
		func() error { return socket.SetIdentity(string(id)) },
		func() error { return socket.SetLinger(0) },
		func() error { return socket.SetIpv6(strings.HasPrefix(canonical, "[")) },
		func() error { return socket.SetSubscribe("") },
	}
	if 0 != s.timeout {
		options = append(options, func() error { return socket.SetRcvtimeo(s.timeout) })
	}
	for _, set := range options {
		if err := set(); nil != err {
			socket.Close()
			return err
		}
	}

	s.address = "tcp://" + canonical
	if err := socket.Connect(s.address); nil != err {
		socket.Close()
		s.address = ""
		return err
	}
	s.socket = socket
	return nil
}

// Receive - next multipart message
func (s *Subscriber) Receive() ([][]byte, error) {
	if nil == s.socket {
		return nil, fault.NotInitialised
	}
	return s.socket.RecvMessageBytes(0)
}

// Close - disconnect, safe to call when not connected
func (s *Subscriber) Close() error {
	if nil == s.socket {
		return nil
	}
	s.socket.Disconnect(s.address)
	err := s.socket.Close()
	s.socket = nil
	s.address = ""
	return err
}

// String - connected address
func (s *Subscriber) String() string {
	return s.address
}
