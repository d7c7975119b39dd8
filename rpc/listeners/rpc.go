// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strconv"

	"github.com/bitmark-inc/clawswapd/counter"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/logger"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// a validated listen entry
type listenAddress struct {
	network string // tcp, tcp4 or tcp6
	address string // host:port suitable for net.Listen
}

type rpcListener struct {
	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	addresses      []listenAddress
}

// NewRPC - TLS JSON-RPC listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	addresses := make([]listenAddress, 0, len(configuration.Listen))
	for _, listen := range configuration.Listen {
		a, err := parseListenAddress(listen)
		if nil != err {
			log.Errorf("%s listen: %q  error: %s", logName, listen, err)
			return nil, err
		}
		addresses = append(addresses, a)
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	return &rpcListener{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		addresses:      addresses,
	}, nil
}

// Serve - start accepting on every listen address
func (r *rpcListener) Serve() error {
	for _, a := range r.addresses {
		r.log.Infof("starting RPC server: %s %s", a.network, a.address)
		listener, err := tls.Listen(a.network, a.address, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}

		go r.accept(listener)
	}
	return nil
}

// each accepted connection holds one slot of the shared counter
func (r *rpcListener) accept(listener net.Listener) {
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if nil != err {
			r.log.Errorf("rpc server terminated: accept error: %s", err)
			return
		}
		if !r.count.Acquire(r.maxConnections) {
			r.log.Warnf("connection limit reached, reject: %s", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}
		go func(conn net.Conn) {
			defer r.count.Decrement()
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
		}(conn)
	}
}

// accepts IPv4:PORT, [IPv6]:PORT and *:PORT for all interfaces
func parseListenAddress(listen string) (listenAddress, error) {
	host, port, err := net.SplitHostPort(listen)
	if nil != err {
		return listenAddress{}, fault.InvalidIpAddress
	}

	n, err := strconv.Atoi(port)
	if nil != err || n < 1 || n > 65535 {
		return listenAddress{}, fault.InvalidPortNumber
	}

	if "*" == host {
		return listenAddress{
			network: "tcp",
			address: net.JoinHostPort("::", port),
		}, nil
	}

	ip := net.ParseIP(host)
	if nil == ip {
		return listenAddress{}, fault.InvalidIpAddress
	}

	network := "tcp6"
	if nil != ip.To4() {
		network = "tcp4"
	}
	return listenAddress{
		network: network,
		address: net.JoinHostPort(ip.String(), port),
	}, nil
}
