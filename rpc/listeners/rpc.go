// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/counter"
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/util"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// RPCConfiguration - configuration file data for RPC setup
//
// certificate and private key are file names, made absolute by the
// configuration loader
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	log      *logger.L
	listener *listener.MultiListener
	count    *counter.Counter
	server   *rpc.Server
}

// Serve - start accepting connections on every listen address
func (r *rpcListener) Serve() error {
	r.log.Infof("starting server: %s", logName)
	r.listener.Start(r)
	return nil
}

// attached to the multi listener, runs once per connection
func callback(conn *listener.ClientConnection, argument interface{}) {
	r := argument.(*rpcListener)

	r.count.Increment()
	defer r.count.Decrement()

	codec := jsonrpc.NewServerCodec(conn)
	defer codec.Close()
	r.server.ServeCodec(codec)
}

func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint util.FingerprintBytes,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	r := &rpcListener{
		log:    log,
		count:  count,
		server: server,
	}

	limiter := listener.NewLimiter(int(configuration.MaximumConnections))

	ml, err := listener.NewMultiListener(logName, configuration.Listen, tlsConfig, limiter, callback)
	if nil != err {
		log.Errorf("invalid %s listen addresses: %s", logName, err)
		return nil, err
	}
	r.listener = ml

	return r, nil
}
