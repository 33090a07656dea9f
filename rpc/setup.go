// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net/rpc"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/counter"
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/metrics"
	"github.com/tessera-ledger/tesserad/rpc/certificate"
	"github.com/tessera-ledger/tesserad/rpc/handler"
	"github.com/tessera-ledger/tesserad/rpc/listeners"
	"github.com/tessera-ledger/tesserad/rpc/node"
	"github.com/tessera-ledger/tesserad/rpc/server"
)

const (
	tlsName   = "client_rpc"
	httpsName = "http_rpc"
)

// active connections over the TLS listener
var connectionCountRPC counter.Counter

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the RPC and HTTPS listeners
//
// custody and adjust may be nil, Node.Info and Node.AdvanceClock
// degrade accordingly
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, custody node.CustodyReader, adjust node.AdjustFunc) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfiguration, certificateFingerprint, err := certificate.Get(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	s := server.Create(log, version, &connectionCountRPC, custody, adjust)

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		s,
		tlsConfiguration,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	err = initialiseHTTPS(httpsConfiguration, s, version)
	if nil != err {
		return err
	}

	metrics.RegisterGauge("rpc_connections", "active RPC connections", func() float64 {
		return float64(connectionCountRPC.Uint64())
	})

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// start the HTTPS status server sharing the RPC services
func initialiseHTTPS(configuration *listeners.HTTPSConfiguration, s *rpc.Server, version string) error {

	log := globalData.log

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil
	}

	tlsConfiguration, certificateFingerprint, err := certificate.Get(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, certificateFingerprint)

	hdlr := handler.New(log, s, time.Now(), version, configuration.MaximumConnections)

	httpsListener, err := listeners.NewHTTPS(configuration, log, tlsConfiguration, hdlr)
	if nil != err {
		return err
	}

	return httpsListener.Serve()
}
