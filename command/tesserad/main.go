// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/asset"
	"github.com/tessera-ledger/tesserad/clock"
	"github.com/tessera-ledger/tesserad/escrow"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/ledger"
	"github.com/tessera-ledger/tesserad/mode"
	"github.com/tessera-ledger/tesserad/publish"
	"github.com/tessera-ledger/tesserad/rpc"
	"github.com/tessera-ledger/tesserad/rpc/node"
	"github.com/tessera-ledger/tesserad/settlement"
	"github.com/tessera-ledger/tesserad/storage"
	"github.com/tessera-ledger/tesserad/version"
	"github.com/tessera-ledger/tesserad/zmqutil"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version.Version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Network)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// general info
	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, theConfiguration.Network, false)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// settlement adapter selection
	var adapter settlement.Adapter
	var custody node.CustodyReader

	switch theConfiguration.Settlement.Mode {
	case settleCustodian:
		log.Info("initialise custodian")
		err = settlement.Initialise(theConfiguration.Settlement.DataFile, theConfiguration.Settlement.Seeds)
		if nil != err {
			log.Criticalf("custodian initialise error: %s", err)
			exitwithstatus.Message("custodian initialise error: %s", err)
		}
		defer settlement.Finalise()
		adapter = settlement.Custodian()
		custody = readCustody

	case settleRemote:
		timeout := time.Duration(theConfiguration.Settlement.TimeoutSeconds) * time.Second
		adapter = settlement.NewRemote(theConfiguration.Settlement.Endpoint, timeout)
	}

	// logical tick source
	var ticker clock.Clock
	var adjust node.AdjustFunc

	switch theConfiguration.Clock.Source {
	case clockStepped:
		stepped := clock.NewStepped(theConfiguration.Clock.StartTick)
		ticker = stepped
		adjust = stepped.Advance
		log.Warnf("stepped clock at: %d", stepped.Tick())
	default:
		ticker = clock.NewWall()
	}

	// optional administrator identity for valuation override
	administrator := identity.Identity{}
	if "" != theConfiguration.Administrator {
		administrator, err = identity.FromBase58(theConfiguration.Administrator)
		if nil != err {
			log.Criticalf("administrator: %q error: %s", theConfiguration.Administrator, err)
			exitwithstatus.Message("administrator: %q error: %s", theConfiguration.Administrator, err)
		}
		if err = administrator.ValidForNetwork(mode.IsTesting()); nil != err {
			log.Criticalf("administrator: %q error: %s", theConfiguration.Administrator, err)
			exitwithstatus.Message("administrator: %q error: %s", theConfiguration.Administrator, err)
		}
	}

	// the asset registry
	log.Info("initialise asset")
	err = asset.Initialise(storage.Pool.Assets, ticker, administrator, mode.IsTesting())
	if nil != err {
		log.Criticalf("asset initialise error: %s", err)
		exitwithstatus.Message("asset initialise error: %s", err)
	}
	defer asset.Finalise()

	// the token ledger
	log.Info("initialise ledger")
	err = ledger.Initialise(storage.Pool.Assets, storage.Pool.Balances, storage.Pool.Holders, mode.IsTesting())
	if nil != err {
		log.Criticalf("ledger initialise error: %s", err)
		exitwithstatus.Message("ledger initialise error: %s", err)
	}
	defer ledger.Finalise()

	// the escrow state machine
	log.Info("initialise escrow")
	err = escrow.Initialise(storage.Pool.Escrows, storage.Pool.Assets, ticker, adapter, mode.IsTesting())
	if nil != err {
		log.Criticalf("escrow initialise error: %s", err)
		exitwithstatus.Message("escrow initialise error: %s", err)
	}
	defer escrow.Finalise()

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, theConfiguration) {
		return
	}

	// the node stays in resynchronise mode until the database passes
	// the consistency scan
	log.Info("verify ledger")
	err = verifyLedger()
	if nil != err {
		log.Criticalf("ledger verify error: %s", err)
		exitwithstatus.Message("ledger verify error: %s", err)
	}

	// initialise encryption
	err = zmqutil.StartAuthentication()
	if nil != err {
		log.Criticalf("zmq.AuthStart: error: %s", err)
		exitwithstatus.Message("zmq.AuthStart: error: %s", err)
	}

	// start up the publishing background processes
	err = publish.Initialise(&theConfiguration.Publishing)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer publish.Finalise()

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, &theConfiguration.HttpsRPC, version.Version, custody, adjust)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// database is consistent and all surfaces are up
	mode.Set(mode.Normal)

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		go memstats()
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}

// custody totals for Node.Info, only wired for the local custodian
func readCustody() *node.CustodyInfo {
	accounts, releases := settlement.ReadCounters()
	return &node.CustodyInfo{
		Held:     settlement.CustodyBalance(),
		Total:    settlement.TotalFunds(),
		Accounts: accounts,
		Releases: releases,
	}
}
