// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/configuration"
	"github.com/tessera-ledger/tesserad/network"
	"github.com/tessera-ledger/tesserad/publish"
	"github.com/tessera-ledger/tesserad/rpc/listeners"
	"github.com/tessera-ledger/tesserad/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultBroadcastPublicKeyFile  = "broadcast.public"
	defaultBroadcastPrivateKeyFile = "broadcast.private"
	defaultKeyFile                 = "rpc.key"
	defaultCertificateFile         = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultLiveDatabase     = network.Live + ".leveldb"
	defaultTestingDatabase  = network.Testing + ".leveldb"
	defaultLocalDatabase    = network.Local + ".leveldb"

	defaultCustodyDataFile = "custody.data"

	defaultLogDirectory = "log"
	defaultLogFile      = "tesserad.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// clock sources
const (
	clockWall    = "wall"
	clockStepped = "stepped"
)

// settlement modes
const (
	settleCustodian = "custodian"
	settleRemote    = "remote"
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - directory and name of the ledger database
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// ClockType - selection of the logical tick source
//
// the stepped source is only allowed on the local network, it starts
// at start_tick and is advanced by the Node.AdvanceClock RPC
type ClockType struct {
	Source    string `gluamapper:"source" json:"source"`
	StartTick uint64 `gluamapper:"start_tick" json:"start_tick"`
}

// SettlementType - selection of the settlement adapter
//
// custodian keeps host ledger balances in process, seeded from the
// seeds table and backed up to data_file; remote posts custody
// requests to the host ledger's REST endpoint
type SettlementType struct {
	Mode           string            `gluamapper:"mode" json:"mode"`
	DataFile       string            `gluamapper:"data_file" json:"data_file"`
	Seeds          map[string]uint64 `gluamapper:"seeds" json:"seeds"`
	Endpoint       string            `gluamapper:"endpoint" json:"endpoint"`
	TimeoutSeconds uint64            `gluamapper:"timeout_seconds" json:"timeout_seconds"`
}

// Configuration - the full configuration file data
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Network       string       `gluamapper:"network" json:"network"`
	Administrator string       `gluamapper:"administrator" json:"administrator"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Clock      ClockType                     `gluamapper:"clock" json:"clock"`
	Settlement SettlementType                `gluamapper:"settlement" json:"settlement"`
	ClientRPC  listeners.RPCConfiguration    `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC   listeners.HTTPSConfiguration  `gluamapper:"https_rpc" json:"https_rpc"`
	Publishing publish.Configuration         `gluamapper:"publishing" json:"publishing"`
	Logging    logger.Configuration          `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Network:       network.Live,
		Administrator: "", // no administrator override by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultLiveDatabase,
		},

		Clock: ClockType{
			Source: clockWall,
		},

		Settlement: SettlementType{
			Mode:     settleCustodian,
			DataFile: defaultCustodyDataFile,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// default: share config with normal RPC
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Publishing: publish.Configuration{
			PublicKey:  defaultBroadcastPublicKeyFile,
			PrivateKey: defaultBroadcastPrivateKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// abort if the network name is not recognised
	options.Network = strings.ToLower(options.Network)
	if !network.Valid(options.Network) {
		return nil, fmt.Errorf("network: %q is not supported", options.Network)
	}

	// if database was not changed from default pick the one matching
	// the selected network
	if options.Database.Name == defaultLiveDatabase {
		switch options.Network {
		case network.Live:
			// already correct default
		case network.Testing:
			options.Database.Name = defaultTestingDatabase
		case network.Local:
			options.Database.Name = defaultLocalDatabase
		}
	}

	switch options.Clock.Source {
	case clockWall, clockStepped:
	default:
		return nil, fmt.Errorf("clock source: %q can only be %s/%s", options.Clock.Source, clockWall, clockStepped)
	}

	// a manually advanced clock would let a public node dodge expiry
	if clockStepped == options.Clock.Source && network.Local != options.Network {
		return nil, fmt.Errorf("clock source: %q is only allowed on the %s network", clockStepped, network.Local)
	}

	switch options.Settlement.Mode {
	case settleCustodian:
	case settleRemote:
		if "" == options.Settlement.Endpoint {
			return nil, fmt.Errorf("settlement mode: %q requires an endpoint", settleRemote)
		}
	default:
		return nil, fmt.Errorf("settlement mode: %q can only be %s/%s", options.Settlement.Mode, settleCustodian, settleRemote)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpsRPC.Certificate,
		&options.HttpsRPC.PrivateKey,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.Settlement.DataFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
