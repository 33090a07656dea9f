// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settlement

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/background"
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
)

// globals for the in-process custodian
type custodianData struct {
	sync.RWMutex
	log       *logger.L
	filename  string
	custody   uint64                       // total currently held back
	balances  map[identity.Identity]uint64 // host ledger accounts
	processed map[Reference]struct{}       // completed releases
	changed   bool

	saver      saverData
	background *background.T

	initialised bool
}

// global storage
var globalData custodianData

// Initialise - begin custody accounting
//
// the seeds map base58 accounts to their opening balances and only
// applies on first start, the backup file carries the complete prior
// state and replaces the seeds when it exists. an empty filename
// disables persistence entirely.
func Initialise(filename string, seeds map[string]uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("custodian")
	globalData.log.Info("starting…")

	globalData.filename = filename
	globalData.custody = 0
	globalData.balances = make(map[identity.Identity]uint64)
	globalData.processed = make(map[Reference]struct{})

	for account, amount := range seeds {
		id, err := identity.FromBase58(account)
		if nil != err {
			globalData.log.Errorf("seed account: %q error: %s", account, err)
			return err
		}
		globalData.balances[id] = amount
	}

	if "" != filename {
		err := loadFromFile()
		if nil != err {
			return err
		}
	}

	globalData.changed = false
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	globalData.saver.log = logger.New("custodian-save")

	processes := background.Processes{
		&globalData.saver,
	}

	globalData.background = background.Start(processes, &globalData)

	return nil
}

// Finalise - stop the saver and write a final backup
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")

	globalData.background.Stop()

	// last chance save so no movement is lost
	err := saveToFile()

	globalData.Lock()
	globalData.initialised = false
	globalData.log.Info("finished")
	globalData.log.Flush()
	globalData.Unlock()

	return err
}

// Custodian - the Adapter backed by this package's state
func Custodian() Adapter {
	return custodian{}
}

type custodian struct{}

// DebitToCustody - move amount from the payer into custody
func (custodian) DebitToCustody(amount uint64, from identity.Identity, ref Reference) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	balance := globalData.balances[from]
	if balance < amount {
		globalData.log.Warnf("debit: %d from: %s exceeds balance: %d", amount, from, balance)
		return fault.InsufficientFunds
	}

	globalData.balances[from] = balance - amount
	globalData.custody += amount
	globalData.changed = true

	globalData.log.Infof("debit: %d from: %s reference: %s", amount, from, ref)
	return nil
}

// ReleaseFromCustody - move amount from custody to the recipient
func (custodian) ReleaseFromCustody(amount uint64, to identity.Identity, ref Reference) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	// a reference is only recorded after a completed release, seeing
	// it again means the funds were already paid out
	if _, ok := globalData.processed[ref]; ok {
		globalData.log.Infof("release: %d to: %s reference: %s already processed", amount, to, ref)
		return nil
	}

	if globalData.custody < amount {
		globalData.log.Errorf("release: %d exceeds custody: %d", amount, globalData.custody)
		return fault.InsufficientFunds
	}

	globalData.custody -= amount
	globalData.balances[to] += amount
	globalData.processed[ref] = struct{}{}
	globalData.changed = true

	globalData.log.Infof("release: %d to: %s reference: %s", amount, to, ref)
	return nil
}

// BalanceOf - host ledger balance of one account
func BalanceOf(id identity.Identity) uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.balances[id]
}

// CustodyBalance - total currently held in custody
func CustodyBalance() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.custody
}

// TotalFunds - sum of every account balance plus custody
//
// constant across any sequence of debits and releases
func TotalFunds() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	total := globalData.custody
	for _, balance := range globalData.balances {
		total += balance
	}
	return total
}

// ReadCounters - number of accounts and of processed references
func ReadCounters() (int, int) {
	globalData.RLock()
	defer globalData.RUnlock()
	return len(globalData.balances), len(globalData.processed)
}
