// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

import (
	"sync"
)

// Process - type signature for background process
// and type that implements this Run is a process
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle type for the stop
type T struct {
	sync.WaitGroup
	finalise chan struct{}
}

// Start - start up a set of background processes
// all with the same arg value
func Start(processes Processes, args interface{}) *T {

	register := new(T)
	register.finalise = make(chan struct{})

	// start each background
	for _, p := range processes {
		register.Add(1)
		go func(p Process) {
			// pass the shutdown to the Run loop for shutdown signalling
			p.Run(args, register.finalise)
			register.Done()
		}(p)
	}
	return register
}

// Stop - stop a set of background processes
func (t *T) Stop() {

	if nil == t {
		return
	}

	// trigger shutdown of all background tasks
	close(t.finalise)

	// wait for all Run routines to return
	t.Wait()
}
