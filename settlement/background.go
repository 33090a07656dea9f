// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settlement

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// cycle time
const (
	saveInterval = 60 * time.Second
)

// periodic saver
type saverData struct {
	log *logger.L
}

// background process loop
func (state *saverData) Run(args interface{}, shutdown <-chan struct{}) {

	log := state.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-time.After(saveInterval):
			state.process()
		}
	}
	log.Info("finished")
}

// write the state if any movement happened since the last cycle
func (state *saverData) process() {
	err := saveToFile()
	if nil != err {
		state.log.Errorf("save error: %s", err)
	}
}
