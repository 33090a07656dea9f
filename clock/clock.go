// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clock

import (
	"sync"
	"time"

	"github.com/tessera-ledger/tesserad/counter"
)

// Clock - a source of logical time
//
// ticks are non-decreasing; expiration checks compare a stored tick
// against the current one, there are no internal timers
type Clock interface {
	Tick() uint64
}

// Wall - ticks derived from the wall clock
//
// unix seconds clamped so that the reported tick never goes
// backwards even if the system time does
type Wall struct {
	sync.Mutex
	last uint64
}

// NewWall - create a wall driven clock
func NewWall() *Wall {
	return &Wall{}
}

// Tick - current tick
func (w *Wall) Tick() uint64 {
	now := uint64(time.Now().Unix())
	w.Lock()
	defer w.Unlock()
	if now < w.last {
		now = w.last
	}
	w.last = now
	return now
}

// Stepped - a manually advanced tick counter
//
// only for tests and for the local network where deterministic
// expiry is wanted
type Stepped struct {
	tick counter.Counter
}

// NewStepped - create a stepped clock at a start tick
func NewStepped(start uint64) *Stepped {
	s := &Stepped{}
	if 0 != start {
		s.tick.Add(start)
	}
	return s
}

// Tick - current tick
func (s *Stepped) Tick() uint64 {
	return s.tick.Uint64()
}

// Advance - move the clock forward, returns the new tick
func (s *Stepped) Advance(n uint64) uint64 {
	return s.tick.Add(n)
}
