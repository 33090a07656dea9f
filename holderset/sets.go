// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package holderset

import (
	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
)

// Set - a fixed capacity ordered set of identities
//
// insertion order is preserved, overflow is an explicit error, there
// is no eviction; not safe for concurrent use, callers serialise
type Set struct {
	limit int
	items []identity.Identity
}

// New - create an empty set that holds up to 'limit' items
func New(limit int) *Set {
	return &Set{
		limit: limit,
		items: make([]identity.Identity, 0, limit),
	}
}

// FromList - build a set from an ordered item list
//
// duplicates are rejected as inconsistent data
func FromList(limit int, list []identity.Identity) (*Set, error) {
	s := New(limit)
	for _, item := range list {
		if s.Exists(item) {
			return nil, fault.DataInconsistent
		}
		if err := s.Add(item); nil != err {
			return nil, err
		}
	}
	return s, nil
}

// Add - append an item to the set
//
// adding a present item is a no-op; a full set returns an error and
// remains unchanged
func (s *Set) Add(item identity.Identity) error {
	if s.Exists(item) {
		return nil
	}
	if len(s.items) >= s.limit {
		return fault.TooManyHolders
	}
	s.items = append(s.items, item)
	return nil
}

// Remove - delete an item keeping the order of the rest
func (s *Set) Remove(item identity.Identity) {
	for i, present := range s.items {
		if present == item {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Exists - check to see if an item is in the set
func (s *Set) Exists(item identity.Identity) bool {
	for _, present := range s.items {
		if present == item {
			return true
		}
	}
	return false
}

// Size - current number of items
func (s *Set) Size() int {
	return len(s.items)
}

// Items - the items in insertion order; the slice is a copy
func (s *Set) Items() []identity.Identity {
	items := make([]identity.Identity, len(s.items))
	copy(items, s.items)
	return items
}

// Copy - an independent set with the same items and limit
func (s *Set) Copy() *Set {
	c := New(s.limit)
	c.items = append(c.items, s.items...)
	return c
}
