// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"encoding/json"
	"testing"

	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/record"
)

// test validity and terminality across the enumeration
func TestStatusValidity(t *testing.T) {

	testData := []struct {
		status   record.Status
		valid    bool
		terminal bool
	}{
		{record.Status(0), false, false},
		{record.StatusCreated, true, false},
		{record.StatusFunded, true, false},
		{record.StatusSettled, true, true},
		{record.StatusRefunded, true, true},
		{record.Status(5), false, false},
		{record.Status(200), false, false},
	}

	for i, item := range testData {
		if item.valid != item.status.IsValid() {
			t.Errorf("%d: status: %d valid: %t  expected: %t", i, item.status, item.status.IsValid(), item.valid)
		}
		if item.terminal != item.status.IsTerminal() {
			t.Errorf("%d: status: %d terminal: %t  expected: %t", i, item.status, item.status.IsTerminal(), item.terminal)
		}
	}
}

// test the string conversion of status values
func TestStatusStrings(t *testing.T) {

	testData := []struct {
		status   record.Status
		expected string
	}{
		{record.StatusCreated, "Created"},
		{record.StatusFunded, "Funded"},
		{record.StatusSettled, "Settled"},
		{record.StatusRefunded, "Refunded"},
	}

	for i, item := range testData {
		actual := item.status.String()
		if item.expected != actual {
			t.Errorf("%d: status string: %q  expected: %q", i, actual, item.expected)
		}

		buffer, err := json.Marshal(item.status)
		if nil != err {
			t.Fatalf("%d: marshal error: %s", i, err)
		}

		var recovered record.Status
		err = json.Unmarshal(buffer, &recovered)
		if nil != err {
			t.Fatalf("%d: unmarshal error: %s", i, err)
		}
		if item.status != recovered {
			t.Errorf("%d: status: %d  recovered: %d", i, item.status, recovered)
		}
	}
}

// test that out of range values cannot be encoded or decoded
func TestStatusInvalidText(t *testing.T) {

	_, err := json.Marshal(record.Status(99))
	if nil == err {
		t.Fatalf("marshal of invalid status did not fail")
	}

	var status record.Status
	err = status.UnmarshalText([]byte("Pending"))
	if fault.NotAnEscrowRecord != err {
		t.Fatalf("unexpected unmarshal error: %s", err)
	}
}
