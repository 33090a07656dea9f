// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/tessera-ledger/tesserad/fault"
)

var (
	errExistsOne   = fault.ExistsError("exists one")
	errExistsTwo   = fault.ExistsError("exists two")
	errInvalidOne  = fault.InvalidError("invalid one")
	errInvalidTwo  = fault.InvalidError("invalid two")
	errLengthOne   = fault.LengthError("length one")
	errLengthTwo   = fault.LengthError("length two")
	errNotFoundOne = fault.NotFoundError("not found one")
	errNotFoundTwo = fault.NotFoundError("not found two")
	errProcessOne  = fault.ProcessError("process one")
	errProcessTwo  = fault.ProcessError("process two")
	errRecordOne   = fault.RecordError("record one")
	errRecordTwo   = fault.RecordError("record two")
)

// test that the class of an error can be determined
func TestErrorClass(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
	}{
		{errExistsOne, true, false, false, false, false, false},
		{errExistsTwo, true, false, false, false, false, false},
		{errInvalidOne, false, true, false, false, false, false},
		{errInvalidTwo, false, true, false, false, false, false},
		{errLengthOne, false, false, true, false, false, false},
		{errLengthTwo, false, false, true, false, false, false},
		{errNotFoundOne, false, false, false, true, false, false},
		{errNotFoundTwo, false, false, false, true, false, false},
		{errProcessOne, false, false, false, false, true, false},
		{errProcessTwo, false, false, false, false, true, false},
		{errRecordOne, false, false, false, false, false, true},
		{errRecordTwo, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

// operation errors must keep their classes so that transport layers
// can map them without string matching
func TestOperationErrorClasses(t *testing.T) {
	if !fault.IsErrExists(fault.AssetAlreadyExists) {
		t.Errorf("AssetAlreadyExists is not an exists error")
	}
	if !fault.IsErrNotFound(fault.AssetNotFound) {
		t.Errorf("AssetNotFound is not a not found error")
	}
	if !fault.IsErrLength(fault.TooManyHolders) {
		t.Errorf("TooManyHolders is not a length error")
	}
	if !fault.IsErrProcess(fault.SettlementFailed) {
		t.Errorf("SettlementFailed is not a process error")
	}
	if !fault.IsErrRecord(fault.EscrowExpired) {
		t.Errorf("EscrowExpired is not a record error")
	}
	if !fault.IsErrInvalid(fault.LicensorMismatch) {
		t.Errorf("LicensorMismatch is not an invalid error")
	}
}
