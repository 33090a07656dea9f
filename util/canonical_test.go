// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/util"
)

// Test IP address detection
func TestCanonical(t *testing.T) {

	testData := []struct {
		in  string
		out string
	}{
		{"127.0.0.1:1234", "127.0.0.1:1234"},
		{"127.0.0.1:1", "127.0.0.1:1"},
		{" 127.0.0.1:1 ", "127.0.0.1:1"},
		{"127.0.0.1:65535", "127.0.0.1:65535"},
		{"0.0.0.0:1234", "0.0.0.0:1234"},
		{"[::1]:1234", "[::1]:1234"},
		{"[::]:1234", "[::]:1234"},
		{"[0:0::0:0]:1234", "[::]:1234"},
		{"[0:0:0:0::1]:1234", "[::1]:1234"},
	}

	for i, d := range testData {
		c, err := util.CanonicalIPandPort("", d.in)
		if nil != err {
			t.Errorf("failed on:[%d] %q  err = %v", i, d.in, err)
			continue
		}
		if c != d.out {
			t.Errorf("converted:[%d]: %q  to: %q  expected: %q", i, d.in, c, d.out)
		}
	}
}

// Test tcp:// prefixing for socket binds
func TestCanonicalPrefix(t *testing.T) {

	c, err := util.CanonicalIPandPort("tcp://", "127.0.0.1:1234")
	if nil != err {
		t.Fatalf("err = %v", err)
	}
	if "tcp://127.0.0.1:1234" != c {
		t.Errorf("converted: %q  expected: %q", c, "tcp://127.0.0.1:1234")
	}

	c, err = util.CanonicalIPandPort("tcp://", "[::1]:1234")
	if nil != err {
		t.Fatalf("err = %v", err)
	}
	if "tcp://[::1]:1234" != c {
		t.Errorf("converted: %q  expected: %q", c, "tcp://[::1]:1234")
	}
	if !util.IsV6(c) {
		t.Errorf("not detected as IPv6: %q", c)
	}
}

// Test IP address
func TestCanonicalIP(t *testing.T) {

	testData := []string{
		"127.1:1234",
		"256.0.0.0:1234",
		"0.256.0.0:1234",
		"0.0.256.0:1234",
		"0.0.0.256:1234",
		"[]:1234",
		"[as34::]:1234",
		"[1ffff::]:1234",
		"*:1234",
	}

	for i, d := range testData {
		c, err := util.CanonicalIPandPort("", d)
		if fault.InvalidIpAddress != err {
			t.Errorf("failed on:[%d] %q  err = %v", i, d, err)
			continue
		}
		t.Logf("converted:[%d]: %q  to: %q", i, d, c)
	}
}

// Test port range
func TestCanonicalPort(t *testing.T) {

	testData := []string{
		"127.0.0.1:0",
		"127.0.0.1:65536",
		"127.0.0.1:-1",
	}

	for i, d := range testData {
		c, err := util.CanonicalIPandPort("", d)
		if fault.InvalidPortNumber != err {
			t.Errorf("failed on:[%d] %q  err = %v", i, d, err)
			continue
		}
		t.Logf("converted:[%d]: %q  to: %q", i, d, c)
	}
}

// Test malformed host:port strings
func TestCanonicalMalformed(t *testing.T) {

	testData := []string{
		"",
		"1234",
		"127.0.0.1",
		"0:0:1234",
	}

	for i, d := range testData {
		c, err := util.CanonicalIPandPort("", d)
		if nil == err {
			t.Errorf("unexpected success on:[%d] %q  result: %q", i, d, c)
		}
	}
}
