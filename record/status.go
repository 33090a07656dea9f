// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"fmt"

	"github.com/tessera-ledger/tesserad/fault"
)

// Status - escrow state enumeration
type Status byte

// possible status values
// zero is deliberately invalid to catch uninitialised records
const (
	StatusCreated  Status = iota + 1 // agreement exists, no funds taken
	StatusFunded   Status = iota + 1 // fee held in custody
	StatusSettled  Status = iota + 1 // fee released to the licensor
	StatusRefunded Status = iota + 1 // fee returned to the licensee
	statusLimit    Status = iota + 1 // this must be last
)

// IsValid - check a status is one of the enumeration
func (status Status) IsValid() bool {
	return status >= StatusCreated && status < statusLimit
}

// IsTerminal - settled and refunded records never change again
func (status Status) IsTerminal() bool {
	return StatusSettled == status || StatusRefunded == status
}

// String - status as a string
func (status Status) String() string {
	switch status {
	case StatusCreated:
		return "Created"
	case StatusFunded:
		return "Funded"
	case StatusSettled:
		return "Settled"
	case StatusRefunded:
		return "Refunded"
	default:
		return fmt.Sprintf("*Unknown#%d*", byte(status))
	}
}

// MarshalText - for JSON encoding
func (status Status) MarshalText() ([]byte, error) {
	if !status.IsValid() {
		return nil, fault.NotAnEscrowRecord
	}
	return []byte(status.String()), nil
}

// UnmarshalText - for JSON decoding
func (status *Status) UnmarshalText(s []byte) error {
	switch string(s) {
	case "Created":
		*status = StatusCreated
	case "Funded":
		*status = StatusFunded
	case "Settled":
		*status = StatusSettled
	case "Refunded":
		*status = StatusRefunded
	default:
		return fault.NotAnEscrowRecord
	}
	return nil
}
