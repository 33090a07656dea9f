// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settlement

import (
	"github.com/tessera-ledger/tesserad/identity"
)

// Adapter - connection to the host ledger that carries the fees
//
// both calls are all or nothing: on an error return no value has
// moved at all
type Adapter interface {

	// DebitToCustody - move amount from the payer into custody
	DebitToCustody(amount uint64, from identity.Identity, ref Reference) error

	// ReleaseFromCustody - move amount from custody to the recipient
	//
	// a reference that was already released reports success without
	// moving funds a second time
	ReleaseFromCustody(amount uint64, to identity.Identity, ref Reference) error
}
