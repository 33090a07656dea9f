// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settlement

import (
	"net/http"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/util"
)

// custody endpoints on the host ledger
const (
	debitPath   = "/v1/custody/debit"
	releasePath = "/v1/custody/release"
)

// Remote - Adapter that calls a host ledger over HTTP
type Remote struct {
	log    *logger.L
	client *http.Client
	prefix string
}

// NewRemote - create a REST adapter for one host ledger
//
// prefix is the scheme and authority, e.g. "https://custody.example.com:8443"
func NewRemote(prefix string, timeout time.Duration) *Remote {
	return &Remote{
		log:    logger.New("settlement"),
		client: &http.Client{Timeout: timeout},
		prefix: strings.TrimSuffix(prefix, "/"),
	}
}

// request payload for both endpoints
//
// the reference doubles as the idempotency token on the host side
type custodyRequest struct {
	Amount    uint64    `json:"amount"`
	Account   string    `json:"account"`
	Reference Reference `json:"reference"`
}

type custodyReply struct {
	OK               bool   `json:"ok"`
	AlreadyProcessed bool   `json:"already_processed"`
	Error            string `json:"error"`
}

// DebitToCustody - move amount from the payer into custody
func (r *Remote) DebitToCustody(amount uint64, from identity.Identity, ref Reference) error {
	return r.post(debitPath, amount, from, ref)
}

// ReleaseFromCustody - move amount from custody to the recipient
func (r *Remote) ReleaseFromCustody(amount uint64, to identity.Identity, ref Reference) error {
	return r.post(releasePath, amount, to, ref)
}

func (r *Remote) post(path string, amount uint64, account identity.Identity, ref Reference) error {

	request := custodyRequest{
		Amount:    amount,
		Account:   account.String(),
		Reference: ref,
	}

	var reply custodyReply
	err := util.PostJSON(r.client, r.prefix+path, request, &reply)
	if nil != err {
		r.log.Errorf("%s: error: %s", path, err)
		return err
	}

	// a replayed reference was paid out earlier, not a failure
	if reply.OK || reply.AlreadyProcessed {
		return nil
	}

	r.log.Errorf("%s: refused: %q", path, reply.Error)
	return fault.SettlementFailed
}
