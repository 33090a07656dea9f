// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/tessera-ledger/tesserad/rpc/node"
)

// GetNodeInfo - request status from tesserad
func (client *Client) GetNodeInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.client.Call("Node.Info", node.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

// AdvanceClock - step a local network node's clock forward
func (client *Client) AdvanceClock(steps uint64) (*node.AdvanceReply, error) {

	args := node.AdvanceArguments{
		Steps: steps,
	}

	client.printJson("Advance Request", args)

	reply := &node.AdvanceReply{}
	if err := client.client.Call("Node.AdvanceClock", args, reply); err != nil {
		return nil, err
	}

	client.printJson("Advance Reply", reply)

	return reply, nil
}
