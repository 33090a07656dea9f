// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/messagebus"
	"github.com/tessera-ledger/tesserad/zmqutil"
)

const (
	zapDomain = "broadcaster"
)

type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string) error {

	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	// allocate IPv4 and IPv6 sockets
	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, zapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}
	brdc.socket4 = socket4
	brdc.socket6 = socket6

	return nil
}

// Run - wait for committed records and publish them to all subscribers
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	queue := messagebus.Bus.Broadcast.Chan(-1)

loop:
	for {
		log.Debug("waiting…")
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			log.Debugf("sending: %s  data: %x", item.Command, item.Parameters)
			if err := brdc.process(brdc.socket4, &item); nil != err {
				log.Errorf("IPv4 send: %s  error: %s", item.Command, err)
			}
			if err := brdc.process(brdc.socket6, &item); nil != err {
				log.Errorf("IPv6 send: %s  error: %s", item.Command, err)
			}
		}
	}
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
}

// send a record as a multipart message
//
// the first frame is the topic so PUB/SUB prefix filtering works,
// remaining frames carry the packed record
func (brdc *broadcaster) process(socket *zmq.Socket, item *messagebus.Message) error {
	if nil == socket {
		return nil
	}

	_, err := socket.Send(item.Command, zmq.SNDMORE|zmq.DONTWAIT)
	if nil != err {
		return err
	}
	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		flag := zmq.SNDMORE | zmq.DONTWAIT
		if i == last {
			flag = 0 | zmq.DONTWAIT
		}
		_, err = socket.SendBytes(p, flag)
		if nil != err {
			return err
		}
	}
	return nil
}
