// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Message - message to put into a queue
type Message struct {
	Command    string   // type of packed data
	Parameters [][]byte // array of parameters
}

// Queue - 1:1 queue
type Queue struct {
	c chan Message
}

// BroadcastQueue - 1:M queue
//
// each subscriber gets a copy of every message; a subscriber that
// cannot keep up has messages silently dropped
type BroadcastQueue struct {
	sync.Mutex
	out         []chan Message
	defaultSize int
}

// the exported message queues
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type busses struct {
	Broadcast *BroadcastQueue `size:"1000"` // committed ledger events for publishing
	TestQueue *Queue          `size:"50"`   // for testing use
}

// Bus - all available message queues
var Bus busses

// suppress repeats of identical event data
//
// an asset or escrow record rebroadcast with unchanged content carries
// no new information; transfers are excluded because two identical
// movements are distinct events
const (
	cacheExpiry  = 1 * time.Minute
	cacheCleanup = 2 * time.Minute
)

var cacheableCommand = map[string]struct{}{
	"asset":  {},
	"escrow": {},
}

var cachedMessages = cache.New(cacheExpiry, cacheCleanup)

// create all queues with the sizes from their tags
func init() {

	busType := reflect.TypeOf(Bus)
	busValue := reflect.ValueOf(&Bus).Elem()

	for i := 0; i < busType.NumField(); i += 1 {

		fieldInfo := busType.Field(i)

		sizeTag := fieldInfo.Tag.Get("size")
		queueSize, err := strconv.Atoi(sizeTag)
		if nil != err || queueSize < 1 {
			panic(fmt.Sprintf("queue: %v has invalid size: %q", fieldInfo, sizeTag))
		}

		switch fieldInfo.Type {
		case reflect.TypeOf((*Queue)(nil)):
			q := &Queue{
				c: make(chan Message, queueSize),
			}
			busValue.Field(i).Set(reflect.ValueOf(q))

		case reflect.TypeOf((*BroadcastQueue)(nil)):
			q := &BroadcastQueue{
				out:         make([]chan Message, 0, 10),
				defaultSize: queueSize,
			}
			busValue.Field(i).Set(reflect.ValueOf(q))

		default:
			panic(fmt.Sprintf("queue: %v has invalid type: %v", fieldInfo, fieldInfo.Type))
		}
	}
}

// Send - send a message to a 1:1 queue
//
// blocks if the queue is full
func (queue *Queue) Send(command string, parameters ...[]byte) {
	queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - channel to read from a 1:1 queue
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Release - discard any unread messages
func (queue *Queue) Release() {
	for {
		select {
		case <-queue.c:
		default:
			return
		}
	}
}

// Send - send a message to all current subscribers
//
// cacheable commands with data identical to a recent send are
// suppressed; messages to a full subscriber are dropped
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	if _, ok := cacheableCommand[command]; ok {
		key := cacheKey(m)
		if _, found := cachedMessages.Get(key); found {
			return
		}
		cachedMessages.Set(key, struct{}{}, cache.DefaultExpiration)
	}

	queue.Lock()
	defer queue.Unlock()

	for _, out := range queue.out {
		select {
		case out <- m:
		default:
		}
	}
}

// Chan - get a new channel to read from a 1:M queue
//
// each call gets a distinct new channel; size <= 0 selects the
// default size from the queue tag
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	queue.Lock()
	defer queue.Unlock()

	if size <= 0 {
		size = queue.defaultSize
	}
	c := make(chan Message, size)
	queue.out = append(queue.out, c)
	return c
}

// Release - drop all subscriber channels
func (queue *BroadcastQueue) Release() {
	queue.Lock()
	defer queue.Unlock()

	for _, out := range queue.out {
		close(out)
	}
	queue.out = queue.out[:0]
}

// DropCache - remove a message from the suppression cache
// so an identical send will be broadcast again
func DropCache(m Message) {
	cachedMessages.Delete(cacheKey(m))
}

func cacheKey(m Message) string {
	key := m.Command
	for _, p := range m.Parameters {
		key += string(p)
	}
	return key
}
