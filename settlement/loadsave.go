// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settlement

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
)

type tagType byte

// record types in the backup file
const (
	taggedBOF       tagType = iota
	taggedEOF       tagType = iota
	taggedCustody   tagType = iota
	taggedBalance   tagType = iota
	taggedReference tagType = iota
)

// the BOF tag to check file version
// exact match is required
var bofData = []byte("tessera-custody v1.0")

// restore custody state from the backup file
//
// caller holds the lock, a readable file replaces the seeded state
// entirely, a missing file is not an error
func loadFromFile() error {
	log := globalData.log

	f, err := os.Open(globalData.filename)
	if os.IsNotExist(err) {
		// first start, nothing to restore
		return nil
	}
	if nil != err {
		return err
	}
	defer f.Close()

	log.Infof("restore from file: %s", globalData.filename)

	globalData.custody = 0
	globalData.balances = make(map[identity.Identity]uint64)
	globalData.processed = make(map[Reference]struct{})

	// must have BOF record first
	tag, packed, err := readRecord(f)
	if nil != err {
		return err
	}

	if taggedBOF != tag {
		return fmt.Errorf("expected BOF: %d but read: %d", taggedBOF, tag)
	}

	if !bytes.Equal(bofData, packed) {
		return fmt.Errorf("expected BOF: %q but read: %q", bofData, packed)
	}

restore_loop:
	for {
		tag, packed, err := readRecord(f)
		if nil != err {
			return err
		}
		switch tag {

		case taggedEOF:
			break restore_loop

		case taggedCustody:
			if 8 != len(packed) {
				return fmt.Errorf("custody record length: %d expected: %d", len(packed), 8)
			}
			globalData.custody = binary.BigEndian.Uint64(packed)

		case taggedBalance:
			if identity.Size+8 != len(packed) {
				return fmt.Errorf("balance record length: %d expected: %d", len(packed), identity.Size+8)
			}
			id, err := identity.FromBytes(packed[:identity.Size])
			if nil != err {
				log.Errorf("unable to decode account: %s", err)
				return err
			}
			globalData.balances[id] = binary.BigEndian.Uint64(packed[identity.Size:])

		case taggedReference:
			if ReferenceLength != len(packed) {
				return fmt.Errorf("reference record length: %d expected: %d", len(packed), ReferenceLength)
			}
			var ref Reference
			copy(ref[:], packed)
			globalData.processed[ref] = struct{}{}

		default:
			log.Errorf("read invalid tag: 0x%02x", tag)
			return fmt.Errorf("read invalid tag: 0x%02x", tag)
		}
	}

	log.Info("restore completed")
	return nil
}

// save custody state to file
func saveToFile() error {
	globalData.Lock()
	defer globalData.Unlock()

	log := globalData.log

	if !globalData.initialised {
		log.Error("save when not initialised")
		return fault.NotInitialised
	}

	if "" == globalData.filename || !globalData.changed {
		return nil
	}

	log.Info("saving…")

	f, err := os.OpenFile(globalData.filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if nil != err {
		return err
	}
	defer f.Close()

	// write beginning of file marker
	err = writeRecord(f, taggedBOF, bofData)
	if nil != err {
		return err
	}

	custody := make([]byte, 8)
	binary.BigEndian.PutUint64(custody, globalData.custody)
	err = writeRecord(f, taggedCustody, custody)
	if nil != err {
		return err
	}

	for id, balance := range globalData.balances {
		packed := make([]byte, 0, identity.Size+8)
		packed = append(packed, id.Bytes()...)
		amount := make([]byte, 8)
		binary.BigEndian.PutUint64(amount, balance)
		packed = append(packed, amount...)
		err = writeRecord(f, taggedBalance, packed)
		if nil != err {
			return err
		}
	}

	for ref := range globalData.processed {
		err = writeRecord(f, taggedReference, ref[:])
		if nil != err {
			return err
		}
	}

	// end the file
	err = writeRecord(f, taggedEOF, []byte("EOF"))
	if nil != err {
		return err
	}

	globalData.changed = false
	log.Info("save completed")
	return nil
}

// write a tagged record
func writeRecord(f *os.File, tag tagType, packed []byte) error {

	if len(packed) > 65535 {
		globalData.log.Criticalf("write record packed length: %d > 65535", len(packed))
		logger.Panicf("write record packed length: %d > 65535", len(packed))
	}

	_, err := f.Write([]byte{byte(tag)})
	if nil != err {
		return err
	}

	count := make([]byte, 2)
	binary.BigEndian.PutUint16(count, uint16(len(packed)))
	_, err = f.Write(count)
	if nil != err {
		return err
	}
	_, err = f.Write(packed)
	return err
}

func readRecord(f *os.File) (tagType, []byte, error) {

	tag := make([]byte, 1)
	n, err := f.Read(tag)
	if nil != err {
		return taggedEOF, []byte{}, err
	}
	if 1 != n {
		return taggedEOF, []byte{}, fmt.Errorf("read record name: read: %d, expected: %d", n, 1)
	}

	countBuffer := make([]byte, 2)
	n, err = f.Read(countBuffer)
	if nil != err {
		return taggedEOF, []byte{}, err
	}
	if 2 != n {
		return taggedEOF, []byte{}, fmt.Errorf("read record key count: read: %d, expected: %d", n, 2)
	}

	count := int(binary.BigEndian.Uint16(countBuffer))

	if count > 0 {
		buffer := make([]byte, count)
		n, err := f.Read(buffer)
		if nil != err {
			return taggedEOF, []byte{}, err
		}
		if count != n {
			return taggedEOF, []byte{}, fmt.Errorf("read record read: %d, expected: %d", n, count)
		}
		return tagType(tag[0]), buffer, nil
	}
	return tagType(tag[0]), []byte{}, nil
}
