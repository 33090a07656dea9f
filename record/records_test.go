// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/tessera-ledger/tesserad/fault"
	"github.com/tessera-ledger/tesserad/identity"
	"github.com/tessera-ledger/tesserad/record"
)

// fixed public keys so the expected buffers below stay stable

var licensorKey = []byte{
	0xc5, 0x0e, 0x9a, 0x44, 0xb7, 0x62, 0x1f, 0x0c,
	0x8e, 0x2b, 0xd9, 0x13, 0x6a, 0xf0, 0x5d, 0x27,
	0x41, 0x88, 0x3c, 0xee, 0x07, 0x51, 0xba, 0x92,
	0x6f, 0x0a, 0xc4, 0x35, 0xd8, 0x7e, 0x10, 0x59,
}

var licenseeKey = []byte{
	0x37, 0xe1, 0x50, 0x8b, 0x06, 0xc2, 0x9d, 0x74,
	0xf2, 0x4e, 0x1b, 0xa0, 0x85, 0x3d, 0xc7, 0x19,
	0x60, 0xfb, 0x2a, 0x93, 0x08, 0x5e, 0xd6, 0x47,
	0xb1, 0x0c, 0x68, 0xe5, 0x2f, 0x90, 0x4a, 0x83,
}

var holderKey = []byte{
	0x72, 0x19, 0xe0, 0x4c, 0xa3, 0x58, 0x0f, 0xb6,
	0x2d, 0xc1, 0x7b, 0x94, 0x36, 0xe8, 0x01, 0x5f,
	0xd0, 0x6b, 0xaf, 0x22, 0x99, 0x43, 0x0d, 0xe7,
	0x58, 0xb2, 0x1c, 0xf4, 0x81, 0x3a, 0x66, 0xc9,
}

func makeIdentity(publicKey []byte) identity.Identity {
	id, err := identity.New(publicKey, true)
	if nil != err {
		panic(err)
	}
	return id
}

// test the packing/unpacking of an asset record
//
// ensures that pack->unpack returns the same original value
func TestPackAssetData(t *testing.T) {

	owner := makeIdentity(licensorKey)

	r := record.AssetData{
		Owner:            owner,
		InitialValuation: 250000,
		CurrentValuation: 300000,
		TotalTokens:      1000,
		Transferable:     true,
		CreatedTick:      5,
	}

	expected := []byte{
		0x01, 0x13, 0xc5, 0x0e, 0x9a, 0x44, 0xb7, 0x62,
		0x1f, 0x0c, 0x8e, 0x2b, 0xd9, 0x13, 0x6a, 0xf0,
		0x5d, 0x27, 0x41, 0x88, 0x3c, 0xee, 0x07, 0x51,
		0xba, 0x92, 0x6f, 0x0a, 0xc4, 0x35, 0xd8, 0x7e,
		0x10, 0x59, 0x90, 0xa1, 0x0f, 0xe0, 0xa7, 0x12,
		0xe8, 0x07, 0x01, 0x05,
	}

	// test the packer
	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	if !bytes.Equal(packed, expected) {
		t.Fatalf("pack record: %x  expected: %x", packed, expected)
	}

	// check the record type
	if record.AssetDataTag != packed.Type() {
		t.Errorf("pack record type: %d  expected: %d", packed.Type(), record.AssetDataTag)
	}

	// test the unpacker
	unpacked, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	asset, ok := unpacked.(*record.AssetData)
	if !ok {
		t.Fatalf("did not unpack to AssetData")
	}

	// display a JSON version for information
	b, err := json.MarshalIndent(asset, "", "  ")
	if nil != err {
		t.Fatalf("json error: %s", err)
	}
	t.Logf("AssetData: JSON: %s", b)

	// check that structure is preserved through Pack/Unpack
	// note asset is a pointer here
	if !reflect.DeepEqual(r, *asset) {
		t.Fatalf("different, original: %v  recovered: %v", r, *asset)
	}
}

// test the pack failure on a missing owner
func TestPackAssetDataWithZeroOwner(t *testing.T) {

	r := record.AssetData{
		InitialValuation: 250000,
		CurrentValuation: 250000,
		TotalTokens:      1000,
		Transferable:     true,
		CreatedTick:      5,
	}

	_, err := r.Pack()
	if fault.InvalidIdentity != err {
		t.Fatalf("unexpected pack error: %s", err)
	}
}

// test the pack failure on a zero token total
func TestPackAssetDataWithZeroTokens(t *testing.T) {

	r := record.AssetData{
		Owner:            makeIdentity(licensorKey),
		InitialValuation: 250000,
		CurrentValuation: 250000,
		TotalTokens:      0,
		Transferable:     true,
	}

	_, err := r.Pack()
	if fault.InvalidTokenAmount != err {
		t.Fatalf("unexpected pack error: %s", err)
	}
}

// test the packing/unpacking of a holder list
func TestPackHolderList(t *testing.T) {

	r := record.HolderList{
		makeIdentity(licensorKey),
		makeIdentity(licenseeKey),
		makeIdentity(holderKey),
	}

	expected := []byte{
		0x02, 0x03, 0x13, 0xc5, 0x0e, 0x9a, 0x44, 0xb7,
		0x62, 0x1f, 0x0c, 0x8e, 0x2b, 0xd9, 0x13, 0x6a,
		0xf0, 0x5d, 0x27, 0x41, 0x88, 0x3c, 0xee, 0x07,
		0x51, 0xba, 0x92, 0x6f, 0x0a, 0xc4, 0x35, 0xd8,
		0x7e, 0x10, 0x59, 0x13, 0x37, 0xe1, 0x50, 0x8b,
		0x06, 0xc2, 0x9d, 0x74, 0xf2, 0x4e, 0x1b, 0xa0,
		0x85, 0x3d, 0xc7, 0x19, 0x60, 0xfb, 0x2a, 0x93,
		0x08, 0x5e, 0xd6, 0x47, 0xb1, 0x0c, 0x68, 0xe5,
		0x2f, 0x90, 0x4a, 0x83, 0x13, 0x72, 0x19, 0xe0,
		0x4c, 0xa3, 0x58, 0x0f, 0xb6, 0x2d, 0xc1, 0x7b,
		0x94, 0x36, 0xe8, 0x01, 0x5f, 0xd0, 0x6b, 0xaf,
		0x22, 0x99, 0x43, 0x0d, 0xe7, 0x58, 0xb2, 0x1c,
		0xf4, 0x81, 0x3a, 0x66, 0xc9,
	}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	if !bytes.Equal(packed, expected) {
		t.Fatalf("pack record: %x  expected: %x", packed, expected)
	}

	if record.HolderListTag != packed.Type() {
		t.Errorf("pack record type: %d  expected: %d", packed.Type(), record.HolderListTag)
	}

	unpacked, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	list, ok := unpacked.(record.HolderList)
	if !ok {
		t.Fatalf("did not unpack to HolderList")
	}

	if !reflect.DeepEqual(r, list) {
		t.Fatalf("different, original: %v  recovered: %v", r, list)
	}
}

// test that an empty holder list survives the round trip
func TestPackEmptyHolderList(t *testing.T) {

	r := record.HolderList{}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	list, err := packed.UnpackHolderList()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if 0 != len(list) {
		t.Fatalf("unexpected holders: %v", list)
	}
}

// test the packing/unpacking of an escrow record
func TestPackEscrowRecord(t *testing.T) {

	r := record.EscrowRecord{
		AssetId:        1,
		Licensor:       makeIdentity(licensorKey),
		Licensee:       makeIdentity(licenseeKey),
		FeeAmount:      500,
		Status:         record.StatusFunded,
		ConditionsMet:  false,
		ExpirationTick: 100,
		CreatedTick:    10,
	}

	expected := []byte{
		0x03, 0x01, 0x13, 0xc5, 0x0e, 0x9a, 0x44, 0xb7,
		0x62, 0x1f, 0x0c, 0x8e, 0x2b, 0xd9, 0x13, 0x6a,
		0xf0, 0x5d, 0x27, 0x41, 0x88, 0x3c, 0xee, 0x07,
		0x51, 0xba, 0x92, 0x6f, 0x0a, 0xc4, 0x35, 0xd8,
		0x7e, 0x10, 0x59, 0x13, 0x37, 0xe1, 0x50, 0x8b,
		0x06, 0xc2, 0x9d, 0x74, 0xf2, 0x4e, 0x1b, 0xa0,
		0x85, 0x3d, 0xc7, 0x19, 0x60, 0xfb, 0x2a, 0x93,
		0x08, 0x5e, 0xd6, 0x47, 0xb1, 0x0c, 0x68, 0xe5,
		0x2f, 0x90, 0x4a, 0x83, 0xf4, 0x03, 0x02, 0x00,
		0x64, 0x0a,
	}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	if !bytes.Equal(packed, expected) {
		t.Fatalf("pack record: %x  expected: %x", packed, expected)
	}

	if record.EscrowRecordTag != packed.Type() {
		t.Errorf("pack record type: %d  expected: %d", packed.Type(), record.EscrowRecordTag)
	}

	unpacked, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	escrow, ok := unpacked.(*record.EscrowRecord)
	if !ok {
		t.Fatalf("did not unpack to EscrowRecord")
	}

	b, err := json.MarshalIndent(escrow, "", "  ")
	if nil != err {
		t.Fatalf("json error: %s", err)
	}
	t.Logf("EscrowRecord: JSON: %s", b)

	if !reflect.DeepEqual(r, *escrow) {
		t.Fatalf("different, original: %v  recovered: %v", r, *escrow)
	}
}

// test the pack failure when licensor and licensee coincide
func TestPackEscrowRecordWithSameParties(t *testing.T) {

	r := record.EscrowRecord{
		AssetId:        1,
		Licensor:       makeIdentity(licensorKey),
		Licensee:       makeIdentity(licensorKey),
		FeeAmount:      500,
		Status:         record.StatusCreated,
		ExpirationTick: 100,
	}

	_, err := r.Pack()
	if fault.LicenseeIsOwner != err {
		t.Fatalf("unexpected pack error: %s", err)
	}
}

// test the pack failure on a zero fee
func TestPackEscrowRecordWithZeroFee(t *testing.T) {

	r := record.EscrowRecord{
		AssetId:        1,
		Licensor:       makeIdentity(licensorKey),
		Licensee:       makeIdentity(licenseeKey),
		FeeAmount:      0,
		Status:         record.StatusCreated,
		ExpirationTick: 100,
	}

	_, err := r.Pack()
	if fault.InvalidFeeAmount != err {
		t.Fatalf("unexpected pack error: %s", err)
	}
}

// test the packing/unpacking of a transfer event
func TestPackTransferEvent(t *testing.T) {

	r := record.TransferEvent{
		AssetId: 7,
		From:    makeIdentity(licensorKey),
		To:      makeIdentity(licenseeKey),
		Amount:  250,
	}

	expected := []byte{
		0x04, 0x07, 0x13, 0xc5, 0x0e, 0x9a, 0x44, 0xb7,
		0x62, 0x1f, 0x0c, 0x8e, 0x2b, 0xd9, 0x13, 0x6a,
		0xf0, 0x5d, 0x27, 0x41, 0x88, 0x3c, 0xee, 0x07,
		0x51, 0xba, 0x92, 0x6f, 0x0a, 0xc4, 0x35, 0xd8,
		0x7e, 0x10, 0x59, 0x13, 0x37, 0xe1, 0x50, 0x8b,
		0x06, 0xc2, 0x9d, 0x74, 0xf2, 0x4e, 0x1b, 0xa0,
		0x85, 0x3d, 0xc7, 0x19, 0x60, 0xfb, 0x2a, 0x93,
		0x08, 0x5e, 0xd6, 0x47, 0xb1, 0x0c, 0x68, 0xe5,
		0x2f, 0x90, 0x4a, 0x83, 0xfa, 0x01,
	}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	if !bytes.Equal(packed, expected) {
		t.Fatalf("pack record: %x  expected: %x", packed, expected)
	}

	if record.TransferEventTag != packed.Type() {
		t.Errorf("pack record type: %d  expected: %d", packed.Type(), record.TransferEventTag)
	}

	unpacked, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	transfer, ok := unpacked.(*record.TransferEvent)
	if !ok {
		t.Fatalf("did not unpack to TransferEvent")
	}

	if !reflect.DeepEqual(r, *transfer) {
		t.Fatalf("different, original: %v  recovered: %v", r, *transfer)
	}
}

// test the pack failure when sender and receiver coincide
func TestPackTransferEventToSelf(t *testing.T) {

	r := record.TransferEvent{
		AssetId: 7,
		From:    makeIdentity(licensorKey),
		To:      makeIdentity(licensorKey),
		Amount:  250,
	}

	_, err := r.Pack()
	if fault.SelfTransferNotAllowed != err {
		t.Fatalf("unexpected pack error: %s", err)
	}
}

// test that damaged buffers are detected

func TestUnpackTruncatedAsset(t *testing.T) {

	r := record.AssetData{
		Owner:            makeIdentity(licensorKey),
		InitialValuation: 250000,
		CurrentValuation: 300000,
		TotalTokens:      1000,
		Transferable:     true,
		CreatedTick:      5,
	}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	_, err = packed[:len(packed)-1].Unpack()
	if fault.NotAnAssetRecord != err {
		t.Fatalf("unexpected unpack error: %s", err)
	}
}

func TestUnpackTrailingBytes(t *testing.T) {

	r := record.AssetData{
		Owner:            makeIdentity(licensorKey),
		InitialValuation: 250000,
		CurrentValuation: 300000,
		TotalTokens:      1000,
		Transferable:     true,
		CreatedTick:      5,
	}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	packed = append(packed, 0x00)
	_, err = packed.Unpack()
	if fault.NotAnAssetRecord != err {
		t.Fatalf("unexpected unpack error: %s", err)
	}
}

func TestUnpackUnknownTag(t *testing.T) {

	packed := record.Packed{0x7f, 0x01, 0x02, 0x03}
	_, err := packed.Unpack()
	if fault.CannotDecodeRecord != err {
		t.Fatalf("unexpected unpack error: %s", err)
	}
	if record.InvalidTag != packed.Type() {
		t.Errorf("record type: %d  expected: %d", packed.Type(), record.InvalidTag)
	}
}

func TestUnpackEmptyBuffer(t *testing.T) {

	packed := record.Packed{}
	_, err := packed.Unpack()
	if fault.CannotDecodeRecord != err {
		t.Fatalf("unexpected unpack error: %s", err)
	}
}

func TestUnpackHolderListCorruptCount(t *testing.T) {

	// maximum varint count with no holder data following
	packed := record.Packed{0x02}
	for i := 0; i < 9; i += 1 {
		packed = append(packed, 0xff)
	}
	packed = append(packed, 0x01)

	_, err := packed.Unpack()
	if fault.NotAHolderList != err {
		t.Fatalf("unexpected unpack error: %s", err)
	}

	// count claims one more holder than the buffer carries
	r := record.HolderList{makeIdentity(holderKey)}
	p, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	p[1] = 0x02 // the count byte
	_, err = p.Unpack()
	if fault.NotAHolderList != err {
		t.Fatalf("unexpected unpack error: %s", err)
	}
}

func TestUnpackCorruptStatus(t *testing.T) {

	r := record.EscrowRecord{
		AssetId:        1,
		Licensor:       makeIdentity(licensorKey),
		Licensee:       makeIdentity(licenseeKey),
		FeeAmount:      500,
		Status:         record.StatusFunded,
		ExpirationTick: 100,
		CreatedTick:    10,
	}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	packed[70] = 0x09 // the status byte
	_, err = packed.Unpack()
	if fault.NotAnEscrowRecord != err {
		t.Fatalf("unexpected unpack error: %s", err)
	}
}

// test the typed unpack helpers reject other record types
func TestUnpackWrongType(t *testing.T) {

	r := record.EscrowRecord{
		AssetId:        1,
		Licensor:       makeIdentity(licensorKey),
		Licensee:       makeIdentity(licenseeKey),
		FeeAmount:      500,
		Status:         record.StatusCreated,
		ExpirationTick: 100,
	}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	if _, err = packed.UnpackAsset(); fault.NotAnAssetRecord != err {
		t.Errorf("unexpected asset unpack error: %s", err)
	}
	if _, err = packed.UnpackHolderList(); fault.NotAHolderList != err {
		t.Errorf("unexpected holder list unpack error: %s", err)
	}
	if _, err = packed.UnpackEscrow(); nil != err {
		t.Errorf("unexpected escrow unpack error: %s", err)
	}
}

// test the display names of record types
func TestRecordName(t *testing.T) {

	testData := []struct {
		record   interface{}
		expected string
	}{
		{&record.AssetData{}, "AssetData"},
		{record.HolderList{}, "HolderList"},
		{&record.EscrowRecord{}, "EscrowRecord"},
		{&record.TransferEvent{}, "TransferEvent"},
	}

	for i, item := range testData {
		name, err := record.RecordName(item.record)
		if nil != err {
			t.Fatalf("%d: record name error: %s", i, err)
		}
		if item.expected != name {
			t.Errorf("%d: record name: %q  expected: %q", i, name, item.expected)
		}
	}

	_, err := record.RecordName(42)
	if fault.CannotDecodeRecord != err {
		t.Fatalf("unexpected record name error: %s", err)
	}
}
