// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// the first eight bytes each hold seven value bits and an extension
// flag in the high bit; a ninth byte, when present, holds the top
// eight value bits raw
func ToVarint64(value uint64) []byte {
	buffer := make([]byte, 0, Varint64MaximumBytes)
	for i := 1; i < Varint64MaximumBytes; i += 1 {
		if value < 0x80 {
			return append(buffer, byte(value))
		}
		buffer = append(buffer, byte(value&0x7f|0x80))
		value >>= 7
	}
	return append(buffer, byte(value))
}

// FromVarint64 - convert a Varint64 prefix of a buffer to a uint64
//
// also returns the number of bytes used; 0, 0 if the buffer is
// truncated
func FromVarint64(buffer []byte) (uint64, int) {
	value := uint64(0)
	shift := uint(0)
	for i, b := range buffer {
		if Varint64MaximumBytes-1 == i {
			return value | uint64(b)<<shift, i + 1
		}
		value |= uint64(b&0x7f) << shift
		if 0 == b&0x80 {
			return value, i + 1
		}
		shift += 7
	}
	return 0, 0
}

// ClippedVarint64 - decode a Varint64 that must lie in minimum..maximum
//
// returns the value as an int and the number of bytes used; 0, 0 for
// a truncated buffer or an out of range value
func ClippedVarint64(buffer []byte, minimum int, maximum int) (int, int) {
	if minimum < 0 || maximum < 0 || minimum >= maximum {
		return 0, 0
	}
	value, used := FromVarint64(buffer)
	if 0 == used || value > uint64(maximum) {
		return 0, 0
	}
	n := int(value)
	if n < minimum {
		return 0, 0
	}
	return n, used
}
