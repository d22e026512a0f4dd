// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package bom recognizes and emits byte-order-marks for the five UTFx
// wire forms this module supports.
package bom

import "encoding/binary"

// Form identifies a UTFx wire form and its byte-order-mark.
type Form int

const (
	None Form = iota
	UTF8
	UTF16Native
	UTF16Swapped
	UTF32Native
	UTF32Swapped
)

// MaxSeqLength is the longest BOM byte sequence (UTF-32, 4 bytes).
const MaxSeqLength = 4

var littleEndianNative = isLittleEndianNative()

func isLittleEndianNative() bool {
	var buf [2]byte
	binary.NativeEndian.PutUint16(buf[:], 0x0102)
	return buf[0] == 0x02
}

// marks holds the canonical BOM bytes for each form, indexed by Form.
var marks = [...][]byte{
	None:         nil,
	UTF8:         {0xef, 0xbb, 0xbf},
	UTF16Native:  nil, // filled in init, depends on native endianness
	UTF16Swapped: nil,
	UTF32Native:  nil,
	UTF32Swapped: nil,
}

func init() {
	be16 := []byte{0xfe, 0xff}
	le16 := []byte{0xff, 0xfe}
	be32 := []byte{0x00, 0x00, 0xfe, 0xff}
	le32 := []byte{0xff, 0xfe, 0x00, 0x00}
	if littleEndianNative {
		marks[UTF16Native] = le16
		marks[UTF16Swapped] = be16
		marks[UTF32Native] = le32
		marks[UTF32Swapped] = be32
	} else {
		marks[UTF16Native] = be16
		marks[UTF16Swapped] = le16
		marks[UTF32Native] = be32
		marks[UTF32Swapped] = le32
	}
}

// ByteSize returns the length of f's byte-order-mark when encoded.
func (f Form) ByteSize() int {
	return len(marks[f])
}

// Encode writes f's byte-order-mark into out and returns its length
// (0..4). out must be at least MaxSeqLength bytes.
func (f Form) Encode(out []byte) int {
	n := copy(out, marks[f])
	return n
}

// String names the form, for diagnostics.
func (f Form) String() string {
	switch f {
	case None:
		return "none"
	case UTF8:
		return "utf-8"
	case UTF16Native:
		return "utf-16"
	case UTF16Swapped:
		return "utf-16 (swapped)"
	case UTF32Native:
		return "utf-32"
	case UTF32Swapped:
		return "utf-32 (swapped)"
	default:
		return "unknown"
	}
}

// Detect inspects up to four leading bytes of b and returns the
// matching form, or None. UTF-32 forms are checked before UTF-16
// because a little-endian UTF-16 BOM (FF FE) is itself a prefix of the
// little-endian UTF-32 BOM (FF FE 00 00).
func Detect(b []byte) Form {
	if hasPrefix(b, marks[UTF32Native]) {
		return UTF32Native
	}
	if hasPrefix(b, marks[UTF32Swapped]) {
		return UTF32Swapped
	}
	if hasPrefix(b, marks[UTF8]) {
		return UTF8
	}
	if hasPrefix(b, marks[UTF16Native]) {
		return UTF16Native
	}
	if hasPrefix(b, marks[UTF16Swapped]) {
		return UTF16Swapped
	}
	return None
}

func hasPrefix(b, mark []byte) bool {
	if len(mark) == 0 || len(b) < len(mark) {
		return false
	}
	for i := range mark {
		if b[i] != mark[i] {
			return false
		}
	}
	return true
}
