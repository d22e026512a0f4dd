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

// Package utf16 provides a growable UTF-16 (native-endianness) code
// unit sequence, mirroring the sibling utf8 package's Sequence
// contract with a 2-byte unit instead of a 1-byte one.
package utf16

import "github.com/thanhtphung/cppware-sub002/internal/codec"

// DefaultChar replaces invalid input in lossy conversions.
const DefaultChar = codec.DefaultChar

// MaxSeqLength is the longest unit count a single code point can take
// (a surrogate pair).
const MaxSeqLength = 2

// IsValidCodepoint reports whether c is in [0, 0xD7FF] ∪ [0xE000, 0x10FFFF].
func IsValidCodepoint(c uint32) bool { return codec.IsValidCodepoint(c) }

// Encode writes c into buf as 1..2 native-endian units, returning the
// count, or 0 if buf is too small.
func Encode(c uint32, buf []uint16) int { return codec.EncodeUTF16(c, buf) }

// Decode reads the leading code point of seq (native endianness),
// returning its value and the number of units consumed (1..2), or
// n==0 on a malformed surrogate or short input.
func Decode(seq []uint16) (c uint32, n int) { return codec.DecodeUTF16(seq) }
