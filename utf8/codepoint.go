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

package utf8

import "github.com/thanhtphung/cppware-sub002/internal/codec"

// Code point classification constants, matching RFC 3629.
const (
	DefaultChar  = codec.DefaultChar
	MaxAscii     = codec.MaxAscii
	MaxChar      = codec.MaxChar
	MinReserved  = codec.MinReserved
	MaxReserved  = codec.MaxReserved
	MinSeqLength = codec.MinSeqLength
	MaxSeqLength = codec.MaxSeqLength
	InvalidByte0 = codec.InvalidByte0
	InvalidByte  = codec.InvalidByte
)

// InvalidIndex is returned by search operations that fail to find a
// match.
const InvalidIndex = codec.InvalidIndex

// IsValidCodepoint reports whether c is in [0, 0xD7FF] ∪ [0xE000, 0x10FFFF].
func IsValidCodepoint(c uint32) bool {
	return codec.IsValidCodepoint(c)
}

// Clamp returns c if valid, else DefaultChar.
func Clamp(c uint32) uint32 {
	return codec.Clamp(c)
}

// SeqLengthFromLeader returns the byte sequence length (1..4) implied
// by a UTF-8 leading byte, or the sentinel InvalidByte0/InvalidByte.
func SeqLengthFromLeader(b byte) int {
	return codec.SeqLengthFromLeader(b)
}

// Encode writes c into buf as 1..4 UTF-8 bytes, returning the count,
// or 0 if buf is too small.
func Encode(c uint32, buf []byte) int {
	return codec.EncodeUTF8(c, buf)
}

// Decode reads the leading code point of seq, returning its value and
// the number of bytes consumed (1..4), or n==0 on malformed/short
// input.
func Decode(seq []byte) (c uint32, n int) {
	return codec.DecodeUTF8(seq)
}
