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

package ustring

import (
	"encoding/binary"
	"strings"

	"github.com/thanhtphung/cppware-sub002/bom"
	"github.com/thanhtphung/cppware-sub002/internal/codec"
	"github.com/thanhtphung/cppware-sub002/utf16"
	"github.com/thanhtphung/cppware-sub002/utf8"
)

// AsBytes returns the raw UTF-8 bytes. The returned slice aliases v's
// body and must not be retained past the next mutation of v or of a
// clone sharing its body.
func (v Value) AsBytes() []byte { return v.b.seq.Bytes() }

// AsBytesWithLen is AsBytes plus its length, mirroring the reference's
// as_bytes_with_len (redundant in Go, where slices already carry their
// length, but kept for interface parity).
func (v Value) AsBytesWithLen() ([]byte, int) {
	b := v.AsBytes()
	return b, len(b)
}

// AsCStr returns a freshly allocated, NUL-terminated copy of v's bytes.
func (v Value) AsCStr() []byte {
	raw := v.AsBytes()
	out := make([]byte, len(raw)+1)
	copy(out, raw)
	return out
}

// AsUTF8Seq exposes v's underlying UTF-8 sequence. The returned pointer
// aliases v's body and must be treated as read-only.
func (v Value) AsUTF8Seq() *utf8.Sequence { return v.b.seq }

// Widen returns v as a UTF-16 code-unit slice.
func (v Value) Widen() []uint16 {
	codePoints := v.b.seq.Expand()
	out := make([]uint16, 0, len(codePoints))
	var tmp [utf16.MaxSeqLength]uint16
	for _, c := range codePoints {
		n := utf16.Encode(c, tmp[:])
		out = append(out, tmp[:n]...)
	}
	return out
}

// AsASCII8 maps each code point to an 8-bit byte, substituting
// defaultChar for any code point above 0xFF. It returns the mapped
// bytes and the number of substitutions made.
func (v Value) AsASCII8(defaultChar byte) (out []byte, replacements int) {
	codePoints := v.b.seq.Expand()
	out = make([]byte, len(codePoints))
	for i, c := range codePoints {
		if c <= 0xff {
			out[i] = byte(c)
		} else {
			out[i] = defaultChar
			replacements++
		}
	}
	return out, replacements
}

// FormUTFx encodes v in the requested wire form, optionally prefixed
// with that form's byte-order-mark.
func (v Value) FormUTFx(form bom.Form, addBom bool) []byte {
	var body []byte
	switch form {
	case bom.UTF16Native, bom.UTF16Swapped:
		body = encodeUTF16Bytes(v.Widen(), form == bom.UTF16Swapped)
	case bom.UTF32Native, bom.UTF32Swapped:
		body = encodeUTF32Bytes(v.b.seq.Expand(), form == bom.UTF32Swapped)
	default: // bom.None, bom.UTF8
		body = append([]byte(nil), v.AsBytes()...)
	}
	if !addBom {
		return body
	}
	var mark [bom.MaxSeqLength]byte
	n := form.Encode(mark[:])
	out := make([]byte, 0, n+len(body))
	out = append(out, mark[:n]...)
	out = append(out, body...)
	return out
}

func encodeUTF16Bytes(units []uint16, swapped bool) []byte {
	out := make([]byte, len(units)*2)
	for i, u := range units {
		if swapped {
			u = codec.Bswap16(u)
		}
		binary.NativeEndian.PutUint16(out[i*2:], u)
	}
	return out
}

func encodeUTF32Bytes(codePoints []uint32, swapped bool) []byte {
	out := make([]byte, len(codePoints)*4)
	for i, c := range codePoints {
		if swapped {
			c = codec.Bswap32(c)
		}
		binary.NativeEndian.PutUint32(out[i*4:], c)
	}
	return out
}

// ResetX replaces v's content by decoding data per the given wire form.
// It returns the number of invalid code points replaced.
func (v *Value) ResetX(form bom.Form, data []byte) int {
	return v.ResetXWithChar(form, data, utf8.DefaultChar)
}

// ResetXWithChar is ResetX, substituting defaultChar for invalid input
// instead of utf8.DefaultChar.
func (v *Value) ResetXWithChar(form bom.Form, data []byte, defaultChar uint32) int {
	v.row()
	switch form {
	case bom.UTF16Native:
		units := bytesToUnits16(data)
		return v.b.seq.ConvertFromUTF16Native(units, defaultChar)
	case bom.UTF16Swapped:
		units := bytesToUnits16(data)
		return v.b.seq.ConvertFromUTF16Swapped(units, defaultChar)
	case bom.UTF32Native:
		codePoints := bytesToUnits32(data, false)
		return v.b.seq.Shrink(codePoints, defaultChar)
	case bom.UTF32Swapped:
		codePoints := bytesToUnits32(data, true)
		return v.b.seq.Shrink(codePoints, defaultChar)
	default: // bom.None, bom.UTF8
		return v.b.seq.ConvertFromUTF8(data, defaultChar)
	}
}

// ResetAuto replaces v's content by auto-detecting a leading BOM in
// data (defaulting to UTF-8 when none is present) and decoding
// accordingly. It returns the number of invalid code points replaced.
func (v *Value) ResetAuto(data []byte) int {
	return v.ResetAutoWithChar(data, utf8.DefaultChar)
}

// ResetAutoWithChar is ResetAuto, substituting defaultChar for invalid
// input instead of utf8.DefaultChar.
func (v *Value) ResetAutoWithChar(data []byte, defaultChar uint32) int {
	form := bom.Detect(data)
	return v.ResetXWithChar(form, data[form.ByteSize():], defaultChar)
}

func bytesToUnits16(data []byte) []uint16 {
	n := len(data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = binary.NativeEndian.Uint16(data[i*2:])
	}
	return out
}

func bytesToUnits32(data []byte, swapped bool) []uint32 {
	n := len(data) / 4
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		c := binary.NativeEndian.Uint32(data[i*4:])
		if swapped {
			c = codec.Bswap32(c)
		}
		out[i] = c
	}
	return out
}

// FormBox folds v into a wrapped representation: each line except
// possibly the last holds exactly width code points, the first line
// indented by indent0 spaces and subsequent lines by indent spaces.
// Input that fits on the first line is returned as is (indented by
// indent0) whatever its content. Longer input is boxed only when it is
// ASCII; longer non-ASCII input is returned unchanged (see
// SPEC_FULL.md's open-question note on this fallthrough).
func (v Value) FormBox(indent0, indent, width int) string {
	length := v.LenCodePoints()
	s := string(v.AsBytes())

	if indent0 == 0 && length <= width {
		return s
	}
	if length+indent0 <= width {
		return strings.Repeat(" ", indent0) + s
	}
	if !v.IsASCII() {
		return s
	}

	height := length/width + 1
	var out strings.Builder
	out.WriteString(strings.Repeat(" ", indent0))
	src := s
	for i := 1; i < height; i++ {
		out.WriteString(src[:width])
		src = src[width:]
		out.WriteByte('\n')
		if indent > 0 {
			out.WriteString(strings.Repeat(" ", indent))
		}
	}
	lengthN := length % width
	if lengthN > 0 {
		out.WriteString(src[:lengthN])
		return out.String()
	}
	result := out.String()
	return result[:len(result)-(indent+1)]
}
