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
	"github.com/thanhtphung/cppware-sub002/quoted"
	"github.com/thanhtphung/cppware-sub002/utf16"
	"github.com/thanhtphung/cppware-sub002/utf8"
)

// --- Mutation ---

// AppendByte appends a single ASCII byte.
func (v *Value) AppendByte(c byte) {
	v.cow()
	v.b.seq.AppendASCII([]byte{c})
}

// AppendRune appends a single code point.
func (v *Value) AppendRune(c uint32) {
	v.cow()
	v.b.seq.Append(c)
}

// AppendString appends other's content.
func (v *Value) AppendString(other Value) {
	if other.LenCodePoints() == 0 {
		return
	}
	v.cow()
	v.b.seq.AppendSeq(other.b.seq, 0, other.LenCodePoints())
}

// AppendUTF8Seq appends a raw UTF-8 sequence.
func (v *Value) AppendUTF8Seq(seq *utf8.Sequence) {
	if seq.LenCodePoints() == 0 {
		return
	}
	v.cow()
	v.b.seq.AppendBytes(seq.Bytes(), seq.LenBytes(), seq.LenCodePoints())
}

// AppendUTF16Seq appends a raw UTF-16 sequence, converting to UTF-8.
func (v *Value) AppendUTF16Seq(seq *utf16.Sequence) {
	if seq.LenUnits() == 0 {
		return
	}
	tail := utf8.NewSequence(seq.LenUnits() * 2)
	tail.ConvertFromUTF16Native(seq.Units(), utf8.DefaultChar)
	v.AppendUTF8Seq(tail)
}

// AppendBytes appends raw UTF-8 bytes.
func (v *Value) AppendBytes(s []byte) {
	if len(s) == 0 {
		return
	}
	tail := utf8.NewSequence(len(s))
	tail.ConvertFromUTF8(s, utf8.DefaultChar)
	v.AppendUTF8Seq(tail)
}

// AppendWideString appends a UTF-16 code-unit slice, converting to
// UTF-8.
func (v *Value) AppendWideString(w []uint16) {
	if len(w) == 0 {
		return
	}
	tail := utf8.NewSequence(len(w) * 2)
	tail.ConvertFromUTF16Native(w, utf8.DefaultChar)
	v.AppendUTF8Seq(tail)
}

// AppendWideRune appends a single wide character (a code point via the
// 16-bit wide-char convention).
func (v *Value) AppendWideRune(c rune) { v.AppendRune(uint32(c)) }

// SetBytes replaces v's content with raw UTF-8 bytes.
func (v *Value) SetBytes(s []byte) {
	if len(s) == 0 {
		v.Reset()
		return
	}
	v.row()
	v.b.seq.ConvertFromUTF8(s, utf8.DefaultChar)
}

// SetWideString replaces v's content with a UTF-16 code-unit slice.
func (v *Value) SetWideString(w []uint16) {
	if len(w) == 0 {
		v.Reset()
		return
	}
	v.row()
	v.b.seq.ConvertFromUTF16Native(w, utf8.DefaultChar)
}

// SetUTF8Seq replaces v's content with a raw UTF-8 sequence.
func (v *Value) SetUTF8Seq(seq *utf8.Sequence) {
	*v = FromUTF8Seq(seq)
}

// SetUTF16Seq replaces v's content with a raw UTF-16 sequence.
func (v *Value) SetUTF16Seq(seq *utf16.Sequence) {
	*v = FromUTF16Seq(seq)
}

// SetSubstr replaces v's content with charCount code points of str
// starting at code point startAt.
func (v *Value) SetSubstr(str Value, startAt, charCount int) {
	*v = Substr(str, startAt, charCount)
}

// SetRepeat replaces v's content with count copies of the ASCII byte c.
func (v *Value) SetRepeat(count int, c byte) {
	*v = Repeat(count, c)
}

// Reset replaces v's content with the empty string.
func (v *Value) Reset() {
	v.b.rmRef()
	v.b = emptyRef()
}

// Replace substitutes every occurrence of the ASCII byte oldB with
// newB. It operates on raw bytes and is only meaningful for ASCII
// substitutions, matching the reference's documented limitation.
func (v *Value) Replace(oldB, newB byte) {
	raw := v.b.seq.Bytes()
	hasOld := false
	for _, b := range raw {
		if b == oldB {
			hasOld = true
			break
		}
	}
	if !hasOld {
		return
	}
	v.cow()
	n := v.b.seq.LenBytes()
	for i := 0; i < n; i++ {
		if c, _ := v.rawByte(i); c == oldB {
			v.b.seq.SetByte(i, newB)
		}
	}
}

func (v Value) rawByte(i int) (byte, bool) {
	raw := v.b.seq.Bytes()
	if i < 0 || i >= len(raw) {
		return 0, false
	}
	return raw[i], true
}

// TrimSpace trims leading and/or trailing ASCII whitespace.
func (v *Value) TrimSpace(trimLeft, trimRight bool) {
	raw := v.b.seq.Bytes()
	lo, hi := 0, len(raw)
	if trimLeft {
		for lo < hi && isASCIISpace(raw[lo]) {
			lo++
		}
	}
	if trimRight {
		for hi > lo && isASCIISpace(raw[hi-1]) {
			hi--
		}
	}
	if lo == 0 && hi == len(raw) {
		return
	}
	if lo >= hi {
		v.Reset()
		return
	}
	trimmed := append([]byte(nil), raw[lo:hi]...)
	v.SetBytes(trimmed)
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// Truncate keeps only the first n code points. It reports whether
// truncation actually removed anything.
func (v *Value) Truncate(n int) bool {
	if v.LenCodePoints() <= n {
		return false
	}
	v.cow()
	v.b.seq.Truncate(n)
	return true
}

// Dequote strips matching surrounding quotes (if any) and resolves
// escape sequences, delegating to the quoted package. It reports
// whether anything changed.
func (v *Value) Dequote(allowInSingleQuotes bool) bool {
	out, modified := quoted.Dequote(v.b.seq.Bytes(), allowInSingleQuotes)
	if !modified {
		return false
	}
	v.SetBytes(out)
	return true
}

// Enquote returns a new string wrapping v's content in the requested
// quote character, escaping as quoted.Enquote describes.
func (v Value) Enquote(quote byte, escapeSingleQuote bool) Value {
	return FromBytes(quoted.Enquote(v.b.seq.Bytes(), quote, escapeSingleQuote))
}
