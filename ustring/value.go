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
	"strings"

	"github.com/thanhtphung/cppware-sub002/utf16"
	"github.com/thanhtphung/cppware-sub002/utf8"
)

// InvalidIndex is the sentinel returned by search operations on
// failure, and by Find/RFind when the request is out of range.
const InvalidIndex = utf8.InvalidIndex

// Value is a UTF-capable copy-on-write string. The zero Value is not
// ready for use; call Empty() or one of the other constructors.
//
// Value is a thin, cheap-to-copy handle around a shared body. Plain Go
// assignment (t := s) hands t the same body pointer as s without
// bumping the refcount -- harmless for memory safety (the garbage
// collector tracks real liveness) but invisible to the copy-on-write
// guard, which decides whether to clone by reading the refcount. Use
// Clone() whenever two independent handles that currently share a body
// are wanted; a bare struct copy is only safe for values that are never
// mutated afterward (e.g. passing by value into a read-only function).
type Value struct {
	b *body
}

// Empty returns the empty string.
func Empty() Value { return Value{b: emptyRef()} }

// FromUTF8Seq constructs a string from a UTF-8 sequence, taking
// ownership of a clone of it.
func FromUTF8Seq(seq *utf8.Sequence) Value {
	if seq.LenBytes() == 0 {
		return Empty()
	}
	return Value{b: bodyFromSeq(seq.Clone())}
}

// FromUTF16Seq constructs a string by converting a UTF-16 sequence to
// UTF-8.
func FromUTF16Seq(seq *utf16.Sequence) Value {
	if seq.LenUnits() == 0 {
		return Empty()
	}
	dst := utf8.NewSequence(seq.LenUnits() * 2)
	dst.ConvertFromUTF16Native(seq.Units(), utf8.DefaultChar)
	return Value{b: bodyFromSeq(dst)}
}

// FromBytes constructs a string from raw UTF-8 bytes. Unlike the
// reference implementation's char*/(char*,length) pair, a Go byte slice
// always carries its own length, so the two constructors collapse into
// one.
func FromBytes(s []byte) Value {
	if len(s) == 0 {
		return Empty()
	}
	seq := utf8.NewSequence(len(s))
	seq.ConvertFromUTF8(s, utf8.DefaultChar)
	return Value{b: bodyFromSeq(seq)}
}

// FromString is FromBytes for a Go string.
func FromString(s string) Value { return FromBytes([]byte(s)) }

// FromWideString constructs a string from a UTF-16 code-unit slice.
// widen()/FromWideString standardize on 16-bit units rather than
// switching on a platform wide-char width (see SPEC_FULL.md's
// resolution of the widen() open question).
func FromWideString(w []uint16) Value {
	if len(w) == 0 {
		return Empty()
	}
	seq := utf8.NewSequence(len(w) * 2)
	seq.ConvertFromUTF16Native(w, utf8.DefaultChar)
	return Value{b: bodyFromSeq(seq)}
}

// Repeat constructs a string of count copies of the ASCII byte c.
func Repeat(count int, c byte) Value {
	if count <= 0 {
		return Empty()
	}
	seq := utf8.NewSequence(count)
	seq.AppendFill(count, c)
	return Value{b: bodyFromSeq(seq)}
}

// RepeatRune constructs a string of count copies of the code point c.
func RepeatRune(count int, c rune) Value {
	if count <= 0 {
		return Empty()
	}
	var tmp [utf8.MaxSeqLength]byte
	n := utf8.Encode(uint32(c), tmp[:])
	seq := utf8.NewSequence(count * n)
	for i := 0; i < count; i++ {
		seq.AppendBytes(tmp[:n], n, 1)
	}
	return Value{b: bodyFromSeq(seq)}
}

// Substr returns charCount code points of str starting at code point
// startAt. A startAt beyond the string's end yields the empty string; a
// charCount that reaches past the end is clamped.
func Substr(str Value, startAt, charCount int) Value {
	numChars := str.LenCodePoints()
	if startAt >= numChars || charCount <= 0 {
		return Empty()
	}
	maxCount := numChars - startAt
	if charCount > maxCount {
		charCount = maxCount
	}
	seq := utf8.NewSequence(utf8.DefaultCap)
	seq.AppendSeq(str.b.seq, startAt, charCount)
	return Value{b: bodyFromSeq(seq)}
}

// Clone returns a new handle sharing str's body, bumping the refcount
// so the copy-on-write guard sees the sharing (see the Value doc
// comment).
func (v Value) Clone() Value {
	v.b.addRef()
	return Value{b: v.b}
}

// cow clones the body privately if it is shared, so the caller may
// mutate it in place afterward.
func (v *Value) cow() {
	if v.b.refCount() > 1 {
		clone := v.b.seq.Clone()
		v.b.rmRef()
		v.b = bodyFromSeq(clone)
	}
}

// row replaces a shared body with a fresh empty one at the same
// capacity, for mutators that discard the old value outright.
func (v *Value) row() {
	if v.b.refCount() > 1 {
		capacity := v.b.seq.Capacity()
		v.b.rmRef()
		v.b = newBody(capacity)
	}
}

// --- Queries ---

// LenCodePoints returns the number of code points in the string.
func (v Value) LenCodePoints() int { return v.b.seq.LenCodePoints() }

// LenBytes returns the raw UTF-8 byte length of the string.
func (v Value) LenBytes() int { return v.b.seq.LenBytes() }

// IsEmpty reports whether the string holds no code points.
func (v Value) IsEmpty() bool { return v.b.seq.LenCodePoints() == 0 }

// IsASCII reports whether every code point is a 7-bit ASCII character.
func (v Value) IsASCII() bool { return v.b.seq.LenCodePoints() == v.b.seq.LenBytes() }

// At returns the i-th code point.
func (v Value) At(i int) (c uint32, ok bool) { return v.b.seq.Index(i) }

// Equal reports whether v and other hold the same bytes.
func (v Value) Equal(other Value) bool {
	return string(v.b.seq.Bytes()) == string(other.b.seq.Bytes())
}

// Compare orders v against other by raw byte content, case-sensitive.
func (v Value) Compare(other Value) int {
	return strings.Compare(string(v.b.seq.Bytes()), string(other.b.seq.Bytes()))
}

// Less reports whether v sorts before other, case-sensitive.
func (v Value) Less(other Value) bool { return v.Compare(other) < 0 }

// CompareKey compares an ASCII key against a Value's ASCII content,
// case-sensitive. Mirrors the reference's compareKP.
func CompareKey(key string, v Value) int {
	return strings.Compare(key, string(v.b.seq.Bytes()))
}

// CompareKeyCI is CompareKey, case-insensitive. Mirrors compareKPI.
func CompareKeyCI(key string, v Value) int {
	return strings.Compare(strings.ToLower(key), strings.ToLower(string(v.b.seq.Bytes())))
}

// CompareValues compares two Values by content, case-sensitive. Mirrors
// compareP.
func CompareValues(a, b Value) int { return a.Compare(b) }

// CompareValuesCI is CompareValues, case-insensitive. Mirrors comparePI.
func CompareValuesCI(a, b Value) int {
	return strings.Compare(strings.ToLower(string(a.b.seq.Bytes())), strings.ToLower(string(b.b.seq.Bytes())))
}

// CompareValuesCIReverse is CompareValuesCI with the sense of the
// result reversed. Mirrors comparePIR.
func CompareValuesCIReverse(a, b Value) int { return -CompareValuesCI(a, b) }

// CompareValuesReverse is CompareValues with the sense of the result
// reversed. Mirrors comparePR.
func CompareValuesReverse(a, b Value) int { return -CompareValues(a, b) }

// StartsWith reports whether v starts with prefix.
func (v Value) StartsWith(prefix Value, ignoreCase bool) bool {
	return hasAffix(v.b.seq.Bytes(), prefix.b.seq.Bytes(), ignoreCase, false)
}

// EndsWith reports whether v ends with suffix.
func (v Value) EndsWith(suffix Value, ignoreCase bool) bool {
	return hasAffix(v.b.seq.Bytes(), suffix.b.seq.Bytes(), ignoreCase, true)
}

func hasAffix(s, affix []byte, ignoreCase, fromEnd bool) bool {
	if len(affix) == 0 {
		return true
	}
	if len(affix) > len(s) {
		return false
	}
	var slice []byte
	if fromEnd {
		slice = s[len(s)-len(affix):]
	} else {
		slice = s[:len(affix)]
	}
	if ignoreCase {
		return strings.EqualFold(string(slice), string(affix))
	}
	return string(slice) == string(affix)
}

// Contains reports whether v contains sub. If backward is true, the
// search (irrelevant to the result but mirrored from the reference
// contract) runs right to left.
func (v Value) Contains(sub Value, backward bool) bool {
	foundAt := v.Find(sub, 0)
	if backward {
		foundAt = v.RFind(sub, InvalidIndex)
	}
	return foundAt != InvalidIndex
}

// ContainsRune reports whether v contains the code point c.
func (v Value) ContainsRune(c uint32, backward bool) bool {
	foundAt := v.FindRune(c, 0)
	if backward {
		foundAt = v.RFindRune(c, InvalidIndex)
	}
	return foundAt != InvalidIndex
}

// Find returns the code-point index of the first occurrence of sub at
// or after startAt, or InvalidIndex.
func (v Value) Find(sub Value, startAt uint32) uint32 {
	hay := v.b.seq.Bytes()
	needle := string(sub.b.seq.Bytes())
	if len(needle) == 0 {
		return InvalidIndex
	}
	numChars := v.LenCodePoints()
	if int(startAt) >= numChars {
		return InvalidIndex
	}
	off, ok := v.b.seq.Seek(int(startAt))
	if !ok {
		return InvalidIndex
	}
	rel := strings.Index(string(hay[off:]), needle)
	if rel < 0 {
		return InvalidIndex
	}
	ok2, n := utf8.CountCodePoints(hay[off : off+rel])
	_ = ok2
	return startAt + uint32(n)
}

// RFind returns the code-point index of the last occurrence of sub
// whose start lies at or before startAt (InvalidIndex searches from the
// right end), or InvalidIndex if not found.
func (v Value) RFind(sub Value, startAt uint32) uint32 {
	hay := v.b.seq.Bytes()
	needle := string(sub.b.seq.Bytes())
	if len(needle) == 0 {
		return InvalidIndex
	}
	numChars := v.LenCodePoints()
	if numChars == 0 {
		return InvalidIndex
	}
	maxStart := numChars - 1
	if startAt != InvalidIndex && int(startAt) < maxStart {
		maxStart = int(startAt)
	}
	startBoundOff, ok := v.b.seq.Seek(maxStart)
	if !ok {
		startBoundOff = len(hay)
	}
	searchEnd := startBoundOff + len(needle)
	if searchEnd > len(hay) {
		searchEnd = len(hay)
	}
	rel := strings.LastIndex(string(hay[:searchEnd]), needle)
	if rel < 0 {
		return InvalidIndex
	}
	_, n := utf8.CountCodePoints(hay[:rel])
	return uint32(n)
}

// FindRune returns the code-point index of the first occurrence of c
// at or after startAt, or InvalidIndex.
func (v Value) FindRune(c uint32, startAt uint32) uint32 {
	found := uint32(InvalidIndex)
	v.b.seq.ApplyLowToHigh(func(i int, cp uint32) bool {
		if i < int(startAt) {
			return true
		}
		if cp == c {
			found = uint32(i)
			return false
		}
		return true
	})
	return found
}

// RFindRune returns the code-point index of the last occurrence of c at
// or before startAt (InvalidIndex searches from the right end), or
// InvalidIndex.
func (v Value) RFindRune(c uint32, startAt uint32) uint32 {
	numChars := v.LenCodePoints()
	if numChars == 0 {
		return InvalidIndex
	}
	limit := numChars - 1
	if startAt != InvalidIndex && int(startAt) < limit {
		limit = int(startAt)
	}
	found := InvalidIndex
	v.b.seq.ApplyHighToLow(func(i int, cp uint32) bool {
		if i > limit {
			return true
		}
		if cp == c {
			found = uint32(i)
			return false
		}
		return true
	})
	return found
}

// Hash computes the djb2 hash of the raw UTF-8 bytes: seed 5381, then
// h = h + (h<<5) + b for each byte.
func (v Value) Hash() uint32 {
	var h uint32 = 5381
	for _, b := range v.b.seq.Bytes() {
		h = h + (h << 5) + uint32(b)
	}
	return h
}

// HashP (a static-style method, mirroring the reference's hashP) maps v
// to a bucket index less than numBuckets.
func HashP(v Value, numBuckets uint32) uint32 {
	return v.Hash() % numBuckets
}
