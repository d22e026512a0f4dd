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

// Package utf8 provides a growable UTF-8 byte sequence (Sequence) on
// top of the code-point codec in this file's sibling, plus the extra
// UTF-8-specific helpers (ValidStringLength) the teacher already
// carried.
package utf8

import "github.com/thanhtphung/cppware-sub002/internal/growable"

// DefaultCap is the initial capacity (in bytes) NewSequence uses when
// given a non-positive capacity, matching the reference Utf8Seq's
// default.
const DefaultCap = 1024

// Sequence is a growable sequence of UTF-8 bytes tracking both its
// byte length and its code-point count, so callers never have to scan
// to answer either question.
type Sequence struct {
	buf      []byte
	byteLen  int
	numChars int
	policy   growable.Policy
}

// NewSequence returns an empty sequence with the given initial
// capacity (in bytes) and exponential growth.
func NewSequence(capacity int) *Sequence {
	if capacity <= 0 {
		capacity = DefaultCap
	}
	return &Sequence{
		buf:    make([]byte, capacity),
		policy: growable.New(capacity, growable.Exponential()),
	}
}

// FromRaw adopts an owned buffer as-is. The caller asserts that the
// first nBytes bytes of s form a valid UTF-8 sequence of nChars code
// points.
func FromRaw(s []byte, nBytes, nChars int) *Sequence {
	return &Sequence{
		buf:      s,
		byteLen:  nBytes,
		numChars: nChars,
		policy:   growable.New(len(s), growable.Exponential()),
	}
}

// LenBytes returns the number of bytes currently stored.
func (s *Sequence) LenBytes() int { return s.byteLen }

// LenCodePoints returns the number of code points currently stored.
func (s *Sequence) LenCodePoints() int { return s.numChars }

// Capacity returns the current capacity in bytes.
func (s *Sequence) Capacity() int { return s.policy.Capacity() }

// SetGrowth changes the growth factor (see package growable).
func (s *Sequence) SetGrowth(newFactor int) bool {
	return s.policy.SetGrowth(newFactor, s.byteLen)
}

// Bytes returns the stored bytes. The returned slice aliases the
// sequence's internal buffer and must not be retained past the next
// mutation.
func (s *Sequence) Bytes() []byte { return s.buf[:s.byteLen] }

// Resize changes capacity to exactly newCap. It fails (returning
// false, unchanged) if newCap cannot hold the current payload. It is a
// no-op success when newCap already equals the current capacity.
func (s *Sequence) Resize(newCap int) bool {
	if newCap == s.policy.Capacity() {
		return true
	}
	if !s.policy.Resize(newCap, s.byteLen) {
		return false
	}
	grown := make([]byte, newCap)
	copy(grown, s.buf[:s.byteLen])
	s.buf = grown
	return true
}

func (s *Sequence) growTo(minCap int) bool {
	if s.policy.Capacity() >= minCap {
		return true
	}
	if !s.policy.GrowTo(minCap) {
		return false
	}
	grown := make([]byte, s.policy.Capacity())
	copy(grown, s.buf[:s.byteLen])
	s.buf = grown
	return true
}

// fastPath reports whether every code point held so far is single-byte,
// which makes indexing and iteration O(1) per step.
func (s *Sequence) fastPath() bool { return s.numChars == s.byteLen }

// Append encodes and appends one code point. It reports false (no
// change) only when growth is exhausted under a fixed growth policy.
func (s *Sequence) Append(c uint32) bool {
	var tmp [MaxSeqLength]byte
	n := Encode(c, tmp[:])
	return s.AppendBytes(tmp[:n], n, 1)
}

// AppendBytes appends nBytes bytes (nChars code points) assumed
// already valid UTF-8.
func (s *Sequence) AppendBytes(b []byte, nBytes, nChars int) bool {
	if !s.growTo(s.byteLen + nBytes) {
		return false
	}
	copy(s.buf[s.byteLen:], b[:nBytes])
	s.byteLen += nBytes
	s.numChars += nChars
	return true
}

// AppendASCII appends a byte slice known to be pure ASCII: one byte
// per code point.
func (s *Sequence) AppendASCII(a []byte) bool {
	return s.AppendBytes(a, len(a), len(a))
}

// AppendSeq appends count code points from other, starting at code
// point index start.
func (s *Sequence) AppendSeq(other *Sequence, start, count int) bool {
	if count == 0 {
		return true
	}
	from, ok := other.Seek(start)
	if !ok {
		return false
	}
	to, ok := other.Seek(start + count)
	if !ok {
		to = other.byteLen
	}
	return s.AppendBytes(other.buf[from:to], to-from, count)
}

// AppendFill appends count copies of an ASCII byte.
func (s *Sequence) AppendFill(count int, asciiByte byte) bool {
	if !s.growTo(s.byteLen + count) {
		return false
	}
	for i := 0; i < count; i++ {
		s.buf[s.byteLen+i] = asciiByte
	}
	s.byteLen += count
	s.numChars += count
	return true
}

// SetByte raw-writes a single byte at byte offset i. Used by ASCII
// fast paths only; it does not touch numChars.
func (s *Sequence) SetByte(i int, b byte) {
	s.buf[i] = b
}

// Seek returns the byte offset of code point i, walking from whichever
// end of the sequence is closer. It reports false if i is out of
// range.
func (s *Sequence) Seek(i int) (offset int, ok bool) {
	if i < 0 || i > s.numChars {
		return 0, false
	}
	if i == s.numChars {
		return s.byteLen, true
	}
	if s.fastPath() {
		return i, true
	}
	if i <= s.numChars/2 {
		off := 0
		for n := 0; n < i; n++ {
			_, size := Decode(s.buf[off:s.byteLen])
			off += size
		}
		return off, true
	}
	off := s.byteLen
	for n := s.numChars; n > i; n-- {
		off = prevOffset(s.buf, off)
	}
	return off, true
}

func prevOffset(buf []byte, off int) int {
	off--
	for off > 0 && buf[off]&0xc0 == 0x80 {
		off--
	}
	return off
}

// Index returns the i-th code point.
func (s *Sequence) Index(i int) (c uint32, ok bool) {
	off, ok := s.Seek(i)
	if !ok || off >= s.byteLen {
		return 0, false
	}
	c, _ = Decode(s.buf[off:s.byteLen])
	return c, true
}

// Truncate drops trailing code points, keeping only the first n.
func (s *Sequence) Truncate(n int) bool {
	off, ok := s.Seek(n)
	if !ok {
		return false
	}
	s.byteLen = off
	s.numChars = n
	return true
}

// Detach gives up the buffer, leaving the sequence empty, and returns
// the bytes that were stored.
func (s *Sequence) Detach() []byte {
	out := s.buf[:s.byteLen]
	s.buf = nil
	s.byteLen = 0
	s.numChars = 0
	s.policy = growable.New(0, growable.Exponential())
	return out
}

// Clone deep-copies the sequence.
func (s *Sequence) Clone() *Sequence {
	cp := make([]byte, len(s.buf))
	copy(cp, s.buf)
	return &Sequence{buf: cp, byteLen: s.byteLen, numChars: s.numChars, policy: s.policy}
}

// Expand widens the sequence into a freshly allocated code-point
// array.
func (s *Sequence) Expand() []uint32 {
	out := make([]uint32, s.numChars)
	s.ExpandInto(out)
	return out
}

// ExpandInto widens the sequence into dst, which must have room for
// LenCodePoints() entries.
func (s *Sequence) ExpandInto(dst []uint32) []uint32 {
	off := 0
	for i := 0; i < s.numChars; i++ {
		c, n := Decode(s.buf[off:s.byteLen])
		dst[i] = c
		off += n
	}
	return dst[:s.numChars]
}

// Shrink rebuilds the sequence from a flat code-point array, replacing
// invalid entries with defaultChar. It returns the number of entries
// replaced.
func (s *Sequence) Shrink(src []uint32, defaultChar uint32) int {
	replaced := 0
	s.buf = make([]byte, 0, len(src)*2)
	s.byteLen = 0
	s.numChars = 0
	var tmp [MaxSeqLength]byte
	for _, c := range src {
		if !IsValidCodepoint(c) {
			c = defaultChar
			replaced++
		}
		n := Encode(c, tmp[:])
		s.buf = append(s.buf, tmp[:n]...)
		s.byteLen += n
		s.numChars++
	}
	s.policy = growable.New(len(s.buf), growable.Exponential())
	return replaced
}

// ShrinkValid rebuilds the sequence from a flat code-point array the
// caller has already validated.
func (s *Sequence) ShrinkValid(src []uint32) {
	s.Shrink(src, DefaultChar)
}

// ApplyLowToHigh walks code points from first to last. cb returning
// false stops the walk early; the return value reports whether the
// walk completed.
func (s *Sequence) ApplyLowToHigh(cb func(index int, c uint32) bool) bool {
	off := 0
	for i := 0; i < s.numChars; i++ {
		c, n := Decode(s.buf[off:s.byteLen])
		if !cb(i, c) {
			return false
		}
		off += n
	}
	return true
}

// ApplyHighToLow walks code points from last to first. cb returning
// false stops the walk early; the return value reports whether the
// walk completed.
func (s *Sequence) ApplyHighToLow(cb func(index int, c uint32) bool) bool {
	offs := make([]int, s.numChars+1)
	off := 0
	for i := 0; i < s.numChars; i++ {
		offs[i] = off
		_, n := Decode(s.buf[off:s.byteLen])
		off += n
	}
	for i := s.numChars - 1; i >= 0; i-- {
		c, _ := Decode(s.buf[offs[i]:s.byteLen])
		if !cb(i, c) {
			return false
		}
	}
	return true
}

// CountCodePoints walks b and counts valid code points, stopping at
// the first invalid prefix. ok reports whether the entire slice
// decoded cleanly.
func CountCodePoints(b []byte) (ok bool, count int) {
	valid, offset := IsValidBytes(b)
	if valid {
		return true, ValidStringLength(b)
	}
	return false, ValidStringLength(b[:offset])
}

// IsValidBytes reports whether b is a sequence of valid UTF-8 code
// points, and if not, the byte offset of the first invalid prefix.
func IsValidBytes(b []byte) (ok bool, offset int) {
	off := 0
	for off < len(b) {
		_, n := Decode(b[off:])
		if n == 0 {
			return false, off
		}
		off += n
	}
	return true, off
}

// ConvertFromUTF8 replaces the sequence's contents by decoding b as
// UTF-8, substituting defaultChar for any malformed code point. It
// returns the number of code points replaced.
func (s *Sequence) ConvertFromUTF8(b []byte, defaultChar uint32) int {
	s.buf = make([]byte, 0, len(b))
	s.byteLen = 0
	s.numChars = 0
	replaced := 0
	var tmp [MaxSeqLength]byte
	off := 0
	for off < len(b) {
		c, n := Decode(b[off:])
		if n == 0 {
			c = defaultChar
			n = 1
			replaced++
		}
		m := Encode(c, tmp[:])
		s.buf = append(s.buf, tmp[:m]...)
		s.byteLen += m
		s.numChars++
		off += n
	}
	s.policy = growable.New(len(s.buf), growable.Exponential())
	return replaced
}

// ConvertFromUTF16Native replaces the sequence's contents by decoding
// units as native-endian UTF-16, substituting defaultChar for any
// malformed code point (including an unpaired surrogate). It returns
// the number of code points replaced.
func (s *Sequence) ConvertFromUTF16Native(units []uint16, defaultChar uint32) int {
	return s.convertFromUTF16(units, defaultChar, false)
}

// ConvertFromUTF16Swapped is ConvertFromUTF16Native for opposite-endian
// input: each unit is byte-swapped before decoding.
func (s *Sequence) ConvertFromUTF16Swapped(units []uint16, defaultChar uint32) int {
	return s.convertFromUTF16(units, defaultChar, true)
}

func (s *Sequence) convertFromUTF16(units []uint16, defaultChar uint32, swapped bool) int {
	s.buf = make([]byte, 0, len(units)*2)
	s.byteLen = 0
	s.numChars = 0
	replaced := 0
	var tmp [MaxSeqLength]byte
	i := 0
	for i < len(units) {
		u0 := units[i]
		if swapped {
			u0 = bswap16(u0)
		}
		var pair [2]uint16
		pair[0] = u0
		width := 1
		if u0 >= 0xd800 && u0 <= 0xdbff && i+1 < len(units) {
			u1 := units[i+1]
			if swapped {
				u1 = bswap16(u1)
			}
			pair[1] = u1
			width = 2
		}
		c, n := decodeUTF16(pair[:width])
		if n == 0 {
			c = defaultChar
			n = 1
			replaced++
		}
		m := Encode(c, tmp[:])
		s.buf = append(s.buf, tmp[:m]...)
		s.byteLen += m
		s.numChars++
		i += n
	}
	s.policy = growable.New(len(s.buf), growable.Exponential())
	return replaced
}
