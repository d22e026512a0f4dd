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

package utf16

import "github.com/thanhtphung/cppware-sub002/internal/growable"

// DefaultCap is the initial capacity (in units) NewSequence uses when
// given a non-positive capacity.
const DefaultCap = 1024

// Sequence is a growable sequence of native-endian UTF-16 code units
// tracking both its unit length and its code-point count.
type Sequence struct {
	buf      []uint16
	unitLen  int
	numChars int
	policy   growable.Policy
}

// NewSequence returns an empty sequence with the given initial
// capacity (in units) and exponential growth.
func NewSequence(capacity int) *Sequence {
	if capacity <= 0 {
		capacity = DefaultCap
	}
	return &Sequence{
		buf:    make([]uint16, capacity),
		policy: growable.New(capacity, growable.Exponential()),
	}
}

// FromRaw adopts an owned buffer as-is. The caller asserts that the
// first nUnits units of s form a valid UTF-16 sequence of nChars code
// points.
func FromRaw(s []uint16, nUnits, nChars int) *Sequence {
	return &Sequence{
		buf:      s,
		unitLen:  nUnits,
		numChars: nChars,
		policy:   growable.New(len(s), growable.Exponential()),
	}
}

// LenUnits returns the number of 16-bit units currently stored.
func (s *Sequence) LenUnits() int { return s.unitLen }

// LenBytes returns the number of bytes currently stored (2x LenUnits).
func (s *Sequence) LenBytes() int { return s.unitLen * 2 }

// LenCodePoints returns the number of code points currently stored.
func (s *Sequence) LenCodePoints() int { return s.numChars }

// Capacity returns the current capacity in units.
func (s *Sequence) Capacity() int { return s.policy.Capacity() }

// SetGrowth changes the growth factor (see package growable).
func (s *Sequence) SetGrowth(newFactor int) bool {
	return s.policy.SetGrowth(newFactor, s.unitLen)
}

// Units returns the stored units. The returned slice aliases the
// sequence's internal buffer and must not be retained past the next
// mutation.
func (s *Sequence) Units() []uint16 { return s.buf[:s.unitLen] }

func (s *Sequence) fastPath() bool { return s.numChars == s.unitLen }

func (s *Sequence) growTo(minUnits int) bool {
	if s.policy.Capacity() >= minUnits {
		return true
	}
	if !s.policy.GrowTo(minUnits) {
		return false
	}
	grown := make([]uint16, s.policy.Capacity())
	copy(grown, s.buf[:s.unitLen])
	s.buf = grown
	return true
}

// Resize changes capacity to exactly newCap units. It fails
// (returning false, unchanged) if newCap cannot hold the current
// payload.
func (s *Sequence) Resize(newCap int) bool {
	if newCap == s.policy.Capacity() {
		return true
	}
	if !s.policy.Resize(newCap, s.unitLen) {
		return false
	}
	grown := make([]uint16, newCap)
	copy(grown, s.buf[:s.unitLen])
	s.buf = grown
	return true
}

// Append encodes and appends one code point.
func (s *Sequence) Append(c uint32) bool {
	var tmp [MaxSeqLength]uint16
	n := Encode(c, tmp[:])
	return s.AppendUnits(tmp[:n], n, 1)
}

// AppendUnits appends nUnits units (nChars code points) assumed
// already valid UTF-16.
func (s *Sequence) AppendUnits(u []uint16, nUnits, nChars int) bool {
	if !s.growTo(s.unitLen + nUnits) {
		return false
	}
	copy(s.buf[s.unitLen:], u[:nUnits])
	s.unitLen += nUnits
	s.numChars += nChars
	return true
}

// Seek returns the unit offset of code point i, walking from whichever
// end of the sequence is closer.
func (s *Sequence) Seek(i int) (offset int, ok bool) {
	if i < 0 || i > s.numChars {
		return 0, false
	}
	if i == s.numChars {
		return s.unitLen, true
	}
	if s.fastPath() {
		return i, true
	}
	if i <= s.numChars/2 {
		off := 0
		for n := 0; n < i; n++ {
			_, size := Decode(s.buf[off:s.unitLen])
			off += size
		}
		return off, true
	}
	off := s.unitLen
	for n := s.numChars; n > i; n-- {
		off--
		if off > 0 {
			u := s.buf[off-1]
			if u >= 0xd800 && u <= 0xdbff {
				off--
			}
		}
	}
	return off, true
}

// Index returns the i-th code point.
func (s *Sequence) Index(i int) (c uint32, ok bool) {
	off, ok := s.Seek(i)
	if !ok || off >= s.unitLen {
		return 0, false
	}
	c, _ = Decode(s.buf[off:s.unitLen])
	return c, true
}

// Truncate drops trailing code points, keeping only the first n.
func (s *Sequence) Truncate(n int) bool {
	off, ok := s.Seek(n)
	if !ok {
		return false
	}
	s.unitLen = off
	s.numChars = n
	return true
}

// Detach gives up the buffer, leaving the sequence empty, and returns
// the units that were stored.
func (s *Sequence) Detach() []uint16 {
	out := s.buf[:s.unitLen]
	s.buf = nil
	s.unitLen = 0
	s.numChars = 0
	s.policy = growable.New(0, growable.Exponential())
	return out
}

// Clone deep-copies the sequence.
func (s *Sequence) Clone() *Sequence {
	cp := make([]uint16, len(s.buf))
	copy(cp, s.buf)
	return &Sequence{buf: cp, unitLen: s.unitLen, numChars: s.numChars, policy: s.policy}
}

// Expand widens the sequence into a freshly allocated code-point
// array.
func (s *Sequence) Expand() []uint32 {
	out := make([]uint32, s.numChars)
	off := 0
	for i := 0; i < s.numChars; i++ {
		c, n := Decode(s.buf[off:s.unitLen])
		out[i] = c
		off += n
	}
	return out
}

// Shrink rebuilds the sequence from a flat code-point array, replacing
// invalid entries with defaultChar. It returns the number of entries
// replaced.
func (s *Sequence) Shrink(src []uint32, defaultChar uint32) int {
	replaced := 0
	s.buf = make([]uint16, 0, len(src))
	s.unitLen = 0
	s.numChars = 0
	var tmp [MaxSeqLength]uint16
	for _, c := range src {
		if !IsValidCodepoint(c) {
			c = defaultChar
			replaced++
		}
		n := Encode(c, tmp[:])
		s.buf = append(s.buf, tmp[:n]...)
		s.unitLen += n
		s.numChars++
	}
	s.policy = growable.New(len(s.buf), growable.Exponential())
	return replaced
}

// ApplyLowToHigh walks code points from first to last. cb returning
// false stops the walk early; the return value reports whether the
// walk completed.
func (s *Sequence) ApplyLowToHigh(cb func(index int, c uint32) bool) bool {
	off := 0
	for i := 0; i < s.numChars; i++ {
		c, n := Decode(s.buf[off:s.unitLen])
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
	offs := make([]int, s.numChars)
	off := 0
	for i := 0; i < s.numChars; i++ {
		offs[i] = off
		_, n := Decode(s.buf[off:s.unitLen])
		off += n
	}
	for i := s.numChars - 1; i >= 0; i-- {
		c, _ := Decode(s.buf[offs[i]:s.unitLen])
		if !cb(i, c) {
			return false
		}
	}
	return true
}

// CountCodePoints walks u and counts valid code points, stopping at
// the first invalid prefix. ok reports whether the entire slice
// decoded cleanly.
func CountCodePoints(u []uint16) (ok bool, count int) {
	off := 0
	for off < len(u) {
		_, n := Decode(u[off:])
		if n == 0 {
			return false, count
		}
		off += n
		count++
	}
	return true, count
}

// IsValidUnits reports whether u is a sequence of valid UTF-16 code
// points, and if not, the unit offset of the first invalid prefix.
func IsValidUnits(u []uint16) (ok bool, offset int) {
	off := 0
	for off < len(u) {
		_, n := Decode(u[off:])
		if n == 0 {
			return false, off
		}
		off += n
	}
	return true, off
}
