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

// Package utfseq declares the contract shared by every UTF-x sequence
// body (the teacher's utf8 package holds UTF-8 bytes, the sibling
// utf16 package holds UTF-16 units). It lets conversion code treat
// either body uniformly without caring which encoding backs it.
package utfseq

// Body is implemented by the adapters that utf8.Sequence.AsBody and
// utf16.Sequence.AsBody return.
type Body interface {
	// LenCodePoints returns the number of code points held.
	LenCodePoints() int
	// LenBytes returns the size in bytes of the encoded form.
	LenBytes() int
	// Expand widens the sequence into a flat code-point array.
	Expand() []uint32
	// Shrink rebuilds the body from a flat code-point array, replacing
	// any invalid entries with defaultChar and returning how many were
	// replaced.
	Shrink(src []uint32, defaultChar uint32) int
	// ApplyLowToHigh walks code points from the first to the last,
	// stopping early if cb returns false. It reports whether the walk
	// ran to completion.
	ApplyLowToHigh(cb func(index int, c uint32) bool) bool
	// ApplyHighToLow walks code points from the last to the first,
	// stopping early if cb returns false. It reports whether the walk
	// ran to completion.
	ApplyHighToLow(cb func(index int, c uint32) bool) bool
	// Clone deep-copies the body, preserving its encoding.
	Clone() Body
}
