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

package utfseq_test

import (
	"testing"

	"github.com/thanhtphung/cppware-sub002/utf16"
	"github.com/thanhtphung/cppware-sub002/utf8"
	"github.com/thanhtphung/cppware-sub002/utfseq"
)

// sameCodePoints walks both bodies with ApplyLowToHigh and compares.
func sameCodePoints(t *testing.T, a, b utfseq.Body) {
	t.Helper()
	var ca, cb []uint32
	a.ApplyLowToHigh(func(_ int, c uint32) bool { ca = append(ca, c); return true })
	b.ApplyLowToHigh(func(_ int, c uint32) bool { cb = append(cb, c); return true })
	if len(ca) != len(cb) {
		t.Fatalf("code point counts differ: %d vs %d", len(ca), len(cb))
	}
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("code point %d differs: 0x%x vs 0x%x", i, ca[i], cb[i])
		}
	}
}

func TestUTF8AndUTF16BodiesAgreeAfterConversion(t *testing.T) {
	s8 := utf8.NewSequence(0)
	s8.AppendASCII([]byte("ab"))
	s8.Append(0x1abcd)

	var body8 utfseq.Body = s8.AsBody()
	codePoints := body8.Expand()

	s16 := utf16.NewSequence(0)
	s16.Shrink(codePoints, utf8.DefaultChar)
	var body16 utfseq.Body = s16.AsBody()

	sameCodePoints(t, body8, body16)
}

func TestBodyCloneIsIndependent(t *testing.T) {
	s := utf8.NewSequence(0)
	s.AppendASCII([]byte("abc"))
	var body utfseq.Body = s.AsBody()

	clone := body.Clone()
	s.Append('d')

	if clone.LenCodePoints() != 3 {
		t.Fatalf("clone saw the mutation: %d code points, want 3", clone.LenCodePoints())
	}
}
