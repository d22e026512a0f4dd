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

import "testing"

func TestIteratorWalksSurrogatePairAsOneStep(t *testing.T) {
	s := NewSequence(0)
	s.Append('a')
	s.Append(0x1abcd)
	s.Append('z')

	it := s.NewIterator()
	var got []uint32
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, c)
	}
	want := []uint32{'a', 0x1abcd, 'z'}
	if len(got) != len(want) {
		t.Fatalf("walked %d code points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("code point %d = 0x%x, want 0x%x", i, got[i], want[i])
		}
	}
}

func TestPeekDoesNotMove(t *testing.T) {
	s := NewSequence(0)
	s.Append('a')
	s.Append('b')
	it := s.NewIterator()
	it.Next()
	if c, ok := it.PeekRight(); !ok || c != 'b' {
		t.Fatalf("PeekRight = (%c, %v), want (b, true)", c, ok)
	}
	c, ok := it.Next()
	if !ok || c != 'b' {
		t.Fatalf("Next after PeekRight = (%c, %v), want (b, true)", c, ok)
	}
}
