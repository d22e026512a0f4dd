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

package codec

import (
	"fmt"
	"testing"
)

func TestIsValidCodepoint(t *testing.T) {
	cases := []struct {
		c    uint32
		want bool
	}{
		{0, true},
		{0xd7ff, true},
		{0xd800, false},
		{0xdfff, false},
		{0xe000, true},
		{0x10ffff, true},
		{0x110000, false},
	}
	for _, c := range cases {
		if got := IsValidCodepoint(c.c); got != c.want {
			t.Errorf("IsValidCodepoint(0x%x) = %v, want %v", c.c, got, c.want)
		}
	}
}

func TestUTF8EncodeDecodeRoundTrip(t *testing.T) {
	cases := []uint32{0, 'a', 0x7f, 0x80, 0x7ff, 0x800, 0xffff, 0x10000, 0x10ffff}
	for _, c := range cases {
		t.Run(fmt.Sprintf("U+%X", c), func(t *testing.T) {
			var buf [MaxSeqLength]byte
			n := EncodeUTF8(c, buf[:])
			if n == 0 {
				t.Fatalf("EncodeUTF8(0x%x) = 0", c)
			}
			got, consumed := DecodeUTF8(buf[:n])
			if consumed != n || got != c {
				t.Fatalf("round trip: got (0x%x, %d), want (0x%x, %d)", got, consumed, c, n)
			}
		})
	}
}

func TestDecodeUTF8RejectsOverlong(t *testing.T) {
	overlongSlash := []byte{0xc0, 0xaf} // two-byte encoding of '/'
	if _, n := DecodeUTF8(overlongSlash); n != 0 {
		t.Errorf("DecodeUTF8(overlong) consumed %d bytes, want 0", n)
	}
}

func TestDecodeUTF8RejectsSurrogate(t *testing.T) {
	// three-byte encoding of 0xd800
	surrogate := []byte{0xed, 0xa0, 0x80}
	if _, n := DecodeUTF8(surrogate); n != 0 {
		t.Errorf("DecodeUTF8(surrogate) consumed %d bytes, want 0", n)
	}
}

func TestUTF16SurrogatePairRoundTrip(t *testing.T) {
	c := uint32(0x1abcd)
	var buf [2]uint16
	n := EncodeUTF16(c, buf[:])
	if n != 2 {
		t.Fatalf("EncodeUTF16(0x%x) wrote %d units, want 2", c, n)
	}
	got, consumed := DecodeUTF16(buf[:n])
	if consumed != 2 || got != c {
		t.Fatalf("round trip: got (0x%x, %d), want (0x%x, 2)", got, consumed, c)
	}
}

func TestDecodeUTF16RejectsLoneLowSurrogate(t *testing.T) {
	if _, n := DecodeUTF16([]uint16{0xdc00}); n != 0 {
		t.Errorf("DecodeUTF16(lone low surrogate) consumed %d units, want 0", n)
	}
}

func TestBswap(t *testing.T) {
	if got := Bswap16(0x1234); got != 0x3412 {
		t.Errorf("Bswap16 = %04x, want 3412", got)
	}
	if got := Bswap32(0x12345678); got != 0x78563412 {
		t.Errorf("Bswap32 = %08x, want 78563412", got)
	}
	if got := Bswap64(0x0123456789abcdef); got != 0xefcdab8967452301 {
		t.Errorf("Bswap64 = %016x, want efcdab8967452301", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(0x41); got != 0x41 {
		t.Errorf("Clamp(valid) = 0x%x, want 0x41", got)
	}
	if got := Clamp(0xd800); got != DefaultChar {
		t.Errorf("Clamp(surrogate) = 0x%x, want DefaultChar", got)
	}
}
