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

package bom

import (
	"fmt"
	"testing"
)

func TestEncodeDetectRoundTrip(t *testing.T) {
	forms := []Form{UTF8, UTF16Native, UTF16Swapped, UTF32Native, UTF32Swapped}
	for _, f := range forms {
		t.Run(f.String(), func(t *testing.T) {
			var buf [MaxSeqLength]byte
			n := f.Encode(buf[:])
			if n != f.ByteSize() {
				t.Fatalf("Encode wrote %d bytes, ByteSize reports %d", n, f.ByteSize())
			}
			if got := Detect(buf[:n]); got != f {
				t.Fatalf("Detect(Encode(%v)) = %v", f, got)
			}
		})
	}
}

func TestDetectNone(t *testing.T) {
	if got := Detect([]byte("plain ascii text")); got != None {
		t.Fatalf("Detect(plain) = %v, want None", got)
	}
	if got := Detect(nil); got != None {
		t.Fatalf("Detect(nil) = %v, want None", got)
	}
}

// TestDetectPrefersUTF32OverUTF16 exercises the ordering note in
// Detect's doc comment: a little-endian UTF-16 BOM is itself a prefix
// of the little-endian UTF-32 BOM, so the longer match must win.
func TestDetectPrefersUTF32OverUTF16(t *testing.T) {
	le32 := []byte{0xff, 0xfe, 0x00, 0x00, 'h', 'i'}
	if got := Detect(le32); got != UTF32Native && got != UTF32Swapped {
		t.Fatalf("Detect(le32 bom) = %v, want a UTF-32 form", got)
	}

	le16 := []byte{0xff, 0xfe, 'h', 0}
	if got := Detect(le16); got != UTF16Native && got != UTF16Swapped {
		t.Fatalf("Detect(le16 bom) = %v, want a UTF-16 form", got)
	}
}

func TestFormString(t *testing.T) {
	for _, f := range []Form{None, UTF8, UTF16Native, UTF16Swapped, UTF32Native, UTF32Swapped} {
		if f.String() == "" {
			t.Errorf("Form(%d).String() is empty", f)
		}
	}
	if got := Form(99).String(); got != "unknown" {
		t.Errorf("Form(99).String() = %q, want unknown", got)
	}
}

func ExampleForm_String() {
	fmt.Println(UTF8)
	// Output: utf-8
}
