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
	"fmt"
	"testing"

	"github.com/thanhtphung/cppware-sub002/bom"
	"github.com/thanhtphung/cppware-sub002/quoted"
	"github.com/thanhtphung/cppware-sub002/utf8"
)

func TestEmpty(t *testing.T) {
	v := Empty()
	if !v.IsEmpty() || v.LenCodePoints() != 0 || v.LenBytes() != 0 {
		t.Fatalf("Empty() is not empty: %+v", v)
	}
}

func TestFromBytesAndAsBytes(t *testing.T) {
	v := FromString("hello")
	if got := string(v.AsBytes()); got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
	if v.LenCodePoints() != 5 || v.LenBytes() != 5 {
		t.Fatalf("wrong lengths: %d %d", v.LenCodePoints(), v.LenBytes())
	}
	if !v.IsASCII() {
		t.Fatalf("expected ASCII")
	}
}

// TestHashStability checks invariant 5 and scenario (h).
func TestHashStability(t *testing.T) {
	v := FromString("aRandomStringUsedForHash!!!")
	if got := v.Hash(); got != 93520317 {
		t.Errorf("Hash() = %d, want 93520317", got)
	}
	if got := HashP(v, 131); got != 72 {
		t.Errorf("HashP(_, 131) = %d, want 72", got)
	}

	a := FromString("equal content")
	b := FromString("equal content")
	if a.Hash() != b.Hash() {
		t.Errorf("equal strings hashed differently: %d vs %d", a.Hash(), b.Hash())
	}
}

// TestCOWSharesThenDiverges checks invariant 6: cloning shares a body
// until one side mutates, after which they diverge.
func TestCOWSharesThenDiverges(t *testing.T) {
	s := FromString("abc")
	tee := s.Clone()
	if s.b != tee.b {
		t.Fatalf("clone does not share body before mutation")
	}
	tee.AppendByte('d')
	if s.b == tee.b {
		t.Fatalf("mutation did not clone away from shared body")
	}
	if string(s.AsBytes()) != "abc" {
		t.Errorf("original mutated: got %q", s.AsBytes())
	}
	if string(tee.AsBytes()) != "abcd" {
		t.Errorf("clone not updated: got %q", tee.AsBytes())
	}
}

// TestEnquoteDequoteRoundTrip is scenario (a).
func TestEnquoteDequoteRoundTrip(t *testing.T) {
	s := FromString(`abc'"123`)
	enq := s.Enquote(quoted.Double, true)
	want := `"abc\'\"123"`
	if got := string(enq.AsBytes()); got != want {
		t.Fatalf("Enquote = %q, want %q", got, want)
	}
	deq := enq
	deq.Dequote(true)
	if got := string(deq.AsBytes()); got != `abc'"123` {
		t.Fatalf("Dequote = %q, want %q", got, `abc'"123`)
	}
}

// TestDequoteUniversalNames is scenario (d).
func TestDequoteUniversalNames(t *testing.T) {
	cases := []struct {
		in   string
		want []byte
	}{
		{"\\u0000", []byte{0}},
		{"\\ud7ff", encodeRune(0xd7ff)},
		{"\\ue000", encodeRune(0xe000)},
		{"\\u0010ffff", encodeRune(0x10ffff)},
		{"\\ufedcba90", []byte("?")},
		{"\\uabcx", []byte("?abcx")},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			v := FromString(c.in)
			v.Dequote(true)
			if string(v.AsBytes()) != string(c.want) {
				t.Errorf("Dequote(%q) = %x, want %x", c.in, v.AsBytes(), c.want)
			}
		})
	}
}

func encodeRune(c uint32) []byte {
	v := RepeatRune(1, rune(c))
	return append([]byte(nil), v.AsBytes()...)
}

// TestOctalHexEscapes is scenario (e).
func TestOctalHexEscapes(t *testing.T) {
	cases := []struct {
		in   string
		want []byte
	}{
		{`\1\77\177`, []byte{0x01, 0x3f, 0x7f}},
		{`\377`, []byte{0xff}},
		{`\x1\xf\xF\x22\x7f\x7F`, []byte{0x01, 0x0f, 0x0f, 0x22, 0x7f, 0x7f}},
		{`\xff\xFF`, []byte{0xff, 0xff}},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			v := FromString(c.in)
			v.Dequote(true)
			if string(v.AsBytes()) != string(c.want) {
				t.Errorf("Dequote(%q) = %x, want %x", c.in, v.AsBytes(), c.want)
			}
		})
	}
}

// TestASCIIDowncast is scenario (f).
func TestASCIIDowncast(t *testing.T) {
	codePoints := make([]uint32, 16)
	nonASCII := 0
	for i := range codePoints {
		if (i%2 == 0 || i == 15) && nonASCII < 9 {
			codePoints[i] = 0x100 + uint32(i)
			nonASCII++
		} else {
			codePoints[i] = uint32('a' + i%26)
		}
	}
	seq := utf8.NewSequence(utf8.DefaultCap)
	seq.Shrink(codePoints, utf8.DefaultChar)
	v := FromUTF8Seq(seq)
	if v.LenCodePoints() != 16 {
		t.Fatalf("setup: want 16 code points, got %d", v.LenCodePoints())
	}
	out, replacements := v.AsASCII8('x')
	if len(out) != 16 {
		t.Fatalf("AsASCII8 returned %d bytes, want 16", len(out))
	}
	if replacements != nonASCII {
		t.Fatalf("replacements = %d, want %d", replacements, nonASCII)
	}
}

// TestFormBox is scenario (g). The second case's input is widened from
// the spec's literal "abc123xyz" to "abc123xyz123": tracing the boxing
// rule against the shorter string cannot produce the spec's stated
// output (it has three more trailing characters than a 9-character input
// can supply), so the literal test input in the distilled spec appears
// truncated; this reproduces the algorithm faithfully against the
// reference implementation instead.
func TestFormBox(t *testing.T) {
	cases := []struct {
		in                      string
		indent0, indent, width int
		want                    string
	}{
		{"abc123xy", 0, 0, 3, "abc\n123\nxy"},
		{"abc123xyz123", 1, 1, 4, " abc1\n 23xy\n z123"},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			v := FromString(c.in)
			got := v.FormBox(c.indent0, c.indent, c.width)
			if got != c.want {
				t.Errorf("FormBox(%q, %d, %d, %d) = %q, want %q", c.in, c.indent0, c.indent, c.width, got, c.want)
			}
		})
	}
}

func TestFindRFind(t *testing.T) {
	v := FromString("xxx-key-xxx")
	key := FromString("key")
	if got := v.Find(key, 0); got != 4 {
		t.Errorf("Find = %d, want 4", got)
	}
	if got := v.RFind(key, InvalidIndex); got != 4 {
		t.Errorf("RFind = %d, want 4", got)
	}
	if !v.Contains(key, false) {
		t.Errorf("Contains(false) = false, want true")
	}
	missing := FromString("nope")
	if got := v.Find(missing, 0); got != InvalidIndex {
		t.Errorf("Find(missing) = %d, want InvalidIndex", got)
	}
}

func TestTrimSpaceIdempotentAndShortening(t *testing.T) {
	v := FromString("   padded text   ")
	before := v.LenCodePoints()
	v.TrimSpace(true, true)
	after := v.LenCodePoints()
	if after > before {
		t.Fatalf("TrimSpace grew the string: %d -> %d", before, after)
	}
	if string(v.AsBytes()) != "padded text" {
		t.Fatalf("TrimSpace = %q", v.AsBytes())
	}
	again := v
	again.TrimSpace(true, true)
	if string(again.AsBytes()) != string(v.AsBytes()) {
		t.Fatalf("TrimSpace not idempotent: %q vs %q", again.AsBytes(), v.AsBytes())
	}
}

func TestTruncate(t *testing.T) {
	v := FromString("abcdef")
	if !v.Truncate(3) {
		t.Fatalf("Truncate(3) reported no change")
	}
	if string(v.AsBytes()) != "abc" {
		t.Fatalf("got %q, want abc", v.AsBytes())
	}
	if v.Truncate(10) {
		t.Fatalf("Truncate(10) reported change when none should occur")
	}
}

func TestReplace(t *testing.T) {
	v := FromString("banana")
	v.Replace('a', 'o')
	if string(v.AsBytes()) != "bonono" {
		t.Fatalf("got %q, want bonono", v.AsBytes())
	}
}

func TestStartsEndsWith(t *testing.T) {
	v := FromString("HelloWorld")
	if !v.StartsWith(FromString("hello"), true) {
		t.Errorf("case-insensitive StartsWith failed")
	}
	if v.StartsWith(FromString("hello"), false) {
		t.Errorf("case-sensitive StartsWith should fail")
	}
	if !v.EndsWith(FromString("WORLD"), true) {
		t.Errorf("case-insensitive EndsWith failed")
	}
}

func TestFormUTFxRoundTrip(t *testing.T) {
	v := FromString("abc«ࠀ\U0001abcd")
	for _, form := range []bom.Form{bom.UTF8, bom.UTF16Native, bom.UTF16Swapped, bom.UTF32Native, bom.UTF32Swapped} {
		bytes := v.FormUTFx(form, true)
		detected := bom.Detect(bytes)
		if detected != form {
			t.Fatalf("form %v: BOM detected as %v", form, detected)
		}
		out := Empty()
		replaced := out.ResetX(detected, bytes[detected.ByteSize():])
		if replaced != 0 {
			t.Fatalf("form %v: %d replacements, want 0", form, replaced)
		}
		if !out.Equal(v) {
			t.Fatalf("form %v: round trip mismatch: got %q, want %q", form, out.AsBytes(), v.AsBytes())
		}
	}
}

func TestWidenRoundTrip(t *testing.T) {
	v := FromString("abc\U0001abcd")
	w := v.Widen()
	back := FromWideString(w)
	if !back.Equal(v) {
		t.Fatalf("widen round trip mismatch: got %q, want %q", back.AsBytes(), v.AsBytes())
	}
}
