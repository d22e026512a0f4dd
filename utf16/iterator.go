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

// Iterator walks the code points of a Sequence without expanding it to
// a 32-bit array. It borrows the sequence the same way utf8.Iterator
// does; use Sequence.NewOwnedIterator for a snapshot.
type Iterator struct {
	seq    *Sequence
	offset int
	atEnd  bool
	before bool
}

// NewIterator returns an iterator borrowing s, positioned before the
// first code point.
func (s *Sequence) NewIterator() *Iterator {
	return &Iterator{seq: s, before: true}
}

// NewOwnedIterator returns an iterator over a private deep copy of s.
func (s *Sequence) NewOwnedIterator() *Iterator {
	return &Iterator{seq: s.Clone(), before: true}
}

// Next advances and returns the next code point, or ok=false at the
// end of the sequence.
func (it *Iterator) Next() (c uint32, ok bool) {
	if it.before {
		if it.seq.numChars == 0 {
			it.atEnd = true
			return 0, false
		}
		it.offset = 0
		it.before = false
	} else {
		if it.atEnd {
			return 0, false
		}
		_, n := Decode(it.seq.buf[it.offset:it.seq.unitLen])
		it.offset += n
	}
	if it.offset >= it.seq.unitLen {
		it.atEnd = true
		return 0, false
	}
	c, _ = Decode(it.seq.buf[it.offset:it.seq.unitLen])
	return c, true
}

// Prev rewinds and returns the previous code point, or ok=false before
// the start of the sequence.
func (it *Iterator) Prev() (c uint32, ok bool) {
	if it.before {
		return 0, false
	}
	if it.atEnd {
		if it.seq.numChars == 0 {
			it.before = true
			return 0, false
		}
		off, _ := it.seq.Seek(it.seq.numChars - 1)
		it.offset = off
		it.atEnd = false
		c, _ = Decode(it.seq.buf[it.offset:it.seq.unitLen])
		return c, true
	}
	if it.offset == 0 {
		it.before = true
		return 0, false
	}
	it.offset--
	if it.offset > 0 {
		u := it.seq.buf[it.offset-1]
		if u >= 0xd800 && u <= 0xdbff {
			it.offset--
		}
	}
	c, _ = Decode(it.seq.buf[it.offset:it.seq.unitLen])
	return c, true
}

// PeekLeft returns the code point before the iterator's current
// position without moving it.
func (it *Iterator) PeekLeft() (c uint32, ok bool) {
	if it.before || it.offset == 0 {
		return 0, false
	}
	off := it.offset - 1
	if off > 0 {
		u := it.seq.buf[off-1]
		if u >= 0xd800 && u <= 0xdbff {
			off--
		}
	}
	c, _ = Decode(it.seq.buf[off:it.seq.unitLen])
	return c, true
}

// PeekRight returns the code point after the iterator's current
// position without moving it.
func (it *Iterator) PeekRight() (c uint32, ok bool) {
	if it.atEnd {
		return 0, false
	}
	off := it.offset
	if !it.before {
		_, n := Decode(it.seq.buf[it.offset:it.seq.unitLen])
		off += n
	}
	if off >= it.seq.unitLen {
		return 0, false
	}
	c, _ = Decode(it.seq.buf[off:it.seq.unitLen])
	return c, true
}
