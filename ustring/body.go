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

// Package ustring provides a UTF-capable copy-on-write string, Value,
// backed by a reference-counted utf8.Sequence body. Callers never see
// the body directly; every mutating method runs a cow/row guard first.
package ustring

import (
	"sync"
	"sync/atomic"

	"github.com/thanhtphung/cppware-sub002/utf8"
)

// body is a UTF-8 sequence plus an atomic reference count. Multiple
// Values may point at the same body as long as none of them mutate it;
// a mutator clones first whenever the count exceeds one.
type body struct {
	seq  *utf8.Sequence
	refs int32
}

func newBody(capacity int) *body {
	return &body{seq: utf8.NewSequence(capacity), refs: 1}
}

func bodyFromSeq(seq *utf8.Sequence) *body {
	return &body{seq: seq, refs: 1}
}

func (b *body) addRef() { atomic.AddInt32(&b.refs, 1) }

func (b *body) rmRef() { atomic.AddInt32(&b.refs, -1) }

func (b *body) refCount() int32 { return atomic.LoadInt32(&b.refs) }

// emptyOnce and emptyBody back the empty-string singleton: a body
// lazily constructed on first use and shared by every Value built by
// Empty() or by a constructor given empty input. Go has no static-teardown ordering problem
// (the garbage collector reclaims the body once its last reference
// drops), so unlike the reference implementation there is no destructed
// flag to consult -- the singleton simply lives for the process.
var (
	emptyOnce sync.Once
	emptyBody *body
)

func emptyRef() *body {
	emptyOnce.Do(func() {
		emptyBody = newBody(utf8.DefaultCap)
	})
	emptyBody.addRef()
	return emptyBody
}
