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

// Package growable implements the capacity/growth-factor contract
// shared by every sequence body (UTF-8 bytes, UTF-16 units): a
// capacity in storage units plus a growth factor that is either fixed,
// linear, or exponential.
package growable

import "golang.org/x/exp/constraints"

// Growth factor conventions: zero means the buffer never grows;
// positive k means grow by k units at a time (linear); negative means
// double the capacity until it is large enough (exponential).
const (
	Fixed = 0
)

// Exponential returns a negative factor; any positive k is a linear
// factor.
func Exponential() int { return -1 }

// Policy tracks capacity in storage units and the growth factor that
// governs GrowTo. It does not own a buffer; callers call Resize/GrowTo
// first and then resize their own backing slice to the new capacity,
// keeping the policy and the slice length in sync.
type Policy struct {
	capacity int
	factor   int
}

// New returns a policy with the given initial capacity and growth
// factor.
func New(capacity, factor int) Policy {
	return Policy{capacity: capacity, factor: factor}
}

// Capacity returns the current capacity in storage units.
func (p Policy) Capacity() int { return p.capacity }

// Factor returns the current growth factor.
func (p Policy) Factor() int { return p.factor }

// SetGrowth changes the growth factor. Moving to linear or exponential
// always succeeds. Moving to Fixed only succeeds when the current
// capacity already matches payload, i.e. no pending growth is needed
// to hold what's already stored -- switching to fixed must not strand
// data the policy can no longer grow to accommodate.
func (p *Policy) SetGrowth(newFactor int, payload int) bool {
	if newFactor == Fixed && p.capacity < payload {
		return false
	}
	p.factor = newFactor
	return true
}

// Resize reports whether newCap can hold payload storage units. It
// never itself touches a backing buffer; callers perform the actual
// slice resize only after Resize returns true, and must also skip the
// work (but still report success) when newCap equals the current
// capacity.
func (p *Policy) Resize(newCap, payload int) bool {
	if newCap < payload {
		return false
	}
	p.capacity = newCap
	return true
}

// GrowTo ensures the policy's capacity is at least minCap, choosing
// the smallest permitted capacity according to the growth factor. It
// reports false (capacity unchanged) when the policy is Fixed and
// minCap exceeds the current capacity.
func (p *Policy) GrowTo(minCap int) bool {
	if p.capacity >= minCap {
		return true
	}
	switch {
	case p.factor == Fixed:
		return false
	case p.factor > 0:
		target := nextLinear(p.capacity, minCap, p.factor)
		p.capacity = target
		return true
	default:
		target := nextExponential(p.capacity, minCap)
		p.capacity = target
		return true
	}
}

func nextLinear[T constraints.Integer](cur, min, step T) T {
	target := cur
	for target < min {
		target += step
	}
	return target
}

func nextExponential[T constraints.Integer](cur, min T) T {
	target := cur
	if target <= 0 {
		target = 1
	}
	for target < min {
		target *= 2
	}
	return target
}
