// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package interval

// A Bound is one end of an Interval. It is either a concrete value that is
// inclusive or exclusive, or unbounded. The zero Bound is unbounded.
//
// A Bound does not know which end of an interval it describes; an unbounded
// lower end is -∞ and an unbounded higher end is +∞.
type Bound struct {
	value     Comparable
	inclusive bool
}

// Closed returns an inclusive Bound at v. A nil v gives an unbounded Bound.
func Closed(v Comparable) Bound {
	if v == nil {
		return Bound{}
	}
	return Bound{value: v, inclusive: true}
}

// Open returns an exclusive Bound at v. A nil v gives an unbounded Bound.
func Open(v Comparable) Bound { return Bound{value: v} }

// Unbounded returns a Bound that is satisfied by every value.
func Unbounded() Bound { return Bound{} }

// Value returns the value of the Bound, or nil if b is unbounded.
func (b Bound) Value() Comparable { return b.value }

// Inclusive returns whether b includes its value. Unbounded Bounds are
// never inclusive.
func (b Bound) Inclusive() bool { return b.inclusive }

// IsUnbounded returns whether b has no value.
func (b Bound) IsUnbounded() bool { return b.value == nil }

type side int8

const (
	low  side = -1
	high side = 1
)

// compareEnds compares the values of two bounds, each taken as the given side
// of an interval. Inclusivity is not considered.
func compareEnds(a Bound, as side, b Bound, bs side) int {
	switch au, bu := a.IsUnbounded(), b.IsUnbounded(); {
	case au && bu:
		return compare(as, bs)
	case au:
		return int(as)
	case bu:
		return -int(bs)
	}
	return sign(a.value.Compare(b.value))
}

// CompareLower returns the sort order of two lower bounds. An unbounded lower
// bound sorts first, and at an equal value an inclusive bound sorts before an
// exclusive one.
func CompareLower(a, b Bound) int {
	if c := compareEnds(a, low, b, low); c != 0 || a.IsUnbounded() {
		return c
	}
	switch {
	case a.inclusive == b.inclusive:
		return 0
	case a.inclusive:
		return -1
	}
	return 1
}

// CompareHigher returns the sort order of two higher bounds. An unbounded
// higher bound sorts last, and at an equal value an exclusive bound sorts
// before an inclusive one.
func CompareHigher(a, b Bound) int {
	if c := compareEnds(a, high, b, high); c != 0 || a.IsUnbounded() {
		return c
	}
	switch {
	case a.inclusive == b.inclusive:
		return 0
	case a.inclusive:
		return 1
	}
	return -1
}

// AtOrAbove returns whether the higher bound h is at or above p by value.
func AtOrAbove(h Bound, p Comparable) bool {
	return h.IsUnbounded() || h.value.Compare(p) >= 0
}

// AtOrBelow returns whether the lower bound l is at or below p by value.
func AtOrBelow(l Bound, p Comparable) bool {
	return l.IsUnbounded() || l.value.Compare(p) <= 0
}

// HighBeforeLow returns whether the higher bound h is strictly below the
// lower bound l by value.
func HighBeforeLow(h, l Bound) bool { return compareEnds(h, high, l, low) < 0 }

// LowAtOrBelowHigh returns whether the lower bound l is at or below the
// higher bound h by value.
func LowAtOrBelowHigh(l, h Bound) bool { return compareEnds(l, low, h, high) <= 0 }

func maxLower(a, b Bound) Bound {
	if CompareLower(a, b) >= 0 {
		return a
	}
	return b
}

func minLower(a, b Bound) Bound {
	if CompareLower(a, b) <= 0 {
		return a
	}
	return b
}

func maxHigher(a, b Bound) Bound {
	if CompareHigher(a, b) >= 0 {
		return a
	}
	return b
}

func minHigher(a, b Bound) Bound {
	if CompareHigher(a, b) <= 0 {
		return a
	}
	return b
}
