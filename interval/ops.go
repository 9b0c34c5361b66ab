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

import "github.com/pkg/errors"

// Intersection returns the interval shared by x and y. If x and y are
// Disjoint, or either is nil, the empty interval is returned.
//
// The lower bound of the result is the greater of the two lower bounds and
// the higher bound the lesser of the two higher bounds. Where both bounds
// have the same value the result is inclusive only if both are.
func Intersection(x, y *Interval) *Interval {
	if x == nil || y == nil || x.relate(y).Disjoint() {
		return Empty()
	}
	k := bounded
	if x.kind == discrete && y.kind == discrete {
		k = discrete
	}
	return &Interval{
		kind:   k,
		lower:  maxLower(x.lower, y.lower),
		higher: minHigher(x.higher, y.higher),
	}
}

// Intersection returns the intersection of iv and o. See Intersection.
func (iv *Interval) Intersection(o *Interval) *Interval { return Intersection(iv, o) }

// Union returns the interval covering both x and y. Union is only defined
// for intervals that overlap or meet without leaving a gap at the meeting
// point; otherwise an ErrNotContiguous is returned. The union of an interval
// with the empty interval is the interval itself.
func Union(x, y *Interval) (*Interval, error) {
	if x == nil || y == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "union with nil interval")
	}
	switch {
	case x.kind == empty:
		return y, nil
	case y.kind == empty:
		return x, nil
	}
	switch r := x.relate(y); r {
	case Precedes, PrecededBy:
		return nil, errors.Wrapf(ErrNotContiguous, "%v %v %v", x, r, y)
	case Meets:
		if !x.higher.inclusive && !y.lower.inclusive {
			return nil, errors.Wrapf(ErrNotContiguous, "%v %v %v", x, r, y)
		}
	case MetBy:
		if !y.higher.inclusive && !x.lower.inclusive {
			return nil, errors.Wrapf(ErrNotContiguous, "%v %v %v", x, r, y)
		}
	}
	return Span(x, y), nil
}

// Span returns the smallest interval covering both x and y, including any gap
// between them. The span of an interval with the empty interval, or with
// nil, is the interval itself.
func Span(x, y *Interval) *Interval {
	switch {
	case x == nil || x.kind == empty:
		if y == nil {
			return Empty()
		}
		return y
	case y == nil || y.kind == empty:
		return x
	}
	k := bounded
	if x.kind == discrete && y.kind == discrete {
		k = discrete
	}
	return &Interval{
		kind:   k,
		lower:  minLower(x.lower, y.lower),
		higher: maxHigher(x.higher, y.higher),
	}
}

// Split partitions iv at p. The lower part ends inclusively at p and the
// higher part starts exclusively at p. For a discrete interval the higher
// part starts at the successor of p. The higher part is empty if p is the
// inclusive higher bound of iv. If iv does not contain p an ErrOutOfRange is
// returned.
func (iv *Interval) Split(p Comparable) (lower, higher *Interval, err error) {
	if !iv.Contains(p) {
		return nil, nil, errors.Wrapf(ErrOutOfRange, "split %v at %v", iv, p)
	}
	if iv.kind == discrete {
		if d, ok := p.(Discrete); ok {
			lower = &Interval{kind: discrete, lower: iv.lower, higher: Closed(p)}
			if p.Compare(iv.higher.value) == 0 {
				return lower, EmptyOf(iv.zero), nil
			}
			return lower, &Interval{kind: discrete, lower: Closed(d.Next()), higher: iv.higher}, nil
		}
	}
	lower = &Interval{kind: bounded, lower: iv.lower, higher: Closed(p)}
	if !iv.higher.IsUnbounded() && p.Compare(iv.higher.value) == 0 {
		return lower, EmptyOf(iv.zero), nil
	}
	higher = &Interval{kind: bounded, lower: Open(p), higher: iv.higher}
	return lower, higher, nil
}
