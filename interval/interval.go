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

// Package interval implements an algebra over intervals of ordered values:
// bounded, empty and discrete intervals, point position, and classification
// of the relationship between two intervals according to Allen's interval
// algebra.
package interval

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is the kind of error returned when an operation is
// given an argument it can not act on. Errors of this kind satisfy
// errors.Is(err, ErrInvalidArgument).
var ErrInvalidArgument = errors.New("interval: invalid argument")

// ErrNilReference is returned by CompareTo when it is passed a nil Interval.
var ErrNilReference = errors.New("interval: nil reference")

var (
	// ErrInvertedRange is returned if an Interval is constructed with its
	// higher value less than its lower value.
	ErrInvertedRange error = argError("inverted range")

	// ErrNotDiscrete is returned when the values of a non-discrete interval
	// are enumerated.
	ErrNotDiscrete error = argError("not discrete")

	// ErrNotContiguous is returned when the union of two intervals would
	// span a gap.
	ErrNotContiguous error = argError("intervals are not contiguous")

	// ErrOutOfRange is returned when a point outside an interval is used
	// to split it.
	ErrOutOfRange error = argError("point out of range")
)

// argError is an ErrInvalidArgument with a more specific description.
type argError string

func (e argError) Error() string        { return "interval: " + string(e) }
func (e argError) Is(target error) bool { return target == ErrInvalidArgument }

type kind uint8

const (
	bounded kind = iota
	empty
	discrete
)

// An Interval is an immutable interval over Comparable values. It is one of
// a bounded interval, the empty interval, or a discrete interval whose values
// can be enumerated.
type Interval struct {
	kind          kind
	lower, higher Bound

	// zero is used to format the empty interval.
	zero Comparable
}

// New returns a bounded interval from lower to higher. If both bounds have
// values and higher is less than lower, an ErrInvertedRange is returned.
func New(lower, higher Bound) (*Interval, error) {
	err := validate(lower, higher)
	if err != nil {
		return nil, err
	}
	return &Interval{kind: bounded, lower: lower, higher: higher}, nil
}

// MustNew is like New but panics if the bounds are inverted.
func MustNew(lower, higher Bound) *Interval {
	iv, err := New(lower, higher)
	if err != nil {
		panic(err)
	}
	return iv
}

// NewHalfOpen returns the interval [lo,hi).
func NewHalfOpen(lo, hi Comparable) (*Interval, error) { return New(Closed(lo), Open(hi)) }

// NewClosed returns the interval [lo,hi].
func NewClosed(lo, hi Comparable) (*Interval, error) { return New(Closed(lo), Closed(hi)) }

// NewDiscrete returns the discrete interval [lo,hi]. Both bounds must have
// values. Whether the value type can be enumerated is only checked when the
// interval's values are iterated.
func NewDiscrete(lo, hi Comparable) (*Interval, error) {
	if lo == nil || hi == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "discrete interval requires two bounds")
	}
	err := validate(Closed(lo), Closed(hi))
	if err != nil {
		return nil, err
	}
	return &Interval{kind: discrete, lower: Closed(lo), higher: Closed(hi)}, nil
}

// Empty returns the empty interval. It formats as "(0,0)".
func Empty() *Interval { return &Interval{kind: empty} }

// EmptyOf returns the empty interval of the value type of zero, formatted
// using zero. If zero formats as the empty string, "0" is used so that the
// result is not read back as "(,)".
func EmptyOf(zero Comparable) *Interval { return &Interval{kind: empty, zero: zero} }

func validate(lower, higher Bound) error {
	if lower.IsUnbounded() || higher.IsUnbounded() {
		return nil
	}
	if higher.value.Compare(lower.value) < 0 {
		return errors.Wrapf(ErrInvertedRange, "lower %v higher %v", lower.value, higher.value)
	}
	return nil
}

// Lower returns the lower bound of iv. The returned boolean is false if iv is
// empty.
func (iv *Interval) Lower() (Bound, bool) {
	if iv.kind == empty {
		return Bound{}, false
	}
	return iv.lower, true
}

// Higher returns the higher bound of iv. The returned boolean is false if iv
// is empty.
func (iv *Interval) Higher() (Bound, bool) {
	if iv.kind == empty {
		return Bound{}, false
	}
	return iv.higher, true
}

// IsEmpty returns whether iv is the empty interval.
func (iv *Interval) IsEmpty() bool { return iv.kind == empty }

// IsDiscrete returns whether iv is a discrete interval.
func (iv *Interval) IsDiscrete() bool { return iv.kind == discrete }

// Contains returns whether p lies within iv, taking the inclusivity of each
// bound into account. A nil p is never contained.
func (iv *Interval) Contains(p Comparable) bool {
	if p == nil || iv.kind == empty {
		return false
	}
	if !iv.lower.IsUnbounded() {
		c := p.Compare(iv.lower.value)
		if c < 0 || (c == 0 && !iv.lower.inclusive) {
			return false
		}
	}
	if !iv.higher.IsUnbounded() {
		c := p.Compare(iv.higher.value)
		if c > 0 || (c == 0 && !iv.higher.inclusive) {
			return false
		}
	}
	return true
}

// Compare returns the sort order of iv relative to o. Intervals are ordered by
// lower bound and then by higher bound, as described for CompareLower and
// CompareHigher. The empty interval sorts before all others.
//
// Compare panics if o is nil.
func (iv *Interval) Compare(o *Interval) int {
	switch ie, oe := iv.kind == empty, o.kind == empty; {
	case ie && oe:
		return 0
	case ie:
		return -1
	case oe:
		return 1
	}
	if c := CompareLower(iv.lower, o.lower); c != 0 {
		return c
	}
	return CompareHigher(iv.higher, o.higher)
}

// CompareTo is the checked form of Compare. It returns ErrNilReference if o
// is nil.
func (iv *Interval) CompareTo(o *Interval) (int, error) {
	if o == nil {
		return 0, errors.WithStack(ErrNilReference)
	}
	return iv.Compare(o), nil
}

// Equal returns whether iv and o have identical bounds. All empty intervals
// are equal.
func (iv *Interval) Equal(o *Interval) bool { return o != nil && iv.Compare(o) == 0 }

// String returns the textual form of iv, for example "[0,10)", "(,0]" or
// "(,)".
func (iv *Interval) String() string {
	if iv.kind == empty {
		z := "0"
		if iv.zero != nil {
			if t := fmt.Sprint(iv.zero); t != "" {
				z = t
			}
		}
		return "(" + z + "," + z + ")"
	}
	var b strings.Builder
	if iv.lower.inclusive {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	if !iv.lower.IsUnbounded() {
		fmt.Fprint(&b, iv.lower.value)
	}
	b.WriteByte(',')
	if !iv.higher.IsUnbounded() {
		fmt.Fprint(&b, iv.higher.value)
	}
	if iv.higher.inclusive {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}
