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

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// A Comparable is a type that describes the ends of an Interval.
type Comparable interface {
	// Compare returns a value indicating the sort order relationship between the
	// receiver and the parameter.
	//
	// Given c = a.Compare(b):
	//  c < 0 if a < b;
	//  c == 0 if a == b; and
	//  c > 0 if a > b.
	//
	Compare(Comparable) int
}

// A Discrete is a Comparable whose values can be enumerated. Next returns the
// smallest value greater than the receiver.
type Discrete interface {
	Comparable
	Next() Comparable
}

// An Int is an int type satisfying the Discrete interface.
type Int int

// Compare assumes the underlying type of c is Int.
func (i Int) Compare(c Comparable) int { return compare(i, c.(Int)) }

// Next returns i+1.
func (i Int) Next() Comparable { return i + 1 }

// A Float is a float64 type satisfying the Comparable interface. Floats are
// not Discrete.
type Float float64

// Compare assumes the underlying type of c is Float.
func (f Float) Compare(c Comparable) int { return compare(f, c.(Float)) }

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'f', -1, 64) }

// A Fixed is a float64 value formatted with a fixed number of decimal places.
// Fixed values are ordered by V alone; Prec only affects formatting.
type Fixed struct {
	V    float64
	Prec int
}

// Compare assumes the underlying type of c is Fixed.
func (f Fixed) Compare(c Comparable) int { return compare(f.V, c.(Fixed).V) }

func (f Fixed) String() string { return strconv.FormatFloat(f.V, 'f', f.Prec, 64) }

// A String is a string type satisfying the Comparable interface, ordered
// lexically.
type String string

// Compare assumes the underlying type of c is String.
func (s String) Compare(c Comparable) int { return compare(s, c.(String)) }

// Ordered wraps a value of any built-in ordered type so that it satisfies
// Comparable.
type Ordered[T constraints.Ordered] struct {
	V T
}

// Of returns v as a Comparable.
func Of[T constraints.Ordered](v T) Ordered[T] { return Ordered[T]{V: v} }

// Compare assumes the underlying type of c is Ordered[T].
func (o Ordered[T]) Compare(c Comparable) int { return compare(o.V, c.(Ordered[T]).V) }

func (o Ordered[T]) String() string { return fmt.Sprint(o.V) }

func compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// sign normalises the result of a Compare call.
func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}
