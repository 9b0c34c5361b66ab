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

// A Relation is one of the thirteen mutually exclusive relationships between
// two intervals described by Allen's interval algebra.
type Relation int

const (
	Precedes Relation = iota
	PrecededBy
	Meets
	MetBy
	Overlaps
	OverlapedBy
	Starts
	StartedBy
	Finishes
	FinishedBy
	During
	Contains
	Equals
)

var relationNames = [...]string{
	Precedes:    "PRECEDES",
	PrecededBy:  "PRECEDED_BY",
	Meets:       "MEETS",
	MetBy:       "MET_BY",
	Overlaps:    "OVERLAPS",
	OverlapedBy: "OVERLAPED_BY",
	Starts:      "STARTS",
	StartedBy:   "STARTED_BY",
	Finishes:    "FINISHES",
	FinishedBy:  "FINISHED_BY",
	During:      "DURING",
	Contains:    "CONTAINS",
	Equals:      "EQUALS",
}

var converses = [...]Relation{
	Precedes:    PrecededBy,
	PrecededBy:  Precedes,
	Meets:       MetBy,
	MetBy:       Meets,
	Overlaps:    OverlapedBy,
	OverlapedBy: Overlaps,
	Starts:      StartedBy,
	StartedBy:   Starts,
	Finishes:    FinishedBy,
	FinishedBy:  Finishes,
	During:      Contains,
	Contains:    During,
	Equals:      Equals,
}

func (r Relation) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return "Relation(?)"
	}
	return relationNames[r]
}

// Converse returns the relation that holds when the operands of r are
// swapped.
func (r Relation) Converse() Relation { return converses[r] }

// Disjoint returns whether r is a relation between intervals that do not
// share any interior: Precedes, PrecededBy, Meets or MetBy.
func (r Relation) Disjoint() bool {
	switch r {
	case Precedes, PrecededBy, Meets, MetBy:
		return true
	}
	return false
}

// Relate returns the relation of x to y. Bounds are compared by value only and
// unbounded ends compare as -∞ and +∞. If either interval is empty the
// relation is Precedes. A nil interval is an ErrInvalidArgument.
func Relate(x, y *Interval) (Relation, error) {
	if x == nil || y == nil {
		return 0, errors.Wrap(ErrInvalidArgument, "relation with nil interval")
	}
	return x.relate(y), nil
}

// Relation returns the relation of iv to o. See Relate.
func (iv *Interval) Relation(o *Interval) (Relation, error) { return Relate(iv, o) }

// Overlaps returns whether iv and o share interior, that is whether their
// relation is not Disjoint. A nil o does not overlap.
func (iv *Interval) Overlaps(o *Interval) bool { return o != nil && !iv.relate(o).Disjoint() }

func (iv *Interval) relate(y *Interval) Relation {
	x := iv
	if x.kind == empty || y.kind == empty {
		return Precedes
	}

	lo := compareEnds(x.lower, low, y.lower, low)
	hi := compareEnds(x.higher, high, y.higher, high)
	if lo == 0 && hi == 0 {
		// A degenerate interval equals itself.
		return Equals
	}

	switch c := compareEnds(x.higher, high, y.lower, low); {
	case c == 0:
		return Meets
	case c < 0:
		return Precedes
	}
	switch c := compareEnds(y.higher, high, x.lower, low); {
	case c == 0:
		return MetBy
	case c < 0:
		return PrecededBy
	}

	switch {
	case lo == 0:
		if hi < 0 {
			return Starts
		}
		return StartedBy
	case hi == 0:
		if lo > 0 {
			return Finishes
		}
		return FinishedBy
	case lo < 0 && hi > 0:
		return Contains
	case lo > 0 && hi < 0:
		return During
	case lo < 0:
		return Overlaps
	}
	return OverlapedBy
}
