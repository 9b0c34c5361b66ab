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

// A Position describes where a point lies relative to the values of an
// interval's bounds. Positions ignore bound inclusivity; a point equal to an
// exclusive lower bound is at LowerBound but is not contained.
type Position int

const (
	Lower       Position = iota // Below the lower bound.
	LowerBound                  // Equal to the lower bound.
	InInterval                  // Strictly between the bounds.
	HigherBound                 // Equal to the higher bound.
	Higher                      // Above the higher bound.
)

var positionNames = [...]string{
	Lower:       "LOWER",
	LowerBound:  "LOWER_BOUND",
	InInterval:  "IN_INTERVAL",
	HigherBound: "HIGHER_BOUND",
	Higher:      "HIGHER",
}

func (p Position) String() string {
	if p < 0 || int(p) >= len(positionNames) {
		return "Position(?)"
	}
	return positionNames[p]
}

// Position returns the position of p relative to iv. Every point is Higher
// than the empty interval. A nil p is an ErrInvalidArgument.
func (iv *Interval) Position(p Comparable) (Position, error) {
	if p == nil {
		return 0, errors.Wrap(ErrInvalidArgument, "position of nil point")
	}
	if iv.kind == empty {
		return Higher, nil
	}
	if !iv.lower.IsUnbounded() {
		switch c := p.Compare(iv.lower.value); {
		case c < 0:
			return Lower, nil
		case c == 0:
			return LowerBound, nil
		}
	}
	if iv.higher.IsUnbounded() {
		return InInterval, nil
	}
	switch c := p.Compare(iv.higher.value); {
	case c < 0:
		return InInterval, nil
	case c == 0:
		return HigherBound, nil
	}
	return Higher, nil
}
