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

// An Operation is a function that operates on a value of an interval. If done
// is returned true, the Operation is indicating that no further work needs to
// be done and so the Do function should traverse no further.
type Operation func(Comparable) (done bool)

// Do performs fn on each value of the discrete interval iv in ascending order.
// A boolean is returned indicating whether the traversal was interrupted by
// fn returning true. Do may be called any number of times.
//
// Do on the empty interval performs no work. Do on a non-discrete interval,
// or on a discrete interval whose values do not implement Discrete, returns
// an ErrNotDiscrete before fn is called.
func (iv *Interval) Do(fn Operation) (bool, error) {
	switch iv.kind {
	case empty:
		return false, nil
	case bounded:
		return false, errors.Wrapf(ErrNotDiscrete, "%v is not a discrete interval", iv)
	}
	if _, ok := iv.lower.value.(Discrete); !ok {
		return false, errors.Wrapf(ErrNotDiscrete, "%T values can not be enumerated", iv.lower.value)
	}
	// Stop at the higher value before taking its successor, which may wrap.
	for v := iv.lower.value; ; v = v.(Discrete).Next() {
		if fn(v) {
			return true, nil
		}
		if v.Compare(iv.higher.value) >= 0 {
			return false, nil
		}
	}
}

// Values returns the values of the discrete interval iv in ascending order.
func (iv *Interval) Values() ([]Comparable, error) {
	var vals []Comparable
	_, err := iv.Do(func(v Comparable) (done bool) {
		vals = append(vals, v)
		return
	})
	if err != nil {
		return nil, err
	}
	return vals, nil
}
