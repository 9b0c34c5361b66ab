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

package interval_test

import (
	"fmt"

	"github.com/biogo/intervals/interval"
)

func ExampleRelate() {
	x, _ := interval.NewHalfOpen(interval.Int(0), interval.Int(10))
	for _, y := range []*interval.Interval{
		interval.MustNew(interval.Closed(interval.Int(4)), interval.Open(interval.Int(6))),
		interval.MustNew(interval.Closed(interval.Int(10)), interval.Open(interval.Int(20))),
		interval.MustNew(interval.Closed(interval.Int(5)), interval.Unbounded()),
		interval.Empty(),
	} {
		r, _ := interval.Relate(x, y)
		fmt.Printf("%v %v %v, converse %v\n", x, r, y, r.Converse())
	}

	// Output:
	// [0,10) CONTAINS [4,6), converse DURING
	// [0,10) MEETS [10,20), converse MET_BY
	// [0,10) OVERLAPS [5,), converse OVERLAPED_BY
	// [0,10) PRECEDES (0,0), converse PRECEDED_BY
}

func ExampleIntersection() {
	x, _ := interval.NewHalfOpen(interval.Int(0), interval.Int(10))
	y := interval.MustNew(interval.Open(interval.Int(5)), interval.Unbounded())
	fmt.Println(interval.Intersection(x, y))
	fmt.Println(x.Intersection(interval.MustNew(interval.Unbounded(), interval.Closed(interval.Int(-1)))))

	// Output:
	// (5,10)
	// (0,0)
}

func ExampleInterval_Do() {
	iv, _ := interval.NewDiscrete(interval.Int(1), interval.Int(5))
	iv.Do(func(v interval.Comparable) (done bool) {
		fmt.Print(v, " ")
		return
	})
	fmt.Println()

	// Output:
	// 1 2 3 4 5
}

func ExampleFixed() {
	iv := interval.MustNew(
		interval.Open(interval.Fixed{V: 100, Prec: 2}),
		interval.Closed(interval.Fixed{V: 200, Prec: 2}),
	)
	fmt.Println(iv)
	fmt.Println(iv.Contains(interval.Fixed{V: 150.25}))

	// Output:
	// (100.00,200.00]
	// true
}
