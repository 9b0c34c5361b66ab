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
	"math"

	"github.com/pkg/errors"
	check "gopkg.in/check.v1"
)

func (s *S) TestDiscrete(c *check.C) {
	iv, err := NewDiscrete(Int(1), Int(52))
	c.Assert(err, check.IsNil)
	c.Check(iv.IsDiscrete(), check.Equals, true)
	c.Check(iv.String(), check.Equals, "[1,52]")

	// Iteration is restartable.
	for pass := 0; pass < 2; pass++ {
		var got []Comparable
		done, err := iv.Do(func(v Comparable) (done bool) {
			got = append(got, v)
			return
		})
		c.Check(done, check.Equals, false)
		c.Check(err, check.IsNil)
		c.Assert(got, check.HasLen, 52)
		for i, v := range got {
			c.Check(v, check.Equals, Int(i+1))
		}
	}

	var n int
	done, err := iv.Do(func(v Comparable) bool {
		n++
		return v == Int(10)
	})
	c.Check(done, check.Equals, true)
	c.Check(err, check.IsNil)
	c.Check(n, check.Equals, 10)

	single, _ := NewDiscrete(Int(7), Int(7))
	vals, err := single.Values()
	c.Check(err, check.IsNil)
	c.Check(vals, check.DeepEquals, []Comparable{Int(7)})

	vals, err = Empty().Values()
	c.Check(err, check.IsNil)
	c.Check(vals, check.HasLen, 0)
}

func (s *S) TestDiscreteAtMaxInt(c *check.C) {
	iv, err := NewDiscrete(Int(math.MaxInt-1), Int(math.MaxInt))
	c.Assert(err, check.IsNil)
	var n int
	done, err := iv.Do(func(Comparable) bool {
		n++
		return n > 10
	})
	c.Check(err, check.IsNil)
	c.Check(done, check.Equals, false)
	c.Check(n, check.Equals, 2)

	vals, err := iv.Values()
	c.Check(err, check.IsNil)
	c.Check(vals, check.DeepEquals, []Comparable{Int(math.MaxInt - 1), Int(math.MaxInt)})

	top, _ := NewDiscrete(Int(math.MaxInt), Int(math.MaxInt))
	vals, _ = top.Values()
	c.Check(vals, check.DeepEquals, []Comparable{Int(math.MaxInt)})
}

func (s *S) TestDiscreteErrors(c *check.C) {
	_, err := NewDiscrete(Int(5), Int(1))
	c.Check(errors.Is(err, ErrInvertedRange), check.Equals, true)
	_, err = NewDiscrete(nil, Int(1))
	c.Check(errors.Is(err, ErrInvalidArgument), check.Equals, true)

	// Construction over a non-discrete type succeeds; iteration fails
	// before any value is visited.
	iv, err := NewDiscrete(Float(1), Float(3))
	c.Assert(err, check.IsNil)
	called := false
	_, err = iv.Do(func(Comparable) bool { called = true; return false })
	c.Check(errors.Is(err, ErrNotDiscrete), check.Equals, true)
	c.Check(errors.Is(err, ErrInvalidArgument), check.Equals, true)
	c.Check(called, check.Equals, false)

	_, err = halfOpen(0, 3).Values()
	c.Check(errors.Is(err, ErrNotDiscrete), check.Equals, true)
}
