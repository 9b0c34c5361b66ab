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
	"github.com/pkg/errors"
	check "gopkg.in/check.v1"
)

func (s *S) TestRelate(c *check.C) {
	for _, test := range []struct {
		x, y *Interval
		want Relation
	}{
		{halfOpen(0, 10), halfOpen(4, 6), Contains},
		{halfOpen(4, 6), halfOpen(0, 10), During},
		{halfOpen(0, 10), halfOpen(10, 20), Meets},
		{halfOpen(10, 20), halfOpen(0, 10), MetBy},
		{halfOpen(0, 5), halfOpen(10, 20), Precedes},
		{halfOpen(10, 20), halfOpen(0, 5), PrecededBy},
		{halfOpen(0, 10), halfOpen(5, 15), Overlaps},
		{halfOpen(5, 15), halfOpen(0, 10), OverlapedBy},
		{halfOpen(0, 5), halfOpen(0, 10), Starts},
		{halfOpen(0, 10), halfOpen(0, 5), StartedBy},
		{halfOpen(5, 10), halfOpen(0, 10), Finishes},
		{halfOpen(0, 10), halfOpen(5, 10), FinishedBy},
		{halfOpen(0, 10), halfOpen(0, 10), Equals},
		{halfOpen(0, 10), closed(0, 10), Equals},
		{closed(5, 5), closed(5, 5), Equals},
		{closed(5, 5), closed(5, 10), Meets},
		{closed(0, 10), closed(5, 5), Contains},
		{MustNew(Unbounded(), Open(Int(0))), MustNew(Closed(Int(0)), Unbounded()), Meets},
		{MustNew(Unbounded(), Unbounded()), halfOpen(0, 10), Contains},
		{MustNew(Unbounded(), Closed(Int(3))), MustNew(Unbounded(), Unbounded()), Starts},
		{MustNew(Closed(Int(3)), Unbounded()), MustNew(Unbounded(), Unbounded()), Finishes},
		{MustNew(Unbounded(), Unbounded()), MustNew(Unbounded(), Unbounded()), Equals},
	} {
		got, err := Relate(test.x, test.y)
		c.Check(err, check.IsNil)
		c.Check(got, check.Equals, test.want, check.Commentf("%v %v %v", test.x, got, test.y))
		got, err = test.y.Relation(test.x)
		c.Check(err, check.IsNil)
		c.Check(got, check.Equals, test.want.Converse(), check.Commentf("%v %v %v", test.y, got, test.x))
	}
}

func (s *S) TestRelateEmpty(c *check.C) {
	for _, iv := range append(grid(3), Empty()) {
		r, err := Relate(Empty(), iv)
		c.Check(err, check.IsNil)
		c.Check(r, check.Equals, Precedes)
		r, err = Relate(iv, Empty())
		c.Check(err, check.IsNil)
		c.Check(r, check.Equals, Precedes)
	}
}

func (s *S) TestRelateNil(c *check.C) {
	_, err := Relate(halfOpen(0, 1), nil)
	c.Check(errors.Is(err, ErrInvalidArgument), check.Equals, true)
	_, err = Relate(nil, halfOpen(0, 1))
	c.Check(errors.Is(err, ErrInvalidArgument), check.Equals, true)
	c.Check(halfOpen(0, 1).Overlaps(nil), check.Equals, false)
}

func (s *S) TestConverse(c *check.C) {
	seen := make(map[Relation]bool)
	for r := Precedes; r <= Equals; r++ {
		c.Check(r.Converse().Converse(), check.Equals, r)
		c.Check(r.Converse().Disjoint(), check.Equals, r.Disjoint())
		seen[r.Converse()] = true
	}
	c.Check(seen, check.HasLen, 13)
	c.Check(Equals.Converse(), check.Equals, Equals)
	c.Check(OverlapedBy.String(), check.Equals, "OVERLAPED_BY")
}

func (s *S) TestRelationProperties(c *check.C) {
	ivs := grid(4)
	for _, x := range ivs {
		r, _ := Relate(x, x)
		c.Check(r, check.Equals, Equals, check.Commentf("%v", x))
		for _, y := range ivs {
			xy, _ := Relate(x, y)
			yx, _ := Relate(y, x)
			c.Check(yx, check.Equals, xy.Converse(), check.Commentf("%v %v %v", x, xy, y))

			in := Intersection(x, y)
			c.Check(in.IsEmpty(), check.Equals, xy.Disjoint(), check.Commentf("%v ∩ %v = %v", x, y, in))
			if in.IsEmpty() {
				continue
			}
			lo, _ := in.Lower()
			hi, _ := in.Higher()
			c.Check(validate(lo, hi), check.IsNil)
			c.Check(Intersection(y, x).Equal(in), check.Equals, true)
		}
	}
}

func (s *S) TestIntersection(c *check.C) {
	for _, test := range []struct {
		x, y *Interval
		want string
	}{
		{halfOpen(0, 10), halfOpen(4, 6), "[4,6)"},
		{halfOpen(0, 10), halfOpen(5, 15), "[5,10)"},
		{halfOpen(0, 10), closed(0, 10), "[0,10)"},
		{MustNew(Open(Int(0)), Closed(Int(10))), closed(0, 10), "(0,10]"},
		{MustNew(Unbounded(), Open(Int(5))), MustNew(Closed(Int(0)), Unbounded()), "[0,5)"},
		{MustNew(Unbounded(), Unbounded()), MustNew(Unbounded(), Unbounded()), "(,)"},
		{halfOpen(0, 10), halfOpen(10, 20), "(0,0)"},
		{halfOpen(0, 5), halfOpen(10, 20), "(0,0)"},
		{Empty(), halfOpen(0, 10), "(0,0)"},
		{halfOpen(0, 10), nil, "(0,0)"},
	} {
		c.Check(Intersection(test.x, test.y).String(), check.Equals, test.want)
	}

	a, _ := NewDiscrete(Int(0), Int(10))
	b, _ := NewDiscrete(Int(5), Int(20))
	c.Check(a.Intersection(b).IsDiscrete(), check.Equals, true)
	c.Check(a.Intersection(halfOpen(5, 20)).IsDiscrete(), check.Equals, false)
}

func (s *S) TestUnion(c *check.C) {
	for _, test := range []struct {
		x, y *Interval
		want string
		err  bool
	}{
		{halfOpen(0, 10), halfOpen(10, 20), "[0,20)", false},
		{halfOpen(10, 20), halfOpen(0, 10), "[0,20)", false},
		{halfOpen(0, 10), halfOpen(5, 15), "[0,15)", false},
		{halfOpen(0, 10), closed(0, 10), "[0,10]", false},
		{MustNew(Open(Int(0)), Open(Int(5))), halfOpen(0, 5), "[0,5)", false},
		{halfOpen(0, 10), MustNew(Closed(Int(3)), Unbounded()), "[0,)", false},
		{halfOpen(0, 10), Empty(), "[0,10)", false},
		{Empty(), halfOpen(0, 10), "[0,10)", false},
		{halfOpen(0, 5), halfOpen(10, 20), "", true},
		{halfOpen(10, 20), halfOpen(0, 5), "", true},
		{halfOpen(0, 10), MustNew(Open(Int(10)), Open(Int(20))), "", true},
		{MustNew(Open(Int(10)), Open(Int(20))), halfOpen(0, 10), "", true},
		{halfOpen(0, 10), nil, "", true},
	} {
		u, err := Union(test.x, test.y)
		if test.err {
			c.Check(errors.Is(err, ErrInvalidArgument), check.Equals, true, check.Commentf("%v ∪ %v", test.x, test.y))
			continue
		}
		c.Assert(err, check.IsNil)
		c.Check(u.String(), check.Equals, test.want)
	}
	_, err := Union(halfOpen(0, 5), halfOpen(10, 20))
	c.Check(errors.Is(err, ErrNotContiguous), check.Equals, true)
}

func (s *S) TestSpan(c *check.C) {
	c.Check(Span(halfOpen(0, 5), halfOpen(10, 20)).String(), check.Equals, "[0,20)")
	c.Check(Span(closed(0, 5), MustNew(Unbounded(), Open(Int(3)))).String(), check.Equals, "(,5]")
	c.Check(Span(nil, halfOpen(1, 2)).String(), check.Equals, "[1,2)")
	c.Check(Span(Empty(), nil).IsEmpty(), check.Equals, true)
}

func (s *S) TestSplit(c *check.C) {
	lo, hi, err := halfOpen(0, 10).Split(Int(4))
	c.Assert(err, check.IsNil)
	c.Check(lo.String(), check.Equals, "[0,4]")
	c.Check(hi.String(), check.Equals, "(4,10)")
	c.Check(lo.Contains(Int(4)), check.Equals, true)
	c.Check(hi.Contains(Int(4)), check.Equals, false)
	r, _ := Relate(lo, hi)
	c.Check(r, check.Equals, Meets)

	lo, hi, err = MustNew(Unbounded(), Unbounded()).Split(Int(0))
	c.Assert(err, check.IsNil)
	c.Check(lo.String(), check.Equals, "(,0]")
	c.Check(hi.String(), check.Equals, "(0,)")

	lo, hi, err = closed(0, 10).Split(Int(10))
	c.Assert(err, check.IsNil)
	c.Check(lo.String(), check.Equals, "[0,10]")
	c.Check(hi.IsEmpty(), check.Equals, true)
	lo, hi, err = closed(3, 3).Split(Int(3))
	c.Assert(err, check.IsNil)
	c.Check(lo.Equal(closed(3, 3)), check.Equals, true)
	c.Check(hi.IsEmpty(), check.Equals, true)

	for _, p := range []Comparable{Int(10), Int(-1), nil} {
		_, _, err = halfOpen(0, 10).Split(p)
		c.Check(errors.Is(err, ErrOutOfRange), check.Equals, true)
		c.Check(errors.Is(err, ErrInvalidArgument), check.Equals, true)
	}
	_, _, err = Empty().Split(Int(0))
	c.Check(errors.Is(err, ErrInvalidArgument), check.Equals, true)

	d, _ := NewDiscrete(Int(1), Int(5))
	lo, hi, err = d.Split(Int(3))
	c.Assert(err, check.IsNil)
	c.Check(lo.String(), check.Equals, "[1,3]")
	c.Check(hi.String(), check.Equals, "[4,5]")
	c.Check(hi.IsDiscrete(), check.Equals, true)
	lo, hi, err = d.Split(Int(5))
	c.Assert(err, check.IsNil)
	c.Check(lo.String(), check.Equals, "[1,5]")
	c.Check(hi.IsEmpty(), check.Equals, true)
}
