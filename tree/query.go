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

package tree

import "github.com/biogo/intervals/interval"

// An Operation is a function that operates on a key and its payload. If done is
// returned true, the Operation is indicating that no further work needs to be
// done and so the Do function should traverse no further.
type Operation[P any] func(key *interval.Interval, p P) (done bool)

// Do performs fn on all keys stored in the tree in sort order. A boolean is
// returned indicating whether the Do traversal was interrupted by an Operation
// returning true. If fn alters the tree, future tree operation behaviors are
// undefined.
func (t *Tree[P]) Do(fn Operation[P]) bool {
	if t.root == nil {
		return false
	}
	return t.root.do(fn)
}

func (n *node[P]) do(fn Operation[P]) (done bool) {
	if n.left != nil {
		done = n.left.do(fn)
		if done {
			return
		}
	}
	done = fn(n.key, n.payload)
	if done {
		return
	}
	if n.right != nil {
		done = n.right.do(fn)
	}
	return
}

// DoReverse performs fn on all keys stored in the tree, but in reverse of sort
// order. A boolean is returned indicating whether the Do traversal was
// interrupted by an Operation returning true.
func (t *Tree[P]) DoReverse(fn Operation[P]) bool {
	if t.root == nil {
		return false
	}
	return t.root.doReverse(fn)
}

func (n *node[P]) doReverse(fn Operation[P]) (done bool) {
	if n.right != nil {
		done = n.right.doReverse(fn)
		if done {
			return
		}
	}
	done = fn(n.key, n.payload)
	if done {
		return
	}
	if n.left != nil {
		done = n.left.doReverse(fn)
	}
	return
}

// DoPoint performs fn on all keys in the tree that contain p, in sort order.
// Subtrees whose greatest higher bound is below p, and right subtrees of keys
// starting above p, are not visited. A boolean is returned indicating whether
// the traversal was interrupted by an Operation returning true.
func (t *Tree[P]) DoPoint(p interval.Comparable, fn Operation[P]) bool {
	if t.root == nil || p == nil {
		return false
	}
	return t.root.doPoint(p, fn)
}

func (n *node[P]) doPoint(p interval.Comparable, fn Operation[P]) (done bool) {
	if n.left != nil && n.left.hasMax && interval.AtOrAbove(n.left.maxHigh, p) {
		done = n.left.doPoint(p, fn)
		if done {
			return
		}
	}
	if n.key.Contains(p) {
		done = fn(n.key, n.payload)
		if done {
			return
		}
	}
	if n.right != nil && startsAtOrBefore(n.key, p) {
		done = n.right.doPoint(p, fn)
	}
	return
}

// DoOverlap performs fn on all keys in the tree that overlap q, that is whose
// relation to q is not interval.Relation.Disjoint, in sort order. Subtrees whose
// greatest higher bound is below the lower bound of q, and right subtrees of
// keys starting above the higher bound of q, are not visited. A boolean
// is returned indicating whether the traversal was interrupted by an Operation
// returning true.
func (t *Tree[P]) DoOverlap(q *interval.Interval, fn Operation[P]) bool {
	if t.root == nil || q == nil || q.IsEmpty() {
		return false
	}
	lo, _ := q.Lower()
	hi, _ := q.Higher()
	return t.root.doOverlap(q, lo, hi, fn)
}

func (n *node[P]) doOverlap(q *interval.Interval, lo, hi interval.Bound, fn Operation[P]) (done bool) {
	if n.left != nil && n.left.hasMax && !interval.HighBeforeLow(n.left.maxHigh, lo) {
		done = n.left.doOverlap(q, lo, hi, fn)
		if done {
			return
		}
	}
	if n.key.Overlaps(q) {
		done = fn(n.key, n.payload)
		if done {
			return
		}
	}
	if n.right != nil && startsAtOrBeforeHigh(n.key, hi) {
		done = n.right.doOverlap(q, lo, hi, fn)
	}
	return
}

// startsAtOrBefore returns whether keys greater than k may contain p. The
// empty interval sorts first so it never prunes.
func startsAtOrBefore(k *interval.Interval, p interval.Comparable) bool {
	l, ok := k.Lower()
	return !ok || interval.AtOrBelow(l, p)
}

// startsAtOrBeforeHigh returns whether keys greater than k may start at or
// below hi. Keys starting at hi can only overlap a degenerate query.
func startsAtOrBeforeHigh(k *interval.Interval, hi interval.Bound) bool {
	l, ok := k.Lower()
	return !ok || interval.LowAtOrBelowHigh(l, hi)
}
