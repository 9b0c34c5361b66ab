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

// Package tree implements an interval tree based on an augmented
// Left-Leaning Red Black tree as described in
//
//	http://www.cs.princeton.edu/~rs/talks/LLRB/LLRB.pdf
//	http://www.cs.princeton.edu/~rs/talks/LLRB/Java/RedBlackBST.java
//
// Nodes are keyed by interval.Interval in interval sort order and each node
// holds the greatest higher bound found in its subtree, which is used to
// prune overlap queries. The tree operates in bottom-up 2-3 mode.
//
// A Tree is not safe for concurrent use.
package tree

import (
	logger "github.com/multiversx/mx-chain-logger-go"

	"github.com/biogo/intervals/interval"
)

var log = logger.GetOrCreate("intervals/tree")

// A Color represents the color of a Node.
type Color bool

// String returns a string representation of a Color.
func (c Color) String() string {
	if c {
		return "Black"
	}
	return "Red"
}

const (
	// Red as false give us the defined behaviour that new nodes are red. Although this
	// is incorrect for the root node, that is resolved on the first insertion.
	Red   Color = false
	Black Color = true
)

// A node represents a node in the tree.
type node[P any] struct {
	key     *interval.Interval
	payload P

	// maxHigh is the greatest higher bound of the non-empty keys in the
	// subtree. hasMax is false when all keys in the subtree are empty.
	maxHigh interval.Bound
	hasMax  bool

	left, right *node[P]
	Color       Color
}

// A Tree manages the root node of an interval tree. Each node holds a
// payload of type P. The zero Tree is an empty tree ready to use.
type Tree[P any] struct {
	root  *node[P]
	count int
}

// Helper methods

// color returns the effect color of a node. A nil node returns black.
func (n *node[P]) color() Color {
	if n == nil {
		return Black
	}
	return n.Color
}

// adjustMax sets maxHigh to the greatest of the node's key higher bound and
// its childrens' max.
func (n *node[P]) adjustMax() {
	n.maxHigh, n.hasMax = n.key.Higher()
	for _, c := range [2]*node[P]{n.left, n.right} {
		if c == nil || !c.hasMax {
			continue
		}
		if !n.hasMax || interval.CompareHigher(c.maxHigh, n.maxHigh) > 0 {
			n.maxHigh, n.hasMax = c.maxHigh, true
		}
	}
}

// (a,c)b -rotL-> ((a,)b,)c
func (n *node[P]) rotateLeft() (root *node[P]) {
	// Assumes: n has a right child.
	root = n.right
	n.right = root.left
	root.left = n
	root.Color = n.Color
	n.Color = Red
	n.adjustMax()
	root.adjustMax()
	return
}

// (a,c)b -rotR-> (,(,c)b)a
func (n *node[P]) rotateRight() (root *node[P]) {
	// Assumes: n has a left child.
	root = n.left
	n.left = root.right
	root.right = n
	root.Color = n.Color
	n.Color = Red
	n.adjustMax()
	root.adjustMax()
	return
}

// (aR,cR)bB -flipC-> (aB,cB)bR | (aB,cB)bR -flipC-> (aR,cR)bB
func (n *node[P]) flipColors() {
	// Assumes: n has two children.
	n.Color = !n.Color
	n.left.Color = !n.left.Color
	n.right.Color = !n.right.Color
}

// fixUp ensures that black link balance is correct, that red nodes lean left,
// and that 4 nodes are split.
func (n *node[P]) fixUp() *node[P] {
	n.adjustMax()
	if n.right.color() == Red {
		n = n.rotateLeft()
	}
	if n.left.color() == Red && n.left.left.color() == Red {
		n = n.rotateRight()
	}
	if n.left.color() == Red && n.right.color() == Red {
		n.flipColors()
	}
	return n
}

func (n *node[P]) moveRedLeft() *node[P] {
	n.flipColors()
	if n.right.left.color() == Red {
		n.right = n.right.rotateRight()
		n = n.rotateLeft()
		n.flipColors()
	}
	return n
}

func (n *node[P]) moveRedRight() *node[P] {
	n.flipColors()
	if n.left.left.color() == Red {
		n = n.rotateRight()
		n.flipColors()
	}
	return n
}

// Len returns the number of keys stored in the Tree.
func (t *Tree[P]) Len() int { return t.count }

// Depth returns the number of nodes on the longest path from the root to a
// leaf. The depth of an empty Tree is zero.
func (t *Tree[P]) Depth() int { return t.root.depth() }

func (n *node[P]) depth() int {
	if n == nil {
		return 0
	}
	l, r := n.left.depth(), n.right.depth()
	if l > r {
		return l + 1
	}
	return r + 1
}

// Get returns the payload stored for key. The returned boolean is false if
// key is not in the Tree.
func (t *Tree[P]) Get(key *interval.Interval) (p P, ok bool) {
	if key == nil {
		return p, false
	}
	n := t.root.search(key)
	if n == nil {
		return p, false
	}
	return n.payload, true
}

func (n *node[P]) search(key *interval.Interval) *node[P] {
	for n != nil {
		switch c := key.Compare(n.key); {
		case c == 0:
			return n
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// Insert inserts key into the Tree, setting its payload to the value returned
// by fn. fn is passed the existing payload and true if key is already present,
// or the zero payload and false otherwise. Insert returns whether a new node
// was created. Insert panics if key is nil.
func (t *Tree[P]) Insert(key *interval.Interval, fn func(old P, ok bool) P) (created bool) {
	if key == nil {
		panic("tree: nil key")
	}
	var d int
	t.root, d = t.root.insert(key, fn)
	t.count += d
	t.root.Color = Black
	if d != 0 {
		log.Trace("inserted interval node", "key", key, "nodes", t.count)
	}
	return d != 0
}

func (n *node[P]) insert(key *interval.Interval, fn func(P, bool) P) (root *node[P], d int) {
	if n == nil {
		var zero P
		n = &node[P]{key: key, payload: fn(zero, false)}
		n.adjustMax()
		return n, 1
	}

	switch c := key.Compare(n.key); {
	case c == 0:
		n.payload = fn(n.payload, true)
	case c < 0:
		n.left, d = n.left.insert(key, fn)
	default:
		n.right, d = n.right.insert(key, fn)
	}

	if n.right.color() == Red && n.left.color() == Black {
		n = n.rotateLeft()
	}
	if n.left.color() == Red && n.left.left.color() == Red {
		n = n.rotateRight()
	}
	if n.left.color() == Red && n.right.color() == Red {
		n.flipColors()
	}

	n.adjustMax()
	root = n

	return
}

// DeleteMin deletes the left-most key.
func (t *Tree[P]) DeleteMin() {
	if t.root == nil {
		return
	}
	var d int
	t.root, d = t.root.deleteMin()
	t.count += d
	if t.root == nil {
		return
	}
	t.root.Color = Black
}

func (n *node[P]) deleteMin() (root *node[P], d int) {
	if n.left == nil {
		return nil, -1
	}
	if n.left.color() == Black && n.left.left.color() == Black {
		n = n.moveRedLeft()
	}
	n.left, d = n.left.deleteMin()

	root = n.fixUp()

	return
}

// DeleteMax deletes the right-most key.
func (t *Tree[P]) DeleteMax() {
	if t.root == nil {
		return
	}
	var d int
	t.root, d = t.root.deleteMax()
	t.count += d
	if t.root == nil {
		return
	}
	t.root.Color = Black
}

func (n *node[P]) deleteMax() (root *node[P], d int) {
	if n.left != nil && n.left.color() == Red {
		n = n.rotateRight()
	}
	if n.right == nil {
		return nil, -1
	}
	if n.right.color() == Black && n.right.left.color() == Black {
		n = n.moveRedRight()
	}
	n.right, d = n.right.deleteMax()

	root = n.fixUp()

	return
}

// Delete deletes key from the Tree, returning its payload. The returned
// boolean is false if key was not present.
func (t *Tree[P]) Delete(key *interval.Interval) (p P, ok bool) {
	if key == nil {
		return p, false
	}
	n := t.root.search(key)
	if n == nil {
		return p, false
	}
	p = n.payload

	var d int
	t.root, d = t.root.delete(key)
	t.count += d
	log.Trace("deleted interval node", "key", key, "nodes", t.count)
	if t.root == nil {
		return p, true
	}
	t.root.Color = Black
	return p, true
}

// delete assumes key is present in the subtree.
func (n *node[P]) delete(key *interval.Interval) (root *node[P], d int) {
	if key.Compare(n.key) < 0 {
		if n.left != nil {
			if n.left.color() == Black && n.left.left.color() == Black {
				n = n.moveRedLeft()
			}
			n.left, d = n.left.delete(key)
		}
	} else {
		if n.left.color() == Red {
			n = n.rotateRight()
		}
		if key.Compare(n.key) == 0 && n.right == nil {
			return nil, -1
		}
		if n.right != nil {
			if n.right.color() == Black && n.right.left.color() == Black {
				n = n.moveRedRight()
			}
			if key.Compare(n.key) == 0 {
				m := n.right.min()
				n.key, n.payload = m.key, m.payload
				n.right, d = n.right.deleteMin()
			} else {
				n.right, d = n.right.delete(key)
			}
		}
	}

	root = n.fixUp()

	return
}

// Clear removes all keys from the Tree.
func (t *Tree[P]) Clear() {
	if t.count != 0 {
		log.Debug("clearing interval tree", "nodes", t.count)
	}
	t.root, t.count = nil, 0
}

// Min returns the left-most key stored in the Tree and its payload.
func (t *Tree[P]) Min() (key *interval.Interval, p P) {
	if t.root == nil {
		return nil, p
	}
	n := t.root.min()
	return n.key, n.payload
}

func (n *node[P]) min() *node[P] {
	for ; n.left != nil; n = n.left {
	}
	return n
}

func (n *node[P]) max() *node[P] {
	for ; n.right != nil; n = n.right {
	}
	return n
}

// Max returns the right-most key stored in the Tree and its payload.
func (t *Tree[P]) Max() (key *interval.Interval, p P) {
	if t.root == nil {
		return nil, p
	}
	n := t.root.max()
	return n.key, n.payload
}

// Floor returns the greatest key equal to or less than q in interval sort
// order, or nil if there is none.
func (t *Tree[P]) Floor(q *interval.Interval) (key *interval.Interval, p P) {
	if q == nil {
		return nil, p
	}
	n := t.root.floor(q)
	if n == nil {
		return nil, p
	}
	return n.key, n.payload
}

func (n *node[P]) floor(q *interval.Interval) *node[P] {
	if n == nil {
		return nil
	}
	switch c := q.Compare(n.key); {
	case c == 0:
		return n
	case c < 0:
		return n.left.floor(q)
	default:
		if r := n.right.floor(q); r != nil {
			return r
		}
	}
	return n
}

// Ceil returns the smallest key equal to or greater than q in interval sort
// order, or nil if there is none.
func (t *Tree[P]) Ceil(q *interval.Interval) (key *interval.Interval, p P) {
	if q == nil {
		return nil, p
	}
	n := t.root.ceil(q)
	if n == nil {
		return nil, p
	}
	return n.key, n.payload
}

func (n *node[P]) ceil(q *interval.Interval) *node[P] {
	if n == nil {
		return nil
	}
	switch c := q.Compare(n.key); {
	case c == 0:
		return n
	case c > 0:
		return n.right.ceil(q)
	default:
		if l := n.left.ceil(q); l != nil {
			return l
		}
	}
	return n
}
