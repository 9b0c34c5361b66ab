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

// Package ivmap provides ordered associative containers keyed by intervals.
// A Map holds one value per interval key and a MultiMap holds an ordered list
// of values per key. Both are backed by an augmented interval tree, so point
// and interval overlap queries run in O(log n + k) time for k matches.
//
// Views returned by Keys, Values, Entries and AsMap are snapshots; later
// changes to a container are not reflected in views taken earlier. Neither
// container is safe for concurrent use.
package ivmap

import (
	"github.com/google/go-cmp/cmp"

	"github.com/biogo/intervals/interval"
	"github.com/biogo/intervals/tree"
)

// An Entry is a key and value pair.
type Entry[V any] struct {
	Key   *interval.Interval
	Value V
}

// An Option configures a Map or MultiMap.
type Option[V any] func(*options[V])

type options[V any] struct {
	equal func(a, b V) bool
}

// WithEqual sets the function used to compare values in ContainsValue,
// ContainsEntry and MultiMap.Remove. The default is cmp.Equal.
func WithEqual[V any](fn func(a, b V) bool) Option[V] {
	return func(o *options[V]) { o.equal = fn }
}

func (o *options[V]) apply(opts []Option[V]) {
	for _, opt := range opts {
		opt(o)
	}
}

func (o *options[V]) eq(a, b V) bool {
	if o.equal != nil {
		return o.equal(a, b)
	}
	return cmp.Equal(a, b)
}

// A Map is an ordered map from intervals to values. The zero Map is empty and
// ready to use.
type Map[V any] struct {
	t tree.Tree[V]
	options[V]
}

// NewMap returns a new empty Map.
func NewMap[V any](opts ...Option[V]) *Map[V] {
	m := &Map[V]{}
	m.apply(opts)
	return m
}

// Len returns the number of keys in m.
func (m *Map[V]) Len() int { return m.t.Len() }

// IsEmpty returns whether m has no keys.
func (m *Map[V]) IsEmpty() bool { return m.t.Len() == 0 }

// NodeSize returns the number of distinct interval keys in m. For a Map this is
// the same as Len.
func (m *Map[V]) NodeSize() int { return m.t.Len() }

// Depth returns the number of nodes on the longest root to leaf path of the
// underlying tree.
func (m *Map[V]) Depth() int { return m.t.Depth() }

// Get returns the value stored for k. The returned boolean is false if k is
// not in m.
func (m *Map[V]) Get(k *interval.Interval) (V, bool) { return m.t.Get(k) }

// Put stores v for k, returning the previous value and whether there was one.
// Put panics if k is nil.
func (m *Map[V]) Put(k *interval.Interval, v V) (prev V, replaced bool) {
	if k == nil {
		panic("ivmap: nil key")
	}
	m.t.Insert(k, func(old V, ok bool) V {
		prev, replaced = old, ok
		return v
	})
	return prev, replaced
}

// Remove deletes k from m, returning its value and whether it was present.
func (m *Map[V]) Remove(k *interval.Interval) (V, bool) { return m.t.Delete(k) }

// ContainsKey returns whether k is in m.
func (m *Map[V]) ContainsKey(k *interval.Interval) bool {
	_, ok := m.t.Get(k)
	return ok
}

// ContainsValue returns whether any key in m has a value equal to v.
func (m *Map[V]) ContainsValue(v V) bool {
	return m.t.Do(func(_ *interval.Interval, val V) bool { return m.eq(val, v) })
}

// ContainsEntry returns whether k is in m with a value equal to v.
func (m *Map[V]) ContainsEntry(k *interval.Interval, v V) bool {
	val, ok := m.t.Get(k)
	return ok && m.eq(val, v)
}

// Clear removes all keys from m.
func (m *Map[V]) Clear() { m.t.Clear() }

// Keys returns the keys of m in sort order.
func (m *Map[V]) Keys() []*interval.Interval {
	keys := make([]*interval.Interval, 0, m.t.Len())
	m.t.Do(func(k *interval.Interval, _ V) bool {
		keys = append(keys, k)
		return false
	})
	return keys
}

// Values returns the values of m in key sort order.
func (m *Map[V]) Values() []V {
	vals := make([]V, 0, m.t.Len())
	m.t.Do(func(_ *interval.Interval, v V) bool {
		vals = append(vals, v)
		return false
	})
	return vals
}

// Entries returns the key and value pairs of m in key sort order.
func (m *Map[V]) Entries() []Entry[V] {
	ents := make([]Entry[V], 0, m.t.Len())
	m.t.Do(func(k *interval.Interval, v V) bool {
		ents = append(ents, Entry[V]{Key: k, Value: v})
		return false
	})
	return ents
}

// Do performs fn on each key and value in key sort order, stopping if fn
// returns true. It returns whether the traversal was stopped. fn must not
// modify m.
func (m *Map[V]) Do(fn func(k *interval.Interval, v V) (done bool)) bool {
	return m.t.Do(fn)
}

// First returns the first entry of m in key sort order. The returned boolean is
// false if m is empty.
func (m *Map[V]) First() (Entry[V], bool) {
	k, v := m.t.Min()
	return Entry[V]{Key: k, Value: v}, k != nil
}

// Last returns the last entry of m in key sort order. The returned boolean is
// false if m is empty.
func (m *Map[V]) Last() (Entry[V], bool) {
	k, v := m.t.Max()
	return Entry[V]{Key: k, Value: v}, k != nil
}

// PollFirst removes and returns the first entry of m.
func (m *Map[V]) PollFirst() (Entry[V], bool) {
	e, ok := m.First()
	if ok {
		m.t.DeleteMin()
	}
	return e, ok
}

// PollLast removes and returns the last entry of m.
func (m *Map[V]) PollLast() (Entry[V], bool) {
	e, ok := m.Last()
	if ok {
		m.t.DeleteMax()
	}
	return e, ok
}

// Floor returns the entry with the greatest key less than or equal to k.
func (m *Map[V]) Floor(k *interval.Interval) (Entry[V], bool) {
	fk, v := m.t.Floor(k)
	return Entry[V]{Key: fk, Value: v}, fk != nil
}

// Ceil returns the entry with the least key greater than or equal to k.
func (m *Map[V]) Ceil(k *interval.Interval) (Entry[V], bool) {
	ck, v := m.t.Ceil(k)
	return Entry[V]{Key: ck, Value: v}, ck != nil
}

// Query returns the values of all keys containing p, in key sort order. A nil
// p matches nothing.
func (m *Map[V]) Query(p interval.Comparable) []V {
	var vals []V
	m.t.DoPoint(p, func(_ *interval.Interval, v V) bool {
		vals = append(vals, v)
		return false
	})
	return vals
}

// QueryInterval returns the values of all keys overlapping q, in key sort order.
// Keys that precede, follow, meet or are met by q do not overlap it. A nil or
// empty q matches nothing.
func (m *Map[V]) QueryInterval(q *interval.Interval) []V {
	var vals []V
	m.t.DoOverlap(q, func(_ *interval.Interval, v V) bool {
		vals = append(vals, v)
		return false
	})
	return vals
}
