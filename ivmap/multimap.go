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

package ivmap

import (
	logger "github.com/multiversx/mx-chain-logger-go"

	"github.com/biogo/intervals/interval"
	"github.com/biogo/intervals/tree"
)

var log = logger.GetOrCreate("intervals/ivmap")

// A MultiMap is an ordered map from intervals to lists of values. Values are
// kept in insertion order and duplicates are permitted. A key is present only
// while it has at least one value. The zero MultiMap is empty and ready to use.
type MultiMap[V any] struct {
	t    tree.Tree[[]V]
	size int
	options[V]
}

// NewMultiMap returns a new empty MultiMap.
func NewMultiMap[V any](opts ...Option[V]) *MultiMap[V] {
	m := &MultiMap[V]{}
	m.apply(opts)
	return m
}

// Len returns the total number of values in m.
func (m *MultiMap[V]) Len() int { return m.size }

// IsEmpty returns whether m has no values.
func (m *MultiMap[V]) IsEmpty() bool { return m.size == 0 }

// NodeSize returns the number of distinct interval keys in m.
func (m *MultiMap[V]) NodeSize() int { return m.t.Len() }

// Depth returns the number of nodes on the longest root to leaf path of the
// underlying tree.
func (m *MultiMap[V]) Depth() int { return m.t.Depth() }

// Get returns a copy of the values stored for k, or nil if k is not in m.
func (m *MultiMap[V]) Get(k *interval.Interval) []V {
	vals, ok := m.t.Get(k)
	if !ok {
		return nil
	}
	return append([]V(nil), vals...)
}

// Put appends v to the values for k. It returns whether the size of m
// increased, which is always true. Put panics if k is nil.
func (m *MultiMap[V]) Put(k *interval.Interval, v V) bool { return m.PutAll(k, v) }

// PutAll appends vals to the values for k, returning whether the size of m
// increased. PutAll panics if k is nil.
func (m *MultiMap[V]) PutAll(k *interval.Interval, vals ...V) bool {
	if k == nil {
		panic("ivmap: nil key")
	}
	if len(vals) == 0 {
		return false
	}
	m.t.Insert(k, func(old []V, _ bool) []V { return append(old, vals...) })
	m.size += len(vals)
	return true
}

// ReplaceValues replaces the values for k with vals, returning the previous
// values. If vals is empty k is removed. ReplaceValues panics if k is nil.
func (m *MultiMap[V]) ReplaceValues(k *interval.Interval, vals []V) []V {
	if k == nil {
		panic("ivmap: nil key")
	}
	if len(vals) == 0 {
		return m.RemoveAll(k)
	}
	var prev []V
	m.t.Insert(k, func(old []V, _ bool) []V {
		prev = old
		return append([]V(nil), vals...)
	})
	m.size += len(vals) - len(prev)
	return prev
}

// RemoveAll removes k and all its values from m, returning the values.
func (m *MultiMap[V]) RemoveAll(k *interval.Interval) []V {
	vals, ok := m.t.Delete(k)
	if !ok {
		return nil
	}
	m.size -= len(vals)
	log.Trace("removed interval key", "key", k, "values", len(vals))
	return vals
}

// Remove removes the first value equal to v from the values for k, returning
// whether a value was removed. k is removed when its last value is.
func (m *MultiMap[V]) Remove(k *interval.Interval, v V) bool {
	vals, ok := m.t.Get(k)
	if !ok {
		return false
	}
	for i, val := range vals {
		if !m.eq(val, v) {
			continue
		}
		m.size--
		if len(vals) == 1 {
			m.t.Delete(k)
			return true
		}
		rest := append(vals[:i:i], vals[i+1:]...)
		m.t.Insert(k, func([]V, bool) []V { return rest })
		return true
	}
	return false
}

// ContainsKey returns whether k is in m.
func (m *MultiMap[V]) ContainsKey(k *interval.Interval) bool {
	_, ok := m.t.Get(k)
	return ok
}

// ContainsValue returns whether any key in m has a value equal to v.
func (m *MultiMap[V]) ContainsValue(v V) bool {
	return m.t.Do(func(_ *interval.Interval, vals []V) bool { return m.contains(vals, v) })
}

// ContainsEntry returns whether k is in m with a value equal to v.
func (m *MultiMap[V]) ContainsEntry(k *interval.Interval, v V) bool {
	vals, ok := m.t.Get(k)
	return ok && m.contains(vals, v)
}

func (m *MultiMap[V]) contains(vals []V, v V) bool {
	for _, val := range vals {
		if m.eq(val, v) {
			return true
		}
	}
	return false
}

// Clear removes all keys and values from m.
func (m *MultiMap[V]) Clear() {
	m.t.Clear()
	m.size = 0
}

// KeySet returns the distinct keys of m in sort order.
func (m *MultiMap[V]) KeySet() []*interval.Interval {
	keys := make([]*interval.Interval, 0, m.t.Len())
	m.t.Do(func(k *interval.Interval, _ []V) bool {
		keys = append(keys, k)
		return false
	})
	return keys
}

// Keys returns the keys of m in sort order, each repeated once for each of
// its values.
func (m *MultiMap[V]) Keys() []*interval.Interval {
	keys := make([]*interval.Interval, 0, m.size)
	m.t.Do(func(k *interval.Interval, vals []V) bool {
		for range vals {
			keys = append(keys, k)
		}
		return false
	})
	return keys
}

// Values returns all values of m, grouped by key in key sort order.
func (m *MultiMap[V]) Values() []V {
	all := make([]V, 0, m.size)
	m.t.Do(func(_ *interval.Interval, vals []V) bool {
		all = append(all, vals...)
		return false
	})
	return all
}

// Entries returns a key and value pair for each value in m, in key sort order.
func (m *MultiMap[V]) Entries() []Entry[V] {
	ents := make([]Entry[V], 0, m.size)
	m.t.Do(func(k *interval.Interval, vals []V) bool {
		for _, v := range vals {
			ents = append(ents, Entry[V]{Key: k, Value: v})
		}
		return false
	})
	return ents
}

// AsMap returns a Map from each key of m to a copy of its values. Get on the
// returned Map agrees with Get on m.
func (m *MultiMap[V]) AsMap() *Map[[]V] {
	am := NewMap[[]V]()
	m.t.Do(func(k *interval.Interval, vals []V) bool {
		am.Put(k, append([]V(nil), vals...))
		return false
	})
	return am
}

// Query returns the values of all keys containing p, grouped by key in key
// sort order. A nil p matches nothing.
func (m *MultiMap[V]) Query(p interval.Comparable) []V {
	var all []V
	m.t.DoPoint(p, func(_ *interval.Interval, vals []V) bool {
		all = append(all, vals...)
		return false
	})
	return all
}

// QueryInterval returns the values of all keys overlapping q, grouped by key in
// key sort order. A nil or empty q matches nothing.
func (m *MultiMap[V]) QueryInterval(q *interval.Interval) []V {
	var all []V
	m.t.DoOverlap(q, func(_ *interval.Interval, vals []V) bool {
		all = append(all, vals...)
		return false
	})
	return all
}
