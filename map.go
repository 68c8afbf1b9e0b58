package prioritymap

import (
	"golang.org/x/exp/constraints"

	"github.com/wilderfield/priority-map/bucketlist"
)

// Value constrains the priority type to numbers that support the +1/-1
// arithmetic used by Inc and Dec.
type Value interface {
	constraints.Integer | constraints.Float
}

// LessFunc reports whether a sorts before b, i.e. a has higher priority.
// It must be a strict total order over the values in use.
type LessFunc[V Value] func(a, b V) bool

// Map associates each key with a numeric priority and gives O(1) access to a
// key holding the extreme priority. Updates that move a value by one step,
// the overwhelmingly common case for frequency counting and degree tracking,
// are O(1) amortized; assigning an arbitrary value degrades to a scan over
// the distinct live values.
//
// A Map is not safe for concurrent use; callers needing that must serialize
// externally.
type Map[K comparable, V Value] struct {
	buckets *bucketlist.List[K, V]
	index   map[K]bucketlist.Handle
	less    LessFunc[V]
}

// New creates a map where Top returns a key with the maximum value.
func New[K comparable, V Value]() *Map[K, V] {
	return NewFunc[K, V](func(a, b V) bool { return a > b })
}

// NewMin creates a map where Top returns a key with the minimum value.
func NewMin[K comparable, V Value]() *Map[K, V] {
	return NewFunc[K, V](func(a, b V) bool { return a < b })
}

// NewFunc creates a map ordered by a caller-supplied comparator. less must be
// a strict total order; it is the single source of ordering for every
// operation.
func NewFunc[K comparable, V Value](less LessFunc[V]) *Map[K, V] {
	return &Map[K, V]{
		buckets: bucketlist.New[K, V](less),
		index:   make(map[K]bucketlist.Handle),
		less:    less,
	}
}

// Len returns the number of live keys.
func (m *Map[K, V]) Len() int { return len(m.index) }

// Empty reports whether the map holds no keys.
func (m *Map[K, V]) Empty() bool { return len(m.index) == 0 }

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Get returns the value associated with key. The second result is false when
// the key is absent; the map is never modified.
func (m *Map[K, V]) Get(key K) (V, bool) {
	h, ok := m.index[key]
	if !ok {
		var zero V
		return zero, ok
	}
	return m.buckets.Value(h), true
}

// Top returns a key holding the extreme value plus that value. Which member
// of a tied bucket is returned is unspecified. ok is false when the map is
// empty.
func (m *Map[K, V]) Top() (key K, value V, ok bool) {
	h := m.buckets.Head()
	if h == bucketlist.None {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	k, ok := m.buckets.AnyKey(h)
	if !ok {
		panic("prioritymap: head bucket has no keys")
	}
	return k, m.buckets.Value(h), true
}

// Pop removes and returns a key holding the extreme value. Which member of a
// tied bucket is removed is unspecified. ok is false when the map is empty.
func (m *Map[K, V]) Pop() (key K, value V, ok bool) {
	h := m.buckets.Head()
	if h == bucketlist.None {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	k, ok := m.buckets.AnyKey(h)
	if !ok {
		panic("prioritymap: head bucket has no keys")
	}
	v := m.buckets.Value(h)
	m.buckets.Remove(h, k)
	delete(m.index, k)
	m.buckets.RemoveIfEmpty(h)
	return k, v, true
}

// Erase removes key and reports whether it was present.
func (m *Map[K, V]) Erase(key K) bool {
	h, ok := m.index[key]
	if !ok {
		return false
	}
	m.buckets.Remove(h, key)
	delete(m.index, key)
	m.buckets.RemoveIfEmpty(h)
	return true
}

// Set associates key with value, inserting the key if absent.
func (m *Map[K, V]) Set(key K, value V) {
	if _, ok := m.index[key]; !ok {
		m.insert(key)
	}
	m.update(key, value)
}

// Inc raises key's value by one, inserting the key at the zero value first
// when absent, and returns the new value.
func (m *Map[K, V]) Inc(key K) V {
	return m.Access(key).Inc()
}

// Dec lowers key's value by one, inserting the key at the zero value first
// when absent, and returns the new value.
func (m *Map[K, V]) Dec(key K) V {
	return m.Access(key).Dec()
}

// update is the one primitive every mutation funnels through. It moves key
// from its current bucket to the bucket holding newVal, splicing that bucket
// into existence when no key holds newVal yet. The scan starts at the vacated
// bucket and walks in the direction derived from the comparator, so unit
// steps touch at most one neighbor.
func (m *Map[K, V]) update(key K, newVal V) {
	h, ok := m.index[key]
	if !ok {
		panic("prioritymap: entry key no longer present")
	}
	oldVal := m.buckets.Value(h)
	if oldVal == newVal {
		return
	}
	m.buckets.Remove(h, key)
	nh := m.buckets.LocateOrCreate(h, newVal, m.scanDirection(oldVal, newVal))
	m.buckets.Add(nh, key)
	m.index[key] = nh
	m.buckets.RemoveIfEmpty(h)
}

// insert gives key its initial membership in the zero-value bucket, reusing
// the same splice primitive as update. The scan is rooted at whichever end
// zero sorts nearest, decided by the comparator alone.
func (m *Map[K, V]) insert(key K) {
	var zero V
	dir := bucketlist.TowardHead
	if m.less(zero, zero+1) {
		dir = bucketlist.TowardTail
	}
	h := m.buckets.LocateOrCreate(bucketlist.None, zero, dir)
	m.buckets.Add(h, key)
	m.index[key] = h
}

// scanDirection derives, from the comparator only, which way a key moves when
// its value changes from oldVal to newVal.
func (m *Map[K, V]) scanDirection(oldVal, newVal V) bucketlist.Direction {
	if m.less(newVal, oldVal) {
		return bucketlist.TowardHead
	}
	return bucketlist.TowardTail
}
