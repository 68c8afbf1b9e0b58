package prioritymap

import (
	"iter"

	"github.com/wilderfield/priority-map/bucketlist"
)

// All iterates over every (key, value) pair from the extreme value to the
// least-extreme. Keys within a tied bucket come out in unspecified order. The
// sequence is restartable; mutating the map while a traversal is in progress
// invalidates it.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for h := m.buckets.Head(); h != bucketlist.None; h = m.buckets.Next(h) {
			v := m.buckets.Value(h)
			for k := range m.buckets.Keys(h) {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Backward iterates over every (key, value) pair from the least-extreme value
// to the extreme, under the same contract as All.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for h := m.buckets.Tail(); h != bucketlist.None; h = m.buckets.Prev(h) {
			v := m.buckets.Value(h)
			for k := range m.buckets.Keys(h) {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}
