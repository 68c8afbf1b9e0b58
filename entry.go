package prioritymap

// Entry is a mutable view of one key's value, the Go rendition of the
// operator-style surface (++m[k], --m[k], m[k] = v, v := m[k]). It holds no
// state beyond the key, so views stay coherent across any interleaving of
// mutations on the same map. Any use of a view whose key has since been
// erased panics.
type Entry[K comparable, V Value] struct {
	m   *Map[K, V]
	key K
}

// Access returns a mutable view of key's value, inserting the key at the zero
// value first when absent. It always succeeds.
func (m *Map[K, V]) Access(key K) Entry[K, V] {
	if _, ok := m.index[key]; !ok {
		m.insert(key)
	}
	return Entry[K, V]{m: m, key: key}
}

// Inc raises the value by one and returns the new value.
func (e Entry[K, V]) Inc() V {
	v := e.Value() + 1
	e.m.update(e.key, v)
	return v
}

// Dec lowers the value by one and returns the new value.
func (e Entry[K, V]) Dec() V {
	v := e.Value() - 1
	e.m.update(e.key, v)
	return v
}

// Assign sets the value.
func (e Entry[K, V]) Assign(v V) {
	e.m.update(e.key, v)
}

// Value reads the current value.
func (e Entry[K, V]) Value() V {
	v, ok := e.m.Get(e.key)
	if !ok {
		panic("prioritymap: entry key no longer present")
	}
	return v
}
