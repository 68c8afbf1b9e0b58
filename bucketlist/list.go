package bucketlist

import "iter"

// Handle identifies a bucket's slot in the arena. Handles of live buckets stay
// valid across insertions and removals of other buckets; a handle is dead the
// moment its own bucket is removed.
type Handle int32

// None is the null handle.
const None Handle = -1

// Direction selects which way LocateOrCreate walks the sequence.
type Direction int8

const (
	// TowardTail walks away from the extreme end.
	TowardTail Direction = iota
	// TowardHead walks toward the extreme end.
	TowardHead
)

// bucket is one slot in the arena: a distinct value plus the set of keys
// currently at that value. Free slots thread their next field through the
// free list and hold no keys.
type bucket[K comparable, V any] struct {
	value V
	keys  map[K]struct{}
	prev  Handle
	next  Handle
}

// List keeps buckets sorted by value, head first under the less function.
// Storage is a slot arena with intrusive links so that bucket identity is an
// index, not a pointer, and splicing never moves live buckets.
type List[K comparable, V comparable] struct {
	arena []bucket[K, V]
	head  Handle
	tail  Handle
	free  Handle
	count int
	less  func(a, b V) bool
}

// New creates an empty list ordered by less. less must be a strict order;
// buckets are kept so that less(value(h), value(Next(h))) holds for every
// adjacent pair.
func New[K comparable, V comparable](less func(a, b V) bool) *List[K, V] {
	return &List[K, V]{
		head: None,
		tail: None,
		free: None,
		less: less,
	}
}

// Len returns the number of live buckets.
func (l *List[K, V]) Len() int { return l.count }

// Head returns the bucket holding the extreme value, or None.
func (l *List[K, V]) Head() Handle { return l.head }

// Tail returns the bucket holding the least-extreme value, or None.
func (l *List[K, V]) Tail() Handle { return l.tail }

// Next returns the bucket after h, or None.
func (l *List[K, V]) Next(h Handle) Handle { return l.arena[h].next }

// Prev returns the bucket before h, or None.
func (l *List[K, V]) Prev(h Handle) Handle { return l.arena[h].prev }

// Value returns the value held by bucket h.
func (l *List[K, V]) Value(h Handle) V { return l.arena[h].value }

// Add puts key into bucket h's key set.
func (l *List[K, V]) Add(h Handle, key K) {
	l.arena[h].keys[key] = struct{}{}
}

// Remove deletes key from bucket h's key set. The bucket is left in place even
// when emptied; callers drop it with RemoveIfEmpty once they are done
// scanning relative to it.
func (l *List[K, V]) Remove(h Handle, key K) {
	delete(l.arena[h].keys, key)
}

// KeyCount returns the number of keys in bucket h.
func (l *List[K, V]) KeyCount(h Handle) int { return len(l.arena[h].keys) }

// AnyKey returns an arbitrary key from bucket h. Which member of a bucket is
// returned is unspecified.
func (l *List[K, V]) AnyKey(h Handle) (K, bool) {
	for k := range l.arena[h].keys {
		return k, true
	}
	var zero K
	return zero, false
}

// Keys iterates over bucket h's key set in unspecified order.
func (l *List[K, V]) Keys(h Handle) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range l.arena[h].keys {
			if !yield(k) {
				return
			}
		}
	}
}

// LocateOrCreate walks from h in dir until it finds the bucket holding target
// (returned as-is) or the point where inserting target keeps the sequence
// strictly ordered (a new bucket is spliced there). h == None starts the walk
// at the head for TowardTail and at the tail for TowardHead. Handles of other
// buckets remain valid across the call.
func (l *List[K, V]) LocateOrCreate(h Handle, target V, dir Direction) Handle {
	if dir == TowardTail {
		if h == None {
			h = l.head
		}
		for h != None {
			v := l.arena[h].value
			if v == target {
				return h
			}
			if l.less(target, v) {
				// target sorts before h: splice between Prev(h) and h.
				return l.splice(l.arena[h].prev, h, target)
			}
			h = l.arena[h].next
		}
		return l.splice(l.tail, None, target)
	}

	if h == None {
		h = l.tail
	}
	for h != None {
		v := l.arena[h].value
		if v == target {
			return h
		}
		if l.less(v, target) {
			// h sorts before target: splice between h and Next(h).
			return l.splice(h, l.arena[h].next, target)
		}
		h = l.arena[h].prev
	}
	return l.splice(None, l.head, target)
}

// RemoveIfEmpty unlinks bucket h and returns its slot to the free list when
// its key set has emptied. Reports whether the bucket was removed.
func (l *List[K, V]) RemoveIfEmpty(h Handle) bool {
	if len(l.arena[h].keys) != 0 {
		return false
	}
	b := &l.arena[h]
	if b.prev != None {
		l.arena[b.prev].next = b.next
	} else {
		l.head = b.next
	}
	if b.next != None {
		l.arena[b.next].prev = b.prev
	} else {
		l.tail = b.prev
	}
	b.prev = None
	b.next = l.free
	l.free = h
	l.count--
	return true
}

// splice links a fresh bucket holding value between prev and next, either of
// which may be None at the ends of the sequence.
func (l *List[K, V]) splice(prev, next Handle, value V) Handle {
	h := l.alloc(value)
	b := &l.arena[h]
	b.prev = prev
	b.next = next
	if prev != None {
		l.arena[prev].next = h
	} else {
		l.head = h
	}
	if next != None {
		l.arena[next].prev = h
	} else {
		l.tail = h
	}
	l.count++
	return h
}

// alloc takes a slot off the free list, growing the arena when it is empty.
// Key-set maps are retained across reuse so steady-state churn allocates
// nothing.
func (l *List[K, V]) alloc(value V) Handle {
	if l.free != None {
		h := l.free
		l.free = l.arena[h].next
		l.arena[h].value = value
		return h
	}
	l.arena = append(l.arena, bucket[K, V]{
		value: value,
		keys:  make(map[K]struct{}),
	})
	return Handle(len(l.arena) - 1)
}
