// Package prioritymap implements a keyed priority container: every key carries
// a numeric value, and the key holding the extreme (maximum by default, or
// minimum) value is retrievable in O(1). Unit-step updates, the increment and
// decrement traffic that dominates frequency counting, LFU-style cache
// eviction, and in-degree tracking for topological sorts, are O(1) amortized,
// where a comparison-based heap would pay O(log n) per update.
//
// Internally the map keeps one bucket per distinct live value, sorted by the
// comparator, with each bucket holding the set of keys currently at that
// value. A hash index maps each key to a stable handle on its bucket, so an
// update removes the key from its bucket, walks at most a few neighbors to
// find or splice the target bucket, and reindexes. There is no per-key tree
// or heap maintenance.
//
// Key features:
//   - Generic over any comparable key and any integer or float value
//   - O(1) Top and Pop, O(1) amortized increment/decrement
//   - Configurable ordering: max-first (default), min-first, or a custom
//     strict order
//   - Mutable entry views for counter-style call sites
//   - Lazy forward and backward traversal via iter.Seq2
//
// Basic usage:
//
//	// Count word frequencies, most frequent first.
//	pm := prioritymap.New[string, int]()
//	for _, w := range words {
//	    pm.Inc(w)
//	}
//	word, count, _ := pm.Top()
//
//	// Track in-degrees, smallest first.
//	deg := prioritymap.NewMin[string, int]()
//	deg.Access("a")       // materialize at 0
//	deg.Inc("b")          // a -> b
//	for n, d := range deg.All() {
//	    fmt.Println(n, d) // ascending by in-degree
//	}
//
// Arbitrary-value assignment (Set, Entry.Assign) is supported but degrades to
// a scan over the distinct live values; the structure is tuned for unit steps.
// A Map is not safe for concurrent use.
package prioritymap
