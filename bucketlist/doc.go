// Package bucketlist provides the ordered bucket sequence backing a priority
// map: a doubly-linked list of buckets, each holding one distinct value and
// the set of keys at that value, kept strictly sorted by a caller-supplied
// comparator.
//
// The list is backed by a slot arena. Links are slot indices, not pointers,
// so a Handle held by outside bookkeeping survives any number of insertions
// and removals of other buckets and dies exactly when its own bucket is
// removed. Freed slots go on a free list and are reused, key-set maps
// included, so steady-state churn does not allocate.
//
// The central operation is LocateOrCreate: a directional scan from a starting
// bucket that either finds the bucket already holding a target value or
// splices a new one at the position that keeps the sequence sorted. Callers
// that scan from a key's current bucket make the unit-step move a one-hop
// walk.
package bucketlist
