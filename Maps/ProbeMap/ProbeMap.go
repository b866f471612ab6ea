// Package ProbeMap implements an open addressing hash map with linear probing.
//
// Deleted slots become tombstones rather than empty, because a key inserted after a collision may have probed past
// the deleted slot and must stay reachable. A probe stops only at an empty slot, so at least one empty slot must
// always exist: after every insertion, live entries are kept at or below half of the table by growing, and live
// entries plus tombstones are kept at or below half by rebuilding at the same length.
package ProbeMap

import (
	"iter"

	"github.com/g-m-twostay/tablemaps/Maps"
)

type state byte

const (
	empty state = iota
	tombstone
	occupied
)

type slot[K comparable, V any] struct {
	entry Maps.Entry[K, V]
	state state
}

// New ProbeMap. See Maps.Option for the defaults.
func New[K comparable, V any](opts ...Maps.Option) *ProbeMap[K, V] {
	c := Maps.NewConfig(opts...)
	return &ProbeMap[K, V]{base: Maps.NewHashBase[K](c), slots: make([]slot[K, V], c.Capacity)}
}

type ProbeMap[K comparable, V any] struct {
	base              Maps.HashBase[K]
	slots             []slot[K, V]
	count, tombstones int
}

// findSlot probes from j for key. If key is found it returns (true, its index), otherwise (false, the first
// tombstone or empty slot on the path), which is where key belongs.
func (u *ProbeMap[K, V]) findSlot(j int, key K) (bool, int) {
	avail := -1
	for n := len(u.slots); ; j = (j + 1) % n {
		switch s := &u.slots[j]; s.state {
		case empty:
			if avail < 0 {
				avail = j
			}
			return false, avail
		case tombstone:
			if avail < 0 {
				avail = j
			}
		default:
			if s.entry.Key == key {
				return true, j
			}
		}
	}
}

func (u *ProbeMap[K, V]) find(key K) (bool, int) {
	return u.findSlot(u.base.Index(key, len(u.slots)), key)
}

func (u *ProbeMap[K, V]) Get(key K) (V, error) {
	if found, j := u.find(key); found {
		return u.slots[j].entry.Value, nil
	}
	return *new(V), Maps.KeyNotFound(key)
}

func (u *ProbeMap[K, V]) Lookup(key K) (V, bool) {
	if found, j := u.find(key); found {
		return u.slots[j].entry.Value, true
	}
	return *new(V), false
}

// Set the value of key. Returns true if key is new, in which case the table may be rebuilt.
func (u *ProbeMap[K, V]) Set(key K, val V) bool {
	found, j := u.find(key)
	if found {
		u.slots[j].entry.Value = val
		return false
	}
	if u.slots[j].state == tombstone {
		u.tombstones--
	}
	u.slots[j] = slot[K, V]{entry: Maps.Entry[K, V]{Key: key, Value: val}, state: occupied}
	u.count++
	if n := len(u.slots); Maps.Overloaded(u.count, n) {
		u.resize(Maps.Grow(u.count, n))
	} else if Maps.Overloaded(u.count+u.tombstones, n) {
		u.resize(n)
	}
	return true
}

// Delete marks the slot of key as a tombstone.
func (u *ProbeMap[K, V]) Delete(key K) (V, error) {
	found, j := u.find(key)
	if !found {
		return *new(V), Maps.KeyNotFound(key)
	}
	v := u.slots[j].entry.Value
	u.slots[j] = slot[K, V]{state: tombstone}
	u.count--
	u.tombstones++
	return v, nil
}

// resize moves the occupied slots into a new table of length n. Tombstones aren't carried over.
func (u *ProbeMap[K, V]) resize(n int) {
	old := u.slots
	u.slots = make([]slot[K, V], n)
	for i := range old {
		if old[i].state == occupied {
			_, j := u.find(old[i].entry.Key)
			u.slots[j] = old[i]
		}
	}
	u.base.LogResize("ProbeMap", len(old), n, u.count)
	u.tombstones = 0
}

func (u *ProbeMap[K, V]) Contains(key K) bool {
	found, _ := u.find(key)
	return found
}

func (u *ProbeMap[K, V]) Len() int {
	return u.count
}

func (u *ProbeMap[K, V]) IsEmpty() bool {
	return u.count == 0
}

// Cap is the number of slots.
func (u *ProbeMap[K, V]) Cap() int {
	return len(u.slots)
}

// Tombstones is the number of deleted slots not yet reclaimed.
func (u *ProbeMap[K, V]) Tombstones() int {
	return u.tombstones
}

func (u *ProbeMap[K, V]) Params() Maps.HashParams {
	return u.base.Params
}

// All yields the entries in slot order.
func (u *ProbeMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range u.slots {
			if s := &u.slots[i]; s.state == occupied && !yield(s.entry.Pair()) {
				return
			}
		}
	}
}

func (u *ProbeMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range u.slots {
			if s := &u.slots[i]; s.state == occupied && !yield(s.entry.Key) {
				return
			}
		}
	}
}

func (u *ProbeMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range u.slots {
			if s := &u.slots[i]; s.state == occupied && !yield(s.entry.Value) {
				return
			}
		}
	}
}

// Clear empties every slot, tombstones included, and keeps the table length.
func (u *ProbeMap[K, V]) Clear() {
	clear(u.slots)
	u.count, u.tombstones = 0, 0
}
