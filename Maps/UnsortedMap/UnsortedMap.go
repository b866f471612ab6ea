// Package UnsortedMap is the simplest map: a slice of entries scanned linearly on every call. All operations are O(n).
package UnsortedMap

import (
	"iter"
	"slices"

	"github.com/g-m-twostay/tablemaps/Maps"
)

// New UnsortedMap with room for size entries before the slice grows.
func New[K comparable, V any](size int) *UnsortedMap[K, V] {
	return &UnsortedMap[K, V]{table: make([]Maps.Entry[K, V], 0, size)}
}

// UnsortedMap keeps entries in insertion order, although no caller may rely on it. The zero value is ready to use.
type UnsortedMap[K comparable, V any] struct {
	table []Maps.Entry[K, V]
}

func (u *UnsortedMap[K, V]) index(key K) int {
	for i := range u.table {
		if u.table[i].Key == key {
			return i
		}
	}
	return -1
}

func (u *UnsortedMap[K, V]) Get(key K) (V, error) {
	if i := u.index(key); i >= 0 {
		return u.table[i].Value, nil
	}
	return *new(V), Maps.KeyNotFound(key)
}

func (u *UnsortedMap[K, V]) Lookup(key K) (V, bool) {
	if i := u.index(key); i >= 0 {
		return u.table[i].Value, true
	}
	return *new(V), false
}

// Set overwrites the value of key in place if present and returns false, otherwise appends a new entry and returns
// true. ChainMap counts its entries by this result.
func (u *UnsortedMap[K, V]) Set(key K, val V) bool {
	if i := u.index(key); i >= 0 {
		u.table[i].Value = val
		return false
	}
	u.table = append(u.table, Maps.Entry[K, V]{Key: key, Value: val})
	return true
}

// Delete shifts the entries after key left by one, so the relative order of the rest is kept.
func (u *UnsortedMap[K, V]) Delete(key K) (V, error) {
	i := u.index(key)
	if i < 0 {
		return *new(V), Maps.KeyNotFound(key)
	}
	v := u.table[i].Value
	u.table = slices.Delete(u.table, i, i+1)
	return v, nil
}

func (u *UnsortedMap[K, V]) Contains(key K) bool {
	return u.index(key) >= 0
}

func (u *UnsortedMap[K, V]) Len() int {
	return len(u.table)
}

func (u *UnsortedMap[K, V]) IsEmpty() bool {
	return len(u.table) == 0
}

func (u *UnsortedMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range u.table {
			if !yield(e.Key) {
				return
			}
		}
	}
}

func (u *UnsortedMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range u.table {
			if !yield(e.Value) {
				return
			}
		}
	}
}

func (u *UnsortedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range u.table {
			if !yield(e.Pair()) {
				return
			}
		}
	}
}

// Clear drops all entries but keeps the allocated slice.
func (u *UnsortedMap[K, V]) Clear() {
	clear(u.table)
	u.table = u.table[:0]
}
