// Package SortedMap implements a map on a slice kept in increasing key order.
// Lookups are O(log n) binary searches; insertions and deletions are O(n) because the tail of the slice shifts.
// Every ordered query (Min, Max, FindGE, FindGT, FindLT, FindLE, FindRange) is derived from the same search.
package SortedMap

import (
	"cmp"
	"iter"
	"slices"

	"github.com/g-m-twostay/tablemaps/Maps"
	"golang.org/x/exp/constraints"
)

// New SortedMap ordered by cmp.Compare.
func New[K constraints.Ordered, V any]() *SortedMap[K, V] {
	return &SortedMap[K, V]{cmp: cmp.Compare[K]}
}

// NewFunc creates a SortedMap ordered by compare, which must be a strict weak ordering consistent with ==.
func NewFunc[K comparable, V any](compare func(a, b K) int) *SortedMap[K, V] {
	return &SortedMap[K, V]{cmp: compare}
}

// SortedMap holds entries with table[i].Key < table[i+1].Key. The zero value isn't usable, it has no comparison.
type SortedMap[K comparable, V any] struct {
	table []Maps.Entry[K, V]
	cmp   func(K, K) int
}

// findIndex returns j such that every key in table[:j] is less than key and every key in table[j:] is not.
// j == len(table) if no key qualifies.
func (u *SortedMap[K, V]) findIndex(key K) int {
	low, high := 0, len(u.table)-1
	for low <= high {
		mid := int(uint(low+high) >> 1)
		switch c := u.cmp(key, u.table[mid].Key); {
		case c == 0:
			return mid
		case c < 0:
			high = mid - 1
		default:
			low = mid + 1
		}
	}
	return high + 1
}

// match returns the index of key, or -1.
func (u *SortedMap[K, V]) match(key K) int {
	if j := u.findIndex(key); j < len(u.table) && u.cmp(u.table[j].Key, key) == 0 {
		return j
	}
	return -1
}

func (u *SortedMap[K, V]) at(j int) (K, V, bool) {
	if j < 0 || j >= len(u.table) {
		return *new(K), *new(V), false
	}
	return u.table[j].Key, u.table[j].Value, true
}

func (u *SortedMap[K, V]) Get(key K) (V, error) {
	if j := u.match(key); j >= 0 {
		return u.table[j].Value, nil
	}
	return *new(V), Maps.KeyNotFound(key)
}

func (u *SortedMap[K, V]) Lookup(key K) (V, bool) {
	if j := u.match(key); j >= 0 {
		return u.table[j].Value, true
	}
	return *new(V), false
}

func (u *SortedMap[K, V]) Set(key K, val V) bool {
	j := u.findIndex(key)
	if j < len(u.table) && u.cmp(u.table[j].Key, key) == 0 {
		u.table[j].Value = val
		return false
	}
	u.table = slices.Insert(u.table, j, Maps.Entry[K, V]{Key: key, Value: val})
	return true
}

func (u *SortedMap[K, V]) Delete(key K) (V, error) {
	j := u.match(key)
	if j < 0 {
		return *new(V), Maps.KeyNotFound(key)
	}
	v := u.table[j].Value
	u.table = slices.Delete(u.table, j, j+1)
	return v, nil
}

func (u *SortedMap[K, V]) Contains(key K) bool {
	return u.match(key) >= 0
}

func (u *SortedMap[K, V]) Len() int {
	return len(u.table)
}

func (u *SortedMap[K, V]) IsEmpty() bool {
	return len(u.table) == 0
}

// At returns the entry of rank i, 0 being the smallest key.
func (u *SortedMap[K, V]) At(i int) (K, V, error) {
	if k, v, ok := u.at(i); ok {
		return k, v, nil
	}
	return *new(K), *new(V), Maps.IndexOutOfRange(i, len(u.table))
}

// Min entry. ok is false if the map is empty.
func (u *SortedMap[K, V]) Min() (K, V, bool) {
	return u.at(0)
}

// Max entry. ok is false if the map is empty.
func (u *SortedMap[K, V]) Max() (K, V, bool) {
	return u.at(len(u.table) - 1)
}

// FindGE returns the entry with the least key >= key.
func (u *SortedMap[K, V]) FindGE(key K) (K, V, bool) {
	return u.at(u.findIndex(key))
}

// FindGT returns the entry with the least key > key.
func (u *SortedMap[K, V]) FindGT(key K) (K, V, bool) {
	j := u.findIndex(key)
	if j < len(u.table) && u.cmp(u.table[j].Key, key) == 0 {
		j++
	}
	return u.at(j)
}

// FindLT returns the entry with the greatest key < key.
func (u *SortedMap[K, V]) FindLT(key K) (K, V, bool) {
	return u.at(u.findIndex(key) - 1)
}

// FindLE returns the entry with the greatest key <= key.
func (u *SortedMap[K, V]) FindLE(key K) (K, V, bool) {
	j := u.findIndex(key)
	if j < len(u.table) && u.cmp(u.table[j].Key, key) == 0 {
		return u.at(j)
	}
	return u.at(j - 1)
}

// FindRange yields the entries with start <= key < stop in increasing order. A nil start begins at the minimum and a
// nil stop runs through the maximum. The search for start is repeated every time the sequence is ranged over.
func (u *SortedMap[K, V]) FindRange(start, stop *K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		j := 0
		if start != nil {
			j = u.findIndex(*start)
		}
		for ; j < len(u.table); j++ {
			if stop != nil && u.cmp(u.table[j].Key, *stop) >= 0 {
				return
			}
			if !yield(u.table[j].Pair()) {
				return
			}
		}
	}
}

// Between is FindRange with both bounds present.
func (u *SortedMap[K, V]) Between(start, stop K) iter.Seq2[K, V] {
	return u.FindRange(&start, &stop)
}

func (u *SortedMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range u.table {
			if !yield(e.Key) {
				return
			}
		}
	}
}

func (u *SortedMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range u.table {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// All entries in increasing key order.
func (u *SortedMap[K, V]) All() iter.Seq2[K, V] {
	return u.FindRange(nil, nil)
}

// Backward yields all entries in decreasing key order.
func (u *SortedMap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for j := len(u.table) - 1; j >= 0; j-- {
			if !yield(u.table[j].Pair()) {
				return
			}
		}
	}
}

func (u *SortedMap[K, V]) Clear() {
	clear(u.table)
	u.table = u.table[:0]
}
