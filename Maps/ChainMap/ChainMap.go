// Package ChainMap implements a hash map that resolves collisions by separate chaining.
// Each bucket is an UnsortedMap created the first time a key hashes to it, and dropped again once it's emptied.
package ChainMap

import (
	"iter"

	"github.com/g-m-twostay/tablemaps/Maps"
	"github.com/g-m-twostay/tablemaps/Maps/UnsortedMap"
)

// New ChainMap. See Maps.Option for the defaults.
func New[K comparable, V any](opts ...Maps.Option) *ChainMap[K, V] {
	c := Maps.NewConfig(opts...)
	return &ChainMap[K, V]{base: Maps.NewHashBase[K](c), buckets: make([]*UnsortedMap.UnsortedMap[K, V], c.Capacity)}
}

// ChainMap holds count entries spread over buckets; nil buckets are empty.
type ChainMap[K comparable, V any] struct {
	base    Maps.HashBase[K]
	buckets []*UnsortedMap.UnsortedMap[K, V]
	count   int
}

func (u *ChainMap[K, V]) locate(key K) (int, *UnsortedMap.UnsortedMap[K, V]) {
	j := u.base.Index(key, len(u.buckets))
	return j, u.buckets[j]
}

func (u *ChainMap[K, V]) Get(key K) (V, error) {
	if _, b := u.locate(key); b != nil {
		return b.Get(key)
	}
	return *new(V), Maps.KeyNotFound(key)
}

func (u *ChainMap[K, V]) Lookup(key K) (V, bool) {
	if _, b := u.locate(key); b != nil {
		return b.Lookup(key)
	}
	return *new(V), false
}

// Set the value of key. Returns true if key is new, in which case the table may grow.
func (u *ChainMap[K, V]) Set(key K, val V) bool {
	j, b := u.locate(key)
	if b == nil {
		b = UnsortedMap.New[K, V](1)
		u.buckets[j] = b
	}
	if !b.Set(key, val) {
		return false
	}
	if u.count++; Maps.Overloaded(u.count, len(u.buckets)) {
		u.resize(Maps.Grow(u.count, len(u.buckets)))
	}
	return true
}

func (u *ChainMap[K, V]) Delete(key K) (V, error) {
	j, b := u.locate(key)
	if b == nil {
		return *new(V), Maps.KeyNotFound(key)
	}
	v, err := b.Delete(key)
	if err != nil {
		return v, err
	}
	u.count--
	if b.IsEmpty() {
		u.buckets[j] = nil
	}
	return v, nil
}

// resize rebuilds the table with n buckets. count doesn't change.
func (u *ChainMap[K, V]) resize(n int) {
	old := u.buckets
	u.buckets = make([]*UnsortedMap.UnsortedMap[K, V], n)
	for _, b := range old {
		if b == nil {
			continue
		}
		for k, v := range b.All() {
			j, nb := u.locate(k)
			if nb == nil {
				nb = UnsortedMap.New[K, V](1)
				u.buckets[j] = nb
			}
			nb.Set(k, v)
		}
	}
	u.base.LogResize("ChainMap", len(old), n, u.count)
}

func (u *ChainMap[K, V]) Contains(key K) bool {
	_, b := u.locate(key)
	return b != nil && b.Contains(key)
}

func (u *ChainMap[K, V]) Len() int {
	return u.count
}

func (u *ChainMap[K, V]) IsEmpty() bool {
	return u.count == 0
}

// Cap is the number of buckets.
func (u *ChainMap[K, V]) Cap() int {
	return len(u.buckets)
}

func (u *ChainMap[K, V]) Params() Maps.HashParams {
	return u.base.Params
}

// All yields the entries bucket by bucket. The order changes whenever the table grows.
func (u *ChainMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range u.buckets {
			if b == nil {
				continue
			}
			for k, v := range b.All() {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

func (u *ChainMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range u.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (u *ChainMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range u.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Clear drops every bucket but keeps the table length.
func (u *ChainMap[K, V]) Clear() {
	clear(u.buckets)
	u.count = 0
}
