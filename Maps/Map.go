package Maps

import "iter"

// Map is the surface shared by UnsortedMap, SortedMap, ChainMap and ProbeMap.
// None of the implementations are safe for concurrent use, and a map must not be modified while one of its
// sequences is being ranged over; doing so gives undefined results rather than a panic.
type Map[K comparable, V any] interface {
	// Get the value of key, or an error matching ErrKeyNotFound.
	Get(key K) (V, error)
	// Lookup is Get in comma-ok form.
	Lookup(key K) (V, bool)
	// Set inserts or overwrites key. Returns true if key wasn't present before.
	Set(key K, val V) bool
	// Delete key and return its value, or an error matching ErrKeyNotFound leaving the map unchanged.
	Delete(key K) (V, error)
	Contains(key K) bool
	Len() int
	IsEmpty() bool
	Keys() iter.Seq[K]
	Values() iter.Seq[V]
	All() iter.Seq2[K, V]
	Clear()
}
