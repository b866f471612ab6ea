package Maps

// Entry is a key-value pair held by exactly one slot of a table. Entries are compared by Key only.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) Pair() (K, V) {
	return e.Key, e.Value
}
