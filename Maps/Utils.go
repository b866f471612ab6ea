package Maps

// Helpers that work on any Map.

// GetOrDefault returns the value of key, or def if key is absent.
func GetOrDefault[K comparable, V any](m Map[K, V], key K, def V) V {
	if v, ok := m.Lookup(key); ok {
		return v
	}
	return def
}

// SetDefault returns the value of key, inserting val first if key is absent.
func SetDefault[K comparable, V any](m Map[K, V], key K, val V) V {
	if v, ok := m.Lookup(key); ok {
		return v
	}
	m.Set(key, val)
	return val
}

// PopItem deletes an arbitrary entry of m and returns it. ok is false if m is empty.
func PopItem[K comparable, V any](m Map[K, V]) (k K, v V, ok bool) {
	for k = range m.Keys() {
		ok = true
		break
	}
	if ok {
		v, _ = m.Delete(k)
	}
	return
}

// Update sets every entry of src into dst and returns how many keys were new to dst.
func Update[K comparable, V any](dst, src Map[K, V]) (added int) {
	for k, v := range src.All() {
		if dst.Set(k, v) {
			added++
		}
	}
	return
}

// Collect copies m into a native map.
func Collect[K comparable, V any](m Map[K, V]) map[K]V {
	r := make(map[K]V, m.Len())
	for k, v := range m.All() {
		r[k] = v
	}
	return r
}

// Equal reports whether a and b hold the same keys with values equal under eq.
func Equal[K comparable, V any](a, b Map[K, V], eq func(V, V) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for k, v := range a.All() {
		if w, ok := b.Lookup(k); !ok || !eq(v, w) {
			return false
		}
	}
	return true
}
