package Sets

// Set of comparable elements. Like the maps it's built on, a Set isn't safe for concurrent use.
type Set[E any] interface {
	// Put e into the set. Returns true if e wasn't present.
	Put(E) bool
	Has(E) bool
	// Remove e from the set. Returns true if e was present.
	Remove(E) bool
	Size() int
	// Take an arbitrary element. ok is false if the set is empty.
	Take() (E, bool)
	// Range calls f on each element until f returns false.
	Range(func(E) bool)
}
