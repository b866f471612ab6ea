package HashSet

import (
	"github.com/g-m-twostay/tablemaps/Maps"
	"github.com/g-m-twostay/tablemaps/Maps/ProbeMap"
)

// New HashSet of type E. opts are passed to the underlying ProbeMap.
func New[E comparable](opts ...Maps.Option) *HashSet[E] {
	return &HashSet[E]{m: ProbeMap.New[E, struct{}](opts...)}
}

// HashSet is a ProbeMap with empty values.
type HashSet[E comparable] struct {
	m *ProbeMap.ProbeMap[E, struct{}]
}

// Size of the set.
func (u *HashSet[E]) Size() int {
	return u.m.Len()
}

// Put e into the set. Returns true if e is new.
func (u *HashSet[E]) Put(e E) bool {
	return u.m.Set(e, struct{}{})
}

// Has e in the set.
func (u *HashSet[E]) Has(e E) bool {
	return u.m.Contains(e)
}

// Remove e from the set. Returns true if the removal is successful.
func (u *HashSet[E]) Remove(e E) bool {
	_, err := u.m.Delete(e)
	return err == nil
}

// Take an arbitrary element from the set without removing it. Doesn't guarantee which element it will return.
func (u *HashSet[E]) Take() (e E, ok bool) {
	for e = range u.m.Keys() {
		return e, true
	}
	return
}

// Range over elements and call f on them. Stops when f returns false.
// The set must not be modified during the iteration.
func (u *HashSet[E]) Range(f func(E) bool) {
	for e := range u.m.Keys() {
		if !f(e) {
			return
		}
	}
}
