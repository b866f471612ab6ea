package HashSet

import (
	"testing"

	"github.com/g-m-twostay/tablemaps/Maps"
	"github.com/g-m-twostay/tablemaps/Sets"
)

var _ Sets.Set[int] = (*HashSet[int])(nil)

func TestHashSet_All(t *testing.T) {
	S := New[int](Maps.WithCapacity(7))
	for i := 0; i < 10; i++ {
		if !S.Put(i) {
			t.Error("wrong put 1")
		}
		if S.Put(i) {
			t.Error("wrong put 2")
		}
	}
	for i := 0; i < 10; i++ {
		if !S.Has(i) {
			t.Error("wrong has 1")
		}
	}
	for i := 0; i < 5; i++ {
		if !S.Remove(i) {
			t.Error("wrong remove 1")
		}
		if S.Remove(i) {
			t.Error("wrong remove 2")
		}
	}
	for i := 0; i < 5; i++ {
		if S.Has(i) {
			t.Error("wrong has 2")
		}
	}
	if S.Size() != 5 {
		t.Error("wrong size", S.Size())
	}
}

func TestHashSet_TakeRange(t *testing.T) {
	S := New[string]()
	if _, ok := S.Take(); ok {
		t.Error("take from empty set")
	}
	for _, e := range []string{"a", "b", "c"} {
		S.Put(e)
	}
	if e, ok := S.Take(); !ok || !S.Has(e) {
		t.Error("wrong take", e)
	}
	seen := map[string]bool{}
	S.Range(func(e string) bool {
		seen[e] = true
		return true
	})
	if len(seen) != 3 {
		t.Error("wrong range", seen)
	}
	n := 0
	S.Range(func(string) bool {
		n++
		return false
	})
	if n != 1 {
		t.Error("range didn't stop", n)
	}
}
