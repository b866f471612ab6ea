package comparisons

import (
	"math/rand/v2"
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/g-m-twostay/tablemaps/Maps/SortedMap"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// SortedMap against https://github.com/google/btree, https://github.com/emirpasic/gods and
// https://github.com/petar/GoLLRB. SortedMap pays O(n) per random insertion but scans ranges from a flat slice.

const sortedItemCount = 4096

func randomKeys() []int {
	r := rand.New(rand.NewPCG(1, 1))
	return r.Perm(sortedItemCount)
}

func BenchmarkInsertSortedMap(b *testing.B) {
	keys := randomKeys()
	b.ResetTimer()
	for range b.N {
		m := SortedMap.New[int, int]()
		for _, k := range keys {
			m.Set(k, k)
		}
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	keys := randomKeys()
	b.ResetTimer()
	for range b.N {
		m := btree.NewOrderedG[int](32)
		for _, k := range keys {
			m.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkInsertTreeMap(b *testing.B) {
	keys := randomKeys()
	b.ResetTimer()
	for range b.N {
		m := treemap.NewWithIntComparator()
		for _, k := range keys {
			m.Put(k, k)
		}
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	keys := randomKeys()
	b.ResetTimer()
	for range b.N {
		m := llrb.New()
		for _, k := range keys {
			m.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

func BenchmarkRangeSortedMap(b *testing.B) {
	m := SortedMap.New[int, int]()
	for _, k := range randomKeys() {
		m.Set(k, k)
	}
	b.ResetTimer()
	for range b.N {
		n := 0
		for range m.Between(sortedItemCount/4, sortedItemCount/2) {
			n++
		}
		if n != sortedItemCount/4 {
			b.Fail()
		}
	}
}

func BenchmarkRangeBTree(b *testing.B) {
	m := btree.NewOrderedG[int](32)
	for _, k := range randomKeys() {
		m.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for range b.N {
		n := 0
		m.AscendRange(sortedItemCount/4, sortedItemCount/2, func(int) bool {
			n++
			return true
		})
		if n != sortedItemCount/4 {
			b.Fail()
		}
	}
}

func BenchmarkRangeLLRB(b *testing.B) {
	m := llrb.New()
	for _, k := range randomKeys() {
		m.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for range b.N {
		n := 0
		m.AscendRange(llrb.Int(sortedItemCount/4), llrb.Int(sortedItemCount/2), func(llrb.Item) bool {
			n++
			return true
		})
		if n != sortedItemCount/4 {
			b.Fail()
		}
	}
}

func BenchmarkCeilingSortedMap(b *testing.B) {
	m := SortedMap.New[int, int]()
	for _, k := range randomKeys() {
		m.Set(2*k, k)
	}
	b.ResetTimer()
	for range b.N {
		for q := 0; q < 2*sortedItemCount; q += 7 {
			if _, _, ok := m.FindGE(q); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkCeilingTreeMap(b *testing.B) {
	m := treemap.NewWithIntComparator()
	for _, k := range randomKeys() {
		m.Put(2*k, k)
	}
	b.ResetTimer()
	for range b.N {
		for q := 0; q < 2*sortedItemCount; q += 7 {
			if k, _ := m.Ceiling(q); k == nil {
				b.Fail()
			}
		}
	}
}
