package SortedMap

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/g-m-twostay/tablemaps/Maps"
	"github.com/g-m-twostay/tablemaps/Maps/internal/maptest"
	"github.com/google/btree"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Maps.Map[string, int] = (*SortedMap[string, int])(nil)

func TestSortedMap_Conformance(t *testing.T) {
	maptest.Run(t, func() Maps.Map[string, int] { return New[string, int]() })
}

func collect[K comparable, V any](m *SortedMap[K, V], start, stop *K) []K {
	var r []K
	for k := range m.FindRange(start, stop) {
		r = append(r, k)
	}
	return r
}

func ptr(i int) *int {
	return &i
}

func TestSortedMap_OddKeys(t *testing.T) {
	Convey("Given a SortedMap holding 1,3,5,7,9", t, func() {
		M := New[int, string]()
		for _, k := range []int{9, 1, 7, 3, 5} {
			M.Set(k, strings.Repeat("x", k))
		}

		Convey("FindGE(4) is 5", func() {
			k, v, ok := M.FindGE(4)
			So(ok, ShouldBeTrue)
			So(k, ShouldEqual, 5)
			So(v, ShouldEqual, "xxxxx")
		})
		Convey("FindLT(5) is 3", func() {
			k, _, ok := M.FindLT(5)
			So(ok, ShouldBeTrue)
			So(k, ShouldEqual, 3)
		})
		Convey("FindGT(5) is 7", func() {
			k, _, ok := M.FindGT(5)
			So(ok, ShouldBeTrue)
			So(k, ShouldEqual, 7)
		})
		Convey("FindRange(3,8) is 3,5,7", func() {
			So(collect(M, ptr(3), ptr(8)), ShouldResemble, []int{3, 5, 7})
		})
		Convey("open bounds", func() {
			So(collect(M, nil, ptr(5)), ShouldResemble, []int{1, 3})
			So(collect(M, ptr(6), nil), ShouldResemble, []int{7, 9})
			So(collect(M, nil, nil), ShouldResemble, []int{1, 3, 5, 7, 9})
			So(collect(M, ptr(8), ptr(3)), ShouldBeEmpty)
		})
		Convey("queries past the ends are negative", func() {
			_, _, ok := M.FindGE(10)
			So(ok, ShouldBeFalse)
			_, _, ok = M.FindGT(9)
			So(ok, ShouldBeFalse)
			_, _, ok = M.FindLT(1)
			So(ok, ShouldBeFalse)
			_, _, ok = M.FindLE(0)
			So(ok, ShouldBeFalse)
			k, _, ok := M.FindLE(9)
			So(ok, ShouldBeTrue)
			So(k, ShouldEqual, 9)
		})
		Convey("Min and Max", func() {
			k, _, _ := M.Min()
			So(k, ShouldEqual, 1)
			k, _, _ = M.Max()
			So(k, ShouldEqual, 9)
		})
		Convey("At", func() {
			k, _, err := M.At(2)
			So(err, ShouldBeNil)
			So(k, ShouldEqual, 5)
			_, _, err = M.At(5)
			So(errors.Is(err, Maps.ErrIndexOutOfRange), ShouldBeTrue)
		})
	})
}

func TestSortedMap_Empty(t *testing.T) {
	M := New[int, int]()
	_, _, ok := M.Min()
	assert.False(t, ok)
	_, _, ok = M.Max()
	assert.False(t, ok)
	_, _, ok = M.FindGE(0)
	assert.False(t, ok)
	_, _, ok = M.FindLT(0)
	assert.False(t, ok)
	assert.Empty(t, collect(M, nil, nil))
	_, _, err := M.At(0)
	assert.ErrorIs(t, err, Maps.ErrIndexOutOfRange)
}

func TestSortedMap_Sorted(t *testing.T) {
	M := New[int, int]()
	r := rand.New(rand.NewPCG(1, 2))
	for range 2000 {
		k := r.IntN(500)
		if r.IntN(3) == 0 {
			M.Delete(k)
		} else {
			M.Set(k, k)
		}
		for i := 1; i < len(M.table); i++ {
			require.Less(t, M.table[i-1].Key, M.table[i].Key)
		}
	}
}

// FindRange must agree with btree's AscendRange for every pair of bounds.
func TestSortedMap_RangeOracle(t *testing.T) {
	M := New[int, int]()
	T := btree.NewOrderedG[int](4)
	r := rand.New(rand.NewPCG(3, 4))
	for range 100 {
		k := r.IntN(200)
		M.Set(k, k)
		T.ReplaceOrInsert(k)
	}
	for a := -1; a <= 201; a += 7 {
		for b := -1; b <= 201; b += 5 {
			var want []int
			T.AscendRange(a, b, func(k int) bool {
				want = append(want, k)
				return true
			})
			assert.Equal(t, want, collect(M, ptr(a), ptr(b)), "[%d,%d)", a, b)
		}
		var want []int
		T.AscendGreaterOrEqual(a, func(k int) bool {
			want = append(want, k)
			return true
		})
		assert.Equal(t, want, collect(M, ptr(a), nil), "[%d,)", a)
		want = nil
		T.AscendLessThan(a, func(k int) bool {
			want = append(want, k)
			return true
		})
		assert.Equal(t, want, collect(M, nil, ptr(a)), "[,%d)", a)
	}
}

// FindGE and FindLE must agree with gods' Ceiling and Floor.
func TestSortedMap_FloorCeilingOracle(t *testing.T) {
	M := New[int, int]()
	T := treemap.NewWithIntComparator()
	r := rand.New(rand.NewPCG(5, 6))
	for range 100 {
		k := r.IntN(300)
		M.Set(k, -k)
		T.Put(k, -k)
	}
	for q := -5; q < 305; q++ {
		wk, wv := T.Ceiling(q)
		k, v, ok := M.FindGE(q)
		assert.Equal(t, wk != nil, ok, "ge %d", q)
		if ok {
			assert.Equal(t, wk, k)
			assert.Equal(t, wv, v)
		}
		wk, _ = T.Floor(q)
		k, _, ok = M.FindLE(q)
		assert.Equal(t, wk != nil, ok, "le %d", q)
		if ok {
			assert.Equal(t, wk, k)
		}
	}
}

func TestSortedMap_RangeRestartable(t *testing.T) {
	M := New[string, int]()
	for _, k := range []string{"a", "b", "c", "d"} {
		M.Set(k, 0)
	}
	seq := M.Between("b", "d")
	for range 3 {
		var got []string
		for k := range seq {
			got = append(got, k)
		}
		assert.Equal(t, []string{"b", "c"}, got)
	}
	// the sequence searches again, so it sees later insertions
	M.Set("bb", 0)
	var got []string
	for k := range seq {
		got = append(got, k)
	}
	assert.Equal(t, []string{"b", "bb", "c"}, got)
}

func TestSortedMap_Backward(t *testing.T) {
	M := New[int, int]()
	for _, k := range []int{2, 4, 1, 3} {
		M.Set(k, k)
	}
	var got []int
	for k := range M.Backward() {
		got = append(got, k)
	}
	assert.Equal(t, []int{4, 3, 2, 1}, got)
}

func TestSortedMap_NewFunc(t *testing.T) {
	M := NewFunc[string, int](func(a, b string) int {
		return strings.Compare(b, a)
	})
	M.Set("b", 1)
	M.Set("a", 2)
	M.Set("c", 3)
	k, _, _ := M.Min()
	assert.Equal(t, "c", k)
	k, _, _ = M.FindGT("b")
	assert.Equal(t, "a", k)
	v, err := M.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, 2, v)
}
