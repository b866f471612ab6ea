// Package maptest checks the behavior every Maps.Map implementation shares.
package maptest

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/g-m-twostay/tablemaps/Maps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns a new empty map.
type Factory func() Maps.Map[string, int]

// Run all conformance checks against maps made by f.
func Run(t *testing.T, f Factory) {
	t.Run("RoundTrip", func(t *testing.T) { RoundTrip(t, f()) })
	t.Run("Idempotent", func(t *testing.T) { Idempotent(t, f()) })
	t.Run("DeleteMissing", func(t *testing.T) { DeleteMissing(t, f()) })
	t.Run("Oracle", func(t *testing.T) { Oracle(t, f(), 1) })
	t.Run("Iteration", func(t *testing.T) { Iteration(t, f()) })
	t.Run("Clear", func(t *testing.T) { Clear(t, f()) })
	t.Run("Overwrite100", func(t *testing.T) { Overwrite100(t, f()) })
	t.Run("Helpers", func(t *testing.T) { Helpers(t, f(), f()) })
}

func RoundTrip(t *testing.T, m Maps.Map[string, int]) {
	require.True(t, m.IsEmpty())
	for i := range 200 {
		require.True(t, m.Set(strconv.Itoa(i), i))
		v, err := m.Get(strconv.Itoa(i))
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	for i := range 200 {
		v, ok := m.Lookup(strconv.Itoa(i))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	assert.Equal(t, 200, m.Len())
	assert.False(t, m.IsEmpty())
}

func Idempotent(t *testing.T, m Maps.Map[string, int]) {
	assert.True(t, m.Set("k", 1))
	for range 5 {
		assert.False(t, m.Set("k", 1))
		assert.Equal(t, 1, m.Len())
	}
}

func DeleteMissing(t *testing.T, m Maps.Map[string, int]) {
	_, err := m.Delete("never")
	assert.ErrorIs(t, err, Maps.ErrKeyNotFound)
	assert.Equal(t, 0, m.Len())
	for i := range 20 {
		m.Set(strconv.Itoa(i), i)
	}
	_, err = m.Delete("never")
	assert.ErrorIs(t, err, Maps.ErrKeyNotFound)
	_, err = m.Get("never")
	assert.ErrorIs(t, err, Maps.ErrKeyNotFound)
	assert.False(t, m.Contains("never"))
	assert.Equal(t, 20, m.Len())

	v, err := m.Delete("7")
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	_, err = m.Delete("7")
	assert.ErrorIs(t, err, Maps.ErrKeyNotFound)
	assert.Equal(t, 19, m.Len())
}

// Oracle runs a random mix of operations against m and a native map and compares them after every step.
func Oracle(t *testing.T, m Maps.Map[string, int], seed uint64) {
	r := rand.New(rand.NewPCG(seed, seed))
	want := map[string]int{}
	for step := range 5000 {
		k := strconv.Itoa(r.IntN(300))
		switch r.IntN(4) {
		case 0, 1:
			_, existed := want[k]
			want[k] = step
			require.Equal(t, !existed, m.Set(k, step), "set %s", k)
		case 2:
			v, err := m.Delete(k)
			if w, ok := want[k]; ok {
				require.NoError(t, err)
				require.Equal(t, w, v)
				delete(want, k)
			} else {
				require.ErrorIs(t, err, Maps.ErrKeyNotFound)
			}
		default:
			v, err := m.Get(k)
			if w, ok := want[k]; ok {
				require.NoError(t, err)
				require.Equal(t, w, v)
			} else {
				require.ErrorIs(t, err, Maps.ErrKeyNotFound)
			}
		}
		require.Equal(t, len(want), m.Len())
	}
	assert.Equal(t, want, Maps.Collect(m))
}

func Iteration(t *testing.T, m Maps.Map[string, int]) {
	want := map[string]int{}
	for i := range 100 {
		want[strconv.Itoa(i)] = i * 2
		m.Set(strconv.Itoa(i), i*2)
	}
	var keys []string
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	assert.Len(t, keys, 100)
	assert.ElementsMatch(t, keysOf(want), keys)

	var vals []int
	for v := range m.Values() {
		vals = append(vals, v)
	}
	assert.Len(t, vals, 100)

	n := 0
	for range m.All() {
		if n++; n == 10 {
			break
		}
	}
	assert.Equal(t, 10, n)
	// sequences can be ranged over again
	assert.Equal(t, want, Maps.Collect(m))
	assert.Equal(t, want, Maps.Collect(m))
}

func Clear(t *testing.T, m Maps.Map[string, int]) {
	for i := range 50 {
		m.Set(strconv.Itoa(i), i)
	}
	m.Clear()
	assert.True(t, m.IsEmpty())
	assert.False(t, m.Contains("3"))
	for range m.Keys() {
		t.Fatal("cleared map yielded a key")
	}
	assert.True(t, m.Set("3", 3))
	assert.Equal(t, 1, m.Len())
}

// Overwrite100 inserts "0".."99", checks them, then overwrites all of them with 1.
func Overwrite100(t *testing.T, m Maps.Map[string, int]) {
	for i := range 100 {
		m.Set(strconv.Itoa(i), i)
	}
	for i := range 100 {
		require.True(t, m.Contains(strconv.Itoa(i)), "missing %d", i)
		m.Set(strconv.Itoa(i), 1)
	}
	for i := range 100 {
		v, err := m.Get(strconv.Itoa(i))
		require.NoError(t, err)
		require.Equal(t, 1, v)
	}
	assert.Equal(t, 100, m.Len())
}

func Helpers(t *testing.T, a, b Maps.Map[string, int]) {
	assert.Equal(t, 5, Maps.GetOrDefault(a, "x", 5))
	assert.Equal(t, 6, Maps.SetDefault(a, "x", 6))
	assert.Equal(t, 6, Maps.SetDefault(a, "x", 7))
	a.Set("y", 1)

	b.Set("y", 2)
	assert.Equal(t, 1, Maps.Update(b, a))
	eq := func(x, y int) bool { return x == y }
	assert.True(t, Maps.Equal(a, b, eq))
	b.Set("z", 0)
	assert.False(t, Maps.Equal(a, b, eq))

	var popped []string
	for !b.IsEmpty() {
		k, _, ok := Maps.PopItem(b)
		require.True(t, ok)
		popped = append(popped, k)
	}
	assert.ElementsMatch(t, []string{"x", "y", "z"}, popped)
	_, _, ok := Maps.PopItem(b)
	assert.False(t, ok)
}

func keysOf(m map[string]int) []string {
	r := make([]string, 0, len(m))
	for k := range m {
		r = append(r, k)
	}
	slices.Sort(r)
	return r
}
