package timsort_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shibukawa/timsort"
)

func less(a, b int) bool { return a < b }

func TestBinarySearchFuncFindsInsertionPoint(t *testing.T) {
	sorted := []int{1, 3, 3, 5, 7, 9}

	assert.Equal(t, 0, timsort.BinarySearchFunc(sorted, 0, identity, less))
	assert.Equal(t, 1, timsort.BinarySearchFunc(sorted, 3, identity, less))
	assert.Equal(t, 6, timsort.BinarySearchFunc(sorted, 100, identity, less))
	assert.Equal(t, 0, timsort.BinarySearchFunc([]int{}, 5, identity, less))
}

func TestIndexOfFuncAndContainsFunc(t *testing.T) {
	sorted := []int{2, 4, 6, 8, 10}

	assert.Equal(t, 2, timsort.IndexOfFunc(sorted, 6, identity, less))
	assert.Equal(t, -1, timsort.IndexOfFunc(sorted, 7, identity, less))
	assert.True(t, timsort.ContainsFunc(sorted, 8, identity, less))
	assert.False(t, timsort.ContainsFunc(sorted, 9, identity, less))
	assert.False(t, timsort.ContainsFunc([]int{}, 1, identity, less))
}

func TestInsertFuncKeepsSliceSorted(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("InsertFunc preserves sortedness", prop.ForAll(func(values []int, item int) bool {
		sorted := append([]int(nil), values...)
		timsort.Sort(sorted, less)

		sorted = timsort.InsertFunc(sorted, item, identity, less)

		for i := 1; i < len(sorted); i++ {
			if sorted[i-1] > sorted[i] {
				return false
			}
		}
		return len(sorted) == len(values)+1
	}, gen.SliceOf(gen.Int()), gen.Int()))

	properties.TestingRun(t)
}

func TestInsertFuncStableAmongEqualKeys(t *testing.T) {
	type labeled struct {
		key   int
		label string
	}
	sorted := []labeled{{1, "a"}, {1, "b"}, {1, "c"}}
	key := func(l labeled) int { return l.key }

	got := timsort.InsertFunc(sorted, labeled{1, "new"}, key, less)

	require.Equal(t, []labeled{{1, "a"}, {1, "b"}, {1, "c"}, {1, "new"}}, got)
}

func TestRemoveFuncDeletesFirstMatch(t *testing.T) {
	sorted := []int{1, 2, 2, 3, 4}

	got := timsort.RemoveFunc(sorted, 2, identity, less)
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	got = timsort.RemoveFunc(got, 100, identity, less)
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestIterateOverFuncWalksInOrder(t *testing.T) {
	a := []int{1, 4, 7}
	b := []int{2, 3, 8}

	var out []int
	var sources []int
	timsort.IterateOverFunc(identity, less, func(item int, src int) {
		out = append(out, item)
		sources = append(sources, src)
	}, a, b)

	assert.Equal(t, []int{1, 2, 3, 4, 7, 8}, out)
	assert.Equal(t, []int{0, 1, 1, 0, 0, 1}, sources)
}

func TestUnionFuncMergesPreservingDuplicates(t *testing.T) {
	a := []int{1, 3, 3}
	b := []int{2, 3}

	got := timsort.UnionFunc(identity, less, a, b)
	assert.Equal(t, []int{1, 2, 3, 3, 3}, got)

	assert.Nil(t, timsort.UnionFunc[int, int](identity, less))
}

func TestDifferenceFuncRemovesSharedKeys(t *testing.T) {
	a := []int{1, 2, 3, 4, 5}
	b := []int{2, 4}

	got := timsort.DifferenceFunc(a, b, identity, less)
	assert.Equal(t, []int{1, 3, 5}, got)
}

func TestIntersectionFuncFindsSharedKeys(t *testing.T) {
	a := []int{1, 2, 3, 4}
	b := []int{2, 4, 6}
	c := []int{2, 4, 4, 8}

	got := timsort.IntersectionFunc(identity, less, a, b, c)
	assert.Equal(t, []int{2, 4}, got)

	assert.Nil(t, timsort.IntersectionFunc[int, int](identity, less))
}

func identity(v int) int { return v }
