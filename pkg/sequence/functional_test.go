package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectPreservesOrder(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, From([]int{3, 1, 2}).Collect())
	assert.Empty(t, From([]int(nil)).Collect())
}

func TestFromMapVisitsAllValues(t *testing.T) {
	got := FromMap(map[string]int{"a": 1, "b": 2, "c": 3}).Collect()
	assert.ElementsMatch(t, []int{1, 2, 3}, got)
}

func TestFilterThenCount(t *testing.T) {
	even := From([]int{1, 2, 3, 4, 5, 6}).Filter(func(v int) bool { return v%2 == 0 })
	assert.Equal(t, 3, even.Count())
}

func TestEachPassesElementsDownstream(t *testing.T) {
	var seen []int
	got := From([]int{1, 2, 3}).
		Each(func(v int) { seen = append(seen, v) }).
		Collect()

	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.Equal(t, []int{1, 2, 3}, got, "Each must not swallow the stream")
}

func TestFilterEachCountChain(t *testing.T) {
	var visited []int
	n := From([]int{1, 2, 3, 4}).
		Filter(func(v int) bool { return v > 2 }).
		Each(func(v int) { visited = append(visited, v) }).
		Count()

	assert.Equal(t, 2, n)
	assert.Equal(t, []int{3, 4}, visited)
}

func TestSortIsStableAndNonDestructive(t *testing.T) {
	src := []int{3, 1, 2}
	sorted := From(src).Sort(func(a, b int) bool { return a < b }).Collect()

	assert.Equal(t, []int{1, 2, 3}, sorted)
	assert.Equal(t, []int{3, 1, 2}, src)
}

func TestPullStopsEarly(t *testing.T) {
	next, stop := From([]int{10, 20, 30}).Pull()
	defer stop()

	v, ok := next()
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	stop()
	_, ok = next()
	assert.False(t, ok)
}

func TestToArrayMapsElements(t *testing.T) {
	got := ToArray(From([]int{1, 2, 3}), func(v int) int { return v * v })
	assert.Equal(t, []int{1, 4, 9}, got)
}
