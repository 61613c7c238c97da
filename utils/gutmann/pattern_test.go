package gutmann

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource answers NextIndex from a function and records the bounds asked for.
type scriptedSource struct {
	next   func(bound int) int
	bounds []int
}

func (s *scriptedSource) NextByte() byte { return 0 }
func (s *scriptedSource) Fill(p []byte)  {}
func (s *scriptedSource) NextIndex(bound int) int {
	s.bounds = append(s.bounds, bound)
	return s.next(bound)
}

func sortedPatterns(p []Pattern) []Pattern {
	out := append([]Pattern(nil), p...)
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i][:], out[j][:]) < 0 })
	return out
}

func TestDefaultPatterns(t *testing.T) {
	table := DefaultPatterns()
	require.Len(t, table, 27)
	assert.Equal(t, Pattern{0x55, 0x55, 0x55}, table[0])
	assert.Equal(t, Pattern{0xDB, 0x6D, 0xB6}, table[26])

	counts := map[Pattern]int{}
	for _, p := range table {
		counts[p]++
	}
	assert.Equal(t, 2, counts[Pattern{0x55, 0x55, 0x55}])
	assert.Equal(t, 2, counts[Pattern{0xAA, 0xAA, 0xAA}])
	assert.Equal(t, 2, counts[Pattern{0x92, 0x49, 0x24}])
	assert.Len(t, counts, 22)

	// callers get their own copy
	table[0] = Pattern{}
	assert.Equal(t, Pattern{0x55, 0x55, 0x55}, DefaultPatterns()[0])
}

func TestShuffleIsPermutation(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		table := DefaultPatterns()
		Shuffle(table, NewSeededSource(seed))
		require.Len(t, table, PatternCount)
		require.Equal(t, sortedPatterns(DefaultPatterns()), sortedPatterns(table), "seed %d", seed)
	}
}

func TestShuffleChangesOrder(t *testing.T) {
	table := DefaultPatterns()
	Shuffle(table, NewSeededSource(42))
	assert.NotEqual(t, DefaultPatterns(), table)
}

func TestShuffleKeepsLegacyBoundary(t *testing.T) {
	// Deliberate deviation from a uniform shuffle: the loop never runs for
	// i == 1, so only len-2 draws are made and the smallest bound is 3.
	src := &scriptedSource{next: func(int) int { return 0 }}
	table := DefaultPatterns()
	Shuffle(table, src)

	require.Len(t, src.bounds, PatternCount-2)
	assert.Equal(t, PatternCount, src.bounds[0])
	assert.Equal(t, 3, src.bounds[len(src.bounds)-1])

	// Index 1 is only ever touched as a swap target, so a source that
	// never picks it leaves it in place.
	assert.Equal(t, DefaultPatterns()[1], table[1])
}

func TestShuffleSmallTables(t *testing.T) {
	src := &scriptedSource{next: func(int) int { return 0 }}

	two := []Pattern{{1, 1, 1}, {2, 2, 2}}
	Shuffle(two, src)
	assert.Equal(t, []Pattern{{1, 1, 1}, {2, 2, 2}}, two)
	assert.Empty(t, src.bounds)

	three := []Pattern{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}}
	Shuffle(three, src)
	assert.Equal(t, []Pattern{{3, 3, 3}, {2, 2, 2}, {1, 1, 1}}, three)
	assert.Equal(t, []int{3}, src.bounds)
}
