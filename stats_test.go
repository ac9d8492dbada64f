package jsoncompare

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCompareStats(t *testing.T) {
	left := []byte(`{"a":100,"cool":null,"names":[{"name":"gary"},{"name":"brian"}],"salary":null,"skip":1}`)
	right := []byte(`{"a":"100","cool":false,"names":[{"name":"gary"}],"Name":"gary","skip":2}`)

	stats := &Stats{}
	res, err := New(
		WithIgnorePaths("skip"),
		WithStats(stats),
	).Compare(left, right)
	require.NoError(t, err)
	require.False(t, res.Equal())

	expect := &Stats{
		LeftNodes:  10,
		RightNodes: 8,
		// a: number vs string, cool: null vs bool
		KindMismatches: 2,
		// names: 2 elements vs 1
		LengthMismatches: 1,
		MissingRight:     1, // salary
		MissingLeft:      1, // Name
		Ignored:          1, // "skip"
	}
	if diff := cmp.Diff(expect, stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}

	if expect.NodeChange() != stats.NodeChange() {
		t.Errorf("wrong node change. want: %d. got: %d", expect.NodeChange(), stats.NodeChange())
	}
	if got := stats.Differences(); got != 5 {
		t.Errorf("wrong difference total. want: 5. got: %d", got)
	}
}

func TestStatsResetBetweenComparisons(t *testing.T) {
	stats := &Stats{}
	c := New(WithStats(stats))

	_, err := c.Compare([]byte(`{"a":1}`), []byte(`{"a":2}`))
	require.NoError(t, err)
	require.Equal(t, 1, stats.ValueMismatches)

	_, err = c.Compare([]byte(`{"a":1}`), []byte(`{"a":1}`))
	require.NoError(t, err)
	if stats.ValueMismatches != 0 {
		t.Errorf("stats should reset per comparison, got %d value mismatches", stats.ValueMismatches)
	}
}
