package systems

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/gonewx/jannah/pkg/types"
)

func TestStatistics(t *testing.T) {
	grid := NewGridSystem()
	state := newTestState(t, 8)

	assert.Zero(t, TotalCount(state))
	assert.Zero(t, TotalValue(state))
	assert.Zero(t, CountByCategory(state, "tree"))

	palm := testItem("palm", "tree", types.Size1x1, 50)
	fig := testItem("fig", "tree", types.Size1x1, 40)
	garden := testItem("garden", "garden", types.Size2x2, 150)
	palace := testItem("palace", "palace", types.Size3x3, 500)

	grid.CommitPlacement(state, palm, 0, 0)
	grid.CommitPlacement(state, palm, 1, 0)
	grid.CommitPlacement(state, fig, 2, 0)
	grid.CommitPlacement(state, garden, 0, 2)
	grid.CommitPlacement(state, palace, 5, 5)

	assert.Equal(t, 5, TotalCount(state))
	assert.Equal(t, 50+50+40+150+500, TotalValue(state))
	assert.Equal(t, 3, CountByCategory(state, "tree"))
	assert.Equal(t, 1, CountByCategory(state, "palace"))
	assert.Zero(t, CountByCategory(state, "river"))

	want := Summary{
		Count: 5,
		Value: 790,
		ByCategory: []CategoryCount{
			{Category: "garden", Count: 1},
			{Category: "palace", Count: 1},
			{Category: "tree", Count: 3},
		},
	}
	if diff := cmp.Diff(want, Summarize(state)); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}

	// 统计随 Placements 即时变化，没有缓存
	grid.Reset(state)
	assert.Equal(t, Summary{ByCategory: []CategoryCount{}}, Summarize(state))
}
