package app

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/jannah/pkg/config"
	"github.com/gonewx/jannah/pkg/embedded"
	"github.com/gonewx/jannah/pkg/game"
	"github.com/gonewx/jannah/pkg/systems"
)

const testConfigYAML = `
grid:
  side: 4
  maxSide: 6
wallet:
  startingBalance: 500
placement:
  clearSelectionOnReject: false
catalog:
  - {id: palm, name: Palm, icon: P, category: tree, cost: 50, size: 1x1}
  - {id: garden, name: Garden, icon: G, category: garden, cost: 150, size: 2x2}
  - {id: land, name: Land, icon: L, category: land, cost: 100, kind: expansion}
`

func testConfig(t *testing.T) *config.ParadiseConfig {
	t.Helper()
	cfg, err := config.ParseParadiseConfig([]byte(testConfigYAML))
	require.NoError(t, err)
	return cfg
}

func TestLoadConfigBuiltIn(t *testing.T) {
	embedded.Init(fstest.MapFS{
		embedded.DefaultConfigPath: {Data: []byte(testConfigYAML)},
	})

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Grid.Side)
	assert.Len(t, cfg.Catalog, 3)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("does/not/exist.yaml")
	assert.Error(t, err)
}

func TestNewSessionFresh(t *testing.T) {
	s, err := NewSession(testConfig(t), nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, s.Controller.Grid().Spec.Side)
	assert.Equal(t, 500, s.Wallet.Balance())
	assert.Equal(t, 3, s.Catalog.Len())

	// clearSelectionOnReject: false 时拒绝后保留选择
	garden, err := s.Catalog.Lookup("garden")
	require.NoError(t, err)
	require.True(t, s.Controller.SelectItem(garden))

	result := s.Controller.AttemptPlacement(3, 3)
	assert.Equal(t, systems.ReasonOutOfBounds, result.Reason)
	assert.Equal(t, systems.StateSelected, s.Controller.Phase())
}

func TestNewSessionRestoresSnapshot(t *testing.T) {
	snap := &game.GridSnapshot{
		Side:    5,
		Balance: 120,
		Placements: []game.PlacementRecord{
			{ID: "a", ItemID: "garden", X: 0, Y: 0},
			{ID: "b", ItemID: "palm", X: 1, Y: 1}, // 与 a 重叠，被丢弃
			{ID: "c", ItemID: "palm", X: 4, Y: 4},
		},
	}

	s, err := NewSession(testConfig(t), snap, game.NewSaveManager(nil, "", nil), nil)
	require.NoError(t, err)

	state := s.Controller.Grid()
	assert.Equal(t, 5, state.Spec.Side)
	assert.Equal(t, 120, s.Wallet.Balance())
	require.Len(t, state.Placements, 2)
	assert.Equal(t, "a", state.Placements[0].ID)
	assert.Equal(t, "c", state.Placements[1].ID)
}

func TestNewSessionIgnoresBadSnapshot(t *testing.T) {
	snap := &game.GridSnapshot{Side: 0, Balance: 1}

	s, err := NewSession(testConfig(t), snap, game.NewSaveManager(nil, "", nil), nil)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Controller.Grid().Spec.Side)
	assert.Equal(t, 500, s.Wallet.Balance())
}

// TestNewSessionClampsRestoredSide 存档边长不会超过 grid.maxSide
func TestNewSessionClampsRestoredSide(t *testing.T) {
	snap := &game.GridSnapshot{
		Side:    9,
		Balance: 300,
		Placements: []game.PlacementRecord{
			{ID: "a", ItemID: "palm", X: 5, Y: 5},
			{ID: "b", ItemID: "palm", X: 8, Y: 8},
		},
	}

	s, err := NewSession(testConfig(t), snap, game.NewSaveManager(nil, "", nil), nil)
	require.NoError(t, err)

	state := s.Controller.Grid()
	assert.Equal(t, 6, state.Spec.Side)
	require.Len(t, state.Placements, 1)
	assert.Equal(t, "a", state.Placements[0].ID)

	// 已在上限，扩地在扣款前被拒绝
	land, err := s.Catalog.Lookup("land")
	require.NoError(t, err)
	s.Controller.SelectItem(land)
	assert.Equal(t, systems.ReasonOutOfBounds, s.Controller.AttemptPlacement(0, 0).Reason)
	assert.Equal(t, 300, s.Wallet.Balance())
}
