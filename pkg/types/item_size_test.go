package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestItemSizeCells 测试尺寸类别到边长的映射
func TestItemSizeCells(t *testing.T) {
	tests := []struct {
		size ItemSize
		want int
	}{
		{Size1x1, 1},
		{Size2x2, 2},
		{Size3x3, 3},
		{Size4x4, 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.size), func(t *testing.T) {
			got, err := tt.size.Cells()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, tt.size.IsValid())
		})
	}
}

// TestItemSizeUnknown 未知尺寸必须报错，不能回退为 4
func TestItemSizeUnknown(t *testing.T) {
	for _, s := range []ItemSize{"", "5x5", "2X2", "large"} {
		got, err := s.Cells()
		assert.Error(t, err, "size %q", s)
		assert.Zero(t, got)
		assert.False(t, s.IsValid())
	}
}

func TestParseItemKind(t *testing.T) {
	k, err := ParseItemKind("")
	require.NoError(t, err)
	assert.Equal(t, ItemKindBuilding, k)

	k, err = ParseItemKind("expansion")
	require.NoError(t, err)
	assert.Equal(t, ItemKindExpansion, k)
	assert.Equal(t, "expansion", k.String())

	_, err = ParseItemKind("land")
	assert.Error(t, err)
}
