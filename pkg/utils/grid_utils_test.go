package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMouseToCell 测试鼠标坐标到网格坐标的转换
func TestMouseToCell(t *testing.T) {
	const (
		startX   = 24.0
		startY   = 24.0
		cellSize = 84.0
		side     = 8
	)

	tests := []struct {
		name      string
		mouseX    int
		mouseY    int
		wantX     int
		wantY     int
		wantValid bool
	}{
		{"左上角第一个格子", 24, 24, 0, 0, true},
		{"第一个格子中心", 24 + 42, 24 + 42, 0, 0, true},
		{"右下角最后一个格子", 24 + 7*84 + 83, 24 + 7*84 + 83, 7, 7, true},
		{"中间格子", 24 + 3*84 + 1, 24 + 5*84 + 1, 3, 5, true},
		{"网格左侧", 23, 100, 0, 0, false},
		{"网格上方", 100, 10, 0, 0, false},
		{"网格右侧边界外", 24 + 8*84, 100, 0, 0, false},
		{"网格下方边界外", 100, 24 + 8*84, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := MouseToCell(tt.mouseX, tt.mouseY, startX, startY, side, cellSize)
			assert.Equal(t, tt.wantValid, ok)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestMouseToCellDegenerate(t *testing.T) {
	_, _, ok := MouseToCell(10, 10, 0, 0, 0, 10)
	assert.False(t, ok)
	_, _, ok = MouseToCell(10, 10, 0, 0, 4, 0)
	assert.False(t, ok)
}

func TestCellToScreen(t *testing.T) {
	sx, sy := CellToScreen(2, 3, 24, 24, 84)
	assert.Equal(t, 24.0+2*84, sx)
	assert.Equal(t, 24.0+3*84, sy)
}
