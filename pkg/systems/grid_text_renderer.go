package systems

import (
	"fmt"
	"strings"

	"github.com/gonewx/jannah/pkg/components"
)

// RenderGridText 将网格渲染为文本，用于命令行和调试
//
// 每个建筑按放置顺序分配字母 A-Z（超过 26 个循环使用）
// 左上角格子用大写字母，其余格子用小写字母，空格子为 '.'
func RenderGridText(grid *GridSystem, state *components.GridState) string {
	var b strings.Builder
	side := state.Spec.Side

	order := make(map[*components.PlacedItem]int, len(state.Placements))
	for i, p := range state.Placements {
		order[p] = i
	}

	b.WriteString("   ")
	for x := 0; x < side; x++ {
		fmt.Fprintf(&b, "%d", x%10)
	}
	b.WriteByte('\n')

	for y := 0; y < side; y++ {
		fmt.Fprintf(&b, "%2d ", y)
		for x := 0; x < side; x++ {
			placed, isOrigin := grid.ItemAt(state, x, y)
			if placed == nil {
				b.WriteByte('.')
				continue
			}
			letter := placementLetter(order[placed])
			if !isOrigin {
				letter += 'a' - 'A'
			}
			b.WriteByte(letter)
		}
		b.WriteByte('\n')
	}

	for i, p := range state.Placements {
		fmt.Fprintf(&b, "%c %s %s @%d,%d\n", placementLetter(i), p.Item.ID, p.Item.Size, p.OriginX, p.OriginY)
	}
	return b.String()
}

func placementLetter(index int) byte {
	return byte('A' + index%26)
}
