package scenes

import (
	"fmt"
	"hash/fnv"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/jannah/pkg/components"
	"github.com/gonewx/jannah/pkg/config"
	"github.com/gonewx/jannah/pkg/ecs"
	"github.com/gonewx/jannah/pkg/systems"
	"github.com/gonewx/jannah/pkg/utils"
)

var (
	backgroundColor = color.RGBA{R: 24, G: 40, B: 32, A: 255}
	cellColor       = color.RGBA{R: 118, G: 176, B: 96, A: 255}
	cellLineColor   = color.RGBA{R: 86, G: 140, B: 72, A: 255}
	outlineColor    = color.RGBA{R: 30, G: 30, B: 30, A: 255}

	// 分类配色，按分类名哈希选取
	categoryPalette = []color.RGBA{
		{R: 230, G: 196, B: 92, A: 255},
		{R: 92, G: 160, B: 220, A: 255},
		{R: 200, G: 120, B: 200, A: 255},
		{R: 240, G: 150, B: 90, A: 255},
		{R: 120, G: 210, B: 190, A: 255},
		{R: 220, G: 230, B: 240, A: 255},
	}

	highlightColors = map[components.HighlightKind]color.RGBA{
		components.HighlightAccepted:     {R: 80, G: 255, B: 80, A: 255},
		components.HighlightInvalidCell:  {R: 255, G: 60, B: 60, A: 255},
		components.HighlightUnaffordable: {R: 255, G: 210, B: 40, A: 255},
	}
)

// categoryColor 返回分类对应的颜色
func categoryColor(category string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(category))
	return categoryPalette[h.Sum32()%uint32(len(categoryPalette))]
}

// drawBoard 绘制网格、已放置建筑和高亮
// 渲染层只读取 GridState，所有占用判断都委托给 GridSystem
func drawBoard(screen *ebiten.Image, em *ecs.EntityManager, grid *systems.GridSystem, state *components.GridState) {
	side := state.Spec.Side
	cell := config.CellPixelSize(side)

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			sx, sy := utils.CellToScreen(x, y, config.BoardStartX, config.BoardStartY, cell)
			vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(cell), float32(cell), cellColor, false)
			vector.StrokeRect(screen, float32(sx), float32(sy), float32(cell), float32(cell), 1, cellLineColor, false)
		}
	}

	// 只在左上角格子锚定建筑图形
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			placed, isOrigin := grid.ItemAt(state, x, y)
			if placed == nil || !isOrigin {
				continue
			}
			drawPlacement(screen, placed, cell)
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.CellHighlightComponent, *components.LifetimeComponent](em) {
		highlight, _ := ecs.GetComponent[*components.CellHighlightComponent](em, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
		drawHighlight(screen, highlight, lifetime.Remaining(), cell)
	}
}

func drawPlacement(screen *ebiten.Image, placed *components.PlacedItem, cell float64) {
	size := float64(systems.FootprintSize(placed.Item))
	sx, sy := utils.CellToScreen(placed.OriginX, placed.OriginY, config.BoardStartX, config.BoardStartY, cell)
	w := float32(size * cell)
	const inset = 3

	vector.DrawFilledRect(screen, float32(sx)+inset, float32(sy)+inset, w-2*inset, w-2*inset, categoryColor(placed.Item.Category), true)
	vector.StrokeRect(screen, float32(sx)+inset, float32(sy)+inset, w-2*inset, w-2*inset, 2, outlineColor, true)
	ebitenutil.DebugPrintAt(screen, placed.Item.Name, int(sx)+6, int(sy)+6)
}

func drawHighlight(screen *ebiten.Image, highlight *components.CellHighlightComponent, remaining, cell float64) {
	clr := highlightColors[highlight.Kind]
	clr.A = uint8(160 * remaining)

	sx, sy := utils.CellToScreen(highlight.X, highlight.Y, config.BoardStartX, config.BoardStartY, cell)
	w := float32(float64(highlight.Size) * cell)
	vector.DrawFilledRect(screen, float32(sx), float32(sy), w, w, premultiply(clr), false)
}

// drawPreview 绘制选中建筑的半透明占地预览
func drawPreview(screen *ebiten.Image, preview *components.PlacementPreviewComponent, cell float64) {
	if preview == nil || !preview.Visible {
		return
	}

	clr := categoryColor(preview.Item.Category)
	switch {
	case !preview.Placeable:
		clr = highlightColors[components.HighlightInvalidCell]
	case !preview.Affordable:
		clr = highlightColors[components.HighlightUnaffordable]
	}
	clr.A = 110

	sx, sy := utils.CellToScreen(preview.X, preview.Y, config.BoardStartX, config.BoardStartY, cell)
	w := float32(float64(preview.Size) * cell)
	vector.DrawFilledRect(screen, float32(sx), float32(sy), w, w, premultiply(clr), false)
	vector.StrokeRect(screen, float32(sx), float32(sy), w, w, 2, outlineColor, false)
}

// premultiply 将非预乘颜色转换为 ebiten 使用的预乘 alpha 颜色
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}

// drawPanel 绘制右侧的目录、余额和统计面板
func drawPanel(screen *ebiten.Image, s *ParadiseScene) {
	x := config.PanelStartX
	y := 24
	line := func(format string, args ...interface{}) {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(format, args...), x, y)
		y += 16
	}

	line("Coins: %d", s.wallet.Balance())
	line("Grid: %dx%d", s.controller.Grid().Spec.Side, s.controller.Grid().Spec.Side)
	line("State: %s", s.controller.Phase())
	if item, ok := s.controller.Selected(); ok {
		line("Selected: %s", item.Name)
	} else {
		line("Selected: -")
	}
	y += 8

	line("Catalog (1-9 to select):")
	for i, item := range s.items {
		if i >= len(selectKeys) {
			break
		}
		if item.IsExpansion() {
			line(" %d %s +%d  %d", i+1, item.Name, item.ExpandBy, item.Cost)
		} else {
			line(" %d %s %s  %d", i+1, item.Name, item.Size, item.Cost)
		}
	}
	y += 8

	summary := s.controller.Summary()
	line("Buildings: %d", summary.Count)
	line("Value: %d", summary.Value)
	for _, cc := range summary.ByCategory {
		line(" %s: %d", cc.Category, cc.Count)
	}
	y += 8

	line("Esc clear  RMB remove")
	line("S save")
	if s.message != "" {
		y += 8
		line("%s", s.message)
	}
}
