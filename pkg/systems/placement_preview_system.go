package systems

import (
	"github.com/gonewx/jannah/pkg/components"
	"github.com/gonewx/jannah/pkg/ecs"
	"github.com/gonewx/jannah/pkg/utils"
)

// PlacementPreviewSystem 根据鼠标位置更新放置预览
//
// 预览只读网格和账户，不会改变控制器状态
type PlacementPreviewSystem struct {
	entityManager *ecs.EntityManager
	grid          *GridSystem
	controller    *PlacementController
	ledger        Ledger

	previewEntity ecs.EntityID
}

// NewPlacementPreviewSystem 创建预览系统，并创建唯一的预览实体
func NewPlacementPreviewSystem(em *ecs.EntityManager, grid *GridSystem, controller *PlacementController, ledger Ledger) *PlacementPreviewSystem {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PlacementPreviewComponent{})
	return &PlacementPreviewSystem{
		entityManager: em,
		grid:          grid,
		controller:    controller,
		ledger:        ledger,
		previewEntity: id,
	}
}

// Update 把鼠标屏幕坐标对齐到格子并刷新预览
// 参数:
//   - mouseX, mouseY: 鼠标屏幕坐标
//   - startX, startY: 网格左上角屏幕坐标
//   - cellSize: 格子像素边长
func (s *PlacementPreviewSystem) Update(mouseX, mouseY int, startX, startY, cellSize float64) {
	preview := s.Preview()
	if preview == nil {
		return
	}
	*preview = components.PlacementPreviewComponent{}

	item, ok := s.controller.Selected()
	if !ok || item.IsExpansion() {
		return
	}

	state := s.controller.Grid()
	x, y, inGrid := utils.MouseToCell(mouseX, mouseY, startX, startY, state.Spec.Side, cellSize)
	if !inGrid {
		return
	}

	preview.Item = item
	preview.X, preview.Y = x, y
	preview.Size = FootprintSize(item)
	preview.Visible = true
	preview.Placeable = s.grid.CanPlace(state, item, x, y)
	preview.Affordable = s.ledger.Balance() >= item.Cost
}

// Preview 返回预览组件
func (s *PlacementPreviewSystem) Preview() *components.PlacementPreviewComponent {
	preview, ok := ecs.GetComponent[*components.PlacementPreviewComponent](s.entityManager, s.previewEntity)
	if !ok {
		return nil
	}
	return preview
}
