package entities

import (
	"github.com/gonewx/jannah/pkg/components"
	"github.com/gonewx/jannah/pkg/ecs"
)

// NewCellHighlight 创建放置结果的格子高亮实体
// 参数:
//   - em: EntityManager 实例
//   - x, y: 高亮区域左上角格子
//   - size: 高亮区域边长（格子数）
//   - kind: 高亮类型
//   - duration: 持续时间（秒），过期后由 LifetimeSystem 清理
//
// 返回:
//   - ecs.EntityID: 新实体ID
func NewCellHighlight(em *ecs.EntityManager, x, y, size int, kind components.HighlightKind, duration float64) ecs.EntityID {
	if size < 1 {
		size = 1
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CellHighlightComponent{
		X:    x,
		Y:    y,
		Size: size,
		Kind: kind,
	})
	ecs.AddComponent(em, id, &components.LifetimeComponent{
		MaxLifetime: duration,
	})
	return id
}
