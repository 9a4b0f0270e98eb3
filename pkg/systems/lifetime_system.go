package systems

import (
	"github.com/gonewx/jannah/pkg/components"
	"github.com/gonewx/jannah/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 更新所有拥有生命周期组件的实体，过期实体在本帧末尾被清理
func (s *LifetimeSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
		}

		if lifetime.IsExpired {
			s.entityManager.DestroyEntity(id)
		}
	}

	s.entityManager.RemoveMarkedEntities()
}
