package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/jannah/pkg/components"
	"github.com/gonewx/jannah/pkg/ecs"
)

func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: 1.0})

	system.Update(0.25)

	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	require.True(t, ok)
	assert.InDelta(t, 0.25, lifetime.CurrentLifetime, 1e-9)
	assert.InDelta(t, 0.75, lifetime.Remaining(), 1e-9)
	assert.False(t, lifetime.IsExpired)
}

// TestLifetimeExpiration 过期的高亮实体应该被清理
func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	expiring := em.CreateEntity()
	ecs.AddComponent(em, expiring, &components.LifetimeComponent{MaxLifetime: 0.5})
	ecs.AddComponent(em, expiring, &components.CellHighlightComponent{X: 1, Y: 1, Size: 1})

	lasting := em.CreateEntity()
	ecs.AddComponent(em, lasting, &components.LifetimeComponent{MaxLifetime: 5})

	system.Update(0.6)

	assert.False(t, ecs.HasComponent[*components.CellHighlightComponent](em, expiring))
	assert.True(t, ecs.HasComponent[*components.LifetimeComponent](em, lasting))
	assert.Equal(t, 1, em.EntityCount())
}
