package ecs

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试ID从1开始且唯一
	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, 2, em.EntityCount())
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	require.True(t, found)
	retrieved := comp.(*testPositionComponent)
	assert.Equal(t, 100.0, retrieved.X)
	assert.Equal(t, 200.0, retrieved.Y)
}

func TestGenericComponentAPI(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 1, Y: 2})

	// 泛型 API 和反射 API 必须看到同一个组件
	pos, ok := GetComponent[*testPositionComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, 1.0, pos.X)
	assert.True(t, em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})))
	assert.True(t, HasComponent[*testPositionComponent](em, id))

	_, ok = GetComponent[*testVelocityComponent](em, id)
	assert.False(t, ok)
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})

	// 标记删除后，实体在 RemoveMarkedEntities 之前仍然存在
	em.DestroyEntity(id)
	assert.True(t, HasComponent[*testPositionComponent](em, id))

	em.RemoveMarkedEntities()
	assert.False(t, HasComponent[*testPositionComponent](em, id))
	assert.Zero(t, em.EntityCount())
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	e1 := em.CreateEntity()
	AddComponent(em, e1, &testPositionComponent{})
	AddComponent(em, e1, &testVelocityComponent{})

	e2 := em.CreateEntity()
	AddComponent(em, e2, &testPositionComponent{})

	e3 := em.CreateEntity()
	AddComponent(em, e3, &testPositionComponent{})
	AddComponent(em, e3, &testVelocityComponent{})

	assert.Equal(t, []EntityID{e1, e2, e3}, GetEntitiesWith1[*testPositionComponent](em))
	assert.Equal(t, []EntityID{e1, e3}, GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em))
}
