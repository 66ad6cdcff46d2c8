package ecs

import (
	"reflect"
	"slices"
	"testing"
)

// 测试组件类型定义
type testTransformComponent struct {
	X, Y, Z float64
}

type testGrowthComponent struct {
	Elapsed float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	if id1 == InvalidEntity {
		t.Error("First entity must never get the invalid handle")
	}
	if id1 != 1 || id2 != 2 {
		t.Errorf("Entity IDs should start at 1, got %d and %d", id1, id2)
	}
}

func TestGenericComponentAccess(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testTransformComponent{X: 1, Y: 2, Z: 3})

	tr, ok := GetComponent[*testTransformComponent](em, id)
	if !ok {
		t.Fatal("Transform component should be found")
	}
	if tr.X != 1 || tr.Y != 2 || tr.Z != 3 {
		t.Errorf("Transform mismatch: %+v", tr)
	}

	// 泛型和反射 API 共用同一份存储
	if !em.HasComponent(id, reflect.TypeOf(&testTransformComponent{})) {
		t.Error("Reflection API should see component added through generic API")
	}

	em.AddComponent(id, &testGrowthComponent{Elapsed: 0.5})
	if !HasComponent[*testGrowthComponent](em, id) {
		t.Error("Generic API should see component added through reflection API")
	}

	RemoveComponent[*testGrowthComponent](em, id)
	if HasComponent[*testGrowthComponent](em, id) {
		t.Error("Growth component should be removed")
	}

	if _, ok := GetComponent[*testGrowthComponent](em, 999); ok {
		t.Error("Unknown entity should have no components")
	}
}

func TestIsAliveAfterDestroy(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testTransformComponent{})

	if !em.IsAlive(id) {
		t.Fatal("New entity should be alive")
	}

	em.DestroyEntity(id)

	// 标记后立即失效，但组件在清理前仍可读
	if em.IsAlive(id) {
		t.Error("Entity should not be alive once destruction is requested")
	}
	if !HasComponent[*testTransformComponent](em, id) {
		t.Error("Components should remain readable until cleanup")
	}

	em.RemoveMarkedEntities()
	if em.IsAlive(id) {
		t.Error("Entity should not be alive after cleanup")
	}
	if HasComponent[*testTransformComponent](em, id) {
		t.Error("Entity should be removed after cleanup")
	}

	if em.IsAlive(InvalidEntity) {
		t.Error("Invalid handle is never alive")
	}
}

func TestDestroyEntityTwice(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	other := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)
	em.DestroyEntity(12345)

	if em.EntityCount() != 1 {
		t.Errorf("EntityCount: got %d, want 1", em.EntityCount())
	}

	em.RemoveMarkedEntities()
	if !em.IsAlive(other) {
		t.Error("Unrelated entity should survive")
	}
	if em.EntityCount() != 1 {
		t.Errorf("EntityCount after cleanup: got %d, want 1", em.EntityCount())
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testTransformComponent{})
	AddComponent(em, id1, &testGrowthComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testTransformComponent{})

	id3 := em.CreateEntity()
	AddComponent(em, id3, &testGrowthComponent{})

	both := GetEntitiesWith2[*testTransformComponent, *testGrowthComponent](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("Expected only id1 with both components, got %v", both)
	}

	withTransform := GetEntitiesWith1[*testTransformComponent](em)
	if len(withTransform) != 2 {
		t.Fatalf("Expected 2 entities with transform, got %d", len(withTransform))
	}
	if withTransform[0] != id1 || withTransform[1] != id2 {
		t.Errorf("Query result should be ordered by ID, got %v", withTransform)
	}

	// 标记删除的实体不再出现在查询结果中
	em.DestroyEntity(id1)
	withTransform = GetEntitiesWith1[*testTransformComponent](em)
	if len(withTransform) != 1 || withTransform[0] != id2 {
		t.Errorf("Destroyed entity should be excluded from queries, got %v", withTransform)
	}
}

// TestGetEntitiesWithLargeWorld 大量实体时查询结果仍按 ID 升序
func TestGetEntitiesWithLargeWorld(t *testing.T) {
	em := NewEntityManager()

	const n = 2000
	var want []EntityID
	for i := 0; i < n; i++ {
		id := em.CreateEntity()
		if i%3 == 0 {
			continue
		}
		AddComponent(em, id, &testTransformComponent{X: float64(i)})
		want = append(want, id)
	}

	got := GetEntitiesWith1[*testTransformComponent](em)
	if !slices.Equal(got, want) {
		t.Fatalf("expected %d sorted entities, got %d (sorted=%v)", len(want), len(got), slices.IsSorted(got))
	}
	t.Logf("✓ %d 个实体按 ID 排序返回", len(got))
}

func TestGetEntitiesWith3(t *testing.T) {
	type testScaleComponent struct{ S float64 }

	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testTransformComponent{})
	AddComponent(em, id, &testGrowthComponent{})
	AddComponent(em, id, &testScaleComponent{})

	partial := em.CreateEntity()
	AddComponent(em, partial, &testTransformComponent{})
	AddComponent(em, partial, &testScaleComponent{})

	result := GetEntitiesWith3[*testTransformComponent, *testGrowthComponent, *testScaleComponent](em)
	if len(result) != 1 || result[0] != id {
		t.Errorf("Expected only the fully equipped entity, got %v", result)
	}
}
