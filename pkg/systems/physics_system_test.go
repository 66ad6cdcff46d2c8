package systems

import (
	"math"
	"testing"

	"github.com/gonewx/vrroom/pkg/components"
	"github.com/gonewx/vrroom/pkg/ecs"
	"github.com/gonewx/vrroom/pkg/types"
)

// newTestGround 创建一块测试地面
func newTestGround(em *ecs.EntityManager, minX, maxX, minZ, maxZ, height float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.GroundComponent{
		MinX: minX, MaxX: maxX, MinZ: minZ, MaxZ: maxZ, Height: height,
	})
	return id
}

// newTestFlower 创建一个只有位置的已放置物体
func newTestFlower(em *ecs.EntityManager, pos types.Vec3) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Position: pos})
	ecs.AddComponent(em, id, &components.FlowerComponent{Prefab: "test"})
	return id
}

// TestPhysicsSystem_FindGround 测试向下探测地面
func TestPhysicsSystem_FindGround(t *testing.T) {
	em := ecs.NewEntityManager()
	newTestGround(em, -5, 5, -5, 5, 0)
	newTestGround(em, 1, 3, 1, 3, 0.5) // 抬高的花坛

	ps := NewPhysicsSystem(em)

	tests := []struct {
		name    string
		origin  types.Vec3
		maxDist float64
		wantHit bool
		wantY   float64
		descr   string
	}{
		{
			name:    "平地命中",
			origin:  types.Vec3{X: 0, Y: 2, Z: 0},
			maxDist: 5,
			wantHit: true,
			wantY:   0,
			descr:   "地面正下方 2 米",
		},
		{
			name:    "重叠取最高",
			origin:  types.Vec3{X: 2, Y: 2, Z: 2},
			maxDist: 5,
			wantHit: true,
			wantY:   0.5,
			descr:   "花坛覆盖在平地上方",
		},
		{
			name:    "超出范围",
			origin:  types.Vec3{X: 9, Y: 2, Z: 0},
			maxDist: 5,
			wantHit: false,
			descr:   "水平位置不在任何地面内",
		},
		{
			name:    "距离不足",
			origin:  types.Vec3{X: 0, Y: 6, Z: 0},
			maxDist: 5,
			wantHit: false,
			descr:   "地面在探测距离之外",
		},
		{
			name:    "起点在地面下方",
			origin:  types.Vec3{X: 0, Y: -1, Z: 0},
			maxDist: 5,
			wantHit: false,
			descr:   "只向下探测",
		},
		{
			name:    "花坛下方起点",
			origin:  types.Vec3{X: 2, Y: 0.3, Z: 2},
			maxDist: 5,
			wantHit: true,
			wantY:   0,
			descr:   "起点低于花坛时落到平地",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := ps.FindGround(tt.origin, tt.maxDist)
			if ok != tt.wantHit {
				t.Fatalf("%s: hit=%v, want %v", tt.descr, ok, tt.wantHit)
			}
			if !ok {
				return
			}
			if hit.Y != tt.wantY || hit.X != tt.origin.X || hit.Z != tt.origin.Z {
				t.Errorf("%s: got %+v, want y=%.2f under origin", tt.descr, hit, tt.wantY)
			}
		})
	}
}

// TestPhysicsSystem_CountNearby 测试密度统计
func TestPhysicsSystem_CountNearby(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhysicsSystem(em)

	newTestFlower(em, types.Vec3{X: 0, Z: 0})
	newTestFlower(em, types.Vec3{X: 0.3, Z: 0}) // 恰好在边界
	far := newTestFlower(em, types.Vec3{X: 2, Z: 0})
	lifted := newTestFlower(em, types.Vec3{X: 0, Y: 1, Z: 0}) // 水平重合但高度不同

	// 没有 FlowerComponent 的实体不计入
	plain := em.CreateEntity()
	ecs.AddComponent(em, plain, &components.TransformComponent{})

	if got := ps.CountNearby(types.Vec3{}, 0.3); got != 2 {
		t.Errorf("CountNearby(0.3): got %d, want 2", got)
	}
	if got := ps.CountNearby(types.Vec3{}, 5); got != 4 {
		t.Errorf("CountNearby(5): got %d, want 4", got)
	}

	em.DestroyEntity(far)
	em.DestroyEntity(lifted)
	if got := ps.CountNearby(types.Vec3{}, 5); got != 2 {
		t.Errorf("destroyed entities should not count, got %d", got)
	}
}

// TestPhysicsSystem_Linecast 测试线段与地面相交
func TestPhysicsSystem_Linecast(t *testing.T) {
	em := ecs.NewEntityManager()
	newTestGround(em, -5, 5, -5, 5, 0)
	newTestGround(em, 1, 3, -1, 1, 0.4)

	ps := NewPhysicsSystem(em)

	hit, ok := ps.Linecast(types.Vec3{X: 0, Y: 1, Z: 0}, types.Vec3{X: 1, Y: -1, Z: 0})
	if !ok {
		t.Fatal("segment crossing the floor should hit")
	}
	if math.Abs(hit.X-0.5) > 1e-9 || hit.Y != 0 {
		t.Errorf("hit point: got %+v, want (0.5, 0, 0)", hit)
	}

	if _, ok := ps.Linecast(types.Vec3{Y: 1}, types.Vec3{Y: 0.5}); ok {
		t.Error("segment ending above the floor should not hit")
	}
	if _, ok := ps.Linecast(types.Vec3{Y: -1}, types.Vec3{Y: 1}); ok {
		t.Error("upward segment should not hit")
	}
	if _, ok := ps.Linecast(types.Vec3{X: 8, Y: 1}, types.Vec3{X: 8, Y: -1}); ok {
		t.Error("segment outside every plane should not hit")
	}

	hit, ok = ps.Linecast(types.Vec3{X: 2, Y: 1, Z: 0}, types.Vec3{X: 2, Y: -1, Z: 0})
	if !ok || hit.Y != 0.4 {
		t.Errorf("raised bed should be hit first, got %+v/%v", hit, ok)
	}
}

// TestPhysicsSystem_InactiveGroundIgnored 被隐藏的地面不再参与碰撞
func TestPhysicsSystem_InactiveGroundIgnored(t *testing.T) {
	em := ecs.NewEntityManager()
	newTestGround(em, -5, 5, -5, 5, 0)
	extra := newTestGround(em, 6, 8, -1, 1, 0)
	ecs.AddComponent(em, extra, &components.ActivatableComponent{Name: "plane_to_disable", Active: true})

	ps := NewPhysicsSystem(em)
	origin := types.Vec3{X: 7, Y: 2}

	if _, ok := ps.FindGround(origin, 5); !ok {
		t.Fatal("active extra plane should be found")
	}

	obj, _ := ecs.GetComponent[*components.ActivatableComponent](em, extra)
	obj.Active = false

	if _, ok := ps.FindGround(origin, 5); ok {
		t.Error("hidden plane should not be found")
	}
	if _, ok := ps.Linecast(types.Vec3{X: 7, Y: 1}, types.Vec3{X: 7, Y: -1}); ok {
		t.Error("hidden plane should not stop droplets")
	}
	if _, ok := ps.FindGround(types.Vec3{Y: 2}, 5); !ok {
		t.Error("main floor should be unaffected")
	}
}
