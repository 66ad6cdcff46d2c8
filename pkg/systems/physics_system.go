package systems

import (
	"github.com/gonewx/vrroom/pkg/components"
	"github.com/gonewx/vrroom/pkg/ecs"
	"github.com/gonewx/vrroom/pkg/types"
)

// PhysicsSystem 基于实体数据的空间查询
//
// 地面是水平的轴对齐矩形（GroundComponent），已放置物体是拥有
// FlowerComponent 的实体。本系统实现 GroundProbe 和 DensityQuery，
// 并为水滴提供线段与地面的相交检测。
type PhysicsSystem struct {
	em *ecs.EntityManager
}

// NewPhysicsSystem 创建物理查询系统
//
// 参数:
//   - em: 实体管理器，用于查询地面和已放置物体
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(em *ecs.EntityManager) *PhysicsSystem {
	return &PhysicsSystem{em: em}
}

// activeGrounds 返回参与碰撞的地面
// 带 ActivatableComponent 且被隐藏的地面（例如胜利后移除的额外地面）不参与
func (ps *PhysicsSystem) activeGrounds() []*components.GroundComponent {
	ids := ecs.GetEntitiesWith1[*components.GroundComponent](ps.em)
	grounds := make([]*components.GroundComponent, 0, len(ids))
	for _, id := range ids {
		ground, ok := ecs.GetComponent[*components.GroundComponent](ps.em, id)
		if !ok {
			continue
		}
		if obj, ok := ecs.GetComponent[*components.ActivatableComponent](ps.em, id); ok && !obj.Active {
			continue
		}
		grounds = append(grounds, ground)
	}
	return grounds
}

// FindGround 从 origin 竖直向下探测最近的地面
//
// 只有位于 origin 下方、且距离不超过 maxDistance 的地面才算命中；
// 多块地面重叠时返回最高的一块（射线最先碰到的那块）。
func (ps *PhysicsSystem) FindGround(origin types.Vec3, maxDistance float64) (types.Vec3, bool) {
	best := types.Vec3{}
	found := false

	for _, ground := range ps.activeGrounds() {
		if !ground.Contains(origin.X, origin.Z) {
			continue
		}

		drop := origin.Y - ground.Height
		if drop < 0 || drop > maxDistance {
			continue
		}

		if !found || ground.Height > best.Y {
			best = types.Vec3{X: origin.X, Y: ground.Height, Z: origin.Z}
			found = true
		}
	}

	return best, found
}

// CountNearby 统计 radius 范围内的已放置物体（含边界）
// 已标记销毁的实体不计入
func (ps *PhysicsSystem) CountNearby(pos types.Vec3, radius float64) int {
	count := 0
	for _, id := range ecs.GetEntitiesWith2[*components.FlowerComponent, *components.TransformComponent](ps.em) {
		tr, ok := ecs.GetComponent[*components.TransformComponent](ps.em, id)
		if !ok {
			continue
		}
		if tr.Position.Distance(pos) <= radius {
			count++
		}
	}
	return count
}

// Linecast 检测线段 from→to 是否自上而下穿过某块地面
//
// 返回:
//   - types.Vec3: 穿过点（多块地面时取最先碰到的最高地面）
//   - bool: 是否相交
func (ps *PhysicsSystem) Linecast(from, to types.Vec3) (types.Vec3, bool) {
	if to.Y >= from.Y {
		return types.Vec3{}, false
	}

	best := types.Vec3{}
	found := false

	for _, ground := range ps.activeGrounds() {
		h := ground.Height
		if from.Y < h || to.Y > h {
			continue
		}

		t := (from.Y - h) / (from.Y - to.Y)
		hit := types.Vec3{
			X: from.X + (to.X-from.X)*t,
			Y: h,
			Z: from.Z + (to.Z-from.Z)*t,
		}
		if !ground.Contains(hit.X, hit.Z) {
			continue
		}

		if !found || h > best.Y {
			best = hit
			found = true
		}
	}

	return best, found
}
