package room

import (
	"github.com/gonewx/vrroom/pkg/components"
	"github.com/gonewx/vrroom/pkg/ecs"
	"github.com/gonewx/vrroom/pkg/types"
)

// GroundView 地面渲染数据
type GroundView struct {
	Name       string
	MinX, MaxX float64
	MinZ, MaxZ float64
	Height     float64
	Color      types.Color
	Active     bool
}

// FlowerView 花朵渲染数据
type FlowerView struct {
	ID       ecs.EntityID
	Prefab   string
	Position types.Vec3
	Yaw      float64
	Scale    float64 // 当前缩放（X 分量）
	Growing  bool
}

// SocketView 插槽状态
type SocketView struct {
	Item     types.SocketItem
	Occupied bool
}

// ObjectView 可开关的场景对象
type ObjectView struct {
	Name   string
	Active bool
}

// Snapshot 某一时刻房间的只读视图
type Snapshot struct {
	Time float64

	Grounds  []GroundView
	Flowers  []FlowerView
	Droplets []types.Vec3
	Objects  []ObjectView
	Sockets  []SocketView

	CanPosition types.Vec3
	Pouring     bool

	GroundColor types.Color
	Wetness     float64
	WaterHits   int

	ActiveFlowers int
	FlowersGrown  int

	PuzzleCompleted bool
	WinApplied      bool
	SuccessBursts   int
}

// Snapshot 生成当前状态的只读视图
func (r *Room) Snapshot() Snapshot {
	em := r.entityManager
	snap := Snapshot{
		Time:            r.elapsed,
		CanPosition:     r.CanPosition(),
		Pouring:         r.IsPouring(),
		GroundColor:     r.wateringSystem.GroundColor(),
		Wetness:         r.wateringSystem.Wetness(),
		WaterHits:       r.wateringSystem.WaterHits(),
		ActiveFlowers:   r.wateringSystem.ActiveCount(),
		FlowersGrown:    r.flowersGrown,
		PuzzleCompleted: r.puzzleSystem.IsCompleted(),
		WinApplied:      r.puzzleSystem.IsWinApplied(),
		SuccessBursts:   r.bursts,
	}

	for _, id := range ecs.GetEntitiesWith1[*components.GroundComponent](em) {
		g, _ := ecs.GetComponent[*components.GroundComponent](em, id)
		view := GroundView{
			Name: g.Name, MinX: g.MinX, MaxX: g.MaxX, MinZ: g.MinZ, MaxZ: g.MaxZ,
			Height: g.Height, Color: g.Color, Active: true,
		}
		if obj, ok := ecs.GetComponent[*components.ActivatableComponent](em, id); ok {
			view.Active = obj.Active
		}
		snap.Grounds = append(snap.Grounds, view)
	}

	for _, id := range r.wateringSystem.ActiveFlowers() {
		flower, ok := ecs.GetComponent[*components.FlowerComponent](em, id)
		if !ok {
			continue
		}
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		scale, _ := ecs.GetComponent[*components.ScaleComponent](em, id)
		snap.Flowers = append(snap.Flowers, FlowerView{
			ID:       id,
			Prefab:   flower.Prefab,
			Position: tr.Position,
			Yaw:      tr.Yaw,
			Scale:    scale.X,
			Growing:  ecs.HasComponent[*components.GrowthComponent](em, id),
		})
	}

	for _, id := range ecs.GetEntitiesWith2[*components.DropletComponent, *components.TransformComponent](em) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		snap.Droplets = append(snap.Droplets, tr.Position)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ActivatableComponent](em) {
		obj, _ := ecs.GetComponent[*components.ActivatableComponent](em, id)
		snap.Objects = append(snap.Objects, ObjectView{Name: obj.Name, Active: obj.Active})
	}

	for _, item := range types.AllSocketItems() {
		snap.Sockets = append(snap.Sockets, SocketView{Item: item, Occupied: r.receptacles[item].Occupied()})
	}

	return snap
}

// Object 按名称查找场景对象
func (s Snapshot) Object(name string) (ObjectView, bool) {
	for _, obj := range s.Objects {
		if obj.Name == name {
			return obj, true
		}
	}
	return ObjectView{}, false
}
