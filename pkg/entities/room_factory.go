package entities

import (
	"github.com/gonewx/vrroom/pkg/components"
	"github.com/gonewx/vrroom/pkg/config"
	"github.com/gonewx/vrroom/pkg/ecs"
	"github.com/gonewx/vrroom/pkg/types"
	"github.com/gonewx/vrroom/pkg/utils"
)

// flowerMass 生成花朵的刚体质量
const flowerMass = 0.1

// NewGroundEntity 创建地面实体
// 地面初始显示干燥色
//
// 参数:
//   - em: 实体管理器
//   - plane: 地面配置
//   - dry: 初始颜色
func NewGroundEntity(em *ecs.EntityManager, plane config.GroundPlane, dry types.Color) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.GroundComponent{
		Name:   plane.Name,
		MinX:   plane.MinX,
		MaxX:   plane.MaxX,
		MinZ:   plane.MinZ,
		MaxZ:   plane.MaxZ,
		Height: plane.Height,
		Color:  dry,
	})
	ecs.AddComponent(em, id, &components.TransformComponent{
		Position: types.Vec3{
			X: (plane.MinX + plane.MaxX) / 2,
			Y: plane.Height,
			Z: (plane.MinZ + plane.MaxZ) / 2,
		},
	})
	return id
}

// NewFlowerEntity 创建花朵实体
// 实体以零缩放出生，GrowthSystem 负责把它长到 targetScale
//
// 参数:
//   - em: 实体管理器
//   - prefab: 预制体名称
//   - pos: 地面上的落点
//   - yaw: 随机偏航角（度）
//   - targetScale: 生长完成后的缩放
//   - growDuration: 生长时长(秒)
//   - cell: 占用的去重网格
func NewFlowerEntity(em *ecs.EntityManager, prefab string, pos types.Vec3, yaw float64, targetScale types.Vec3, growDuration float64, cell utils.GridCell) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.TransformComponent{Position: pos, Yaw: yaw})
	ecs.AddComponent(em, id, &components.ScaleComponent{})
	ecs.AddComponent(em, id, &components.FlowerComponent{Prefab: prefab, Cell: cell})

	// 花朵落地后可以被推动，但不能翻倒
	ecs.AddComponent(em, id, &components.RigidbodyComponent{
		Mass:           flowerMass,
		FreezeRotation: true,
		IsKinematic:    false,
	})

	ecs.AddComponent(em, id, &components.GrowthComponent{
		Duration:    growDuration,
		TargetScale: targetScale,
	})

	return id
}

// NewActivatableEntity 创建可开关的场景对象
func NewActivatableEntity(em *ecs.EntityManager, name string, active bool) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ActivatableComponent{Name: name, Active: active})
	return id
}

// NewPropEntity 创建带刚体和重心调整器的道具
// 重心在 CenterOfMassSystem 首次更新时才被应用
func NewPropEntity(em *ecs.EntityManager, prop config.PropConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Position: prop.Position})
	ecs.AddComponent(em, id, &components.RigidbodyComponent{Mass: prop.Mass})
	ecs.AddComponent(em, id, &components.CenterOfMassAdjusterComponent{Offset: prop.CenterOfMassOffset})
	ecs.AddComponent(em, id, &components.ActivatableComponent{Name: prop.Name, Active: true})
	return id
}

// NewWateringCanEntity 创建浇水壶出水口
// 初始不倾倒
func NewWateringCanEntity(em *ecs.EntityManager, spray config.SprayConfig, pos types.Vec3) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Position: pos})
	ecs.AddComponent(em, id, &components.SprayEmitterComponent{
		Rate:     spray.Rate,
		Speed:    spray.Speed,
		Spread:   spray.Spread,
		Gravity:  spray.Gravity,
		Lifetime: spray.Lifetime,
	})
	return id
}

// NewDropletEntity 创建水滴粒子
func NewDropletEntity(em *ecs.EntityManager, emitter ecs.EntityID, pos, velocity types.Vec3, gravity, lifetime float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Position: pos})
	ecs.AddComponent(em, id, &components.VelocityComponent{Velocity: velocity})
	ecs.AddComponent(em, id, &components.DropletComponent{Emitter: emitter, Gravity: gravity})
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: lifetime})
	return id
}
