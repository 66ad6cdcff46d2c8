package systems

import (
	"math/rand"

	"github.com/gonewx/vrroom/pkg/components"
	"github.com/gonewx/vrroom/pkg/ecs"
	"github.com/gonewx/vrroom/pkg/entities"
	"github.com/gonewx/vrroom/pkg/types"
	"github.com/gonewx/vrroom/pkg/utils"
)

// SpraySystem 浇水壶水滴粒子
//
// 倾倒中的发射器按速率生成水滴；水滴受重力下落，
// 穿过地面时记录接触点并销毁。一帧内的全部接触点
// 在帧末一次性交给 ContactSink。
type SpraySystem struct {
	entityManager *ecs.EntityManager
	physics       *PhysicsSystem
	sink          ContactSink
	rng           *rand.Rand

	totalContacts int
}

// NewSpraySystem 创建水滴系统
//
// 参数:
//   - em: 实体管理器
//   - physics: 用于水滴与地面相交检测
//   - sink: 接触点接收方（通常是 WateringSystem，可为 nil）
//   - rng: 随机数源
func NewSpraySystem(em *ecs.EntityManager, physics *PhysicsSystem, sink ContactSink, rng *rand.Rand) *SpraySystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(2))
	}
	return &SpraySystem{
		entityManager: em,
		physics:       physics,
		sink:          sink,
		rng:           rng,
	}
}

// Update 发射新水滴、推进已有水滴并交付接触点
func (s *SpraySystem) Update(deltaTime float64) {
	s.updateEmitters(deltaTime)

	points := s.updateDroplets(deltaTime)
	s.totalContacts += len(points)

	if len(points) > 0 && s.sink != nil {
		s.sink.OnParticleCollision(points)
	}
}

func (s *SpraySystem) updateEmitters(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.SprayEmitterComponent, *components.TransformComponent](s.entityManager) {
		emitter, _ := ecs.GetComponent[*components.SprayEmitterComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		if !emitter.Pouring {
			emitter.SpawnAccumulator = 0
			continue
		}

		emitter.SpawnAccumulator += emitter.Rate * deltaTime
		count := int(emitter.SpawnAccumulator)
		emitter.SpawnAccumulator -= float64(count)

		for i := 0; i < count; i++ {
			dx, dz := utils.RandomInUnitCircle(s.rng)
			velocity := types.Vec3{
				X: dx * emitter.Spread,
				Y: -emitter.Speed,
				Z: dz * emitter.Spread,
			}
			entities.NewDropletEntity(s.entityManager, id, transform.Position, velocity, emitter.Gravity, emitter.Lifetime)
			emitter.TotalLaunched++
		}
	}
}

// updateDroplets 积分水滴运动，返回本帧的地面接触点
func (s *SpraySystem) updateDroplets(deltaTime float64) []types.Vec3 {
	var points []types.Vec3

	ids := ecs.GetEntitiesWith3[*components.DropletComponent, *components.TransformComponent, *components.VelocityComponent](s.entityManager)
	for _, id := range ids {
		droplet, _ := ecs.GetComponent[*components.DropletComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		velocity, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		velocity.Velocity.Y -= droplet.Gravity * deltaTime
		prev := transform.Position
		next := prev.Add(velocity.Velocity.Scale(deltaTime))

		if hit, ok := s.physics.Linecast(prev, next); ok {
			points = append(points, hit)
			s.entityManager.DestroyEntity(id)
			continue
		}
		transform.Position = next
	}

	return points
}

// TotalContacts 累计接触点数量
func (s *SpraySystem) TotalContacts() int {
	return s.totalContacts
}

// ActiveDroplets 当前水滴数量
func (s *SpraySystem) ActiveDroplets() int {
	return len(ecs.GetEntitiesWith1[*components.DropletComponent](s.entityManager))
}
