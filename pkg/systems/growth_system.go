package systems

import (
	"github.com/gonewx/vrroom/pkg/components"
	"github.com/gonewx/vrroom/pkg/ecs"
	"github.com/gonewx/vrroom/pkg/utils"
)

// GrowthSystem 推进花朵生长动画
//
// 每帧把 ScaleComponent 设为 TargetScale * sin(progress·π/2)，
// 完成后钳制到目标缩放并移除 GrowthComponent。
// 被销毁的实体不会出现在查询结果里，动画随之静默结束。
type GrowthSystem struct {
	entityManager *ecs.EntityManager
}

// NewGrowthSystem 创建生长动画系统
func NewGrowthSystem(em *ecs.EntityManager) *GrowthSystem {
	return &GrowthSystem{entityManager: em}
}

// Update 推进所有生长动画
func (s *GrowthSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.GrowthComponent, *components.ScaleComponent](s.entityManager)

	for _, id := range ids {
		growth, ok := ecs.GetComponent[*components.GrowthComponent](s.entityManager, id)
		if !ok {
			continue
		}
		scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id)
		if !ok {
			continue
		}

		growth.ElapsedTime += deltaTime

		if growth.IsComplete() {
			scale.Set(growth.TargetScale)
			growth.IsCompleted = true
			ecs.RemoveComponent[*components.GrowthComponent](s.entityManager, id)
			continue
		}

		scale.Set(growth.TargetScale.Scale(utils.EaseOutSine(growth.GetProgress())))
	}
}

// Growing 正在生长的实体数量
func (s *GrowthSystem) Growing() int {
	return len(ecs.GetEntitiesWith1[*components.GrowthComponent](s.entityManager))
}
