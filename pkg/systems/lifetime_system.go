package systems

import (
	"github.com/gonewx/vrroom/pkg/components"
	"github.com/gonewx/vrroom/pkg/ecs"
)

// LifetimeSystem 清理超过存活上限的实体（没落到地面的水滴）
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
	expired       int
}

// NewLifetimeSystem 创建生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{entityManager: em}
}

// Update 累加存活时间并销毁过期实体
func (s *LifetimeSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
			s.entityManager.DestroyEntity(id)
			s.expired++
		}
	}
}

// Expired 累计过期销毁数量
func (s *LifetimeSystem) Expired() int {
	return s.expired
}
