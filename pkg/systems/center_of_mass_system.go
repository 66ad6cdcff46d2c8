package systems

import (
	"log"

	"github.com/gonewx/vrroom/pkg/components"
	"github.com/gonewx/vrroom/pkg/ecs"
)

// CenterOfMassSystem 把调整器的偏移写入刚体重心
// 每个实体只应用一次，相当于道具进入场景时的初始化
type CenterOfMassSystem struct {
	entityManager *ecs.EntityManager
}

// NewCenterOfMassSystem 创建重心调整系统
func NewCenterOfMassSystem(em *ecs.EntityManager) *CenterOfMassSystem {
	return &CenterOfMassSystem{entityManager: em}
}

// Update 处理尚未应用的调整器
func (s *CenterOfMassSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.CenterOfMassAdjusterComponent](s.entityManager) {
		adjuster, ok := ecs.GetComponent[*components.CenterOfMassAdjusterComponent](s.entityManager, id)
		if !ok || adjuster.Applied {
			continue
		}
		adjuster.Applied = true

		// 没有刚体的实体直接跳过
		rb, ok := ecs.GetComponent[*components.RigidbodyComponent](s.entityManager, id)
		if !ok {
			continue
		}
		rb.CenterOfMass = adjuster.Offset
		log.Printf("[CenterOfMassSystem] Entity %d center of mass set to (%.2f, %.2f, %.2f)",
			id, adjuster.Offset.X, adjuster.Offset.Y, adjuster.Offset.Z)
	}
}
