package systems

import (
	"testing"

	"github.com/gonewx/vrroom/pkg/components"
	"github.com/gonewx/vrroom/pkg/ecs"
)

func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: 1.0})

	system.Update(0.5)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.CurrentLifetime != 0.5 {
		t.Errorf("Expected CurrentLifetime 0.5, got %f", lifetime.CurrentLifetime)
	}
	if lifetime.IsExpired || !em.IsAlive(id) {
		t.Error("Entity should not expire before MaxLifetime")
	}
}

func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	short := em.CreateEntity()
	ecs.AddComponent(em, short, &components.LifetimeComponent{MaxLifetime: 0.5})
	long := em.CreateEntity()
	ecs.AddComponent(em, long, &components.LifetimeComponent{MaxLifetime: 5})

	system.Update(0.5)

	if em.IsAlive(short) {
		t.Error("Entity reaching MaxLifetime should be destroyed")
	}
	if !em.IsAlive(long) {
		t.Error("Entity below MaxLifetime should survive")
	}
	if system.Expired() != 1 {
		t.Errorf("Expired: got %d, want 1", system.Expired())
	}

	// 已标记销毁的实体不会重复计数
	system.Update(0.5)
	if system.Expired() != 1 {
		t.Errorf("Expired after second update: got %d, want 1", system.Expired())
	}
}
