package systems

import (
	"testing"

	"github.com/gonewx/vrroom/pkg/components"
	"github.com/gonewx/vrroom/pkg/config"
	"github.com/gonewx/vrroom/pkg/ecs"
	"github.com/gonewx/vrroom/pkg/entities"
	"github.com/gonewx/vrroom/pkg/types"
)

func TestCenterOfMassSystem_AppliesOffsetOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewCenterOfMassSystem(em)

	id := entities.NewPropEntity(em, config.PropConfig{
		Name:               "watering_can",
		Mass:               1,
		CenterOfMassOffset: config.DefaultCenterOfMassOffset,
	})

	rb, _ := ecs.GetComponent[*components.RigidbodyComponent](em, id)
	if rb.CenterOfMass != (types.Vec3{}) {
		t.Fatal("center of mass should not be applied before the first update")
	}

	system.Update(0.016)
	if rb.CenterOfMass != (types.Vec3{X: 0, Y: -0.5, Z: 0}) {
		t.Errorf("center of mass: got %+v, want (0, -0.5, 0)", rb.CenterOfMass)
	}

	// 之后对刚体的修改不会被覆盖
	rb.CenterOfMass = types.Vec3{Y: 1}
	system.Update(0.016)
	if rb.CenterOfMass.Y != 1 {
		t.Error("offset should only be applied once")
	}
}

func TestCenterOfMassSystem_NoRigidbody(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewCenterOfMassSystem(em)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CenterOfMassAdjusterComponent{Offset: types.Vec3{Y: -1}})

	system.Update(0.016)

	adjuster, _ := ecs.GetComponent[*components.CenterOfMassAdjusterComponent](em, id)
	if !adjuster.Applied {
		t.Error("adjuster without rigidbody should still be marked handled")
	}
	if ecs.HasComponent[*components.RigidbodyComponent](em, id) {
		t.Error("system must not create a rigidbody")
	}
}
