package systems

import (
	"testing"

	"github.com/gonewx/vrroom/pkg/components"
	"github.com/gonewx/vrroom/pkg/config"
	"github.com/gonewx/vrroom/pkg/ecs"
	"github.com/gonewx/vrroom/pkg/entities"
	"github.com/gonewx/vrroom/pkg/events"
	"github.com/gonewx/vrroom/pkg/types"
)

// recordingFeedback 记录反馈调用次数
type recordingFeedback struct {
	sounds    int
	particles int
}

func (f *recordingFeedback) PlaySuccessSound()     { f.sounds++ }
func (f *recordingFeedback) PlaySuccessParticles() { f.particles++ }

// puzzleFixture 完整的谜题场景
type puzzleFixture struct {
	em          *ecs.EntityManager
	receptacles map[types.SocketItem]*events.Receptacle
	objects     map[string]ecs.EntityID
	feedback    *recordingFeedback
	system      *PuzzleSystem
}

func newPuzzleFixture(t *testing.T, cfg config.PuzzleConfig) *puzzleFixture {
	t.Helper()

	f := &puzzleFixture{
		em:          ecs.NewEntityManager(),
		receptacles: make(map[types.SocketItem]*events.Receptacle),
		objects:     make(map[string]ecs.EntityID),
		feedback:    &recordingFeedback{},
	}
	for _, item := range types.AllSocketItems() {
		f.receptacles[item] = events.NewReceptacle(item)
	}
	// 全部对象初始可见，EnableOnWin 的对象应被系统强制隐藏
	for _, name := range []string{"wall", "plane_to_disable", "teleport_area", "wizard"} {
		f.objects[name] = entities.NewActivatableEntity(f.em, name, true)
	}

	f.system = NewPuzzleSystem(f.em, cfg, f.receptacles, f.feedback)
	return f
}

func (f *puzzleFixture) active(t *testing.T, name string) bool {
	t.Helper()
	obj, ok := ecs.GetComponent[*components.ActivatableComponent](f.em, f.objects[name])
	if !ok {
		t.Fatalf("object %s missing", name)
	}
	return obj.Active
}

func (f *puzzleFixture) placeAll() {
	for _, item := range types.AllSocketItems() {
		f.receptacles[item].Place(item)
	}
}

// TestPuzzleSystem_InitialState 胜利对象开局隐藏
func TestPuzzleSystem_InitialState(t *testing.T) {
	f := newPuzzleFixture(t, config.DefaultPuzzleConfig())

	if f.active(t, "teleport_area") || f.active(t, "wizard") {
		t.Error("enable-on-win objects must start hidden")
	}
	if !f.active(t, "wall") || !f.active(t, "plane_to_disable") {
		t.Error("disable-on-win objects must start visible")
	}
	if f.system.IsCompleted() {
		t.Error("puzzle should not start completed")
	}
}

// TestPuzzleSystem_CompletesAfterDelay 三件就位后延迟执行胜利动作
func TestPuzzleSystem_CompletesAfterDelay(t *testing.T) {
	f := newPuzzleFixture(t, config.DefaultPuzzleConfig())

	f.receptacles[types.SocketMushroom].Place(types.SocketMushroom)
	f.receptacles[types.SocketCrystal].Place(types.SocketCrystal)
	if f.system.IsCompleted() {
		t.Fatal("two items must not complete the puzzle")
	}

	f.receptacles[types.SocketFlower].Place(types.SocketFlower)
	if !f.system.IsCompleted() {
		t.Fatal("three items should complete the puzzle")
	}
	if f.system.IsWinApplied() || !f.active(t, "wall") {
		t.Error("win action must wait for the delay")
	}

	f.system.Update(0.25)
	if f.system.IsWinApplied() {
		t.Error("win action applied too early")
	}

	f.system.Update(0.25)
	if !f.system.IsWinApplied() {
		t.Fatal("win action should be applied once the delay elapses")
	}

	if f.active(t, "wall") || f.active(t, "plane_to_disable") {
		t.Error("wall and extra plane should be hidden")
	}
	if !f.active(t, "teleport_area") || !f.active(t, "wizard") {
		t.Error("teleport area and wizard should be shown")
	}
	if f.feedback.sounds != 1 || f.feedback.particles != 1 {
		t.Errorf("feedback calls: sound=%d particles=%d, want 1/1", f.feedback.sounds, f.feedback.particles)
	}
	t.Logf("✓ Puzzle completed and win applied")
}

// TestPuzzleSystem_CompletesOnlyOnce 完成只触发一次
func TestPuzzleSystem_CompletesOnlyOnce(t *testing.T) {
	f := newPuzzleFixture(t, config.DefaultPuzzleConfig())
	f.placeAll()
	f.system.Update(1)

	// 取出再放回不会再次触发
	f.receptacles[types.SocketCrystal].Remove()
	f.receptacles[types.SocketCrystal].Place(types.SocketCrystal)
	f.system.Update(1)

	if f.feedback.sounds != 1 || f.feedback.particles != 1 {
		t.Errorf("feedback should fire once, got sound=%d particles=%d", f.feedback.sounds, f.feedback.particles)
	}
	if !f.system.IsCompleted() {
		t.Error("completion is permanent")
	}
}

// TestPuzzleSystem_RemovalBeforeCompletion 取出后需要重新放入
func TestPuzzleSystem_RemovalBeforeCompletion(t *testing.T) {
	f := newPuzzleFixture(t, config.DefaultPuzzleConfig())

	f.receptacles[types.SocketMushroom].Place(types.SocketMushroom)
	f.receptacles[types.SocketCrystal].Place(types.SocketCrystal)
	f.receptacles[types.SocketMushroom].Remove()

	if f.system.Slot(types.SocketMushroom) {
		t.Error("removed item should clear its slot")
	}

	f.receptacles[types.SocketFlower].Place(types.SocketFlower)
	if f.system.IsCompleted() {
		t.Fatal("puzzle must not complete while an item is missing")
	}

	f.receptacles[types.SocketMushroom].Place(types.SocketMushroom)
	if !f.system.IsCompleted() {
		t.Error("re-placing the missing item should complete the puzzle")
	}
}

// TestPuzzleSystem_WrongItemRejected 插槽只接受匹配的物品
func TestPuzzleSystem_WrongItemRejected(t *testing.T) {
	f := newPuzzleFixture(t, config.DefaultPuzzleConfig())

	if f.receptacles[types.SocketMushroom].Place(types.SocketCrystal) {
		t.Error("mushroom socket should reject the crystal")
	}
	if f.system.Slot(types.SocketMushroom) {
		t.Error("rejected item must not fill the slot")
	}
}

// TestPuzzleSystem_ZeroDelay 零延迟在下一次 Update 时执行
func TestPuzzleSystem_ZeroDelay(t *testing.T) {
	cfg := config.DefaultPuzzleConfig()
	cfg.WallDisappearDelay = 0
	cfg.SuccessSound = false

	f := newPuzzleFixture(t, cfg)
	f.placeAll()
	f.system.Update(0)

	if !f.system.IsWinApplied() {
		t.Error("zero delay should apply on the next update")
	}
	if f.feedback.sounds != 0 || f.feedback.particles != 1 {
		t.Errorf("disabled sound must not play: sound=%d particles=%d", f.feedback.sounds, f.feedback.particles)
	}
}

// TestPuzzleSystem_MissingObjectsAndReceptacles 缺失的对象和插槽被跳过
func TestPuzzleSystem_MissingObjectsAndReceptacles(t *testing.T) {
	em := ecs.NewEntityManager()
	wall := entities.NewActivatableEntity(em, "wall", true)

	receptacles := map[types.SocketItem]*events.Receptacle{
		types.SocketMushroom: events.NewReceptacle(types.SocketMushroom),
		types.SocketCrystal:  events.NewReceptacle(types.SocketCrystal),
	}
	system := NewPuzzleSystem(em, config.DefaultPuzzleConfig(), receptacles, nil)

	receptacles[types.SocketMushroom].Place(types.SocketMushroom)
	receptacles[types.SocketCrystal].Place(types.SocketCrystal)
	system.Update(1)

	if system.IsCompleted() {
		t.Error("puzzle with an unassigned socket can never complete")
	}

	obj, _ := ecs.GetComponent[*components.ActivatableComponent](em, wall)
	if !obj.Active {
		t.Error("wall should remain visible")
	}
}

// TestPuzzleSystem_NilFeedback 没有反馈时仍然切换对象
func TestPuzzleSystem_NilFeedback(t *testing.T) {
	em := ecs.NewEntityManager()
	wall := entities.NewActivatableEntity(em, "wall", true)

	receptacles := make(map[types.SocketItem]*events.Receptacle)
	for _, item := range types.AllSocketItems() {
		receptacles[item] = events.NewReceptacle(item)
	}
	system := NewPuzzleSystem(em, config.DefaultPuzzleConfig(), receptacles, nil)
	for _, item := range types.AllSocketItems() {
		receptacles[item].Place(item)
	}
	system.Update(1)

	obj, _ := ecs.GetComponent[*components.ActivatableComponent](em, wall)
	if obj.Active || !system.IsWinApplied() {
		t.Error("win should apply without feedback and with missing objects")
	}
}

// TestPuzzleSystem_Close 关闭后不再响应插槽事件
func TestPuzzleSystem_Close(t *testing.T) {
	f := newPuzzleFixture(t, config.DefaultPuzzleConfig())

	f.system.Close()
	f.system.Close()

	for _, r := range f.receptacles {
		if r.SelectEntered.Len() != 0 || r.SelectExited.Len() != 0 {
			t.Fatal("close should unsubscribe every handler")
		}
	}

	f.placeAll()
	if f.system.IsCompleted() {
		t.Error("closed system must ignore socket events")
	}
}
