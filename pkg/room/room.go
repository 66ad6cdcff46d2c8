// Package room 组装花园谜题房间：实体、系统和插槽
//
// Room 是所有前端（ebiten 窗口、终端视图、无界面场景脚本）共用的模拟核心。
// 全部操作在同一个逻辑线程上执行，由调用方按帧驱动 Update。
package room

import (
	"log"
	"math/rand"

	"github.com/gonewx/vrroom/pkg/components"
	"github.com/gonewx/vrroom/pkg/config"
	"github.com/gonewx/vrroom/pkg/ecs"
	"github.com/gonewx/vrroom/pkg/entities"
	"github.com/gonewx/vrroom/pkg/events"
	"github.com/gonewx/vrroom/pkg/systems"
	"github.com/gonewx/vrroom/pkg/types"
)

// directProbeHeight WaterAt 的探测起点高度
const directProbeHeight = 50.0

// SoundPlayer 播放谜题成功音效
type SoundPlayer interface {
	PlaySuccessSound()
}

// Options 房间构建选项
type Options struct {
	// Seed 随机种子，Rand 为 nil 时使用
	Seed int64
	// Rand 外部随机数源（可选）
	Rand *rand.Rand
	// Sound 成功音效（可选）
	Sound SoundPlayer
	// OnFlowerSpawned 每生成一朵花时回调（可选）
	OnFlowerSpawned func(prefab string)
}

// Room 花园谜题房间
type Room struct {
	config        *config.RoomConfig
	entityManager *ecs.EntityManager

	physicsSystem      *systems.PhysicsSystem
	wateringSystem     *systems.WateringSystem
	growthSystem       *systems.GrowthSystem
	puzzleSystem       *systems.PuzzleSystem
	centerOfMassSystem *systems.CenterOfMassSystem
	spraySystem        *systems.SpraySystem
	lifetimeSystem     *systems.LifetimeSystem

	receptacles map[types.SocketItem]*events.Receptacle
	canID       ecs.EntityID

	sound        SoundPlayer
	elapsed      float64
	flowersGrown int
	bursts       int // 成功粒子播放次数
	closed       bool
}

// NewRoom 按配置创建房间
//
// 参数:
//   - cfg: 房间配置（为 nil 时使用默认配置）
//   - opts: 构建选项
//
// 返回:
//   - *Room: 房间实例
func NewRoom(cfg *config.RoomConfig, opts Options) *Room {
	if cfg == nil {
		cfg = config.DefaultRoomConfig()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	em := ecs.NewEntityManager()
	r := &Room{
		config:        cfg,
		entityManager: em,
		receptacles:   make(map[types.SocketItem]*events.Receptacle, types.SocketItemCount),
		sound:         opts.Sound,
	}

	r.buildScene()

	r.physicsSystem = systems.NewPhysicsSystem(em)
	r.wateringSystem = systems.NewWateringSystem(em, cfg.Watering, r.physicsSystem, r.physicsSystem, rng)
	r.wateringSystem.SetSpawnListener(func(_ ecs.EntityID, prefab string) {
		r.flowersGrown++
		if opts.OnFlowerSpawned != nil {
			opts.OnFlowerSpawned(prefab)
		}
	})
	r.growthSystem = systems.NewGrowthSystem(em)
	r.centerOfMassSystem = systems.NewCenterOfMassSystem(em)
	// 水滴散布与生花共用同一个随机源，整个房间由一个种子决定
	r.spraySystem = systems.NewSpraySystem(em, r.physicsSystem, r.wateringSystem, rng)
	r.lifetimeSystem = systems.NewLifetimeSystem(em)

	for _, item := range types.AllSocketItems() {
		r.receptacles[item] = events.NewReceptacle(item)
	}
	r.puzzleSystem = systems.NewPuzzleSystem(em, cfg.Puzzle, r.receptacles, r)

	log.Printf("[Room] Created: %d ground planes, %d props, %d scene objects",
		len(cfg.Ground), len(cfg.Props), len(cfg.Puzzle.DisableOnWin)+len(cfg.Puzzle.EnableOnWin))
	return r
}

// buildScene 创建地面、道具、浇水壶和可开关的场景对象
func (r *Room) buildScene() {
	em := r.entityManager
	cfg := r.config

	grounds := make(map[string]ecs.EntityID, len(cfg.Ground))
	for _, plane := range cfg.Ground {
		grounds[plane.Name] = entities.NewGroundEntity(em, plane, cfg.Watering.DryColor)
	}

	props := make(map[string]bool, len(cfg.Props))
	for _, prop := range cfg.Props {
		entities.NewPropEntity(em, prop)
		props[prop.Name] = true
	}

	r.canID = entities.NewWateringCanEntity(em, cfg.Spray, types.Vec3{Y: cfg.Spray.Height})

	// 与地面或道具同名的对象直接挂在该实体上，其余的单独创建
	names := append(append([]string{}, cfg.Puzzle.DisableOnWin...), cfg.Puzzle.EnableOnWin...)
	for _, name := range names {
		if id, ok := grounds[name]; ok {
			ecs.AddComponent(em, id, &components.ActivatableComponent{Name: name, Active: true})
			continue
		}
		if props[name] {
			continue
		}
		entities.NewActivatableEntity(em, name, true)
	}
}

// Update 按固定顺序推进所有系统，最后清理已销毁的实体
func (r *Room) Update(deltaTime float64) {
	if r.closed {
		return
	}
	r.elapsed += deltaTime

	r.centerOfMassSystem.Update(deltaTime)
	r.wateringSystem.Update(deltaTime)
	r.spraySystem.Update(deltaTime)
	r.growthSystem.Update(deltaTime)
	r.lifetimeSystem.Update(deltaTime)
	r.puzzleSystem.Update(deltaTime)

	r.entityManager.RemoveMarkedEntities()
}

// WaterAt 在水平位置 (x, z) 直接产生一次水滴接触
//
// 返回:
//   - int: 本次生成的花朵数量；该位置没有地面时返回 0
func (r *Room) WaterAt(x, z float64) int {
	hit, ok := r.physicsSystem.FindGround(types.Vec3{X: x, Y: directProbeHeight, Z: z}, 2*directProbeHeight)
	if !ok {
		return 0
	}
	return r.wateringSystem.OnParticleCollision([]types.Vec3{hit})
}

// SetPouring 设置浇水壶是否倾倒
func (r *Room) SetPouring(pouring bool) {
	if emitter, ok := ecs.GetComponent[*components.SprayEmitterComponent](r.entityManager, r.canID); ok {
		emitter.Pouring = pouring
	}
}

// IsPouring 浇水壶是否正在倾倒
func (r *Room) IsPouring() bool {
	emitter, ok := ecs.GetComponent[*components.SprayEmitterComponent](r.entityManager, r.canID)
	return ok && emitter.Pouring
}

// MoveCan 把浇水壶出水口移到水平位置 (x, z)，高度不变
func (r *Room) MoveCan(x, z float64) {
	if tr, ok := ecs.GetComponent[*components.TransformComponent](r.entityManager, r.canID); ok {
		tr.Position.X = x
		tr.Position.Z = z
	}
}

// CanPosition 浇水壶出水口位置
func (r *Room) CanPosition() types.Vec3 {
	if tr, ok := ecs.GetComponent[*components.TransformComponent](r.entityManager, r.canID); ok {
		return tr.Position
	}
	return types.Vec3{}
}

// Place 把物品放入对应插槽
func (r *Room) Place(item types.SocketItem) bool {
	rec, ok := r.receptacles[item]
	if !ok {
		return false
	}
	return rec.Place(item)
}

// Remove 从对应插槽取出物品
func (r *Room) Remove(item types.SocketItem) bool {
	rec, ok := r.receptacles[item]
	if !ok {
		return false
	}
	return rec.Remove()
}

// Toggle 插槽有物品时取出，否则放入
func (r *Room) Toggle(item types.SocketItem) bool {
	rec, ok := r.receptacles[item]
	if !ok {
		return false
	}
	if rec.Occupied() {
		return rec.Remove()
	}
	return rec.Place(item)
}

// Reset 清除全部花朵，地面恢复干燥
func (r *Room) Reset() {
	r.wateringSystem.Reset()
}

// Close 取消插槽订阅；之后 Update 不再生效
// 可重复调用
func (r *Room) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.puzzleSystem.Close()
	log.Printf("[Room] Closed after %.2fs, %d flowers grown", r.elapsed, r.flowersGrown)
}

// PlaySuccessSound 转发给外部音效
func (r *Room) PlaySuccessSound() {
	if r.sound != nil {
		r.sound.PlaySuccessSound()
	}
}

// PlaySuccessParticles 记录一次成功粒子，由渲染层读取
func (r *Room) PlaySuccessParticles() {
	r.bursts++
}

// Config 房间配置
func (r *Room) Config() *config.RoomConfig {
	return r.config
}

// Elapsed 模拟时间（秒）
func (r *Room) Elapsed() float64 {
	return r.elapsed
}

// FlowersGrown 累计生成的花朵数量（重置不清零）
func (r *Room) FlowersGrown() int {
	return r.flowersGrown
}

// PuzzleCompleted 谜题是否已完成
func (r *Room) PuzzleCompleted() bool {
	return r.puzzleSystem.IsCompleted()
}

// EntityManager 底层实体管理器（测试与调试用）
func (r *Room) EntityManager() *ecs.EntityManager {
	return r.entityManager
}
