package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/vrroom/pkg/components"
	"github.com/gonewx/vrroom/pkg/config"
	"github.com/gonewx/vrroom/pkg/ecs"
	"github.com/gonewx/vrroom/pkg/entities"
	"github.com/gonewx/vrroom/pkg/types"
	"github.com/gonewx/vrroom/pkg/utils"
)

// SpawnEvent 一次被接受的浇水接触
type SpawnEvent struct {
	Position types.Vec3 // 水滴落点
	Time     float64    // 发生时间（秒）
}

// WateringSystem 浇水生花：放置决策器 + 地面湿润度反馈
//
// 每次接触都会增加湿润计数并刷新地面颜色；
// 生花则受冷却时间、全局上限、网格去重和密度上限共同约束。
type WateringSystem struct {
	entityManager *ecs.EntityManager
	config        config.WateringConfig
	ground        GroundProbe
	density       DensityQuery
	rng           *rand.Rand

	grid          *utils.PlacementGrid // 已使用的量化格子
	activeFlowers []ecs.EntityID       // 仍在场景中的花朵，惰性清理

	clock         float64 // 系统时钟，由 Update 推进
	lastWaterTime float64 // 上次被接受的浇水时间
	hasWatered    bool    // 是否已有被接受的浇水事件

	waterHits   int         // 累计接触次数
	groundColor types.Color // 当前地面显示颜色

	onSpawn func(id ecs.EntityID, prefab string)
}

// NewWateringSystem 创建浇水系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 浇水配置
//   - ground: 向下探测地面的能力
//   - density: 统计已放置物体的能力（可为 nil，跳过密度检测）
//   - rng: 随机数源（为 nil 时使用固定种子）
func NewWateringSystem(em *ecs.EntityManager, cfg config.WateringConfig, ground GroundProbe, density DensityQuery, rng *rand.Rand) *WateringSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	s := &WateringSystem{
		entityManager: em,
		config:        cfg,
		ground:        ground,
		density:       density,
		rng:           rng,
		grid:          utils.NewPlacementGrid(cfg.GridStep),
		activeFlowers: make([]ecs.EntityID, 0, cfg.GlobalMaxFlowers),
		groundColor:   cfg.DryColor,
	}

	// 地面初始为干燥色
	s.applyGroundColor()

	log.Printf("[WateringSystem] Initialized: flowers=%d-%d, radius=%.2f, cooldown=%.2fs, cap=%d, cluster=%d/%.2f",
		cfg.MinFlowers, cfg.MaxFlowers, cfg.SpawnRadius, cfg.WaterCooldown,
		cfg.GlobalMaxFlowers, cfg.MaxFlowersPerCluster, cfg.DensityCheckRadius)
	return s
}

// SetSpawnListener 设置花朵生成回调（用于统计）
func (s *WateringSystem) SetSpawnListener(fn func(id ecs.EntityID, prefab string)) {
	s.onSpawn = fn
}

// Update 推进系统时钟
func (s *WateringSystem) Update(deltaTime float64) {
	s.clock += deltaTime
}

// Now 当前系统时钟（秒）
func (s *WateringSystem) Now() float64 {
	return s.clock
}

// OnParticleCollision 处理同一帧内的全部水滴接触点
//
// 湿润度按接触点数量增加（不受冷却限制）；
// 首个接触点作为一次浇水事件交给放置决策。
//
// 返回:
//   - int: 本次生成的花朵数量
func (s *WateringSystem) OnParticleCollision(points []types.Vec3) int {
	if len(points) == 0 {
		return 0
	}

	s.waterHits += len(points)
	s.updateGroundColor()

	return s.Water(SpawnEvent{Position: points[0], Time: s.clock})
}

// Water 对一次浇水事件做放置决策
//
// 距离上次被接受的事件不足冷却时间时直接忽略，不修改任何生花状态。
// 通过冷却后，无论本批实际生成多少，都记录为新的接受时间。
//
// 返回:
//   - int: 本次生成的花朵数量
func (s *WateringSystem) Water(event SpawnEvent) int {
	if s.hasWatered && event.Time-s.lastWaterTime < s.config.WaterCooldown {
		return 0
	}

	spawned := s.spawnFlowers(event.Position)

	s.lastWaterTime = event.Time
	s.hasWatered = true
	return spawned
}

// spawnFlowers 在 center 周围尝试生成一批花朵
func (s *WateringSystem) spawnFlowers(center types.Vec3) int {
	s.pruneActiveFlowers()

	// 全局上限
	if len(s.activeFlowers) >= s.config.GlobalMaxFlowers {
		return 0
	}

	if len(s.config.Prefabs) == 0 {
		log.Printf("[WateringSystem] WARNING: No flower prefabs configured, skipping spawn")
		return 0
	}

	spawnCount := utils.RandomIntInclusive(s.rng, s.config.MinFlowers, s.config.MaxFlowers)
	spawned := 0

	for i := 0; i < spawnCount; i++ {
		if len(s.activeFlowers) >= s.config.GlobalMaxFlowers {
			break
		}

		cx, cz := utils.RandomInUnitCircle(s.rng)
		spawnPos := center.Add(types.Vec3{
			X: cx * s.config.SpawnRadius,
			Y: s.config.SpawnHeight,
			Z: cz * s.config.SpawnRadius,
		})

		// 网格去重
		cell := s.grid.CellOf(spawnPos)
		if s.grid.Contains(cell) {
			continue
		}

		// 密度检测
		if s.density != nil && s.density.CountNearby(spawnPos, s.config.DensityCheckRadius) >= s.config.MaxFlowersPerCluster {
			continue
		}

		// 向下探测地面，保证花朵贴地
		if s.ground == nil {
			continue
		}
		probeOrigin := spawnPos.Add(types.Up.Scale(s.config.ProbeHeight))
		hit, ok := s.ground.FindGround(probeOrigin, s.config.ProbeDistance)
		if !ok {
			continue
		}

		prefab := s.config.Prefabs[s.rng.Intn(len(s.config.Prefabs))]
		scale := s.config.PrefabScale
		id := entities.NewFlowerEntity(s.entityManager, prefab, hit, utils.RandomYaw(s.rng),
			types.Vec3{X: scale, Y: scale, Z: scale}, s.config.GrowDuration, cell)

		s.activeFlowers = append(s.activeFlowers, id)
		s.grid.Mark(cell)
		spawned++

		if s.onSpawn != nil {
			s.onSpawn(id, prefab)
		}
	}

	if spawned > 0 {
		log.Printf("[WateringSystem] Spawned %d/%d at (%.2f, %.2f, %.2f), active=%d",
			spawned, spawnCount, center.X, center.Y, center.Z, len(s.activeFlowers))
	}
	return spawned
}

// pruneActiveFlowers 移除已被外部销毁的花朵句柄
func (s *WateringSystem) pruneActiveFlowers() {
	alive := s.activeFlowers[:0]
	for _, id := range s.activeFlowers {
		if s.entityManager.IsAlive(id) {
			alive = append(alive, id)
		}
	}
	s.activeFlowers = alive
}

// updateGroundColor 按湿润进度混合地面颜色
func (s *WateringSystem) updateGroundColor() {
	s.groundColor = utils.LerpColor(s.config.DryColor, s.config.LushColor, s.Wetness())
	s.applyGroundColor()
}

// applyGroundColor 把当前颜色写入所有地面；没有地面时什么都不做
func (s *WateringSystem) applyGroundColor() {
	for _, id := range ecs.GetEntitiesWith1[*components.GroundComponent](s.entityManager) {
		if ground, ok := ecs.GetComponent[*components.GroundComponent](s.entityManager, id); ok {
			ground.Color = s.groundColor
		}
	}
}

// Reset 清除全部花朵并恢复初始状态
// 可重复调用
func (s *WateringSystem) Reset() {
	for _, id := range s.activeFlowers {
		if s.entityManager.IsAlive(id) {
			s.entityManager.DestroyEntity(id)
		}
	}
	s.activeFlowers = s.activeFlowers[:0]
	s.grid.Reset()
	s.waterHits = 0
	s.groundColor = s.config.DryColor
	s.applyGroundColor()

	// 冷却也一并清除，重置后的第一次浇水立即生效
	s.hasWatered = false
	s.lastWaterTime = 0

	log.Printf("[WateringSystem] Reset: all flowers cleared")
}

// ActiveFlowers 返回存活花朵的句柄快照
func (s *WateringSystem) ActiveFlowers() []ecs.EntityID {
	s.pruneActiveFlowers()
	result := make([]ecs.EntityID, len(s.activeFlowers))
	copy(result, s.activeFlowers)
	return result
}

// ActiveCount 存活花朵数量
func (s *WateringSystem) ActiveCount() int {
	s.pruneActiveFlowers()
	return len(s.activeFlowers)
}

// WaterHits 累计接触次数
func (s *WateringSystem) WaterHits() int {
	return s.waterHits
}

// Wetness 湿润进度（0.0 ~ 1.0）
// 阈值非法时只要有过接触就视为完全湿润
func (s *WateringSystem) Wetness() float64 {
	if s.config.ParticlesToFullyGreen <= 0 {
		if s.waterHits > 0 {
			return 1
		}
		return 0
	}
	return utils.Clamp01(float64(s.waterHits) / float64(s.config.ParticlesToFullyGreen))
}

// GroundColor 当前地面颜色
func (s *WateringSystem) GroundColor() types.Color {
	return s.groundColor
}

// SpawnedCells 已占用的去重格子
func (s *WateringSystem) SpawnedCells() []utils.GridCell {
	return s.grid.Cells()
}

// LastWaterTime 上次被接受的浇水时间，尚无时返回 false
func (s *WateringSystem) LastWaterTime() (float64, bool) {
	return s.lastWaterTime, s.hasWatered
}
