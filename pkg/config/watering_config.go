package config

import (
	"fmt"

	"github.com/gonewx/vrroom/pkg/types"
)

// WateringConfig 浇水生花配置
// 对应放置决策器的 SpawnPolicy 以及地面湿润度的视觉反馈
type WateringConfig struct {
	// 花朵与蘑菇预制体名称，每次放置随机选一个
	// 为空时不报错，运行时记录警告并跳过生成
	Prefabs []string `yaml:"prefabs"`

	MinFlowers   int     `yaml:"minFlowers"`   // 每次浇水最少尝试生成数量
	MaxFlowers   int     `yaml:"maxFlowers"`   // 每次浇水最多尝试生成数量
	SpawnRadius  float64 `yaml:"spawnRadius"`  // 以水滴落点为圆心的水平采样半径
	GrowDuration float64 `yaml:"growDuration"` // 生长动画时长(秒)
	PrefabScale  float64 `yaml:"prefabScale"`  // 生长完成后的统一缩放

	WaterCooldown float64 `yaml:"waterCooldown"` // 两次接受的浇水事件之间的最小间隔(秒)

	// 湿润度反馈：从干燥色渐变到茂盛色
	DryColor              types.Color `yaml:"dryColor"`
	LushColor             types.Color `yaml:"lushColor"`
	ParticlesToFullyGreen int         `yaml:"particlesToFullyGreen"`

	// 性能上限
	GlobalMaxFlowers     int     `yaml:"globalMaxFlowers"`     // 场景内同时存在的最大数量
	DensityCheckRadius   float64 `yaml:"densityCheckRadius"`   // 密度检测半径
	MaxFlowersPerCluster int     `yaml:"maxFlowersPerCluster"` // 密度检测半径内允许的最大数量

	// 候选点与地面探测
	SpawnHeight   float64 `yaml:"spawnHeight"`   // 候选点相对落点的固定抬升
	ProbeHeight   float64 `yaml:"probeHeight"`   // 向下探测的起点高度（相对候选点）
	ProbeDistance float64 `yaml:"probeDistance"` // 向下探测的最大距离
	GridStep      float64 `yaml:"gridStep"`      // 去重网格的量化步长
}

// DefaultWateringConfig 返回默认浇水配置
func DefaultWateringConfig() WateringConfig {
	return WateringConfig{
		Prefabs:               []string{"flower_red", "flower_blue", "mushroom"},
		MinFlowers:            1,
		MaxFlowers:            3,
		SpawnRadius:           1.0,
		GrowDuration:          1.5,
		PrefabScale:           1.0,
		WaterCooldown:         0.2,
		DryColor:              types.Color{R: 0.4, G: 0.25, B: 0.1, A: 1},
		LushColor:             types.Color{R: 0, G: 1, B: 0, A: 1},
		ParticlesToFullyGreen: 200,
		GlobalMaxFlowers:      40,
		DensityCheckRadius:    0.3,
		MaxFlowersPerCluster:  3,
		SpawnHeight:           0.1,
		ProbeHeight:           2.0,
		ProbeDistance:         5.0,
		GridStep:              0.25,
	}
}

// validateWatering 验证浇水配置
func validateWatering(w *WateringConfig) error {
	if w.MinFlowers < 0 {
		return fmt.Errorf("minFlowers must be >= 0, got %d", w.MinFlowers)
	}
	if w.MaxFlowers < w.MinFlowers {
		return fmt.Errorf("maxFlowers (%d) must be >= minFlowers (%d)", w.MaxFlowers, w.MinFlowers)
	}
	if w.SpawnRadius < 0 {
		return fmt.Errorf("spawnRadius must be >= 0, got %.3f", w.SpawnRadius)
	}
	if w.GrowDuration < 0 {
		return fmt.Errorf("growDuration must be >= 0, got %.3f", w.GrowDuration)
	}
	if w.PrefabScale <= 0 {
		return fmt.Errorf("prefabScale must be > 0, got %.3f", w.PrefabScale)
	}
	if w.WaterCooldown < 0 {
		return fmt.Errorf("waterCooldown must be >= 0, got %.3f", w.WaterCooldown)
	}
	if w.ParticlesToFullyGreen <= 0 {
		return fmt.Errorf("particlesToFullyGreen must be > 0, got %d", w.ParticlesToFullyGreen)
	}
	if w.GlobalMaxFlowers <= 0 {
		return fmt.Errorf("globalMaxFlowers must be > 0, got %d", w.GlobalMaxFlowers)
	}
	if w.DensityCheckRadius < 0 {
		return fmt.Errorf("densityCheckRadius must be >= 0, got %.3f", w.DensityCheckRadius)
	}
	if w.MaxFlowersPerCluster <= 0 {
		return fmt.Errorf("maxFlowersPerCluster must be > 0, got %d", w.MaxFlowersPerCluster)
	}
	if w.ProbeDistance <= 0 {
		return fmt.Errorf("probeDistance must be > 0, got %.3f", w.ProbeDistance)
	}
	if w.GridStep <= 0 {
		return fmt.Errorf("gridStep must be > 0, got %.3f", w.GridStep)
	}
	for i, name := range w.Prefabs {
		if name == "" {
			return fmt.Errorf("prefabs[%d] cannot be empty", i)
		}
	}
	return nil
}
