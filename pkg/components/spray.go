package components

import "github.com/gonewx/vrroom/pkg/ecs"

// SprayEmitterComponent 浇水壶出水口
// 倾倒时按 Rate 持续发射水滴
type SprayEmitterComponent struct {
	Pouring bool

	Rate     float64 // 每秒水滴数
	Speed    float64 // 出水初速度
	Spread   float64 // 水平散布
	Gravity  float64 // 重力加速度
	Lifetime float64 // 水滴最长存活时间(秒)

	// SpawnAccumulator 未满一滴的累计量
	SpawnAccumulator float64
	// TotalLaunched 累计发射数量
	TotalLaunched int
}

// DropletComponent 水滴粒子
type DropletComponent struct {
	Emitter ecs.EntityID // 发射器实体
	Gravity float64      // 下落加速度
}

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体（如没有落到地面的水滴）
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}
