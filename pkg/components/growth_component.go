package components

import "github.com/gonewx/vrroom/pkg/types"

// GrowthComponent 生长动画状态机
//
// GrowthSystem 每帧推进 ElapsedTime，并把 ScaleComponent 设为
// TargetScale * sin(progress·π/2)。实体被销毁后组件随之消失，动画自然终止。
type GrowthComponent struct {
	// ElapsedTime 已播放时间（秒）
	ElapsedTime float64

	// Duration 动画总时长（秒），<= 0 表示立即完成
	Duration float64

	// TargetScale 生长完成后的缩放（放置时从预制体读取）
	TargetScale types.Vec3

	// IsCompleted 动画是否已完成
	IsCompleted bool
}

// GetProgress 获取动画进度（0.0 到 1.0）
func (g *GrowthComponent) GetProgress() float64 {
	if g.Duration <= 0 {
		return 1.0
	}
	if g.ElapsedTime <= 0 {
		return 0.0
	}
	progress := g.ElapsedTime / g.Duration
	if progress > 1.0 {
		return 1.0
	}
	return progress
}

// IsComplete 判断动画是否播放完成
func (g *GrowthComponent) IsComplete() bool {
	return g.IsCompleted || g.ElapsedTime >= g.Duration
}
