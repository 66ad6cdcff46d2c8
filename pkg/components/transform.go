package components

import "github.com/gonewx/vrroom/pkg/types"

// TransformComponent 世界坐标与朝向
type TransformComponent struct {
	Position types.Vec3
	// Yaw 绕 Y 轴旋转角度（度）
	Yaw float64
}

// VelocityComponent 线速度（单位/秒）
type VelocityComponent struct {
	Velocity types.Vec3
}
