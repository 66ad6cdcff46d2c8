package systems

import "github.com/gonewx/vrroom/pkg/types"

// GroundProbe 向下探测地面
//
// FindGround 从 origin 竖直向下最多探测 maxDistance，
// 命中时返回地面上的落点
type GroundProbe interface {
	FindGround(origin types.Vec3, maxDistance float64) (types.Vec3, bool)
}

// DensityQuery 统计已放置物体
//
// CountNearby 返回以 pos 为球心、radius 为半径范围内的已放置物体数量
type DensityQuery interface {
	CountNearby(pos types.Vec3, radius float64) int
}

// ContactSink 接收水滴与地面的接触点
// 同一帧内的接触点一次性交付，首个接触点决定生花位置
type ContactSink interface {
	OnParticleCollision(points []types.Vec3) int
}

// Feedback 谜题完成时的可选反馈
type Feedback interface {
	PlaySuccessSound()
	PlaySuccessParticles()
}
