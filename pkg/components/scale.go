package components

import "github.com/gonewx/vrroom/pkg/types"

// ScaleComponent 存储实体的局部缩放
// 1.0 = 原始大小；生长动画期间从 0 逐渐增大到目标值
type ScaleComponent struct {
	X, Y, Z float64
}

// Uniform 返回等比缩放
func Uniform(s float64) *ScaleComponent {
	return &ScaleComponent{X: s, Y: s, Z: s}
}

// Set 用向量设置缩放
func (s *ScaleComponent) Set(v types.Vec3) {
	s.X, s.Y, s.Z = v.X, v.Y, v.Z
}

// Vec 以向量形式返回缩放
func (s *ScaleComponent) Vec() types.Vec3 {
	return types.Vec3{X: s.X, Y: s.Y, Z: s.Z}
}
