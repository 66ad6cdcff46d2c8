package utils

import (
	"math"

	"github.com/gonewx/vrroom/pkg/types"
)

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 超出范围的输入先被钳制。
//
// 参考：https://easings.net/

// EaseOutSine 正弦缓出
// 特点：起步快、收尾平缓，用于花朵生长
// 公式：f(t) = sin(t·π/2)
func EaseOutSine(t float64) float64 {
	return math.Sin(Clamp01(t) * math.Pi / 2)
}

// EaseOutCubic 三次方缓出
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b（t 不做钳制）
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor 逐通道线性插值，t 被钳制到 [0, 1]
func LerpColor(a, b types.Color, t float64) types.Color {
	t = Clamp01(t)
	return types.Color{
		R: Lerp(a.R, b.R, t),
		G: Lerp(a.G, b.G, t),
		B: Lerp(a.B, b.B, t),
		A: Lerp(a.A, b.A, t),
	}
}

// LerpVec3 逐分量线性插值
func LerpVec3(a, b types.Vec3, t float64) types.Vec3 {
	return types.Vec3{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
		Z: Lerp(a.Z, b.Z, t),
	}
}
