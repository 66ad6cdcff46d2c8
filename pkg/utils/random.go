package utils

import (
	"math"
	"math/rand"
)

// RandomInUnitCircle 在单位圆内均匀采样一个点
// 返回 (x, y)，满足 x²+y² <= 1
func RandomInUnitCircle(rng *rand.Rand) (float64, float64) {
	// 半径取平方根保证面积均匀
	r := math.Sqrt(rng.Float64())
	theta := rng.Float64() * 2 * math.Pi
	return r * math.Cos(theta), r * math.Sin(theta)
}

// RandomIntInclusive 在 [min, max] 闭区间内均匀取整数
// max < min 时返回 min
func RandomIntInclusive(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// RandomYaw 随机偏航角（度），范围 [0, 360)
func RandomYaw(rng *rand.Rand) float64 {
	return rng.Float64() * 360
}
