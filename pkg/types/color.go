package types

import "image/color"

// Color 浮点颜色，各通道范围 0.0 ~ 1.0
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// RGBA 转换为 image/color 可用的 8 位颜色
// 超出 [0,1] 的通道会被截断
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: channelToByte(c.R),
		G: channelToByte(c.G),
		B: channelToByte(c.B),
		A: channelToByte(c.A),
	}
}

func channelToByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
