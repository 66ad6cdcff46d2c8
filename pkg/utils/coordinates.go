package utils

import "github.com/gonewx/vrroom/pkg/config"

// TopDownView 俯视图坐标映射
//
// 世界坐标 (x, z) 映射到屏幕像素；世界 Z 轴朝屏幕上方。
type TopDownView struct {
	OriginX, OriginY float64 // 世界原点的屏幕坐标
	Scale            float64 // 像素/世界单位
}

// DefaultTopDownView 使用布局常量创建映射
func DefaultTopDownView() TopDownView {
	return TopDownView{
		OriginX: config.ViewOriginX,
		OriginY: config.ViewOriginY,
		Scale:   config.PixelsPerUnit,
	}
}

// WorldToScreen 世界坐标 → 屏幕坐标
func (v TopDownView) WorldToScreen(worldX, worldZ float64) (screenX, screenY float64) {
	return v.OriginX + worldX*v.Scale, v.OriginY - worldZ*v.Scale
}

// ScreenToWorld 屏幕坐标 → 世界坐标
func (v TopDownView) ScreenToWorld(screenX, screenY float64) (worldX, worldZ float64) {
	if v.Scale == 0 {
		return 0, 0
	}
	return (screenX - v.OriginX) / v.Scale, (v.OriginY - screenY) / v.Scale
}

// RectToScreen 世界矩形 → 屏幕矩形（左上角和尺寸）
func (v TopDownView) RectToScreen(minX, maxX, minZ, maxZ float64) (x, y, w, h float64) {
	x, y = v.WorldToScreen(minX, maxZ)
	return x, y, (maxX - minX) * v.Scale, (maxZ - minZ) * v.Scale
}
