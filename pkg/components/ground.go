package components

import "github.com/gonewx/vrroom/pkg/types"

// GroundComponent 水平地面（轴对齐矩形）
// 既是向下探测的目标，也是湿润度颜色的显示面
type GroundComponent struct {
	Name       string
	MinX, MaxX float64
	MinZ, MaxZ float64
	Height     float64

	// Color 当前显示颜色（干燥 → 茂盛）
	Color types.Color
}

// Contains 水平坐标是否落在地面范围内（含边界）
func (g *GroundComponent) Contains(x, z float64) bool {
	return x >= g.MinX && x <= g.MaxX && z >= g.MinZ && z <= g.MaxZ
}
