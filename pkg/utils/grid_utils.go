package utils

import (
	"math"
	"sort"

	"github.com/gonewx/vrroom/pkg/types"
)

// DefaultGridStep 放置网格的默认量化步长（1/4 单位）
const DefaultGridStep = 0.25

// GridCell 量化后的水平网格坐标
// 以 step 为单位的整数索引，X 对应世界 X 轴，Z 对应世界 Z 轴
type GridCell struct {
	X int
	Z int
}

// GridCellOf 将世界坐标量化到网格
// 两个水平轴分别四舍五入到最近的 step 倍数，Y 轴忽略
// 恰好在半格处时取偶数格（与常见引擎的 Round 一致）
func GridCellOf(pos types.Vec3, step float64) GridCell {
	if step <= 0 {
		step = DefaultGridStep
	}
	return GridCell{
		X: int(math.RoundToEven(pos.X / step)),
		Z: int(math.RoundToEven(pos.Z / step)),
	}
}

// Center 返回格子中心的世界坐标（Y 取传入值）
func (c GridCell) Center(step float64, y float64) types.Vec3 {
	if step <= 0 {
		step = DefaultGridStep
	}
	return types.Vec3{X: float64(c.X) * step, Y: y, Z: float64(c.Z) * step}
}

// PlacementGrid 已使用网格的集合
// 只增不减，直到调用 Reset
type PlacementGrid struct {
	step  float64
	cells map[GridCell]struct{}
}

// NewPlacementGrid 创建放置网格
func NewPlacementGrid(step float64) *PlacementGrid {
	if step <= 0 {
		step = DefaultGridStep
	}
	return &PlacementGrid{
		step:  step,
		cells: make(map[GridCell]struct{}),
	}
}

// Step 量化步长
func (g *PlacementGrid) Step() float64 {
	return g.step
}

// CellOf 计算坐标所在格子
func (g *PlacementGrid) CellOf(pos types.Vec3) GridCell {
	return GridCellOf(pos, g.step)
}

// Contains 格子是否已被占用
func (g *PlacementGrid) Contains(cell GridCell) bool {
	_, used := g.cells[cell]
	return used
}

// Mark 标记格子已占用
func (g *PlacementGrid) Mark(cell GridCell) {
	g.cells[cell] = struct{}{}
}

// Len 已占用格子数量
func (g *PlacementGrid) Len() int {
	return len(g.cells)
}

// Reset 清空全部格子
func (g *PlacementGrid) Reset() {
	g.cells = make(map[GridCell]struct{})
}

// Cells 返回已占用格子的快照，按 (X, Z) 排序
func (g *PlacementGrid) Cells() []GridCell {
	result := make([]GridCell, 0, len(g.cells))
	for c := range g.cells {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].X != result[j].X {
			return result[i].X < result[j].X
		}
		return result[i].Z < result[j].Z
	})
	return result
}
