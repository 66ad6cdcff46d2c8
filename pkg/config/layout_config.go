package config

// 布局配置常量
// 本文件定义了俯视图窗口的尺寸和世界坐标到屏幕坐标的映射参数

// 窗口配置
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600
)

// 俯视图配置
// 世界 X 轴向右，世界 Z 轴向上（屏幕 Y 轴向下）
const (
	// PixelsPerUnit 每个世界单位对应的像素数
	PixelsPerUnit = 50.0

	// ViewOriginX 世界原点在屏幕上的 X 坐标
	ViewOriginX = GameWindowWidth / 2

	// ViewOriginY 世界原点在屏幕上的 Y 坐标（为底部面板留出空间）
	ViewOriginY = (GameWindowHeight - HUDPanelHeight) / 2

	// HUDPanelHeight 底部状态面板高度（像素）
	HUDPanelHeight = 120

	// WallWorldX 墙所在的世界 X 坐标（分隔花园和额外地面）
	WallWorldX = -4.25

	// FlowerBaseRadius 完全长成的花朵半径（像素）
	FlowerBaseRadius = 7.0
)

// 底部面板的插槽标签（可点击切换）
const (
	SocketLabelX       = 10
	SocketLabelSpacing = 130
	SocketLabelOffsetY = 44 // 相对面板顶部
	SocketLabelWidth   = 120
	SocketLabelHeight  = 16
)

// GetViewBounds 返回可见区域的世界坐标边界
// 返回值：minX, minZ, maxX, maxZ
func GetViewBounds() (float64, float64, float64, float64) {
	halfW := float64(GameWindowWidth) / 2 / PixelsPerUnit
	top := float64(ViewOriginY) / PixelsPerUnit
	bottom := float64(GameWindowHeight-HUDPanelHeight-ViewOriginY) / PixelsPerUnit
	return -halfW, -bottom, halfW, top
}
