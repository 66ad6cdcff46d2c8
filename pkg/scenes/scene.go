package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个可绘制的场景（房间视图等）
type Scene interface {
	// Update 按帧推进场景逻辑
	// deltaTime 为距上一帧的时间（秒）
	Update(deltaTime float64)

	// Draw 绘制场景
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：程序退出时保存状态
//
// 实现此接口的场景会在窗口关闭或进程收到退出信号时被调用 SaveOnExit()。
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}

// 编译期检查
var (
	_ Scene    = (*RoomScene)(nil)
	_ Saveable = (*RoomScene)(nil)
)
