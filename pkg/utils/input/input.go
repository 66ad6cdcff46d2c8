// Package input 把 ebiten 的鼠标、触摸和键盘输入转换成房间操作
//
// 单独成包，模拟核心引用 pkg/utils 时不会连带引入 ebiten。
package input

import (
	"github.com/gonewx/vrroom/pkg/config"
	"github.com/gonewx/vrroom/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 当前帧的指针状态
// 统一处理鼠标和触摸输入
type PointerState struct {
	Pressed bool // 鼠标左键按住或有活动触摸
	X, Y    int  // 指针位置
}

// Pointer 获取指针的完整状态
// 优先使用触摸，其次鼠标
func Pointer() PointerState {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerState{Pressed: true, X: x, Y: y}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       x,
		Y:       y,
	}
}

// socketKeys 插槽快捷键（主键盘和小键盘）
var socketKeys = map[ebiten.Key]types.SocketItem{
	ebiten.Key1:       types.SocketMushroom,
	ebiten.Key2:       types.SocketCrystal,
	ebiten.Key3:       types.SocketFlower,
	ebiten.KeyNumpad1: types.SocketMushroom,
	ebiten.KeyNumpad2: types.SocketCrystal,
	ebiten.KeyNumpad3: types.SocketFlower,
}

// SocketForKey 返回快捷键对应的插槽物品
func SocketForKey(key ebiten.Key) (types.SocketItem, bool) {
	item, ok := socketKeys[key]
	return item, ok
}

// JustPressedSockets 本帧刚按下的插槽快捷键
func JustPressedSockets() []types.SocketItem {
	var items []types.SocketItem
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if item, ok := SocketForKey(key); ok {
			items = append(items, item)
		}
	}
	return items
}

// SocketAtHUD 返回面板上 (x, y) 处的插槽标签
func SocketAtHUD(x, y int) (types.SocketItem, bool) {
	top := config.GameWindowHeight - config.HUDPanelHeight + config.SocketLabelOffsetY
	if y < top || y >= top+config.SocketLabelHeight || x < config.SocketLabelX {
		return 0, false
	}

	offset := x - config.SocketLabelX
	index := offset / config.SocketLabelSpacing
	if offset%config.SocketLabelSpacing >= config.SocketLabelWidth {
		return 0, false
	}

	items := types.AllSocketItems()
	if index >= len(items) {
		return 0, false
	}
	return items[index], true
}

// JustTappedPosition 本帧刚开始的点击或触摸位置
func JustTappedPosition() (x, y int, ok bool) {
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return x, y, true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return x, y, true
	}
	return 0, 0, false
}
