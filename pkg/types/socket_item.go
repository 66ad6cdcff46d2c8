package types

import (
	"fmt"
	"strings"
)

// SocketItem 谜题需要放入插槽的物品
type SocketItem int

const (
	// SocketMushroom 蘑菇
	SocketMushroom SocketItem = iota
	// SocketCrystal 水晶
	SocketCrystal
	// SocketFlower 花朵
	SocketFlower
)

// SocketItemCount 谜题所需物品数量
const SocketItemCount = 3

// AllSocketItems 按固定顺序返回全部物品
func AllSocketItems() []SocketItem {
	return []SocketItem{SocketMushroom, SocketCrystal, SocketFlower}
}

// String 返回物品的字符串表示
func (s SocketItem) String() string {
	switch s {
	case SocketMushroom:
		return "mushroom"
	case SocketCrystal:
		return "crystal"
	case SocketFlower:
		return "flower"
	default:
		return "unknown"
	}
}

// ParseSocketItem 从字符串解析物品（不区分大小写）
func ParseSocketItem(name string) (SocketItem, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mushroom":
		return SocketMushroom, nil
	case "crystal":
		return SocketCrystal, nil
	case "flower":
		return SocketFlower, nil
	default:
		return 0, fmt.Errorf("unknown socket item: %q", name)
	}
}
