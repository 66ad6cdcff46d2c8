package config

import (
	"fmt"

	"github.com/gonewx/vrroom/pkg/types"
)

// PuzzleConfig 插槽谜题配置
type PuzzleConfig struct {
	// Sockets 三个插槽对应的物品，顺序无关，但必须恰好覆盖全部物品
	Sockets []string `yaml:"sockets"`

	// WallDisappearDelay 完成后延迟执行胜利动作的时间(秒)
	WallDisappearDelay float64 `yaml:"wallDisappearDelay"`

	// 胜利时隐藏的对象（墙、额外的地面）
	DisableOnWin []string `yaml:"disableOnWin"`
	// 胜利时显示的对象（传送区域、巫师），开局强制隐藏
	EnableOnWin []string `yaml:"enableOnWin"`

	SuccessSound     bool `yaml:"successSound"`
	SuccessParticles bool `yaml:"successParticles"`
}

// DefaultPuzzleConfig 返回默认谜题配置
func DefaultPuzzleConfig() PuzzleConfig {
	return PuzzleConfig{
		Sockets:            []string{"mushroom", "crystal", "flower"},
		WallDisappearDelay: 0.5,
		DisableOnWin:       []string{"wall", "plane_to_disable"},
		EnableOnWin:        []string{"teleport_area", "wizard"},
		SuccessSound:       true,
		SuccessParticles:   true,
	}
}

// SocketItems 将插槽名称解析为物品类型
func (p *PuzzleConfig) SocketItems() ([]types.SocketItem, error) {
	items := make([]types.SocketItem, 0, len(p.Sockets))
	for _, name := range p.Sockets {
		item, err := types.ParseSocketItem(name)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// validatePuzzle 验证谜题配置
func validatePuzzle(p *PuzzleConfig) error {
	if len(p.Sockets) != types.SocketItemCount {
		return fmt.Errorf("sockets must list exactly %d items, got %d", types.SocketItemCount, len(p.Sockets))
	}
	items, err := p.SocketItems()
	if err != nil {
		return fmt.Errorf("invalid sockets: %w", err)
	}
	seen := make(map[types.SocketItem]bool, len(items))
	for _, item := range items {
		if seen[item] {
			return fmt.Errorf("socket %s listed twice", item)
		}
		seen[item] = true
	}
	if p.WallDisappearDelay < 0 {
		return fmt.Errorf("wallDisappearDelay must be >= 0, got %.3f", p.WallDisappearDelay)
	}

	names := make(map[string]bool)
	for _, name := range append(append([]string{}, p.DisableOnWin...), p.EnableOnWin...) {
		if name == "" {
			return fmt.Errorf("scene object name cannot be empty")
		}
		if names[name] {
			return fmt.Errorf("scene object %q appears more than once in disableOnWin/enableOnWin", name)
		}
		names[name] = true
	}
	return nil
}
