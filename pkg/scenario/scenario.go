// Package scenario 解析并运行无界面的房间脚本
package scenario

import (
	"fmt"
	"os"
	"sort"

	"github.com/gonewx/vrroom/pkg/embedded"
	"github.com/gonewx/vrroom/pkg/room"
	"github.com/gonewx/vrroom/pkg/types"
	"gopkg.in/yaml.v3"
)

// Point 水平坐标
type Point struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

// Step 脚本中的一个动作，At 时刻之后的第一帧执行
type Step struct {
	At     float64 `yaml:"at"`
	Water  *Point  `yaml:"water,omitempty"`  // 直接在该点产生一次接触
	Pour   *bool   `yaml:"pour,omitempty"`   // 开始/停止倾倒
	Can    *Point  `yaml:"can,omitempty"`    // 移动浇水壶
	Place  string  `yaml:"place,omitempty"`  // 放入物品
	Remove string  `yaml:"remove,omitempty"` // 取出物品
	Reset  bool    `yaml:"reset,omitempty"`  // 清除花朵
}

// Scenario 无界面模拟脚本
type Scenario struct {
	DT       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
	Steps    []Step  `yaml:"steps"`
}

// Summary 模拟结果
type Summary struct {
	Time            float64
	Ticks           int
	StepsApplied    int
	WaterHits       int
	Wetness         float64
	ActiveFlowers   int
	FlowersGrown    int
	PuzzleCompleted bool
	WinApplied      bool
}

// Load 从 YAML 文件加载脚本
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// LoadEmbedded 从嵌入资源加载脚本
func LoadEmbedded(path string) (*Scenario, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded scenario: %w", err)
	}
	return Parse(data)
}

// Parse 解析并校验脚本，步骤按时间稳定排序
func Parse(data []byte) (*Scenario, error) {
	sc := &Scenario{DT: 1.0 / 60}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	if sc.DT <= 0 {
		return nil, fmt.Errorf("dt must be > 0, got %.4f", sc.DT)
	}
	if sc.Duration <= 0 {
		return nil, fmt.Errorf("duration must be > 0, got %.4f", sc.Duration)
	}
	for i, step := range sc.Steps {
		if step.At < 0 {
			return nil, fmt.Errorf("steps[%d]: at must be >= 0", i)
		}
		for _, name := range []string{step.Place, step.Remove} {
			if name == "" {
				continue
			}
			if _, err := types.ParseSocketItem(name); err != nil {
				return nil, fmt.Errorf("steps[%d]: %w", i, err)
			}
		}
	}

	sort.SliceStable(sc.Steps, func(i, j int) bool { return sc.Steps[i].At < sc.Steps[j].At })
	return sc, nil
}

// Observer 每个 tick 结束后调用
type Observer func(tick int, r *room.Room)

// Run 按固定步长驱动房间直到 Duration
func Run(r *room.Room, sc *Scenario) Summary {
	return RunObserved(r, sc, nil)
}

// RunObserved 同 Run，每个 tick 后调用 observe（可为 nil）
func RunObserved(r *room.Room, sc *Scenario, observe Observer) Summary {
	var sum Summary
	player := NewPlayer(sc)
	clock := 0.0

	for clock < sc.Duration {
		sum.StepsApplied += player.Advance(r, clock)
		r.Update(sc.DT)
		clock += sc.DT
		sum.Ticks++
		if observe != nil {
			observe(sum.Ticks, r)
		}
	}

	snap := r.Snapshot()
	sum.Time = snap.Time
	sum.WaterHits = snap.WaterHits
	sum.Wetness = snap.Wetness
	sum.ActiveFlowers = snap.ActiveFlowers
	sum.FlowersGrown = snap.FlowersGrown
	sum.PuzzleCompleted = snap.PuzzleCompleted
	sum.WinApplied = snap.WinApplied
	return sum
}

// Player 按房间时间逐步回放脚本，用于交互界面的演示模式
type Player struct {
	steps []Step
	next  int
}

// NewPlayer 创建回放器
func NewPlayer(sc *Scenario) *Player {
	return &Player{steps: sc.Steps}
}

// Advance 执行所有 At <= clock 且尚未执行的步骤，返回本次执行数量
func (p *Player) Advance(r *room.Room, clock float64) int {
	applied := 0
	for p.next < len(p.steps) && p.steps[p.next].At <= clock {
		apply(r, p.steps[p.next])
		p.next++
		applied++
	}
	return applied
}

// Done 全部步骤已执行
func (p *Player) Done() bool {
	return p.next >= len(p.steps)
}

// apply 执行一个步骤（物品名已在解析时校验）
func apply(r *room.Room, step Step) {
	if step.Can != nil {
		r.MoveCan(step.Can.X, step.Can.Z)
	}
	if step.Pour != nil {
		r.SetPouring(*step.Pour)
	}
	if step.Water != nil {
		r.WaterAt(step.Water.X, step.Water.Z)
	}
	if step.Place != "" {
		item, _ := types.ParseSocketItem(step.Place)
		r.Place(item)
	}
	if step.Remove != "" {
		item, _ := types.ParseSocketItem(step.Remove)
		r.Remove(item)
	}
	if step.Reset {
		r.Reset()
	}
}
