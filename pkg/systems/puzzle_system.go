package systems

import (
	"log"

	"github.com/gonewx/vrroom/pkg/components"
	"github.com/gonewx/vrroom/pkg/config"
	"github.com/gonewx/vrroom/pkg/ecs"
	"github.com/gonewx/vrroom/pkg/events"
	"github.com/gonewx/vrroom/pkg/types"
)

// PuzzleSystem 三插槽谜题
//
// 三个插槽各自上报放入/取出；每次放入后检查三者是否都已就位，
// 首次全部就位时记录完成，并在 WallDisappearDelay 秒后执行胜利动作：
// 播放可选反馈、隐藏墙和额外地面、显示传送区域和巫师。
type PuzzleSystem struct {
	entityManager *ecs.EntityManager
	config        config.PuzzleConfig
	feedback      Feedback // 可为 nil

	slots     map[types.SocketItem]bool
	completed bool

	winPending bool    // 胜利动作已排期
	winTimer   float64 // 距离执行胜利动作的剩余时间
	winApplied bool

	subs events.Bag
}

// NewPuzzleSystem 创建谜题系统并订阅插槽事件
//
// 参数:
//   - em: 实体管理器（查找可开关的场景对象）
//   - cfg: 谜题配置
//   - receptacles: 物品 -> 插槽；缺失的插槽被跳过（该物品永远无法就位）
//   - feedback: 胜利反馈，可为 nil
func NewPuzzleSystem(em *ecs.EntityManager, cfg config.PuzzleConfig, receptacles map[types.SocketItem]*events.Receptacle, feedback Feedback) *PuzzleSystem {
	s := &PuzzleSystem{
		entityManager: em,
		config:        cfg,
		feedback:      feedback,
		slots:         make(map[types.SocketItem]bool, types.SocketItemCount),
	}

	items, err := cfg.SocketItems()
	if err != nil {
		log.Printf("[PuzzleSystem] WARNING: invalid socket list: %v", err)
	}

	for _, item := range items {
		s.slots[item] = false

		r := receptacles[item]
		if r == nil {
			log.Printf("[PuzzleSystem] Socket %s not assigned, skipping", item)
			continue
		}

		item := item
		s.subs.Add(r.SelectEntered.Subscribe(func(events.SelectEvent) { s.onPlaced(item) }))
		s.subs.Add(r.SelectExited.Subscribe(func(events.SelectEvent) { s.onRemoved(item) }))
	}

	// 胜利后才出现的对象开局必须隐藏
	for _, name := range cfg.EnableOnWin {
		s.setActive(name, false)
	}

	return s
}

func (s *PuzzleSystem) onPlaced(item types.SocketItem) {
	s.slots[item] = true
	log.Printf("[PuzzleSystem] %s placed", item)
	s.checkCompletion()
}

func (s *PuzzleSystem) onRemoved(item types.SocketItem) {
	s.slots[item] = false
	log.Printf("[PuzzleSystem] %s removed", item)
}

// checkCompletion 全部就位且尚未完成时排期胜利动作
func (s *PuzzleSystem) checkCompletion() {
	if s.completed || len(s.slots) != types.SocketItemCount {
		return
	}
	for _, placed := range s.slots {
		if !placed {
			return
		}
	}

	s.completed = true
	s.winPending = true
	s.winTimer = s.config.WallDisappearDelay
	log.Printf("[PuzzleSystem] *** PUZZLE COMPLETED *** win action in %.2fs", s.config.WallDisappearDelay)
}

// Update 推进延迟的胜利动作
func (s *PuzzleSystem) Update(deltaTime float64) {
	if !s.winPending {
		return
	}
	s.winTimer -= deltaTime
	if s.winTimer > 0 {
		return
	}
	s.winPending = false
	s.applyWin()
}

// applyWin 播放反馈并切换场景对象
func (s *PuzzleSystem) applyWin() {
	if s.feedback != nil {
		if s.config.SuccessParticles {
			s.feedback.PlaySuccessParticles()
		}
		if s.config.SuccessSound {
			s.feedback.PlaySuccessSound()
		}
	}

	for _, name := range s.config.DisableOnWin {
		s.setActive(name, false)
	}
	for _, name := range s.config.EnableOnWin {
		s.setActive(name, true)
	}

	s.winApplied = true
	log.Printf("[PuzzleSystem] Win applied: disabled=%v enabled=%v", s.config.DisableOnWin, s.config.EnableOnWin)
}

// setActive 按名称切换场景对象，找不到时静默跳过
func (s *PuzzleSystem) setActive(name string, active bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.ActivatableComponent](s.entityManager) {
		obj, ok := ecs.GetComponent[*components.ActivatableComponent](s.entityManager, id)
		if ok && obj.Name == name {
			obj.Active = active
		}
	}
}

// Close 取消全部插槽订阅，可重复调用
func (s *PuzzleSystem) Close() {
	s.subs.Close()
}

// IsCompleted 是否已记录完成
func (s *PuzzleSystem) IsCompleted() bool {
	return s.completed
}

// IsWinApplied 胜利动作是否已执行
func (s *PuzzleSystem) IsWinApplied() bool {
	return s.winApplied
}

// Slot 指定物品是否就位
func (s *PuzzleSystem) Slot(item types.SocketItem) bool {
	return s.slots[item]
}
