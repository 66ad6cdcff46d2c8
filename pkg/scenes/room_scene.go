package scenes

import (
	"log"

	"github.com/gonewx/vrroom/pkg/config"
	"github.com/gonewx/vrroom/pkg/game"
	"github.com/gonewx/vrroom/pkg/room"
	"github.com/gonewx/vrroom/pkg/scenario"
	"github.com/gonewx/vrroom/pkg/utils"
	"github.com/gonewx/vrroom/pkg/utils/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RoomScene 花园谜题房间的俯视图
//
// 操作：
//   - 按住鼠标左键：浇水壶移到指针处并倾倒
//   - 1/2/3：放入或取出蘑菇、水晶、花朵
//   - R：清除花朵；N：换一个种子重新开始；M：静音开关
type RoomScene struct {
	room         *room.Room
	audio        *game.AudioManager    // 可为 nil
	settings     *game.SettingsManager // 可为 nil
	sceneManager *SceneManager         // 可为 nil（不支持重新开始）
	view         utils.TopDownView
	demo         *scenario.Player // 演示回放，可为 nil

	snapshot    room.Snapshot
	lastGrown   int // 上一帧的累计花朵数，用于触发破土音效
	lastBursts  int
	burstTimer  float64 // 成功粒子的剩余显示时间
	reportedWin bool
	saved       bool
}

// successBurstDuration 成功粒子显示时长（秒）
const successBurstDuration = 1.5

// NewRoomScene 创建房间场景
//
// 参数：
//   - r: 房间（场景关闭时由场景负责 Close）
//   - am: 音频管理器，可为 nil
//   - sm: 设置管理器，可为 nil
//   - mgr: 场景管理器，可为 nil
func NewRoomScene(r *room.Room, am *game.AudioManager, sm *game.SettingsManager, mgr *SceneManager) *RoomScene {
	s := &RoomScene{
		room:         r,
		audio:        am,
		settings:     sm,
		sceneManager: mgr,
		view:         utils.DefaultTopDownView(),
	}
	s.snapshot = r.Snapshot()
	log.Printf("[RoomScene] Created")
	return s
}

// SetDemo 设置演示脚本，按房间时间自动执行
func (s *RoomScene) SetDemo(sc *scenario.Scenario) {
	s.demo = scenario.NewPlayer(sc)
}

// Update 处理输入并推进房间
func (s *RoomScene) Update(deltaTime float64) {
	if s.demo != nil && !s.demo.Done() {
		s.demo.Advance(s.room, s.room.Elapsed())
	} else {
		s.handlePointer()
	}
	s.handleKeys()

	s.room.Update(deltaTime)
	s.snapshot = s.room.Snapshot()

	if s.snapshot.FlowersGrown > s.lastGrown && s.audio != nil {
		s.audio.PlayBloom()
	}
	s.lastGrown = s.snapshot.FlowersGrown

	if s.snapshot.SuccessBursts > s.lastBursts {
		s.burstTimer = successBurstDuration
	}
	s.lastBursts = s.snapshot.SuccessBursts
	if s.burstTimer > 0 {
		s.burstTimer -= deltaTime
	}

	if s.snapshot.WinApplied && !s.reportedWin {
		s.reportedWin = true
		log.Printf("[RoomScene] Puzzle solved at %.2fs", s.snapshot.Time)
	}
}

// handlePointer 指针按住时倾倒浇水壶
func (s *RoomScene) handlePointer() {
	pointer := input.Pointer()
	inField := pointer.Y < config.GameWindowHeight-config.HUDPanelHeight

	if pointer.Pressed && inField {
		wx, wz := s.view.ScreenToWorld(float64(pointer.X), float64(pointer.Y))
		s.room.MoveCan(wx, wz)
		s.room.SetPouring(true)
		return
	}
	s.room.SetPouring(false)
}

// handleKeys 插槽与功能键
func (s *RoomScene) handleKeys() {
	for _, item := range input.JustPressedSockets() {
		s.room.Toggle(item)
	}

	// 点击面板上的插槽标签
	if x, y, ok := input.JustTappedPosition(); ok {
		if item, hit := input.SocketAtHUD(x, y); hit {
			s.room.Toggle(item)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.room.Reset()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) && s.settings != nil {
		enabled := !s.settings.GetSettings().SoundEnabled
		s.settings.SetSoundEnabled(enabled)
		log.Printf("[RoomScene] Sound enabled: %v", enabled)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) && s.sceneManager != nil {
		s.sceneManager.Restart()
	}
}

// SaveOnExit 关闭房间并保存统计
// 多次调用只保存一次
func (s *RoomScene) SaveOnExit() bool {
	if s.saved {
		return true
	}
	s.saved = true
	s.room.Close()

	if s.settings == nil {
		return true
	}
	s.settings.RecordSession(s.room.FlowersGrown(), s.room.PuzzleCompleted())
	if err := s.settings.Save(); err != nil {
		log.Printf("[RoomScene] Warning: failed to save settings: %v", err)
		return false
	}
	return true
}
