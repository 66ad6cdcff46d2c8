// Package app 提供房间应用的 ebiten 包装器
//
// 该包把初始化逻辑从 main 包提取出来：加载配置、打开设置存储、
// 创建音频和房间场景，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/gonewx/vrroom/pkg/config"
	"github.com/gonewx/vrroom/pkg/game"
	"github.com/gonewx/vrroom/pkg/room"
	"github.com/gonewx/vrroom/pkg/scenario"
	"github.com/gonewx/vrroom/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 房间配置文件路径，为空则使用内嵌的 data/room.yaml
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Silent 不创建音频上下文
	Silent bool
	// Demo 演示脚本名（data/scenarios/<Demo>.yaml），为空则不回放
	Demo string
}

// App 房间应用，实现 ebiten.Game 接口
type App struct {
	sceneManager             *scenes.SceneManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 使用内嵌配置时，调用前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	roomConfig, err := config.LoadRoomConfigOrEmbedded(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("房间配置加载失败: %w", err)
	}

	settingsManager := game.NewSettingsManager(game.OpenStorage(game.AppName))

	var audioContext *audio.Context
	if !cfg.Silent {
		audioContext = audio.NewContext(game.SampleRate)
	}
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var demo *scenario.Scenario
	if cfg.Demo != "" {
		demo, err = scenario.LoadEmbedded("data/scenarios/" + cfg.Demo + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("failed to load demo: %w", err)
		}
		log.Printf("[App] Demo scenario %q: %d steps", cfg.Demo, len(demo.Steps))
	}

	sceneManager := scenes.NewSceneManager()
	sceneManager.SetSceneFactory(func() scenes.Scene {
		settingsManager.SetLastSeed(seed)
		r := room.NewRoom(roomConfig, room.Options{Seed: seed, Sound: audioManager})
		log.Printf("[App] Room created with seed %d", seed)
		// 下一次重新开始换一个种子
		seed++
		scene := scenes.NewRoomScene(r, audioManager, settingsManager, sceneManager)
		if demo != nil {
			scene.SetDemo(demo)
		}
		return scene
	})
	if !sceneManager.Restart() {
		return nil, fmt.Errorf("failed to create room scene")
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.settingsManager.SetFullscreen(false)
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
			a.settingsManager.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时用黑色填充 letterbox 区域
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 保存当前场景和设置
// 在窗口关闭或收到退出信号时调用
func (a *App) Shutdown() {
	a.sceneManager.SaveCurrent()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
