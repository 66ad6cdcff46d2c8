// vrroom-tui 在终端里运行花园房间
//
// 方向键移动浇水壶，空格倾倒，1/2/3 放入或取出谜题物品。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/vrroom/data"
	"github.com/gonewx/vrroom/pkg/config"
	"github.com/gonewx/vrroom/pkg/embedded"
	"github.com/gonewx/vrroom/pkg/game"
	"github.com/gonewx/vrroom/pkg/room"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const frameInterval = 16 * time.Millisecond

var (
	configPath = flag.String("config", "", "房间配置文件路径（默认使用内置默认配置）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	silent     = flag.Bool("silent", false, "禁用声音")
	logFile    = flag.String("log", "", "日志输出文件（默认丢弃）")
)

// speakerSound 通过扬声器播放成功音效
type speakerSound struct {
	rate beep.SampleRate
}

func (s speakerSound) PlaySuccessSound() {
	speaker.Play(game.NewChime(s.rate))
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法创建日志文件: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	embedded.InitDir(data.Files)
	cfg, err := config.LoadRoomConfigOrEmbedded(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载房间配置失败: %v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	opts := room.Options{Seed: *seed}
	audioReady := false
	if !*silent {
		rate := beep.SampleRate(game.SampleRate)
		if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
			// 没有声卡也能运行
			log.Printf("[TUI] Audio initialization failed: %v", err)
		} else {
			audioReady = true
			opts.Sound = speakerSound{rate: rate}
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	r := room.NewRoom(cfg, opts)
	viewer := NewViewer(screen, r)

	run(screen, r, viewer)

	r.Close()
	screen.Fini()
	if audioReady {
		speaker.Close()
	}
	fmt.Printf("flowers grown: %d, puzzle solved: %v\n", r.FlowersGrown(), r.PuzzleCompleted())
}

// run 主循环：事件在单独的 goroutine 中读取，模拟只在本 goroutine 推进
func run(screen tcell.Screen, r *room.Room, viewer *Viewer) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !viewer.HandleKey(ev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			r.Update(now.Sub(last).Seconds())
			last = now
			viewer.Draw()
		}
	}
}
