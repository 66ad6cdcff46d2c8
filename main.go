package main

import (
	"errors"
	"flag"
	"log"

	"github.com/gonewx/vrroom/data"
	"github.com/gonewx/vrroom/pkg/app"
	"github.com/gonewx/vrroom/pkg/config"
	"github.com/gonewx/vrroom/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "房间配置文件路径（默认使用内嵌配置）")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	silent := flag.Bool("silent", false, "禁用音频")
	demo := flag.String("demo", "", "回放内嵌演示脚本（例如 garden）")
	flag.Parse()

	embedded.InitDir(data.Files)

	application, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		Silent:     *silent,
		Demo:       *demo,
	})
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("VR Room - 花园谜题")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(application)
	application.Shutdown()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
