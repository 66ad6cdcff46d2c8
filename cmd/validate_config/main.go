// validate_config 校验房间配置和全部脚本
//
// 先按 schemas/ 下的 JSON Schema 检查结构，再用加载器做语义校验，
// 最后逐个试运行脚本。
//
// 用法：
//
//	go run ./cmd/validate_config [--room data/room.yaml] [--scenarios data/scenarios]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/gonewx/vrroom/pkg/config"
	"github.com/gonewx/vrroom/pkg/room"
	"github.com/gonewx/vrroom/pkg/scenario"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	roomPath    = flag.String("room", "data/room.yaml", "房间配置文件")
	scenarioDir = flag.String("scenarios", "data/scenarios", "脚本目录")
	schemaDir   = flag.String("schemas", "schemas", "JSON Schema 目录")
	dryRun      = flag.Bool("run", true, "逐个运行脚本，确认不会出错")
)

func main() {
	flag.Parse()
	log.SetOutput(io.Discard)

	roomSchema, err := compileSchema(filepath.Join(*schemaDir, "room.schema.json"))
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	scenarioSchema, err := compileSchema(filepath.Join(*schemaDir, "scenario.schema.json"))
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	cfg, err := checkRoom(roomSchema, *roomPath)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", *roomPath, err)
		os.Exit(1)
	}
	fmt.Printf("✅ %s: %d 块地面, %d 个道具, %d 种花\n", *roomPath, len(cfg.Ground), len(cfg.Props), len(cfg.Watering.Prefabs))

	files, err := filepath.Glob(filepath.Join(*scenarioDir, "*.yaml"))
	if err != nil {
		fmt.Printf("❌ 扫描脚本目录失败: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, path := range files {
		sc, err := checkScenario(scenarioSchema, path)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
			continue
		}

		if !*dryRun {
			fmt.Printf("✅ %s: %d 个步骤\n", path, len(sc.Steps))
			continue
		}

		r := room.NewRoom(cfg, room.Options{Seed: 1})
		sum := scenario.Run(r, sc)
		r.Close()
		fmt.Printf("✅ %s: %d 个步骤, 长出 %d 朵花, 谜题完成=%v\n", path, sum.StepsApplied, sum.FlowersGrown, sum.PuzzleCompleted)
	}

	if failed > 0 {
		fmt.Printf("❌ 有 %d 个脚本无效\n", failed)
		os.Exit(1)
	}
}

// checkRoom 结构校验后用加载器做语义校验
func checkRoom(s *jsonschema.Schema, path string) (*config.RoomConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := validateYAML(s, data); err != nil {
		return nil, err
	}
	return config.ParseRoomConfig(data)
}

// checkScenario 同上，针对脚本
func checkScenario(s *jsonschema.Schema, path string) (*scenario.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := validateYAML(s, data); err != nil {
		return nil, err
	}
	return scenario.Parse(data)
}
