// simulate 无界面运行房间脚本并打印结果
//
// 用法：
//
//	go run ./cmd/simulate --scenario data/scenarios/garden.yaml --seed 42
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gonewx/vrroom/data"
	"github.com/gonewx/vrroom/pkg/config"
	"github.com/gonewx/vrroom/pkg/embedded"
	"github.com/gonewx/vrroom/pkg/game"
	"github.com/gonewx/vrroom/pkg/history"
	"github.com/gonewx/vrroom/pkg/remote"
	"github.com/gonewx/vrroom/pkg/room"
	"github.com/gonewx/vrroom/pkg/scenario"
	"github.com/gonewx/vrroom/pkg/trace"
)

var (
	scenarioPath = flag.String("scenario", "data/scenarios/garden.yaml", "脚本文件路径")
	configPath   = flag.String("config", "", "房间配置文件路径（默认使用内置默认配置）")
	seed         = flag.Int64("seed", 1, "随机种子")
	verbose      = flag.Bool("verbose", false, "显示详细日志")
	record       = flag.Bool("record", false, "把统计累加到用户设置")
	historyPath  = flag.String("history", "", "SQLite 运行记录文件（为空不记录）")
	tracePath    = flag.String("trace", "", "把状态序列写入 zstd 压缩的 JSONL 文件")
	traceEvery   = flag.Int("trace-every", 6, "每隔多少个 tick 记录一次状态")
	seeds        = flag.Int("seeds", 1, "大于 1 时从 --seed 开始连续跑多个种子并输出统计")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	embedded.InitDir(data.Files)
	cfg, err := config.LoadRoomConfigOrEmbedded(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载房间配置失败: %v\n", err)
		os.Exit(1)
	}

	sc, err := scenario.Load(*scenarioPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载脚本失败: %v\n", err)
		os.Exit(1)
	}

	if *seeds > 1 {
		printSweep(scenario.Sweep(cfg, sc, seedRange(*seed, *seeds)))
		return
	}

	r := room.NewRoom(cfg, room.Options{Seed: *seed})
	sum, traced, err := run(r, sc)
	r.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "写入 trace 失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("scenario:   %s (seed %d)\n", *scenarioPath, *seed)
	fmt.Printf("simulated:  %.2fs in %d ticks, %d steps applied\n", sum.Time, sum.Ticks, sum.StepsApplied)
	fmt.Printf("wetness:    %.0f%% (%d hits)\n", sum.Wetness*100, sum.WaterHits)
	fmt.Printf("flowers:    %d active, %d grown\n", sum.ActiveFlowers, sum.FlowersGrown)
	fmt.Printf("puzzle:     completed=%v win=%v\n", sum.PuzzleCompleted, sum.WinApplied)
	if *tracePath != "" {
		fmt.Printf("trace:      %d states -> %s\n", traced, *tracePath)
	}

	if *historyPath != "" {
		if err := recordHistory(*historyPath, sum); err != nil {
			fmt.Fprintf(os.Stderr, "写入运行记录失败: %v\n", err)
			os.Exit(1)
		}
	}

	if *record {
		sm := game.NewSettingsManager(game.OpenStorage(game.AppName))
		sm.SetLastSeed(*seed)
		sm.RecordSession(sum.FlowersGrown, sum.PuzzleCompleted)
		if err := sm.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "保存统计失败: %v\n", err)
			os.Exit(1)
		}
	}
}

func seedRange(first int64, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = first + int64(i)
	}
	return out
}

func printSweep(report scenario.SweepReport) {
	fmt.Printf("scenario:   %s (seeds %d..%d)\n", *scenarioPath, report.Seeds[0], report.Seeds[len(report.Seeds)-1])
	printStats("grown", report.Grown)
	printStats("active", report.Active)
	fmt.Printf("solved:     %.0f%%\n", report.SolveRate*100)
}

func printStats(name string, s scenario.Stats) {
	fmt.Printf("%-11s mean %.2f ± %.2f  min %.0f  median %.1f  max %.0f\n", name+":", s.Mean, s.StdDev, s.Min, s.Median, s.Max)
}

// run 运行脚本，按需把采样的状态写入 trace
func run(r *room.Room, sc *scenario.Scenario) (scenario.Summary, int, error) {
	if *tracePath == "" {
		return scenario.Run(r, sc), 0, nil
	}

	w, err := trace.Create(*tracePath)
	if err != nil {
		return scenario.Summary{}, 0, err
	}

	every := max(*traceEvery, 1)
	var writeErr error
	sum := scenario.RunObserved(r, sc, func(tick int, r *room.Room) {
		if writeErr != nil || tick%every != 0 {
			return
		}
		writeErr = w.Write(remote.NewStateMsg(r.Snapshot()))
	})

	closeErr := w.Close()
	if writeErr != nil {
		return sum, w.Count(), writeErr
	}
	return sum, w.Count(), closeErr
}

// recordHistory 写入本次结果并打印同一脚本最近几次的对比
func recordHistory(path string, sum scenario.Summary) error {
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	name := strings.TrimSuffix(filepath.Base(*scenarioPath), filepath.Ext(*scenarioPath))
	if _, err := store.Record(ctx, history.Run{
		Scenario:        name,
		Seed:            *seed,
		SimTime:         sum.Time,
		Ticks:           sum.Ticks,
		FlowersGrown:    sum.FlowersGrown,
		ActiveFlowers:   sum.ActiveFlowers,
		WaterHits:       sum.WaterHits,
		PuzzleCompleted: sum.PuzzleCompleted,
	}); err != nil {
		return err
	}

	recent, err := store.Recent(ctx, name, 5)
	if err != nil {
		return err
	}
	fmt.Printf("history:    last %d runs of %q\n", len(recent), name)
	for _, r := range recent {
		fmt.Printf("  #%-4d seed %-6d grown %-4d hits %-5d solved=%v\n", r.ID, r.Seed, r.FlowersGrown, r.WaterHits, r.PuzzleCompleted)
	}
	return nil
}
