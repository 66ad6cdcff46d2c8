package scenario

import (
	"sort"

	"github.com/gonewx/vrroom/pkg/config"
	"github.com/gonewx/vrroom/pkg/room"
	"gonum.org/v1/gonum/stat"
)

// Stats 一组样本的统计量
type Stats struct {
	Mean, StdDev float64
	Min, Median  float64
	Max          float64
}

// SweepReport 多个种子下同一脚本的结果
type SweepReport struct {
	Seeds     []int64
	Runs      []Summary
	Grown     Stats // 累计长出的花朵
	Active    Stats // 结束时存活的花朵
	SolveRate float64
}

// Sweep 用每个种子各跑一次脚本
func Sweep(cfg *config.RoomConfig, sc *Scenario, seeds []int64) SweepReport {
	report := SweepReport{Seeds: seeds}
	if len(seeds) == 0 {
		return report
	}

	grown := make([]float64, 0, len(seeds))
	active := make([]float64, 0, len(seeds))
	solved := 0
	for _, seed := range seeds {
		r := room.NewRoom(cfg, room.Options{Seed: seed})
		sum := Run(r, sc)
		r.Close()

		report.Runs = append(report.Runs, sum)
		grown = append(grown, float64(sum.FlowersGrown))
		active = append(active, float64(sum.ActiveFlowers))
		if sum.PuzzleCompleted {
			solved++
		}
	}

	report.Grown = describe(grown)
	report.Active = describe(active)
	report.SolveRate = float64(solved) / float64(len(seeds))
	return report
}

func describe(xs []float64) Stats {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	var s Stats
	if len(sorted) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(sorted, nil)
	} else {
		s.Mean = stat.Mean(sorted, nil)
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	return s
}
