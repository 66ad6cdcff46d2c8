// Package history 把无界面模拟的结果记录到 SQLite
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Run 一次模拟的结果
type Run struct {
	ID              int64
	Scenario        string
	Seed            int64
	SimTime         float64
	Ticks           int
	FlowersGrown    int
	ActiveFlowers   int
	WaterHits       int
	PuzzleCompleted bool
	RecordedAt      time.Time
}

// Store SQLite 运行记录
type Store struct {
	db *sql.DB
}

// Open 打开（必要时创建）数据库文件
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario TEXT NOT NULL,
			seed INTEGER NOT NULL,
			sim_time REAL NOT NULL,
			ticks INTEGER NOT NULL,
			flowers_grown INTEGER NOT NULL,
			active_flowers INTEGER NOT NULL,
			water_hits INTEGER NOT NULL,
			puzzle_completed INTEGER NOT NULL,
			recorded_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS runs_scenario ON runs(scenario, id);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Record 写入一条记录，返回自增 ID
func (s *Store) Record(ctx context.Context, run Run) (int64, error) {
	if run.RecordedAt.IsZero() {
		run.RecordedAt = time.Now()
	}
	completed := 0
	if run.PuzzleCompleted {
		completed = 1
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (scenario, seed, sim_time, ticks, flowers_grown, active_flowers, water_hits, puzzle_completed, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Scenario, run.Seed, run.SimTime, run.Ticks, run.FlowersGrown, run.ActiveFlowers,
		run.WaterHits, completed, run.RecordedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	return res.LastInsertId()
}

// Recent 按时间倒序返回某个脚本最近的 limit 条记录；scenario 为空表示全部
func (s *Store) Recent(ctx context.Context, scenario string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, scenario, seed, sim_time, ticks, flowers_grown, active_flowers, water_hits, puzzle_completed, recorded_at
		 FROM runs WHERE (? = '' OR scenario = ?) ORDER BY id DESC LIMIT ?`,
		scenario, scenario, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var completed int
		var recorded string
		if err := rows.Scan(&r.ID, &r.Scenario, &r.Seed, &r.SimTime, &r.Ticks, &r.FlowersGrown,
			&r.ActiveFlowers, &r.WaterHits, &completed, &recorded); err != nil {
			return nil, err
		}
		r.PuzzleCompleted = completed != 0
		r.RecordedAt, _ = time.Parse(time.RFC3339Nano, recorded)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close 关闭数据库
func (s *Store) Close() error {
	return s.db.Close()
}
