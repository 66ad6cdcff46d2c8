package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/vrroom/pkg/embedded"
	"github.com/gonewx/vrroom/pkg/types"
)

// DefaultRoomConfigPath 内嵌默认房间配置路径
const DefaultRoomConfigPath = "data/room.yaml"

// RoomConfig 房间完整配置
type RoomConfig struct {
	Watering WateringConfig `yaml:"watering"`
	Puzzle   PuzzleConfig   `yaml:"puzzle"`
	Ground   []GroundPlane  `yaml:"ground"`
	Props    []PropConfig   `yaml:"props"`
	Spray    SprayConfig    `yaml:"spray"`
}

// GroundPlane 可以生长花朵的水平地面（轴对齐矩形）
type GroundPlane struct {
	Name   string  `yaml:"name"`
	MinX   float64 `yaml:"minX"`
	MaxX   float64 `yaml:"maxX"`
	MinZ   float64 `yaml:"minZ"`
	MaxZ   float64 `yaml:"maxZ"`
	Height float64 `yaml:"height"`
}

// PropConfig 带刚体的可抓取道具
type PropConfig struct {
	Name               string     `yaml:"name"`
	Position           types.Vec3 `yaml:"position"`
	Mass               float64    `yaml:"mass"`
	CenterOfMassOffset types.Vec3 `yaml:"centerOfMassOffset"` // 越低越稳
}

// SprayConfig 浇水壶水滴发射参数
type SprayConfig struct {
	Rate     float64 `yaml:"rate"`     // 每秒发射水滴数
	Speed    float64 `yaml:"speed"`    // 出水初速度
	Spread   float64 `yaml:"spread"`   // 水平散布（速度随机偏移上限）
	Gravity  float64 `yaml:"gravity"`  // 重力加速度（向下为正）
	Lifetime float64 `yaml:"lifetime"` // 水滴最长存活时间(秒)
	Height   float64 `yaml:"height"`   // 壶嘴离地高度
}

// DefaultCenterOfMassOffset 道具默认重心偏移
var DefaultCenterOfMassOffset = types.Vec3{Y: -0.5}

// UnmarshalYAML 未写 centerOfMassOffset 的道具使用默认重心偏移
func (p *PropConfig) UnmarshalYAML(value *yaml.Node) error {
	type plainProp PropConfig
	raw := plainProp{CenterOfMassOffset: DefaultCenterOfMassOffset}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*p = PropConfig(raw)
	return nil
}

// DefaultRoomConfig 返回默认房间配置
func DefaultRoomConfig() *RoomConfig {
	return &RoomConfig{
		Watering: DefaultWateringConfig(),
		Puzzle:   DefaultPuzzleConfig(),
		Ground: []GroundPlane{
			{Name: "garden", MinX: -5, MaxX: 5, MinZ: -5, MaxZ: 5, Height: 0},
		},
		Props: []PropConfig{
			{Name: "watering_can", Position: types.Vec3{X: 0, Y: 0.3, Z: -1}, Mass: 1, CenterOfMassOffset: DefaultCenterOfMassOffset},
		},
		Spray: SprayConfig{
			Rate:     60,
			Speed:    1.5,
			Spread:   0.4,
			Gravity:  9.81,
			Lifetime: 2.0,
			Height:   1.2,
		},
	}
}

// LoadRoomConfig 从磁盘 YAML 文件加载房间配置
func LoadRoomConfig(filePath string) (*RoomConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read room config file: %w", err)
	}
	return ParseRoomConfig(data)
}

// LoadEmbeddedRoomConfig 从内嵌资源加载房间配置
func LoadEmbeddedRoomConfig(path string) (*RoomConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded room config: %w", err)
	}
	return ParseRoomConfig(data)
}

// LoadRoomConfigOrEmbedded path 非空时读取磁盘文件，否则使用内嵌的 data/room.yaml
// 使用内嵌配置前必须先调用 embedded.Init / embedded.InitDir
func LoadRoomConfigOrEmbedded(path string) (*RoomConfig, error) {
	if path != "" {
		cfg, err := LoadRoomConfig(path)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] Loaded room config from %s", path)
		return cfg, nil
	}

	cfg, err := LoadEmbeddedRoomConfig(DefaultRoomConfigPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] Loaded embedded room config")
	return cfg, nil
}

// ParseRoomConfig 解析 YAML 配置
// 未出现的字段保留默认值；出现的列表整体替换默认列表
func ParseRoomConfig(data []byte) (*RoomConfig, error) {
	cfg := DefaultRoomConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse room config YAML: %w", err)
	}

	if err := validateRoomConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid room config: %w", err)
	}

	return cfg, nil
}

// validateRoomConfig 验证配置的有效性
func validateRoomConfig(cfg *RoomConfig) error {
	if err := validateWatering(&cfg.Watering); err != nil {
		return fmt.Errorf("watering: %w", err)
	}
	if err := validatePuzzle(&cfg.Puzzle); err != nil {
		return fmt.Errorf("puzzle: %w", err)
	}

	if len(cfg.Ground) == 0 {
		return fmt.Errorf("ground cannot be empty")
	}
	for i, g := range cfg.Ground {
		if g.MaxX <= g.MinX || g.MaxZ <= g.MinZ {
			return fmt.Errorf("ground[%d] %q has empty bounds", i, g.Name)
		}
	}

	for i, p := range cfg.Props {
		if p.Name == "" {
			return fmt.Errorf("props[%d] name cannot be empty", i)
		}
		if p.Mass <= 0 {
			return fmt.Errorf("props[%d] %q mass must be > 0, got %.3f", i, p.Name, p.Mass)
		}
	}

	s := cfg.Spray
	if s.Rate < 0 || s.Speed < 0 || s.Spread < 0 {
		return fmt.Errorf("spray rate/speed/spread must be >= 0")
	}
	if s.Gravity <= 0 {
		return fmt.Errorf("spray gravity must be > 0, got %.3f", s.Gravity)
	}
	if s.Lifetime <= 0 {
		return fmt.Errorf("spray lifetime must be > 0, got %.3f", s.Lifetime)
	}
	return nil
}
