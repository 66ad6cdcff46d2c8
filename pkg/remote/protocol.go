// Package remote 通过 WebSocket 把房间暴露给外部客户端
//
// 客户端发送 JSON 命令，服务器按固定频率广播 STATE 消息。
// 房间只由 Hub 的 goroutine 访问。
package remote

import (
	"encoding/json"
	"fmt"

	"github.com/gonewx/vrroom/pkg/room"
	"github.com/gonewx/vrroom/pkg/types"
)

// 命令类型
const (
	CmdWater  = "WATER"  // 在 (x, z) 直接浇水
	CmdPour   = "POUR"   // 开始/停止倾倒
	CmdMove   = "MOVE"   // 移动浇水壶到 (x, z)
	CmdPlace  = "PLACE"  // 放入物品
	CmdRemove = "REMOVE" // 取出物品
	CmdToggle = "TOGGLE" // 切换物品
	CmdReset  = "RESET"  // 清除花朵
)

// TypeState 服务器广播的状态消息类型
const TypeState = "STATE"

// Command 客户端命令
type Command struct {
	Type string  `json:"type"`
	X    float64 `json:"x,omitempty"`
	Z    float64 `json:"z,omitempty"`
	Item string  `json:"item,omitempty"`
	On   bool    `json:"on,omitempty"`
}

// DecodeCommand 解析并校验一条命令
func DecodeCommand(data []byte) (Command, error) {
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return Command{}, fmt.Errorf("bad command: %w", err)
	}
	switch cmd.Type {
	case CmdWater, CmdPour, CmdMove, CmdReset:
	case CmdPlace, CmdRemove, CmdToggle:
		if _, err := types.ParseSocketItem(cmd.Item); err != nil {
			return Command{}, err
		}
	default:
		return Command{}, fmt.Errorf("unknown command type %q", cmd.Type)
	}
	return cmd, nil
}

// Apply 在房间上执行命令（调用方保证单线程）
func (c Command) Apply(r *room.Room) {
	switch c.Type {
	case CmdWater:
		r.WaterAt(c.X, c.Z)
	case CmdPour:
		r.SetPouring(c.On)
	case CmdMove:
		r.MoveCan(c.X, c.Z)
	case CmdReset:
		r.Reset()
	case CmdPlace, CmdRemove, CmdToggle:
		item, err := types.ParseSocketItem(c.Item)
		if err != nil {
			return
		}
		switch c.Type {
		case CmdPlace:
			r.Place(item)
		case CmdRemove:
			r.Remove(item)
		default:
			r.Toggle(item)
		}
	}
}

// FlowerState 花朵状态
type FlowerState struct {
	Prefab string  `json:"prefab"`
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	Scale  float64 `json:"scale"`
}

// SocketState 插槽状态
type SocketState struct {
	Item     string `json:"item"`
	Occupied bool   `json:"occupied"`
}

// ObjectState 可开关对象状态
type ObjectState struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// StateMsg 广播给客户端的房间状态
type StateMsg struct {
	Type            string        `json:"type"`
	Time            float64       `json:"time"`
	Wetness         float64       `json:"wetness"`
	WaterHits       int           `json:"water_hits"`
	Droplets        int           `json:"droplets"`
	Can             [3]float64    `json:"can"`
	Pouring         bool          `json:"pouring"`
	FlowersGrown    int           `json:"flowers_grown"`
	PuzzleCompleted bool          `json:"puzzle_completed"`
	WinApplied      bool          `json:"win_applied"`
	Flowers         []FlowerState `json:"flowers"`
	Sockets         []SocketState `json:"sockets"`
	Objects         []ObjectState `json:"objects"`
}

// NewStateMsg 把快照转换为线上格式
func NewStateMsg(snap room.Snapshot) StateMsg {
	msg := StateMsg{
		Type:            TypeState,
		Time:            snap.Time,
		Wetness:         snap.Wetness,
		WaterHits:       snap.WaterHits,
		Droplets:        len(snap.Droplets),
		Can:             [3]float64{snap.CanPosition.X, snap.CanPosition.Y, snap.CanPosition.Z},
		Pouring:         snap.Pouring,
		FlowersGrown:    snap.FlowersGrown,
		PuzzleCompleted: snap.PuzzleCompleted,
		WinApplied:      snap.WinApplied,
		Flowers:         make([]FlowerState, 0, len(snap.Flowers)),
		Sockets:         make([]SocketState, 0, len(snap.Sockets)),
		Objects:         make([]ObjectState, 0, len(snap.Objects)),
	}
	for _, f := range snap.Flowers {
		msg.Flowers = append(msg.Flowers, FlowerState{Prefab: f.Prefab, X: f.Position.X, Z: f.Position.Z, Scale: f.Scale})
	}
	for _, s := range snap.Sockets {
		msg.Sockets = append(msg.Sockets, SocketState{Item: s.Item.String(), Occupied: s.Occupied})
	}
	for _, o := range snap.Objects {
		msg.Objects = append(msg.Objects, ObjectState{Name: o.Name, Active: o.Active})
	}
	return msg
}
