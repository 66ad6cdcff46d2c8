package remote

import (
	"encoding/json"
	"testing"

	"github.com/gonewx/vrroom/pkg/room"
)

func TestDecodeCommand(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"浇水", `{"type":"WATER","x":1,"z":-1}`, CmdWater, false},
		{"倾倒", `{"type":"POUR","on":true}`, CmdPour, false},
		{"放入", `{"type":"PLACE","item":"crystal"}`, CmdPlace, false},
		{"大小写", `{"type":"TOGGLE","item":"Mushroom"}`, CmdToggle, false},
		{"重置", `{"type":"RESET"}`, CmdReset, false},
		{"未知物品", `{"type":"PLACE","item":"sword"}`, "", true},
		{"缺少物品", `{"type":"REMOVE"}`, "", true},
		{"未知类型", `{"type":"JUMP"}`, "", true},
		{"非法 JSON", `{"type":`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := DecodeCommand([]byte(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %s", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeCommand() error: %v", err)
			}
			if cmd.Type != tt.want {
				t.Errorf("Type: got %q, want %q", cmd.Type, tt.want)
			}
		})
	}
}

func TestCommandApply(t *testing.T) {
	r := room.NewRoom(nil, room.Options{Seed: 11})
	defer r.Close()

	Command{Type: CmdMove, X: 1.5, Z: -0.5}.Apply(r)
	can := r.CanPosition()
	if can.X != 1.5 || can.Z != -0.5 {
		t.Errorf("MOVE: can at (%.2f, %.2f)", can.X, can.Z)
	}

	Command{Type: CmdPour, On: true}.Apply(r)
	if !r.IsPouring() {
		t.Error("POUR on should start pouring")
	}
	Command{Type: CmdPour}.Apply(r)
	if r.IsPouring() {
		t.Error("POUR off should stop pouring")
	}

	Command{Type: CmdWater}.Apply(r)
	if r.FlowersGrown() == 0 {
		t.Error("WATER at origin should grow flowers")
	}

	Command{Type: CmdPlace, Item: "flower"}.Apply(r)
	Command{Type: CmdToggle, Item: "mushroom"}.Apply(r)
	snap := r.Snapshot()
	if !snap.Sockets[0].Occupied || !snap.Sockets[2].Occupied {
		t.Errorf("PLACE/TOGGLE did not fill sockets: %+v", snap.Sockets)
	}
	Command{Type: CmdRemove, Item: "flower"}.Apply(r)
	if r.Snapshot().Sockets[2].Occupied {
		t.Error("REMOVE should empty the flower socket")
	}

	Command{Type: CmdReset}.Apply(r)
	if r.Snapshot().ActiveFlowers != 0 {
		t.Error("RESET should clear flowers")
	}
}

func TestStateMsgJSON(t *testing.T) {
	r := room.NewRoom(nil, room.Options{Seed: 12})
	defer r.Close()
	r.WaterAt(0, 0)

	b, err := json.Marshal(NewStateMsg(r.Snapshot()))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if decoded["type"] != TypeState {
		t.Errorf("type: got %v", decoded["type"])
	}
	flowers, _ := decoded["flowers"].([]any)
	if len(flowers) == 0 {
		t.Error("expected flowers in state")
	}
	sockets, _ := decoded["sockets"].([]any)
	if len(sockets) != 3 {
		t.Errorf("expected 3 sockets, got %d", len(sockets))
	}
}
