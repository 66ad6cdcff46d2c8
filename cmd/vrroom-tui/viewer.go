package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/vrroom/pkg/config"
	"github.com/gonewx/vrroom/pkg/room"
	"github.com/gonewx/vrroom/pkg/types"
)

const (
	// 每个字符格对应的世界尺寸（终端字符高约为宽的两倍）
	cellWidth  = 0.25
	cellHeight = 0.5

	canStep = 0.25
	hudRows = 4
)

// Viewer 在终端里绘制房间的俯视图
type Viewer struct {
	screen tcell.Screen
	room   *room.Room

	// 视野的世界范围（所有地面的并集）
	minX, maxX float64
	minZ, maxZ float64

	blooms int
}

// NewViewer 创建终端视图，视野取自房间初始地面
func NewViewer(screen tcell.Screen, r *room.Room) *Viewer {
	v := &Viewer{screen: screen, room: r}
	v.fitBounds(r.Snapshot())
	return v
}

func (v *Viewer) fitBounds(snap room.Snapshot) {
	v.minX, v.maxX = math.Inf(1), math.Inf(-1)
	v.minZ, v.maxZ = math.Inf(1), math.Inf(-1)
	for _, g := range snap.Grounds {
		v.minX = math.Min(v.minX, g.MinX)
		v.maxX = math.Max(v.maxX, g.MaxX)
		v.minZ = math.Min(v.minZ, g.MinZ)
		v.maxZ = math.Max(v.maxZ, g.MaxZ)
	}
	if len(snap.Grounds) == 0 {
		v.minX, v.maxX, v.minZ, v.maxZ = -5, 5, -5, 5
	}
}

// WorldToCell 世界坐标转字符格，Z 轴向上
func (v *Viewer) WorldToCell(x, z float64) (col, row int) {
	col = int(math.Floor((x - v.minX) / cellWidth))
	row = int(math.Floor((v.maxZ - z) / cellHeight))
	return col, row
}

// FieldSize 场地占用的字符格数
func (v *Viewer) FieldSize() (cols, rows int) {
	cols = int(math.Ceil((v.maxX - v.minX) / cellWidth))
	rows = int(math.Ceil((v.maxZ - v.minZ) / cellHeight))
	return cols, rows
}

// HandleKey 处理一个按键，返回 false 表示退出
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	can := v.room.CanPosition()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		v.room.MoveCan(can.X-canStep, can.Z)
	case tcell.KeyRight:
		v.room.MoveCan(can.X+canStep, can.Z)
	case tcell.KeyUp:
		v.room.MoveCan(can.X, can.Z+canStep)
	case tcell.KeyDown:
		v.room.MoveCan(can.X, can.Z-canStep)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			v.room.SetPouring(!v.room.IsPouring())
		case 'r':
			v.room.Reset()
		case '1', '2', '3':
			items := types.AllSocketItems()
			v.room.Toggle(items[ev.Rune()-'1'])
		}
	}
	return true
}

// Draw 绘制一帧
func (v *Viewer) Draw() {
	snap := v.room.Snapshot()
	v.screen.Clear()

	groundStyle := tcell.StyleDefault.Background(toTcell(snap.GroundColor))
	for _, g := range snap.Grounds {
		if !g.Active {
			continue
		}
		c0, r0 := v.WorldToCell(g.MinX, g.MaxZ)
		c1, r1 := v.WorldToCell(g.MaxX, g.MinZ)
		for row := r0; row < r1; row++ {
			for col := c0; col < c1; col++ {
				v.screen.SetContent(col, row, ' ', nil, groundStyle)
			}
		}
	}

	if wall, ok := snap.Object("wall"); ok && wall.Active {
		col, _ := v.WorldToCell(config.WallWorldX, 0)
		_, rows := v.FieldSize()
		wallStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
		for row := 0; row < rows; row++ {
			v.screen.SetContent(col, row, '█', nil, wallStyle)
		}
	}

	dropStyle := groundStyle.Foreground(tcell.ColorAqua)
	for _, d := range snap.Droplets {
		col, row := v.WorldToCell(d.X, d.Z)
		v.screen.SetContent(col, row, '·', nil, dropStyle)
	}

	for _, f := range snap.Flowers {
		col, row := v.WorldToCell(f.Position.X, f.Position.Z)
		glyph := '*'
		if f.Growing {
			glyph = '.'
		}
		v.screen.SetContent(col, row, glyph, nil, groundStyle.Foreground(prefabColor(f.Prefab)))
	}

	canCol, canRow := v.WorldToCell(snap.CanPosition.X, snap.CanPosition.Z)
	canStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	if snap.Pouring {
		canStyle = canStyle.Foreground(tcell.ColorBlue)
	}
	v.screen.SetContent(canCol, canRow, 'U', nil, canStyle)

	v.drawHUD(snap)
	v.screen.Show()
}

func (v *Viewer) drawHUD(snap room.Snapshot) {
	_, rows := v.FieldSize()
	top := rows + 1

	sockets := ""
	for i, s := range snap.Sockets {
		mark := ' '
		if s.Occupied {
			mark = 'x'
		}
		sockets += fmt.Sprintf("%d:[%c]%s ", i+1, mark, s.Item)
	}

	status := "sealed"
	if snap.WinApplied {
		status = "open"
	} else if snap.PuzzleCompleted {
		status = "opening..."
	}

	lines := []string{
		fmt.Sprintf("wet %3.0f%%  flowers %d/%d grown  t=%.1fs", snap.Wetness*100, snap.ActiveFlowers, snap.FlowersGrown, snap.Time),
		fmt.Sprintf("sockets %s  wall %s", sockets, status),
		"arrows move  space pour  1-3 sockets  r reset  q quit",
	}
	for i, line := range lines {
		drawText(v.screen, 0, top+i, line, tcell.StyleDefault)
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func toTcell(c types.Color) tcell.Color {
	rgba := c.RGBA()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

func prefabColor(prefab string) tcell.Color {
	switch prefab {
	case "flower_red":
		return tcell.ColorRed
	case "flower_blue":
		return tcell.ColorBlue
	case "flower_yellow":
		return tcell.ColorYellow
	case "mushroom":
		return tcell.ColorMaroon
	default:
		return tcell.ColorWhite
	}
}
