package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gonewx/vrroom/pkg/config"
	"github.com/gonewx/vrroom/pkg/types"
	"github.com/gonewx/vrroom/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 场景配色
var (
	backgroundColor = color.RGBA{R: 30, G: 34, B: 40, A: 255}
	wallColor       = color.RGBA{R: 140, G: 130, B: 120, A: 255}
	teleportColor   = color.RGBA{R: 90, G: 160, B: 255, A: 160}
	wizardColor     = color.RGBA{R: 180, G: 90, B: 220, A: 255}
	dropletColor    = color.RGBA{R: 120, G: 190, B: 255, A: 255}
	canColor        = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	panelColor      = color.RGBA{R: 20, G: 20, B: 24, A: 255}
	burstColor      = color.RGBA{R: 255, G: 230, B: 120, A: 255}
)

// prefabColors 各预制体的花朵颜色
var prefabColors = map[string]color.RGBA{
	"flower_red":    {R: 230, G: 60, B: 70, A: 255},
	"flower_blue":   {R: 80, G: 120, B: 240, A: 255},
	"flower_yellow": {R: 250, G: 220, B: 60, A: 255},
	"mushroom":      {R: 240, G: 240, B: 230, A: 255},
}

// Draw 绘制房间
func (s *RoomScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s.drawGrounds(screen)
	s.drawSceneObjects(screen)
	s.drawFlowers(screen)
	s.drawDroplets(screen)
	s.drawCan(screen)
	s.drawBurst(screen)
	s.drawHUD(screen)
}

func (s *RoomScene) drawGrounds(screen *ebiten.Image) {
	for _, g := range s.snapshot.Grounds {
		if !g.Active {
			continue
		}
		x, y, w, h := s.view.RectToScreen(g.MinX, g.MaxX, g.MinZ, g.MaxZ)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), g.Color.RGBA(), false)
	}
}

// drawSceneObjects 墙、传送区域和巫师
func (s *RoomScene) drawSceneObjects(screen *ebiten.Image) {
	_, minZ, _, maxZ := config.GetViewBounds()

	if obj, ok := s.snapshot.Object("wall"); ok && obj.Active {
		x1, y1 := s.view.WorldToScreen(config.WallWorldX, minZ)
		x2, y2 := s.view.WorldToScreen(config.WallWorldX, maxZ)
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 6, wallColor, false)
	}

	if obj, ok := s.snapshot.Object("teleport_area"); ok && obj.Active {
		x, y := s.view.WorldToScreen(config.WallWorldX-1, 0)
		vector.StrokeCircle(screen, float32(x), float32(y), 22, 3, teleportColor, true)
	}

	if obj, ok := s.snapshot.Object("wizard"); ok && obj.Active {
		x, y := s.view.WorldToScreen(config.WallWorldX-1, 2)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 10, wizardColor, true)
		ebitenutil.DebugPrintAt(screen, "wizard", int(x)-18, int(y)+12)
	}
}

func (s *RoomScene) drawFlowers(screen *ebiten.Image) {
	for _, f := range s.snapshot.Flowers {
		x, y := s.view.WorldToScreen(f.Position.X, f.Position.Z)
		r := float32(config.FlowerBaseRadius * f.Scale)
		if r <= 0 {
			continue
		}
		clr, ok := prefabColors[f.Prefab]
		if !ok {
			clr = color.RGBA{R: 255, G: 150, B: 200, A: 255}
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, clr, true)

		// 朝向标记
		rad := f.Yaw * math.Pi / 180
		tx := x + math.Cos(rad)*float64(r)
		ty := y - math.Sin(rad)*float64(r)
		vector.StrokeLine(screen, float32(x), float32(y), float32(tx), float32(ty), 1, color.Black, false)
	}
}

func (s *RoomScene) drawDroplets(screen *ebiten.Image) {
	for _, d := range s.snapshot.Droplets {
		x, y := s.view.WorldToScreen(d.X, d.Z)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 1.5, dropletColor, false)
	}
}

func (s *RoomScene) drawCan(screen *ebiten.Image) {
	pos := s.snapshot.CanPosition
	x, y := s.view.WorldToScreen(pos.X, pos.Z)
	width := float32(1)
	if s.snapshot.Pouring {
		width = 3
	}
	vector.StrokeCircle(screen, float32(x), float32(y), 9, width, canColor, true)
}

// drawBurst 谜题完成时的光环
func (s *RoomScene) drawBurst(screen *ebiten.Image) {
	if s.burstTimer <= 0 {
		return
	}
	progress := 1 - s.burstTimer/successBurstDuration
	x, y := s.view.WorldToScreen(config.WallWorldX, 0)
	clr := burstColor
	clr.A = uint8(255 * (1 - progress))
	vector.StrokeCircle(screen, float32(x), float32(y), float32(20+progress*120), 4, clr, true)
}

func (s *RoomScene) drawHUD(screen *ebiten.Image) {
	top := float32(config.GameWindowHeight - config.HUDPanelHeight)
	vector.DrawFilledRect(screen, 0, top, config.GameWindowWidth, config.HUDPanelHeight, panelColor, false)

	snap := s.snapshot
	y := int(top) + 8
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("time %.1fs  wetness %3.0f%%  hits %d  flowers %d (grown %d)",
		snap.Time, snap.Wetness*100, snap.WaterHits, snap.ActiveFlowers, snap.FlowersGrown), 10, y)

	// 湿润度条
	barY := float32(y + 20)
	vector.DrawFilledRect(screen, 10, barY, 200, 8, types.Color{R: 0.2, G: 0.2, B: 0.2, A: 1}.RGBA(), false)
	vector.DrawFilledRect(screen, 10, barY, float32(200*snap.Wetness), 8, snap.GroundColor.RGBA(), false)

	for i, sock := range snap.Sockets {
		mark := "[ ]"
		if sock.Occupied {
			mark = "[x]"
		}
		x := config.SocketLabelX + i*config.SocketLabelSpacing
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d %s %s", i+1, mark, sock.Item), x, int(top)+config.SocketLabelOffsetY)
	}

	status := "puzzle: place mushroom, crystal and flower"
	switch {
	case snap.WinApplied:
		status = "puzzle: solved - the wall is gone"
	case snap.PuzzleCompleted:
		status = "puzzle: complete..."
	}
	ebitenutil.DebugPrintAt(screen, status, 10, y+56)

	sound := "on"
	if s.settings != nil && !s.settings.GetSettings().SoundEnabled {
		sound = "off"
	}
	help := "hold mouse: pour   1/2/3 or click: sockets   R: clear   N: new seed   M: sound " + sound
	if utils.IsMobile() {
		help = "touch the garden to pour   tap a socket to place or remove its item"
	}
	ebitenutil.DebugPrintAt(screen, help, 10, y+80)
}
