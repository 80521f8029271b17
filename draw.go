package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tileworld/common"
	"github.com/milk9111/tileworld/ecs/component"
	"golang.org/x/image/colornames"
)

// drawOrder paints floors first and walls last.
var drawOrder = []component.Category{
	component.Floor,
	component.Door,
	component.Interactable,
	component.HealthBuff,
	component.DamageBuff,
	component.Wall,
}

var categoryColors = map[component.Category]color.RGBA{
	component.Wall:         colornames.Slategray,
	component.Floor:        colornames.Darkslategray,
	component.Door:         colornames.Saddlebrown,
	component.HealthBuff:   colornames.Limegreen,
	component.DamageBuff:   colornames.Orangered,
	component.Interactable: colornames.Gold,
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	area := g.world.Area()
	size := g.world.EntitySize()

	for _, cat := range drawOrder {
		g.world.Layers().Visible(cat, area, func(t *component.Tile) {
			g.drawSprite(screen, t.Sprite, t.SourceOffset(common.TileSize), t.Pos, size, categoryColors[cat])
		})
	}

	g.world.Entities().Visible(area, func(e *component.Entity) {
		src := cp.Vector{
			X: float64(e.Animation.Col * common.TileSize),
			Y: float64(e.Animation.Row * common.TileSize),
		}
		fallback := colornames.Crimson
		if e.Kind == component.KindPlayer {
			fallback = colornames.Royalblue
		}
		g.drawSprite(screen, e.Sprite, src, e.Pos, size, fallback)
		g.drawHealthBar(screen, e, size)
	})

	g.drawHUD(screen)
}

// drawSprite draws one sheet cell at a world position, or a flat square when
// the sprite never loaded.
func (g *Game) drawSprite(screen *ebiten.Image, sprite component.Sprite, src, pos cp.Vector, size float64, fallback color.Color) {
	at := g.camera.WorldToScreen(pos)
	data, ok := g.world.Sprites().Image(sprite)
	sheet, isImage := data.(*ebiten.Image)
	if !ok || !isImage {
		vector.DrawFilledRect(screen, float32(at.X), float32(at.Y), float32(size), float32(size), fallback, false)
		return
	}
	cell := image.Rect(int(src.X), int(src.Y), int(src.X)+common.TileSize, int(src.Y)+common.TileSize)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/common.TileSize, size/common.TileSize)
	op.GeoM.Translate(at.X, at.Y)
	screen.DrawImage(sheet.SubImage(cell).(*ebiten.Image), op)

	if g.debug {
		vector.StrokeRect(screen, float32(at.X), float32(at.Y), float32(size), float32(size), 1, colornames.Yellow, false)
	}
}

func (g *Game) drawHealthBar(screen *ebiten.Image, e *component.Entity, size float64) {
	at := g.camera.WorldToScreen(e.Pos)
	frac := e.Health / e.HealthCap()
	vector.DrawFilledRect(screen, float32(at.X), float32(at.Y-6), float32(size), 3, colornames.Darkred, false)
	vector.DrawFilledRect(screen, float32(at.X), float32(at.Y-6), float32(size*frac), 3, colornames.Lime, false)
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d %.0f°", e.ID, e.Angle), int(at.X), int(at.Y+size))
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.0f\n", ebiten.ActualFPS())
	if p := g.world.Player(); p != nil {
		fmt.Fprintf(&b, "HP %.0f/%.0f  LVL %d  XP %.0f\n", p.Health, p.HealthCap(), p.Level, p.Experience)
	}
	fmt.Fprintf(&b, "mobs: %d\n", g.world.Entities().Len()-1)
	for _, line := range g.feed {
		b.WriteString(line + "\n")
	}
	if g.world.Layers().QueryCollision(g.playerRect(), component.HealthBuff) != component.None {
		if p := g.world.Player(); p != nil && !p.HealCooldown.Elapsed(g.world.Clock()) {
			fmt.Fprintf(&b, "HEAL READY IN %.1fs\n", p.HealCooldown.Remaining(g.world.Clock()).Seconds())
		} else {
			b.WriteString("PRESS H TO HEAL\n")
		}
	}
	ebitenutil.DebugPrint(screen, b.String())

	if g.world.Status() == component.StatusDead {
		w, h := g.camera.Size()
		ebitenutil.DebugPrintAt(screen, "YOU DIED - R TO RESPAWN, ESC TO QUIT", int(w/2)-110, int(h/2))
	}
}

func (g *Game) playerRect() common.Rect {
	p := g.world.Player()
	if p == nil {
		return common.Rect{}
	}
	return p.Rect(g.world.EntitySize())
}
