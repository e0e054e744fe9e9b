package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tilenav/assets"
	"github.com/milk9111/tilenav/ecs"
	"github.com/milk9111/tilenav/ecs/component"
	"github.com/milk9111/tilenav/ecs/system"
	"github.com/milk9111/tilenav/navgrid"
	"golang.org/x/image/colornames"
)

// spriteScale matches the 1.25 scale the units were drawn at.
const spriteScale = 1.25

var (
	floorColor    = color.RGBA{R: 38, G: 52, B: 38, A: 255}
	wallColor     = colornames.Steelblue
	gridLineColor = color.RGBA{R: 255, G: 255, B: 255, A: 16}
	exploredColor = color.RGBA{R: 255, G: 200, B: 0, A: 24}
	corridorColor = color.RGBA{R: 0, G: 200, B: 255, A: 48}
	failedColor   = color.RGBA{R: 255, G: 0, B: 0, A: 64}
	boxFillColor  = color.RGBA{R: 0, G: 255, B: 0, A: 24}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	grid := g.sim.Grid()
	w := g.sim.World()

	g.drawGrid(screen, grid)
	if g.debug {
		ecs.ForEach(w, component.PathDebugComponent.Kind(), func(_ ecs.Entity, d *component.PathDebug) {
			g.drawPathDebug(screen, grid, d)
		})
	}
	g.drawOrders(screen)
	g.drawAgents(screen)
	g.drawSelectionBox(screen)

	status := fmt.Sprintf("%s  tick %d  FPS %.1f", g.sim.Level(), w.Tick(), ebiten.ActualFPS())
	if g.paused {
		status += "  paused"
	}
	if g.status != "" {
		status += "\n" + g.status
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *Game) cellRect(grid *navgrid.Grid, c navgrid.Cell) (x, y, size float32) {
	bb := grid.CellBounds(c)
	sx, sy := g.camera.WorldToScreen(cp.Vector{X: bb.L, Y: bb.T})
	return float32(sx), float32(sy), float32(grid.TileSize() * g.camera.Zoom)
}

func (g *Game) fillCell(screen *ebiten.Image, grid *navgrid.Grid, c navgrid.Cell, clr color.Color) {
	x, y, size := g.cellRect(grid, c)
	vector.FillRect(screen, x, y, size, size, clr, false)
}

func (g *Game) drawGrid(screen *ebiten.Image, grid *navgrid.Grid) {
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := navgrid.Cell{X: x, Y: y}
			clr := color.Color(floorColor)
			if !grid.Walkable(c) {
				clr = wallColor
			}
			g.fillCell(screen, grid, c, clr)
			px, py, size := g.cellRect(grid, c)
			vector.StrokeRect(screen, px, py, size, size, 1, gridLineColor, false)
		}
	}
}

func (g *Game) line(screen *ebiten.Image, a, b cp.Vector, width float32, clr color.Color) {
	ax, ay := g.camera.WorldToScreen(a)
	bx, by := g.camera.WorldToScreen(b)
	vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), width, clr, true)
}

func (g *Game) drawPathDebug(screen *ebiten.Image, grid *navgrid.Grid, d *component.PathDebug) {
	for _, c := range d.Explored {
		g.fillCell(screen, grid, c, exploredColor)
	}
	for _, c := range d.Corridor {
		g.fillCell(screen, grid, c, corridorColor)
	}
	if d.Failed {
		if c, ok := grid.WorldToGrid(d.Goal); ok {
			g.fillCell(screen, grid, c, failedColor)
		}
		return
	}
	for _, p := range d.Portals {
		g.line(screen, p.Left, p.Right, 1, colornames.Gray)
		g.dot(screen, p.Left, colornames.Lime)
		g.dot(screen, p.Right, colornames.Red)
	}
	for i := 1; i < len(d.Waypoints); i++ {
		g.line(screen, d.Waypoints[i-1], d.Waypoints[i], 2, colornames.Yellow)
	}
}

func (g *Game) dot(screen *ebiten.Image, p cp.Vector, clr color.Color) {
	x, y := g.camera.WorldToScreen(p)
	vector.FillRect(screen, float32(x)-2, float32(y)-2, 4, 4, clr, false)
}

// drawOrders draws what is left of every move order.
func (g *Game) drawOrders(screen *ebiten.Image) {
	ecs.ForEach2(g.sim.World(), component.AgentComponent.Kind(), component.SelectableComponent.Kind(), func(_ ecs.Entity, a *component.Agent, sel *component.Selectable) {
		if !sel.Selected || a.Order.Len() == 0 {
			return
		}
		prev := a.Position
		for _, wp := range a.Order.Waypoints {
			g.line(screen, prev, wp, 1, colornames.Aqua)
			prev = wp
		}
		g.dot(screen, prev, colornames.Aqua)
	})
}

func (g *Game) drawAgents(screen *ebiten.Image) {
	w := g.sim.World()
	ecs.ForEach2(w, component.AgentComponent.Kind(), component.SelectableComponent.Kind(), func(e ecs.Entity, a *component.Agent, sel *component.Selectable) {
		x, y := g.camera.WorldToScreen(a.Position)
		if sel.Selected {
			vector.StrokeCircle(screen, float32(x), float32(y), float32(sel.Radius*g.camera.Zoom), 1.5, colornames.Lime, true)
		}

		col := 0
		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			col = system.SpriteIndex(anim)
		}
		frame := g.sheet.SubImage(assets.FrameRect(0, col)).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-assets.FrameSize/2, -assets.FrameSize/2)
		if a.Velocity.X < 0 {
			op.GeoM.Scale(-1, 1)
		}
		op.GeoM.Scale(spriteScale*g.camera.Zoom, spriteScale*g.camera.Zoom)
		op.GeoM.Translate(x, y)
		screen.DrawImage(frame, op)
	})
}

func (g *Game) drawSelectionBox(screen *ebiten.Image) {
	w := g.sim.World()
	e, ok := ecs.First(w, component.SelectionBoxComponent.Kind())
	if !ok {
		return
	}
	box, _ := ecs.Get(w, e, component.SelectionBoxComponent.Kind())
	if !box.Active {
		return
	}
	r := box.Rect()
	x0, y0 := g.camera.WorldToScreen(cp.Vector{X: r.L, Y: r.T})
	x1, y1 := g.camera.WorldToScreen(cp.Vector{X: r.R, Y: r.B})
	vector.FillRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), boxFillColor, false)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, colornames.Lime, false)
}
