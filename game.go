package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tilenav/assets"
	"github.com/milk9111/tilenav/common"
	"github.com/milk9111/tilenav/ecs"
	"github.com/milk9111/tilenav/ecs/component"
	"github.com/milk9111/tilenav/prefabs"
	"github.com/milk9111/tilenav/sim"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// panSpeed is in screen pixels per second.
	panSpeed = 480.0
)

type Game struct {
	sim     *sim.Simulation
	camera  *common.Camera
	sheet   *ebiten.Image
	watcher *prefabs.Watcher
	logger  *log.Logger

	debug  bool
	paused bool
	status string
}

func NewGame(s *sim.Simulation, debug, watch bool, logger *log.Logger) (*Game, error) {
	g := &Game{
		sim:    s,
		camera: common.NewCamera(baseWidth, baseHeight),
		sheet:  ebiten.NewImageFromImage(assets.AgentSheet()),
		logger: logger,
		debug:  debug,
	}
	if watch {
		w, err := prefabs.NewWatcher("levels", "prefabs", "prefabs/scripts")
		if err != nil {
			return nil, err
		}
		g.watcher = w
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.reload()
	g.updateCamera()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	g.updatePointer()
	g.sim.Step()
	return nil
}

// reload drains pending file changes without blocking the frame.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			changed, err := g.sim.Reload(path)
			if err != nil {
				g.logger.Error("reload failed", "path", path, "err", err)
				g.status = "reload failed: " + path
				continue
			}
			if changed {
				g.status = "reloaded " + path
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("watch", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) updateCamera() {
	step := panSpeed / float64(ebiten.TPS())
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.camera.Pan(-step, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.camera.Pan(step, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.camera.Pan(0, -step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.camera.Pan(0, step)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		if wy > 0 {
			g.camera.ZoomBy(1.1)
		} else {
			g.camera.ZoomBy(1 / 1.1)
		}
	}
	g.camera.Clip(g.sim.Grid().Bounds())
}

func (g *Game) updatePointer() {
	w := g.sim.World()
	e, ok := ecs.First(w, component.PointerComponent.Kind())
	if !ok {
		return
	}
	p, _ := ecs.Get(w, e, component.PointerComponent.Kind())

	cx, cy := ebiten.CursorPosition()
	*p = component.Pointer{
		World:        g.camera.ScreenToWorld(float64(cx), float64(cy)),
		LeftDown:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		LeftPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		LeftReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		RightPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Additive:     ebiten.IsKeyPressed(ebiten.KeyShift),
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
