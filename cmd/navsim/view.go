package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tilenav/common"
	"github.com/milk9111/tilenav/ecs"
	"github.com/milk9111/tilenav/ecs/component"
	"github.com/milk9111/tilenav/navgrid"
	"github.com/milk9111/tilenav/prefabs"
	"github.com/milk9111/tilenav/sim"
	"github.com/spf13/cobra"
)

// cellWidth is the number of terminal columns per grid cell.
const cellWidth = 2

var (
	styleFloor    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleWall     = tcell.StyleDefault.Background(tcell.ColorSlateGray)
	styleAgent    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleWaypoint = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

func ViewCmd() *cobra.Command {
	var (
		level, cost, scenario, agents string
		watch                         bool
	)
	c := &cobra.Command{
		Use:   "view",
		Short: "watch the simulation in the terminal",
		Long: "Left click or drag selects agents, right click orders them to move.\n" +
			"Space pauses, q or Esc quits.",
		RunE: func(cmd *cobra.Command, args []string) error {
			spawns, err := parseAgents(agents)
			if err != nil {
				return err
			}
			s, err := sim.New(sim.Config{
				Level:     level,
				CostModel: cost,
				Scenario:  scenario,
				Agents:    spawns,
				Logger:    newLogger("view"),
			})
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()
			screen.EnableMouse()

			v := &viewer{screen: screen, sim: s}
			if watch {
				w, err := prefabs.NewWatcher("levels", "prefabs", "prefabs/scripts")
				if err != nil {
					return err
				}
				defer w.Close()
				v.watcher = w
			}
			return v.run()
		},
	}
	c.Flags().StringVar(&level, "level", "", "level file (defaults to navigation.yaml)")
	c.Flags().StringVar(&cost, "cost", "", "octile or uniform")
	c.Flags().StringVar(&scenario, "scenario", "", "tengo scenario script")
	c.Flags().StringVar(&agents, "agents", "", "spawn points x,y;x,y")
	c.Flags().BoolVar(&watch, "watch", false, "reload levels, specs and scripts on change")
	return c
}

type viewer struct {
	screen  tcell.Screen
	sim     *sim.Simulation
	watcher *prefabs.Watcher

	paused  bool
	status  string
	pointer component.Pointer
	left    bool
}

func (v *viewer) run() error {
	ticker := time.NewTicker(time.Second / common.TPS)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	var changes <-chan string
	var watchErrs <-chan error
	if v.watcher != nil {
		changes = v.watcher.Events
		watchErrs = v.watcher.Errors
	}

	for {
		select {
		case ev := <-events:
			if !v.handle(ev) {
				return nil
			}
		case path, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			if changed, err := v.sim.Reload(path); err != nil {
				v.status = fmt.Sprintf("reload %s: %v", path, err)
			} else if changed {
				v.status = "reloaded " + path
				v.screen.Clear()
			}
		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			v.status = "watch: " + err.Error()
		case <-ticker.C:
			if !v.paused {
				v.step()
			}
			v.draw()
		}
	}
}

// step feeds the pointer edges gathered since the last tick into the world.
func (v *viewer) step() {
	w := v.sim.World()
	if e, ok := ecs.First(w, component.PointerComponent.Kind()); ok {
		if p, ok := ecs.Get(w, e, component.PointerComponent.Kind()); ok {
			*p = v.pointer
		}
	}
	v.pointer.LeftPressed = false
	v.pointer.LeftReleased = false
	v.pointer.RightPressed = false
	v.sim.Step()
}

func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			v.paused = !v.paused
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		v.pointer.World = worldAt(v.sim.Grid(), col, row)
		v.pointer.Additive = ev.Modifiers()&tcell.ModShift != 0

		left := ev.Buttons()&tcell.Button1 != 0
		if left && !v.left {
			v.pointer.LeftPressed = true
		}
		if !left && v.left {
			v.pointer.LeftReleased = true
		}
		v.left = left
		v.pointer.LeftDown = left
		if ev.Buttons()&tcell.Button2 != 0 {
			v.pointer.RightPressed = true
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// worldAt maps a terminal cell to the centre of the grid cell under it.
func worldAt(g *navgrid.Grid, col, row int) cp.Vector {
	c := navgrid.Cell{X: col / cellWidth, Y: g.Height() - 1 - row}
	return g.GridToWorld(c)
}

// screenAt is the inverse of worldAt. ok is false off the grid.
func screenAt(g *navgrid.Grid, p cp.Vector) (col, row int, ok bool) {
	c, ok := g.WorldToGrid(p)
	if !ok {
		return 0, 0, false
	}
	return c.X * cellWidth, g.Height() - 1 - c.Y, true
}

func (v *viewer) draw() {
	v.screen.Clear()
	render(v.screen, v.sim)

	status := fmt.Sprintf(" %s  tick %d  agents %d ", v.sim.Level(), v.sim.World().Tick(), len(v.sim.Agents()))
	if v.paused {
		status += " paused "
	}
	if v.status != "" {
		status += " " + v.status + " "
	}
	drawText(v.screen, 0, v.sim.Grid().Height(), status, styleStatus)
	v.screen.Show()
}

// render draws the grid, pending waypoints and agents.
func render(screen tcell.Screen, s *sim.Simulation) {
	g := s.Grid()
	for row, line := range g.Rows() {
		for x, ch := range line {
			style, r := styleFloor, '.'
			if ch != '.' {
				style, r = styleWall, ' '
			}
			for i := 0; i < cellWidth; i++ {
				screen.SetContent(x*cellWidth+i, row, r, nil, style)
			}
		}
	}

	w := s.World()
	ecs.ForEach(w, component.AgentComponent.Kind(), func(_ ecs.Entity, a *component.Agent) {
		for _, wp := range a.Order.Waypoints {
			if col, row, ok := screenAt(g, wp); ok {
				screen.SetContent(col, row, '*', nil, styleWaypoint)
			}
		}
	})
	ecs.ForEach2(w, component.AgentComponent.Kind(), component.SelectableComponent.Kind(), func(_ ecs.Entity, a *component.Agent, sel *component.Selectable) {
		col, row, ok := screenAt(g, a.Position)
		if !ok {
			return
		}
		style := styleAgent
		if sel.Selected {
			style = styleSelected
		}
		screen.SetContent(col, row, '@', nil, style)
	})
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
