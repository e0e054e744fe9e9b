package entity

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tilenav/ecs"
	"github.com/milk9111/tilenav/ecs/component"
	"github.com/milk9111/tilenav/navgrid"
	"github.com/milk9111/tilenav/pathfinding"
	"github.com/milk9111/tilenav/prefabs"
	"github.com/milk9111/tilenav/steering"
)

func TestNewAgentAt(t *testing.T) {
	w := ecs.NewWorld()
	pos := cp.Vector{X: 10, Y: -20}
	e, err := NewAgentAt(w, &prefabs.AgentSpec{Name: "scout", MaxSpeed: 50}, pos)
	if err != nil {
		t.Fatalf("NewAgentAt: %v", err)
	}

	a, ok := ecs.Get(w, e, component.AgentComponent.Kind())
	if !ok {
		t.Fatalf("no agent component")
	}
	if a.Name != "scout" || a.MaxSpeed != 50 || a.MaxForce != steering.DefaultMaxForce {
		t.Fatalf("agent = %+v", a)
	}
	if a.Position != pos {
		t.Fatalf("position = %v, want %v", a.Position, pos)
	}
	if a.Controller.ArrivalRadius != steering.DefaultArrivalRadius {
		t.Fatalf("arrival radius = %v", a.Controller.ArrivalRadius)
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || tr.Vector() != pos {
		t.Fatalf("transform = %+v", tr)
	}
	sel, ok := ecs.Get(w, e, component.SelectableComponent.Kind())
	if !ok || sel.Radius <= 0 || sel.Selected {
		t.Fatalf("selectable = %+v", sel)
	}
	if ecs.Has(w, e, component.AnimationComponent.Kind()) {
		t.Fatalf("animation added without defs")
	}
}

func TestNewAgentFromPrefab(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewAgent(w, cp.Vector{})
	if err != nil {
		t.Fatalf("NewAgent: %v", err)
	}
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		t.Fatalf("prefab agent has no animation")
	}
	for _, name := range []string{"idle", "moving"} {
		if _, ok := anim.Defs[name]; !ok {
			t.Fatalf("missing %q animation", name)
		}
	}
	if anim.Current != "idle" {
		t.Fatalf("current = %q, want idle", anim.Current)
	}
}

func TestNewAgentAtNilWorld(t *testing.T) {
	if _, err := NewAgentAt(nil, nil, cp.Vector{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadNavigation(t *testing.T) {
	grid, nav, err := LoadNavigation(&prefabs.NavigationSpec{Level: "basic_map.json", CostModel: "uniform"}, "", nil)
	if err != nil {
		t.Fatalf("LoadNavigation: %v", err)
	}
	if nav.Grid() != grid {
		t.Fatalf("navigator grid differs")
	}
	if nav.CostModel() != pathfinding.UniformCost {
		t.Fatalf("cost model = %+v", nav.CostModel())
	}
	if want := navgrid.Centered(grid.Width(), grid.Height(), grid.TileSize()); grid.Origin() != want {
		t.Fatalf("origin = %v, want %v", grid.Origin(), want)
	}

	if _, _, err := LoadNavigation(&prefabs.NavigationSpec{CostModel: "manhattan"}, "", nil); err == nil {
		t.Fatalf("expected cost model error")
	}
	if _, _, err := LoadNavigation(nil, "missing.json", nil); err == nil {
		t.Fatalf("expected missing level error")
	}
}

func TestReplaceGrid(t *testing.T) {
	w := ecs.NewWorld()
	open, err := navgrid.FromStrings([]string{"....", "...."}, 32, cp.Vector{})
	if err != nil {
		t.Fatalf("FromStrings: %v", err)
	}
	if _, err := NewLevel(w, "a", pathfinding.NewNavigator(open)); err != nil {
		t.Fatalf("NewLevel: %v", err)
	}

	moving, _ := NewAgentAt(w, nil, cp.Vector{X: 16, Y: 16})
	idle, _ := NewAgentAt(w, nil, cp.Vector{X: 48, Y: 16})
	goal := cp.Vector{X: 112, Y: 48}
	a, _ := ecs.Get(w, moving, component.AgentComponent.Kind())
	a.Command([]cp.Vector{{X: 48, Y: 48}, goal})

	walled, err := navgrid.FromStrings([]string{"..#.", "...."}, 32, cp.Vector{})
	if err != nil {
		t.Fatalf("FromStrings: %v", err)
	}
	nav := pathfinding.NewNavigator(walled)
	n, err := ReplaceGrid(w, "b", nav)
	if err != nil {
		t.Fatalf("ReplaceGrid: %v", err)
	}
	if n != 1 {
		t.Fatalf("replanned %d agents, want 1", n)
	}

	req, ok := ecs.Get(w, moving, component.MoveRequestComponent.Kind())
	if !ok || req.Goal != goal {
		t.Fatalf("request = %+v, want goal %v", req, goal)
	}
	if ecs.Has(w, idle, component.MoveRequestComponent.Kind()) {
		t.Fatalf("idle agent was re-planned")
	}

	e, _ := ecs.First(w, component.NavGridComponent.Kind())
	ng, _ := ecs.Get(w, e, component.NavGridComponent.Kind())
	if ng.Level != "b" || ng.Navigator != nav || ng.Grid != walled {
		t.Fatalf("nav grid = %+v", ng)
	}
	if c := ecs.Count(w, component.NavGridComponent.Kind()); c != 1 {
		t.Fatalf("nav grid singletons = %d", c)
	}
}

func TestNewInput(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewInput(w)
	if err != nil {
		t.Fatalf("NewInput: %v", err)
	}
	if !ecs.Has(w, e, component.PointerComponent.Kind()) || !ecs.Has(w, e, component.SelectionBoxComponent.Kind()) {
		t.Fatalf("input singleton incomplete")
	}
}

func TestSetPosition(t *testing.T) {
	w := ecs.NewWorld()
	e, _ := NewAgentAt(w, nil, cp.Vector{})
	a, _ := ecs.Get(w, e, component.AgentComponent.Kind())
	a.Command([]cp.Vector{{X: 100}})

	to := cp.Vector{X: 5, Y: 6}
	if err := SetPosition(w, e, to); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	if a.Position != to || a.Order.Len() != 0 {
		t.Fatalf("agent = %+v", a)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.Vector() != to {
		t.Fatalf("transform = %v", tr.Vector())
	}
}
