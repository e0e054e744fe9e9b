package pathfinding

import (
	"reflect"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tilenav/levels"
	"github.com/milk9111/tilenav/navgrid"
)

func v(x, y float64) cp.Vector { return cp.Vector{X: x, Y: y} }

func cells(xy ...int) []navgrid.Cell {
	out := make([]navgrid.Cell, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, navgrid.Cell{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func TestCross(t *testing.T) {
	if got := Cross(v(0, 0), v(3, 5), v(3, 2)); got != 9 {
		t.Fatalf("Cross left turn = %v, want 9", got)
	}
	if got := Cross(v(0, 0), v(3, 2), v(3, 5)); got != -9 {
		t.Fatalf("Cross right turn = %v, want -9", got)
	}
	if got := Cross(v(1, 1), v(2, 2), v(4, 4)); got != 0 {
		t.Fatalf("Cross collinear = %v, want 0", got)
	}
}

func TestGeneratePortals(t *testing.T) {
	got := GeneratePortals(cells(0, 0, 0, 1, 0, 2, 1, 3, 2, 4, 2, 5), 32, cp.Vector{})
	want := []Portal{
		{Left: v(0, 32), Right: v(32, 32)},
		{Left: v(0, 64), Right: v(32, 64)},
		{Left: v(16, 112), Right: v(48, 80)},
		{Left: v(48, 144), Right: v(80, 112)},
		{Left: v(64, 160), Right: v(96, 160)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("portals = %v\nwant %v", got, want)
	}

	if p := GeneratePortals(cells(0, 0), 32, cp.Vector{}); p != nil {
		t.Fatalf("single cell corridor should have no portals, got %v", p)
	}

	shifted := GeneratePortals(cells(0, 0, 1, 0), 32, v(-64, -32))
	if !reflect.DeepEqual(shifted, []Portal{{Left: v(-32, 0), Right: v(-32, -32)}}) {
		t.Fatalf("origin not applied: %v", shifted)
	}
}

func TestGeneratePortalsRejectsGaps(t *testing.T) {
	cases := []struct {
		name     string
		corridor []navgrid.Cell
	}{
		{"jump", cells(0, 0, 2, 0)},
		{"repeat", cells(1, 1, 1, 1)},
		{"knight", cells(0, 0, 1, 2)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if _, ok := r.(NonAdjacentSegmentError); !ok {
					t.Fatalf("expected NonAdjacentSegmentError panic, got %v", r)
				}
			}()
			GeneratePortals(c.corridor, 32, cp.Vector{})
		})
	}
}

func TestStringPull(t *testing.T) {
	cases := []struct {
		name     string
		corridor []navgrid.Cell
		start    cp.Vector
		end      cp.Vector
		want     []cp.Vector
	}{
		{
			name:     "elbow",
			corridor: cells(0, 1, 1, 1, 1, 0),
			start:    v(48, 48),
			end:      v(80, 16),
			want:     []cp.Vector{v(48, 48), v(32, 32), v(80, 16)},
		},
		{
			name:     "same_cell",
			corridor: cells(3, 3),
			start:    v(100, 100),
			end:      v(120, 110),
			want:     []cp.Vector{v(100, 100), v(120, 110)},
		},
		{
			name:     "straight_vertical",
			corridor: cells(0, 0, 0, 1, 0, 2, 0, 3),
			start:    v(16, 16),
			end:      v(16, 112),
			want:     []cp.Vector{v(16, 16), v(16, 112)},
		},
		{
			name:     "straight_horizontal_off_centre",
			corridor: cells(0, 0, 1, 0, 2, 0, 3, 0),
			start:    v(4, 10),
			end:      v(124, 22),
			want:     []cp.Vector{v(4, 10), v(124, 22)},
		},
		{
			name:     "straight_diagonal",
			corridor: cells(0, 0, 1, 1, 2, 2, 3, 3),
			start:    v(16, 16),
			end:      v(112, 112),
			want:     []cp.Vector{v(16, 16), v(112, 112)},
		},
		{
			name:     "u_turn_around_wall",
			corridor: cells(0, 0, 1, 0, 2, 0, 2, 1, 2, 2, 1, 2, 0, 2),
			start:    v(16, 16),
			end:      v(16, 80),
			want:     []cp.Vector{v(16, 16), v(64, 32), v(64, 64), v(16, 80)},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := NewFunnel(c.start, c.end, c.corridor, 32, cp.Vector{})
			got, iterations := f.stringPull()
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("StringPull = %v, want %v", got, c.want)
			}
			if iterations > f.iterationLimit() {
				t.Fatalf("iterations %d exceed limit %d", iterations, f.iterationLimit())
			}
		})
	}
}

func TestStringPullProperties(t *testing.T) {
	lvl, err := levels.LoadLevelFromFS(levels.LevelsFS, "arena.yaml")
	if err != nil {
		t.Fatal(err)
	}
	g, err := navgrid.FromLevel(lvl, true)
	if err != nil {
		t.Fatal(err)
	}
	pf := NewPathfinder(OctileCost)

	var walkable []navgrid.Cell
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if c := (navgrid.Cell{X: x, Y: y}); g.Walkable(c) {
				walkable = append(walkable, c)
			}
		}
	}

	checked := 0
	for i := 0; i < len(walkable); i += 7 {
		for j := 3; j < len(walkable); j += 11 {
			from, to := walkable[i], walkable[j]
			corridor, err := pf.FindCorridor(g, from, to)
			if err != nil {
				continue
			}
			checkCorridor(t, g, corridor, from, to)

			// Offset the endpoints inside their cells to avoid only testing centres.
			start := g.GridToWorld(from).Add(v(-5, 3))
			end := g.GridToWorld(to).Add(v(7, -6))
			f := NewFunnel(start, end, corridor, g.TileSize(), g.Origin())
			path, iterations := f.stringPull()

			if len(path) < 2 || len(path) > len(f.Portals)+2 {
				t.Fatalf("%s->%s: %d points for %d portals", from, to, len(path), len(f.Portals))
			}
			if path[0] != start || path[len(path)-1] != end {
				t.Fatalf("%s->%s: endpoints %v, %v", from, to, path[0], path[len(path)-1])
			}
			for k := 1; k < len(path); k++ {
				if path[k].Equal(path[k-1]) {
					t.Fatalf("%s->%s: duplicate point %v", from, to, path[k])
				}
			}
			if iterations > f.iterationLimit() {
				t.Fatalf("%s->%s: %d iterations over limit %d", from, to, iterations, f.iterationLimit())
			}
			checked++
		}
	}
	if checked == 0 {
		t.Fatalf("no corridors checked")
	}
}
