package navgrid

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tilenav/levels"
)

func mustGrid(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := FromStrings(rows, 32, cp.Vector{})
	if err != nil {
		t.Fatalf("FromStrings: %v", err)
	}
	return g
}

func TestAccessibleNeighbors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		cell Cell
		want []Cell
	}{
		{
			name: "open_centre_keeps_order",
			rows: []string{"...", "...", "..."},
			cell: Cell{1, 1},
			want: []Cell{{1, 0}, {1, 2}, {0, 2}, {0, 1}, {0, 0}, {2, 0}, {2, 1}, {2, 2}},
		},
		{
			name: "corner_of_grid",
			rows: []string{"...", "...", "..."},
			cell: Cell{0, 0},
			want: []Cell{{0, 1}, {1, 0}, {1, 1}},
		},
		{
			name: "wall_blocks_corner_cut",
			// (1,1) is unwalkable, so (0,0)->(1,... ) diagonals through it are cut.
			rows: []string{"...", ".#.", "..."},
			cell: Cell{0, 0},
			want: []Cell{{0, 1}, {1, 0}},
		},
		{
			name: "single_orthogonal_wall_blocks_diagonal",
			rows: []string{"..", "#."},
			cell: Cell{1, 0},
			want: []Cell{{1, 1}},
		},
		{
			name: "walled_in",
			rows: []string{"###", "#.#", "###"},
			cell: Cell{1, 1},
			want: []Cell{},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := mustGrid(t, c.rows...)
			got := g.AccessibleNeighbors(c.cell)
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("AccessibleNeighbors(%s) = %v, want %v", c.cell, got, c.want)
			}
			for _, n := range got {
				if !g.Walkable(n) {
					t.Fatalf("neighbour %s is not walkable", n)
				}
			}
		})
	}
}

func TestAtBoundsChecked(t *testing.T) {
	g := mustGrid(t, "#.", "..")
	if tt, err := g.At(Cell{0, 1}); err != nil || tt != Unwalkable {
		t.Fatalf("At(0,1) = %v, %v; want unwalkable", tt, err)
	}
	if tt, err := g.At(Cell{0, 0}); err != nil || tt != Walkable {
		t.Fatalf("At(0,0) = %v, %v; want walkable", tt, err)
	}
	for _, c := range []Cell{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, err := g.At(c); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("At(%s) err = %v, want ErrOutOfBounds", c, err)
		}
		if g.Walkable(c) {
			t.Fatalf("Walkable(%s) should be false out of bounds", c)
		}
	}
}

func TestConstructorErrors(t *testing.T) {
	if _, err := FromStrings([]string{"...", ".."}, 32, cp.Vector{}); !errors.Is(err, ErrRaggedRows) {
		t.Fatalf("expected ErrRaggedRows, got %v", err)
	}
	if _, err := FromStrings(nil, 32, cp.Vector{}); !errors.Is(err, ErrEmptyGrid) {
		t.Fatalf("expected ErrEmptyGrid, got %v", err)
	}
	if _, err := FromStrings([]string{"."}, 0, cp.Vector{}); !errors.Is(err, ErrTileSize) {
		t.Fatalf("expected ErrTileSize, got %v", err)
	}
}

func TestWorldGridConversion(t *testing.T) {
	cases := []struct {
		name   string
		origin cp.Vector
	}{
		{"corner_origin", cp.Vector{}},
		{"centered_origin", Centered(4, 3, 32)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := FromStrings([]string{"....", "....", "...."}, 32, c.origin)
			if err != nil {
				t.Fatal(err)
			}
			for y := 0; y < g.Height(); y++ {
				for x := 0; x < g.Width(); x++ {
					cell := Cell{x, y}
					got, ok := g.WorldToGrid(g.GridToWorld(cell))
					if !ok || got != cell {
						t.Fatalf("round trip %s -> %s ok=%v", cell, got, ok)
					}
				}
			}
			if _, ok := g.WorldToGrid(cp.Vector{X: c.origin.X - 1, Y: c.origin.Y}); ok {
				t.Fatalf("point left of the grid should be out of bounds")
			}
			if _, ok := g.WorldToGrid(cp.Vector{X: c.origin.X, Y: c.origin.Y + g.WorldHeight()}); ok {
				t.Fatalf("point on the top edge should be out of bounds")
			}
		})
	}

	g := mustGrid(t, "....", "....")
	if got := g.GridToWorld(Cell{1, 0}); !got.Equal(cp.Vector{X: 48, Y: 16}) {
		t.Fatalf("GridToWorld(1,0) = %v", got)
	}
	bb := g.CellBounds(Cell{1, 1})
	if bb.L != 32 || bb.B != 32 || bb.R != 64 || bb.T != 64 {
		t.Fatalf("CellBounds(1,1) = %+v", bb)
	}
	if c := Centered(4, 2, 32); c.X != -64 || c.Y != -32 {
		t.Fatalf("Centered = %v", c)
	}
}

func TestFromStringsOrientation(t *testing.T) {
	g := mustGrid(t, "#..", "...")
	if g.Walkable(Cell{0, 1}) {
		t.Fatalf("first row should be the top row")
	}
	if !g.Walkable(Cell{0, 0}) {
		t.Fatalf("bottom-left should be walkable")
	}
	want := []string{"#..", "..."}
	if got := g.Rows(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Rows() = %v, want %v", got, want)
	}
}

func TestFromLevel(t *testing.T) {
	lvl, err := levels.LoadLevelFromFS(levels.LevelsFS, "basic_map.json")
	if err != nil {
		t.Fatal(err)
	}
	g, err := FromLevel(lvl, false)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 10 || g.Height() != 8 || g.TileSize() != 32 {
		t.Fatalf("unexpected extents %dx%d @%v", g.Width(), g.Height(), g.TileSize())
	}
	// Tiled row 0 is the top, so it becomes grid row 7.
	if g.Walkable(Cell{4, 7}) {
		t.Fatalf("river should be unwalkable at the top row")
	}
	if !g.Walkable(Cell{4, 2}) {
		t.Fatalf("ford should be walkable at grid row 2")
	}
	if g.Walkable(Cell{7, 6}) || g.Walkable(Cell{7, 5}) {
		t.Fatalf("pond should be unwalkable")
	}

	arena, err := levels.LoadLevelFromFS(levels.LevelsFS, "arena.yaml")
	if err != nil {
		t.Fatal(err)
	}
	ag, err := FromLevel(arena, true)
	if err != nil {
		t.Fatal(err)
	}
	if ag.Origin() != Centered(ag.Width(), ag.Height(), ag.TileSize()) {
		t.Fatalf("expected centred origin, got %v", ag.Origin())
	}
	if !ag.Contains(cp.Vector{}) {
		t.Fatalf("centred grid should contain the world origin")
	}
}
