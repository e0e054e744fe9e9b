package navgrid

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tilenav/levels"
)

var (
	ErrOutOfBounds = errors.New("navgrid: cell out of bounds")
	ErrRaggedRows  = errors.New("navgrid: rows have unequal length")
	ErrEmptyGrid   = errors.New("navgrid: grid has no cells")
	ErrTileSize    = errors.New("navgrid: tile size must be positive")
)

type TileType uint8

const (
	Walkable TileType = iota
	Unwalkable
)

func (t TileType) String() string {
	if t == Unwalkable {
		return "unwalkable"
	}
	return "walkable"
}

// Cell is an integer grid coordinate. (0,0) is the bottom-left cell.
type Cell struct {
	X int
	Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// neighborDeltas is the fixed expansion order used by AccessibleNeighbors.
var neighborDeltas = [8]Cell{
	{0, -1}, {0, 1},
	{-1, 1}, {-1, 0}, {-1, -1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is an immutable traversability map. It is safe for concurrent reads.
type Grid struct {
	tiles    []TileType
	width    int
	height   int
	tileSize float64
	origin   cp.Vector
}

// New builds a grid from rows indexed [y][x], row 0 at the bottom.
func New(rows [][]TileType, tileSize float64, origin cp.Vector) (*Grid, error) {
	if tileSize <= 0 || math.IsNaN(tileSize) {
		return nil, ErrTileSize
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	tiles := make([]TileType, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, len(row), width)
		}
		tiles = append(tiles, row...)
	}
	return &Grid{
		tiles:    tiles,
		width:    width,
		height:   len(rows),
		tileSize: tileSize,
		origin:   origin,
	}, nil
}

// FromStrings builds a grid from ASCII rows, top row first. '#' and 'W' are
// unwalkable.
func FromStrings(rows []string, tileSize float64, origin cp.Vector) (*Grid, error) {
	out := make([][]TileType, len(rows))
	for i, line := range rows {
		row := make([]TileType, 0, len(line))
		for _, r := range line {
			switch r {
			case '#', 'W':
				row = append(row, Unwalkable)
			default:
				row = append(row, Walkable)
			}
		}
		out[len(rows)-1-i] = row
	}
	return New(out, tileSize, origin)
}

// FromTiledMap builds a grid from a Tiled map, flipping its top-down rows.
func FromTiledMap(m *levels.TiledMap, origin cp.Vector) (*Grid, error) {
	if m == nil {
		return nil, ErrEmptyGrid
	}
	rows := make([][]TileType, m.Height)
	for ty := 0; ty < m.Height; ty++ {
		row := make([]TileType, m.Width)
		for x := 0; x < m.Width; x++ {
			if m.Blocked(x, ty) {
				row[x] = Unwalkable
			}
		}
		rows[m.Height-1-ty] = row
	}
	return New(rows, float64(m.TileWidth), origin)
}

// FromLevel builds a grid from either level format.
func FromLevel(l *levels.Level, centered bool) (*Grid, error) {
	if l == nil {
		return nil, ErrEmptyGrid
	}
	var (
		w, h int
		ts   = l.TileSize()
	)
	switch {
	case l.Tiled != nil:
		w, h = l.Tiled.Width, l.Tiled.Height
	case l.Ascii != nil:
		h = len(l.Ascii.Rows)
		if h > 0 {
			w = len([]rune(l.Ascii.Rows[0]))
		}
	default:
		return nil, ErrEmptyGrid
	}
	origin := cp.Vector{}
	if centered {
		origin = Centered(w, h, ts)
	}
	if l.Tiled != nil {
		return FromTiledMap(l.Tiled, origin)
	}
	return FromStrings(l.Ascii.Rows, ts, origin)
}

// Centered returns the origin that places a w x h grid's centre on (0,0).
func Centered(w, h int, tileSize float64) cp.Vector {
	return cp.Vector{X: -float64(w) * tileSize / 2, Y: -float64(h) * tileSize / 2}
}

func (g *Grid) Width() int          { return g.width }
func (g *Grid) Height() int         { return g.height }
func (g *Grid) TileSize() float64   { return g.tileSize }
func (g *Grid) Origin() cp.Vector   { return g.origin }
func (g *Grid) WorldWidth() float64 { return float64(g.width) * g.tileSize }

func (g *Grid) WorldHeight() float64 {
	return float64(g.height) * g.tileSize
}

// Bounds returns the world rectangle covered by the grid.
func (g *Grid) Bounds() cp.BB {
	return cp.BB{L: g.origin.X, B: g.origin.Y, R: g.origin.X + g.WorldWidth(), T: g.origin.Y + g.WorldHeight()}
}

func (g *Grid) InBounds(c Cell) bool {
	return g != nil && c.X >= 0 && c.Y >= 0 && c.X < g.width && c.Y < g.height
}

// At returns the tile type of c.
func (g *Grid) At(c Cell) (TileType, error) {
	if !g.InBounds(c) {
		return Unwalkable, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	return g.tiles[c.Y*g.width+c.X], nil
}

// Walkable reports false for unwalkable or out-of-bounds cells.
func (g *Grid) Walkable(c Cell) bool {
	t, err := g.At(c)
	return err == nil && t == Walkable
}

// AccessibleNeighbors returns the walkable neighbours of c. A diagonal step is
// only allowed when both orthogonal cells sharing its corner are walkable.
func (g *Grid) AccessibleNeighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborDeltas))
	for _, d := range neighborDeltas {
		n := Cell{c.X + d.X, c.Y + d.Y}
		if !g.Walkable(n) {
			continue
		}
		if d.X != 0 && d.Y != 0 {
			if !g.Walkable(Cell{c.X + d.X, c.Y}) || !g.Walkable(Cell{c.X, c.Y + d.Y}) {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

// WorldToGrid maps a world point to the cell containing it.
func (g *Grid) WorldToGrid(p cp.Vector) (Cell, bool) {
	if g == nil || math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return Cell{}, false
	}
	fx := math.Floor((p.X - g.origin.X) / g.tileSize)
	fy := math.Floor((p.Y - g.origin.Y) / g.tileSize)
	if fx < 0 || fy < 0 || fx >= float64(g.width) || fy >= float64(g.height) {
		return Cell{}, false
	}
	return Cell{int(fx), int(fy)}, true
}

// GridToWorld returns the world position of the centre of c.
func (g *Grid) GridToWorld(c Cell) cp.Vector {
	return cp.Vector{
		X: g.origin.X + (float64(c.X)+0.5)*g.tileSize,
		Y: g.origin.Y + (float64(c.Y)+0.5)*g.tileSize,
	}
}

func (g *Grid) CellBounds(c Cell) cp.BB {
	l := g.origin.X + float64(c.X)*g.tileSize
	b := g.origin.Y + float64(c.Y)*g.tileSize
	return cp.BB{L: l, B: b, R: l + g.tileSize, T: b + g.tileSize}
}

func (g *Grid) Contains(p cp.Vector) bool {
	_, ok := g.WorldToGrid(p)
	return ok
}

// Rows renders the grid as ASCII, top row first.
func (g *Grid) Rows() []string {
	out := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		buf := make([]byte, g.width)
		for x := 0; x < g.width; x++ {
			if g.tiles[y*g.width+x] == Unwalkable {
				buf[x] = '#'
			} else {
				buf[x] = '.'
			}
		}
		out[g.height-1-y] = string(buf)
	}
	return out
}
