package levels

import (
	"encoding/json"
	"fmt"
)

// WalkableProperty is the custom tile property that marks collision tiles.
const WalkableProperty = "walkable"

// TiledMap is the subset of the Tiled JSON map format the navigation grid needs.
type TiledMap struct {
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	TileWidth  int          `json:"tilewidth"`
	TileHeight int          `json:"tileheight"`
	Layers     []TiledLayer `json:"layers"`
	Tilesets   []Tileset    `json:"tilesets"`
}

type TiledLayer struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Data   []int  `json:"data,omitempty"`
}

type Tileset struct {
	FirstGID   int    `json:"firstgid,omitempty"`
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
	Columns    int    `json:"columns,omitempty"`
	TileCount  int    `json:"tilecount,omitempty"`
	TileWidth  int    `json:"tilewidth,omitempty"`
	TileHeight int    `json:"tileheight,omitempty"`
	Tiles      []Tile `json:"tiles,omitempty"`
}

type Tile struct {
	ID         int            `json:"id"`
	Properties []TileProperty `json:"properties,omitempty"`
}

type TileProperty struct {
	Name  string        `json:"name"`
	Type  string        `json:"type"`
	Value PropertyValue `json:"value"`
}

// PropertyValue holds a Tiled property that is either a bool or a string.
type PropertyValue struct {
	Bool   bool
	String string
	IsBool bool
}

func (v *PropertyValue) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = PropertyValue{Bool: b, IsBool: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = PropertyValue{String: s}
		return nil
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = PropertyValue{String: fmt.Sprint(raw)}
	return nil
}

func (v PropertyValue) MarshalJSON() ([]byte, error) {
	if v.IsBool {
		return json.Marshal(v.Bool)
	}
	return json.Marshal(v.String)
}

func (m *TiledMap) validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", m.Width, m.Height)
	}
	if m.TileWidth <= 0 {
		return fmt.Errorf("invalid tile width: %d", m.TileWidth)
	}
	return nil
}

// Blocked reports whether any tile layer places a tile with walkable=false at
// (x, y). Rows are in Tiled order: row 0 is the top of the map.
func (m *TiledMap) Blocked(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return true
	}
	for _, layer := range m.Layers {
		w := layer.Width
		if w <= 0 {
			w = m.Width
		}
		idx := y*w + x
		if idx < 0 || idx >= len(layer.Data) {
			continue
		}
		gid := layer.Data[idx]
		if gid <= 0 {
			continue
		}
		tile, ok := m.tile(gid)
		if !ok {
			continue
		}
		for _, p := range tile.Properties {
			if p.Name == WalkableProperty && p.Value.IsBool && !p.Value.Bool {
				return true
			}
		}
	}
	return false
}

// tile resolves a global tile id against the tileset with the greatest
// firstgid not above it.
func (m *TiledMap) tile(gid int) (Tile, bool) {
	best := -1
	bestFirst := 0
	for i, ts := range m.Tilesets {
		first := ts.FirstGID
		if first <= 0 {
			first = 1
		}
		if first <= gid && first >= bestFirst {
			best = i
			bestFirst = first
		}
	}
	if best < 0 {
		return Tile{}, false
	}
	id := gid - bestFirst
	for _, t := range m.Tilesets[best].Tiles {
		if t.ID == id {
			return t, true
		}
	}
	return Tile{}, false
}
