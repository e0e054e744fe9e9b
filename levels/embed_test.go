package levels

import (
	"errors"
	"testing"
)

func TestLoadEmbeddedTiledMap(t *testing.T) {
	lvl, err := LoadLevelFromFS(LevelsFS, "levels/basic_map.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if lvl.Tiled == nil || lvl.Ascii != nil {
		t.Fatalf("expected a tiled level, got %+v", lvl)
	}
	if lvl.Name != "basic_map" {
		t.Fatalf("expected name basic_map, got %q", lvl.Name)
	}
	if lvl.TileSize() != 32 {
		t.Fatalf("expected tile size 32, got %v", lvl.TileSize())
	}

	cases := []struct {
		name    string
		x, y    int
		blocked bool
	}{
		{"open_ground", 0, 0, false},
		{"river_top", 4, 0, true},
		{"ford", 4, 5, false},
		{"pond", 7, 1, true},
		{"out_of_bounds", 10, 0, true},
		{"negative", -1, 3, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := lvl.Tiled.Blocked(c.x, c.y); got != c.blocked {
				t.Fatalf("Blocked(%d,%d) = %v, want %v", c.x, c.y, got, c.blocked)
			}
		})
	}
}

func TestTiledPropertyValues(t *testing.T) {
	lvl, err := LoadLevelFromFS(LevelsFS, "basic_map.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	tile, ok := lvl.Tiled.tile(2)
	if !ok {
		t.Fatalf("expected gid 2 to resolve")
	}
	var kind, walkable *PropertyValue
	for i := range tile.Properties {
		switch tile.Properties[i].Name {
		case "kind":
			kind = &tile.Properties[i].Value
		case WalkableProperty:
			walkable = &tile.Properties[i].Value
		}
	}
	if kind == nil || kind.IsBool || kind.String != "water" {
		t.Fatalf("expected string property kind=water, got %+v", kind)
	}
	if walkable == nil || !walkable.IsBool || walkable.Bool {
		t.Fatalf("expected bool property walkable=false, got %+v", walkable)
	}
}

func TestParseAsciiLevel(t *testing.T) {
	lvl, err := LoadLevelFromFS(LevelsFS, "arena.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if lvl.Ascii == nil {
		t.Fatalf("expected ascii level")
	}
	if lvl.Name != "arena" || len(lvl.Ascii.Rows) != 12 || lvl.TileSize() != 32 {
		t.Fatalf("unexpected level %q rows=%d tile=%v", lvl.Name, len(lvl.Ascii.Rows), lvl.TileSize())
	}

	def, err := Parse("small.yml", []byte("rows: [\"..\", \"#.\"]\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.TileSize() != 32 {
		t.Fatalf("expected default tile size, got %v", def.TileSize())
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("map.txt", []byte("...")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if _, err := Parse("empty.yaml", []byte("name: nothing\n")); err == nil {
		t.Fatalf("expected error for level without rows")
	}
	if _, err := Parse("bad.json", []byte(`{"width": 0, "height": 3, "tilewidth": 32}`)); err == nil {
		t.Fatalf("expected error for zero width map")
	}
}

func TestLoadLevelFallsBackToEmbedded(t *testing.T) {
	lvl, err := LoadLevel("does/not/exist/arena.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if lvl.Ascii == nil {
		t.Fatalf("expected embedded ascii level")
	}
}
