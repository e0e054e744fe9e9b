package common

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestCameraRoundTrip(t *testing.T) {
	cams := []*Camera{
		NewCamera(1280, 720),
		{Center: cp.Vector{X: -50, Y: 20}, Zoom: 2, Width: 800, Height: 600},
		{Center: cp.Vector{X: 3, Y: 4}, Zoom: 0, Width: 100, Height: 100},
	}
	points := []cp.Vector{{}, {X: 10, Y: -7}, {X: -300, Y: 250}}

	for i, c := range cams {
		for _, p := range points {
			sx, sy := c.WorldToScreen(p)
			got := c.ScreenToWorld(sx, sy)
			if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
				t.Fatalf("camera %d: %v -> (%v,%v) -> %v", i, p, sx, sy, got)
			}
		}
	}
}

func TestCameraOrientation(t *testing.T) {
	c := NewCamera(200, 100)
	if x, y := c.WorldToScreen(cp.Vector{}); x != 100 || y != 50 {
		t.Fatalf("origin at (%v,%v), want screen centre", x, y)
	}
	// World up is screen up.
	if _, y := c.WorldToScreen(cp.Vector{Y: 10}); y != 40 {
		t.Fatalf("y = %v, want 40", y)
	}
}

func TestCameraZoomAndClip(t *testing.T) {
	c := NewCamera(100, 100)
	c.ZoomBy(10)
	if c.Zoom != MaxZoom {
		t.Fatalf("zoom = %v, want %v", c.Zoom, MaxZoom)
	}
	c.ZoomBy(0.01)
	if c.Zoom != MinZoom {
		t.Fatalf("zoom = %v, want %v", c.Zoom, MinZoom)
	}

	c.Zoom = 2
	c.Pan(20, 10)
	if c.Center != (cp.Vector{X: 10, Y: -5}) {
		t.Fatalf("center = %v after pan", c.Center)
	}
	c.Clip(cp.BB{L: -1, B: -1, R: 1, T: 1})
	if c.Center != (cp.Vector{X: 1, Y: -1}) {
		t.Fatalf("center = %v after clip", c.Center)
	}

	c.Follow(cp.Vector{X: 3, Y: 1}, 0.5)
	if c.Center != (cp.Vector{X: 2, Y: 0}) {
		t.Fatalf("center = %v after follow", c.Center)
	}
}
