package common

import "github.com/jakecoffman/cp"

const (
	MinZoom = 0.5
	MaxZoom = 3.0
)

// Camera maps y-up world space onto a y-down screen. Center is the world
// point shown in the middle of the screen.
type Camera struct {
	Center cp.Vector
	Zoom   float64
	Width  float64
	Height float64
}

func NewCamera(width, height float64) *Camera {
	return &Camera{Zoom: 1, Width: width, Height: height}
}

func (c *Camera) zoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}

func (c *Camera) WorldToScreen(p cp.Vector) (float64, float64) {
	z := c.zoom()
	return (p.X-c.Center.X)*z + c.Width/2, c.Height/2 - (p.Y-c.Center.Y)*z
}

func (c *Camera) ScreenToWorld(x, y float64) cp.Vector {
	z := c.zoom()
	return cp.Vector{
		X: (x-c.Width/2)/z + c.Center.X,
		Y: (c.Height/2-y)/z + c.Center.Y,
	}
}

// Pan moves the centre by a screen-space delta.
func (c *Camera) Pan(dx, dy float64) {
	z := c.zoom()
	c.Center.X += dx / z
	c.Center.Y -= dy / z
}

// ZoomBy scales the zoom, keeping it within [MinZoom, MaxZoom].
func (c *Camera) ZoomBy(f float64) {
	c.Zoom = Clamp(c.zoom()*f, MinZoom, MaxZoom)
}

// Follow eases the centre toward p by t in [0,1].
func (c *Camera) Follow(p cp.Vector, t float64) {
	c.Center.X = Lerp(c.Center.X, p.X, t)
	c.Center.Y = Lerp(c.Center.Y, p.Y, t)
}

// Clip keeps the centre inside bb.
func (c *Camera) Clip(bb cp.BB) {
	c.Center.X = Clamp(c.Center.X, bb.L, bb.R)
	c.Center.Y = Clamp(c.Center.Y, bb.B, bb.T)
}
