package component

import "github.com/jakecoffman/cp"

// Transform is the render position of an entity in world units (y-up).
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

func (t *Transform) Vector() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

func (t *Transform) Set(v cp.Vector) {
	t.X, t.Y = v.X, v.Y
}

var TransformComponent = NewComponent[Transform]()
