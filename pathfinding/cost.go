package pathfinding

import (
	"fmt"
	"strings"

	"github.com/milk9111/tilenav/navgrid"
)

// CostModel is the integer step cost of cardinal and diagonal moves.
type CostModel struct {
	Cardinal int
	Diagonal int
}

var (
	// OctileCost approximates Euclidean step lengths.
	OctileCost = CostModel{Cardinal: 10, Diagonal: 14}
	// UniformCost makes every step cost the same, so paths are only
	// optimal in step count.
	UniformCost = CostModel{Cardinal: 10, Diagonal: 10}
)

// ParseCostModel maps a config name to a cost model. An empty name selects
// OctileCost.
func ParseCostModel(name string) (CostModel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "octile":
		return OctileCost, nil
	case "uniform":
		return UniformCost, nil
	}
	return CostModel{}, fmt.Errorf("pathfinding: unknown cost model %q", name)
}

func (c CostModel) valid() bool {
	return c.Cardinal > 0 && c.Diagonal >= c.Cardinal
}

func (c CostModel) step(from, to navgrid.Cell) int {
	if from.X != to.X && from.Y != to.Y {
		return c.Diagonal
	}
	return c.Cardinal
}

// heuristic is Chebyshev distance scaled by the cardinal cost. It never
// exceeds the true cost for any valid model.
func (c CostModel) heuristic(a, b navgrid.Cell) int {
	return Chebyshev(a, b) * c.Cardinal
}

// Chebyshev returns max(|dx|, |dy|).
func Chebyshev(a, b navgrid.Cell) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
