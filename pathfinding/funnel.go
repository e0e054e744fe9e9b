package pathfinding

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tilenav/navgrid"
)

// Portal is the edge shared by two consecutive corridor cells. Left is on the
// counter-clockwise side of the direction of travel.
type Portal struct {
	Left  cp.Vector
	Right cp.Vector
}

// Cross returns (q-apex).X*(p-apex).Y - (p-apex).X*(q-apex).Y. It is positive
// when p -> q turns left around apex and negative when it turns right.
func Cross(apex, p, q cp.Vector) float64 {
	return q.Sub(apex).Cross(p.Sub(apex))
}

// GeneratePortals emits one portal per consecutive pair of corridor cells.
// Cardinal steps yield the shared edge; diagonal steps yield the segment
// between the two orthogonal cell centres through the shared corner.
func GeneratePortals(corridor []navgrid.Cell, tileSize float64, origin cp.Vector) []Portal {
	if len(corridor) < 2 {
		return nil
	}
	half := tileSize / 2
	out := make([]Portal, 0, len(corridor)-1)
	for i := 0; i+1 < len(corridor); i++ {
		cur, next := corridor[i], corridor[i+1]
		dx, dy := next.X-cur.X, next.Y-cur.Y
		if (dx == 0 && dy == 0) || dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			panic(NonAdjacentSegmentError{From: cur, To: next})
		}
		d := cp.Vector{X: float64(dx), Y: float64(dy)}
		n := d.Perp()
		centre := cp.Vector{
			X: origin.X + (float64(cur.X)+0.5)*tileSize,
			Y: origin.Y + (float64(cur.Y)+0.5)*tileSize,
		}
		mid := centre.Add(d.Mult(half))
		out = append(out, Portal{
			Left:  mid.Add(n.Mult(half)),
			Right: mid.Sub(n.Mult(half)),
		})
	}
	return out
}

// Funnel string-pulls a corridor into the shortest polyline that stays
// inside it.
type Funnel struct {
	Start   cp.Vector
	End     cp.Vector
	Portals []Portal
}

func NewFunnel(start, end cp.Vector, corridor []navgrid.Cell, tileSize float64, origin cp.Vector) *Funnel {
	return &Funnel{
		Start:   start,
		End:     end,
		Portals: GeneratePortals(corridor, tileSize, origin),
	}
}

// StringPull returns the waypoints from Start to End. The result always
// begins with Start, ends with End and has at most len(Portals)+2 points.
func (f *Funnel) StringPull() []cp.Vector {
	path, _ := f.stringPull()
	return path
}

func (f *Funnel) iterationLimit() int {
	n := len(f.Portals) + 2
	return n * n
}

func (f *Funnel) stringPull() ([]cp.Vector, int) {
	if len(f.Portals) == 0 {
		return []cp.Vector{f.Start, f.End}, 0
	}

	ports := make([]Portal, 0, len(f.Portals)+2)
	ports = append(ports, Portal{Left: f.Start, Right: f.Start})
	ports = append(ports, f.Portals...)
	ports = append(ports, Portal{Left: f.End, Right: f.End})

	// The start may sit past the first portal when it lies outside the
	// first corridor cell; flip it so the funnel opens toward the start.
	if first := ports[1]; Cross(f.Start, first.Left, first.Right) < 0 {
		ports[1] = Portal{Left: first.Right, Right: first.Left}
	}

	path := []cp.Vector{f.Start}
	push := func(p cp.Vector) {
		if !path[len(path)-1].Equal(p) {
			path = append(path, p)
		}
	}

	apex, left, right := f.Start, f.Start, f.Start
	apexIndex, leftIndex, rightIndex := 0, 0, 0
	limit := f.iterationLimit()
	iterations := 0

	for i := 1; i < len(ports); i++ {
		iterations++
		if iterations > limit {
			panic(FunnelOverrunError{Portals: len(f.Portals), Iterations: limit})
		}
		pl, pr := ports[i].Left, ports[i].Right

		if Cross(apex, right, pr) <= 0 {
			if apex.Equal(right) || Cross(apex, left, pr) > 0 {
				right, rightIndex = pr, i
			} else {
				push(left)
				apex, apexIndex = left, leftIndex
				left, leftIndex = apex, apexIndex
				right, rightIndex = apex, apexIndex
				i = apexIndex
				continue
			}
		}

		if Cross(apex, left, pl) >= 0 {
			if apex.Equal(left) || Cross(apex, right, pl) < 0 {
				left, leftIndex = pl, i
			} else {
				push(right)
				apex, apexIndex = right, rightIndex
				left, leftIndex = apex, apexIndex
				right, rightIndex = apex, apexIndex
				i = apexIndex
				continue
			}
		}
	}

	if len(path) == 1 || !path[len(path)-1].Equal(f.End) {
		path = append(path, f.End)
	}
	path[len(path)-1] = f.End
	return path, iterations
}
