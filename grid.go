package scatter

import (
	"fmt"
	"math"
)

// Point is a sample position, integer-rounded on placement.
type Point struct {
	X, Y int
}

// cellGrid is the spatial index backing minimum-distance queries. The cell
// edge is MinDistance/sqrt(2), the largest size at which a cell can hold at
// most one point, which in turn means any pair closer than MinDistance must
// meet inside the 5x5 window around a cell.
type cellGrid struct {
	cellSize float64
	cols     int
	rows     int
	cells    []*Point
}

func newCellGrid(width, height int, minDistance float64) *cellGrid {
	cellSize := minDistance / math.Sqrt2
	cols := int(math.Ceil(float64(width) / cellSize))
	rows := int(math.Ceil(float64(height) / cellSize))
	return &cellGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([]*Point, cols*rows),
	}
}

// cellOf maps a point to its cell coordinates.
func (g *cellGrid) cellOf(p Point) (cx, cy int) {
	return int(float64(p.X) / g.cellSize), int(float64(p.Y) / g.cellSize)
}

// insert stores p in its cell. Two points mapping to one cell would sit
// closer than MinDistance, which the distance check already rules out, so
// an occupied cell means the sampler state is corrupt.
func (g *cellGrid) insert(p Point) {
	cx, cy := g.cellOf(p)
	if cx < 0 || cx >= g.cols || cy < 0 || cy >= g.rows {
		return
	}
	idx := cy*g.cols + cx
	if occupant := g.cells[idx]; occupant != nil {
		panic(fmt.Sprintf("scatter: cell (%d, %d) already holds (%d, %d), cannot insert (%d, %d)",
			cx, cy, occupant.X, occupant.Y, p.X, p.Y))
	}
	g.cells[idx] = &Point{X: p.X, Y: p.Y}
}

// hasNeighborWithin reports whether any stored point in the 5x5 cell window
// around p lies strictly closer than minDistance. Distance exactly equal to
// minDistance is allowed.
func (g *cellGrid) hasNeighborWithin(p Point, minDistance float64) bool {
	cx, cy := g.cellOf(p)
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			nx, ny := cx+dx, cy+dy
			if nx < 0 || nx >= g.cols || ny < 0 || ny >= g.rows {
				continue
			}
			existing := g.cells[ny*g.cols+nx]
			if existing == nil {
				continue
			}
			ddx := float64(p.X - existing.X)
			ddy := float64(p.Y - existing.Y)
			if math.Sqrt(ddx*ddx+ddy*ddy) < minDistance {
				return true
			}
		}
	}
	return false
}
