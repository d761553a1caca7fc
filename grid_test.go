package scatter

import (
	"math"
	"testing"
)

func TestNewCellGridGeometry(t *testing.T) {
	g := newCellGrid(72, 48, 5)

	// Divide through a float64 variable so the expectation is computed with
	// runtime rounding; a folded constant differs in the last ulp
	minDistance := 5.0
	wantCell := minDistance / math.Sqrt2
	if g.cellSize != wantCell {
		t.Errorf("Expected cell size %v, got %v", wantCell, g.cellSize)
	}
	if g.cols != 21 {
		t.Errorf("Expected 21 columns, got %d", g.cols)
	}
	if g.rows != 14 {
		t.Errorf("Expected 14 rows, got %d", g.rows)
	}
	if len(g.cells) != g.cols*g.rows {
		t.Errorf("Expected %d cells, got %d", g.cols*g.rows, len(g.cells))
	}

	// The grid must cover the whole domain
	cx, cy := g.cellOf(Point{X: 71, Y: 47})
	if cx >= g.cols || cy >= g.rows {
		t.Errorf("Corner point maps outside grid: cell (%d, %d) of %dx%d", cx, cy, g.cols, g.rows)
	}
}

func TestGridNeighborQuery(t *testing.T) {
	tests := []struct {
		name  string
		probe Point
		want  bool
	}{
		{"closer than minimum", Point{X: 12, Y: 12}, true},
		{"exactly at minimum", Point{X: 10, Y: 15}, false}, // equality is allowed
		{"far away", Point{X: 40, Y: 40}, false},
		{"same position", Point{X: 10, Y: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newCellGrid(72, 48, 5)
			g.insert(Point{X: 10, Y: 10})

			got := g.hasNeighborWithin(tt.probe, 5)
			if got != tt.want {
				t.Errorf("Expected hasNeighborWithin=%v for %v, got %v", tt.want, tt.probe, got)
			}
		})
	}
}

// TestGridInsertOccupiedPanics checks the defensive occupancy assertion:
// a second point landing in an occupied cell is an internal invariant
// failure, never a silent overwrite
func TestGridInsertOccupiedPanics(t *testing.T) {
	g := newCellGrid(72, 48, 5)
	g.insert(Point{X: 10, Y: 10})

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on double-occupied cell insert")
		}
	}()
	// (9, 9) maps to the same cell as (10, 10) at cell size 5/sqrt(2)
	g.insert(Point{X: 9, Y: 9})
}

// TestGridInsertOutOfRange checks out-of-domain points are ignored rather
// than corrupting the cell array
func TestGridInsertOutOfRange(t *testing.T) {
	g := newCellGrid(72, 48, 5)
	g.insert(Point{X: 500, Y: 500})

	for i, c := range g.cells {
		if c != nil {
			t.Fatalf("Expected empty grid, found point in cell %d", i)
		}
	}
}
