package scatter

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrNoValidStart is returned when every initialization draw landed inside
// an exclusion zone. Only possible when the zones cover the whole domain.
var ErrNoValidStart = errors.New("scatter: no valid starting point found")

// RejectionCounts breaks a failed iteration's draws down by cause. The
// three counts sum to Config.MaxAttempts when no candidate was placed.
type RejectionCounts struct {
	Bounds   int
	Excluded int
	Nearby   int
}

// Iteration records one outer loop pass for diagnostics.
type Iteration struct {
	Index      int
	ActiveSize int // pool size at selection time
	PointCount int // placed count at selection time
	Selected   Point

	Placed   bool
	Point    Point // valid when Placed
	Attempts int   // draws consumed on success

	Rejected RejectionCounts // populated when not Placed
}

// Result is the full outcome of a run.
type Result struct {
	Initial    Point
	Points     []Point
	Iterations []Iteration
	Truncated  bool
}

// Sampler places points by bounded-attempt Poisson-disk dart throwing:
// pick a random active point, try annulus candidates around it, retire the
// point once its attempt budget is spent. All state is owned by the
// instance; two samplers never share a grid, pool, or generator.
type Sampler struct {
	cfg       Config
	rng       *Rand
	grid      *cellGrid
	active    []Point
	points    []Point
	iteration int
	trace     io.Writer
}

// New creates a Sampler for cfg. Trace lines are written to trace as the
// run progresses; pass io.Discard for a silent run.
func New(cfg Config, trace io.Writer) *Sampler {
	return &Sampler{
		cfg:   cfg,
		rng:   NewRand(cfg.Seed),
		grid:  newCellGrid(cfg.Width, cfg.Height, cfg.MinDistance),
		trace: trace,
	}
}

// inZone reports whether (x, y) lies strictly inside any exclusion zone.
func (s *Sampler) inZone(x, y float64) bool {
	for _, z := range s.cfg.Zones {
		dx := x - z.X
		dy := y - z.Y
		if math.Sqrt(dx*dx+dy*dy) < z.Radius {
			return true
		}
	}
	return false
}

func (s *Sampler) inBounds(p Point) bool {
	return p.X >= 0 && p.X < s.cfg.Width && p.Y >= 0 && p.Y < s.cfg.Height
}

// Initialize draws uniform candidates until one lands outside every
// exclusion zone, then seeds the placed list, active pool, and grid with
// it. Exhausting the attempt budget yields ErrNoValidStart before any
// trace output has been written.
func (s *Sampler) Initialize() (Point, error) {
	for i := 0; i < s.cfg.InitAttempts; i++ {
		p := Point{
			X: int(s.rng.Next() * float64(s.cfg.Width)),
			Y: int(s.rng.Next() * float64(s.cfg.Height)),
		}
		if s.inZone(float64(p.X), float64(p.Y)) {
			continue
		}
		s.points = append(s.points, p)
		s.active = append(s.active, p)
		s.grid.insert(p)
		return p, nil
	}
	return Point{}, fmt.Errorf("%w after %d attempts", ErrNoValidStart, s.cfg.InitAttempts)
}

// Step runs one outer iteration: select a random active point, attempt up
// to MaxAttempts annulus candidates around it, and either place the first
// valid one or retire the selected point from the pool. The pool must be
// non-empty.
func (s *Sampler) Step() Iteration {
	if len(s.active) == 0 {
		panic("scatter: Step called with an empty active pool")
	}
	s.iteration++
	idx := int(s.rng.Next() * float64(len(s.active)))
	source := s.active[idx]

	it := Iteration{
		Index:      s.iteration,
		ActiveSize: len(s.active),
		PointCount: len(s.points),
		Selected:   source,
	}

	fmt.Fprintf(s.trace, "=== Iteration %d ===\n", it.Index)
	fmt.Fprintf(s.trace, "Active list size: %d, Points: %d\n", it.ActiveSize, it.PointCount)
	fmt.Fprintf(s.trace, "Selected point: (%d, %d)\n", source.X, source.Y)

	for i := 0; i < s.cfg.MaxAttempts; i++ {
		angle := s.rng.Next() * math.Pi * 2
		radius := s.cfg.MinDistance * (1 + s.rng.Next())

		candidate := Point{
			X: int(math.Round(float64(source.X) + radius*math.Cos(angle))),
			Y: int(math.Round(float64(source.Y) + radius*math.Sin(angle))),
		}

		if !s.inBounds(candidate) {
			it.Rejected.Bounds++
			continue
		}
		if s.inZone(float64(candidate.X), float64(candidate.Y)) {
			it.Rejected.Excluded++
			continue
		}
		if s.grid.hasNeighborWithin(candidate, s.cfg.MinDistance) {
			it.Rejected.Nearby++
			continue
		}

		s.points = append(s.points, candidate)
		s.active = append(s.active, candidate)
		s.grid.insert(candidate)
		it.Placed = true
		it.Point = candidate
		it.Attempts = i + 1
		fmt.Fprintf(s.trace, "  ✓ Found valid point at (%d, %d) after %d attempts\n",
			candidate.X, candidate.Y, it.Attempts)
		break
	}

	if !it.Placed {
		fmt.Fprintf(s.trace, "  ✗ Failed to find valid point after %d attempts\n", s.cfg.MaxAttempts)
		fmt.Fprintf(s.trace, "    Rejections: bounds=%d, excluded=%d, nearby=%d\n",
			it.Rejected.Bounds, it.Rejected.Excluded, it.Rejected.Nearby)
		// Retirement is permanent; the point stays placed but spawns no
		// further neighbors. Stable removal keeps pool order reproducible.
		s.active = append(s.active[:idx], s.active[idx+1:]...)
	}

	fmt.Fprintln(s.trace)
	return it
}

// Run executes the full simulation: initialization, then steps until the
// pool drains, MaxPoints is reached, or MaxIterations truncates the run.
// The trace and the returned Result describe the same sequence of events.
func (s *Sampler) Run() (Result, error) {
	initial, err := s.Initialize()
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintf(s.trace, "Initial point: (%d, %d)\n\n", initial.X, initial.Y)

	res := Result{Initial: initial}
	for len(s.active) > 0 && len(s.points) < s.cfg.MaxPoints {
		it := s.Step()
		res.Iterations = append(res.Iterations, it)

		if s.iteration >= s.cfg.MaxIterations {
			fmt.Fprintln(s.trace, "... stopping simulation ...")
			res.Truncated = true
			break
		}
	}

	fmt.Fprintf(s.trace, "\nFinal result: %d points placed\n", len(s.points))
	fmt.Fprintf(s.trace, "Points: %s\n", formatPoints(s.points))

	res.Points = append([]Point(nil), s.points...)
	return res, nil
}
