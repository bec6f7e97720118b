package gridsearch

import (
	"fmt"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Point
	Open      map[Point]bool
	Closed    map[Point]bool
	CameFrom  map[Point]Point
	Done      bool
	Found     bool
	Path      []Point
	Cost      int
	StepIndex int
}

// Stepper drives the same engine as Search one expansion at a time, for
// visualizers and debugging. It is not safe for concurrent use.
type Stepper struct {
	engine        *engine
	maxExpansions int

	stepCount int
	done      bool
	goal      nodeID
	current   Point
}

// NewStepper prepares a search of grid with strategy; nothing is expanded until Step.
func NewStepper(grid *Grid, strategy Strategy, options ...Option) (*Stepper, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
	opts := newOptions(options)
	return &Stepper{
		engine:        newEngine(grid, strategy),
		maxExpansions: opts.MaxExpansions,
		goal:          noParent,
		current:       grid.Start(),
	}, nil
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done every further call returns the final snapshot.
func (s *Stepper) Step() (StepSnapshot, error) {
	if s.done {
		return s.snapshot(), nil
	}
	if s.engine.budgetSpent(s.maxExpansions) {
		return s.snapshot(), fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, s.engine.expanded)
	}

	id, kind := s.engine.step()
	switch kind {
	case stepExhausted:
		s.done = true
		return s.snapshot(), nil
	case stepFound:
		s.done = true
		s.goal = id
	}
	s.stepCount++
	s.current = s.engine.nodes[id].Point
	return s.snapshot(), nil
}

// Done reports whether the search has terminated.
func (s *Stepper) Done() bool { return s.done }

// Result summarizes the search so far; it is final once Done is true.
func (s *Stepper) Result() Result {
	return s.engine.result(s.goal, s.goal != noParent)
}

func (s *Stepper) snapshot() StepSnapshot {
	e := s.engine
	snap := StepSnapshot{
		Current:   s.current,
		Open:      make(map[Point]bool, e.open.Len()),
		Closed:    make(map[Point]bool, e.closed),
		CameFrom:  make(map[Point]Point, len(e.nodes)),
		Done:      s.done,
		Found:     s.goal != noParent,
		StepIndex: s.stepCount,
	}
	for _, n := range e.open.nodes {
		snap.Open[n.Point] = true
	}
	for _, n := range e.nodes {
		if n.state == stateClosed {
			snap.Closed[n.Point] = true
		}
		if n.parent != noParent {
			snap.CameFrom[n.Point] = e.nodes[n.parent].Point
		}
	}
	if snap.Found {
		snap.Path = e.path(s.goal)
		snap.Cost = e.nodes[s.goal].G
	}
	return snap
}
