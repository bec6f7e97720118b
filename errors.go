package gridsearch

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGrid is matched by every *MalformedGridError.
	ErrMalformedGrid = errors.New("gridsearch: malformed grid")
	// ErrBudgetExceeded is returned when a search hits its WithMaxExpansions limit.
	ErrBudgetExceeded = errors.New("gridsearch: expansion budget exceeded")
	// ErrUnknownStrategy is returned for a Strategy value outside the defined set.
	ErrUnknownStrategy = errors.New("gridsearch: unknown strategy")
	// ErrNilGrid is returned when a search is started without a grid.
	ErrNilGrid = errors.New("gridsearch: grid is nil")
)

// MalformedGridError describes why a board could not be loaded.
// Row is the zero-based row index, or -1 when the problem is not tied to a row.
type MalformedGridError struct {
	Reason   string
	Row      int
	Expected int
	Actual   int
	Line     string
}

func (e *MalformedGridError) Error() string {
	switch {
	case e.Row < 0:
		return fmt.Sprintf("%v: %s", ErrMalformedGrid, e.Reason)
	case e.Expected != e.Actual:
		return fmt.Sprintf("%v: %s: expected %d got %d (row %d: %q)",
			ErrMalformedGrid, e.Reason, e.Expected, e.Actual, e.Row, e.Line)
	default:
		return fmt.Sprintf("%v: %s (row %d: %q)", ErrMalformedGrid, e.Reason, e.Row, e.Line)
	}
}

// Is lets errors.Is(err, ErrMalformedGrid) match.
func (e *MalformedGridError) Is(target error) bool { return target == ErrMalformedGrid }
