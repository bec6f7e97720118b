package gridsearch

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

// Result contains the outcome of a search.
// Path runs from the step after the start through the goal. When Found is
// false there is no route and Path is nil; that is not an error.
type Result struct {
	Strategy  Strategy
	Path      []Point
	TotalCost int
	// Closed and Open are the sizes of the closed and open sets at termination.
	// A goal that was reached is counted in neither.
	Closed   int
	Open     int
	Expanded int
	Found    bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	MaxExpansions   int
	Logger          logrus.FieldLogger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many worker goroutines RunBatch uses.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithMaxExpansions stops a search with ErrBudgetExceeded after n expansions.
// Zero means no limit.
func WithMaxExpansions(n int) Option {
	return func(options *Options) { options.MaxExpansions = n }
}

// WithLogger routes debug output to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(options *Options) { options.Logger = logger }
}

func newOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	if searchOptions.Logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		searchOptions.Logger = discard
	}
	return searchOptions
}

// Search runs strategy over grid until the goal is expanded or the open set
// is empty. It is synchronous; ctx is checked between expansions.
func Search(
	contextObject context.Context,
	grid *Grid,
	strategy Strategy,
	options ...Option,
) (Result, error) {
	if grid == nil {
		return Result{}, ErrNilGrid
	}
	if !strategy.Valid() {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
	searchOptions := newOptions(options)
	logger := searchOptions.Logger.WithField("strategy", strategy.String())
	began := time.Now()

	e := newEngine(grid, strategy)
	for {
		if err := contextObject.Err(); err != nil {
			observeSearch(strategy, outcomeError, e.expanded, time.Since(began))
			return e.result(noParent, false), err
		}
		if e.budgetSpent(searchOptions.MaxExpansions) {
			observeSearch(strategy, outcomeError, e.expanded, time.Since(began))
			return e.result(noParent, false), fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, e.expanded)
		}

		id, kind := e.step()
		switch kind {
		case stepExpanded:
			continue
		case stepFound:
			result := e.result(id, true)
			observeSearch(strategy, outcomeFound, e.expanded, time.Since(began))
			logger.WithFields(logrus.Fields{
				"found":    true,
				"cost":     result.TotalCost,
				"closed":   result.Closed,
				"open":     result.Open,
				"expanded": result.Expanded,
			}).Debug("search finished")
			return result, nil
		case stepExhausted:
			result := e.result(noParent, false)
			observeSearch(strategy, outcomeNoPath, e.expanded, time.Since(began))
			logger.WithFields(logrus.Fields{
				"found":    false,
				"closed":   result.Closed,
				"open":     result.Open,
				"expanded": result.Expanded,
			}).Debug("search finished")
			return result, nil
		}
	}
}
