package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Sentinel errors for search execution.
var (
	// ErrNilSuccessors is returned when Problem.Next is the zero value.
	ErrNilSuccessors = errors.New("search: successor function is nil")

	// ErrNilTermination is returned when Problem.End is the zero value.
	ErrNilTermination = errors.New("search: termination condition is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrStepFailed wraps an error returned by a Fallible successor function.
	ErrStepFailed = errors.New("search: successor function failed")
)

// Mode selects how many paths Find reconstructs per goal.
type Mode int

const (
	// FirstPath keeps one representative path per distinct goal state.
	// Later arrivals at an already expanded state are discarded.
	FirstPath Mode = iota

	// AllPaths keeps every co-optimal path. Equal-cost arrivals at an
	// already expanded state are recorded as extra predecessors, so the
	// result covers every lowest-cost route to every goal.
	AllPaths
)

// String returns the mode name used in logs and metrics.
func (m Mode) String() string {
	switch m {
	case FirstPath:
		return "first"
	case AllPaths:
		return "all"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Progress is a snapshot handed to the OnProgress hook.
type Progress struct {
	Dequeued int           // frontier entries popped so far
	Expanded int           // distinct collapse keys expanded so far
	Frontier int           // entries currently waiting
	Cost     int           // cost of the entry just dequeued
	Elapsed  time.Duration // time since the search started
}

// Stats summarises one finished search.
type Stats struct {
	Dequeued int
	Expanded int
	Elapsed  time.Duration
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative MaxCost), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx parents the tracing span. Cancellation is checked between dequeues.
	Ctx context.Context

	// Mode selects FirstPath (default) or AllPaths reconstruction.
	Mode Mode

	// ReportEvery, if > 0, calls OnProgress and logs a progress line every
	// ReportEvery dequeues. Reporting never changes search order.
	ReportEvery int

	// OnProgress is called every ReportEvery dequeues.
	OnProgress func(Progress)

	// Logger receives progress and summary lines.
	Logger *slog.Logger

	// MaxCost, if > 0, stops expanding entries whose cost exceeds it.
	// A value of 0 disables the cap.
	MaxCost int

	// MaxPaths, if > 0, caps how many paths AllPaths materialises.
	// Result.States is unaffected by the cap.
	MaxPaths int

	// Name labels logs, span attributes and metrics.
	Name string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - FirstPath mode
//   - no progress reporting (ReportEvery == 0), no-op OnProgress
//   - slog.Default() logger
//   - no cost cap, no path cap
//   - Name "search"
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Mode:        FirstPath,
		ReportEvery: 0,
		OnProgress:  func(Progress) {},
		Logger:      slog.Default(),
		MaxCost:     0,
		MaxPaths:    0,
		Name:        "search",
		err:         nil,
	}
}

// WithContext sets a custom context for tracing and cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMode selects FirstPath or AllPaths.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != FirstPath && m != AllPaths {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithAllPaths is shorthand for WithMode(AllPaths).
func WithAllPaths() Option {
	return WithMode(AllPaths)
}

// WithReportEvery sets the progress cadence in dequeues.
//
//	n > 0: report every n dequeues
//	n == 0: no reporting
//	n < 0: invalid option → ErrOptionViolation
func WithReportEvery(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: ReportEvery cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ReportEvery = n
	}
}

// WithOnProgress registers a callback run every ReportEvery dequeues.
func WithOnProgress(fn func(Progress)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}

// WithLogger replaces the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxCost stops the search from expanding entries costlier than c.
//
//	c > 0: cap at c
//	c == 0: explicit no cap
//	c < 0: invalid option → ErrOptionViolation
func WithMaxCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithMaxPaths caps the number of paths built in AllPaths mode.
// Zero means unlimited; negative values are an ErrOptionViolation.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// WithName labels the search in logs, spans and metrics.
func WithName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Name = name
		}
	}
}

// buildOptions applies opts over the defaults and reports any recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
