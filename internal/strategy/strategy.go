// Package strategy runs an ordered list of named lookups and records how
// each one ended, so callers can tell which source answered.
package strategy

import (
	"context"
	"errors"
	"fmt"
)

// ErrExhausted is returned by Execute when no strategy succeeded.
var ErrExhausted = errors.New("no strategy succeeded")

// Outcome is how one strategy attempt ended.
type Outcome int

const (
	// Success means the strategy produced a value.
	Success Outcome = iota
	// Empty means the strategy ran cleanly but had nothing to return.
	Empty
	// Failed means the strategy returned an error.
	Failed
	// Skipped means the context was done before the strategy ran.
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Empty:
		return "empty"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Strategy is one named way of obtaining a T. Run reports found=false with
// a nil error when the source has no answer.
type Strategy[T any] struct {
	Name string
	Run  func(ctx context.Context) (value T, found bool, err error)
}

// Attempt records a single strategy run.
type Attempt struct {
	Name    string
	Outcome Outcome
	Err     error
}

// Report describes an Execute call. Winner is empty unless some strategy
// succeeded.
type Report struct {
	Attempts []Attempt
	Winner   string
}

// Succeeded reports whether a strategy produced the value.
func (r Report) Succeeded() bool { return r.Winner != "" }

// Err joins the errors of every failed attempt, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, a := range r.Attempts {
		if a.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", a.Name, a.Err))
		}
	}
	return errors.Join(errs...)
}

// Execute runs strategies in order and stops at the first Success. When
// none succeeds it returns the zero T and an error wrapping ErrExhausted
// and every individual failure. Strategies that have not started when ctx
// is done are recorded as Skipped.
func Execute[T any](ctx context.Context, strategies ...Strategy[T]) (T, Report, error) {
	var (
		zero   T
		report = Report{Attempts: make([]Attempt, 0, len(strategies))}
	)

	for _, s := range strategies {
		if err := ctx.Err(); err != nil {
			report.Attempts = append(report.Attempts, Attempt{Name: s.Name, Outcome: Skipped, Err: err})
			continue
		}

		v, found, err := s.Run(ctx)
		switch {
		case err != nil:
			report.Attempts = append(report.Attempts, Attempt{Name: s.Name, Outcome: Failed, Err: err})
		case !found:
			report.Attempts = append(report.Attempts, Attempt{Name: s.Name, Outcome: Empty})
		default:
			report.Attempts = append(report.Attempts, Attempt{Name: s.Name, Outcome: Success})
			report.Winner = s.Name
			return v, report, nil
		}
	}

	if err := report.Err(); err != nil {
		return zero, report, fmt.Errorf("%w: %w", ErrExhausted, err)
	}
	return zero, report, ErrExhausted
}
