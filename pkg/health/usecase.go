package health

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Report is the readiness verdict with one entry per dependency:
// "ok" or the error text.
type Report struct {
	Ready  bool              `json:"ready"`
	Checks map[string]string `json:"checks"`
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Report(ctx context.Context) Report
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers. Nil checkers are skipped.
func NewService(checkers ...Checker) ReadinessUseCase {
	s := &service{}
	for _, ch := range checkers {
		if ch != nil {
			s.checkers = append(s.checkers, ch)
		}
	}
	return s
}

// Report runs every checker concurrently; one failure does not hide the others.
func (s *service) Report(ctx context.Context) Report {
	rep := Report{Ready: true, Checks: make(map[string]string, len(s.checkers))}
	var mu sync.Mutex
	var g errgroup.Group
	for _, ch := range s.checkers {
		g.Go(func() error {
			err := ch.Check(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				rep.Ready = false
				rep.Checks[ch.Name()] = err.Error()
				return nil
			}
			rep.Checks[ch.Name()] = "ok"
			return nil
		})
	}
	_ = g.Wait()
	return rep
}
