package health

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all record sources respond.
	Healthy Status = "ok"
	// Degraded indicates some sources failed.
	Degraded Status = "degraded"
	// Unhealthy indicates every source failed.
	Unhealthy Status = "error"
)

// CheckResult represents an individual source check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Source is a named record source to probe.
type Source struct {
	Name   string
	Pinger Pinger
}

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	sources []Source
}

// New creates a Service over the given sources. Sources with a nil pinger are skipped.
func New(sources ...Source) *Service {
	s := &Service{}
	for _, src := range sources {
		if src.Pinger != nil {
			s.sources = append(s.sources, src)
		}
	}
	return s
}

// Check pings every source concurrently. A failing source never stops the others.
func (s *Service) Check(ctx context.Context) Report {
	var (
		mu     sync.Mutex
		g      errgroup.Group
		failed int
	)
	checks := make(map[string]CheckResult, len(s.sources))
	for _, src := range s.sources {
		g.Go(func() error {
			res := CheckOK
			if err := src.Pinger.Ping(ctx); err != nil {
				res = CheckError
			}
			mu.Lock()
			defer mu.Unlock()
			checks[src.Name] = res
			if res == CheckError {
				failed++
			}
			return nil
		})
	}
	_ = g.Wait()

	status := Healthy
	switch {
	case failed > 0 && failed == len(s.sources):
		status = Unhealthy
	case failed > 0:
		status = Degraded
	}
	return Report{Status: status, Checks: checks}
}
