package health

import (
	"context"
	"time"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure. Lexical answers still work.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status    Status
	Strategy  string
	Documents int
	Checks    map[string]CheckResult
}

type namedPinger struct {
	name string
	p    Pinger
}

// Service coordinates health checks.
type Service struct {
	pingers   []namedPinger
	embedding EmbeddingChecker
	strategy  string
	documents int
	timeout   time.Duration
}

// New creates a Service. embedding can be nil (lexical-only deployments).
func New(embedding EmbeddingChecker) *Service {
	return &Service{embedding: embedding}
}

// WithPinger adds a named component check. A nil pinger is ignored.
func (s *Service) WithPinger(name string, p Pinger) *Service {
	if p != nil {
		s.pingers = append(s.pingers, namedPinger{name: name, p: p})
	}
	return s
}

// WithCorpus records the active retrieval strategy and corpus size for reports.
func (s *Service) WithCorpus(strategy string, documents int) *Service {
	s.strategy = strategy
	s.documents = documents
	return s
}

// WithTimeout bounds a whole Check run. Components that do not answer in
// time are reported as errors. Zero disables the bound.
func (s *Service) WithTimeout(d time.Duration) *Service {
	s.timeout = d
	return s
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	checks := make(map[string]CheckResult, len(s.pingers)+1)

	for _, np := range s.pingers {
		checks[np.name] = result(np.p.Ping(ctx))
	}
	if s.embedding != nil {
		checks["embedding"] = result(s.embedding.HealthCheck(ctx))
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Strategy: s.strategy, Documents: s.documents, Checks: checks}
}

func result(err error) CheckResult {
	if err != nil {
		return CheckError
	}
	return CheckOK
}
