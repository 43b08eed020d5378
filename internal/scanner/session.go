package scanner

import (
	"errors"
	"sync"
	"time"
)

// ErrSessionFinalized is returned by Record after Finalize has been
// called. Hitting it means a worker outlived the scan loop, which is a
// concurrency bug worth failing loudly over.
var ErrSessionFinalized = errors.New("session already finalized")

// Session accumulates probe results for one target. Record is called
// concurrently from pool workers; all mutable state is guarded by a
// single mutex. After Finalize the session is read-only.
type Session struct {
	TargetURL  string
	TotalPaths int
	StartedAt  time.Time

	mu         sync.Mutex
	results    []ProbeResult
	foundCount int
	errorCount int
	finalized  bool
	duration   time.Duration
}

// NewSession creates a mutable session for a scan of totalPaths
// candidates.
func NewSession(targetURL string, totalPaths int) *Session {
	return &Session{
		TargetURL:  targetURL,
		TotalPaths: totalPaths,
		StartedAt:  time.Now(),
		results:    make([]ProbeResult, 0, totalPaths),
	}
}

// Record appends a probe result and updates the running counters.
func (s *Session) Record(r ProbeResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finalized {
		return ErrSessionFinalized
	}
	s.results = append(s.results, r)
	if r.Finding {
		s.foundCount++
	}
	if r.Failed() {
		s.errorCount++
	}
	return nil
}

// Finalize marks the session read-only and freezes its duration.
// Idempotent.
func (s *Session) Finalize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.finalized {
		s.finalized = true
		s.duration = time.Since(s.StartedAt)
	}
}

// Results returns a copy of the recorded results.
func (s *Session) Results() []ProbeResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ProbeResult, len(s.results))
	copy(out, s.results)
	return out
}

// Findings returns only the results flagged as findings.
func (s *Session) Findings() []ProbeResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []ProbeResult
	for _, r := range s.results {
		if r.Finding {
			out = append(out, r)
		}
	}
	return out
}

// FoundCount returns the number of findings recorded so far.
func (s *Session) FoundCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.foundCount
}

// ErrorCount returns the number of probes that failed without a response.
func (s *Session) ErrorCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorCount
}

// ResultCount returns the number of recorded results.
func (s *Session) ResultCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

// Duration returns the frozen scan duration, or the elapsed time if the
// session is still live.
func (s *Session) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finalized {
		return s.duration
	}
	return time.Since(s.StartedAt)
}
