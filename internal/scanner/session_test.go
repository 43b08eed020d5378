package scanner

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestSessionConcurrentRecord(t *testing.T) {
	const total = 1000
	s := NewSession("https://example.test", total)

	var wg sync.WaitGroup
	for i := 0; i < total; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := ProbeResult{
				Path:    fmt.Sprintf("/p%d", i),
				Finding: i%2 == 0, // 500 findings
			}
			if err := s.Record(r); err != nil {
				t.Errorf("Record: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if got := s.FoundCount(); got != total/2 {
		t.Errorf("FoundCount = %d, want %d", got, total/2)
	}
	if got := s.ResultCount(); got != total {
		t.Errorf("ResultCount = %d, want %d", got, total)
	}
}

func TestSessionErrorCounting(t *testing.T) {
	s := NewSession("https://example.test", 3)
	_ = s.Record(ProbeResult{Path: "/a", StatusCode: 200, Finding: true})
	_ = s.Record(ProbeResult{Path: "/b", StatusCode: 404})
	_ = s.Record(ProbeResult{Path: "/c", FailKind: FailureTimeout, ErrMsg: "i/o timeout"})

	if got := s.ErrorCount(); got != 1 {
		t.Errorf("ErrorCount = %d, want 1", got)
	}
	if got := s.FoundCount(); got != 1 {
		t.Errorf("FoundCount = %d, want 1", got)
	}
}

func TestSessionRecordAfterFinalize(t *testing.T) {
	s := NewSession("https://example.test", 1)
	_ = s.Record(ProbeResult{Path: "/a"})
	s.Finalize()

	err := s.Record(ProbeResult{Path: "/b"})
	if !errors.Is(err, ErrSessionFinalized) {
		t.Errorf("expected ErrSessionFinalized, got %v", err)
	}
	if got := s.ResultCount(); got != 1 {
		t.Errorf("finalized session grew to %d results", got)
	}
}

func TestSessionFinalizeIdempotent(t *testing.T) {
	s := NewSession("https://example.test", 0)
	s.Finalize()
	d := s.Duration()
	s.Finalize()
	if s.Duration() != d {
		t.Error("second Finalize changed the frozen duration")
	}
}

func TestSessionFindings(t *testing.T) {
	s := NewSession("https://example.test", 3)
	_ = s.Record(ProbeResult{Path: "/a", Finding: true})
	_ = s.Record(ProbeResult{Path: "/b"})
	_ = s.Record(ProbeResult{Path: "/c", Finding: true})

	findings := s.Findings()
	if len(findings) != 2 {
		t.Fatalf("Findings = %d results, want 2", len(findings))
	}
	for _, f := range findings {
		if !f.Finding {
			t.Errorf("non-finding %q in Findings()", f.Path)
		}
	}
}
