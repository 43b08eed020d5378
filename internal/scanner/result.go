package scanner

import "time"

// FailureKind tags the class of a failed probe attempt. The retry policy
// maps each kind to a backoff base, so callers never inspect error types
// or messages.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureTimeout
	FailureConnection
	FailureRateLimited
	FailureServerError
	FailureWAFChallenge
	FailureGeneric
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureTimeout:
		return "timeout"
	case FailureConnection:
		return "connection"
	case FailureRateLimited:
		return "rate-limited"
	case FailureServerError:
		return "server-error"
	case FailureWAFChallenge:
		return "waf-challenge"
	case FailureGeneric:
		return "generic"
	}
	return "unknown"
}

// ProbeResult holds the outcome of probing a single candidate path. Only
// the final attempt's outcome is retained. StatusCode is 0 exactly when
// the probe failed before any response arrived, in which case FailKind
// and ErrMsg carry the error classification.
type ProbeResult struct {
	URL           string
	Path          string
	StatusCode    int
	ContentLength int64
	ContentType   string
	Finding       bool
	Body          []byte // retained for findings only
	FailKind      FailureKind
	ErrMsg        string
	Attempts      int
	Duration      time.Duration
}

// Failed reports whether the probe never received an HTTP response.
func (r *ProbeResult) Failed() bool {
	return r.StatusCode == 0 && r.FailKind != FailureNone
}
