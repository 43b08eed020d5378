package scanner

import (
	"bytes"
	"context"
	"errors"
	"net"
	"strings"
	"syscall"
	"time"
)

// DefaultMinBodyBytes is the smallest body that still counts as a
// finding. Near-empty 200 responses are almost always stub pages.
const DefaultMinBodyBytes = 20

// findingContentTypes are the content-type fragments a finding must
// carry one of.
var findingContentTypes = []string{"text", "json", "javascript", "html", "xml"}

// wafSignatures mark a 403/406 body as a challenge page rather than a
// hard block. The assumption that such blocks are transient is a
// heuristic carried over deliberately; some WAFs block permanently.
var wafSignatures = [][]byte{
	[]byte("cloudflare"),
	[]byte("waf"),
	[]byte("challenge"),
	[]byte("captcha"),
	[]byte("security"),
}

// IsFinding reports whether a response is worth keeping: status 200, a
// body of at least minBody bytes, and a textual content type.
func IsFinding(status int, contentType string, contentLength int64, minBody int64) bool {
	if status != 200 || contentLength < minBody {
		return false
	}
	ct := strings.ToLower(contentType)
	for _, t := range findingContentTypes {
		if strings.Contains(ct, t) {
			return true
		}
	}
	return false
}

// RetryDecision is the transient verdict for one failed attempt.
type RetryDecision struct {
	Retry bool
	Wait  time.Duration
}

// ClassifyResponse decides whether a response should be retried and how
// long to wait first. attempt is 0-indexed; waits scale linearly with it.
// The body is matched as raw bytes so non-UTF8 responses never break
// classification.
func ClassifyResponse(status int, body []byte, attempt int) (FailureKind, RetryDecision) {
	scale := time.Duration(attempt + 1)
	switch {
	case status == 429 || status == 420:
		return FailureRateLimited, RetryDecision{Retry: true, Wait: scale * 5 * time.Second}
	case status >= 500:
		return FailureServerError, RetryDecision{Retry: true, Wait: scale * 3 * time.Second}
	case status == 403 || status == 406:
		if containsWAFSignature(body) {
			return FailureWAFChallenge, RetryDecision{Retry: true, Wait: scale * 4 * time.Second}
		}
	}
	// 404, plain 403, 3xx and everything else are final.
	return FailureNone, RetryDecision{}
}

func containsWAFSignature(body []byte) bool {
	lower := bytes.ToLower(body)
	for _, sig := range wafSignatures {
		if bytes.Contains(lower, sig) {
			return true
		}
	}
	return false
}

// networkBackoff maps a network failure kind to its base retry delay.
// A plain table instead of per-error-type handlers keeps the policy in
// one place.
var networkBackoff = map[FailureKind]time.Duration{
	FailureTimeout:    3 * time.Second,
	FailureConnection: 5 * time.Second,
	FailureGeneric:    2 * time.Second,
}

// ClassifyNetError tags a transport-level error and returns the matching
// retry decision for the given attempt.
func ClassifyNetError(err error, attempt int) (FailureKind, RetryDecision) {
	kind := FailureGeneric
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = FailureTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = FailureTimeout
	case errors.Is(err, syscall.ECONNREFUSED), errors.Is(err, syscall.ECONNRESET):
		kind = FailureConnection
	}
	wait := networkBackoff[kind] * time.Duration(attempt+1)
	return kind, RetryDecision{Retry: true, Wait: wait}
}
