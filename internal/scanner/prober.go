package scanner

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/S4yfullXD/super-intelligent-scanner/internal/config"
)

// maxBodyBytes caps how much of a response body is read. Enough for
// classification and analysis without buffering huge downloads.
const maxBodyBytes = 1 << 20

// Prober issues evasion-wrapped HTTP probes against a single target
// origin, retrying per the classification policy. Safe for concurrent
// use by the worker pool.
type Prober struct {
	client     *http.Client
	base       *url.URL
	maxRetries int
	minBody    int64
	method     string
	limiter    *rate.Limiter

	// sleep is swapped out in tests so backoff waits don't slow them down.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewProber creates a Prober from validated options. TLS verification is
// disabled on purpose: this is a reconnaissance tool pointed at arbitrary
// targets, and a bad certificate is itself a result, not a stop sign.
func NewProber(opts *config.Options) (*Prober, error) {
	base, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", opts.URL, err)
	}
	if base.Scheme == "" {
		base.Scheme = "https"
	}
	if base.Host == "" {
		return nil, fmt.Errorf("invalid URL %q: missing host", opts.URL)
	}
	base.Path = strings.TrimRight(base.Path, "/")

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		DialContext: (&net.Dialer{
			Timeout: opts.Timeout,
		}).DialContext,
		MaxIdleConns:        opts.MaxWorkers,
		MaxIdleConnsPerHost: opts.MaxWorkers,
	}
	if opts.Proxy != "" {
		proxyURL, err := url.Parse(opts.Proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL %q: %w", opts.Proxy, err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RateLimitDelay > 0 {
		limiter = rate.NewLimiter(rate.Limit(1/opts.RateLimitDelay), 1)
	}

	method := http.MethodGet
	if opts.UseHEAD {
		method = http.MethodHead
	}

	return &Prober{
		client:     client,
		base:       base,
		maxRetries: opts.MaxRetries,
		minBody:    DefaultMinBodyBytes,
		method:     method,
		limiter:    limiter,
		sleep:      realSleep,
	}, nil
}

func realSleep(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Probe fetches one candidate path, retrying rate limits, server errors,
// WAF challenges and network failures up to the attempt budget. Only the
// final attempt's outcome is returned.
func (p *Prober) Probe(ctx context.Context, path string) ProbeResult {
	raw := strings.TrimLeft(path, "/")
	// A literal '#' (HTML-entity candidates) would be parsed as a fragment
	// delimiter and everything after it silently dropped from the request.
	raw = strings.ReplaceAll(raw, "#", "%23")
	target := p.base.String() + "/" + raw
	start := time.Now()

	var last ProbeResult
	var pending RetryDecision

	for attempt := 0; attempt < p.maxRetries; attempt++ {
		if attempt > 0 {
			if err := p.sleep(ctx, withJitter(pending.Wait)); err != nil {
				break
			}
		}
		if err := p.limiter.Wait(ctx); err != nil {
			break
		}

		result, decision := p.attempt(ctx, target, path, attempt)
		result.Attempts = attempt + 1
		last = result

		if !decision.Retry || ctx.Err() != nil {
			break
		}
		pending = decision
	}

	last.Duration = time.Since(start)
	return last
}

// attempt performs a single request and classifies its outcome.
func (p *Prober) attempt(ctx context.Context, target, path string, attempt int) (ProbeResult, RetryDecision) {
	result := ProbeResult{URL: target, Path: path}

	req, err := http.NewRequestWithContext(ctx, p.method, target, nil)
	if err != nil {
		result.FailKind = FailureGeneric
		result.ErrMsg = err.Error()
		return result, RetryDecision{}
	}
	applyEvasionHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		kind, decision := ClassifyNetError(err, attempt)
		result.FailKind = kind
		result.ErrMsg = err.Error()
		return result, decision
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		// Got headers but the body died mid-read. Classify on what we have.
		body = nil
	}

	result.StatusCode = resp.StatusCode
	result.ContentType = resp.Header.Get("Content-Type")
	result.ContentLength = int64(len(body))
	if p.method == http.MethodHead && resp.ContentLength > 0 {
		// HEAD responses have no body, so the size criterion falls back to
		// the Content-Length header. Challenge-page detection has no body
		// to inspect in this mode; 403/406 WAF retries only fire on GET.
		result.ContentLength = resp.ContentLength
	}

	kind, decision := ClassifyResponse(resp.StatusCode, body, attempt)
	if decision.Retry {
		result.FailKind = kind
		return result, decision
	}

	if IsFinding(resp.StatusCode, result.ContentType, result.ContentLength, p.minBody) {
		result.Finding = true
		result.Body = body
	}
	return result, RetryDecision{}
}

// withJitter adds up to 25% random slack to a backoff delay so retries
// from parallel workers don't synchronize.
func withJitter(d time.Duration) time.Duration {
	if d <= 0 {
		return d
	}
	return d + time.Duration(rand.Int63n(int64(d)/4+1))
}
