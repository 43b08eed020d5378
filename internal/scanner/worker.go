package scanner

import (
	"context"
	"sync"
)

// PoolConfig holds options for the probe worker pool.
type PoolConfig struct {
	Workers    int
	OnProgress func(completed, total int) // nil = no progress reporting
}

// RunPool fans candidate paths out across a fixed set of workers and
// returns a channel of probe results in completion order. The channel is
// closed once every dispatched path has been probed.
//
// Cancellation stops the producer immediately, so queued-but-unstarted
// paths are abandoned; workers finish their in-flight probe and exit.
func RunPool(ctx context.Context, p *Prober, candidates []string, cfg PoolConfig) <-chan ProbeResult {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	pathsCh := make(chan string, workers*2)
	resultsCh := make(chan ProbeResult, workers*2)

	total := len(candidates)
	var completed int
	var progressMu sync.Mutex

	// Producer: feed candidates until done or cancelled.
	go func() {
		defer close(pathsCh)
		for _, path := range candidates {
			select {
			case pathsCh <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range pathsCh {
				result := p.Probe(ctx, path)
				if ctx.Err() != nil && result.Attempts == 0 {
					return
				}
				resultsCh <- result

				if cfg.OnProgress != nil {
					progressMu.Lock()
					completed++
					done := completed
					progressMu.Unlock()
					cfg.OnProgress(done, total)
				}
			}
		}()
	}

	// Closer: drop the results channel once all workers return.
	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	return resultsCh
}

// ScanAll is the blocking convenience wrapper around RunPool: it records
// every result into the session and returns them in completion order.
// On cancellation it returns the partial results collected so far.
//
// A Record failure means the session was finalized while results were
// still arriving, which is a caller bug; the pool is still drained so no
// worker is left blocked, and the error is returned alongside the
// collected results.
func ScanAll(ctx context.Context, p *Prober, candidates []string, cfg PoolConfig, session *Session) ([]ProbeResult, error) {
	results := make([]ProbeResult, 0, len(candidates))
	var recordErr error
	for result := range RunPool(ctx, p, candidates, cfg) {
		if session != nil && recordErr == nil {
			recordErr = session.Record(result)
		}
		results = append(results, result)
	}
	return results, recordErr
}
