// Package health defines the dependency probe contract shared by the store
// and session layers and aggregates probe results for the deep health check.
package health

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ProbeResult is returned by a dependency probe.
type ProbeResult struct {
	Name      string `json:"name"`
	OK        bool   `json:"ok"`
	LatencyMs int64  `json:"latencyMs"`
	Error     string `json:"error,omitempty"`
}

// Prober is implemented by each backing dependency (Postgres, Redis).
type Prober interface {
	Probe(ctx context.Context) ProbeResult
}

// Check probes every dependency concurrently and returns the results keyed
// by dependency name. A failing probe never cancels its siblings.
func Check(ctx context.Context, probers map[string]Prober) map[string]ProbeResult {
	results := make(map[string]ProbeResult, len(probers))
	var mu sync.Mutex
	var g errgroup.Group

	for name, p := range probers {
		name, p := name, p
		g.Go(func() error {
			probe := p.Probe(ctx)
			mu.Lock()
			results[name] = probe
			mu.Unlock()
			return nil
		})
	}

	// Wait never returns an error because all goroutines return nil.
	_ = g.Wait()
	return results
}

// AllOK reports whether every probe in results succeeded.
func AllOK(results map[string]ProbeResult) bool {
	for _, p := range results {
		if !p.OK {
			return false
		}
	}
	return true
}
