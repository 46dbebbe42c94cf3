// Package worker provides bounded-concurrency batch analysis for the CLI:
// many domains in, one outcome per domain out, input order preserved.
package worker

import (
	"context"
	"sync"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/analyzer"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
)

// Outcome is the per-domain batch result. Err is set only for rejected
// input; a domain that passed validation always carries a complete Result.
type Outcome struct {
	Input  string
	Result domain.Result
	Err    error
}

// Pool runs analyses with a fixed concurrency limit.
type Pool struct {
	svc     *analyzer.Service
	workers int
}

// NewPool creates a pool around the analyzer service.
func NewPool(svc *analyzer.Service, workers int) *Pool {
	if workers <= 0 {
		workers = 5
	}
	return &Pool{svc: svc, workers: workers}
}

// Run analyzes every domain and returns outcomes in input order. Analyses
// are independent pure evaluations, so they run in parallel with no
// coordination beyond the concurrency cap.
func (p *Pool) Run(ctx context.Context, domains []string) []Outcome {
	outcomes := make([]Outcome, len(domains))

	var wg sync.WaitGroup
	sem := make(chan struct{}, p.workers)

	for i, d := range domains {
		wg.Add(1)
		go func(idx int, input string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			result, err := p.svc.Analyze(ctx, input)
			outcomes[idx] = Outcome{Input: input, Result: result, Err: err}
		}(i, d)
	}

	wg.Wait()

	return outcomes
}
