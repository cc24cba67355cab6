package async

import (
	"context"
	"sync"
)

// Job is one unit of work executed by the pool.
type Job func(ctx context.Context) error

// Pool runs jobs with bounded concurrency. The zero value is not usable; use
// NewPool.
type Pool struct {
	workers int
}

func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Run executes all jobs and returns one error slot per job, index-aligned
// with the input. Jobs not started before ctx is cancelled report ctx.Err().
// Run always waits for in-flight jobs before returning.
func (p *Pool) Run(ctx context.Context, jobs []Job) []error {
	errs := make([]error, len(jobs))
	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			continue
		}
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, job Job) {
			defer wg.Done()
			defer func() { <-sem }()
			errs[i] = job(ctx)
		}(i, job)
	}

	wg.Wait()
	return errs
}
