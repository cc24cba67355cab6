package async

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestRunExecutesAllJobs(t *testing.T) {
	var count atomic.Int32
	jobs := make([]Job, 20)
	for i := range jobs {
		jobs[i] = func(context.Context) error {
			count.Add(1)
			return nil
		}
	}

	errs := NewPool(4).Run(context.Background(), jobs)

	if got := count.Load(); got != 20 {
		t.Errorf("executed %d jobs, want 20", got)
	}
	for i, err := range errs {
		if err != nil {
			t.Errorf("job %d: unexpected error %v", i, err)
		}
	}
}

func TestRunReportsErrorsPerJob(t *testing.T) {
	boom := errors.New("boom")
	jobs := []Job{
		func(context.Context) error { return nil },
		func(context.Context) error { return boom },
		func(context.Context) error { return nil },
	}

	errs := NewPool(2).Run(context.Background(), jobs)

	if errs[0] != nil || errs[2] != nil {
		t.Errorf("healthy jobs reported errors: %v", errs)
	}
	if !errors.Is(errs[1], boom) {
		t.Errorf("errs[1] = %v, want boom", errs[1])
	}
}

func TestRunBoundsConcurrency(t *testing.T) {
	const workers = 3
	var mu sync.Mutex
	running, peak := 0, 0

	jobs := make([]Job, 12)
	for i := range jobs {
		jobs[i] = func(context.Context) error {
			mu.Lock()
			running++
			if running > peak {
				peak = running
			}
			mu.Unlock()

			mu.Lock()
			running--
			mu.Unlock()
			return nil
		}
	}

	NewPool(workers).Run(context.Background(), jobs)

	if peak > workers {
		t.Errorf("peak concurrency %d exceeds limit %d", peak, workers)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	errs := NewPool(1).Run(ctx, []Job{
		func(context.Context) error { ran = true; return nil },
	})

	if ran {
		t.Error("job ran despite cancelled context")
	}
	if !errors.Is(errs[0], context.Canceled) {
		t.Errorf("errs[0] = %v, want context.Canceled", errs[0])
	}
}
