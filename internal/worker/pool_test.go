package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

// countingJob implements Job
type countingJob struct {
	executed  *int32
	shouldErr bool
}

type countingResult struct {
	err error
}

func (r *countingResult) GetError() error { return r.err }

func (j *countingJob) Execute(ctx context.Context) Result {
	atomic.AddInt32(j.executed, 1)
	if j.shouldErr {
		return &countingResult{err: errors.New("job error")}
	}
	return &countingResult{}
}

func TestPool_ExecutesAllJobs(t *testing.T) {
	pool := NewPool(4)
	pool.Start()

	var executed int32
	go func() {
		// Well past the channel buffers; drains must overlap submission
		for i := 0; i < 100; i++ {
			pool.Submit(&countingJob{executed: &executed})
		}
		pool.Close()
	}()

	results := pool.Wait()

	if got := atomic.LoadInt32(&executed); got != 100 {
		t.Errorf("expected 100 executions, got %d", got)
	}
	if len(results) != 100 {
		t.Errorf("expected 100 results, got %d", len(results))
	}
}

func TestPool_CollectsErrors(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	var executed int32
	pool.Submit(&countingJob{executed: &executed, shouldErr: true})
	pool.Submit(&countingJob{executed: &executed})
	pool.Close()

	results := pool.Wait()

	errCount := 0
	for _, r := range results {
		if r.GetError() != nil {
			errCount++
		}
	}
	if errCount != 1 {
		t.Errorf("expected 1 failed job, got %d", errCount)
	}
}

func TestPool_ShutdownStopsWork(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Shutdown()

	var executed int32
	pool.Submit(&countingJob{executed: &executed})

	if got := atomic.LoadInt32(&executed); got != 0 {
		t.Errorf("expected no executions after shutdown, got %d", got)
	}
}

func TestPool_ZeroWorkersGetsOne(t *testing.T) {
	pool := NewPool(0)
	if pool.workers != 1 {
		t.Errorf("expected at least 1 worker, got %d", pool.workers)
	}
}
