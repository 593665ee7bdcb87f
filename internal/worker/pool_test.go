package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolProcessesJobs(t *testing.T) {
	pool := NewPool(2, 10)
	pool.Start()
	defer pool.Stop()

	var processed atomic.Int32
	done := make(chan struct{}, 5)

	for i := 0; i < 5; i++ {
		pool.Enqueue(JobFunc(func(ctx context.Context) error {
			processed.Add(1)
			done <- struct{}{}
			return nil
		}))
	}

	for i := 0; i < 5; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for jobs")
		}
	}
	assert.Equal(t, int32(5), processed.Load())
}

func TestPoolSurvivesJobError(t *testing.T) {
	pool := NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	done := make(chan struct{}, 1)
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		return errors.New("boom")
	}))
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		done <- struct{}{}
		return nil
	}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker died after failed job")
	}
}

func TestTryEnqueueFullQueue(t *testing.T) {
	// No workers started: the queue fills up and stays full.
	pool := NewPool(0, 1)

	assert.True(t, pool.TryEnqueue(JobFunc(func(ctx context.Context) error { return nil })))
	assert.False(t, pool.TryEnqueue(JobFunc(func(ctx context.Context) error { return nil })))
}
