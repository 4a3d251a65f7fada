package sweeper

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riordanpawley/taskmaster/internal/cleanup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingCleaner implements Cleaner for testing
type countingCleaner struct {
	calls  atomic.Int32
	report cleanup.Report
}

func (c *countingCleaner) RunCleanup() cleanup.Report {
	c.calls.Add(1)
	return c.report
}

func TestNew_DefaultInterval(t *testing.T) {
	s := New(&countingCleaner{}, 0, nil, nil)
	assert.Equal(t, DefaultInterval, s.Interval())
}

func TestSweeper_RunTicksUntilCancelled(t *testing.T) {
	cleaner := &countingCleaner{}
	s := New(cleaner, 5*time.Millisecond, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return cleaner.calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}
}

func TestSweeper_ReportsOnlyNonEmptySweeps(t *testing.T) {
	var mu sync.Mutex
	var reports []cleanup.Report

	empty := &countingCleaner{}
	s := New(empty, 5*time.Millisecond, nil, func(r cleanup.Report) {
		mu.Lock()
		reports = append(reports, r)
		mu.Unlock()
	})
	ctx, cancel := context.WithCancel(context.Background())
	go s.Run(ctx)
	require.Eventually(t, func() bool { return empty.calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()

	mu.Lock()
	assert.Empty(t, reports)
	mu.Unlock()

	busy := &countingCleaner{report: cleanup.Report{Expired: []string{"t1"}}}
	s = New(busy, 5*time.Millisecond, nil, func(r cleanup.Report) {
		mu.Lock()
		reports = append(reports, r)
		mu.Unlock()
	})
	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(reports) > 0
	}, time.Second, time.Millisecond)
	mu.Lock()
	assert.Equal(t, []string{"t1"}, reports[0].Expired)
	mu.Unlock()
}
