package job_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clinwell/billing/pkg/job"
)

func TestRunner_RunsImmediatelyAndOnTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32

	done := make(chan struct{})

	r := job.NewRunner().
		Schedule("count", 10*time.Millisecond, func(_ context.Context) error {
			if runs.Add(1) == 3 {
				close(done)
			}

			return nil
		})

	r.Start(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not reach three runs")
	}

	cancel()
	r.Wait()

	require.GreaterOrEqual(t, runs.Load(), int32(3))
}

func TestRunner_SurvivesPanickingTask(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32

	done := make(chan struct{})

	r := job.NewRunner().
		Schedule("flaky", 10*time.Millisecond, func(_ context.Context) error {
			switch runs.Add(1) {
			case 1:
				panic("first run blows up")
			case 2:
				close(done)
			}

			return nil
		})

	r.Start(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task loop did not survive the panic")
	}

	cancel()
	r.Wait()
}
