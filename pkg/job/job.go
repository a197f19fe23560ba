// Package job runs the billing service's periodic background tasks.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type task struct {
	name  string
	every time.Duration
	run   func(ctx context.Context) error
}

// Runner executes scheduled tasks until its context is cancelled. Each task
// runs once immediately on Start and then once per interval.
type Runner struct {
	tasks []task
	wg    sync.WaitGroup
}

func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) Schedule(name string, every time.Duration, run func(ctx context.Context) error) *Runner {
	r.tasks = append(r.tasks, task{
		name:  name,
		every: every,
		run:   run,
	})

	return r
}

func (r *Runner) Start(ctx context.Context) {
	for _, t := range r.tasks {
		r.wg.Add(1)

		go r.loop(ctx, t)
	}
}

func (r *Runner) loop(ctx context.Context, t task) {
	defer r.wg.Done()

	l := slog.Default().With("task", t.name)

	ticker := time.NewTicker(t.every)
	defer ticker.Stop()

	for {
		err := r.runOne(ctx, t)
		if err != nil {
			l.Error("task failed", "error", err)
		} else {
			l.Debug("task done")
		}

		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
		}
	}
}

// runOne converts a panicking task into an error so one bad run never takes
// the loop down.
func (r *Runner) runOne(ctx context.Context, t task) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("task panic: %v\n%s", rec, string(debug.Stack()))
		}
	}()

	return t.run(ctx)
}

// Wait blocks until every task loop has observed context cancellation.
func (r *Runner) Wait() {
	r.wg.Wait()
}
