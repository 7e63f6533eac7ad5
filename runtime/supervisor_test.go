package runtime_test

import (
	"chat-shell/contract"
	"chat-shell/runtime"
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type panickyWorker struct {
	runs *atomic.Int32
}

func (w panickyWorker) Run(ctx context.Context) error {
	if w.runs.Add(1) == 1 {
		panic("boom")
	}
	<-ctx.Done()
	return nil
}

type quietWorker struct{}

func (quietWorker) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func TestSupervisor_Restarts_Panicked_Worker(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	sup := runtime.NewSupervisor(log, 10*time.Millisecond)

	runs := &atomic.Int32{}
	sup.Add(panickyWorker{runs: runs})

	done := make(chan struct{})
	go func() {
		sup.Run(context.Background())
		close(done)
	}()

	// The first run panics; the supervisor restarts the worker
	req.Eventually(func() bool { return runs.Load() >= 2 }, time.Second, 10*time.Millisecond)

	sup.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("supervisor did not stop in time")
	}
}

func TestSupervisor_Stop_Terminates_All_Workers(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	sup := runtime.NewSupervisor(log, 10*time.Millisecond)
	sup.Add(quietWorker{}, quietWorker{})

	done := make(chan struct{})
	go func() {
		sup.Run(context.Background())
		close(done)
	}()

	// Give workers a moment to start, then stop everything
	time.Sleep(20 * time.Millisecond)
	sup.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("supervisor did not stop in time")
	}
}

var _ contract.Worker = quietWorker{}
