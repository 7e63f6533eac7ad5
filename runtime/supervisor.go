// Package runtime runs the long-lived background workers of the client
// shell (debug inspector, metric sampler) under supervision. It contains no
// view-layer logic.
package runtime

import (
	"chat-shell/contract"
	"chat-shell/errors"
	"context"
	"log/slog"
	"sync"
	"time"
)

// Supervisor runs each worker in its own goroutine, recovers panics, and
// restarts crashed workers after a delay. A failure in one worker never
// stops the supervisor itself.
type Supervisor struct {
	cancel          context.CancelFunc
	wg              sync.WaitGroup
	log             *slog.Logger
	restartInterval time.Duration
	workers         []contract.Worker
}

func NewSupervisor(log *slog.Logger, restartInterval time.Duration) *Supervisor {
	return &Supervisor{log: log, restartInterval: restartInterval}
}

func (s *Supervisor) Add(workers ...contract.Worker) *Supervisor {
	s.workers = append(s.workers, workers...)
	return s
}

// Run starts every added worker and blocks until all of them finish. The
// supervised context is tied to the parent: cancelling either stops the
// workers.
func (s *Supervisor) Run(ctx context.Context) {
	supervised, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	defer cancel()

	for _, worker := range s.workers {
		s.start(supervised, worker)
	}
	s.wg.Wait()
}

func (s *Supervisor) start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	name := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()
		for {
			if ctx.Err() != nil {
				s.log.Info("Stopping worker", "name", name)
				return
			}

			err := func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = errors.ErrWorkerPanic
					}
				}()
				return worker.Run(ctx)
			}()

			if err == nil {
				// Terminated properly, never restart.
				s.log.Info("Worker finished", "name", name)
				return
			}
			if ctx.Err() != nil {
				s.log.Info("Worker stopped (context canceled)", "name", name)
				return
			}

			s.log.Warn("Worker crashed, restarting", "name", name, "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.restartInterval):
			}
		}
	}()
}

// Stop cancels the supervised context; Run returns once every worker has
// observed the cancellation.
func (s *Supervisor) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}
