package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/academyhub/academy-client/internal/logger"
)

type clientSessionJob struct {
	auth ClientAuthService
	log  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSessionJob creates a clientSessionJob that calls auth.CheckAuth on
// a ticker. The job is idle until Start is called.
func NewClientSessionJob(auth ClientAuthService, log *logger.Logger) ClientSessionJob {
	return &clientSessionJob{auth: auth, log: log}
}

// Start implements ClientSessionJob. It stops any previously running job,
// then launches a background goroutine that re-validates the session every
// interval. If interval is zero or negative it defaults to 5 minutes. The
// goroutine exits when ctx is cancelled, Stop is called, or the session
// expires.
func (j *clientSessionJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				err := j.auth.CheckAuth(jobCtx)
				if errors.Is(err, ErrSessionExpired) {
					j.log.Info().Msg("session expired, keepalive stopping")
					return
				}
				if err != nil {
					// Transient failures are fine; the next tick retries.
					j.log.Debug().Err(err).Msg("keepalive check failed")
				}
			}
		}
	}()
}

// Stop implements ClientSessionJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientSessionJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
