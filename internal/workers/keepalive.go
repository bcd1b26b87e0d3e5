package workers

import (
	"context"
	"time"

	"github.com/academyhub/academy-client/internal/service"
)

// KeepaliveWorker drives the session keepalive job: it re-validates the
// stored session on an interval so an expired token surfaces before the
// user's next action.
type KeepaliveWorker struct {
	job      service.ClientSessionJob
	interval time.Duration
}

func NewKeepaliveWorker(job service.ClientSessionJob, interval time.Duration) *KeepaliveWorker {
	return &KeepaliveWorker{job: job, interval: interval}
}

// Run starts the keepalive job and returns immediately. The job owns its own
// cancellable context, so Stop is the only way to shut it down from outside.
func (k *KeepaliveWorker) Run() {
	k.job.Start(context.Background(), k.interval)
}

// Stop blocks until the keepalive goroutine has exited.
func (k *KeepaliveWorker) Stop() {
	k.job.Stop()
}
