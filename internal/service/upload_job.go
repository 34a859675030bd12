package service

import (
	"context"
	"sync"
)

type uploadJob struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	// last is closed when the most recently submitted task exits.
	last chan struct{}
}

// NewUploadJob returns an idle single-slot UploadJob.
func NewUploadJob() UploadJob {
	return &uploadJob{}
}

// Submit implements UploadJob. The task context keeps the values of ctx but
// not its cancellation, so an upload outlives the request that started it.
func (j *uploadJob) Submit(ctx context.Context, task func(ctx context.Context)) {
	j.mu.Lock()
	if j.cancel != nil {
		j.cancel()
	}
	jobCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	prev := j.last
	done := make(chan struct{})
	j.cancel = cancel
	j.last = done
	j.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()

		if prev != nil {
			<-prev
		}
		// superseded while the previous task was winding down
		if jobCtx.Err() != nil {
			return
		}
		task(jobCtx)
	}()
}

// Wait implements UploadJob.
func (j *uploadJob) Wait() {
	j.mu.Lock()
	last := j.last
	j.mu.Unlock()

	if last != nil {
		<-last
	}
}

// Stop implements UploadJob.
func (j *uploadJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	last := j.last
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if last != nil {
		<-last
	}
}
