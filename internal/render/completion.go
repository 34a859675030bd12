// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"context"
	"sync"
)

// Completion is closed exactly once, when a render finished drawing or
// failed. Err is meaningful only after Done is closed.
type Completion struct {
	done chan struct{}
	once sync.Once
	err  error
}

func newCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// Completed returns a Completion that is already finished with err.
func Completed(err error) *Completion {
	c := newCompletion()
	c.finish(err)
	return c
}

// Pending returns an unfinished Completion and the function that finishes
// it. Renderers living outside this package use it.
func Pending() (*Completion, func(err error)) {
	c := newCompletion()
	return c, c.finish
}

// finish records err and closes Done. Later calls are ignored.
func (c *Completion) finish(err error) {
	c.once.Do(func() {
		c.err = err
		close(c.done)
	})
}

// Done returns a channel closed when the render is over.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Err returns the render error once Done is closed, and nil before that.
func (c *Completion) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}

// Wait blocks until the render is over or ctx ends, whichever is first.
func (c *Completion) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return c.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
