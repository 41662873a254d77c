// Package async supplies the blocking-capable counterparts to qchan: an
// unbounded queue whose Recv can wait for an item instead of returning
// empty, and request/response front-ends built on top of it.
/*
 * Copyright (c) 2024, NVIDIA CORPORATION. All rights reserved.
 */
package async

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/semaphore"
)

type asyncCore[T any] struct {
	mu  sync.Mutex
	buf []T
	sem *semaphore.Weighted
}

// AsyncSender appends items to an async queue and releases a semaphore
// permit per item, waking a blocked Recv.
type AsyncSender[T any] struct{ core *asyncCore[T] }

// AsyncReceiver waits for a permit, then removes and returns the head.
type AsyncReceiver[T any] struct{ core *asyncCore[T] }

// NewUnboundedAsync returns a sender/receiver pair sharing one backing
// sequence and counting semaphore.
func NewUnboundedAsync[T any]() (*AsyncSender[T], *AsyncReceiver[T]) {
	sem := semaphore.NewWeighted(math.MaxInt64)
	sem.TryAcquire(math.MaxInt64) // start with no permits: one per sent item
	core := &asyncCore[T]{sem: sem}
	return &AsyncSender[T]{core}, &AsyncReceiver[T]{core}
}

func (s *AsyncSender[T]) Send(x T) {
	s.core.mu.Lock()
	s.core.buf = append(s.core.buf, x)
	s.core.mu.Unlock()
	s.core.sem.Release(1)
}

// Clone returns a new sender handle sharing the same backing sequence.
func (s *AsyncSender[T]) Clone() *AsyncSender[T] { return &AsyncSender[T]{s.core} }

// Recv blocks until an item is available or ctx is done.
func (r *AsyncReceiver[T]) Recv(ctx context.Context) (T, error) {
	var zero T
	if err := r.core.sem.Acquire(ctx, 1); err != nil {
		return zero, errors.Wrap(err, "waiting for async item")
	}
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	x := r.core.buf[0]
	r.core.buf = r.core.buf[1:]
	return x, nil
}

// RecvTimeout waits up to dur for an item. dur == 0 means "poll once":
// return immediately with whatever is already available.
func (r *AsyncReceiver[T]) RecvTimeout(dur time.Duration) (T, bool) {
	var zero T
	if dur <= 0 {
		if !r.core.sem.TryAcquire(1) {
			return zero, false
		}
		r.core.mu.Lock()
		defer r.core.mu.Unlock()
		x := r.core.buf[0]
		r.core.buf = r.core.buf[1:]
		return x, true
	}
	ctx, cancel := context.WithTimeout(context.Background(), dur)
	defer cancel()
	x, err := r.Recv(ctx)
	if err != nil {
		return zero, false
	}
	return x, true
}

// Clone returns a new receiver handle sharing the same backing sequence.
func (r *AsyncReceiver[T]) Clone() *AsyncReceiver[T] { return &AsyncReceiver[T]{r.core} }
