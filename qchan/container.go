// Package qchan is an in-process, multi-producer/multi-consumer
// message-passing library. Channels differ along three independent axes:
// boundedness (unbounded vs. bounded-with-head-drop), delivery mode
// (consume, where receivers compete for one shared tail, vs. dispatch,
// where each receiver reads its own copy of the retained tail), and
// temporal gating (immediate vs. replay-at-rate against a wall-clock
// derived admission gate).
/*
 * Copyright (c) 2024, NVIDIA CORPORATION. All rights reserved.
 */
package qchan

import (
	"sync"

	"github.com/NVIDIA/aisqueue/qchan/buffer"
	"github.com/NVIDIA/aisqueue/qstats"
)

// container is the shared state behind every handle on a channel. Its
// lifetime is governed by senderCount and receiverCount rather than Go's
// GC alone: a handle's Close (or its finalizer safety net) decrements the
// relevant count, and the last one to reach (0, 0) is responsible for any
// final teardown.
type container[T any] struct {
	mu               sync.Mutex
	variant          buffer.Variant[T]
	senderCount      int
	receiverCount    int
	maxReceiverIndex int
	stats            qstats.Sidecar
}

func newContainer[T any](v buffer.Variant[T]) *container[T] {
	return &container[T]{variant: v, stats: qstats.New()}
}

// release is invoked with the lock held, after a count transition, and is
// a no-op unless this was the transition that brought both counts to
// zero. Go's GC reclaims the container regardless; this exists to make
// the "destroyed exactly when both counts are zero" contract observable
// (e.g. for a future on-close hook) rather than to free anything by hand.
func (c *container[T]) release() {
	if c.senderCount == 0 && c.receiverCount == 0 {
		c.variant = nil
	}
}
