package qchan

import (
	"runtime"

	"github.com/NVIDIA/aisqueue/qchan/buffer"
	"github.com/NVIDIA/aisqueue/qstats"
)

// Observer is a read-only handle: it counts toward receiverCount for
// lifetime purposes but never materializes a cursor, so constructing,
// reading, and dropping one never changes what any receiver sees next.
type Observer[T any] struct {
	c      *container[T]
	slot   *qstats.Slot
	closed bool
}

func newObserver[T any](c *container[T], callSite string) *Observer[T] {
	o := &Observer[T]{c: c, slot: c.stats.NewSlot(callSite)}
	runtime.SetFinalizer(o, (*Observer[T]).finalize)
	return o
}

func (o *Observer[T]) Len() int {
	o.c.mu.Lock()
	defer o.c.mu.Unlock()
	return o.c.variant.Len(buffer.NoCursor)
}

func (o *Observer[T]) IsEmpty() bool { return o.Len() == 0 }

func (o *Observer[T]) QueryItems(start, end int) []T {
	o.c.mu.Lock()
	defer o.c.mu.Unlock()
	return o.c.variant.QueryItems(start, end)
}

// GetReceiver promotes this observer's channel share into a full
// Receiver with a fresh index and a cursor at the current base — it reads
// every item still retained, including items other receivers have already
// read but that compaction has not yet discarded.
func (o *Observer[T]) GetReceiver() *Receiver[T] {
	o.c.mu.Lock()
	o.c.receiverCount++
	o.c.maxReceiverIndex++
	idx := o.c.maxReceiverIndex
	o.c.variant.NewReceiver(idx)
	o.c.mu.Unlock()
	return newReceiver(o.c, idx, "observer.getReceiver")
}

func (o *Observer[T]) Close() {
	if o.closed {
		return
	}
	o.closed = true
	o.c.mu.Lock()
	o.c.receiverCount--
	o.c.release()
	o.c.mu.Unlock()
	runtime.SetFinalizer(o, nil)
}

func (o *Observer[T]) finalize() { o.Close() }
