package qchan

import (
	"runtime"

	"github.com/NVIDIA/aisqueue/qstats"
)

// Receiver reads items from a channel. In dispatch (broadcast) mode each
// Receiver owns an independent cursor over the retained tail; in consume
// mode all receivers drain one shared head.
type Receiver[T any] struct {
	c      *container[T]
	idx    int
	slot   *qstats.Slot
	closed bool
}

func newReceiver[T any](c *container[T], idx int, callSite string) *Receiver[T] {
	r := &Receiver[T]{c: c, idx: idx, slot: c.stats.NewSlot(callSite)}
	runtime.SetFinalizer(r, (*Receiver[T]).finalize)
	return r
}

func (r *Receiver[T]) Recv() (T, bool) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	x, ok := r.c.variant.Recv(r.idx)
	if ok {
		r.c.stats.Record(r.slot, 1)
	}
	return x, ok
}

// RecvItems returns exactly n items, or none if fewer than n are
// available (force mode). On a time-series channel without dispatch the
// batch is further cut back to the items the gate has already released, so
// it can hold fewer than n.
func (r *Receiver[T]) RecvItems(n int) []T { return r.recvItems(n, true) }

// RecvItemsWeak is the soft-mode read for when fewer than n items are
// available. In dispatch mode it returns everything left past this
// receiver's cursor. In consume mode it applies the len-n count, which is
// negative whenever n exceeds the buffered length, so nothing is returned.
func (r *Receiver[T]) RecvItemsWeak(n int) []T { return r.recvItems(n, false) }

func (r *Receiver[T]) recvItems(n int, force bool) []T {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	out := r.c.variant.RecvCount(r.idx, n, force)
	if len(out) > 0 {
		r.c.stats.Record(r.slot, int64(len(out)))
	}
	return out
}

func (r *Receiver[T]) Len() int {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	return r.c.variant.Len(r.idx)
}

func (r *Receiver[T]) IsEmpty() bool { return r.Len() == 0 }

func (r *Receiver[T]) QueryItems(start, end int) []T {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	return r.c.variant.QueryItems(start, end)
}

// Clone returns a new Receiver handle with a fresh index and cursor.
func (r *Receiver[T]) Clone() *Receiver[T] {
	r.c.mu.Lock()
	r.c.receiverCount++
	r.c.maxReceiverIndex++
	idx := r.c.maxReceiverIndex
	r.c.variant.NewReceiver(idx)
	r.c.mu.Unlock()
	return newReceiver(r.c, idx, "receiver.clone")
}

// GetObserver returns a read-only handle that counts toward
// receiverCount but never holds a cursor.
func (r *Receiver[T]) GetObserver() *Observer[T] {
	r.c.mu.Lock()
	r.c.receiverCount++
	r.c.maxReceiverIndex++
	r.c.mu.Unlock()
	return newObserver(r.c, "receiver.getObserver")
}

// Close drops this handle's cursor (triggering compaction) and its share
// of receiverCount. Safe to call more than once.
func (r *Receiver[T]) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.c.mu.Lock()
	r.c.variant.DropReceiver(r.idx)
	r.c.receiverCount--
	r.c.release()
	r.c.mu.Unlock()
	runtime.SetFinalizer(r, nil)
}

func (r *Receiver[T]) finalize() { r.Close() }
