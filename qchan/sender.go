package qchan

import (
	"runtime"

	"github.com/NVIDIA/aisqueue/qstats"
)

// Sender appends items to a channel. Multiple senders may be live at
// once; each Send/SendItems call acquires the channel's single lock,
// appends, and releases.
type Sender[T any] struct {
	c      *container[T]
	slot   *qstats.Slot
	closed bool
}

func newSender[T any](c *container[T], callSite string) *Sender[T] {
	s := &Sender[T]{c: c, slot: c.stats.NewSlot(callSite)}
	runtime.SetFinalizer(s, (*Sender[T]).finalize)
	return s
}

func (s *Sender[T]) Send(x T) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()
	s.c.variant.Send(x)
	s.c.stats.Record(s.slot, 1)
}

func (s *Sender[T]) SendItems(xs []T) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()
	s.c.variant.SendItems(xs)
	s.c.stats.Record(s.slot, int64(len(xs)))
}

// Clone returns a new Sender handle sharing the same channel.
func (s *Sender[T]) Clone() *Sender[T] {
	s.c.mu.Lock()
	s.c.senderCount++
	s.c.mu.Unlock()
	return newSender(s.c, "sender.clone")
}

// Close drops this handle. Safe to call more than once.
func (s *Sender[T]) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.c.mu.Lock()
	s.c.senderCount--
	s.c.release()
	s.c.mu.Unlock()
	runtime.SetFinalizer(s, nil)
}

func (s *Sender[T]) finalize() { s.Close() }
