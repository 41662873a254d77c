package buffer

import (
	"time"

	"github.com/NVIDIA/aisqueue/qchan/gate"
)

// HasDataTime is satisfied by item types usable with the temporal
// ("time series") channel variants: each item carries the point in the
// data's own timeline it represents, which the gate compares against
// elapsed wall time.
type HasDataTime interface {
	DataTime() time.Time
}

// TSPre is the holding stage of a temporal channel: items arrive in
// data-time order and sit here until the gate admits them, at which point
// they become visible to Recv/RecvCount. ApplyBound caps how many items
// the stage holds, released-but-unread ones included, head-dropping the
// oldest on the next Send/SendItems; zero disables the cap.
type TSPre[T HasDataTime] struct {
	gate  gate.Gate
	buf   []T
	bound int
}

func NewTSPre[T HasDataTime](dataOrigin time.Time, speed float64) *TSPre[T] {
	return &TSPre[T]{gate: gate.New(dataOrigin, speed)}
}

func (p *TSPre[T]) ApplyBound(bound int) { p.bound = bound }

func (p *TSPre[T]) Send(x T) {
	p.buf = append(p.buf, x)
	p.trim()
}

func (p *TSPre[T]) SendItems(xs []T) {
	p.buf = append(p.buf, xs...)
	p.trim()
}

func (p *TSPre[T]) trim() {
	if p.bound > 0 && len(p.buf) > p.bound {
		p.buf = p.buf[len(p.buf)-p.bound:]
	}
}

// IsReleased reports whether the item at idx has crossed the gate.
func (p *TSPre[T]) IsReleased(idx int) bool {
	if idx < 0 || idx >= len(p.buf) {
		return false
	}
	return p.gate.Released(p.buf[idx].DataTime())
}

// Recv pops the oldest item, but only once it is released.
func (p *TSPre[T]) Recv() (T, bool) {
	var zero T
	if len(p.buf) == 0 || !p.IsReleased(0) {
		return zero, false
	}
	x := p.buf[0]
	p.buf = p.buf[1:]
	return x, true
}

// RecvCount implements the §4.1 recv_items policy gated by time: the
// candidate count is computed as in the untimed policy, then shrunk down
// until its last member (index want-1, per the read_count-1 resolution)
// has been released — so a still-future item at the tail of the requested
// window truncates the batch rather than withholding all of it.
func (p *TSPre[T]) RecvCount(n int, force bool) []T {
	l := len(p.buf)
	var want int
	switch {
	case n <= l:
		want = n
	case !force && l > 0:
		want = l - n
	default:
		return nil
	}
	for want > 0 && !p.IsReleased(want-1) {
		want--
	}
	if want <= 0 {
		return nil
	}
	out := make([]T, want)
	copy(out, p.buf[:want])
	p.buf = p.buf[want:]
	return out
}

func (p *TSPre[T]) Len() int                       { return len(p.buf) }
func (p *TSPre[T]) QueryItems(start, end int) []T { return SliceView(p.buf, start, end) }

// drainReleased removes and returns the maximal released prefix, for
// migration into a dispatch buffer's post stage.
func (p *TSPre[T]) drainReleased() []T {
	n := 0
	for n < len(p.buf) && p.gate.Released(p.buf[n].DataTime()) {
		n++
	}
	if n == 0 {
		return nil
	}
	out := p.buf[:n]
	p.buf = p.buf[n:]
	return out
}
