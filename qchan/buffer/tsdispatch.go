package buffer

import "time"

// TSUnboundedDispatch composes a TSPre holding stage with an unbounded
// broadcast post stage: items sit in the pre stage until the gate admits
// them, then every receiver of the post stage can read them independently.
type TSUnboundedDispatch[T HasDataTime] struct {
	pre  *TSPre[T]
	post *UnboundedBroadcast[T]
}

func NewTSUnboundedDispatch[T HasDataTime](dataOrigin time.Time, speed float64) *TSUnboundedDispatch[T] {
	return &TSUnboundedDispatch[T]{pre: NewTSPre[T](dataOrigin, speed), post: NewUnboundedBroadcast[T]()}
}

func (d *TSUnboundedDispatch[T]) migrate() { d.post.SendItems(d.pre.drainReleased()) }

func (d *TSUnboundedDispatch[T]) Send(x T)         { d.pre.Send(x); d.migrate() }
func (d *TSUnboundedDispatch[T]) SendItems(xs []T) { d.pre.SendItems(xs); d.migrate() }

func (d *TSUnboundedDispatch[T]) NewReceiver(idx int)  { d.post.NewReceiver(idx) }
func (d *TSUnboundedDispatch[T]) DropReceiver(idx int) { d.post.DropReceiver(idx) }

func (d *TSUnboundedDispatch[T]) Recv(idx int) (T, bool) {
	d.migrate()
	return d.post.Recv(idx)
}

func (d *TSUnboundedDispatch[T]) RecvCount(idx, n int, force bool) []T {
	d.migrate()
	return d.post.RecvCount(idx, n, force)
}

func (d *TSUnboundedDispatch[T]) Len(idx int) int {
	d.migrate()
	return d.post.Len(idx)
}

// QueryItems spans both stages: already-released items from the post
// stage followed by the still-held pre stage, oldest first.
func (d *TSUnboundedDispatch[T]) QueryItems(start, end int) []T {
	d.migrate()
	combined := append(d.post.QueryItems(0, d.post.Len(NoCursor)), d.pre.QueryItems(0, d.pre.Len())...)
	return SliceView(combined, start, end)
}

// TSBoundedDispatch is the capacity-coupled counterpart: the pre and post
// stages share a single retention budget of cap items, so a burst of
// not-yet-released items shrinks how much released history the post stage
// may keep, and vice versa.
type TSBoundedDispatch[T HasDataTime] struct {
	pre  *TSPre[T]
	post *BoundedBroadcast[T]
}

func NewTSBoundedDispatch[T HasDataTime](dataOrigin time.Time, speed float64, cap int) *TSBoundedDispatch[T] {
	pre := NewTSPre[T](dataOrigin, speed)
	pre.ApplyBound(cap)
	return &TSBoundedDispatch[T]{pre: pre, post: NewBoundedBroadcast[T](cap)}
}

func (d *TSBoundedDispatch[T]) migrate() {
	d.post.ResidueCount(d.pre.Len())
	if drained := d.pre.drainReleased(); drained != nil {
		d.post.SendItems(drained)
	}
}

func (d *TSBoundedDispatch[T]) Send(x T)         { d.pre.Send(x); d.migrate() }
func (d *TSBoundedDispatch[T]) SendItems(xs []T) { d.pre.SendItems(xs); d.migrate() }

func (d *TSBoundedDispatch[T]) NewReceiver(idx int)  { d.post.NewReceiver(idx) }
func (d *TSBoundedDispatch[T]) DropReceiver(idx int) { d.post.DropReceiver(idx) }

func (d *TSBoundedDispatch[T]) Recv(idx int) (T, bool) {
	d.migrate()
	return d.post.Recv(idx)
}

func (d *TSBoundedDispatch[T]) RecvCount(idx, n int, force bool) []T {
	d.migrate()
	return d.post.RecvCount(idx, n, force)
}

func (d *TSBoundedDispatch[T]) Len(idx int) int {
	d.migrate()
	return d.post.Len(idx)
}

func (d *TSBoundedDispatch[T]) QueryItems(start, end int) []T {
	d.migrate()
	combined := append(d.post.QueryItems(0, d.post.Len(NoCursor)), d.pre.QueryItems(0, d.pre.Len())...)
	return SliceView(combined, start, end)
}
