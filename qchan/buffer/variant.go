package buffer

import "time"

// Variant is the common shape shared by all eight buffer engines, letting
// a qchan.Channel hold one concrete engine behind a single interface
// value instead of a switch over kind at every call site. idx is ignored
// by the four single-consumer shapes.
type Variant[T any] interface {
	Send(x T)
	SendItems(xs []T)
	Recv(idx int) (T, bool)
	RecvCount(idx, n int, force bool) []T
	Len(idx int) int
	QueryItems(start, end int) []T
	NewReceiver(idx int)
	DropReceiver(idx int)

	isVariant()
}

// single-consumer shapes ignore idx; NewReceiver/DropReceiver are no-ops
// since there is exactly one implicit receiver.

type unboundedVariant[T any] struct{ *Unbounded[T] }

func NewUnboundedVariant[T any]() Variant[T] { return unboundedVariant[T]{NewUnbounded[T]()} }

func (v unboundedVariant[T]) Recv(int) (T, bool)                 { return v.Unbounded.Recv() }
func (v unboundedVariant[T]) RecvCount(_, n int, force bool) []T { return v.Unbounded.RecvCount(n, force) }
func (v unboundedVariant[T]) Len(int) int                        { return v.Unbounded.Len() }
func (unboundedVariant[T]) NewReceiver(int)                      {}
func (unboundedVariant[T]) DropReceiver(int)                     {}
func (unboundedVariant[T]) isVariant()                           {}

type boundedVariant[T any] struct{ *Bounded[T] }

func NewBoundedVariant[T any](cap int) Variant[T] { return boundedVariant[T]{NewBounded[T](cap)} }

func (v boundedVariant[T]) Recv(int) (T, bool)                 { return v.Bounded.Recv() }
func (v boundedVariant[T]) RecvCount(_, n int, force bool) []T { return v.Bounded.RecvCount(n, force) }
func (v boundedVariant[T]) Len(int) int                        { return v.Bounded.Len() }
func (boundedVariant[T]) NewReceiver(int)                      {}
func (boundedVariant[T]) DropReceiver(int)                     {}
func (boundedVariant[T]) isVariant()                           {}

// broadcast shapes use idx directly; they already implement the full
// Variant method set, modulo the marker method.

type unboundedBroadcastVariant[T any] struct{ *UnboundedBroadcast[T] }

func NewUnboundedBroadcastVariant[T any]() Variant[T] {
	return unboundedBroadcastVariant[T]{NewUnboundedBroadcast[T]()}
}

func (unboundedBroadcastVariant[T]) isVariant() {}

type boundedBroadcastVariant[T any] struct{ *BoundedBroadcast[T] }

func NewBoundedBroadcastVariant[T any](cap int) Variant[T] {
	return boundedBroadcastVariant[T]{NewBoundedBroadcast[T](cap)}
}

func (boundedBroadcastVariant[T]) isVariant() {}

// temporal, single-consumer: the pre stage alone, with no post/broadcast
// fanout. idx is ignored.

type tsPreVariant[T HasDataTime] struct{ *TSPre[T] }

func NewTSUnboundedPreVariant[T HasDataTime](dataOrigin time.Time, speed float64) Variant[T] {
	return tsPreVariant[T]{NewTSPre[T](dataOrigin, speed)}
}

func NewTSBoundedPreVariant[T HasDataTime](dataOrigin time.Time, speed float64, bound int) Variant[T] {
	p := NewTSPre[T](dataOrigin, speed)
	p.ApplyBound(bound)
	return tsPreVariant[T]{p}
}

func (v tsPreVariant[T]) Recv(int) (T, bool)                 { return v.TSPre.Recv() }
func (v tsPreVariant[T]) RecvCount(_, n int, force bool) []T { return v.TSPre.RecvCount(n, force) }
func (v tsPreVariant[T]) Len(int) int                        { return v.TSPre.Len() }
func (tsPreVariant[T]) NewReceiver(int)                      {}
func (tsPreVariant[T]) DropReceiver(int)                     {}
func (tsPreVariant[T]) isVariant()                           {}

// temporal, multi-consumer: gated admission feeding a broadcast post
// stage. idx selects the receiver.

type tsUnboundedDispatchVariant[T HasDataTime] struct{ *TSUnboundedDispatch[T] }

func NewTSUnboundedDispatchVariant[T HasDataTime](dataOrigin time.Time, speed float64) Variant[T] {
	return tsUnboundedDispatchVariant[T]{NewTSUnboundedDispatch[T](dataOrigin, speed)}
}

func (tsUnboundedDispatchVariant[T]) isVariant() {}

type tsBoundedDispatchVariant[T HasDataTime] struct{ *TSBoundedDispatch[T] }

func NewTSBoundedDispatchVariant[T HasDataTime](dataOrigin time.Time, speed float64, cap int) Variant[T] {
	return tsBoundedDispatchVariant[T]{NewTSBoundedDispatch[T](dataOrigin, speed, cap)}
}

func (tsBoundedDispatchVariant[T]) isVariant() {}
