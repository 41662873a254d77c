// Package buffer implements the shared buffer engine underneath every
// qchan channel shape.
/*
 * Copyright (c) 2024, NVIDIA CORPORATION. All rights reserved.
 */
package buffer

import "github.com/NVIDIA/aisqueue/cmn/debug"

// Unbounded is a consume-family FIFO with no capacity limit.
type Unbounded[T any] struct {
	buf []T
}

func NewUnbounded[T any]() *Unbounded[T] { return &Unbounded[T]{} }

func (b *Unbounded[T]) Send(x T)         { b.buf = append(b.buf, x) }
func (b *Unbounded[T]) SendItems(xs []T) { b.buf = append(b.buf, xs...) }

func (b *Unbounded[T]) Recv() (T, bool) {
	var zero T
	if len(b.buf) == 0 {
		return zero, false
	}
	x := b.buf[0]
	b.buf = b.buf[1:]
	return x, true
}

// RecvCount implements spec.md §4.1's recv_items(n, force) policy: exact n
// when available, otherwise (soft mode) the documented len-n quirk, else
// empty.
func (b *Unbounded[T]) RecvCount(n int, force bool) []T {
	out, consumed := recvCount(b.buf, n, force)
	b.buf = b.buf[consumed:]
	return out
}

func (b *Unbounded[T]) Len() int                       { return len(b.buf) }
func (b *Unbounded[T]) QueryItems(start, end int) []T { return SliceView(b.buf, start, end) }

// Bounded is a consume-family FIFO that head-drops on overflow.
type Bounded[T any] struct {
	buf []T
	cap int
}

func NewBounded[T any](cap int) *Bounded[T] {
	debug.Assert(cap > 0, "bounded buffer requires a positive capacity")
	return &Bounded[T]{cap: cap}
}

func (b *Bounded[T]) Send(x T) {
	b.buf = append(b.buf, x)
	if len(b.buf) > b.cap {
		b.buf = b.buf[len(b.buf)-b.cap:]
	}
}

// SendItems appends a batch and, if the batch itself exceeds the
// capacity, retains only the last cap items (tail wins) — the resolution
// of the bounded-consume Open Question in spec.md §9.
func (b *Bounded[T]) SendItems(xs []T) {
	b.buf = append(b.buf, xs...)
	if len(b.buf) > b.cap {
		b.buf = b.buf[len(b.buf)-b.cap:]
	}
}

func (b *Bounded[T]) Recv() (T, bool) {
	var zero T
	if len(b.buf) == 0 {
		return zero, false
	}
	x := b.buf[0]
	b.buf = b.buf[1:]
	return x, true
}

func (b *Bounded[T]) RecvCount(n int, force bool) []T {
	out, consumed := recvCount(b.buf, n, force)
	b.buf = b.buf[consumed:]
	return out
}

func (b *Bounded[T]) Len() int                       { return len(b.buf) }
func (b *Bounded[T]) QueryItems(start, end int) []T { return SliceView(b.buf, start, end) }
