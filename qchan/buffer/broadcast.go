// Package buffer implements the shared buffer engine underneath every
// qchan channel shape.
/*
 * Copyright (c) 2024, NVIDIA CORPORATION. All rights reserved.
 */
package buffer

import (
	"math"

	"github.com/NVIDIA/aisqueue/cmn/debug"
)

// NoCursor is the sentinel receiver index meaning "no cursor, report the
// full storage length" — used by observers. Mirrors the Rust source's
// usize::MAX.
const NoCursor = math.MaxInt

// UnboundedBroadcast is a multi-cursor dispatch queue with no capacity
// limit: every receiver reads the full retained tail independently, and
// storage is compacted past the slowest cursor after every read.
type UnboundedBroadcast[T any] struct {
	buf     []T
	cursors map[int]int
}

func NewUnboundedBroadcast[T any]() *UnboundedBroadcast[T] {
	return &UnboundedBroadcast[T]{cursors: map[int]int{0: 0}}
}

func (b *UnboundedBroadcast[T]) Send(x T)         { b.buf = append(b.buf, x) }
func (b *UnboundedBroadcast[T]) SendItems(xs []T) { b.buf = append(b.buf, xs...) }

func (b *UnboundedBroadcast[T]) Recv(idx int) (T, bool) {
	var zero T
	cur, ok := b.cursors[idx]
	if !ok {
		cur = 0
	}
	var ret T
	var found bool
	if cur < len(b.buf) {
		ret = b.buf[cur]
		found = true
		cur++
	}
	b.cursors[idx] = cur
	b.compact()
	if !found {
		return zero, false
	}
	return ret, true
}

func (b *UnboundedBroadcast[T]) RecvCount(idx, n int, force bool) []T {
	cur, ok := b.cursors[idx]
	if !ok {
		cur = 0
	}
	out := recvCountFrom(b.buf, cur, n, force)
	b.cursors[idx] = cur + len(out)
	b.compact()
	return out
}

func (b *UnboundedBroadcast[T]) Len(idx int) int {
	if idx == NoCursor {
		return len(b.buf)
	}
	cur, ok := b.cursors[idx]
	if !ok {
		cur = 0
	}
	return len(b.buf) - cur
}

func (b *UnboundedBroadcast[T]) NewReceiver(idx int) { b.cursors[idx] = 0 }

func (b *UnboundedBroadcast[T]) DropReceiver(idx int) {
	delete(b.cursors, idx)
	b.compact()
}

func (b *UnboundedBroadcast[T]) QueryItems(start, end int) []T { return SliceView(b.buf, start, end) }

// compact advances the live-buffer base past the slowest cursor,
// implementing invariant 2 of spec.md §3. If there are no receivers the
// base is left untouched.
func (b *UnboundedBroadcast[T]) compact() {
	if len(b.cursors) == 0 {
		return
	}
	m := -1
	for _, c := range b.cursors {
		if m == -1 || c < m {
			m = c
		}
	}
	if m <= 0 {
		return
	}
	b.buf = b.buf[m:]
	for k, c := range b.cursors {
		b.cursors[k] = c - m
	}
}

// BoundedBroadcast is a multi-cursor dispatch queue that head-drops on
// overflow, walking each cursor back (and clamping at 0) by the number of
// items dropped — a receiver whose cursor pointed into the dropped prefix
// silently resumes at the new base.
type BoundedBroadcast[T any] struct {
	buf     []T
	cursors map[int]int
	cap     int
}

func NewBoundedBroadcast[T any](cap int) *BoundedBroadcast[T] {
	debug.Assert(cap > 0, "bounded broadcast buffer requires a positive capacity")
	return &BoundedBroadcast[T]{cursors: map[int]int{0: 0}, cap: cap}
}

func (b *BoundedBroadcast[T]) Send(x T) {
	b.buf = append(b.buf, x)
	if len(b.buf) > b.cap {
		b.buf = b.buf[1:]
		for k, c := range b.cursors {
			if c > 0 {
				b.cursors[k] = c - 1
			}
		}
	}
}

func (b *BoundedBroadcast[T]) SendItems(xs []T) {
	b.buf = append(b.buf, xs...)
	if over := len(b.buf) - b.cap; over > 0 {
		b.dropHead(over)
	}
}

func (b *BoundedBroadcast[T]) dropHead(n int) {
	for k, c := range b.cursors {
		if c >= n {
			b.cursors[k] = c - n
		} else {
			b.cursors[k] = 0
		}
	}
	b.buf = b.buf[n:]
}

func (b *BoundedBroadcast[T]) Recv(idx int) (T, bool) {
	var zero T
	cur, ok := b.cursors[idx]
	if !ok {
		cur = 0
	}
	var ret T
	var found bool
	if cur < len(b.buf) {
		ret = b.buf[cur]
		found = true
		cur++
	}
	b.cursors[idx] = cur
	b.compact()
	if !found {
		return zero, false
	}
	return ret, true
}

func (b *BoundedBroadcast[T]) RecvCount(idx, n int, force bool) []T {
	cur, ok := b.cursors[idx]
	if !ok {
		cur = 0
	}
	out := recvCountFrom(b.buf, cur, n, force)
	b.cursors[idx] = cur + len(out)
	b.compact()
	return out
}

func (b *BoundedBroadcast[T]) Len(idx int) int {
	if idx == NoCursor {
		return len(b.buf)
	}
	cur, ok := b.cursors[idx]
	if !ok {
		cur = 0
	}
	return len(b.buf) - cur
}

func (b *BoundedBroadcast[T]) NewReceiver(idx int) { b.cursors[idx] = 0 }

func (b *BoundedBroadcast[T]) DropReceiver(idx int) {
	delete(b.cursors, idx)
	b.compact()
}

func (b *BoundedBroadcast[T]) QueryItems(start, end int) []T { return SliceView(b.buf, start, end) }

func (b *BoundedBroadcast[T]) compact() {
	if len(b.cursors) == 0 {
		return
	}
	m := -1
	for _, c := range b.cursors {
		if m == -1 || c < m {
			m = c
		}
	}
	if m <= 0 {
		return
	}
	b.buf = b.buf[m:]
	for k, c := range b.cursors {
		b.cursors[k] = c - m
	}
}

// ResidueCount is the generalized part_queue_get_residue_count from
// spec.md §4.2: used only by the temporal two-stage composition to shrink
// this post-stage so that, combined with an externally-held pre-stage
// occupancy of externSize, total retention never exceeds cap. Returns the
// capacity, unchanged, for the caller's convenience.
func (b *BoundedBroadcast[T]) ResidueCount(externSize int) int {
	if externSize >= b.cap {
		b.buf = nil
		for k := range b.cursors {
			b.cursors[k] = 0
		}
		return b.cap
	}
	bound := b.cap - externSize
	if over := len(b.buf) - bound; over > 0 {
		b.dropHead(over)
	}
	return b.cap
}

// recvCountFrom is the broadcast-family variant of recvCount: the base is
// an independent cursor rather than the buffer's own head, and reads copy
// rather than remove.
func recvCountFrom[T any](buf []T, cur, n int, force bool) []T {
	l := len(buf)
	var readCount int
	switch {
	case cur+n <= l:
		readCount = n
	case !force && cur < l:
		readCount = l - cur
	default:
		return nil
	}
	if readCount <= 0 {
		return nil
	}
	out := make([]T, readCount)
	copy(out, buf[cur:cur+readCount])
	return out
}
