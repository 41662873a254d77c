// Package buffer implements the shared buffer engine underneath every
// qchan channel shape: plain/bounded FIFOs, multi-cursor broadcast
// queues, and their temporal (replay-gated) compositions.
/*
 * Copyright (c) 2024, NVIDIA CORPORATION. All rights reserved.
 */
package buffer

// SliceView returns a bounds-checked half-open copy of s[start:end]. It
// never panics on out-of-range input and never aliases the source slice,
// matching utils/vec_utils.rs's query_items.
func SliceView[T any](s []T, start, end int) []T {
	if end > len(s) {
		end = len(s)
	}
	if start < 0 || start >= len(s) || end <= start {
		return nil
	}
	out := make([]T, end-start)
	copy(out, s[start:end])
	return out
}

// recvCount implements the §4.1 soft/hard recv_items policy shared by the
// consume-family buffers. n is the requested count, force selects hard
// (exact-or-empty) vs soft (len-n, the documented quirk from spec.md §9)
// semantics.
func recvCount[T any](buf []T, n int, force bool) (out []T, consumed int) {
	l := len(buf)
	var readCount int
	switch {
	case n <= l:
		readCount = n
	case !force && l > 0:
		readCount = l - n // literal quirk: negative whenever n > l, clamped below
	default:
		return nil, 0
	}
	if readCount <= 0 {
		return nil, 0
	}
	out = make([]T, readCount)
	copy(out, buf[:readCount])
	return out, readCount
}
