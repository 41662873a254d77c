// Package gate implements the wall-clock-derived admission predicate that
// backs qchan's temporal ("time series") channel variants.
/*
 * Copyright (c) 2024, NVIDIA CORPORATION. All rights reserved.
 */
package gate

import (
	"math"
	"time"
)

// Gate holds the three reference points of the temporal release predicate
// described in spec.md §3: an item's data time is compared against a
// wall-clock elapsed duration scaled by Speed.
type Gate struct {
	DataOrigin time.Time
	WallOrigin time.Time
	Speed      float64 // > 0: > 1 replays faster than real time, < 1 slower
}

// New returns a Gate whose wall origin is "now". Mirrors the Rust source's
// TSUnboundedBuffer::new, which stamps start_cur_time at construction.
func New(dataOrigin time.Time, speed float64) Gate {
	return Gate{DataOrigin: dataOrigin, WallOrigin: time.Now(), Speed: speed}
}

// Released reports whether an item whose data_time is itemTime has crossed
// the release threshold: (item.data_time - DataOrigin) <= (now - WallOrigin) * Speed,
// both sides in nanoseconds, saturating on overflow rather than panicking.
func (g Gate) Released(itemTime time.Time) bool {
	destNanos := saturatingSub(itemTime, g.DataOrigin)
	curNanos := saturatingSub(time.Now(), g.WallOrigin)
	scaled := saturatingScale(curNanos, g.Speed)
	return destNanos <= scaled
}

func saturatingSub(a, b time.Time) int64 {
	d := a.Sub(b)
	if d == time.Duration(math.MaxInt64) || d == time.Duration(math.MinInt64) {
		// time.Time.Sub itself saturates at these bounds on overflow.
		return int64(d)
	}
	return int64(d)
}

func saturatingScale(nanos int64, speed float64) int64 {
	scaled := float64(nanos) * speed
	switch {
	case scaled >= math.MaxInt64:
		return math.MaxInt64
	case scaled <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(math.Round(scaled))
	}
}
