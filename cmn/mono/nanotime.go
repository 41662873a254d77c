//go:build !mono

// Package mono provides low-level monotonic time
/*
 * Copyright (c) 2018-2021, NVIDIA CORPORATION. All rights reserved.
 */
package mono

import "time"

var start = time.Now()

// NanoTime returns a monotonic nanosecond counter. Only the deltas between
// two calls are meaningful; the value itself has no relation to wall time.
func NanoTime() int64 { return int64(time.Since(start)) }
