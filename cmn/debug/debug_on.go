//go:build debug

// Package debug provides invariant assertions that compile to no-ops
// unless the binary is built with the debug tag.
/*
 * Copyright (c) 2018-2021, NVIDIA CORPORATION. All rights reserved.
 */
package debug

import "fmt"

func ON() bool { return true }

func Assert(cond bool, args ...any) {
	if cond {
		return
	}
	if len(args) != 0 {
		panic(fmt.Sprintf("assertion failed: %v", args))
	}
	panic("assertion failed")
}

func Assertf(cond bool, format string, args ...any) {
	if cond {
		return
	}
	panic(fmt.Sprintf("assertion failed: "+format, args...))
}

func AssertFunc(f func() bool, args ...any) { Assert(f(), args...) }

func AssertNoErr(err error) {
	if err != nil {
		panic("assertion failed: " + err.Error())
	}
}
