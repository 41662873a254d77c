// Package nlog is a trimmed-down version of the aistore daemon logger,
// adapted for an in-process library: no file rotation, no background
// flushing, just a mutex-guarded stderr sink with the same call-site
// formatting and severity levels.
/*
 * Copyright (c) 2023, NVIDIA CORPORATION. All rights reserved.
 */
package nlog

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

type severity int

const (
	sevInfo severity = iota
	sevWarn
	sevErr
)

var mw sync.Mutex

func InfoDepth(depth int, args ...any)    { log(sevInfo, depth, "", args...) }
func Infoln(args ...any)                  { log(sevInfo, 0, "", args...) }
func Infof(format string, args ...any)    { log(sevInfo, 0, format, args...) }
func Warningln(args ...any)               { log(sevWarn, 0, "", args...) }
func Warningf(format string, args ...any) { log(sevWarn, 0, format, args...) }
func ErrorDepth(depth int, args ...any)   { log(sevErr, depth, "", args...) }
func Errorln(args ...any)                 { log(sevErr, 0, "", args...) }
func Errorf(format string, args ...any)   { log(sevErr, 0, format, args...) }

// Flush is a no-op in this in-process build: there is no background
// writer to drain. Kept so call sites written against the daemon logger's
// API still compile unchanged.
func Flush(...bool) {}

func log(sev severity, depth int, format string, args ...any) {
	var b strings.Builder
	formatHdr(sev, depth, &b)
	if format == "" {
		fmt.Fprintln(&b, args...)
	} else {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}
	mw.Lock()
	os.Stderr.WriteString(b.String())
	mw.Unlock()
}

func formatHdr(s severity, depth int, b *strings.Builder) {
	const chars = "IWE"
	_, fn, ln, ok := runtime.Caller(3 + depth)
	b.WriteByte(chars[s])
	b.WriteByte(' ')
	b.WriteString(time.Now().Format("15:04:05.000000"))
	b.WriteByte(' ')
	if !ok {
		return
	}
	if idx := strings.LastIndexByte(fn, filepath.Separator); idx > 0 {
		fn = fn[idx+1:]
	}
	b.WriteString(fn)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(ln))
	b.WriteByte(' ')
}
