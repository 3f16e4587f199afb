// Package goid extracts the current goroutine's ID.
//
// The ID is parsed from the first line of runtime.Stack output
// ("goroutine 123 [running]:"). This costs roughly a microsecond per call,
// so callers must keep it off hot paths. refkit only consults it behind the
// opt-in owner-check toggle.
package goid

import (
	"runtime"
)

// Current returns the ID of the calling goroutine.
//
// Goroutine IDs are positive and never reused within a process run, which
// makes them suitable for "was this called from the owning goroutine"
// assertions.
func Current() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	return parse(buf[:n])
}

// parse extracts the numeric ID from a stack trace header.
// Expected prefix: "goroutine <id> ".
func parse(stack []byte) int64 {
	const prefix = "goroutine "
	if len(stack) < len(prefix) {
		return 0
	}
	var id int64
	for _, c := range stack[len(prefix):] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + int64(c-'0')
	}
	return id
}
