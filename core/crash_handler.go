package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	resetMu   sync.Mutex
	resetFunc func()
)

// SetResetFunc registers the terminal restore hook run before a crash report
func SetResetFunc(fn func()) {
	resetMu.Lock()
	resetFunc = fn
	resetMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	resetMu.Lock()
	reset := resetFunc
	resetFunc = nil
	resetMu.Unlock()
	if reset != nil {
		reset()
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
