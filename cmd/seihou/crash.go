package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// crashGuard restores the terminal before reporting a panic; use as a deferred call
func crashGuard(screen tcell.Screen, where string) {
	if r := recover(); r != nil {
		screen.Fini()

		// \r\n keeps the report readable if the terminal is still in raw mode
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSEIHOU CRASHED (%s): %v\x1b[0m\r\n", where, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}
