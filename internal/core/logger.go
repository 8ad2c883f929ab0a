package core

import "log"

// Logf is the package-level diagnostic logger used by library code. It
// defaults to log.Printf; drivers such as the TUI redirect or mute it.
var Logf func(format string, v ...any) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op logger.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = func(string, ...any) {}
		return
	}
	Logf = f
}
