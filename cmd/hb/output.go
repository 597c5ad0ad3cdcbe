package main

import (
	"fmt"
	"os"
)

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// exitWithError writes an error message to stderr and exits.
// Only call this before the store is opened.
func exitWithError(code int, format string, args ...interface{}) {
	os.Exit(outputError(code, format, args...))
}
