package config

import (
	"fmt"
	"os"
)

// Exitf prints the message and a newline to stderr, then exits with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
