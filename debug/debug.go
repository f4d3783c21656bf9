// Package debug provides env-gated diagnostics on stderr.
//
// Set CONFCTL_DEBUG_RESOLVE or CONFCTL_DEBUG_FILE to a true value to
// trace path resolution or file i/o respectively.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Resolve bool
	File    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("CONFCTL_DEBUG_RESOLVE")
	d.File = boolEnv("CONFCTL_DEBUG_FILE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func File() bool {
	return d.File
}

// Resolvef traces one resolution step.
func Resolvef(msg string, args ...any) {
	if !d.Resolve {
		return
	}
	Logf("resolve: "+msg, args...)
}

// Filef traces file loads, writes and renames.
func Filef(msg string, args ...any) {
	if !d.File {
		return
	}
	Logf("file: "+msg, args...)
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
}
