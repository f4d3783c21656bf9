// Package errs is the closed error taxonomy for config navigation.
//
// Every failure in the system is one of six categories, each with a
// fixed process exit code. Failure sites construct a plain variant
// value carrying typed context (path prefix, kinds, io reason); all
// message text lives in the variants' Error methods, so the same
// fault renders identically no matter which backend raised it.
package errs

import (
	"errors"
)

type Category int

const (
	Usage Category = iota
	FileIO
	Parse
	Path
	Type
	NotSupported
)

func (c Category) String() string {
	s, ok := map[Category]string{
		Usage:        "usage",
		FileIO:       "file-io",
		Parse:        "parse",
		Path:         "path",
		Type:         "type",
		NotSupported: "not-supported",
	}[c]
	if ok {
		return s
	}
	return "<unknown category>"
}

// ExitCode maps a category to its fixed process exit code.
func (c Category) ExitCode() int {
	switch c {
	case Usage:
		return 2
	case FileIO, Parse:
		return 3
	case Path:
		return 4
	case Type:
		return 5
	case NotSupported:
		return 6
	default:
		return 1
	}
}

// Error is implemented by every variant in the taxonomy.
type Error interface {
	error
	Category() Category
}

// ExitCode returns the exit code for err: the category's code when err
// wraps a taxonomy variant, 1 otherwise.
func ExitCode(err error) int {
	var e Error
	if errors.As(err, &e) {
		return e.Category().ExitCode()
	}
	return 1
}
