package errs

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

type ReadFailed struct {
	Path   string
	Reason string
	Hint   string
}

func (e *ReadFailed) Category() Category { return FileIO }

func (e *ReadFailed) Error() string {
	return fmt.Sprintf("could not read %s: %s. %s", e.Path, e.Reason, e.Hint)
}

type WriteFailed struct {
	Path   string
	Reason string
	Hint   string
}

func (e *WriteFailed) Category() Category { return FileIO }

func (e *WriteFailed) Error() string {
	return fmt.Sprintf("could not write %s: %s. %s", e.Path, e.Reason, e.Hint)
}

type TempCreateFailed struct {
	Path   string
	Reason string
	Hint   string
}

func (e *TempCreateFailed) Category() Category { return FileIO }

func (e *TempCreateFailed) Error() string {
	return fmt.Sprintf("could not create temp file near %s: %s. %s", e.Path, e.Reason, e.Hint)
}

type AtomicReplaceFailed struct {
	TempPath  string
	FinalPath string
	Reason    string
	Hint      string
}

func (e *AtomicReplaceFailed) Category() Category { return FileIO }

func (e *AtomicReplaceFailed) Error() string {
	return fmt.Sprintf("could not atomically replace %s (from %s): %s. %s",
		e.FinalPath, e.TempPath, e.Reason, e.Hint)
}

// IOReason maps an underlying i/o fault to a short reason and a
// remediation hint. All file-io message fragments come from here, so
// the same fault reads the same on every code path.
func IOReason(err error, path string) (reason, hint string) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "no such file or directory",
			fmt.Sprintf("check the path or create it first: %s", path)
	case errors.Is(err, fs.ErrPermission):
		return "permission denied",
			"check file permissions or run with appropriate rights"
	case errors.Is(err, syscall.EISDIR):
		return "path is a directory, not a file",
			"use a regular file path for this operation"
	case errors.Is(err, syscall.EAGAIN):
		return "resource temporarily unavailable",
			"try again or ensure no other process is locking the file"
	case errors.Is(err, fs.ErrExist):
		return "file already exists",
			"remove the existing temp file or choose a different output path"
	case errors.Is(err, fs.ErrInvalid), errors.Is(err, syscall.EINVAL):
		return "invalid path or parameters",
			"verify the file path and command arguments"
	default:
		return fmt.Sprintf("i/o error: %v", err),
			"inspect the underlying OS error"
	}
}
