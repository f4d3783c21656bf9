package errs

import (
	"fmt"

	"github.com/confctl/confctl/keypath"
	"github.com/confctl/confctl/kind"
)

// prefix renders the successfully resolved part of a path for a
// message; the root of the document has no text of its own.
func prefix(p keypath.Path) string {
	if len(p) == 0 {
		return "(root)"
	}
	return p.String()
}

type EmptyPath struct{}

func (e *EmptyPath) Category() Category { return Path }

func (e *EmptyPath) Error() string {
	return "empty path is not allowed"
}

type NotAnObject struct {
	Prefix keypath.Path
	Key    string
	Found  kind.Kind
}

func (e *NotAnObject) Category() Category { return Path }

func (e *NotAnObject) Error() string {
	return fmt.Sprintf("not an object at %s: cannot access key `%s` on %s",
		prefix(e.Prefix), e.Key, e.Found)
}

type NotAnArray struct {
	Prefix keypath.Path
	Index  int
	Found  kind.Kind
}

func (e *NotAnArray) Category() Category { return Path }

func (e *NotAnArray) Error() string {
	return fmt.Sprintf("not an array at %s: cannot access index [%d] on %s",
		prefix(e.Prefix), e.Index, e.Found)
}

type KeyNotFound struct {
	Prefix keypath.Path
	Key    string
	// Suggestion is the closest existing sibling key, when one is
	// close enough to be worth mentioning.
	Suggestion string
}

func (e *KeyNotFound) Category() Category { return Path }

func (e *KeyNotFound) Error() string {
	msg := fmt.Sprintf("key not found at %s: missing key `%s`", prefix(e.Prefix), e.Key)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean `%s`?)", e.Suggestion)
	}
	return msg
}

type IndexOutOfBounds struct {
	Prefix keypath.Path
	Index  int
	Len    int
}

func (e *IndexOutOfBounds) Category() Category { return Path }

func (e *IndexOutOfBounds) Error() string {
	return fmt.Sprintf("index out of bounds at %s: index %d >= len %d",
		prefix(e.Prefix), e.Index, e.Len)
}

type NotAContainer struct {
	Prefix keypath.Path
	Found  kind.Kind
}

func (e *NotAContainer) Category() Category { return Path }

func (e *NotAContainer) Error() string {
	return fmt.Sprintf("not a container at %s: cannot list children of %s",
		prefix(e.Prefix), e.Found)
}
