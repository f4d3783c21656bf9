package errs

import (
	"fmt"
	"strings"
)

type MissingFlag struct {
	Flag string
	Hint string
}

func (e *MissingFlag) Category() Category { return Usage }

func (e *MissingFlag) Error() string {
	return fmt.Sprintf("missing required flag %s. %s", e.Flag, e.Hint)
}

type InvalidChoice struct {
	Flag     string
	Provided string
	Valid    []string
}

func (e *InvalidChoice) Category() Category { return Usage }

func (e *InvalidChoice) Error() string {
	return fmt.Sprintf("invalid value %q for %s. Valid options: %s",
		e.Provided, e.Flag, strings.Join(e.Valid, ", "))
}

type ConflictingFlags struct {
	A    string
	B    string
	Hint string
}

func (e *ConflictingFlags) Category() Category { return Usage }

func (e *ConflictingFlags) Error() string {
	return fmt.Sprintf("flags %s and %s cannot be used together. %s", e.A, e.B, e.Hint)
}

type MissingArgument struct {
	Name    string
	Example string
}

func (e *MissingArgument) Category() Category { return Usage }

func (e *MissingArgument) Error() string {
	return fmt.Sprintf("missing argument %s. Example: %s", e.Name, e.Example)
}

type InvalidPathSyntax struct {
	Input   string
	Detail  string
	Example string
}

func (e *InvalidPathSyntax) Category() Category { return Usage }

func (e *InvalidPathSyntax) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid key-path syntax %q: %s. Example: %s", e.Input, e.Detail, e.Example)
	}
	return fmt.Sprintf("invalid key-path syntax %q. Example: %s", e.Input, e.Example)
}
