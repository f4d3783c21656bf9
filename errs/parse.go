package errs

import (
	"fmt"
	"strings"

	"github.com/confctl/confctl/format"
)

// Location is a 1-based line:column position in source text.
type Location struct {
	Line int
	Col  int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

// Locate computes the Location of a byte offset by counting newlines
// up to it. Offsets past the end of src locate at the end.
func Locate(src []byte, off int) Location {
	if off > len(src) {
		off = len(src)
	}
	line, col := 1, 1
	for _, c := range src[:off] {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Location{Line: line, Col: col}
}

const maxSnippetLine = 120

// Snippet reproduces the line containing off with a caret under the
// failing column.
func Snippet(src []byte, off int) string {
	loc := Locate(src, off)
	lines := strings.Split(string(src), "\n")
	if loc.Line > len(lines) {
		return ""
	}
	l := lines[loc.Line-1]
	if len(l) > maxSnippetLine {
		l = l[:maxSnippetLine]
	}
	var b strings.Builder
	b.WriteString(l)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", min(loc.Col-1, len(l))))
	b.WriteByte('^')
	return b.String()
}

type SyntaxError struct {
	Format   format.Format
	Loc      Location
	Expected string
	Found    string
	Snippet  string
}

func (e *SyntaxError) Category() Category { return Parse }

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s parse error at %s: expected %s, found %s\n%s",
		e.Format, e.Loc, e.Expected, e.Found, e.Snippet)
}

type UnexpectedEOF struct {
	Format  format.Format
	Loc     Location
	Snippet string
}

func (e *UnexpectedEOF) Category() Category { return Parse }

func (e *UnexpectedEOF) Error() string {
	return fmt.Sprintf("%s parse error at %s: unexpected end of input\n%s",
		e.Format, e.Loc, e.Snippet)
}

type UnterminatedString struct {
	Format  format.Format
	Loc     Location
	Snippet string
}

func (e *UnterminatedString) Category() Category { return Parse }

func (e *UnterminatedString) Error() string {
	return fmt.Sprintf("%s parse error at %s: unterminated string literal\n%s",
		e.Format, e.Loc, e.Snippet)
}

type TrailingContent struct {
	Format  format.Format
	Loc     Location
	Snippet string
}

func (e *TrailingContent) Category() Category { return Parse }

func (e *TrailingContent) Error() string {
	return fmt.Sprintf("%s parse error at %s: trailing content after document\n%s",
		e.Format, e.Loc, e.Snippet)
}

// ForeignParse wraps a parse failure reported by a library decoder,
// keeping the underlying error in the chain.
type ForeignParse struct {
	Format  format.Format
	Loc     Location
	Err     error
	Snippet string
}

func (e *ForeignParse) Category() Category { return Parse }

func (e *ForeignParse) Unwrap() error { return e.Err }

func (e *ForeignParse) Error() string {
	return fmt.Sprintf("%s parse error at %s: %v\n%s",
		e.Format, e.Loc, e.Err, e.Snippet)
}
