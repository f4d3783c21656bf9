package keypath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Seg is one path segment: a Key or an Index.
type Seg interface {
	isSeg()
}

type Key string

func (Key) isSeg() {}

type Index int

func (Index) isSeg() {}

// Path is an ordered sequence of segments. An empty Path never comes
// out of Parse; navigation rejects it.
type Path []Seg

var ErrSyntax = errors.New("invalid key path")

// Example is a worked path shown alongside syntax errors.
const Example = "network.timeout or servers[0].host"

// Parse parses a path string. The first segment must be a key; keys
// use the bare-key charset [A-Za-z0-9_-], indices are non-negative
// decimal integers in brackets.
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty path", ErrSyntax)
	}
	var p Path
	i, n := 0, len(s)
	j := scanKey(s, i)
	if j == i {
		return nil, fmt.Errorf("%w: must begin with a key segment at offset %d", ErrSyntax, i)
	}
	p = append(p, Key(s[i:j]))
	i = j
	for i < n {
		switch s[i] {
		case '.':
			i++
			j = scanKey(s, i)
			if j == i {
				return nil, fmt.Errorf("%w: empty key segment at offset %d", ErrSyntax, i)
			}
			p = append(p, Key(s[i:j]))
			i = j
		case '[':
			i++
			j = i
			for j < n && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			if j == i {
				return nil, fmt.Errorf("%w: empty index at offset %d", ErrSyntax, i)
			}
			if j >= n || s[j] != ']' {
				return nil, fmt.Errorf("%w: unclosed index at offset %d", ErrSyntax, i)
			}
			idx, err := strconv.Atoi(s[i:j])
			if err != nil {
				return nil, fmt.Errorf("%w: index %q out of range", ErrSyntax, s[i:j])
			}
			p = append(p, Index(idx))
			i = j + 1
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, s[i], i)
		}
	}
	return p, nil
}

func scanKey(s string, i int) int {
	for i < len(s) && isKeyByte(s[i]) {
		i++
	}
	return i
}

func isKeyByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-':
		return true
	}
	return false
}

// String renders the canonical form: the first key bare, later keys
// dotted, indices bracketed.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		switch s := seg.(type) {
		case Key:
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(string(s))
		case Index:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(int(s)))
			b.WriteByte(']')
		default:
			panic("segment is not a key or index")
		}
	}
	return b.String()
}

// WithKey returns a new path with a key segment appended. The receiver
// is not modified or aliased.
func (p Path) WithKey(k string) Path {
	q := make(Path, len(p), len(p)+1)
	copy(q, p)
	return append(q, Key(k))
}

// WithIndex returns a new path with an index segment appended.
func (p Path) WithIndex(i int) Path {
	q := make(Path, len(p), len(p)+1)
	copy(q, p)
	return append(q, Index(i))
}
