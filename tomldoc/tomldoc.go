// Package tomldoc is the format-preserving TOML backend.
//
// The parser keeps the raw source and records the byte span of every
// key, value and table section. Navigation reads the model; mutation
// splices replacement bytes over exactly the affected span and then
// re-parses, so sibling formatting, comments and ordering survive any
// edit untouched.
//
// A position in the document is one of three cursor shapes: a table
// (a document-level table or an array-of-tables element, looked up
// with table semantics), a value (a scalar or inline-table member,
// looked up with inline semantics), or an array of tables. The
// shapes are a closed set; resolution matches them exhaustively.
package tomldoc

import (
	"fmt"

	"github.com/confctl/confctl/format"
	"github.com/confctl/confctl/kind"
	"github.com/confctl/confctl/nav"
)

// Span is a half-open byte range into the document source.
type Span struct {
	Start, End int
}

func (s Span) valid() bool {
	return s.End > s.Start
}

// Value is a scalar, an inline array, or an inline table.
type Value struct {
	kind kind.Kind
	span Span
	str  string   // display text: decoded strings, raw scalar source
	arr  []*Value // inline array elements
	tab  []*ipair // inline table pairs, document order
}

// ipair is one key = value member of an inline table.
type ipair struct {
	key  string
	span Span // key through value
	val  *Value
}

// Pair is a key = value entry of a document-level table.
type Pair struct {
	key  string
	span Span // key through value
	val  *Value
}

// member is one named child of a table: exactly one of pair, sub or
// arr is set.
type member struct {
	key  string
	pair *Pair
	sub  *Table
	arr  *TableArray
}

// Table is a document-level table: the root, an explicit [header]
// table, an implicit parent, or an array-of-tables element.
type Table struct {
	name     []string
	explicit bool
	header   Span
	section  Span // header through the last direct entry line
	members  []*member
}

func (t *Table) find(key string) *member {
	for _, m := range t.members {
		if m.key == key {
			return m
		}
	}
	return nil
}

// TableArray is an [[array.of.tables]].
type TableArray struct {
	name  []string
	elems []*Table
}

type Doc struct {
	src  []byte
	root *Table
}

// Parse parses src into a span-tracking document model.
func Parse(src []byte) (*Doc, error) {
	p := &parser{src: src}
	root, err := p.parseDocument()
	if err != nil {
		return nil, err
	}
	return &Doc{src: src, root: root}, nil
}

func (d *Doc) Format() format.Format {
	return format.TOMLFormat
}

func (d *Doc) Root() nav.Cursor {
	return &tableCursor{d: d, t: d.root}
}

// Serialize returns the current source bytes; edits have already been
// spliced in.
func (d *Doc) Serialize() []byte {
	return d.src
}

// reload re-parses the source after a splice so spans stay accurate.
func (d *Doc) reload(src []byte) error {
	nd, err := Parse(src)
	if err != nil {
		return fmt.Errorf("internal: edited document no longer parses: %w", err)
	}
	d.src = nd.src
	d.root = nd.root
	return nil
}

func (d *Doc) slice(s Span) string {
	return string(d.src[s.Start:s.End])
}
