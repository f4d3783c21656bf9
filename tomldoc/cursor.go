package tomldoc

import (
	"sort"
	"strings"

	"github.com/confctl/confctl/kind"
	"github.com/confctl/confctl/nav"
)

// tableCursor is a position on a document-level table: the root, an
// explicit or implicit [table], or an array-of-tables element. Key
// lookup uses table semantics.
type tableCursor struct {
	d *Doc
	t *Table
}

func (c *tableCursor) Kind() kind.Kind {
	return kind.Object
}

func (c *tableCursor) Key(name string) (nav.Cursor, bool) {
	m := c.t.find(name)
	if m == nil {
		return nil, false
	}
	switch {
	case m.pair != nil:
		return &valueCursor{d: c.d, v: m.pair.val}, true
	case m.sub != nil:
		return &tableCursor{d: c.d, t: m.sub}, true
	default:
		return &tablesCursor{d: c.d, a: m.arr}, true
	}
}

func (c *tableCursor) Index(int) (nav.Cursor, bool) {
	return nil, false
}

func (c *tableCursor) Len() int {
	return len(c.t.members)
}

func (c *tableCursor) Keys() []string {
	keys := make([]string, len(c.t.members))
	for i, m := range c.t.members {
		keys[i] = m.key
	}
	return keys
}

// Display renders the table as its source text: the whole document
// for the root, the table's section(s) otherwise.
func (c *tableCursor) Display() string {
	if c.t == c.d.root {
		return strings.TrimRight(string(c.d.src), "\n")
	}
	spans := collectSpans(c.t)
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	parts := make([]string, len(spans))
	for i, s := range spans {
		parts[i] = strings.TrimRight(c.d.slice(s), "\n")
	}
	return strings.Join(parts, "\n")
}

// collectSpans gathers the source spans making up a table's subtree:
// its own section plus every explicit descendant section. Pairs from
// dotted keys inside a section are covered by that section's span;
// pairs of an implicit table are listed individually.
func collectSpans(t *Table) []Span {
	var spans []Span
	if t.explicit && t.section.valid() {
		spans = append(spans, t.section)
	} else {
		for _, m := range t.members {
			if m.pair != nil {
				spans = append(spans, m.pair.span)
			}
		}
	}
	for _, m := range t.members {
		switch {
		case m.sub != nil:
			spans = append(spans, collectSpans(m.sub)...)
		case m.arr != nil:
			for _, elem := range m.arr.elems {
				spans = append(spans, collectSpans(elem)...)
			}
		}
	}
	return spans
}

// valueCursor is a position on a Value: a scalar, an inline array
// element, or an inline-table member. Key lookup uses inline-table
// semantics.
type valueCursor struct {
	d *Doc
	v *Value
}

func (c *valueCursor) Kind() kind.Kind {
	return c.v.kind
}

func (c *valueCursor) Key(name string) (nav.Cursor, bool) {
	for _, ip := range c.v.tab {
		if ip.key == name {
			return &valueCursor{d: c.d, v: ip.val}, true
		}
	}
	return nil, false
}

func (c *valueCursor) Index(i int) (nav.Cursor, bool) {
	if i < 0 || i >= len(c.v.arr) {
		return nil, false
	}
	return &valueCursor{d: c.d, v: c.v.arr[i]}, true
}

func (c *valueCursor) Len() int {
	if c.v.kind == kind.Array {
		return len(c.v.arr)
	}
	return len(c.v.tab)
}

func (c *valueCursor) Keys() []string {
	keys := make([]string, len(c.v.tab))
	for i, ip := range c.v.tab {
		keys[i] = ip.key
	}
	return keys
}

func (c *valueCursor) Display() string {
	switch c.v.kind {
	case kind.Array, kind.Object:
		return c.d.slice(c.v.span)
	default:
		return c.v.str
	}
}

// tablesCursor is a position on an array of tables. Index lookup
// yields a table cursor, so key lookups below it use table semantics
// even though the element sits inside an array.
type tablesCursor struct {
	d *Doc
	a *TableArray
}

func (c *tablesCursor) Kind() kind.Kind {
	return kind.Array
}

func (c *tablesCursor) Key(string) (nav.Cursor, bool) {
	return nil, false
}

func (c *tablesCursor) Index(i int) (nav.Cursor, bool) {
	if i < 0 || i >= len(c.a.elems) {
		return nil, false
	}
	return &tableCursor{d: c.d, t: c.a.elems[i]}, true
}

func (c *tablesCursor) Len() int {
	return len(c.a.elems)
}

func (c *tablesCursor) Keys() []string {
	return nil
}

func (c *tablesCursor) Display() string {
	parts := make([]string, len(c.a.elems))
	for i, elem := range c.a.elems {
		parts[i] = (&tableCursor{d: c.d, t: elem}).Display()
	}
	return strings.Join(parts, "\n")
}
