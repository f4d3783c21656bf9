package tomldoc

import (
	"fmt"
	"strings"

	"github.com/confctl/confctl/kind"
)

func (p *parser) parseDocument() (*Table, error) {
	root := &Table{}
	cur := root
	for {
		p.skipBlank()
		if p.eof() {
			p.closeSection(cur)
			return root, nil
		}
		if p.ch() == '[' {
			p.closeSection(cur)
			t, err := p.parseHeader(root)
			if err != nil {
				return nil, err
			}
			cur = t
			continue
		}
		if err := p.parseEntry(cur); err != nil {
			return nil, err
		}
	}
}

func (p *parser) closeSection(t *Table) {
	if t.explicit && t.header.valid() {
		t.section.End = p.lastEnd
	}
}

// parseHeader parses a [table] or [[array.of.tables]] header and
// returns the table whose section it opens.
func (p *parser) parseHeader(root *Table) (*Table, error) {
	start := p.i
	p.i++
	double := !p.eof() && p.ch() == '['
	if double {
		p.i++
	}
	parts, err := p.parseKeyParts()
	if err != nil {
		return nil, err
	}
	if p.eof() || p.ch() != ']' {
		return nil, p.errSyntax(p.i, "]", p.foundHere())
	}
	p.i++
	if double {
		if p.eof() || p.ch() != ']' {
			return nil, p.errSyntax(p.i, "]]", p.foundHere())
		}
		p.i++
	}
	header := Span{Start: start, End: p.i}
	if err := p.expectEOL(); err != nil {
		return nil, err
	}

	parent, err := p.descend(root, parts[:len(parts)-1], start)
	if err != nil {
		return nil, err
	}
	last := parts[len(parts)-1]
	m := parent.find(last)
	if double {
		if m == nil {
			m = &member{key: last, arr: &TableArray{name: parts}}
			parent.members = append(parent.members, m)
		} else if m.arr == nil {
			return nil, p.errSyntax(start, "a new or repeated array of tables",
				fmt.Sprintf("duplicate key `%s`", strings.Join(parts, ".")))
		}
		elem := &Table{
			name:     parts,
			explicit: true,
			header:   header,
			section:  Span{Start: start},
		}
		m.arr.elems = append(m.arr.elems, elem)
		return elem, nil
	}
	if m == nil {
		t := &Table{
			name:     parts,
			explicit: true,
			header:   header,
			section:  Span{Start: start},
		}
		parent.members = append(parent.members, &member{key: last, sub: t})
		return t, nil
	}
	if m.sub != nil && !m.sub.explicit {
		m.sub.explicit = true
		m.sub.header = header
		m.sub.section = Span{Start: start}
		return m.sub, nil
	}
	return nil, p.errSyntax(start, "a new table name",
		fmt.Sprintf("duplicate key `%s`", strings.Join(parts, ".")))
}

// descend walks or creates the implicit parents of a header name.
// Descending through an array of tables lands on its last element.
func (p *parser) descend(t *Table, parts []string, off int) (*Table, error) {
	for _, part := range parts {
		m := t.find(part)
		switch {
		case m == nil:
			sub := &Table{name: append(append([]string{}, t.name...), part)}
			t.members = append(t.members, &member{key: part, sub: sub})
			t = sub
		case m.sub != nil:
			t = m.sub
		case m.arr != nil:
			t = m.arr.elems[len(m.arr.elems)-1]
		default:
			return nil, p.errSyntax(off, "a table name",
				fmt.Sprintf("key `%s` is already a value", part))
		}
	}
	return t, nil
}

// parseEntry parses one key = value line into cur, creating implicit
// subtables for dotted keys.
func (p *parser) parseEntry(cur *Table) error {
	start := p.i
	parts, err := p.parseKeyParts()
	if err != nil {
		return err
	}
	if p.eof() || p.ch() != '=' {
		return p.errSyntax(p.i, "=", p.foundHere())
	}
	p.i++
	p.skipSpace()
	v, err := p.parseValue()
	if err != nil {
		return err
	}
	if err := p.expectEOL(); err != nil {
		return err
	}

	owner := cur
	for _, part := range parts[:len(parts)-1] {
		m := owner.find(part)
		switch {
		case m == nil:
			sub := &Table{name: append(append([]string{}, owner.name...), part)}
			owner.members = append(owner.members, &member{key: part, sub: sub})
			owner = sub
		case m.sub != nil && !m.sub.explicit:
			owner = m.sub
		default:
			return p.errSyntax(start, "a fresh dotted key",
				fmt.Sprintf("duplicate key `%s`", part))
		}
	}
	last := parts[len(parts)-1]
	if owner.find(last) != nil {
		return p.errSyntax(start, "a fresh key", fmt.Sprintf("duplicate key `%s`", last))
	}
	owner.members = append(owner.members, &member{
		key:  last,
		pair: &Pair{key: last, span: Span{Start: start, End: v.span.End}, val: v},
	})
	return nil
}

func (p *parser) foundHere() string {
	if p.eof() {
		return "end of input"
	}
	return fmt.Sprintf("%q", string(p.ch()))
}

func (p *parser) parseValue() (*Value, error) {
	if p.eof() {
		return nil, p.errEOF()
	}
	start := p.i
	switch c := p.ch(); c {
	case '"':
		s, _, err := p.parseBasicString(true)
		if err != nil {
			return nil, err
		}
		return &Value{kind: kind.String, span: Span{start, p.i}, str: s}, nil
	case '\'':
		s, _, err := p.parseLiteralString(true)
		if err != nil {
			return nil, err
		}
		return &Value{kind: kind.String, span: Span{start, p.i}, str: s}, nil
	case '[':
		return p.parseArray()
	case '{':
		return p.parseInlineTable()
	default:
		tok, err := p.scanScalar()
		if err != nil {
			return nil, err
		}
		k, err := classifyScalar(tok)
		if err != nil {
			return nil, p.errSyntax(start, "a value", fmt.Sprintf("%q", tok))
		}
		return &Value{kind: k, span: Span{start, p.i}, str: tok}, nil
	}
}

func (p *parser) parseArray() (*Value, error) {
	start := p.i
	p.i++
	v := &Value{kind: kind.Array}
	for {
		p.skipBlank()
		if p.eof() {
			return nil, p.errEOF()
		}
		if p.ch() == ']' {
			p.i++
			v.span = Span{start, p.i}
			return v, nil
		}
		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		v.arr = append(v.arr, elem)
		p.skipBlank()
		if p.eof() {
			return nil, p.errEOF()
		}
		switch p.ch() {
		case ',':
			p.i++
		case ']':
		default:
			return nil, p.errSyntax(p.i, ", or ]", p.foundHere())
		}
	}
}

func (p *parser) parseInlineTable() (*Value, error) {
	start := p.i
	p.i++
	v := &Value{kind: kind.Object}
	p.skipSpace()
	if !p.eof() && p.ch() == '}' {
		p.i++
		v.span = Span{start, p.i}
		return v, nil
	}
	for {
		p.skipSpace()
		pairStart := p.i
		parts, err := p.parseKeyParts()
		if err != nil {
			return nil, err
		}
		if p.eof() || p.ch() != '=' {
			return nil, p.errSyntax(p.i, "=", p.foundHere())
		}
		p.i++
		p.skipSpace()
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		span := Span{Start: pairStart, End: val.span.End}
		if err := insertInline(v, parts, &ipair{key: parts[len(parts)-1], span: span, val: val}); err != nil {
			return nil, p.errSyntax(pairStart, "a fresh key", err.Error())
		}
		p.skipSpace()
		if p.eof() {
			return nil, p.errEOF()
		}
		switch p.ch() {
		case ',':
			p.i++
		case '}':
			p.i++
			v.span = Span{start, p.i}
			return v, nil
		default:
			return nil, p.errSyntax(p.i, ", or }", p.foundHere())
		}
	}
}

// insertInline places pr into tab, creating implicit inline tables
// for any dotted prefix. An implicit table's span is its first pair's
// span; good enough for edits, which only ever touch pair spans.
func insertInline(tab *Value, parts []string, pr *ipair) error {
	for _, part := range parts[:len(parts)-1] {
		var next *Value
		for _, ip := range tab.tab {
			if ip.key == part {
				next = ip.val
				break
			}
		}
		if next == nil {
			next = &Value{kind: kind.Object, span: pr.span}
			tab.tab = append(tab.tab, &ipair{key: part, span: pr.span, val: next})
			tab = next
			continue
		}
		if next.kind != kind.Object {
			return fmt.Errorf("duplicate key `%s`", part)
		}
		tab = next
	}
	for _, ip := range tab.tab {
		if ip.key == pr.key {
			return fmt.Errorf("duplicate key `%s`", pr.key)
		}
	}
	tab.tab = append(tab.tab, pr)
	return nil
}
