package tomldoc

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/confctl/confctl/errs"
	"github.com/confctl/confctl/keypath"
	"github.com/confctl/confctl/kind"
	"github.com/confctl/confctl/nav"
)

// Set replaces the scalar at seg under parent with lit's rendering.
// Only the value's own span is spliced; everything around it keeps
// its bytes.
func (d *Doc) Set(parent keypath.Path, seg keypath.Seg, lit nav.Literal) error {
	node, err := d.find(parent)
	if err != nil {
		return err
	}
	var target *Value
	switch s := seg.(type) {
	case keypath.Key:
		switch n := node.(type) {
		case *Table:
			m := n.find(string(s))
			if m == nil || m.pair == nil {
				return fmt.Errorf("internal: set key %q resolves to no value", string(s))
			}
			target = m.pair.val
		case *Value:
			for _, ip := range n.tab {
				if ip.key == string(s) {
					target = ip.val
					break
				}
			}
		}
	case keypath.Index:
		if n, ok := node.(*Value); ok && int(s) < len(n.arr) {
			target = n.arr[int(s)]
		}
	}
	if target == nil {
		return fmt.Errorf("internal: set target not found under %s", parent)
	}
	return d.splice(target.span, renderScalar(lit))
}

// Delete removes the entry at seg under parent, cutting whole lines
// for table entries and sections, and comma-separated slots for
// inline members.
func (d *Doc) Delete(parent keypath.Path, seg keypath.Seg) error {
	node, err := d.find(parent)
	if err != nil {
		return err
	}
	switch s := seg.(type) {
	case keypath.Key:
		switch n := node.(type) {
		case *Table:
			return d.deleteMember(n, string(s))
		case *Value:
			for i, ip := range n.tab {
				if ip.key == string(s) {
					return d.remove([]Span{cutSlot(pairSpans(n.tab), i)})
				}
			}
		}
	case keypath.Index:
		switch n := node.(type) {
		case *TableArray:
			if int(s) < len(n.elems) {
				return d.remove(lineSpans(d.src, mergeSpans(collectSpans(n.elems[int(s)]))))
			}
		case *Value:
			if int(s) < len(n.arr) {
				return d.remove([]Span{cutSlot(valueSpans(n.arr), int(s))})
			}
		}
	}
	return fmt.Errorf("internal: delete target not found under %s", parent)
}

func (d *Doc) deleteMember(t *Table, key string) error {
	m := t.find(key)
	if m == nil {
		return fmt.Errorf("internal: delete key %q resolves to nothing", key)
	}
	switch {
	case m.pair != nil:
		return d.remove(lineSpans(d.src, []Span{m.pair.span}))
	case m.sub != nil:
		if !m.sub.explicit {
			return &errs.UnsupportedFeature{
				Feature: "deleting a table assembled from dotted keys",
				Hint:    "delete its entries individually",
			}
		}
		return d.remove(lineSpans(d.src, mergeSpans(collectSpans(m.sub))))
	default:
		var spans []Span
		for _, elem := range m.arr.elems {
			spans = append(spans, collectSpans(elem)...)
		}
		return d.remove(lineSpans(d.src, mergeSpans(spans)))
	}
}

// find walks the already-validated parent path to its concrete node:
// a *Table, a *TableArray, or a *Value.
func (d *Doc) find(p keypath.Path) (any, error) {
	var cur any = d.root
	for _, seg := range p {
		switch s := seg.(type) {
		case keypath.Key:
			switch n := cur.(type) {
			case *Table:
				m := n.find(string(s))
				if m == nil {
					return nil, fmt.Errorf("internal: lost key %q", string(s))
				}
				switch {
				case m.pair != nil:
					cur = m.pair.val
				case m.sub != nil:
					cur = m.sub
				default:
					cur = m.arr
				}
			case *Value:
				var next *Value
				for _, ip := range n.tab {
					if ip.key == string(s) {
						next = ip.val
						break
					}
				}
				if next == nil {
					return nil, fmt.Errorf("internal: lost key %q", string(s))
				}
				cur = next
			default:
				return nil, fmt.Errorf("internal: key %q on a leaf", string(s))
			}
		case keypath.Index:
			switch n := cur.(type) {
			case *TableArray:
				if int(s) >= len(n.elems) {
					return nil, fmt.Errorf("internal: lost index %d", int(s))
				}
				cur = n.elems[int(s)]
			case *Value:
				if int(s) >= len(n.arr) {
					return nil, fmt.Errorf("internal: lost index %d", int(s))
				}
				cur = n.arr[int(s)]
			default:
				return nil, fmt.Errorf("internal: index %d on a leaf", int(s))
			}
		}
	}
	return cur, nil
}

func (d *Doc) splice(s Span, text string) error {
	out := make([]byte, 0, len(d.src)-(s.End-s.Start)+len(text))
	out = append(out, d.src[:s.Start]...)
	out = append(out, text...)
	out = append(out, d.src[s.End:]...)
	return d.reload(out)
}

// remove cuts the given spans out of the source, back to front.
func (d *Doc) remove(spans []Span) error {
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start > spans[j].Start })
	out := append([]byte{}, d.src...)
	for _, s := range spans {
		out = append(out[:s.Start], out[s.End:]...)
	}
	return d.reload(out)
}

// mergeSpans sorts and coalesces overlapping or touching spans.
func mergeSpans(spans []Span) []Span {
	if len(spans) <= 1 {
		return spans
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	out := spans[:1]
	for _, s := range spans[1:] {
		last := &out[len(out)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

// lineSpans widens each span to whole lines: leading indentation and
// the trailing spaces, comment and newline come along, so no blank
// husk of a line is left behind.
func lineSpans(src []byte, spans []Span) []Span {
	out := make([]Span, len(spans))
	for i, s := range spans {
		out[i] = lineSpan(src, s)
	}
	return out
}

func lineSpan(src []byte, s Span) Span {
	start := s.Start
	for start > 0 && (src[start-1] == ' ' || src[start-1] == '\t') {
		start--
	}
	if start > 0 && src[start-1] != '\n' {
		start = s.Start
	}
	end := s.End
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}
	if end < len(src) && src[end] == '#' {
		for end < len(src) && src[end] != '\n' {
			end++
		}
	}
	if end < len(src) && src[end] == '\r' {
		end++
	}
	if end < len(src) && src[end] == '\n' {
		end++
	} else if end < len(src) {
		end = s.End
	}
	return Span{Start: start, End: end}
}

// cutSlot picks the removal span for element i of a comma-separated
// sequence: through the following separator when another element
// follows, back through the preceding one otherwise.
func cutSlot(spans []Span, i int) Span {
	s := spans[i]
	if i+1 < len(spans) {
		return Span{Start: s.Start, End: spans[i+1].Start}
	}
	if i > 0 {
		return Span{Start: spans[i-1].End, End: s.End}
	}
	return s
}

func pairSpans(tab []*ipair) []Span {
	out := make([]Span, len(tab))
	for i, ip := range tab {
		out[i] = ip.span
	}
	return out
}

func valueSpans(arr []*Value) []Span {
	out := make([]Span, len(arr))
	for i, v := range arr {
		out[i] = v.span
	}
	return out
}

// renderScalar produces the TOML source text for a literal.
func renderScalar(lit nav.Literal) string {
	switch lit.Kind {
	case kind.Bool:
		if lit.Bool {
			return "true"
		}
		return "false"
	case kind.Int:
		return strconv.FormatInt(lit.Int, 10)
	case kind.Uint:
		return strconv.FormatUint(lit.Uint, 10)
	case kind.Float:
		return renderFloat(lit.Float)
	case kind.String:
		return quote(lit.Str)
	case kind.Date, kind.Time, kind.DateTime:
		return lit.Raw
	default:
		// null is rejected before any edit reaches this backend
		panic("literal kind not representable in TOML")
	}
}

func renderFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	// Go spells exponents e+05; TOML accepts that form as-is
	return s
}

// quote renders a TOML basic string.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		case '\n':
			b.WriteString(`\n`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
