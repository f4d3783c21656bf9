// Package jsondoc is the JSON backend: a plain value tree parsed with
// encoding/json, navigated and mutated through the nav interfaces.
//
// Numbers are kept as json.Number so int, uint and float classify
// without loss. Serialization sorts object keys and indents with two
// spaces, so re-writing an untouched document is stable even though
// JSON itself carries no comments or layout to preserve.
package jsondoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/confctl/confctl/errs"
	"github.com/confctl/confctl/format"
	"github.com/confctl/confctl/kind"
	"github.com/confctl/confctl/nav"
)

type Doc struct {
	root any
}

// Parse decodes src into a value tree. Decoder faults are converted
// to parse taxonomy variants located by byte offset.
func Parse(src []byte) (*Doc, error) {
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, parseErr(src, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		off := int(dec.InputOffset())
		return nil, &errs.TrailingContent{
			Format:  format.JSONFormat,
			Loc:     errs.Locate(src, off),
			Snippet: errs.Snippet(src, off),
		}
	}
	return &Doc{root: v}, nil
}

func parseErr(src []byte, err error) error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		off := int(syn.Offset)
		if off > 0 {
			off--
		}
		return &errs.ForeignParse{
			Format:  format.JSONFormat,
			Loc:     errs.Locate(src, off),
			Err:     syn,
			Snippet: errs.Snippet(src, off),
		}
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		off := len(src)
		return &errs.UnexpectedEOF{
			Format:  format.JSONFormat,
			Loc:     errs.Locate(src, off),
			Snippet: errs.Snippet(src, off),
		}
	}
	return &errs.ForeignParse{
		Format:  format.JSONFormat,
		Loc:     errs.Location{Line: 1, Col: 1},
		Err:     err,
		Snippet: errs.Snippet(src, 0),
	}
}

func (d *Doc) Format() format.Format {
	return format.JSONFormat
}

func (d *Doc) Root() nav.Cursor {
	return &cursor{v: d.root}
}

// Serialize renders the tree with sorted keys, two-space indent and a
// trailing newline.
func (d *Doc) Serialize() []byte {
	return marshal(d.root, true)
}

func marshal(v any, newline bool) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		// the tree only ever holds decodable shapes
		panic(err)
	}
	out := buf.Bytes()
	if !newline {
		out = bytes.TrimRight(out, "\n")
	}
	return out
}

// classify maps a tree node to its kind. json.Number prefers int,
// then uint for values past the int64 range, then float.
func classify(v any) kind.Kind {
	switch n := v.(type) {
	case nil:
		return kind.Null
	case bool:
		return kind.Bool
	case json.Number:
		if _, err := n.Int64(); err == nil {
			return kind.Int
		}
		if _, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
			return kind.Uint
		}
		return kind.Float
	case string:
		return kind.String
	case []any:
		return kind.Array
	case map[string]any:
		return kind.Object
	default:
		panic("node shape outside the JSON value tree")
	}
}
