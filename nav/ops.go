package nav

import (
	"math"
	"strconv"

	"github.com/confctl/confctl/errs"
	"github.com/confctl/confctl/format"
	"github.com/confctl/confctl/keypath"
	"github.com/confctl/confctl/kind"
)

// Read resolves p and returns the node's display text.
func Read(doc Document, p keypath.Path) (string, error) {
	c, err := Resolve(doc, p)
	if err != nil {
		return "", err
	}
	return c.Display(), nil
}

// List resolves p and returns the container's immediate child keys or
// indices in order. A nil p lists the document root.
func List(doc Document, p keypath.Path) ([]string, error) {
	var c Cursor
	if len(p) == 0 {
		c = doc.Root()
	} else {
		var err error
		c, err = Resolve(doc, p)
		if err != nil {
			return nil, err
		}
	}
	switch c.Kind() {
	case kind.Object:
		return c.Keys(), nil
	case kind.Array:
		out := make([]string, c.Len())
		for i := range out {
			out[i] = strconv.Itoa(i)
		}
		return out, nil
	default:
		return nil, &errs.NotAContainer{Prefix: p, Found: c.Kind()}
	}
}

// Set replaces the existing node at p with lit. The replacement is
// strict: lit's inferred kind must equal the existing node's kind.
func Set(doc Document, p keypath.Path, lit Literal) error {
	c, err := Resolve(doc, p)
	if err != nil {
		return err
	}
	if err := checkRepresentable(doc.Format(), lit); err != nil {
		return err
	}
	if got, want := lit.Kind, c.Kind(); got != want {
		return &errs.Mismatch{Path: p, Expected: want, Found: got}
	}
	return doc.Set(p[:len(p)-1], p[len(p)-1], lit)
}

// Delete removes the entry at p from its parent. An absent target is
// a path error, never a no-op.
func Delete(doc Document, p keypath.Path) error {
	if _, err := Resolve(doc, p); err != nil {
		return err
	}
	return doc.Delete(p[:len(p)-1], p[len(p)-1])
}

// checkRepresentable rejects literals the target format has no
// encoding for before any type comparison runs.
func checkRepresentable(f format.Format, lit Literal) error {
	switch {
	case f.IsJSON() && lit.Kind == kind.Float &&
		(math.IsInf(lit.Float, 0) || math.IsNaN(lit.Float)):
		return &errs.UnsupportedFormat{
			Format: f,
			Op:     "set a non-finite float",
			Hint:   "JSON cannot represent inf or nan",
		}
	case f.IsTOML() && lit.Kind == kind.Null:
		return &errs.UnsupportedFormat{
			Format: f,
			Op:     "set a null value",
			Hint:   "TOML has no null; delete the key instead",
		}
	}
	return nil
}
