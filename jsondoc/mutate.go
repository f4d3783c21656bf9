package jsondoc

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/confctl/confctl/keypath"
	"github.com/confctl/confctl/kind"
	"github.com/confctl/confctl/nav"
)

// Set replaces the child named by seg under the node at parent. The
// navigator has already resolved the full path, so the walk here only
// ever sees valid segments.
func (d *Doc) Set(parent keypath.Path, seg keypath.Seg, lit nav.Literal) error {
	node, _, err := d.walk(parent)
	if err != nil {
		return err
	}
	v := toValue(lit)
	switch s := seg.(type) {
	case keypath.Key:
		m, ok := node.(map[string]any)
		if !ok {
			return fmt.Errorf("internal: set key %q on non-object", string(s))
		}
		m[string(s)] = v
	case keypath.Index:
		arr, ok := node.([]any)
		if !ok || int(s) >= len(arr) {
			return fmt.Errorf("internal: set index %d on non-array", int(s))
		}
		arr[int(s)] = v
	}
	return nil
}

// Delete removes the child named by seg under the node at parent.
func (d *Doc) Delete(parent keypath.Path, seg keypath.Seg) error {
	node, setBack, err := d.walk(parent)
	if err != nil {
		return err
	}
	switch s := seg.(type) {
	case keypath.Key:
		m, ok := node.(map[string]any)
		if !ok {
			return fmt.Errorf("internal: delete key %q on non-object", string(s))
		}
		delete(m, string(s))
	case keypath.Index:
		arr, ok := node.([]any)
		if !ok || int(s) >= len(arr) {
			return fmt.Errorf("internal: delete index %d on non-array", int(s))
		}
		arr = append(arr[:int(s)], arr[int(s)+1:]...)
		setBack(arr)
	}
	return nil
}

// walk descends to the node at p and returns it together with a
// function that writes a replacement node back into its parent. The
// write-back is what lets slice-shrinking deletes take effect.
func (d *Doc) walk(p keypath.Path) (any, func(any), error) {
	cur := d.root
	setBack := func(v any) { d.root = v }
	for _, seg := range p {
		switch s := seg.(type) {
		case keypath.Key:
			m, ok := cur.(map[string]any)
			if !ok {
				return nil, nil, fmt.Errorf("internal: key %q on non-object", string(s))
			}
			cur = m[string(s)]
			setBack = func(v any) { m[string(s)] = v }
		case keypath.Index:
			arr, ok := cur.([]any)
			if !ok || int(s) >= len(arr) {
				return nil, nil, fmt.Errorf("internal: index %d on non-array", int(s))
			}
			cur = arr[int(s)]
			setBack = func(v any) { arr[int(s)] = v }
		}
	}
	return cur, setBack, nil
}

func toValue(lit nav.Literal) any {
	switch lit.Kind {
	case kind.Null:
		return nil
	case kind.Bool:
		return lit.Bool
	case kind.Int:
		return json.Number(strconv.FormatInt(lit.Int, 10))
	case kind.Uint:
		return json.Number(strconv.FormatUint(lit.Uint, 10))
	case kind.Float:
		return json.Number(strconv.FormatFloat(lit.Float, 'g', -1, 64))
	case kind.String:
		return lit.Str
	default:
		// date kinds never pass the set type check on this backend
		panic("literal kind not representable in JSON")
	}
}
