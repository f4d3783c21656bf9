package jsondoc

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/confctl/confctl/kind"
	"github.com/confctl/confctl/nav"
)

// cursor is a direct reference to a node in the value tree.
type cursor struct {
	v any
}

func (c *cursor) Kind() kind.Kind {
	return classify(c.v)
}

func (c *cursor) Key(name string) (nav.Cursor, bool) {
	m, ok := c.v.(map[string]any)
	if !ok {
		return nil, false
	}
	child, ok := m[name]
	if !ok {
		return nil, false
	}
	return &cursor{v: child}, true
}

func (c *cursor) Index(i int) (nav.Cursor, bool) {
	arr, ok := c.v.([]any)
	if !ok || i < 0 || i >= len(arr) {
		return nil, false
	}
	return &cursor{v: arr[i]}, true
}

func (c *cursor) Len() int {
	switch n := c.v.(type) {
	case []any:
		return len(n)
	case map[string]any:
		return len(n)
	default:
		return 0
	}
}

// Keys returns object keys sorted, matching serialization order.
func (c *cursor) Keys() []string {
	m, ok := c.v.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Display renders scalars as bare text and containers as pretty JSON.
func (c *cursor) Display() string {
	switch n := c.v.(type) {
	case nil:
		return "null"
	case bool:
		if n {
			return "true"
		}
		return "false"
	case json.Number:
		return n.String()
	case string:
		return n
	default:
		return strings.TrimRight(string(marshal(c.v, false)), "\n")
	}
}
