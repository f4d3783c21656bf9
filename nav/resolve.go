package nav

import (
	"github.com/confctl/confctl/debug"
	"github.com/confctl/confctl/errs"
	"github.com/confctl/confctl/keypath"
	"github.com/confctl/confctl/kind"
)

// Resolve walks p from the document root, branching on the kind under
// the cursor at each segment. Failures carry the prefix resolved so
// far, not the full target path.
func Resolve(doc Document, p keypath.Path) (Cursor, error) {
	if len(p) == 0 {
		return nil, &errs.EmptyPath{}
	}
	cur := doc.Root()
	var prefix keypath.Path
	for _, seg := range p {
		switch s := seg.(type) {
		case keypath.Key:
			if cur.Kind() != kind.Object {
				return nil, &errs.NotAnObject{Prefix: prefix, Key: string(s), Found: cur.Kind()}
			}
			next, ok := cur.Key(string(s))
			if !ok {
				return nil, &errs.KeyNotFound{
					Prefix:     prefix,
					Key:        string(s),
					Suggestion: errs.Suggest(string(s), cur.Keys()),
				}
			}
			prefix = prefix.WithKey(string(s))
			cur = next
		case keypath.Index:
			if cur.Kind() != kind.Array {
				return nil, &errs.NotAnArray{Prefix: prefix, Index: int(s), Found: cur.Kind()}
			}
			next, ok := cur.Index(int(s))
			if !ok {
				return nil, &errs.IndexOutOfBounds{Prefix: prefix, Index: int(s), Len: cur.Len()}
			}
			prefix = prefix.WithIndex(int(s))
			cur = next
		}
		debug.Resolvef("at %s: %s", prefix, cur.Kind())
	}
	return cur, nil
}
