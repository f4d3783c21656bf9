// Package nav resolves key paths over a parsed config document and
// implements the read, set, delete and list operations.
//
// The two backends (jsondoc, tomldoc) expose their trees through the
// Cursor and Document interfaces below; nav walks them without knowing
// which format it is looking at. All failures are errs taxonomy
// variants carrying the prefix resolved so far.
package nav

import (
	"github.com/confctl/confctl/format"
	"github.com/confctl/confctl/keypath"
	"github.com/confctl/confctl/kind"
)

// Cursor is a position inside one backend's tree. The capability
// contract is lookup-key, lookup-index and classify; which lookups
// are meaningful follows from Kind.
type Cursor interface {
	// Kind classifies the node under the cursor.
	Kind() kind.Kind
	// Key looks up a child of an object-like node. The second result
	// is false when the key is absent.
	Key(name string) (Cursor, bool)
	// Index looks up an element of an array-like node.
	Index(i int) (Cursor, bool)
	// Len is the child count of a container, 0 for scalars.
	Len() int
	// Keys lists an object-like node's keys in backend order.
	Keys() []string
	// Display renders the node for output.
	Display() string
}

// Document is a fully parsed config file. Set and Delete mutate the
// tree in place; the navigator validates the path and the target's
// existence before calling either, so backends only see paths that
// resolve.
type Document interface {
	Format() format.Format
	Root() Cursor
	Set(parent keypath.Path, seg keypath.Seg, lit Literal) error
	Delete(parent keypath.Path, seg keypath.Seg) error
	// Serialize renders the whole document, preserving any regions
	// the mutation did not touch.
	Serialize() []byte
}
