// Package conffile loads config documents from disk and writes them
// back atomically.
//
// A save never touches the target in place: the serialized document
// goes to a temp file next to the target, which is then renamed over
// it. Any failure before the rename leaves the original byte-for-byte
// untouched, and the temp file is removed on every failure path.
package conffile

import (
	"os"

	"github.com/confctl/confctl/debug"
	"github.com/confctl/confctl/errs"
	"github.com/confctl/confctl/format"
	"github.com/confctl/confctl/jsondoc"
	"github.com/confctl/confctl/nav"
	"github.com/confctl/confctl/tomldoc"
)

// Indirection for fault injection in tests.
var (
	writeFile = os.WriteFile
	rename    = os.Rename
)

// Load reads and parses the config file at path.
func Load(path string, f format.Format) (nav.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		reason, hint := errs.IOReason(err, path)
		return nil, &errs.ReadFailed{Path: path, Reason: reason, Hint: hint}
	}
	debug.Filef("read %s (%d bytes)", path, len(src))
	switch f {
	case format.JSONFormat:
		return jsondoc.Parse(src)
	case format.TOMLFormat:
		return tomldoc.Parse(src)
	default:
		return nil, &errs.InvalidChoice{
			Flag:     "--format",
			Provided: f.String(),
			Valid:    []string{"json", "toml"},
		}
	}
}

// Save writes doc back to path via an adjacent temp file and an
// atomic rename.
func Save(doc nav.Document, path string) error {
	tmp := path + ".tmp"
	if err := writeFile(tmp, doc.Serialize(), 0644); err != nil {
		reason, hint := errs.IOReason(err, tmp)
		return &errs.TempCreateFailed{Path: tmp, Reason: reason, Hint: hint}
	}
	debug.Filef("wrote %s", tmp)
	if err := rename(tmp, path); err != nil {
		os.Remove(tmp)
		reason, hint := errs.IOReason(err, path)
		return &errs.AtomicReplaceFailed{
			TempPath:  tmp,
			FinalPath: path,
			Reason:    reason,
			Hint:      hint,
		}
	}
	debug.Filef("renamed %s -> %s", tmp, path)
	return nil
}
