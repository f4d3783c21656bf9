package errs

import (
	"fmt"

	"github.com/confctl/confctl/keypath"
	"github.com/confctl/confctl/kind"
)

type Mismatch struct {
	Path     keypath.Path
	Expected kind.Kind
	Found    kind.Kind
}

func (e *Mismatch) Category() Category { return Type }

func (e *Mismatch) Error() string {
	return fmt.Sprintf("type mismatch at %s: expected %s, found %s",
		prefix(e.Path), e.Expected, e.Found)
}
