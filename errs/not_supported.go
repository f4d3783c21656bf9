package errs

import (
	"fmt"

	"github.com/confctl/confctl/format"
)

// The not-supported variants cover requests the tool understands but
// deliberately does not implement.

type UnsupportedFormat struct {
	Format format.Format
	Op     string
	Hint   string
}

func (e *UnsupportedFormat) Category() Category { return NotSupported }

func (e *UnsupportedFormat) Error() string {
	return fmt.Sprintf("not supported for format %s: %s. %s", e.Format, e.Op, e.Hint)
}

type UnsupportedOption struct {
	Option string
	Hint   string
}

func (e *UnsupportedOption) Category() Category { return NotSupported }

func (e *UnsupportedOption) Error() string {
	return fmt.Sprintf("option not supported: %s. %s", e.Option, e.Hint)
}

type UnsupportedFeature struct {
	Feature string
	Hint    string
}

func (e *UnsupportedFeature) Category() Category { return NotSupported }

func (e *UnsupportedFeature) Error() string {
	return fmt.Sprintf("feature not supported: %s. %s", e.Feature, e.Hint)
}
