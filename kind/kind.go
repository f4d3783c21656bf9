// Package kind classifies document nodes into a shared type taxonomy.
//
// Both backends map their node shapes onto the same set of kinds, so
// error messages and type checks read identically whether the document
// is JSON or TOML. The Date, Time and DateTime kinds only ever arise
// from TOML datetime literals, split by which parts the literal carries.
package kind

import "fmt"

type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Uint
	Float
	String
	Array
	Object
	Date
	Time
	DateTime
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		Null:     "null",
		Bool:     "bool",
		Int:      "int",
		Uint:     "uint",
		Float:    "float",
		String:   "string",
		Array:    "array",
		Object:   "object",
		Date:     "date",
		Time:     "time",
		DateTime: "datetime",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < Null || k > DateTime {
		return nil, fmt.Errorf("<err: %d is not a kind>", k)
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"null":     Null,
		"bool":     Bool,
		"int":      Int,
		"uint":     Uint,
		"float":    Float,
		"string":   String,
		"array":    Array,
		"object":   Object,
		"date":     Date,
		"time":     Time,
		"datetime": DateTime,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		Null,
		Bool,
		Int,
		Uint,
		Float,
		String,
		Array,
		Object,
		Date,
		Time,
		DateTime,
	}
}

// IsContainer reports whether nodes of this kind hold children.
func (k Kind) IsContainer() bool {
	switch k {
	case Array, Object:
		return true
	default:
		return false
	}
}
