package nav

import (
	"strconv"
	"strings"

	"github.com/confctl/confctl/errs"
	"github.com/confctl/confctl/kind"
)

// Literal is a value argument after inference: the kind it will take
// in the document plus the decoded payload for that kind. Raw keeps
// the argument as typed by the user.
type Literal struct {
	Kind  kind.Kind
	Bool  bool
	Int   int64
	Uint  uint64
	Float float64
	Str   string
	Raw   string
}

// Infer classifies a value argument. Double quotes force string,
// otherwise null, booleans, integers, floats and TOML datetime shapes
// are recognized in that order; anything else is a string.
func Infer(raw string) (Literal, error) {
	lit := Literal{Raw: raw}
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return lit, &errs.UnsupportedFeature{
			Feature: "container value literals",
			Hint:    "set scalar values one path at a time",
		}
	}
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		s, err := strconv.Unquote(raw)
		if err != nil {
			s = raw[1 : len(raw)-1]
		}
		lit.Kind, lit.Str = kind.String, s
		return lit, nil
	}
	switch raw {
	case "null":
		lit.Kind = kind.Null
		return lit, nil
	case "true", "false":
		lit.Kind, lit.Bool = kind.Bool, raw == "true"
		return lit, nil
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		lit.Kind, lit.Int = kind.Int, i
		return lit, nil
	}
	if u, err := strconv.ParseUint(raw, 10, 64); err == nil {
		lit.Kind, lit.Uint = kind.Uint, u
		return lit, nil
	}
	if f, ok := parseFloat(raw); ok {
		lit.Kind, lit.Float = kind.Float, f
		return lit, nil
	}
	if k, ok := datetimeKind(raw); ok {
		lit.Kind = k
		return lit, nil
	}
	lit.Kind, lit.Str = kind.String, raw
	return lit, nil
}

func parseFloat(s string) (float64, bool) {
	// TOML spells non-finite floats inf and nan; ParseFloat accepts
	// both those and the usual decimal/exponent forms.
	body := strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	if body != "inf" && body != "nan" {
		if !strings.ContainsAny(s, ".eE") {
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// datetimeKind recognizes the TOML datetime shapes: full date, local
// or offset date-time, and local time, classified by which parts the
// literal carries.
func datetimeKind(s string) (kind.Kind, bool) {
	switch {
	case isDate(s):
		return kind.Date, true
	case isTime(s):
		return kind.Time, true
	case len(s) > 10 && isDate(s[:10]) && (s[10] == 'T' || s[10] == 't' || s[10] == ' ') && isTimeStart(s[11:]):
		return kind.DateTime, true
	}
	return 0, false
}

func isDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i, c := range []byte(s) {
		if i == 4 || i == 7 {
			if c != '-' {
				return false
			}
		} else if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isTimeStart(s string) bool {
	return len(s) >= 8 && isTime(s[:8])
}

func isTime(s string) bool {
	if len(s) < 8 {
		return false
	}
	hhmmss := s[:8]
	for i, c := range []byte(hhmmss) {
		if i == 2 || i == 5 {
			if c != ':' {
				return false
			}
		} else if c < '0' || c > '9' {
			return false
		}
	}
	rest := s[8:]
	if rest == "" {
		return true
	}
	// fractional seconds only; offsets make it a date-time elsewhere
	if rest[0] != '.' {
		return false
	}
	for _, c := range []byte(rest[1:]) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(rest) > 1
}
