package tomldoc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/confctl/confctl/errs"
	"github.com/confctl/confctl/format"
	"github.com/confctl/confctl/kind"
)

type parser struct {
	src []byte
	i   int
	// lastEnd is the offset just past the newline of the last line
	// holding content; open sections close here.
	lastEnd int
}

func (p *parser) eof() bool {
	return p.i >= len(p.src)
}

func (p *parser) ch() byte {
	return p.src[p.i]
}

func (p *parser) errSyntax(off int, expected, found string) error {
	return &errs.SyntaxError{
		Format:   format.TOMLFormat,
		Loc:      errs.Locate(p.src, off),
		Expected: expected,
		Found:    found,
		Snippet:  errs.Snippet(p.src, off),
	}
}

func (p *parser) errEOF() error {
	off := len(p.src)
	return &errs.UnexpectedEOF{
		Format:  format.TOMLFormat,
		Loc:     errs.Locate(p.src, off),
		Snippet: errs.Snippet(p.src, off),
	}
}

func (p *parser) errUnterminated(off int) error {
	return &errs.UnterminatedString{
		Format:  format.TOMLFormat,
		Loc:     errs.Locate(p.src, off),
		Snippet: errs.Snippet(p.src, off),
	}
}

func (p *parser) skipSpace() {
	for !p.eof() && (p.ch() == ' ' || p.ch() == '\t') {
		p.i++
	}
}

func (p *parser) skipComment() {
	if p.eof() || p.ch() != '#' {
		return
	}
	for !p.eof() && p.ch() != '\n' {
		p.i++
	}
}

// skipBlank moves past whitespace, comments and blank lines to the
// next content byte.
func (p *parser) skipBlank() {
	for {
		p.skipSpace()
		p.skipComment()
		if p.eof() || p.ch() != '\n' && p.ch() != '\r' {
			return
		}
		p.i++
	}
}

// expectEOL consumes trailing space, an optional comment and the line
// terminator after an entry or header.
func (p *parser) expectEOL() error {
	p.skipSpace()
	p.skipComment()
	if p.eof() {
		p.lastEnd = p.i
		return nil
	}
	if p.ch() == '\r' {
		p.i++
	}
	if p.eof() || p.ch() != '\n' {
		return p.errSyntax(p.i, "end of line", fmt.Sprintf("%q", string(p.ch())))
	}
	p.i++
	p.lastEnd = p.i
	return nil
}

func isBareKeyByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-':
		return true
	}
	return false
}

// parseKey reads one bare, basic-quoted or literal-quoted key.
func (p *parser) parseKey() (string, error) {
	if p.eof() {
		return "", p.errEOF()
	}
	switch c := p.ch(); {
	case c == '"':
		s, _, err := p.parseBasicString(false)
		return s, err
	case c == '\'':
		s, _, err := p.parseLiteralString(false)
		return s, err
	case isBareKeyByte(c):
		start := p.i
		for !p.eof() && isBareKeyByte(p.ch()) {
			p.i++
		}
		return string(p.src[start:p.i]), nil
	default:
		return "", p.errSyntax(p.i, "a key", fmt.Sprintf("%q", string(c)))
	}
}

// parseKeyParts reads a possibly dotted key.
func (p *parser) parseKeyParts() ([]string, error) {
	var parts []string
	for {
		p.skipSpace()
		k, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		parts = append(parts, k)
		p.skipSpace()
		if p.eof() || p.ch() != '.' {
			return parts, nil
		}
		p.i++
	}
}

// parseBasicString decodes a "..." or """...""" string. The opening
// quote is at p.i. Returns the decoded text and whether the multiline
// form was used.
func (p *parser) parseBasicString(allowML bool) (string, bool, error) {
	start := p.i
	p.i++ // opening quote
	ml := false
	if allowML && p.i+1 < len(p.src) && p.src[p.i] == '"' && p.src[p.i+1] == '"' {
		ml = true
		p.i += 2
		// a newline right after the opening delimiter is trimmed
		if !p.eof() && p.ch() == '\r' {
			p.i++
		}
		if !p.eof() && p.ch() == '\n' {
			p.i++
		}
	}
	var b strings.Builder
	for {
		if p.eof() {
			return "", ml, p.errUnterminated(start)
		}
		c := p.ch()
		switch {
		case c == '"':
			if !ml {
				p.i++
				return b.String(), ml, nil
			}
			if p.i+2 < len(p.src) && p.src[p.i+1] == '"' && p.src[p.i+2] == '"' {
				p.i += 3
				return b.String(), ml, nil
			}
			b.WriteByte(c)
			p.i++
		case c == '\\':
			if p.i+1 >= len(p.src) {
				return "", ml, p.errUnterminated(start)
			}
			esc := p.src[p.i+1]
			switch esc {
			case 'b':
				b.WriteByte('\b')
				p.i += 2
			case 't':
				b.WriteByte('\t')
				p.i += 2
			case 'n':
				b.WriteByte('\n')
				p.i += 2
			case 'f':
				b.WriteByte('\f')
				p.i += 2
			case 'r':
				b.WriteByte('\r')
				p.i += 2
			case '"':
				b.WriteByte('"')
				p.i += 2
			case '\\':
				b.WriteByte('\\')
				p.i += 2
			case 'u', 'U':
				n := 4
				if esc == 'U' {
					n = 8
				}
				if p.i+2+n > len(p.src) {
					return "", ml, p.errUnterminated(start)
				}
				hex := string(p.src[p.i+2 : p.i+2+n])
				r, err := strconv.ParseUint(hex, 16, 32)
				if err != nil {
					return "", ml, p.errSyntax(p.i, "a hex escape", fmt.Sprintf("%q", hex))
				}
				b.WriteRune(rune(r))
				p.i += 2 + n
			case '\n', '\r', ' ', '\t':
				if !ml {
					return "", ml, p.errSyntax(p.i, "a valid escape", `"\"+whitespace`)
				}
				// line-ending backslash: skip whitespace through the
				// next non-blank byte
				p.i++
				for !p.eof() && (p.ch() == ' ' || p.ch() == '\t' || p.ch() == '\n' || p.ch() == '\r') {
					p.i++
				}
			default:
				return "", ml, p.errSyntax(p.i, "a valid escape", fmt.Sprintf("%q", `\`+string(esc)))
			}
		case c == '\n' && !ml:
			return "", ml, p.errUnterminated(start)
		default:
			b.WriteByte(c)
			p.i++
		}
	}
}

// parseLiteralString decodes a '...' or '''...''' string.
func (p *parser) parseLiteralString(allowML bool) (string, bool, error) {
	start := p.i
	p.i++ // opening quote
	if allowML && p.i+1 < len(p.src) && p.src[p.i] == '\'' && p.src[p.i+1] == '\'' {
		p.i += 2
		if !p.eof() && p.ch() == '\r' {
			p.i++
		}
		if !p.eof() && p.ch() == '\n' {
			p.i++
		}
		bodyStart := p.i
		for p.i+2 < len(p.src) {
			if p.src[p.i] == '\'' && p.src[p.i+1] == '\'' && p.src[p.i+2] == '\'' {
				s := string(p.src[bodyStart:p.i])
				p.i += 3
				return s, true, nil
			}
			p.i++
		}
		return "", true, p.errUnterminated(start)
	}
	bodyStart := p.i
	for !p.eof() {
		switch p.ch() {
		case '\'':
			s := string(p.src[bodyStart:p.i])
			p.i++
			return s, false, nil
		case '\n':
			return "", false, p.errUnterminated(start)
		default:
			p.i++
		}
	}
	return "", false, p.errUnterminated(start)
}

// scanScalar reads a bare scalar token, joining the space-separated
// date-time form into one token.
func (p *parser) scanScalar() (string, error) {
	start := p.i
	for !p.eof() && !isScalarEnd(p.ch()) {
		p.i++
	}
	tok := string(p.src[start:p.i])
	if tok == "" {
		if p.eof() {
			return "", p.errEOF()
		}
		return "", p.errSyntax(p.i, "a value", fmt.Sprintf("%q", string(p.ch())))
	}
	if isDate(tok) && p.i+3 < len(p.src) && p.ch() == ' ' &&
		isDigit(p.src[p.i+1]) && isDigit(p.src[p.i+2]) && p.src[p.i+3] == ':' {
		p.i++ // the separating space
		rest := p.i
		for !p.eof() && !isScalarEnd(p.ch()) {
			p.i++
		}
		tok += " " + string(p.src[rest:p.i])
	}
	return tok, nil
}

func isScalarEnd(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ',', ']', '}', '#':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i := 0; i < 10; i++ {
		if i == 4 || i == 7 {
			if s[i] != '-' {
				return false
			}
		} else if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isTimeStart(s string) bool {
	return len(s) >= 8 &&
		isDigit(s[0]) && isDigit(s[1]) && s[2] == ':' &&
		isDigit(s[3]) && isDigit(s[4]) && s[5] == ':' &&
		isDigit(s[6]) && isDigit(s[7])
}

// classifyScalar determines the kind of a bare scalar token.
func classifyScalar(tok string) (kind.Kind, error) {
	switch tok {
	case "true", "false":
		return kind.Bool, nil
	}
	if isDate(tok) {
		return kind.Date, nil
	}
	if isTimeStart(tok) {
		return kind.Time, nil
	}
	if len(tok) > 11 && isDate(tok[:10]) &&
		(tok[10] == 'T' || tok[10] == 't' || tok[10] == ' ') && isTimeStart(tok[11:]) {
		return kind.DateTime, nil
	}
	body := strings.TrimPrefix(strings.TrimPrefix(tok, "+"), "-")
	if body == "inf" || body == "nan" {
		return kind.Float, nil
	}
	clean := strings.ReplaceAll(tok, "_", "")
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0o") || strings.HasPrefix(body, "0b") {
		if _, err := strconv.ParseInt(clean, 0, 64); err == nil {
			return kind.Int, nil
		}
		return 0, fmt.Errorf("bad prefixed integer")
	}
	if strings.ContainsAny(body, ".eE") {
		if _, err := strconv.ParseFloat(clean, 64); err == nil {
			return kind.Float, nil
		}
		return 0, fmt.Errorf("bad float")
	}
	if _, err := strconv.ParseInt(clean, 10, 64); err == nil {
		return kind.Int, nil
	}
	return 0, fmt.Errorf("unrecognized scalar")
}
