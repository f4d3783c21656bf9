package keypath

import (
	"testing"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		"a",
		"network.timeout",
		"servers[0].host",
		"a.b.c.d.e",
		"grid[10][20]",
		"_-_.-_-",
		"2fa.retry-max_ms",
		"",
		".",
		"..",
		"[0]",
		"a[",
		"a[]",
		"a[-1]",
		"a[999999999999999999999]",
		"a.b[3].c[0].d",
		"a b",
		"a\x00b",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		p, err := Parse(s)
		if err != nil {
			return // syntax errors are expected for random input
		}
		if len(p) == 0 {
			t.Fatalf("Parse(%q) returned an empty path without error", s)
		}
		// the canonical rendering is a fixed point
		canon := p.String()
		p2, err := Parse(canon)
		if err != nil {
			t.Fatalf("reparse of %q (from %q) failed: %v", canon, s, err)
		}
		if got := p2.String(); got != canon {
			t.Fatalf("render not idempotent: %q -> %q", canon, got)
		}
	})
}
