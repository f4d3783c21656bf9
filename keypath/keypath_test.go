package keypath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Path
		wantErr bool
	}{
		{
			name:  "single key",
			input: "network",
			want:  Path{Key("network")},
		},
		{
			name:  "dotted keys",
			input: "network.timeout",
			want:  Path{Key("network"), Key("timeout")},
		},
		{
			name:  "key then index then key",
			input: "servers[0].host",
			want:  Path{Key("servers"), Index(0), Key("host")},
		},
		{
			name:  "chained indices",
			input: "grid[2][10]",
			want:  Path{Key("grid"), Index(2), Index(10)},
		},
		{
			name:  "digits and dashes in keys",
			input: "2fa.retry-max_ms",
			want:  Path{Key("2fa"), Key("retry-max_ms")},
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "leading index",
			input:   "[0].host",
			wantErr: true,
		},
		{
			name:    "leading dot",
			input:   ".network",
			wantErr: true,
		},
		{
			name:    "trailing dot",
			input:   "network.",
			wantErr: true,
		},
		{
			name:    "double dot",
			input:   "a..b",
			wantErr: true,
		},
		{
			name:    "empty index",
			input:   "a[]",
			wantErr: true,
		},
		{
			name:    "unclosed index",
			input:   "a[3",
			wantErr: true,
		},
		{
			name:    "negative index",
			input:   "a[-1]",
			wantErr: true,
		},
		{
			name:    "junk after index",
			input:   "a[0]b",
			wantErr: true,
		},
		{
			name:    "dot before index",
			input:   "a.[0]",
			wantErr: true,
		},
		{
			name:    "space in key",
			input:   "a b",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, d)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want string
	}{
		{
			name: "single key",
			path: Path{Key("a")},
			want: "a",
		},
		{
			name: "dotted",
			path: Path{Key("a"), Key("b")},
			want: "a.b",
		},
		{
			name: "index after key",
			path: Path{Key("servers"), Index(0), Key("host")},
			want: "servers[0].host",
		},
		{
			name: "empty",
			path: nil,
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// render(parse(s)) is a fixed point for canonical inputs
	for _, s := range []string{
		"a",
		"a.b.c",
		"servers[0].host",
		"a[0][1].b[2]",
		"net-work.time_out",
	} {
		p, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := p.String(); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}

func TestWithKeyDoesNotAlias(t *testing.T) {
	base := Path{Key("a"), Key("b")}
	p1 := base.WithKey("c")
	p2 := base.WithIndex(7)
	if got := base.String(); got != "a.b" {
		t.Fatalf("base mutated: %q", got)
	}
	if got := p1.String(); got != "a.b.c" {
		t.Errorf("WithKey = %q", got)
	}
	if got := p2.String(); got != "a.b[7]" {
		t.Errorf("WithIndex = %q", got)
	}
}
