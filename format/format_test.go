package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{"json", JSONFormat, false},
		{"j", JSONFormat, false},
		{"toml", TOMLFormat, false},
		{"t", TOMLFormat, false},
		{"JSON", JSONFormat, false},
		{"yaml", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.err {
				if !errors.Is(err, ErrBadFormat) {
					t.Fatalf("err = %v, want ErrBadFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"app.json", JSONFormat, true},
		{"/etc/app/config.toml", TOMLFormat, true},
		{"app.JSON", JSONFormat, true},
		{"app.conf", 0, false},
		{"app", 0, false},
		{"json", 0, false},
	}
	for _, tt := range tests {
		got, ok := FromPath(tt.path)
		if ok != tt.ok {
			t.Errorf("FromPath(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("FromPath(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}
