package jsondoc

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/confctl/confctl/errs"
	"github.com/confctl/confctl/keypath"
	"github.com/confctl/confctl/kind"
	"github.com/confctl/confctl/nav"
)

func mustParse(t *testing.T, src string) *Doc {
	t.Helper()
	d, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return d
}

func TestClassify(t *testing.T) {
	d := mustParse(t, `{
		"n": null,
		"b": true,
		"i": -3,
		"u": 18446744073709551615,
		"f": 2.5,
		"e": 1e300,
		"s": "hi",
		"a": [1],
		"o": {"x": 1}
	}`)
	tests := []struct {
		key  string
		want kind.Kind
	}{
		{"n", kind.Null},
		{"b", kind.Bool},
		{"i", kind.Int},
		{"u", kind.Uint},
		{"f", kind.Float},
		{"e", kind.Float},
		{"s", kind.String},
		{"a", kind.Array},
		{"o", kind.Object},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c, ok := d.Root().Key(tt.key)
			if !ok {
				t.Fatalf("key %q missing", tt.key)
			}
			if got := c.Kind(); got != tt.want {
				t.Errorf("Kind() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want any // pointer to the expected variant type
	}{
		{"bad token", `{"a": tru}`, &errs.ForeignParse{}},
		{"eof", `{"a":`, &errs.UnexpectedEOF{}},
		{"empty", ``, &errs.UnexpectedEOF{}},
		{"trailing", `{"a": 1} {"b": 2}`, &errs.TrailingContent{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil {
				t.Fatal("Parse succeeded")
			}
			if errs.ExitCode(err) != 3 {
				t.Errorf("exit code = %d, want 3", errs.ExitCode(err))
			}
			switch tt.want.(type) {
			case *errs.ForeignParse:
				var e *errs.ForeignParse
				if !errors.As(err, &e) {
					t.Errorf("error = %T, want %T", err, tt.want)
				}
			case *errs.UnexpectedEOF:
				var e *errs.UnexpectedEOF
				if !errors.As(err, &e) {
					t.Errorf("error = %T, want %T", err, tt.want)
				}
			case *errs.TrailingContent:
				var e *errs.TrailingContent
				if !errors.As(err, &e) {
					t.Errorf("error = %T, want %T", err, tt.want)
				}
			}
		})
	}
}

func TestParseErrorLocation(t *testing.T) {
	_, err := Parse([]byte("{\n  \"a\": oops\n}"))
	var e *errs.ForeignParse
	if !errors.As(err, &e) {
		t.Fatalf("error = %v (%T)", err, err)
	}
	if e.Loc.Line != 2 {
		t.Errorf("line = %d, want 2", e.Loc.Line)
	}
	if !strings.Contains(e.Error(), "^") {
		t.Errorf("no caret in snippet: %q", e.Error())
	}
}

func TestDisplay(t *testing.T) {
	d := mustParse(t, `{"s": "plain text", "i": 500, "o": {"b": 1, "a": 2}}`)
	tests := []struct {
		key  string
		want string
	}{
		{"s", "plain text"},
		{"i", "500"},
		{"o", "{\n  \"a\": 2,\n  \"b\": 1\n}"},
	}
	for _, tt := range tests {
		c, ok := d.Root().Key(tt.key)
		if !ok {
			t.Fatalf("key %q missing", tt.key)
		}
		if got := c.Display(); got != tt.want {
			t.Errorf("Display(%s) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeysSorted(t *testing.T) {
	d := mustParse(t, `{"zeta": 1, "alpha": 2, "mid": 3}`)
	want := []string{"alpha", "mid", "zeta"}
	if diff := cmp.Diff(want, d.Root().Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeStable(t *testing.T) {
	d := mustParse(t, `{"b":2,"a":1}`)
	want := "{\n  \"a\": 1,\n  \"b\": 2\n}\n"
	if got := string(d.Serialize()); got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSetInPlace(t *testing.T) {
	d := mustParse(t, `{"network": {"timeout": 500}}`)
	lit := nav.Literal{Kind: kind.Int, Int: 1500}
	err := d.Set(keypath.Path{keypath.Key("network")}, keypath.Key("timeout"), lit)
	if err != nil {
		t.Fatal(err)
	}
	c, _ := d.Root().Key("network")
	v, _ := c.Key("timeout")
	if got := v.Display(); got != "1500" {
		t.Errorf("after set: %q", got)
	}
}

func TestDeleteArrayElement(t *testing.T) {
	d := mustParse(t, `{"xs": [10, 20, 30]}`)
	err := d.Delete(keypath.Path{keypath.Key("xs")}, keypath.Index(1))
	if err != nil {
		t.Fatal(err)
	}
	c, _ := d.Root().Key("xs")
	if got := c.Len(); got != 2 {
		t.Fatalf("len after delete = %d", got)
	}
	v, _ := c.Index(1)
	if got := v.Display(); got != "30" {
		t.Errorf("xs[1] = %q, want 30", got)
	}
}

func TestDeleteNestedArrayElement(t *testing.T) {
	// shrinking a slice reached through another container exercises
	// the write-back path
	d := mustParse(t, `{"a": {"xs": [1, 2]}}`)
	err := d.Delete(keypath.Path{keypath.Key("a"), keypath.Key("xs")}, keypath.Index(0))
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": {\n    \"xs\": [\n      2\n    ]\n  }\n}\n"
	if got := string(d.Serialize()); got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestDeleteKey(t *testing.T) {
	d := mustParse(t, `{"a": 1, "b": 2}`)
	if err := d.Delete(nil, keypath.Key("a")); err != nil {
		t.Fatal(err)
	}
	if _, ok := d.Root().Key("a"); ok {
		t.Error("key a still present")
	}
	if _, ok := d.Root().Key("b"); !ok {
		t.Error("key b vanished")
	}
}
