package tomldoc

import (
	"errors"
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
		t.Fatalf("Parse:\n%s\nerror: %v", src, err)
	}
	return d
}

func at(t *testing.T, d *Doc, path string) nav.Cursor {
	t.Helper()
	p, err := keypath.Parse(path)
	if err != nil {
		t.Fatal(err)
	}
	c := nav.Cursor(d.Root())
	for _, seg := range p {
		var ok bool
		switch s := seg.(type) {
		case keypath.Key:
			c, ok = c.Key(string(s))
		case keypath.Index:
			c, ok = c.Index(int(s))
		}
		if !ok {
			t.Fatalf("path %s broke at %v", path, seg)
		}
	}
	return c
}

func TestClassify(t *testing.T) {
	d := mustParse(t, `
b = true
i = -42
big = 1_000_000
hex = 0xDEAD
f = 2.5
exp = 1e6
inf-f = -inf
s = "hello"
lit = 'raw\no escape'
arr = [1, 2]
inline = { x = 1 }
d1 = 1979-05-27
t1 = 07:32:00
dt = 1979-05-27T07:32:00Z
dt-space = 1979-05-27 07:32:00
[table]
x = 1
[[aot]]
y = 2
`)
	tests := []struct {
		path string
		want kind.Kind
	}{
		{"b", kind.Bool},
		{"i", kind.Int},
		{"big", kind.Int},
		{"hex", kind.Int},
		{"f", kind.Float},
		{"exp", kind.Float},
		{"inf-f", kind.Float},
		{"s", kind.String},
		{"lit", kind.String},
		{"arr", kind.Array},
		{"inline", kind.Object},
		{"d1", kind.Date},
		{"t1", kind.Time},
		{"dt", kind.DateTime},
		{"dt-space", kind.DateTime},
		{"table", kind.Object},
		{"aot", kind.Array},
		{"aot[0]", kind.Object},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := at(t, d, tt.path).Kind(); got != tt.want {
				t.Errorf("Kind(%s) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestStringDecoding(t *testing.T) {
	d := mustParse(t, `
basic = "tab\tnewline\nquote\" end"
uni = "\u00e9"
lit = 'c:\path'
ml = """
line1
line2"""
mlit = '''
keep 'quotes'
'''
`)
	tests := []struct {
		path string
		want string
	}{
		{"basic", "tab\tnewline\nquote\" end"},
		{"uni", "é"},
		{"lit", `c:\path`},
		{"ml", "line1\nline2"},
		{"mlit", "keep 'quotes'\n"},
	}
	for _, tt := range tests {
		if got := at(t, d, tt.path).Display(); got != tt.want {
			t.Errorf("Display(%s) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDocumentOrderKeys(t *testing.T) {
	d := mustParse(t, `
zeta = 1
alpha = 2
[mid]
x = 1
[zz.deep]
y = 2
`)
	want := []string{"zeta", "alpha", "mid", "zz"}
	if diff := cmp.Diff(want, d.Root().Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestArrayOfTablesUsesTableSemantics(t *testing.T) {
	d := mustParse(t, `
[[servers]]
host = "a"
[servers.tls]
cert = "x"
[[servers]]
host = "b"
`)
	if got := at(t, d, "servers[0].host").Display(); got != "a" {
		t.Errorf("servers[0].host = %q", got)
	}
	// the subtable header attached to the first element
	if got := at(t, d, "servers[0].tls.cert").Display(); got != "x" {
		t.Errorf("servers[0].tls.cert = %q", got)
	}
	if got := at(t, d, "servers[1].host").Display(); got != "b" {
		t.Errorf("servers[1].host = %q", got)
	}
}

func TestSetPreservesFormatting(t *testing.T) {
	src := `# app config

[network]           # section
timeout = 500       # in ms
host    = "a"

[other]
keep = true
`
	d := mustParse(t, src)
	err := d.Set(keypath.Path{keypath.Key("network")}, keypath.Key("timeout"),
		nav.Literal{Kind: kind.Int, Int: 1500})
	if err != nil {
		t.Fatal(err)
	}
	want := `# app config

[network]           # section
timeout = 1500       # in ms
host    = "a"

[other]
keep = true
`
	if got := string(d.Serialize()); got != want {
		t.Errorf("after set:\n%s\nwant:\n%s", got, want)
	}
}

func TestSetInlineString(t *testing.T) {
	src := "servers = [{ host = \"a\" }]  # fleet\n"
	d := mustParse(t, src)
	p := keypath.Path{keypath.Key("servers"), keypath.Index(0)}
	err := d.Set(p, keypath.Key("host"), nav.Literal{Kind: kind.String, Str: "localhost"})
	if err != nil {
		t.Fatal(err)
	}
	want := "servers = [{ host = \"localhost\" }]  # fleet\n"
	if got := string(d.Serialize()); got != want {
		t.Errorf("after set: %q, want %q", got, want)
	}
}

func TestDeletePairKeepsSiblings(t *testing.T) {
	src := `[network]
timeout = 500 # ms
host = "a"    # name
`
	d := mustParse(t, src)
	if err := d.Delete(keypath.Path{keypath.Key("network")}, keypath.Key("timeout")); err != nil {
		t.Fatal(err)
	}
	want := `[network]
host = "a"    # name
`
	if got := string(d.Serialize()); got != want {
		t.Errorf("after delete:\n%q\nwant:\n%q", got, want)
	}
}

func TestDeleteTableSection(t *testing.T) {
	src := `before = 1

[gone]
x = 1
y = 2

[kept]
z = 3
`
	d := mustParse(t, src)
	if err := d.Delete(nil, keypath.Key("gone")); err != nil {
		t.Fatal(err)
	}
	got := string(d.Serialize())
	want := `before = 1

[kept]
z = 3
`
	if got != want {
		t.Errorf("after delete:\n%q\nwant:\n%q", got, want)
	}
}

func TestDeleteTableWithSubtables(t *testing.T) {
	src := `[a]
x = 1
[a.b]
y = 2
[c]
z = 3
`
	d := mustParse(t, src)
	if err := d.Delete(nil, keypath.Key("a")); err != nil {
		t.Fatal(err)
	}
	want := `[c]
z = 3
`
	if got := string(d.Serialize()); got != want {
		t.Errorf("after delete:\n%q\nwant:\n%q", got, want)
	}
}

func TestDeleteArrayOfTablesElement(t *testing.T) {
	src := `[[servers]]
host = "a"
[[servers]]
host = "b"
`
	d := mustParse(t, src)
	if err := d.Delete(keypath.Path{keypath.Key("servers")}, keypath.Index(0)); err != nil {
		t.Fatal(err)
	}
	want := `[[servers]]
host = "b"
`
	if got := string(d.Serialize()); got != want {
		t.Errorf("after delete:\n%q\nwant:\n%q", got, want)
	}
	if got := at(t, d, "servers[0].host").Display(); got != "b" {
		t.Errorf("servers[0].host = %q", got)
	}
}

func TestDeleteInlineArrayElement(t *testing.T) {
	tests := []struct {
		name string
		src  string
		idx  int
		want string
	}{
		{"first", "xs = [1, 2, 3]\n", 0, "xs = [2, 3]\n"},
		{"middle", "xs = [1, 2, 3]\n", 1, "xs = [1, 3]\n"},
		{"last", "xs = [1, 2, 3]\n", 2, "xs = [1, 2]\n"},
		{"sole", "xs = [1]\n", 0, "xs = []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustParse(t, tt.src)
			err := d.Delete(keypath.Path{keypath.Key("xs")}, keypath.Index(tt.idx))
			if err != nil {
				t.Fatal(err)
			}
			if got := string(d.Serialize()); got != tt.want {
				t.Errorf("after delete: %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeleteInlineTableMember(t *testing.T) {
	src := "pt = { x = 1, y = 2 }\n"
	d := mustParse(t, src)
	if err := d.Delete(keypath.Path{keypath.Key("pt")}, keypath.Key("x")); err != nil {
		t.Fatal(err)
	}
	want := "pt = { y = 2 }\n"
	if got := string(d.Serialize()); got != want {
		t.Errorf("after delete: %q, want %q", got, want)
	}
}

func TestDeleteDottedTableUnsupported(t *testing.T) {
	d := mustParse(t, "a.b = 1\na.c = 2\n")
	err := d.Delete(nil, keypath.Key("a"))
	var e *errs.UnsupportedFeature
	if !errors.As(err, &e) {
		t.Fatalf("error = %v (%T), want UnsupportedFeature", err, err)
	}
	// the entries themselves delete fine
	d2 := mustParse(t, "a.b = 1\na.c = 2\n")
	if err := d2.Delete(keypath.Path{keypath.Key("a")}, keypath.Key("b")); err != nil {
		t.Fatal(err)
	}
	if got := string(d2.Serialize()); got != "a.c = 2\n" {
		t.Errorf("after delete: %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unterminated string", "x = \"abc\n"},
		{"bad escape", `x = "\q"`},
		{"bad value", "x = @@@\n"},
		{"missing equals", "x 1\n"},
		{"unclosed header", "[a\nx = 1\n"},
		{"unclosed array", "x = [1, 2\n"},
		{"duplicate key", "x = 1\nx = 2\n"},
		{"duplicate table", "[a]\nx = 1\n[a]\ny = 2\n"},
		{"trailing garbage", "x = 1 y = 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil {
				t.Fatalf("Parse succeeded on %q", tt.src)
			}
			if got := errs.ExitCode(err); got != 3 {
				t.Errorf("exit code = %d, want 3: %v", got, err)
			}
		})
	}
}

func TestUnterminatedVariant(t *testing.T) {
	_, err := Parse([]byte("x = \"abc\n"))
	var e *errs.UnterminatedString
	if !errors.As(err, &e) {
		t.Fatalf("error = %v (%T)", err, err)
	}
	if e.Loc.Line != 1 || e.Loc.Col != 5 {
		t.Errorf("loc = %v, want 1:5", e.Loc)
	}
}

func TestSerializeUntouchedIsIdentity(t *testing.T) {
	src := `# header comment
title = "demo"   # trailing

[owner]
name = "x"
dob = 1979-05-27T07:32:00-08:00

[servers]

  [servers.alpha]
  ip = "10.0.0.1"

hosts = [
  "alpha",  # first
  "omega",
]
`
	d := mustParse(t, src)
	if got := string(d.Serialize()); got != src {
		t.Errorf("Serialize changed an untouched document:\n%q", got)
	}
}
