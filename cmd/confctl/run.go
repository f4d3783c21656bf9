package main

import (
	"strings"

	"github.com/confctl/confctl/conffile"
	"github.com/confctl/confctl/errs"
	"github.com/confctl/confctl/format"
	"github.com/confctl/confctl/keypath"
	"github.com/confctl/confctl/nav"
)

// The run functions hold the whole command flow between argument
// validation and output, so tests can drive them without a process.

func resolveFormat(cfg *MainConfig) (format.Format, error) {
	if cfg.File == "" {
		return 0, &errs.MissingFlag{
			Flag: "--file",
			Hint: "pass --file PATH to name the config file",
		}
	}
	inferred, inferredOK := format.FromPath(cfg.File)
	if cfg.FormatStr == "" {
		if !inferredOK {
			return 0, &errs.MissingFlag{
				Flag: "--format",
				Hint: "the file extension does not identify a format; pass --format json|toml",
			}
		}
		return inferred, nil
	}
	explicit, err := format.ParseFormat(cfg.FormatStr)
	if err != nil {
		return 0, &errs.InvalidChoice{
			Flag:     "--format",
			Provided: cfg.FormatStr,
			Valid:    []string{"json", "toml"},
		}
	}
	if inferredOK && explicit != inferred {
		return 0, &errs.ConflictingFlags{
			A:    "--format " + explicit.String(),
			B:    "the " + inferred.Suffix() + " file extension",
			Hint: "drop --format or point --file at a matching file",
		}
	}
	return explicit, nil
}

func parsePath(s string) (keypath.Path, error) {
	p, err := keypath.Parse(s)
	if err != nil {
		detail := err.Error()
		if rest, ok := strings.CutPrefix(detail, keypath.ErrSyntax.Error()+": "); ok {
			detail = rest
		}
		return nil, &errs.InvalidPathSyntax{
			Input:   s,
			Detail:  detail,
			Example: keypath.Example,
		}
	}
	return p, nil
}

func load(cfg *MainConfig) (nav.Document, error) {
	f, err := resolveFormat(cfg)
	if err != nil {
		return nil, err
	}
	return conffile.Load(cfg.File, f)
}

func runRead(cfg *MainConfig, keyPath string) (string, error) {
	p, err := parsePath(keyPath)
	if err != nil {
		return "", err
	}
	doc, err := load(cfg)
	if err != nil {
		return "", err
	}
	return nav.Read(doc, p)
}

// runList lists the root when keyPath is nil; an explicitly empty
// path string is still an empty-path failure.
func runList(cfg *MainConfig, keyPath *string) ([]string, error) {
	var p keypath.Path
	if keyPath != nil {
		if *keyPath == "" {
			return nil, &errs.EmptyPath{}
		}
		var err error
		p, err = parsePath(*keyPath)
		if err != nil {
			return nil, err
		}
	}
	doc, err := load(cfg)
	if err != nil {
		return nil, err
	}
	return nav.List(doc, p)
}

func runSet(cfg *MainConfig, keyPath, value string) error {
	if cfg.Coerce {
		return &errs.UnsupportedOption{
			Option: "--coerce",
			Hint:   "set is strict; write the value in the existing kind",
		}
	}
	p, err := parsePath(keyPath)
	if err != nil {
		return err
	}
	lit, err := nav.Infer(value)
	if err != nil {
		return err
	}
	doc, err := load(cfg)
	if err != nil {
		return err
	}
	if err := nav.Set(doc, p, lit); err != nil {
		return err
	}
	return conffile.Save(doc, cfg.File)
}

func runDelete(cfg *MainConfig, keyPath string) error {
	p, err := parsePath(keyPath)
	if err != nil {
		return err
	}
	doc, err := load(cfg)
	if err != nil {
		return err
	}
	if err := nav.Delete(doc, p); err != nil {
		return err
	}
	return conffile.Save(doc, cfg.File)
}

// splitSetArgs accepts both `set KEY VALUE` and `set KEY=VALUE`.
func splitSetArgs(args []string) (keyPath, value string, err error) {
	switch len(args) {
	case 1:
		k, v, ok := strings.Cut(args[0], "=")
		if !ok || k == "" {
			return "", "", &errs.MissingArgument{
				Name:    "VALUE",
				Example: "confctl --file app.toml set network.timeout=1500",
			}
		}
		return k, v, nil
	case 2:
		return args[0], args[1], nil
	default:
		return "", "", &errs.MissingArgument{
			Name:    "KEY_PATH",
			Example: "confctl --file app.toml set network.timeout 1500",
		}
	}
}
