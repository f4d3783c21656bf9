package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/confctl/confctl/errs"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	hintDim    = color.New(color.Faint).SprintFunc()
)

// fail renders err to stderr and maps it to the taxonomy exit code.
func fail(cfg *MainConfig, err error) error {
	renderError(os.Stderr, err, useColor(cfg.Color))
	return cli.ExitCodeErr(errs.ExitCode(err))
}

func useColor(mode string) bool {
	switch mode {
	case "yes":
		return true
	case "no":
		return false
	default:
		return isatty.IsTerminal(os.Stderr.Fd())
	}
}

// renderError prints one line per error, except parse errors whose
// caret snippet follows on its own lines. Hints after the final
// period render dimmed.
func renderError(w io.Writer, err error, colorize bool) {
	msg := err.Error()
	if !colorize {
		fmt.Fprintf(w, "error: %s\n", msg)
		return
	}
	head, snippet, _ := strings.Cut(msg, "\n")
	fmt.Fprintf(w, "%s %s\n", errorLabel("error:"), head)
	if snippet != "" {
		fmt.Fprintln(w, hintDim(snippet))
	}
}
