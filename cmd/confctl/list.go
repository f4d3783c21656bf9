package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: list takes at most one KEY_PATH argument", cli.ErrUsage)
	}
	var keyPath *string
	if len(args) == 1 {
		keyPath = &args[0]
	}
	keys, err := runList(cfg.MainConfig, keyPath)
	if err != nil {
		return fail(cfg.MainConfig, err)
	}
	for _, k := range keys {
		fmt.Fprintln(cc.Out, k)
	}
	return nil
}
