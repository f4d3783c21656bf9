package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 2 {
		return fmt.Errorf("%w: set takes KEY_PATH VALUE or KEY_PATH=VALUE", cli.ErrUsage)
	}
	keyPath, value, err := splitSetArgs(args)
	if err != nil {
		return fail(cfg.MainConfig, err)
	}
	if err := runSet(cfg.MainConfig, keyPath, value); err != nil {
		return fail(cfg.MainConfig, err)
	}
	return nil
}
