package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/confctl/confctl/errs"
)

func del(cfg *DeleteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Delete.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fail(cfg.MainConfig, &errs.MissingArgument{
			Name:    "KEY_PATH",
			Example: "confctl --file app.toml delete servers[0].host",
		})
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: delete takes one KEY_PATH argument", cli.ErrUsage)
	}
	if err := runDelete(cfg.MainConfig, args[0]); err != nil {
		return fail(cfg.MainConfig, err)
	}
	return nil
}
