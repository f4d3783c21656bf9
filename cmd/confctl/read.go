package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/confctl/confctl/errs"
)

func read(cfg *ReadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Read.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fail(cfg.MainConfig, &errs.MissingArgument{
			Name:    "KEY_PATH",
			Example: "confctl --file app.json read network.timeout",
		})
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: read takes one KEY_PATH argument", cli.ErrUsage)
	}
	out, err := runRead(cfg.MainConfig, args[0])
	if err != nil {
		return fail(cfg.MainConfig, err)
	}
	fmt.Fprintln(cc.Out, out)
	return nil
}
