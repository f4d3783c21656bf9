package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "format",
		Description: "format of the config file: json/j, toml/t",
		Type:        cli.NamedFuncOpt(cfg.formatOpt, "(format)"),
	})

	return cli.NewCommandAt(&cfg.Main, "confctl").
		WithSynopsis("confctl --file PATH [--format json|toml] <read|set|delete|list> KEY_PATH [VALUE]").
		WithDescription("confctl reads and edits JSON and TOML config files by key path.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return confctlMain(cfg, cc, args)
		}).
		WithSubs(
			ReadCommand(cfg),
			SetCommand(cfg),
			DeleteCommand(cfg),
			ListCommand(cfg))
}

func confctlMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func ReadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReadConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("read").
		WithAliases("get").
		WithSynopsis("read KEY_PATH").
		WithDescription("print the value at KEY_PATH").
		WithRun(func(cc *cli.Context, args []string) error {
			return read(cfg, cc, args)
		})
	cfg.Read = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("set").
		WithSynopsis("set KEY_PATH VALUE  (or  set KEY_PATH=VALUE)").
		WithDescription("replace the value at KEY_PATH, keeping its kind").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func DeleteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DeleteConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("delete").
		WithAliases("del").
		WithSynopsis("delete KEY_PATH").
		WithDescription("remove the entry at KEY_PATH").
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
	cfg.Delete = cmd
	return cmd
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("list").
		WithAliases("ls").
		WithSynopsis("list [KEY_PATH]").
		WithDescription("list the keys or indices under KEY_PATH (the root when omitted)").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
	cfg.List = cmd
	return cmd
}
