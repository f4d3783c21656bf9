package main

import (
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	File   string `cli:"name=file desc='path to the config file'"`
	Coerce bool   `cli:"name=coerce desc='coerce the value to the existing kind (reserved)'"`
	Color  string `cli:"name=color desc='colorize errors: yes, no, auto'"`

	// FormatStr holds the raw --format argument; validation happens
	// when the format is resolved against the file extension.
	FormatStr string

	Main *cli.Command
}

func (cfg *MainConfig) formatOpt(_ *cli.Context, a string) (any, error) {
	cfg.FormatStr = a
	return a, nil
}

type ReadConfig struct {
	*MainConfig

	Read *cli.Command
}

type SetConfig struct {
	*MainConfig

	Set *cli.Command
}

type DeleteConfig struct {
	*MainConfig

	Delete *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}
