package main

import (
	"fmt"

	"github.com/jot-format/go-jot/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range inputArgs(args) {
		y, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := encode.Encode(y, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
