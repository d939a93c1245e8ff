package main

import (
	"fmt"

	"github.com/jot-format/go-jot"
	"github.com/jot-format/go-jot/encode"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 args, got %v", cli.ErrUsage, args)
	}
	doc, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	patchBytes, err := readInput(cc, args[1])
	if err != nil {
		return err
	}
	res, err := jot.ApplyPatch(doc, patchBytes)
	if err != nil {
		return fmt.Errorf("error patching %s with %s: %w", args[0], args[1], err)
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
