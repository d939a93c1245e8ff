package main

import (
	"fmt"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/eval"

	"github.com/scott-cotton/cli"
)

func jotEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: eval requires -e <expr>", cli.ErrUsage)
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range inputArgs(args) {
		y, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		v, err := eval.Eval(y, cfg.Expr)
		if err != nil {
			return fmt.Errorf("error evaluating against %s: %w", file, err)
		}
		res, err := eval.FromAny(v)
		if err != nil {
			// expression results outside the value model print raw
			fmt.Fprintf(cc.Out, "%v\n", v)
			continue
		}
		if err := encode.Encode(res, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
