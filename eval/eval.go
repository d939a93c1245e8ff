package eval

import (
	"fmt"

	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the expression environment: the document's fields as Go values.
type Env map[string]any

// NodeEnv builds an expression environment from a document's top-level
// object fields.
func NodeEnv(node *ir.Node) Env {
	if node == nil || node.Type != ir.ObjectType {
		return Env{}
	}
	res, _ := ToAny(node).(map[string]any)
	return res
}

// Eval compiles and runs an expr-lang expression against the document.
func Eval(node *ir.Node, src string) (any, error) {
	env := NodeEnv(node)
	if debug.Eval() {
		debug.Logf("eval %q against %v\n", src, map[string]any(env))
	}
	program, err := expr.Compile(src, expr.Env(map[string]any(env)), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	return vm.Run(program, map[string]any(env))
}

// EvalBool runs an expression expected to produce a boolean.
func EvalBool(node *ir.Node, src string) (bool, error) {
	v, err := Eval(node, src)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("expression %q evaluated to %T, not bool", src, v)
	}
	return b, nil
}
