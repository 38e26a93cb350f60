// Package formula compiles a slope expression y' = f(x,y) into a function
// that can be evaluated repeatedly with new variable bindings.
package formula

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Error reports a formula that failed to compile or evaluate.
type Error struct {
	Formula string
	Wrapped error
}

func (e *Error) Error() string {
	return fmt.Sprintf("formula %q: %v", e.Formula, e.Wrapped)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Formula is a compiled slope expression over the variables x and y.
// It is not safe for concurrent use: Eval mutates the shared environment.
type Formula struct {
	src     string
	program *vm.Program
	env     map[string]any
}

// baseEnv returns the evaluation environment: the two free variables plus
// the usual math helpers. Exponentiation is built into the expression
// language (^ and **), pow is kept as an alias.
func baseEnv() map[string]any {
	return map[string]any{
		"x":    0.0,
		"y":    0.0,
		"pi":   math.Pi,
		"e":    math.E,
		"sin":  math.Sin,
		"cos":  math.Cos,
		"tan":  math.Tan,
		"asin": math.Asin,
		"acos": math.Acos,
		"atan": math.Atan,
		"exp":  math.Exp,
		"log":  math.Log,
		"sqrt": math.Sqrt,
		"abs":  math.Abs,
		"pow":  math.Pow,
	}
}

// Compile parses and type-checks the expression. Unknown identifiers are
// compile errors; evaluation errors surface on the first Eval.
func Compile(src string) (*Formula, error) {
	env := baseEnv()
	program, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return nil, &Error{Formula: src, Wrapped: err}
	}
	return &Formula{src: src, program: program, env: env}, nil
}

// Source returns the original expression text.
func (f *Formula) Source() string {
	return f.src
}

// Eval rebinds x and y and evaluates the compiled expression.
func (f *Formula) Eval(x, y float64) (float64, error) {
	f.env["x"] = x
	f.env["y"] = y
	out, err := vm.Run(f.program, f.env)
	if err != nil {
		return 0, &Error{Formula: f.src, Wrapped: err}
	}
	v, ok := toFloat(out)
	if !ok {
		return 0, &Error{Formula: f.src, Wrapped: fmt.Errorf("result is %T, want number", out)}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &Error{Formula: f.src, Wrapped: fmt.Errorf("result is %v at x=%g y=%g", v, x, y)}
	}
	return v, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
