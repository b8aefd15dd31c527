package eval

import (
	"github.com/zhemalb/scheme/internal/environment"
	"github.com/zhemalb/scheme/internal/errs"
	"github.com/zhemalb/scheme/internal/value"
)

// BuiltinFn is a host callable: invoked with the already-evaluated
// argument vector.
type BuiltinFn func(args []value.Value) (value.Value, error)

// Builtin wraps a host function as a Procedure.
type Builtin struct {
	value.ProcedureMarker
	Name string
	Fn   BuiltinFn
}

// Lambda is a user-defined procedure: a parameter list, an ordered body
// of expressions, and the environment captured at definition time.
type Lambda struct {
	value.ProcedureMarker
	Params []value.Symbol
	Body   []value.Value
	Env    *environment.Environment
}

// Apply creates a new environment parented on the lambda's captured
// environment (not the call site's), binds each parameter to its
// argument, evaluates the body in order, and returns the last result.
// This is what enforces lexical scoping.
func (l *Lambda) Apply(args []value.Value, ev *Evaluator) (value.Value, error) {
	if len(args) != len(l.Params) {
		return nil, errs.Runtime("lambda: expected %d arguments, got %d", len(l.Params), len(args))
	}
	callEnv := l.Env.NewChild()
	for i, p := range l.Params {
		callEnv.Define(p, args[i])
	}
	var result value.Value
	for _, expr := range l.Body {
		r, err := ev.Eval(expr, callEnv)
		if err != nil {
			return nil, err
		}
		result = r
	}
	return result, nil
}
