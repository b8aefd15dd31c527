// Package eval implements the tree-walking evaluator: special-form
// dispatch, symbol lookup, procedure application, and the registry of
// special forms shipped with the interpreter.
package eval

import (
	"github.com/zhemalb/scheme/internal/environment"
	"github.com/zhemalb/scheme/internal/errs"
	"github.com/zhemalb/scheme/internal/value"
)

// SpecialForm receives the unevaluated argument tail (the Second of the
// applied pair), the current environment, and the evaluator, and decides
// for itself what (if anything) to evaluate.
type SpecialForm func(tail value.Value, env *environment.Environment, ev *Evaluator) (value.Value, error)

// Registry maps special-form names to their handlers.
type Registry struct {
	forms map[value.Symbol]SpecialForm
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{forms: make(map[value.Symbol]SpecialForm)}
}

// Register installs form under name, replacing any existing handler.
func (r *Registry) Register(name value.Symbol, form SpecialForm) {
	r.forms[name] = form
}

// Lookup returns the handler registered for name, if any.
func (r *Registry) Lookup(name value.Symbol) (SpecialForm, bool) {
	form, ok := r.forms[name]
	return form, ok
}

// Evaluator dispatches expressions against an environment, consulting
// its special-form registry before considering procedure application.
type Evaluator struct {
	forms *Registry
}

// New returns an Evaluator registered with the standard special forms
// (quote, if, lambda, define, set!, and, or).
func New() *Evaluator {
	return &Evaluator{forms: StandardForms()}
}

// NewWithForms returns an Evaluator using a caller-supplied registry,
// for tests that want to exercise a subset of special forms.
func NewWithForms(forms *Registry) *Evaluator {
	return &Evaluator{forms: forms}
}

// Eval evaluates expr against env.
//
//  1. Null, or an empty environment, is a Runtime error.
//  2. Number and Boolean are self-evaluating.
//  3. Symbol resolves via env.Lookup.
//  4. Pair is a combination: special-form dispatch if the head is a
//     registered symbol, otherwise left-to-right strict evaluation of
//     head and arguments followed by procedure application.
func (ev *Evaluator) Eval(expr value.Value, env *environment.Environment) (value.Value, error) {
	if env == nil {
		return nil, errs.Runtime("cannot evaluate with an empty environment")
	}
	if value.IsNull(expr) {
		return nil, errs.Runtime("cannot evaluate empty list")
	}

	switch e := expr.(type) {
	case value.Number:
		return e, nil
	case *value.Boolean:
		return e, nil
	case value.Symbol:
		return env.Lookup(e)
	case *value.Pair:
		return ev.evalCombination(e, env)
	default:
		return nil, errs.Runtime("cannot evaluate value of type %T", expr)
	}
}

func (ev *Evaluator) evalCombination(e *value.Pair, env *environment.Environment) (value.Value, error) {
	head := e.First
	tail := e.Second

	if sym, ok := head.(value.Symbol); ok {
		if form, ok := ev.forms.Lookup(sym); ok {
			return form(tail, env, ev)
		}
	}

	procVal, err := ev.Eval(head, env)
	if err != nil {
		return nil, err
	}
	proc, ok := procVal.(value.Procedure)
	if !ok {
		return nil, errs.Runtime("not a procedure")
	}

	args, err := ev.evalArgs(tail, env)
	if err != nil {
		return nil, err
	}
	return ev.Apply(proc, args)
}

func (ev *Evaluator) evalArgs(tail value.Value, env *environment.Environment) ([]value.Value, error) {
	var args []value.Value
	cur := tail
	for !value.IsNull(cur) {
		p, ok := cur.(*value.Pair)
		if !ok {
			return nil, errs.Runtime("expected a proper list of arguments")
		}
		v, err := ev.Eval(p.First, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
		cur = p.Second
	}
	return args, nil
}

// Apply invokes proc with args, dispatching to the host function for a
// Builtin or creating a fresh call frame for a Lambda.
func (ev *Evaluator) Apply(proc value.Procedure, args []value.Value) (value.Value, error) {
	switch p := proc.(type) {
	case *Builtin:
		return p.Fn(args)
	case *Lambda:
		return p.Apply(args, ev)
	default:
		return nil, errs.Runtime("unknown procedure type")
	}
}
