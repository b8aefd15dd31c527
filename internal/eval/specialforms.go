package eval

import (
	"github.com/zhemalb/scheme/internal/environment"
	"github.com/zhemalb/scheme/internal/errs"
	"github.com/zhemalb/scheme/internal/value"
)

// StandardForms returns the registry of built-in special forms: quote,
// if, lambda, define, set!, and, or.
func StandardForms() *Registry {
	r := NewRegistry()
	r.Register("quote", quoteForm)
	r.Register("if", ifForm)
	r.Register("lambda", lambdaForm)
	r.Register("define", defineForm)
	r.Register("set!", setForm)
	r.Register("and", andForm)
	r.Register("or", orForm)
	return r
}

// argsOrSyntax flattens a special form's argument tail into a slice,
// rejecting an improper tail as Syntax the same way every form does.
func argsOrSyntax(tail value.Value) ([]value.Value, error) {
	elems, ok := value.ToSlice(tail)
	if !ok {
		return nil, errs.Syntax("malformed argument list")
	}
	return elems, nil
}

func quoteForm(tail value.Value, _ *environment.Environment, _ *Evaluator) (value.Value, error) {
	vec, err := argsOrSyntax(tail)
	if err != nil {
		return nil, err
	}
	if len(vec) != 1 {
		return nil, errs.Syntax("quote: expected exactly 1 argument, got %d", len(vec))
	}
	return vec[0], nil
}

func ifForm(tail value.Value, env *environment.Environment, ev *Evaluator) (value.Value, error) {
	vec, err := argsOrSyntax(tail)
	if err != nil {
		return nil, err
	}
	if len(vec) != 2 && len(vec) != 3 {
		return nil, errs.Syntax("if: expected 2 or 3 arguments, got %d", len(vec))
	}
	cond, err := ev.Eval(vec[0], env)
	if err != nil {
		return nil, err
	}
	if !value.IsFalse(cond) {
		return ev.Eval(vec[1], env)
	}
	if len(vec) == 3 {
		return ev.Eval(vec[2], env)
	}
	return nil, nil
}

func parseParamNames(paramsObj value.Value) ([]value.Symbol, error) {
	var params []value.Symbol
	cur := paramsObj
	for !value.IsNull(cur) {
		p, ok := cur.(*value.Pair)
		if !ok {
			return nil, errs.Syntax("malformed parameter list")
		}
		sym, ok := p.First.(value.Symbol)
		if !ok {
			return nil, errs.Syntax("lambda parameter must be a symbol")
		}
		params = append(params, sym)
		cur = p.Second
	}
	return params, nil
}

func lambdaForm(tail value.Value, env *environment.Environment, _ *Evaluator) (value.Value, error) {
	vec, err := argsOrSyntax(tail)
	if err != nil {
		return nil, err
	}
	if len(vec) < 2 {
		return nil, errs.Syntax("lambda: expected a parameter list and at least one body expression")
	}
	params, err := parseParamNames(vec[0])
	if err != nil {
		return nil, err
	}
	body := append([]value.Value(nil), vec[1:]...)
	return &Lambda{Params: params, Body: body, Env: env}, nil
}

func defineForm(tail value.Value, env *environment.Environment, ev *Evaluator) (value.Value, error) {
	vec, err := argsOrSyntax(tail)
	if err != nil {
		return nil, err
	}
	if len(vec) < 2 {
		return nil, errs.Syntax("define: expected a name and a value or body")
	}

	if name, ok := vec[0].(value.Symbol); ok {
		if len(vec) != 2 {
			return nil, errs.Syntax("define: (define name expr) takes exactly one expression")
		}
		val, err := ev.Eval(vec[1], env)
		if err != nil {
			return nil, err
		}
		env.Define(name, val)
		return nil, nil
	}

	signature, ok := vec[0].(*value.Pair)
	if !ok {
		return nil, errs.Syntax("define: head must be a symbol or (name params...)")
	}
	name, ok := signature.First.(value.Symbol)
	if !ok {
		return nil, errs.Syntax("define: procedure name must be a symbol")
	}
	params, err := parseParamNames(signature.Second)
	if err != nil {
		return nil, err
	}
	body := append([]value.Value(nil), vec[1:]...)
	env.Define(name, &Lambda{Params: params, Body: body, Env: env})
	return nil, nil
}

func setForm(tail value.Value, env *environment.Environment, ev *Evaluator) (value.Value, error) {
	vec, err := argsOrSyntax(tail)
	if err != nil {
		return nil, err
	}
	if len(vec) != 2 {
		return nil, errs.Syntax("set!: expected exactly 2 arguments, got %d", len(vec))
	}
	name, ok := vec[0].(value.Symbol)
	if !ok {
		return nil, errs.Syntax("set!: first argument must be a symbol")
	}
	val, err := ev.Eval(vec[1], env)
	if err != nil {
		return nil, err
	}
	if err := env.Set(name, val); err != nil {
		return nil, err
	}
	return nil, nil
}

func andForm(tail value.Value, env *environment.Environment, ev *Evaluator) (value.Value, error) {
	vec, err := argsOrSyntax(tail)
	if err != nil {
		return nil, err
	}
	if len(vec) == 0 {
		return value.True(), nil
	}
	var last value.Value
	for _, expr := range vec {
		v, err := ev.Eval(expr, env)
		if err != nil {
			return nil, err
		}
		last = v
		if value.IsFalse(last) {
			return value.False(), nil
		}
	}
	return last, nil
}

func orForm(tail value.Value, env *environment.Environment, ev *Evaluator) (value.Value, error) {
	vec, err := argsOrSyntax(tail)
	if err != nil {
		return nil, err
	}
	var last value.Value = value.False()
	for _, expr := range vec {
		v, err := ev.Eval(expr, env)
		if err != nil {
			return nil, err
		}
		last = v
		if !value.IsFalse(last) {
			return last, nil
		}
	}
	return last, nil
}
