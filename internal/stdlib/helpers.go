// Package stdlib registers the built-in procedure library (predicates,
// booleans, arithmetic, comparison, pairs and lists) into a root
// environment.
package stdlib

import (
	"github.com/zhemalb/scheme/internal/environment"
	"github.com/zhemalb/scheme/internal/errs"
	"github.com/zhemalb/scheme/internal/eval"
	"github.com/zhemalb/scheme/internal/value"
)

func define(env *environment.Environment, name string, fn eval.BuiltinFn) {
	env.Define(value.Symbol(name), &eval.Builtin{Name: name, Fn: fn})
}

func requireArgsCount(name string, args []value.Value, n int) error {
	if len(args) != n {
		return errs.Runtime("%s: expected %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func requireAtLeast(name string, args []value.Value, n int) error {
	if len(args) < n {
		return errs.Runtime("%s: expected at least %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func requireNumber(name string, v value.Value) (int64, error) {
	n, ok := v.(value.Number)
	if !ok {
		return 0, errs.Runtime("%s: expected a number", name)
	}
	return int64(n), nil
}

func requireCell(name string, v value.Value) (*value.Pair, error) {
	p, ok := v.(*value.Pair)
	if !ok {
		return nil, errs.Runtime("%s: expected a pair", name)
	}
	return p, nil
}

// requireIndex validates that v is a non-negative integer index.
func requireIndex(name string, v value.Value) (int64, error) {
	n, ok := v.(value.Number)
	if !ok || int64(n) < 0 {
		return 0, errs.Runtime("%s: expected a non-negative integer index", name)
	}
	return int64(n), nil
}

// advance walks k pairs down list, returning the resulting tail. Reaching
// a non-pair (including Null) before k steps is a Runtime error; advance
// does not check the returned tail, so callers decide how to treat it.
func advance(list value.Value, k int64) (value.Value, error) {
	cur := list
	for i := int64(0); i < k; i++ {
		p, ok := cur.(*value.Pair)
		if !ok {
			return nil, errs.Runtime("index out of range")
		}
		cur = p.Second
	}
	return cur, nil
}

func unaryPredicate(name string, args []value.Value, pred func(value.Value) bool) (value.Value, error) {
	if err := requireArgsCount(name, args, 1); err != nil {
		return nil, err
	}
	return value.Bool(pred(args[0])), nil
}
