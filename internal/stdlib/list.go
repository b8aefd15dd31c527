package stdlib

import (
	"github.com/zhemalb/scheme/internal/environment"
	"github.com/zhemalb/scheme/internal/errs"
	"github.com/zhemalb/scheme/internal/value"
)

func registerList(env *environment.Environment) {
	define(env, "cons", func(args []value.Value) (value.Value, error) {
		if err := requireArgsCount("cons", args, 2); err != nil {
			return nil, err
		}
		return value.NewPair(args[0], args[1]), nil
	})
	define(env, "list", func(args []value.Value) (value.Value, error) {
		return value.FromSlice(args), nil
	})
	define(env, "car", func(args []value.Value) (value.Value, error) {
		if err := requireArgsCount("car", args, 1); err != nil {
			return nil, err
		}
		p, err := requireCell("car", args[0])
		if err != nil {
			return nil, err
		}
		return p.First, nil
	})
	define(env, "cdr", func(args []value.Value) (value.Value, error) {
		if err := requireArgsCount("cdr", args, 1); err != nil {
			return nil, err
		}
		p, err := requireCell("cdr", args[0])
		if err != nil {
			return nil, err
		}
		return p.Second, nil
	})
	define(env, "set-car!", func(args []value.Value) (value.Value, error) {
		if err := requireArgsCount("set-car!", args, 2); err != nil {
			return nil, err
		}
		p, err := requireCell("set-car!", args[0])
		if err != nil {
			return nil, err
		}
		p.SetFirst(args[1])
		return nil, nil
	})
	define(env, "set-cdr!", func(args []value.Value) (value.Value, error) {
		if err := requireArgsCount("set-cdr!", args, 2); err != nil {
			return nil, err
		}
		p, err := requireCell("set-cdr!", args[0])
		if err != nil {
			return nil, err
		}
		p.SetSecond(args[1])
		return nil, nil
	})
	define(env, "list-ref", func(args []value.Value) (value.Value, error) {
		if err := requireArgsCount("list-ref", args, 2); err != nil {
			return nil, err
		}
		idx, err := requireIndex("list-ref", args[1])
		if err != nil {
			return nil, err
		}
		cur, err := advance(args[0], idx)
		if err != nil {
			return nil, err
		}
		p, ok := cur.(*value.Pair)
		if !ok {
			return nil, errs.Runtime("list-ref: index out of range")
		}
		return p.First, nil
	})
	define(env, "list-tail", func(args []value.Value) (value.Value, error) {
		if err := requireArgsCount("list-tail", args, 2); err != nil {
			return nil, err
		}
		idx, err := requireIndex("list-tail", args[1])
		if err != nil {
			return nil, err
		}
		cur, err := advance(args[0], idx)
		if err != nil {
			return nil, err
		}
		if value.IsNull(cur) {
			return nil, nil
		}
		if !value.IsProperList(cur) {
			return nil, errs.Runtime("list-tail: expected a proper list")
		}
		return cur, nil
	})
}
