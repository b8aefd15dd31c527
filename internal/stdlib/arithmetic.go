package stdlib

import (
	"github.com/zhemalb/scheme/internal/environment"
	"github.com/zhemalb/scheme/internal/errs"
	"github.com/zhemalb/scheme/internal/value"
)

// numericFold left-folds fn over args, starting from the first argument,
// and returns identity when args is empty. It is used by + and *; - and /
// have their own at-least-one-argument handling below.
func numericFold(name string, args []value.Value, identity int64, fn func(a, b int64) int64) (value.Value, error) {
	acc := identity
	for i, a := range args {
		n, err := requireNumber(name, a)
		if err != nil {
			return nil, err
		}
		if i == 0 && len(args) > 0 {
			acc = n
			continue
		}
		acc = fn(acc, n)
	}
	return value.Number(acc), nil
}

func registerArithmetic(env *environment.Environment) {
	define(env, "+", func(args []value.Value) (value.Value, error) {
		return numericFold("+", args, 0, func(a, b int64) int64 { return a + b })
	})
	define(env, "*", func(args []value.Value) (value.Value, error) {
		return numericFold("*", args, 1, func(a, b int64) int64 { return a * b })
	})
	define(env, "-", func(args []value.Value) (value.Value, error) {
		if err := requireAtLeast("-", args, 1); err != nil {
			return nil, err
		}
		v, err := requireNumber("-", args[0])
		if err != nil {
			return nil, err
		}
		if len(args) == 1 {
			return value.Number(-v), nil
		}
		for _, a := range args[1:] {
			n, err := requireNumber("-", a)
			if err != nil {
				return nil, err
			}
			v -= n
		}
		return value.Number(v), nil
	})
	define(env, "/", func(args []value.Value) (value.Value, error) {
		if len(args) < 2 {
			return nil, errs.Runtime("/: expected at least 2 arguments, got %d", len(args))
		}
		v, err := requireNumber("/", args[0])
		if err != nil {
			return nil, err
		}
		for _, a := range args[1:] {
			n, err := requireNumber("/", a)
			if err != nil {
				return nil, err
			}
			if n == 0 {
				return nil, errs.Runtime("/: division by zero")
			}
			v /= n // truncates toward zero, matching Go's integer division
		}
		return value.Number(v), nil
	})
	define(env, "abs", func(args []value.Value) (value.Value, error) {
		if err := requireArgsCount("abs", args, 1); err != nil {
			return nil, err
		}
		v, err := requireNumber("abs", args[0])
		if err != nil {
			return nil, err
		}
		if v < 0 {
			v = -v
		}
		return value.Number(v), nil
	})
	define(env, "max", func(args []value.Value) (value.Value, error) {
		return extremum("max", args, func(a, b int64) bool { return a > b })
	})
	define(env, "min", func(args []value.Value) (value.Value, error) {
		return extremum("min", args, func(a, b int64) bool { return a < b })
	})
}

func extremum(name string, args []value.Value, better func(a, b int64) bool) (value.Value, error) {
	if err := requireAtLeast(name, args, 1); err != nil {
		return nil, err
	}
	best, err := requireNumber(name, args[0])
	if err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		n, err := requireNumber(name, a)
		if err != nil {
			return nil, err
		}
		if better(n, best) {
			best = n
		}
	}
	return value.Number(best), nil
}
