package stdlib

import (
	"github.com/zhemalb/scheme/internal/environment"
	"github.com/zhemalb/scheme/internal/value"
)

// chainCompare returns #t iff pred holds between every adjacent pair of
// args, left-to-right. Zero or one argument is vacuously #t.
func chainCompare(name string, args []value.Value, pred func(a, b int64) bool) (value.Value, error) {
	if len(args) < 2 {
		for _, a := range args {
			if _, err := requireNumber(name, a); err != nil {
				return nil, err
			}
		}
		return value.True(), nil
	}
	prev, err := requireNumber(name, args[0])
	if err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		cur, err := requireNumber(name, a)
		if err != nil {
			return nil, err
		}
		if !pred(prev, cur) {
			return value.False(), nil
		}
		prev = cur
	}
	return value.True(), nil
}

func registerComparison(env *environment.Environment) {
	define(env, "=", func(args []value.Value) (value.Value, error) {
		return chainCompare("=", args, func(a, b int64) bool { return a == b })
	})
	define(env, "<", func(args []value.Value) (value.Value, error) {
		return chainCompare("<", args, func(a, b int64) bool { return a < b })
	})
	define(env, ">", func(args []value.Value) (value.Value, error) {
		return chainCompare(">", args, func(a, b int64) bool { return a > b })
	})
	define(env, "<=", func(args []value.Value) (value.Value, error) {
		return chainCompare("<=", args, func(a, b int64) bool { return a <= b })
	})
	define(env, ">=", func(args []value.Value) (value.Value, error) {
		return chainCompare(">=", args, func(a, b int64) bool { return a >= b })
	})
}
