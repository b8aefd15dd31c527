package stdlib

import (
	"github.com/zhemalb/scheme/internal/environment"
	"github.com/zhemalb/scheme/internal/value"
)

func registerPredicates(env *environment.Environment) {
	define(env, "boolean?", func(args []value.Value) (value.Value, error) {
		return unaryPredicate("boolean?", args, value.Is[*value.Boolean])
	})
	define(env, "number?", func(args []value.Value) (value.Value, error) {
		return unaryPredicate("number?", args, value.Is[value.Number])
	})
	define(env, "symbol?", func(args []value.Value) (value.Value, error) {
		return unaryPredicate("symbol?", args, value.Is[value.Symbol])
	})
	define(env, "pair?", func(args []value.Value) (value.Value, error) {
		return unaryPredicate("pair?", args, value.Is[*value.Pair])
	})
	define(env, "null?", func(args []value.Value) (value.Value, error) {
		return unaryPredicate("null?", args, value.IsNull)
	})
	define(env, "list?", func(args []value.Value) (value.Value, error) {
		return unaryPredicate("list?", args, value.IsProperList)
	})
	define(env, "procedure?", func(args []value.Value) (value.Value, error) {
		return unaryPredicate("procedure?", args, value.Is[value.Procedure])
	})
}
