package stdlib

import (
	"github.com/zhemalb/scheme/internal/environment"
	"github.com/zhemalb/scheme/internal/value"
)

func registerBoolean(env *environment.Environment) {
	env.Define(value.Symbol("#t"), value.True())
	env.Define(value.Symbol("#f"), value.False())

	define(env, "not", func(args []value.Value) (value.Value, error) {
		if err := requireArgsCount("not", args, 1); err != nil {
			return nil, err
		}
		return value.Bool(value.IsFalse(args[0])), nil
	})
}
