package stdlib

import "github.com/zhemalb/scheme/internal/environment"

// Register installs the full standard library into env: predicates,
// booleans, arithmetic, comparison, and pair/list procedures.
func Register(env *environment.Environment) {
	registerPredicates(env)
	registerBoolean(env)
	registerArithmetic(env)
	registerComparison(env)
	registerList(env)
}
