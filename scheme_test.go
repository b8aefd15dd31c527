package scheme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhemalb/scheme"
	"github.com/zhemalb/scheme/internal/errs"
)

func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"positive literal", "5", "5"},
		{"negative literal with spaces", " -90 ", "-90"},
		{"addition", "(+ 1 29)", "30"},
		{"left-folded subtraction", "(- 10 2 3)", "5"},
		{"division", "(/ 20 4)", "5"},
		{"empty product", "(* )", "1"},
		{"empty sum", "(+ )", "0"},
		{"chained less-than true", "(< 1 2 3)", "#t"},
		{"chained less-than false", "(< 1 2 2)", "#f"},
		{"vacuous equality", "(=)", "#t"},
		{"quote macro", "'(1 2)", "(1 2)"},
		{"quote of dotted pair", "(quote (-2 . 3))", "(-2 . 3)"},
		{"lambda application", "((lambda (x y) (+ x y)) 3 4)", "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interp := scheme.New()
			defer interp.Close()
			got, err := interp.Evaluate(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefineThenLookupThenSetBangSharedEnvironment(t *testing.T) {
	interp := scheme.New()
	defer interp.Close()

	_, err := interp.Evaluate("(define x (+ 1 2))")
	require.NoError(t, err)

	got, err := interp.Evaluate("x")
	require.NoError(t, err)
	assert.Equal(t, "3", got)

	_, err = interp.Evaluate("(set! x 6)")
	require.NoError(t, err)

	got, err = interp.Evaluate("x")
	require.NoError(t, err)
	assert.Equal(t, "6", got)
}

func TestClosureCapturesDefiningEnvironment(t *testing.T) {
	interp := scheme.New()
	defer interp.Close()

	_, err := interp.Evaluate("(define add (lambda (x) (lambda (y) (+ x y))))")
	require.NoError(t, err)

	got, err := interp.Evaluate("((add 10) 5)")
	require.NoError(t, err)
	assert.Equal(t, "15", got)
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		checker func(error) bool
	}{
		{"unbound name", "x", errs.IsName},
		{"car of a non-pair", "(car 1)", errs.IsRuntime},
		{"car with no arguments", "(car)", errs.IsRuntime},
		{"unclosed list", "(", errs.IsSyntax},
		{"malformed dotted pair", "(1 . 2 3)", errs.IsSyntax},
		{"two top-level expressions", "- 5", errs.IsSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interp := scheme.New()
			defer interp.Close()
			_, err := interp.Evaluate(tt.src)
			require.Error(t, err)
			assert.True(t, tt.checker(err))
		})
	}
}

func TestCloseBreaksClosureEnvironmentCycle(t *testing.T) {
	interp := scheme.New()
	_, err := interp.Evaluate("(define self (lambda () self))")
	require.NoError(t, err)
	interp.Close()

	_, err = interp.Evaluate("self")
	assert.Error(t, err, "after Close the root environment's bindings are gone")
}
