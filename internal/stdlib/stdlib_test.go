package stdlib_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhemalb/scheme/internal/environment"
	"github.com/zhemalb/scheme/internal/errs"
	"github.com/zhemalb/scheme/internal/eval"
	"github.com/zhemalb/scheme/internal/printer"
	"github.com/zhemalb/scheme/internal/reader"
	"github.com/zhemalb/scheme/internal/stdlib"
	"github.com/zhemalb/scheme/internal/token"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	env := environment.New()
	stdlib.Register(env)
	ev := eval.New()
	expr, err := reader.Read(token.New(strings.NewReader(src)))
	require.NoError(t, err)
	v, err := ev.Eval(expr, env)
	if err != nil {
		return "", err
	}
	return printer.Print(v), nil
}

func mustRun(t *testing.T, src string) string {
	t.Helper()
	out, err := run(t, src)
	require.NoError(t, err)
	return out
}

func TestArithmetic(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(+ 1 29)", "30"},
		{"(- 10 2 3)", "5"},
		{"(/ 20 4)", "5"},
		{"(* )", "1"},
		{"(+ )", "0"},
		{"(- 5)", "-5"},
		{"(abs -7)", "7"},
		{"(max 1 9 3)", "9"},
		{"(min 1 9 3)", "1"},
		{"(/ 7 2)", "3"},
		{"(/ -7 2)", "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, mustRun(t, tt.src))
		})
	}
}

func TestArithmeticErrors(t *testing.T) {
	tests := []string{"(- )", "(/ 5)", "(/ 1 0)"}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, err := run(t, src)
			require.Error(t, err)
			assert.True(t, errs.IsRuntime(err))
		})
	}
}

func TestComparison(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(< 1 2 3)", "#t"},
		{"(< 1 2 2)", "#f"},
		{"(=)", "#t"},
		{"(= 1)", "#t"},
		{"(<= 1 1 2)", "#t"},
		{"(>= 3 2 2)", "#t"},
		{"(> 3 2 1)", "#t"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, mustRun(t, tt.src))
		})
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(number? 1)", "#t"},
		{"(number? (quote x))", "#f"},
		{"(symbol? (quote x))", "#t"},
		{"(pair? (cons 1 2))", "#t"},
		{"(pair? (quote ()))", "#f"},
		{"(null? (quote ()))", "#t"},
		{"(null? 0)", "#f"},
		{"(list? (quote ()))", "#t"},
		{"(list? (quote (1 2)))", "#t"},
		{"(list? (cons 1 2))", "#f"},
		{"(boolean? #t)", "#t"},
		{"(not #f)", "#t"},
		{"(not 0)", "#f"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, mustRun(t, tt.src))
		})
	}
}

func TestPairsAndLists(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(cons 1 2)", "(1 . 2)"},
		{"(car (cons 1 2))", "1"},
		{"(cdr (cons 1 2))", "2"},
		{"(list 1 2 3)", "(1 2 3)"},
		{"(list)", "()"},
		{"(list-ref (list 1 2 3) 1)", "2"},
		{"(list-tail (list 1 2 3) 2)", "(3)"},
		{"(list-tail (list 1 2 3) 3)", "()"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, mustRun(t, tt.src))
		})
	}
}

func TestSetCarMutatesThroughAliases(t *testing.T) {
	env := environment.New()
	stdlib.Register(env)
	ev := eval.New()

	src := `(define p (cons 1 2))`
	expr, err := reader.Read(token.New(strings.NewReader(src)))
	require.NoError(t, err)
	_, err = ev.Eval(expr, env)
	require.NoError(t, err)

	expr, err = reader.Read(token.New(strings.NewReader(`(set-car! p 99)`)))
	require.NoError(t, err)
	_, err = ev.Eval(expr, env)
	require.NoError(t, err)

	expr, err = reader.Read(token.New(strings.NewReader(`p`)))
	require.NoError(t, err)
	v, err := ev.Eval(expr, env)
	require.NoError(t, err)
	assert.Equal(t, "(99 . 2)", printer.Print(v))
}

func TestCarOfNonPairIsRuntimeError(t *testing.T) {
	_, err := run(t, "(car 1)")
	require.Error(t, err)
	assert.True(t, errs.IsRuntime(err))
}

func TestCarArityErrorIsRuntime(t *testing.T) {
	_, err := run(t, "(car)")
	require.Error(t, err)
	assert.True(t, errs.IsRuntime(err))
}

func TestListRefOutOfRangeIsRuntimeError(t *testing.T) {
	_, err := run(t, "(list-ref (list 1 2) 5)")
	require.Error(t, err)
	assert.True(t, errs.IsRuntime(err))
}

func TestListTailOnImproperListIsRuntimeError(t *testing.T) {
	_, err := run(t, "(list-tail (cons 1 2) 2)")
	require.Error(t, err)
	assert.True(t, errs.IsRuntime(err))
}
