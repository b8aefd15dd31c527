// Package scheme embeds a tree-walking interpreter for a small
// Scheme-subset language. An Interpreter owns a root environment
// populated with the standard library; Evaluate tokenizes, reads exactly
// one expression, evaluates it, and returns its canonical printed form.
//
// An Interpreter is not safe for concurrent use by multiple goroutines:
// all Value graphs, the root environment, and the special-form registry
// belong to a single interpreter instance.
package scheme

import (
	"strings"

	"github.com/zhemalb/scheme/internal/environment"
	"github.com/zhemalb/scheme/internal/eval"
	"github.com/zhemalb/scheme/internal/printer"
	"github.com/zhemalb/scheme/internal/reader"
	"github.com/zhemalb/scheme/internal/stdlib"
	"github.com/zhemalb/scheme/internal/token"
)

// Interpreter ties the tokenizer, reader, evaluator, and standard
// library together around one root environment.
type Interpreter struct {
	root *environment.Environment
	ev   *eval.Evaluator
}

// New constructs an Interpreter with a fresh root environment populated
// with the standard library.
func New() *Interpreter {
	root := environment.New()
	stdlib.Register(root)
	return &Interpreter{root: root, ev: eval.New()}
}

// Evaluate tokenizes source, reads exactly one expression, evaluates it
// against the root environment, and returns its printed form. Syntax,
// Name, and Runtime errors (see package errs) escape to the caller.
func (i *Interpreter) Evaluate(source string) (string, error) {
	t := token.New(strings.NewReader(source))
	expr, err := reader.Read(t)
	if err != nil {
		return "", err
	}
	result, err := i.ev.Eval(expr, i.root)
	if err != nil {
		return "", err
	}
	return printer.Print(result), nil
}

// Close releases the root environment, clearing its bindings and parent
// pointer to break any lambda/environment reference cycle formed by
// closures captured in user definitions.
func (i *Interpreter) Close() {
	if i.root != nil {
		i.root.Clear()
	}
}
