package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhemalb/scheme/internal/environment"
	"github.com/zhemalb/scheme/internal/errs"
	"github.com/zhemalb/scheme/internal/value"
)

func TestDefineAndLookup(t *testing.T) {
	env := environment.New()
	env.Define("x", value.Number(1))

	v, err := env.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestLookupUnboundIsNameError(t *testing.T) {
	env := environment.New()
	_, err := env.Lookup("missing")
	require.Error(t, err)
	assert.True(t, errs.IsName(err))
}

func TestChildShadowsParent(t *testing.T) {
	parent := environment.New()
	parent.Define("x", value.Number(1))

	child := parent.NewChild()
	child.Define("x", value.Number(2))

	v, err := child.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(2), v)

	v, err = parent.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestChildInheritsParentBindings(t *testing.T) {
	parent := environment.New()
	parent.Define("x", value.Number(1))
	child := parent.NewChild()

	v, err := child.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestSetWalksToDefiningFrame(t *testing.T) {
	parent := environment.New()
	parent.Define("x", value.Number(1))
	child := parent.NewChild()

	require.NoError(t, child.Set("x", value.Number(99)))

	v, err := parent.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(99), v, "set! must mutate the existing frame, not create a new one")
}

func TestSetUnboundIsNameError(t *testing.T) {
	env := environment.New()
	err := env.Set("missing", value.Number(1))
	require.Error(t, err)
	assert.True(t, errs.IsName(err))
}

func TestClearBreaksChain(t *testing.T) {
	parent := environment.New()
	parent.Define("x", value.Number(1))
	child := parent.NewChild()

	parent.Clear()

	_, err := child.Lookup("x")
	assert.Error(t, err, "clearing the parent must drop its bindings out of the chain")
}
