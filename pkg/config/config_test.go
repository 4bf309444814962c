package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionArityVariesByFlags(t *testing.T) {
	cases := []struct {
		exitArgs, stateContext bool
		want                   int
	}{
		{false, false, 1},
		{true, false, 2},
		{false, true, 2},
		{true, true, 3},
	}
	for _, c := range cases {
		cfg := New("v1").WithExitArgs(c.exitArgs).WithStateContext(c.stateContext)
		assert.Equal(t, c.want, cfg.TransitionArity())
	}
}

func TestAllFeaturesSetsEveryFlag(t *testing.T) {
	cfg := AllFeatures("v1")
	assert.True(t, cfg.GenerateExitArgs)
	assert.True(t, cfg.GenerateStateContext)
	assert.True(t, cfg.GenerateStateStack)
	assert.True(t, cfg.GenerateChangeState)
	assert.True(t, cfg.GenerateTransitionState)
	assert.Equal(t, 3, cfg.TransitionArity())
}

func TestNewHasEveryFlagFalse(t *testing.T) {
	cfg := New("v1")
	assert.False(t, cfg.GenerateExitArgs)
	assert.Equal(t, 1, cfg.TransitionArity())
}

func TestWithSettersChain(t *testing.T) {
	cfg := New("v1").
		WithExitArgs(true).
		WithStateStack(true).
		WithChangeState(true)
	assert.True(t, cfg.GenerateExitArgs)
	assert.True(t, cfg.GenerateStateStack)
	assert.True(t, cfg.GenerateChangeState)
	assert.False(t, cfg.GenerateStateContext)
}
