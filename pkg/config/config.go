// Package config holds the emitter's construction-time inputs: the
// compiler-version banner string and the five booleans that shape the
// generated machinery (spec §6).
package config

// EmitterConfig controls the shape of the machinery the emitter produces.
// The zero value has every Generate* flag false; use New or AllFeatures to
// get a populated config, then chain the With* setters.
type EmitterConfig struct {
	CompilerVersion         string
	GenerateExitArgs        bool
	GenerateStateContext    bool
	GenerateStateStack      bool
	GenerateChangeState     bool
	GenerateTransitionState bool
}

// New returns a config with compilerVersion set and every Generate* flag
// false.
func New(compilerVersion string) *EmitterConfig {
	return &EmitterConfig{CompilerVersion: compilerVersion}
}

// AllFeatures returns a config with compilerVersion set and every Generate*
// flag true, the shape used by the reference C++ back end this module
// supersedes.
func AllFeatures(compilerVersion string) *EmitterConfig {
	return &EmitterConfig{
		CompilerVersion:         compilerVersion,
		GenerateExitArgs:        true,
		GenerateStateContext:    true,
		GenerateStateStack:      true,
		GenerateChangeState:     true,
		GenerateTransitionState: true,
	}
}

// WithExitArgs toggles whether transitions build an exit-argument map.
func (c *EmitterConfig) WithExitArgs(v bool) *EmitterConfig {
	c.GenerateExitArgs = v
	return c
}

// WithStateContext toggles whether transitions build and thread a
// StateContext.
func (c *EmitterConfig) WithStateContext(v bool) *EmitterConfig {
	c.GenerateStateContext = v
	return c
}

// WithStateStack toggles whether the state-stack push/pop machinery is
// emitted. Pop-transitions and bare push/pop statements are emitted
// regardless of this flag.
func (c *EmitterConfig) WithStateStack(v bool) *EmitterConfig {
	c.GenerateStateStack = v
	return c
}

// WithChangeState toggles whether the bare change-state routine is emitted.
func (c *EmitterConfig) WithChangeState(v bool) *EmitterConfig {
	c.GenerateChangeState = v
	return c
}

// WithTransitionState toggles whether the _transition_ routine is emitted.
// Transition statements emit their _transition_ call regardless of this
// flag.
func (c *EmitterConfig) WithTransitionState(v bool) *EmitterConfig {
	c.GenerateTransitionState = v
	return c
}

// TransitionArity returns the number of positional arguments a transition
// call site carries under this config: 1 (the target state) plus one more
// for each of GenerateExitArgs and GenerateStateContext that is enabled
// (spec §8, testable property 6).
func (c *EmitterConfig) TransitionArity() int {
	arity := 1
	if c.GenerateExitArgs {
		arity++
	}
	if c.GenerateStateContext {
		arity++
	}
	return arity
}
