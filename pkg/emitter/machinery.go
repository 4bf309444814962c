package emitter

import (
	"github.com/anggasct/framegen/pkg/ast"
)

// generateMachinery renders the fixed supporting methods every system
// needs: the FrameState function type, the transition/change-state
// routines, the state-stack push/pop helpers (when GenerateStateStack is
// set), and the state-context accessors -- what the original back end calls "generate_machinery",
// varying its output by the five construction-time feature flags (spec §5).
func (e *Emitter) generateMachinery(system *ast.System) {
	e.add("// FrameState is a bound state-handler method value -- the Go")
	e.newline()
	e.add("// substitute for a pointer to a C++ member function.")
	e.newline()
	e.add("type FrameState func(e *FrameEvent)")
	e.newline()
	e.newline()

	if e.cfg.GenerateTransitionState {
		e.generateTransitionMethod()
	}
	if e.cfg.GenerateChangeState {
		e.generateChangeStateMethod()
	}
	if e.cfg.GenerateStateStack {
		e.generateStateStackMethods()
	}
	e.generateStateContextAccessors()
}

// generateTransitionMethod renders _transition_, whose parameter list
// mirrors the call-site arity produced by generateStateRefTransition /
// generateStateStackPopTransition: the target state function, optionally
// the exit-args slice, and optionally the new state context (spec §4.8,
// "call arity = 1 + [generate_exit_args] + [generate_state_context]").
func (e *Emitter) generateTransitionMethod() {
	e.add("func (s *" + e.systemName + ") _transition_(next FrameState")
	if e.cfg.GenerateExitArgs {
		e.add(", exitArgs map[string]interface{}")
	}
	if e.cfg.GenerateStateContext {
		e.add(", ctxt *StateContext")
	}
	e.add(") {")
	e.indent()
	e.newline()

	if e.cfg.GenerateExitArgs {
		e.add("s.state_(newFrameEvent_(\"<\", exitArgs))")
	} else {
		e.add("s.state_(newFrameEvent_(\"<\", map[string]interface{}{}))")
	}
	e.newline()

	if e.cfg.GenerateStateContext {
		e.add("s.stateContext_ = ctxt")
		e.newline()
	}
	e.add("s.state_ = next")
	e.newline()
	e.add("s.state_(newFrameEvent_(\">\", map[string]interface{}{}))")
	e.newline()

	e.outdent()
	e.add("}")
	e.newline()
	e.newline()
}

// generateChangeStateMethod renders _changeState_: a bare handler swap
// with no exit/enter dispatch.
func (e *Emitter) generateChangeStateMethod() {
	e.addf("func (s *%s) _changeState_(next FrameState", e.systemName)
	if e.cfg.GenerateStateContext {
		e.add(", ctxt *StateContext")
	}
	e.add(") {")
	e.indent()
	e.newline()
	if e.cfg.GenerateStateContext {
		e.add("s.stateContext_ = ctxt")
		e.newline()
	}
	e.add("s.state_ = next")
	e.newline()
	e.outdent()
	e.add("}")
	e.newline()
	e.newline()
}

// generateStateStackMethods renders stateStackPush_/stateStackPop_,
// saving and restoring both the handler function and its state context
// together so a popped state resumes with the context it had before the
// push (spec §7 supplemented feature).
func (e *Emitter) generateStateStackMethods() {
	e.addf("func (s *%s) stateStackPush_() {", e.systemName)
	e.indent()
	e.newline()
	e.add("s.stateStack_ = append(s.stateStack_, s.state_)")
	e.newline()
	if e.cfg.GenerateStateContext {
		e.add("s.stateContextStack_ = append(s.stateContextStack_, s.stateContext_)")
		e.newline()
	}
	e.outdent()
	e.add("}")
	e.newline()
	e.newline()

	e.addf("func (s *%s) stateStackPop_() FrameState {", e.systemName)
	e.indent()
	e.newline()
	e.add("n := len(s.stateStack_)")
	e.newline()
	e.add("next := s.stateStack_[n-1]")
	e.newline()
	e.add("s.stateStack_ = s.stateStack_[:n-1]")
	e.newline()
	if e.cfg.GenerateStateContext {
		e.add("m := len(s.stateContextStack_)")
		e.newline()
		e.add("s.stateContext_ = s.stateContextStack_[m-1]")
		e.newline()
		e.add("s.stateContextStack_ = s.stateContextStack_[:m-1]")
		e.newline()
	}
	e.add("return next")
	e.newline()
	e.outdent()
	e.add("}")
	e.newline()
	e.newline()
}

// generateStateContextAccessors renders getStateArg/getStateVar, the two
// lookup helpers a running handler uses to read the values a transition
// stashed on the current state context (spec §4.3).
func (e *Emitter) generateStateContextAccessors() {
	e.addf("func (s *%s) getStateArg(name string) interface{} {", e.systemName)
	e.indent()
	e.newline()
	e.add("return s.stateContext_.GetArg(name)")
	e.newline()
	e.outdent()
	e.add("}")
	e.newline()
	e.newline()

	e.addf("func (s *%s) getStateVar(name string) interface{} {", e.systemName)
	e.indent()
	e.newline()
	e.add("return s.stateContext_.GetVar(name)")
	e.newline()
	e.outdent()
	e.add("}")
	e.newline()
	e.newline()
}
