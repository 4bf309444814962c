package emitter

import (
	"fmt"
	"strings"

	"github.com/anggasct/framegen/pkg/ast"
	"github.com/anggasct/framegen/pkg/diagnostics"
	"github.com/anggasct/framegen/pkg/symtab"
)

// emitTransitionStmt dispatches a transition statement to the state-ref or
// state-stack-pop rendering path depending on its target kind (spec §7
// supplemented feature: the two transition shapes share a statement node
// but diverge completely in what they emit).
func (e *Emitter) emitTransitionStmt(stmt *ast.TransitionStmt) error {
	switch stmt.Target.Kind {
	case ast.TargetStateRef:
		return e.generateStateRefTransition(stmt)
	case ast.TargetStateStackPop:
		return e.generateStateStackPopTransition(stmt)
	default:
		return e.fatalf("transition", "unrecognized state-context target kind")
	}
}

// generateStateRefTransition renders a transition into a named state,
// following the fixed protocol order from spec §4.8: label comment,
// context allocation, exit-arg construction, enter-arg additions,
// state-arg additions, state-var additions, then the _transition_ call
// whose arity is 1 + [generate_exit_args] + [generate_state_context].
func (e *Emitter) generateStateRefTransition(stmt *ast.TransitionStmt) error {
	targetName := stmt.Target.StateName
	targetSym, ok := e.arcanium.GetState(targetName)
	if !ok {
		return diagnostics.NewUnresolvedState(e.runID, "transition to "+targetName, targetName)
	}

	if stmt.Label != "" {
		e.addf("// %s", stmt.Label)
		e.newline()
	}
	e.generateComment(stmt.Line)

	callArgs := []string{e.formatTargetStateName(targetName)}

	if e.cfg.GenerateStateContext {
		e.addf("ctxt := newStateContext_(%s)", e.formatTargetStateName(targetName))
		e.newline()
	}

	if e.cfg.GenerateExitArgs {
		exitArgsVar, err := e.buildExitArgs(stmt.ExitArgs, "transition to "+targetName)
		if err != nil {
			return err
		}
		callArgs = append(callArgs, exitArgsVar)
	}

	if e.cfg.GenerateStateContext {
		if err := e.buildEnterArgs("ctxt", targetName, stmt.Target.EnterArgs); err != nil {
			return err
		}
		if err := e.buildStateArgs("ctxt", targetSym, stmt.Target.StateArgs); err != nil {
			return err
		}
		if err := e.buildStateVars("ctxt", targetSym); err != nil {
			return err
		}

		callArgs = append(callArgs, "ctxt")
	}

	e.addf("s._transition_(%s)", strings.Join(callArgs, ", "))
	e.newline()
	return nil
}

// generateStateStackPopTransition renders a transition back to whatever
// state the state stack holds, without allocating a new state context --
// the popped context is already the one pushed at the matching push site,
// and with GenerateStateContext it is passed to _transition_ as the context
// argument (spec §7 supplemented feature).
func (e *Emitter) generateStateStackPopTransition(stmt *ast.TransitionStmt) error {
	if stmt.Label != "" {
		e.addf("// %s", stmt.Label)
		e.newline()
	}
	e.generateComment(stmt.Line)

	exitArgsVar := ""
	if e.cfg.GenerateExitArgs {
		var err error
		exitArgsVar, err = e.buildExitArgs(stmt.ExitArgs, "transition to stack pop")
		if err != nil {
			return err
		}
	}

	callArgs := []string{"s.stateStackPop_()"}
	if e.cfg.GenerateStateContext {
		e.add("next := s.stateStackPop_()")
		e.newline()
		callArgs = []string{"next"}
	}
	if e.cfg.GenerateExitArgs {
		callArgs = append(callArgs, exitArgsVar)
	}
	if e.cfg.GenerateStateContext {
		callArgs = append(callArgs, "s.stateContext_")
	}

	e.addf("s._transition_(%s)", strings.Join(callArgs, ", "))
	e.newline()
	return nil
}

// emitChangeStateStmt renders a bare state-function swap: no exit/enter
// event dispatch, just the pointed-to handler function changing (spec §6,
// the Go-native substitute for reassigning a C++ member function pointer).
// A state-stack-pop target is always fatal here (diagnostics.NewInvalidPopTarget);
// change-state has no stack to pop from.
func (e *Emitter) emitChangeStateStmt(stmt *ast.ChangeStateStmt) error {
	if stmt.Target.Kind == ast.TargetStateStackPop {
		return diagnostics.NewInvalidPopTarget(e.runID, "change-state")
	}

	targetName := stmt.Target.StateName
	targetSym, ok := e.arcanium.GetState(targetName)
	if !ok {
		return diagnostics.NewUnresolvedState(e.runID, "change-state to "+targetName, targetName)
	}

	e.generateComment(stmt.Line)

	if !e.cfg.GenerateStateContext {
		e.addf("s._changeState_(%s)", e.formatTargetStateName(targetName))
		e.newline()
		return nil
	}

	e.addf("ctxt := newStateContext_(%s)", e.formatTargetStateName(targetName))
	e.newline()
	if err := e.buildStateArgs("ctxt", targetSym, stmt.Target.StateArgs); err != nil {
		return err
	}
	if err := e.buildStateVars("ctxt", targetSym); err != nil {
		return err
	}
	e.addf("s._changeState_(%s, ctxt)", e.formatTargetStateName(targetName))
	e.newline()
	return nil
}

// buildExitArgs resolves the current state's exit-event parameter list,
// checks args against it for a count mismatch (spec §7 fatal condition),
// and emits a name-keyed argument map literal -- the same shape
// newFrameEvent_ expects for a handler's parameter map -- returning the
// variable name it was bound to.
func (e *Emitter) buildExitArgs(args []ast.Expr, context string) (string, error) {
	exitSym, ok := e.arcanium.GetEvent(e.arcanium.ExitKey(e.currentStateName))
	if !ok {
		if len(args) == 0 {
			e.add("exitArgs := map[string]interface{}{}")
			e.newline()
			return "exitArgs", nil
		}
		return "", diagnostics.NewUnresolvedEvent(e.runID, context, e.arcanium.ExitKey(e.currentStateName))
	}
	if len(args) != len(exitSym.Params) {
		return "", diagnostics.NewParamCountMismatch(e.runID, context+" exit args", len(exitSym.Params), len(args))
	}

	e.add("exitArgs := map[string]interface{}{")
	for i, a := range args {
		if i > 0 {
			e.add(", ")
		}
		e.addf("%q: ", exitSym.Params[i].Name)
		if err := e.emitExpr(e.buf, a); err != nil {
			return "", err
		}
	}
	e.add("}")
	e.newline()
	return "exitArgs", nil
}

// buildEnterArgs resolves targetName's enter-event parameter list, checks
// args for a count mismatch, and emits ctxtVar.Set(name, value) calls in
// declared parameter order.
func (e *Emitter) buildEnterArgs(ctxtVar, targetName string, args []ast.Expr) error {
	enterSym, ok := e.arcanium.GetEvent(e.arcanium.EnterKey(targetName))
	if !ok {
		if len(args) == 0 {
			return nil
		}
		e.diags.RecordWarning(fmt.Sprintf("enter args for %s: no enter handler declared, %d argument(s) discarded", targetName, len(args)))
		return nil
	}
	if len(args) != len(enterSym.Params) {
		return diagnostics.NewParamCountMismatch(e.runID, "enter args for "+targetName, len(enterSym.Params), len(args))
	}
	for i, a := range args {
		e.addf("%s.Set(%q, ", ctxtVar, enterSym.Params[i].Name)
		if err := e.emitExpr(e.buf, a); err != nil {
			return err
		}
		e.add(")")
		e.newline()
	}
	return nil
}

// buildStateArgs emits ctxtVar.SetArg(name, value) calls for each declared
// state parameter, in the target state's declared parameter order. A count
// mismatch is fatal (spec §7, same as an enter- or exit-arg mismatch): the
// original aborts on excess state-ref arguments rather than carrying a
// partially-initialized context.
func (e *Emitter) buildStateArgs(ctxtVar string, targetSym *symtab.StateSymbol, args []ast.Expr) error {
	if len(args) != len(targetSym.Params) {
		return diagnostics.NewParamCountMismatch(e.runID, "state args for "+targetSym.Name, len(targetSym.Params), len(args))
	}
	for i, a := range args {
		e.addf("%s.SetArg(%q, ", ctxtVar, targetSym.Params[i].Name)
		if err := e.emitExpr(e.buf, a); err != nil {
			return err
		}
		e.add(")")
		e.newline()
	}
	return nil
}

// buildStateVars emits ctxtVar.SetVar(name, value) calls for every
// declared state variable that carries an initializer, evaluated fresh at
// transition time the same way a new state's local variables are
// initialized on entry.
func (e *Emitter) buildStateVars(ctxtVar string, targetSym *symtab.StateSymbol) error {
	for _, v := range targetSym.Variables {
		if v.Init == nil {
			continue
		}
		e.addf("%s.SetVar(%q, ", ctxtVar, v.Name)
		if err := e.emitExpr(e.buf, v.Init); err != nil {
			return err
		}
		e.add(")")
		e.newline()
	}
	return nil
}
