package emitter

import (
	"github.com/anggasct/framegen/pkg/ast"
	"github.com/anggasct/framegen/pkg/symtab"
)

// visitSystem renders the whole system: leading version comment, struct
// skeleton, constructor, interface bridge, machine block, actions block,
// domain fields (folded into the struct), and finally the generated
// machinery (spec §4.1, "visit_system_node").
func (e *Emitter) visitSystem(system *ast.System) error {
	e.systemName = system.Name
	if system.HasStates() {
		e.firstStateName = system.FirstState().Name
	}

	e.addf("// %s", e.cfg.CompilerVersion)
	e.newline()
	e.addf("// Code generated for system %q. DO NOT EDIT.", system.Name)
	e.newline()
	e.addf("// Depends on external runtime support types (FrameEvent, StateContext)")
	e.newline()
	e.add("// supplied by the surrounding project, not by this package.")
	e.newline()
	e.newline()

	e.generateComment(system.Line)
	e.addf("type %s struct {", system.Name)
	e.indent()
	e.newline()
	e.add("state_ FrameState")
	e.newline()
	e.add("stateStack_ []FrameState")
	e.newline()
	e.add("stateContext_ *StateContext")
	e.newline()
	e.add("stateContextStack_ []*StateContext")
	e.newline()

	if system.Domain != nil {
		for _, v := range system.Domain.Variables {
			typ := v.Type
			if typ == "" {
				typ = unknownType
			}
			e.addf("%s %s", v.Name, typ)
			e.newline()
		}
	}
	e.outdent()
	e.add("}")
	e.newline()
	e.newline()

	if err := e.visitConstructor(system); err != nil {
		return err
	}

	if system.Interface != nil {
		if err := e.visitInterfaceBlock(system.Interface); err != nil {
			return err
		}
	}

	if system.Machine != nil {
		if err := e.visitMachineBlock(system.Machine); err != nil {
			return err
		}
	}

	if system.Actions != nil {
		e.visitActionsBlock(system.Actions)
	}

	if system.HasStates() {
		e.generateMachinery(system)
	}

	return nil
}

// visitConstructor renders New<SystemName>(...), wiring every domain
// variable's declared initializer and setting the initial state to the
// first declared state; with GenerateStateContext it also allocates the
// initial state context and sets the first state's variables on it through
// buildStateVars, the same path a transition into that state uses --
// mirroring the original back end's constructor
// body, adapted from a C++ initializer list into sequential Go assignment
// (spec §6).
func (e *Emitter) visitConstructor(system *ast.System) error {
	e.addf("func New%s() *%s {", system.Name, system.Name)
	e.indent()
	e.newline()
	e.addf("s := &%s{}", system.Name)
	e.newline()

	if system.Domain != nil {
		for _, v := range system.Domain.Variables {
			if v.Init == nil {
				continue
			}
			e.addf("s.%s = ", v.Name)
			if err := e.emitExpr(e.buf, v.Init); err != nil {
				return err
			}
			e.newline()
		}
	}

	if system.HasStates() {
		e.addf("s.state_ = s.%s", stateFuncName(e.firstStateName))
		e.newline()
		if e.cfg.GenerateStateContext {
			e.addf("s.stateContext_ = newStateContext_(%s)", e.formatTargetStateName(e.firstStateName))
			e.newline()
			first := &symtab.StateSymbol{Name: e.firstStateName, Variables: system.FirstState().Variables}
			if err := e.buildStateVars("s.stateContext_", first); err != nil {
				return err
			}
		}
	}

	e.add("return s")
	e.newline()
	e.outdent()
	e.add("}")
	e.newline()
	e.newline()
	return nil
}

// visitInterfaceBlock renders one bridge method per declared interface
// method, each forwarding to the running state function through an event
// dispatch (spec §4.4, "interface bridge methods").
func (e *Emitter) visitInterfaceBlock(iface *ast.InterfaceBlock) error {
	for _, m := range iface.Methods {
		if err := e.visitInterfaceMethod(m); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) visitInterfaceMethod(m ast.InterfaceMethod) error {
	msgName := m.Alias
	if msgName == "" {
		msgName = m.Name
	}

	returnType := returnTypeOrVoid(m.ReturnType)
	e.addf("func (s *%s) %s(", e.systemName, m.Name)
	e.formatParameterList(m.Params)
	e.add(")")
	if returnType != "void" {
		e.addf(" %s", returnType)
	}
	e.add(" {")
	e.indent()
	e.newline()

	e.addf("e := newFrameEvent_(%q, map[string]interface{}{", msgName)
	for i, p := range m.Params {
		if i > 0 {
			e.add(", ")
		}
		e.addf("%q: %s", p.Name, p.Name)
	}
	e.add("})")
	e.newline()
	e.add("s.state_(e)")
	e.newline()
	if returnType != "void" {
		e.add("return e._return")
	}
	e.newline()
	e.outdent()
	e.add("}")
	e.newline()
	e.newline()
	return nil
}

// visitMachineBlock renders one state-function method per declared state.
func (e *Emitter) visitMachineBlock(machine *ast.MachineBlock) error {
	for _, state := range machine.States {
		if err := e.visitState(state); err != nil {
			return err
		}
	}
	return nil
}

// visitState renders a single state function: entry calls, the declared
// event handlers as an if/else-if chain, and finally the state's dispatch
// fallthrough, if any (spec §4.6).
func (e *Emitter) visitState(state *ast.State) error {
	e.currentStateName = state.Name
	e.firstEventHandler = true

	e.generateComment(state.Line)
	e.addf("func (s *%s) %s(e *FrameEvent) {", e.systemName, stateFuncName(state.Name))
	e.indent()
	e.newline()

	for _, c := range state.Calls {
		if err := e.emitExpr(e.buf, c); err != nil {
			return err
		}
		e.newline()
	}

	for i, h := range state.Handlers {
		if err := e.visitEventHandler(h, i == 0); err != nil {
			return err
		}
	}
	if len(state.Handlers) > 0 {
		e.add("}")
		e.newline()
	}

	e.visitDispatch(state)

	e.outdent()
	e.add("}")
	e.newline()
	e.newline()
	return nil
}

// visitDispatch renders a state's dispatch fallthrough: after its own
// handler chain, control falls through to another state's handler function
// directly (spec §4.6 step 3).
func (e *Emitter) visitDispatch(state *ast.State) {
	if state.Dispatch == "" {
		return
	}
	e.addf("%s(e)", e.formatTargetStateName(state.Dispatch))
	e.newline()
}

func messageLiteral(h ast.EventHandler) string {
	if h.Message == ast.MsgAny {
		return ""
	}
	return h.MessageName
}

// visitEventHandler renders one "if e._msg == \"...\"" branch (or a bare
// "if true" for the wildcard handler), matching the original back end's
// if/else-if chain shape (spec §4.6, "visit_event_handler_node").
func (e *Emitter) visitEventHandler(h ast.EventHandler, first bool) error {
	e.generateComment(h.Line)

	if !first {
		e.add("} else ")
	}

	msg := messageLiteral(h)
	if msg == "" {
		e.add("if true {")
	} else {
		e.addf("if e._msg == %q {", msg)
	}
	e.indent()
	e.newline()

	prevRetType := e.currentEventRetType
	e.currentEventRetType = h.ReturnType
	err := e.emitItems(h.Items)
	e.currentEventRetType = prevRetType
	if err != nil {
		return err
	}
	if err := e.emitTerminator(&h.Terminator); err != nil {
		return err
	}

	e.outdent()
	e.newline()
	return nil
}

// visitActionsBlock renders the interface gap for declared actions: each
// action becomes a method stub the surrounding project is expected to
// implement concretely (spec §1, actions are declared, not defined, by
// the Frame source).
func (e *Emitter) visitActionsBlock(actions *ast.ActionsBlock) {
	for _, a := range actions.Actions {
		returnType := returnTypeOrVoid(a.ReturnType)
		e.addf("func (s *%s) %s(", e.systemName, formatActionName(a.Name))
		e.formatParameterList(a.Params)
		e.add(")")
		if returnType != "void" {
			e.addf(" %s", returnType)
		}
		e.add(" {")
		e.indent()
		e.newline()
		e.addf("panic(%q)", "action "+a.Name+" not implemented")
		e.newline()
		e.outdent()
		e.add("}")
		e.newline()
		e.newline()
	}
}
