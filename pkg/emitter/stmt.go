package emitter

import (
	"fmt"

	"github.com/anggasct/framegen/pkg/ast"
)

// emitItems walks an ordered decl-or-statement list. Items that carry a
// source line (assignments, bare variable statements, transitions,
// change-states) flush pending comments up to that line as they are
// emitted (spec §4.2); the other items flush none.
func (e *Emitter) emitItems(items []ast.Node) error {
	for _, item := range items {
		if err := e.emitItem(item); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) emitItem(item ast.Node) error {
	switch v := item.(type) {
	case *ast.VarDeclStmt:
		return e.emitVarDecl(v)
	case *ast.AssignmentStmt:
		return e.emitAssignment(v)
	case *ast.CallStmt:
		return e.emitCallStmt(v)
	case *ast.ActionCallStmt:
		return e.emitActionCallStmt(v)
	case *ast.CallChainLiteralStmt:
		return e.emitCallChainLiteralStmt(v)
	case *ast.VariableStmt:
		return e.emitVariableStmt(v)
	case *ast.TransitionStmt:
		return e.emitTransitionStmt(v)
	case *ast.ChangeStateStmt:
		return e.emitChangeStateStmt(v)
	case *ast.StateStackOpStmt:
		return e.emitStateStackOpStmt(v)
	case *ast.TestStmt:
		return e.emitTestStmt(v)
	default:
		return e.fatalf("statement", "unrecognized statement node %T", item)
	}
}

func (e *Emitter) emitVarDecl(v *ast.VarDeclStmt) error {
	typ := v.Type
	if typ == "" {
		typ = unknownType
	}
	e.addf("var %s %s", v.Name, typ)
	if v.Init != nil {
		e.add(" = ")
		if err := e.emitExpr(e.buf, v.Init); err != nil {
			return err
		}
	}
	e.newline()
	return nil
}

func (e *Emitter) emitAssignment(v *ast.AssignmentStmt) error {
	e.generateComment(v.Line)
	if err := e.emitExpr(e.buf, v.LValue); err != nil {
		return err
	}
	e.add(" = ")
	if err := e.emitExpr(e.buf, v.RValue); err != nil {
		return err
	}
	e.newline()
	return nil
}

func (e *Emitter) emitCallStmt(v *ast.CallStmt) error {
	if err := e.emitCall(e.buf, v.Call); err != nil {
		return err
	}
	e.newline()
	return nil
}

func (e *Emitter) emitActionCallStmt(v *ast.ActionCallStmt) error {
	if err := e.emitActionCall(e.buf, v.Call); err != nil {
		return err
	}
	e.newline()
	return nil
}

func (e *Emitter) emitCallChainLiteralStmt(v *ast.CallChainLiteralStmt) error {
	if err := e.emitCallChainLiteral(e.buf, v.Chain); err != nil {
		return err
	}
	e.newline()
	return nil
}

func (e *Emitter) emitVariableStmt(v *ast.VariableStmt) error {
	e.generateComment(v.Line)
	if err := e.emitVariable(e.buf, v.Variable); err != nil {
		return err
	}
	e.newline()
	return nil
}

// emitStateStackOpStmt renders a bare state-stack push or pop statement,
// distinct from a state-stack-pop transition: it manipulates the stack
// without dispatching an event (spec §7 supplemented feature).
func (e *Emitter) emitStateStackOpStmt(v *ast.StateStackOpStmt) error {
	switch v.Op {
	case ast.StackPush:
		e.add("s.stateStackPush_()")
	case ast.StackPop:
		e.add("s.stateStackPop_()")
	}
	e.newline()
	return nil
}

// emitTerminator renders a branch's terminator. Every state-handler method
// has a void Go signature (spec §6: control returns a value to the caller
// through e._return, never through the Go function's own return), so a
// TermReturn carrying a value assigns e._return first and then returns
// bare. TermContinue needs no text at all: falling out of an if/switch
// branch already resumes the enclosing handler body in Go, which is
// exactly what "continue" means here -- keep testing/executing rather than
// stop.
func (e *Emitter) emitTerminator(t *ast.Terminator) error {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case ast.TermContinue:
		return nil
	case ast.TermReturn:
		if t.ReturnExpr != nil {
			e.add("e._return = ")
			if err := e.emitExpr(e.buf, t.ReturnExpr); err != nil {
				return err
			}
			e.newline()
		}
		e.add("return")
		e.newline()
	}
	return nil
}

func (e *Emitter) emitTestStmt(v *ast.TestStmt) error {
	switch t := v.Test.(type) {
	case *ast.BoolTest:
		return e.emitBoolTest(t)
	case *ast.StringMatchTest:
		return e.emitStringMatchTest(t)
	case *ast.NumberMatchTest:
		return e.emitNumberMatchTest(t)
	default:
		return e.fatalf("test statement", "unrecognized test node %T", v.Test)
	}
}

func (e *Emitter) emitBoolTest(t *ast.BoolTest) error {
	for i, branch := range t.Branches {
		if i == 0 {
			e.add("if ")
		} else {
			e.add("} else if ")
		}
		if branch.Negated {
			e.add("!(")
		}
		if err := e.emitExpr(e.buf, branch.Cond); err != nil {
			return err
		}
		if branch.Negated {
			e.add(")")
		}
		e.add(" {")
		e.indent()
		e.newline()
		if err := e.emitItems(branch.Statements); err != nil {
			return err
		}
		if err := e.emitTerminator(branch.Terminator); err != nil {
			return err
		}
		e.outdent()
		e.newline()
	}
	if len(t.Branches) > 0 {
		e.add("}")
	}
	if t.Else != nil {
		if len(t.Branches) > 0 {
			e.add(" else {")
		} else {
			e.add("if true {")
		}
		e.indent()
		e.newline()
		if err := e.emitItems(t.Else.Statements); err != nil {
			return err
		}
		if err := e.emitTerminator(t.Else.Terminator); err != nil {
			return err
		}
		e.outdent()
		e.newline()
		e.add("}")
	}
	e.newline()
	return nil
}

// emitStringMatchTest renders a string-match test as a Go switch over the
// match expression's string value. Each branch's patterns become
// comma-joined case values; an else branch becomes "default".
func (e *Emitter) emitStringMatchTest(t *ast.StringMatchTest) error {
	e.add("switch ")
	if err := e.emitExpr(e.buf, t.Expr); err != nil {
		return err
	}
	e.add(" {")
	e.indent()
	for _, branch := range t.Branches {
		e.newline()
		e.addf("case %s:", quoteJoin(branch.Patterns))
		e.indent()
		e.newline()
		if err := e.emitItems(branch.Statements); err != nil {
			return err
		}
		if err := e.emitTerminator(branch.Terminator); err != nil {
			return err
		}
		e.outdent()
	}
	if t.Else != nil {
		e.newline()
		e.add("default:")
		e.indent()
		e.newline()
		if err := e.emitItems(t.Else.Statements); err != nil {
			return err
		}
		if err := e.emitTerminator(t.Else.Terminator); err != nil {
			return err
		}
		e.outdent()
	}
	e.outdent()
	e.newline()
	e.add("}")
	e.newline()
	return nil
}

// emitNumberMatchTest mirrors emitStringMatchTest for a numeric match
// expression; patterns are emitted as bare numeric literals.
func (e *Emitter) emitNumberMatchTest(t *ast.NumberMatchTest) error {
	e.add("switch ")
	if err := e.emitExpr(e.buf, t.Expr); err != nil {
		return err
	}
	e.add(" {")
	e.indent()
	for _, branch := range t.Branches {
		e.newline()
		e.addf("case %s:", joinStrings(branch.Patterns))
		e.indent()
		e.newline()
		if err := e.emitItems(branch.Statements); err != nil {
			return err
		}
		if err := e.emitTerminator(branch.Terminator); err != nil {
			return err
		}
		e.outdent()
	}
	if t.Else != nil {
		e.newline()
		e.add("default:")
		e.indent()
		e.newline()
		if err := e.emitItems(t.Else.Statements); err != nil {
			return err
		}
		if err := e.emitTerminator(t.Else.Terminator); err != nil {
			return err
		}
		e.outdent()
	}
	e.outdent()
	e.newline()
	e.add("}")
	e.newline()
	return nil
}

func quoteJoin(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%q", s)
	}
	return out
}

func joinStrings(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
