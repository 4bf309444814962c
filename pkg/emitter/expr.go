package emitter

import (
	"fmt"

	"github.com/anggasct/framegen/pkg/ast"
	"github.com/anggasct/framegen/pkg/diagnostics"
)

// emitExpr renders expr to sink. This is the single expression code path
// shared by every statement-level emitter function; sink may be the main
// CodeBuffer or any other Sink, such as a buffer.StringSink -- spec §9's
// "unify dual-mode expression emission".
func (e *Emitter) emitExpr(sink Sink, expr ast.Expr) error {
	switch v := expr.(type) {
	case *ast.LiteralExpr:
		e.emitLiteral(sink, v)
		return nil
	case *ast.IdentifierExpr:
		sink.Append(v.Name)
		return nil
	case *ast.VariableExpr:
		return e.emitVariable(sink, v)
	case *ast.CallExpr:
		return e.emitCall(sink, v)
	case *ast.ActionCallExpr:
		return e.emitActionCall(sink, v)
	case *ast.CallChainLiteralExpr:
		return e.emitCallChainLiteral(sink, v)
	case *ast.UnaryExpr:
		return e.emitUnary(sink, v)
	case *ast.BinaryExpr:
		return e.emitBinary(sink, v)
	case *ast.FrameEventPartExpr:
		e.emitFrameEventPart(sink, v)
		return nil
	default:
		return e.fatalf("expr", "unrecognized expression node %T", expr)
	}
}

func (e *Emitter) emitLiteral(sink Sink, lit *ast.LiteralExpr) {
	switch lit.Kind {
	case ast.StringTok:
		sink.Append(fmt.Sprintf("%q", lit.Value))
	case ast.SuperStringTok:
		sink.Append("`" + lit.Value + "`")
	case ast.TrueTok:
		sink.Append("true")
	case ast.FalseTok:
		sink.Append("false")
	case ast.NullTok, ast.NilTok:
		sink.Append("nil")
	default: // NumberTok
		sink.Append(lit.Value)
	}
}

// emitVariable renders a variable reference according to its resolved
// scope (spec §4.3, the VariableScope rendering contract):
//
//	domain         this->name   (Go: s.name)
//	state param    getStateArg("name")
//	state var      getStateVar("name")
//	handler param  e._parameters["name"]
//	handler var/none  name (bare identifier)
//
// These exact substrings are pinned by spec §8's testable properties and
// are preserved verbatim even though some (the quoted-map-key forms) do not
// look like idiomatic Go identifiers -- they are text this module emits,
// not this module's own source.
func (e *Emitter) emitVariable(sink Sink, v *ast.VariableExpr) error {
	wrap := e.visitingCallChainLiteralVariable
	switch v.Scope {
	case ast.ScopeDomain:
		if wrap {
			sink.Append("(")
		}
		sink.Append("s." + v.Name)
		if wrap {
			sink.Append(")")
		}
	case ast.ScopeStateParam:
		sink.Append(fmt.Sprintf("getStateArg(%q)", v.Name))
	case ast.ScopeStateVar:
		sink.Append(fmt.Sprintf("getStateVar(%q)", v.Name))
	case ast.ScopeHandlerParam:
		sink.Append(fmt.Sprintf("e._parameters[%q]", v.Name))
	case ast.ScopeHandlerVar, ast.ScopeNone:
		sink.Append(v.Name)
	default:
		return diagnostics.NewUnknownScope(e.runID, "variable "+v.Name, v.Name)
	}
	return nil
}

// emitCallable renders one link of a call chain: an identifier or a
// variable reference, each optionally followed by a call's argument list.
func (e *Emitter) emitCallable(sink Sink, c ast.Callable) error {
	switch v := c.(type) {
	case *ast.IdentifierExpr:
		sink.Append(v.Name)
		return nil
	case *ast.VariableExpr:
		return e.emitVariable(sink, v)
	case *ast.CallExpr:
		return e.emitCall(sink, v)
	case *ast.ActionCallExpr:
		return e.emitActionCall(sink, v)
	default:
		return e.fatalf("call chain", "unrecognized callable node %T", c)
	}
}

func (e *Emitter) emitChain(sink Sink, chain []ast.Callable) error {
	for i, link := range chain {
		if i > 0 {
			sink.Append(".")
		}
		if err := e.emitCallable(sink, link); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) emitArgs(sink Sink, args []ast.Expr) error {
	sink.Append("(")
	for i, a := range args {
		if i > 0 {
			sink.Append(", ")
		}
		if err := e.emitExpr(sink, a); err != nil {
			return err
		}
	}
	sink.Append(")")
	return nil
}

func (e *Emitter) emitCall(sink Sink, call *ast.CallExpr) error {
	if len(call.Chain) > 0 {
		if err := e.emitChain(sink, call.Chain); err != nil {
			return err
		}
		sink.Append(".")
	}
	sink.Append(call.Name)
	return e.emitArgs(sink, call.Args)
}

// emitActionCall renders a call to a declared action, mangled with the
// "_do" suffix (spec §6).
func (e *Emitter) emitActionCall(sink Sink, call *ast.ActionCallExpr) error {
	sink.Append("s." + formatActionName(call.Name))
	return e.emitArgs(sink, call.Args)
}

// emitCallChainLiteral renders a bare call-chain used as a statement or
// literal value, setting the call-chain-literal mode flag for the duration
// so any domain variable in the chain is parenthesized the way the
// original back end parenthesizes "this->" references inside a chain
// literal.
func (e *Emitter) emitCallChainLiteral(sink Sink, lit *ast.CallChainLiteralExpr) error {
	prev := e.visitingCallChainLiteralVariable
	e.visitingCallChainLiteralVariable = true
	defer func() { e.visitingCallChainLiteralVariable = prev }()
	return e.emitChain(sink, lit.Chain)
}

func (e *Emitter) emitUnary(sink Sink, u *ast.UnaryExpr) error {
	switch u.Operator {
	case ast.OpNegated:
		sink.Append("-")
	case ast.OpNot:
		sink.Append("!")
	}
	sink.Append("(")
	if err := e.emitExpr(sink, u.Right); err != nil {
		return err
	}
	sink.Append(")")
	return nil
}

// emitBinary renders a binary expression. Logical XOR has no Go operator,
// so it is desugared the way the original back end desugars it: "a ^ b"
// becomes "((a) && !(b)) || (!(a) && (b))" (spec §4.9, testable property 7).
func (e *Emitter) emitBinary(sink Sink, b *ast.BinaryExpr) error {
	if b.Operator == ast.OpLogicalXor {
		sink.Append("((")
		if err := e.emitExpr(sink, b.Left); err != nil {
			return err
		}
		sink.Append(") && !(")
		if err := e.emitExpr(sink, b.Right); err != nil {
			return err
		}
		sink.Append(")) || (!(")
		if err := e.emitExpr(sink, b.Left); err != nil {
			return err
		}
		sink.Append(") && (")
		if err := e.emitExpr(sink, b.Right); err != nil {
			return err
		}
		sink.Append("))")
		return nil
	}

	sink.Append("(")
	if err := e.emitExpr(sink, b.Left); err != nil {
		return err
	}
	sink.Append(" ")
	sink.Append(binaryOperatorText(b.Operator))
	sink.Append(" ")
	if err := e.emitExpr(sink, b.Right); err != nil {
		return err
	}
	sink.Append(")")
	return nil
}

func binaryOperatorText(op ast.BinaryOperator) string {
	switch op {
	case ast.OpPlus:
		return "+"
	case ast.OpMinus:
		return "-"
	case ast.OpMultiply:
		return "*"
	case ast.OpDivide:
		return "/"
	case ast.OpGreater:
		return ">"
	case ast.OpGreaterEqual:
		return ">="
	case ast.OpLess:
		return "<"
	case ast.OpLessEqual:
		return "<="
	case ast.OpEqualEqual:
		return "=="
	case ast.OpNotEqual:
		return "!="
	case ast.OpLogicalAnd:
		return "&&"
	case ast.OpLogicalOr:
		return "||"
	default:
		return "?"
	}
}

// emitFrameEventPart renders a reference to the current event, its
// message name, a named parameter, or its return value -- the four
// FrameEventPartKind forms (spec §6). Parameter access canonicalizes on
// "e._parameters[...]" (this module's single spelling; the original back
// end used "e._params[...]" in this one call site and "e._parameters[...]"
// everywhere else it rendered a handler parameter -- this module treats
// that as the bug spec's design notes invite fixing and never emits the
// inconsistent spelling).
func (e *Emitter) emitFrameEventPart(sink Sink, part *ast.FrameEventPartExpr) {
	switch part.Kind {
	case ast.FrameEventWhole:
		sink.Append("e")
	case ast.FrameEventMessage:
		sink.Append("e._msg")
	case ast.FrameEventParam:
		sink.Append(fmt.Sprintf("e._parameters[%q]", part.ParamName))
	case ast.FrameEventReturn:
		sink.Append("e._return")
	}
}

// fatalf builds a fatal *diagnostics.EmitError for an internal AST-shape
// violation -- something the frontend should never hand the emitter, as
// distinct from the Frame-semantic fatal conditions that have their own
// NewXxx constructors in package diagnostics.
func (e *Emitter) fatalf(context, format string, args ...interface{}) error {
	return diagnostics.NewMalformedNode(e.runID, context, fmt.Sprintf(format, args...))
}
