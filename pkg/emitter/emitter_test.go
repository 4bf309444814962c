package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anggasct/framegen/pkg/ast"
	"github.com/anggasct/framegen/pkg/comments"
	"github.com/anggasct/framegen/pkg/config"
	"github.com/anggasct/framegen/pkg/symtab"
)

func newTestEmitter(cfg *config.EmitterConfig, arcanium *symtab.Arcanum) *Emitter {
	if cfg == nil {
		cfg = config.AllFeatures("test")
	}
	if arcanium == nil {
		arcanium = symtab.New(symtab.DefaultConfig())
	}
	return New(cfg, arcanium, nil, nil)
}

func TestEmitVariableByScope(t *testing.T) {
	cases := []struct {
		name  string
		scope ast.VariableScope
		want  string
	}{
		{"x", ast.ScopeDomain, "s.x"},
		{"x", ast.ScopeStateParam, `getStateArg("x")`},
		{"x", ast.ScopeStateVar, `getStateVar("x")`},
		{"x", ast.ScopeHandlerParam, `e._parameters["x"]`},
		{"x", ast.ScopeHandlerVar, "x"},
		{"x", ast.ScopeNone, "x"},
	}
	for _, c := range cases {
		e := newTestEmitter(nil, nil)
		sink := e.buf
		err := e.emitVariable(sink, &ast.VariableExpr{Name: c.name, Scope: c.scope})
		assert.NoError(t, err)
		assert.Equal(t, c.want, sink.String())
	}
}

func TestEmitVariableDomainParenthesizedInCallChainLiteral(t *testing.T) {
	e := newTestEmitter(nil, nil)
	lit := &ast.CallChainLiteralExpr{
		Chain: []ast.Callable{&ast.VariableExpr{Name: "x", Scope: ast.ScopeDomain}},
	}
	err := e.emitCallChainLiteral(e.buf, lit)
	assert.NoError(t, err)
	assert.Equal(t, "(s.x)", e.buf.String())
}

func TestEmitVariableUnknownScopeIsFatal(t *testing.T) {
	e := newTestEmitter(nil, nil)
	err := e.emitVariable(e.buf, &ast.VariableExpr{Name: "x", Scope: ast.VariableScope(99)})
	assert.Error(t, err)
}

func TestEmitFrameEventPartCanonicalizesParameters(t *testing.T) {
	e := newTestEmitter(nil, nil)
	e.emitFrameEventPart(e.buf, &ast.FrameEventPartExpr{Kind: ast.FrameEventParam, ParamName: "speed"})
	assert.Equal(t, `e._parameters["speed"]`, e.buf.String())
}

func TestEmitFrameEventPartOtherKinds(t *testing.T) {
	cases := []struct {
		kind ast.FrameEventPartKind
		want string
	}{
		{ast.FrameEventWhole, "e"},
		{ast.FrameEventMessage, "e._msg"},
		{ast.FrameEventReturn, "e._return"},
	}
	for _, c := range cases {
		e := newTestEmitter(nil, nil)
		e.emitFrameEventPart(e.buf, &ast.FrameEventPartExpr{Kind: c.kind})
		assert.Equal(t, c.want, e.buf.String())
	}
}

func TestLogicalXorDesugars(t *testing.T) {
	e := newTestEmitter(nil, nil)
	bin := &ast.BinaryExpr{
		Left:     &ast.IdentifierExpr{Name: "a"},
		Operator: ast.OpLogicalXor,
		Right:    &ast.IdentifierExpr{Name: "b"},
	}
	err := e.emitBinary(e.buf, bin)
	assert.NoError(t, err)
	assert.Equal(t, "((a) && !(b)) || (!(a) && (b))", e.buf.String())
}

func TestBinaryOperatorsRenderInfix(t *testing.T) {
	e := newTestEmitter(nil, nil)
	bin := &ast.BinaryExpr{
		Left:     &ast.IdentifierExpr{Name: "a"},
		Operator: ast.OpGreaterEqual,
		Right:    &ast.IdentifierExpr{Name: "b"},
	}
	err := e.emitBinary(e.buf, bin)
	assert.NoError(t, err)
	assert.Equal(t, "(a >= b)", e.buf.String())
}

func TestActionCallMangledWithDoSuffix(t *testing.T) {
	e := newTestEmitter(nil, nil)
	call := &ast.ActionCallExpr{Name: "log", Args: []ast.Expr{&ast.LiteralExpr{Kind: ast.StringTok, Value: "hi"}}}
	err := e.emitActionCall(e.buf, call)
	assert.NoError(t, err)
	assert.Equal(t, `s.log_do("hi")`, e.buf.String())
}

func TestTransitionArityMatchesConfig(t *testing.T) {
	cases := []*config.EmitterConfig{
		config.New("v1").WithTransitionState(true),
		config.New("v1").WithTransitionState(true).WithExitArgs(true),
		config.New("v1").WithTransitionState(true).WithStateContext(true),
		config.New("v1").WithTransitionState(true).WithExitArgs(true).WithStateContext(true),
	}
	for _, cfg := range cases {
		a := symtab.New(symtab.DefaultConfig())
		a.AddState("S2", nil, nil)
		system := transitionOnlySystem()
		e := New(cfg, a, nil, nil)
		err := e.Run(system)
		assert.NoError(t, err)

		code := e.Code()
		assert.Contains(t, code, "_transition_(")
		wantArity := cfg.TransitionArity()
		assert.Equal(t, wantArity, strictArgCountOf(code, "s._transition_("))
	}
}

// strictArgCountOf is a small test helper that counts top-level
// comma-separated arguments in the first call to "s._transition_(...)" it
// finds. It is intentionally naive (it tracks parenthesis depth but not
// string literals), which suffices since the transition calls this module
// emits carry no quoted text.
func strictArgCountOf(code, marker string) int {
	idx := indexOf(code, marker)
	if idx < 0 {
		return -1
	}
	rest := code[idx+len(marker):]
	depth := 0
	args := 1
	for _, r := range rest {
		switch r {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return args
			}
			depth--
		case ',':
			if depth == 0 {
				args++
			}
		}
	}
	return args
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}

func transitionOnlySystem() *ast.System {
	return &ast.System{
		Name: "Sys",
		Line: 1,
		Machine: &ast.MachineBlock{
			States: []*ast.State{
				{
					Name: "S1",
					Line: 2,
					Handlers: []ast.EventHandler{
						{
							Message:     ast.MsgCustom,
							MessageName: "Go",
							Line:        3,
							Items: []ast.Node{
								&ast.TransitionStmt{
									Line: 4,
									Target: ast.StateContextTarget{
										Kind:      ast.TargetStateRef,
										StateName: "S2",
									},
								},
							},
						},
					},
				},
				{Name: "S2", Line: 10},
			},
		},
	}
}

func TestTransitionToUnresolvedStateIsFatal(t *testing.T) {
	a := symtab.New(symtab.DefaultConfig())
	system := &ast.System{
		Name: "Sys",
		Machine: &ast.MachineBlock{
			States: []*ast.State{
				{
					Name: "S1",
					Handlers: []ast.EventHandler{
						{
							Message:     ast.MsgCustom,
							MessageName: "Go",
							Items: []ast.Node{
								&ast.TransitionStmt{
									Target: ast.StateContextTarget{Kind: ast.TargetStateRef, StateName: "Ghost"},
								},
							},
						},
					},
				},
			},
		},
	}
	e := New(config.AllFeatures("v1"), a, nil, nil)
	err := e.Run(system)
	assert.Error(t, err)
}

func TestChangeStateToStackPopIsFatal(t *testing.T) {
	e := newTestEmitter(nil, nil)
	err := e.emitChangeStateStmt(&ast.ChangeStateStmt{
		Target: ast.StateContextTarget{Kind: ast.TargetStateStackPop},
	})
	assert.Error(t, err)
}

func TestExitArgCountMismatchIsFatal(t *testing.T) {
	a := symtab.New(symtab.DefaultConfig())
	a.AddEvent(a.ExitKey("S1"), []symtab.Param{{Name: "reason", Type: "string"}})
	a.AddState("S2", nil, nil)
	e := newTestEmitter(config.AllFeatures("v1"), a)
	e.currentStateName = "S1"

	_, err := e.buildExitArgs([]ast.Expr{}, "transition to S2")
	assert.Error(t, err)
}

func TestRunProducesStructAndConstructor(t *testing.T) {
	system := transitionOnlySystem()
	a := symtab.BuildFromSystem(system, symtab.DefaultConfig())
	e := New(config.AllFeatures("v1"), a, nil, nil)
	err := e.Run(system)
	assert.NoError(t, err)

	code := e.Code()
	assert.Contains(t, code, "type Sys struct {")
	assert.Contains(t, code, "func NewSys() *Sys {")
	assert.Contains(t, code, "s.state_ = s._sS1_")
	assert.Contains(t, code, "func (s *Sys) _sS1_(e *FrameEvent) {")
	assert.Contains(t, code, `if e._msg == "Go" {`)
	assert.Contains(t, code, "s._sS2_")
}

func TestNilLoggerIsSilent(t *testing.T) {
	assert.NotPanics(t, func() {
		var l *Logger
		l.Infof("hello %d", 1)
		l.Errorf("boom")
	})
}
