package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstStateAndHasStates(t *testing.T) {
	empty := &System{}
	assert.False(t, empty.HasStates())
	assert.Nil(t, empty.FirstState())

	sys := &System{
		Machine: &MachineBlock{
			States: []*State{{Name: "S1"}, {Name: "S2"}},
		},
	}
	assert.True(t, sys.HasStates())
	assert.Equal(t, "S1", sys.FirstState().Name)
}

func TestNodeAndExprInterfacesAreSatisfied(t *testing.T) {
	var _ Node = &VarDeclStmt{}
	var _ Node = &AssignmentStmt{}
	var _ Node = &CallStmt{}
	var _ Node = &ActionCallStmt{}
	var _ Node = &CallChainLiteralStmt{}
	var _ Node = &VariableStmt{}
	var _ Node = &TransitionStmt{}
	var _ Node = &ChangeStateStmt{}
	var _ Node = &StateStackOpStmt{}
	var _ Node = &TestStmt{}

	var _ Expr = &LiteralExpr{}
	var _ Expr = &IdentifierExpr{}
	var _ Expr = &VariableExpr{}
	var _ Expr = &CallExpr{}
	var _ Expr = &ActionCallExpr{}
	var _ Expr = &CallChainLiteralExpr{}
	var _ Expr = &UnaryExpr{}
	var _ Expr = &BinaryExpr{}
	var _ Expr = &FrameEventPartExpr{}

	var _ Callable = &IdentifierExpr{}
	var _ Callable = &VariableExpr{}
	var _ Callable = &CallExpr{}
	var _ Callable = &ActionCallExpr{}
}
