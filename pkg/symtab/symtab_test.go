package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anggasct/framegen/pkg/ast"
)

func TestAddEventStampsUniqueIDs(t *testing.T) {
	a := New(DefaultConfig())
	e1 := a.AddEvent("S1:<", nil)
	e2 := a.AddEvent("S2:<", nil)
	assert.NotEmpty(t, e1.ID)
	assert.NotEmpty(t, e2.ID)
	assert.NotEqual(t, e1.ID, e2.ID)
}

func TestExitEnterKeys(t *testing.T) {
	a := New(DefaultConfig())
	assert.Equal(t, "S1:<", a.ExitKey("S1"))
	assert.Equal(t, "S1:>", a.EnterKey("S1"))
}

func TestGetEventGetState(t *testing.T) {
	a := New(DefaultConfig())
	a.AddState("S1", []Param{{Name: "p", Type: "int"}}, nil)
	a.AddEvent(a.ExitKey("S1"), []Param{{Name: "x", Type: "string"}})

	sym, ok := a.GetState("S1")
	assert.True(t, ok)
	assert.Equal(t, "S1", sym.Name)
	assert.Len(t, sym.Params, 1)

	_, ok = a.GetState("Nope")
	assert.False(t, ok)

	evt, ok := a.GetEvent("S1:<")
	assert.True(t, ok)
	assert.Equal(t, "x", evt.Params[0].Name)
}

func TestBuildFromSystemRegistersStatesAndEvents(t *testing.T) {
	system := &ast.System{
		Name: "Sys",
		Machine: &ast.MachineBlock{
			States: []*ast.State{
				{
					Name:   "S1",
					Params: []ast.Parameter{{Name: "p", Type: "int"}},
					Handlers: []ast.EventHandler{
						{Message: ast.MsgCustom, MessageName: "<", Params: []ast.Parameter{{Name: "reason", Type: "string"}}},
						{Message: ast.MsgCustom, MessageName: ">", Params: []ast.Parameter{{Name: "count", Type: "int"}}},
						{Message: ast.MsgCustom, MessageName: "Go"},
					},
				},
			},
		},
	}

	a := BuildFromSystem(system, DefaultConfig())

	stateSym, ok := a.GetState("S1")
	assert.True(t, ok)
	assert.Len(t, stateSym.Params, 1)

	exitSym, ok := a.GetEvent(a.ExitKey("S1"))
	assert.True(t, ok)
	assert.Equal(t, "reason", exitSym.Params[0].Name)

	enterSym, ok := a.GetEvent(a.EnterKey("S1"))
	assert.True(t, ok)
	assert.Equal(t, "count", enterSym.Params[0].Name)

	_, ok = a.GetEvent("S1:Go")
	assert.False(t, ok)
}

func TestBuildFromSystemDefaultsUnresolvedType(t *testing.T) {
	system := &ast.System{
		Machine: &ast.MachineBlock{
			States: []*ast.State{
				{Name: "S1", Params: []ast.Parameter{{Name: "p"}}},
			},
		},
	}
	a := BuildFromSystem(system, DefaultConfig())
	sym, _ := a.GetState("S1")
	assert.Equal(t, "<?>", sym.Params[0].Type)
}
