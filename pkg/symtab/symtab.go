// Package symtab implements the read-only symbol lookup facade the emitter
// queries during a run: event symbols keyed "StateName:messageSymbol" and
// state symbols keyed by name (spec §4 component 1, "Arcanum").
package symtab

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/anggasct/framegen/pkg/ast"
)

// Param is a declared parameter or variable name plus its type string, or
// "<?>" when the frontend left the type unresolved.
type Param struct {
	Name string
	Type string
}

// EventSymbol is the resolved parameter list for one exit or enter event,
// keyed by "StateName:<" or "StateName:>" (spec §3 invariants).
type EventSymbol struct {
	ID     string
	Key    string
	Params []Param
}

// StateSymbol is the resolved parameter and variable lists for one declared
// state, plus the full variable declarations (with initializer expressions)
// needed when a transition into this state builds its state-var entries
// (spec §4.8 step 6).
type StateSymbol struct {
	ID        string
	Name      string
	Params    []Param
	Variables []ast.StateVariable
}

// Config holds the exit/enter message-symbol sentinels used to build event
// lookup keys (spec §6, "exit message '<', enter message '>'").
type Config struct {
	ExitMsgSymbol  string
	EnterMsgSymbol string
}

// DefaultConfig returns the standard Frame sentinels.
func DefaultConfig() Config {
	return Config{ExitMsgSymbol: "<", EnterMsgSymbol: ">"}
}

// Arcanum is the read-only symbol table facade. It is conceptually built by
// the frontend and never mutated during emission; the mutators below exist
// so this package can also serve as the symbol-table builder used by tests
// and by BuildFromSystem.
type Arcanum struct {
	Config Config
	events map[string]*EventSymbol
	states map[string]*StateSymbol
}

// New returns an empty Arcanum using cfg for event-key construction.
func New(cfg Config) *Arcanum {
	return &Arcanum{
		Config: cfg,
		events: make(map[string]*EventSymbol),
		states: make(map[string]*StateSymbol),
	}
}

// AddEvent registers an event symbol, stamping it with a fresh correlation
// ID.
func (a *Arcanum) AddEvent(key string, params []Param) *EventSymbol {
	sym := &EventSymbol{ID: uuid.New().String(), Key: key, Params: params}
	a.events[key] = sym
	return sym
}

// AddState registers a state symbol, stamping it with a fresh correlation
// ID.
func (a *Arcanum) AddState(name string, params []Param, vars []ast.StateVariable) *StateSymbol {
	sym := &StateSymbol{ID: uuid.New().String(), Name: name, Params: params, Variables: vars}
	a.states[name] = sym
	return sym
}

// GetEvent resolves an event symbol by its "State:symbol" key.
func (a *Arcanum) GetEvent(key string) (*EventSymbol, bool) {
	sym, ok := a.events[key]
	return sym, ok
}

// GetState resolves a state symbol by name.
func (a *Arcanum) GetState(name string) (*StateSymbol, bool) {
	sym, ok := a.states[name]
	return sym, ok
}

// ExitKey builds the lookup key for stateName's exit event.
func (a *Arcanum) ExitKey(stateName string) string {
	return stateName + ":" + a.Config.ExitMsgSymbol
}

// EnterKey builds the lookup key for stateName's enter event.
func (a *Arcanum) EnterKey(stateName string) string {
	return stateName + ":" + a.Config.EnterMsgSymbol
}

// DebugDump returns a stable-order human-readable listing of every
// registered symbol, keyed by the correlation ID stamped at registration.
// It is a diagnostic aid only and plays no role in emission.
func (a *Arcanum) DebugDump() []string {
	lines := make([]string, 0, len(a.events)+len(a.states))
	for _, sym := range a.events {
		lines = append(lines, fmt.Sprintf("event[%s] %s params=%d", sym.ID, sym.Key, len(sym.Params)))
	}
	for _, sym := range a.states {
		lines = append(lines, fmt.Sprintf("state[%s] %s params=%d vars=%d", sym.ID, sym.Name, len(sym.Params), len(sym.Variables)))
	}
	sort.Strings(lines)
	return lines
}

// paramsFromParameters converts ast.Parameter values into symtab Param
// values, defaulting an empty declared type to the unknown-type sentinel.
func paramsFromParameters(params []ast.Parameter) []Param {
	out := make([]Param, 0, len(params))
	for _, p := range params {
		typ := p.Type
		if typ == "" {
			typ = "<?>"
		}
		out = append(out, Param{Name: p.Name, Type: typ})
	}
	return out
}

// BuildFromSystem derives an Arcanum from a fully-resolved system AST: one
// state symbol per declared state (carrying its parameters and variables),
// and one event symbol per exit/enter handler found among each state's
// event handlers. It exists to let callers (and this module's own tests)
// exercise the emitter without first standing up a full frontend symbol
// table, mirroring the role played by builders in the teacher repo that
// assemble a runnable object graph from declarative input.
func BuildFromSystem(system *ast.System, cfg Config) *Arcanum {
	a := New(cfg)

	if system.Machine == nil {
		return a
	}

	for _, state := range system.Machine.States {
		a.AddState(state.Name, paramsFromParameters(state.Params), state.Variables)
	}

	for _, state := range system.Machine.States {
		for _, handler := range state.Handlers {
			if handler.Message != ast.MsgCustom {
				continue
			}
			switch handler.MessageName {
			case cfg.ExitMsgSymbol:
				a.AddEvent(a.ExitKey(state.Name), paramsFromParameters(handler.Params))
			case cfg.EnterMsgSymbol:
				a.AddEvent(a.EnterKey(state.Name), paramsFromParameters(handler.Params))
			}
		}
	}

	return a
}
