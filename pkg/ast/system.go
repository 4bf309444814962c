package ast

// Parameter is a name plus an optional declared type string, used for
// interface method parameters, state parameters, and action parameters.
type Parameter struct {
	Name string
	Type string // "<?>" when undeclared
}

// StateVariable is a state-local variable: a name, optional declared type,
// and a mandatory initializer expression evaluated each time the owning
// state is (re-)entered.
type StateVariable struct {
	Name string
	Type string
	Init Expr
}

// MessageKind distinguishes a handler keyed to a specific message from the
// wildcard "any message" handler.
type MessageKind int

const (
	MsgCustom MessageKind = iota
	MsgAny
)

// EventHandler reacts to one message within one state.
type EventHandler struct {
	Message       MessageKind
	MessageName   string // meaningful only when Message == MsgCustom
	Line          int
	Params        []Parameter // the message's declared parameters, if any
	Items         []Node
	Terminator    Terminator
	HasTransition bool   // true if the body contains a TransitionStmt
	ReturnType    string // declared return type for this message, "" for void
}

// State is a named unit of behaviour: an ordered set of event handlers plus
// optional parameters, state variables, entry calls, and a dispatch
// fallthrough target.
type State struct {
	Name      string
	Line      int
	Params    []Parameter
	Variables []StateVariable
	Calls     []Expr
	Handlers  []EventHandler
	Dispatch  string // target state name, "" if none
}

// ActionDecl is a named helper method emitted as a stub method whose body
// panics with a not-implemented message.
type ActionDecl struct {
	Name       string
	Params     []Parameter
	ReturnType string // "" for void
}

// DomainVariable is a system-level member variable.
type DomainVariable struct {
	Name string
	Type string
	Init Expr
}

// InterfaceMethod is an external-facing entry point corresponding to one
// message the machine can process.
type InterfaceMethod struct {
	Name       string
	Alias      string // message string used internally, "" if same as Name
	Params     []Parameter
	ReturnType string // "" for void
}

// InterfaceBlock is the system's ordered set of interface methods.
type InterfaceBlock struct {
	Methods []InterfaceMethod
}

// MachineBlock is the system's ordered set of named states. The first state
// is the initial state (spec §3 invariant).
type MachineBlock struct {
	States []*State
}

// ActionsBlock is the system's ordered set of action declarations.
type ActionsBlock struct {
	Actions []ActionDecl
}

// DomainBlock is the system's ordered set of member variables.
type DomainBlock struct {
	Variables []DomainVariable
}

// System is the root AST node: a name plus up to four optional blocks.
type System struct {
	Name      string
	Line      int
	Interface *InterfaceBlock
	Machine   *MachineBlock
	Actions   *ActionsBlock
	Domain    *DomainBlock
}

// FirstState returns the initial state, or nil if the machine block is
// empty or absent.
func (s *System) FirstState() *State {
	if s.Machine == nil || len(s.Machine.States) == 0 {
		return nil
	}
	return s.Machine.States[0]
}

// HasStates reports whether the system declares at least one state. The
// machinery block is emitted if and only if this is true (spec §3
// invariant, §4.11).
func (s *System) HasStates() bool {
	return s.Machine != nil && len(s.Machine.States) > 0
}
