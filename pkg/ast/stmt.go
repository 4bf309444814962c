package ast

// Node is implemented by every declaration-or-statement item that can appear
// in an ordered statement list (event handler bodies, branch bodies).
type Node interface {
	nodeItem()
}

// VarDeclStmt declares a local with a mandatory initializer.
type VarDeclStmt struct {
	Name string
	Type string
	Init Expr
}

func (*VarDeclStmt) nodeItem() {}

// AssignmentStmt assigns RValue to LValue.
type AssignmentStmt struct {
	Line   int
	LValue Expr
	RValue Expr
}

func (*AssignmentStmt) nodeItem() {}

// CallStmt is a call expression used as a statement.
type CallStmt struct {
	Call *CallExpr
}

func (*CallStmt) nodeItem() {}

// ActionCallStmt is an action call used as a statement.
type ActionCallStmt struct {
	Call *ActionCallExpr
}

func (*ActionCallStmt) nodeItem() {}

// CallChainLiteralStmt is a call-chain literal used as a statement.
type CallChainLiteralStmt struct {
	Chain *CallChainLiteralExpr
}

func (*CallChainLiteralStmt) nodeItem() {}

// VariableStmt is a bare variable reference used as a statement (rare, but
// permitted by the grammar for e.g. a handler-local side-effecting getter).
type VariableStmt struct {
	Line     int
	Variable *VariableExpr
}

func (*VariableStmt) nodeItem() {}

// StateContextTargetKind distinguishes a transition/change-state target that
// names a state directly from one that pops the state stack.
type StateContextTargetKind int

const (
	TargetStateRef StateContextTargetKind = iota
	TargetStateStackPop
)

// StateContextTarget is the target of a transition or change-state
// statement. EnterArgs and StateArgs are only meaningful when Kind is
// TargetStateRef; the state-stack-pop form never carries them (spec §4.9).
type StateContextTarget struct {
	Kind      StateContextTargetKind
	StateName string
	EnterArgs []Expr
	StateArgs []Expr
}

// TransitionStmt lowers to exit-event / state-pointer swap / context swap /
// enter-event (spec §4.8, §4.9).
type TransitionStmt struct {
	Line     int
	Label    string
	Target   StateContextTarget
	ExitArgs []Expr
}

func (*TransitionStmt) nodeItem() {}

// ChangeStateStmt is a bare state-pointer swap with no events fired. A
// state-stack-pop target is illegal here (spec §4.10) and is rejected by the
// emitter as a fatal error.
type ChangeStateStmt struct {
	Line   int
	Target StateContextTarget
}

func (*ChangeStateStmt) nodeItem() {}

// StateStackOp enumerates the bare (non-transition) state-stack operations.
type StateStackOp int

const (
	StackPush StateStackOp = iota
	StackPop
)

// StateStackOpStmt is a bare push/pop of the state stack, independent of any
// transition (spec §7 supplement: distinct from the pop-transition form).
type StateStackOpStmt struct {
	Op StateStackOp
}

func (*StateStackOpStmt) nodeItem() {}

// TerminatorKind distinguishes a handler/branch return from a fallthrough.
type TerminatorKind int

const (
	TermReturn TerminatorKind = iota
	TermContinue
)

// Terminator closes an event handler body or a test branch body.
type Terminator struct {
	Kind       TerminatorKind
	ReturnExpr Expr // non-nil only when Kind is TermReturn and a value is returned
}

// TestStmt wraps one of the three test-statement kinds.
type TestStmt struct {
	Test interface{} // *BoolTest | *StringMatchTest | *NumberMatchTest
}

func (*TestStmt) nodeItem() {}

// BoolBranch is one "if"/"else if" arm of a boolean test.
type BoolBranch struct {
	Negated    bool
	Cond       Expr
	Statements []Node
	Terminator *Terminator
}

// ElseBranch is the shared shape of the optional trailing else arm across
// all three test-statement kinds.
type ElseBranch struct {
	Statements []Node
	Terminator *Terminator
}

// BoolTest is a chain of "if (cond) {...} else if (cond) {...}" branches
// with an optional trailing else.
type BoolTest struct {
	Branches []BoolBranch
	Else     *ElseBranch
}

// StringMatchBranch matches Expr against one or more string patterns; the
// branch is taken when any one of them matches.
type StringMatchBranch struct {
	Patterns   []string
	Statements []Node
	Terminator *Terminator
}

// StringMatchTest dispatches on string equality against Expr.
type StringMatchTest struct {
	Expr     Expr
	Branches []StringMatchBranch
	Else     *ElseBranch
}

// NumberMatchBranch matches Expr against one or more numeric patterns.
type NumberMatchBranch struct {
	Patterns   []string
	Statements []Node
	Terminator *Terminator
}

// NumberMatchTest dispatches on numeric equality against Expr.
type NumberMatchTest struct {
	Expr     Expr
	Branches []NumberMatchBranch
	Else     *ElseBranch
}
