// Package framegen translates a resolved Frame system AST and its symbol
// table into Go source implementing Frame's runtime semantics: hierarchical
// state dispatch, enter/exit event handling, state-context lifetime, and
// the auxiliary state stack.
package framegen

import (
	"github.com/anggasct/framegen/pkg/ast"
	"github.com/anggasct/framegen/pkg/buffer"
	"github.com/anggasct/framegen/pkg/comments"
	"github.com/anggasct/framegen/pkg/config"
	"github.com/anggasct/framegen/pkg/diagnostics"
	"github.com/anggasct/framegen/pkg/emitter"
	"github.com/anggasct/framegen/pkg/symtab"
)

// Core emitter types
type (
	// Emitter is the AST-walking translation engine.
	Emitter = emitter.Emitter

	// Sink is anything expression/statement emission can append text to.
	Sink = emitter.Sink

	// Logger is the emitter's optional leveled logging collaborator.
	Logger = emitter.Logger

	// LogLevel is a Logger severity tier.
	LogLevel = emitter.LogLevel

	// LogFormatter renders one log line for a Logger.
	LogFormatter = emitter.LogFormatter
)

// Re-export log levels
const (
	LogError   = emitter.LogError
	LogWarning = emitter.LogWarning
	LogInfo    = emitter.LogInfo
	LogDebug   = emitter.LogDebug
)

// NewLogger returns a Logger that emits everything at or above level.
func NewLogger(level LogLevel) *Logger {
	return emitter.NewLogger(level)
}

// New constructs an Emitter over cfg, arcanium, and the scanned comment
// tokens. logger may be nil.
func New(cfg *config.EmitterConfig, arcanium *symtab.Arcanum, commentTokens []comments.Token, logger *Logger) *Emitter {
	return emitter.New(cfg, arcanium, commentTokens, logger)
}

// Configuration types
type (
	// EmitterConfig controls the shape of the machinery an Emitter produces.
	EmitterConfig = config.EmitterConfig
)

// NewConfig returns a config with compilerVersion set and every Generate*
// flag false.
func NewConfig(compilerVersion string) *EmitterConfig {
	return config.New(compilerVersion)
}

// AllFeatures returns a config with every Generate* flag true.
func AllFeatures(compilerVersion string) *EmitterConfig {
	return config.AllFeatures(compilerVersion)
}

// Symbol table types
type (
	// Arcanum is the symbol lookup facade an Emitter queries during a run.
	Arcanum = symtab.Arcanum

	// Param is a declared parameter or variable name plus its type.
	Param = symtab.Param

	// EventSymbol is the resolved parameter list for one exit or enter event.
	EventSymbol = symtab.EventSymbol

	// StateSymbol is the resolved parameter and variable lists for one state.
	StateSymbol = symtab.StateSymbol

	// SymtabConfig holds the exit/enter message-symbol sentinels.
	SymtabConfig = symtab.Config
)

// NewArcanum returns an empty Arcanum using cfg for event-key construction.
func NewArcanum(cfg SymtabConfig) *Arcanum {
	return symtab.New(cfg)
}

// BuildArcanum derives an Arcanum from a fully-resolved system AST.
func BuildArcanum(system *ast.System, cfg SymtabConfig) *Arcanum {
	return symtab.BuildFromSystem(system, cfg)
}

// DefaultSymtabConfig returns the standard Frame exit/enter sentinels.
func DefaultSymtabConfig() SymtabConfig {
	return symtab.DefaultConfig()
}

// Comment interleaving types
type (
	// CommentToken is one comment retained from the scanner's token stream.
	CommentToken = comments.Token

	// CommentTokenKind distinguishes a single-line comment from a block comment.
	CommentTokenKind = comments.TokenKind
)

const (
	SingleLineComment = comments.SingleLine
	BlockComment      = comments.Block
)

// Diagnostics types
type (
	// EmitError is a fatal error that aborts a Run immediately.
	EmitError = diagnostics.EmitError

	// ErrorCode enumerates the fatal conditions an Emitter can hit.
	ErrorCode = diagnostics.ErrorCode

	// Diagnostics accumulates the recorded errors and warnings from one Run.
	Diagnostics = diagnostics.Diagnostics
)

// Buffer types, re-exported from pkg/buffer. The emitter's expression
// rendering is not exported, so these are plain text buffers to callers.
type (
	// CodeBuffer is the emitter's primary append-only output buffer.
	CodeBuffer = buffer.CodeBuffer

	// StringSink is a minimal secondary buffer for rendering an expression
	// into a caller-provided string.
	StringSink = buffer.StringSink
)

// NewStringSink returns an empty StringSink.
func NewStringSink() *StringSink {
	return buffer.NewStringSink()
}

// AST types, re-exported so callers can build a system AST without
// importing pkg/ast directly.
type (
	System          = ast.System
	MachineBlock    = ast.MachineBlock
	InterfaceBlock  = ast.InterfaceBlock
	ActionsBlock    = ast.ActionsBlock
	DomainBlock     = ast.DomainBlock
	State           = ast.State
	EventHandler    = ast.EventHandler
	Parameter       = ast.Parameter
	StateVariable   = ast.StateVariable
	InterfaceMethod = ast.InterfaceMethod
	ActionDecl      = ast.ActionDecl
	DomainVariable  = ast.DomainVariable
	MessageKind     = ast.MessageKind
)

const (
	MsgCustom = ast.MsgCustom
	MsgAny    = ast.MsgAny
)
