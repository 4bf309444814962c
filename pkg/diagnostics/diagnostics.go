// Package diagnostics implements the emitter's three-tier error model (spec
// §7): fatal EmitError values that abort a Run immediately, RecordedError
// values appended to a Diagnostics instance for a non-fatal condition that
// still invalidates the run's result, and Warning values for conditions that
// let emission proceed.
package diagnostics

import "fmt"

// ErrorCode enumerates the fatal conditions the emitter can hit.
type ErrorCode int

const (
	ErrCodeNone ErrorCode = iota
	// ErrCodeParamCountMismatch: argument count disagreed with the resolved
	// parameter count for an enter, exit, or state parameter list.
	ErrCodeParamCountMismatch
	// ErrCodeUnresolvedEvent: no event symbol exists for a required exit key.
	ErrCodeUnresolvedEvent
	// ErrCodeUnknownScope: a variable reference carries a VariableScope the
	// emitter does not recognize.
	ErrCodeUnknownScope
	// ErrCodeInvalidPopTarget: a change-state statement named a
	// state-stack-pop target, which change-state can never legally use.
	ErrCodeInvalidPopTarget
	// ErrCodeUnresolvedState: a transition or change-state named a state the
	// symbol table has no entry for.
	ErrCodeUnresolvedState
	// ErrCodeMalformedNode: the AST handed to the emitter contains a node
	// shape the emitter has no case for -- a frontend/AST contract
	// violation rather than a Frame-semantic error.
	ErrCodeMalformedNode
)

// EmitError is a fatal error: the condition spec §7 says "abort emission
// immediately". Run returns one of these as its error result; no further
// text is appended to the buffer for the construct that triggered it.
type EmitError struct {
	Code    ErrorCode
	RunID   string
	Context string // e.g. "state S1 exit", "transition S1->S2"
	Message string
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("framegen: fatal [%s] in %s: %s", e.Code, e.Context, e.Message)
}

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeParamCountMismatch:
		return "param-count-mismatch"
	case ErrCodeUnresolvedEvent:
		return "unresolved-event"
	case ErrCodeUnknownScope:
		return "unknown-scope"
	case ErrCodeInvalidPopTarget:
		return "invalid-pop-target"
	case ErrCodeUnresolvedState:
		return "unresolved-state"
	case ErrCodeMalformedNode:
		return "malformed-node"
	default:
		return "none"
	}
}

// NewMalformedNode reports a fatal unrecognized-AST-shape condition.
func NewMalformedNode(runID, context, message string) *EmitError {
	return &EmitError{
		Code:    ErrCodeMalformedNode,
		RunID:   runID,
		Context: context,
		Message: message,
	}
}

// NewParamCountMismatch reports a fatal argument/parameter count mismatch.
func NewParamCountMismatch(runID, context string, want, got int) *EmitError {
	return &EmitError{
		Code:    ErrCodeParamCountMismatch,
		RunID:   runID,
		Context: context,
		Message: fmt.Sprintf("expected %d argument(s), got %d", want, got),
	}
}

// NewUnresolvedEvent reports a fatal missing-event-symbol condition.
func NewUnresolvedEvent(runID, context, key string) *EmitError {
	return &EmitError{
		Code:    ErrCodeUnresolvedEvent,
		RunID:   runID,
		Context: context,
		Message: fmt.Sprintf("no event symbol registered for key %q", key),
	}
}

// NewUnknownScope reports a fatal unrecognized variable scope.
func NewUnknownScope(runID, context, name string) *EmitError {
	return &EmitError{
		Code:    ErrCodeUnknownScope,
		RunID:   runID,
		Context: context,
		Message: fmt.Sprintf("illegal scope for variable %q", name),
	}
}

// NewInvalidPopTarget reports a fatal state-stack-pop used as a
// change-state target.
func NewInvalidPopTarget(runID, context string) *EmitError {
	return &EmitError{
		Code:    ErrCodeInvalidPopTarget,
		RunID:   runID,
		Context: context,
		Message: "change-state cannot target a state-stack pop",
	}
}

// NewUnresolvedState reports a fatal missing-state-symbol condition.
func NewUnresolvedState(runID, context, name string) *EmitError {
	return &EmitError{
		Code:    ErrCodeUnresolvedState,
		RunID:   runID,
		Context: context,
		Message: fmt.Sprintf("no state symbol registered for %q", name),
	}
}

// RecordedError is a non-fatal error: emission continues but the run's
// result is invalid (spec §7, "Recorded error").
type RecordedError struct {
	RunID   string
	Message string
}

func (e RecordedError) Error() string {
	return e.Message
}

// Warning is an advisory condition that does not invalidate the run (spec
// §7, "Warning").
type Warning struct {
	RunID   string
	Message string
}

// Diagnostics accumulates the recorded errors and warnings produced over the
// course of a single Run.
type Diagnostics struct {
	RunID    string
	Errors   []RecordedError
	Warnings []Warning
}

// New returns an empty Diagnostics stamped with runID.
func New(runID string) *Diagnostics {
	return &Diagnostics{RunID: runID}
}

// RecordError appends a non-fatal error.
func (d *Diagnostics) RecordError(message string) {
	d.Errors = append(d.Errors, RecordedError{RunID: d.RunID, Message: message})
}

// RecordWarning appends a warning.
func (d *Diagnostics) RecordWarning(message string) {
	d.Warnings = append(d.Warnings, Warning{RunID: d.RunID, Message: message})
}

// HasErrors reports whether any non-fatal error was recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// ErrorStrings returns the recorded errors' messages in order.
func (d *Diagnostics) ErrorStrings() []string {
	out := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		out[i] = e.Message
	}
	return out
}

// WarningStrings returns the recorded warnings' messages in order.
func (d *Diagnostics) WarningStrings() []string {
	out := make([]string, len(d.Warnings))
	for i, w := range d.Warnings {
		out[i] = w.Message
	}
	return out
}
