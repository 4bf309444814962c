package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitErrorMessageFormat(t *testing.T) {
	err := NewParamCountMismatch("run-1", "transition to S2", 2, 1)
	assert.Contains(t, err.Error(), "framegen: fatal")
	assert.Contains(t, err.Error(), "param-count-mismatch")
	assert.Contains(t, err.Error(), "transition to S2")
	assert.Contains(t, err.Error(), "expected 2 argument(s), got 1")
}

func TestInvalidPopTargetAndUnresolvedState(t *testing.T) {
	err := NewInvalidPopTarget("run-1", "change-state")
	assert.Equal(t, ErrCodeInvalidPopTarget, err.Code)

	err2 := NewUnresolvedState("run-1", "transition", "Ghost")
	assert.Equal(t, ErrCodeUnresolvedState, err2.Code)
	assert.Contains(t, err2.Error(), "Ghost")
}

func TestDiagnosticsRecordsNonFatalConditions(t *testing.T) {
	d := New("run-1")
	assert.False(t, d.HasErrors())

	d.RecordError("state arg count mismatch")
	d.RecordWarning("unused domain variable x")

	assert.True(t, d.HasErrors())
	assert.Equal(t, []string{"state arg count mismatch"}, d.ErrorStrings())
	assert.Equal(t, []string{"unused domain variable x"}, d.WarningStrings())
}
