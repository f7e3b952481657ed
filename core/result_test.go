package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput_String(t *testing.T) {
	in := Input{"destination": "Kyoto", "count": 3}

	assert.Equal(t, "Kyoto", in.String("destination", ""))
	assert.Equal(t, "fallback", in.String("missing", "fallback"))
	assert.Equal(t, "fallback", in.String("count", "fallback"))
}

func TestInput_StringSlice(t *testing.T) {
	in := Input{
		"strings": []string{"food", "history"},
		"anys":    []any{"food", 42, "history"},
		"bare":    "food",
		"empty":   "",
		"number":  7,
	}

	assert.Equal(t, []string{"food", "history"}, in.StringSlice("strings"))
	assert.Equal(t, []string{"food", "history"}, in.StringSlice("anys"))
	assert.Equal(t, []string{"food"}, in.StringSlice("bare"))
	assert.Nil(t, in.StringSlice("empty"))
	assert.Nil(t, in.StringSlice("number"))
	assert.Nil(t, in.StringSlice("missing"))
}

func TestResult_Classification(t *testing.T) {
	assert.True(t, Success("ok", nil).OK())
	assert.False(t, Success("ok", nil).Failed())

	partial := Partial("degraded", map[string]any{"k": "v"}, []string{"stage: boom"})
	assert.False(t, partial.OK())
	assert.False(t, partial.Failed())
	assert.Equal(t, StatusPartialSuccess, partial.Status)

	assert.True(t, Failure("boom").Failed())
}

func TestResult_DataMap(t *testing.T) {
	r := Success("ok", map[string]any{
		"nested": map[string]any{"key": "value"},
		"scalar": "not a map",
	})

	assert.Equal(t, map[string]any{"key": "value"}, r.DataMap("nested"))
	assert.Empty(t, r.DataMap("scalar"))
	assert.Empty(t, r.DataMap("missing"))
	assert.Empty(t, Failure("boom").DataMap("nested"))
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError([]string{"duration", "destination"})

	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "missing required fields: destination, duration", err.Error())
	assert.Equal(t, []string{"destination", "duration"}, err.Fields)

	res := err.ToResult()
	require.True(t, res.Failed())
	assert.Equal(t, []string{"destination", "duration"}, res.Data["missing_fields"])
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("agent", "ghost")
	assert.Equal(t, KindNotFound, err.Kind)
	assert.Equal(t, "agent not found: ghost", err.Error())

	res := err.ToResult()
	assert.True(t, res.Failed())
	assert.Empty(t, res.Data)
}

func TestNewUnavailableError(t *testing.T) {
	err := NewUnavailableError("sleepy_agent")
	assert.Equal(t, KindUnavailable, err.Kind)
	assert.Equal(t, "receiver agent offline: sleepy_agent", err.Error())
}

func TestNewCollaboratorError(t *testing.T) {
	err := NewCollaboratorError(errors.New("connection reset"))
	assert.Equal(t, KindCollaborator, err.Kind)
	assert.Equal(t, "generation failed: connection reset", err.Error())
	assert.True(t, err.ToResult().Failed())
}
