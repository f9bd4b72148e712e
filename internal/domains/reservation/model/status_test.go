package model_test

import (
	"testing"
	"wbrent/internal/domains/reservation/model"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []model.Status{
	model.StatusPending,
	model.StatusConfirmed,
	model.StatusPickedUp,
	model.StatusReturned,
	model.StatusCompleted,
	model.StatusRejected,
	model.StatusCancelled,
}

func TestStatus_CanTransitionTo(t *testing.T) {
	allowed := map[model.Status][]model.Status{
		model.StatusPending:   {model.StatusConfirmed, model.StatusRejected, model.StatusCancelled},
		model.StatusConfirmed: {model.StatusPickedUp, model.StatusCancelled},
		model.StatusPickedUp:  {model.StatusReturned, model.StatusCancelled},
		model.StatusReturned:  {model.StatusCompleted, model.StatusCancelled},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := contains(allowed[from], to)

			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatus_SameStatusIsNotATransition(t *testing.T) {
	for _, s := range allStatuses {
		assert.False(t, s.CanTransitionTo(s), s.String())
	}
}

func TestStatus_Terminal(t *testing.T) {
	terminal := []model.Status{model.StatusCompleted, model.StatusRejected, model.StatusCancelled}

	for _, s := range allStatuses {
		assert.Equal(t, contains(terminal, s), s.IsTerminal(), s.String())
	}
}

func TestStatus_Active(t *testing.T) {
	for _, s := range allStatuses {
		assert.Equal(t, contains(model.ActiveStatuses, s), s.IsActive(), s.String())
	}
}

func TestStatus_Releases(t *testing.T) {
	assert.True(t, model.StatusReturned.Releases())
	assert.True(t, model.StatusCancelled.Releases())
	assert.True(t, model.StatusRejected.Releases())
	assert.False(t, model.StatusConfirmed.Releases())
	assert.False(t, model.StatusCompleted.Releases())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, model.IsValidStatus("picked_up"))
	assert.False(t, model.IsValidStatus("lost"))
	assert.False(t, model.IsValidStatus(""))
}

func contains(list []model.Status, s model.Status) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}

	return false
}
