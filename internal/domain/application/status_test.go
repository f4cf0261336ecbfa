package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusCompleted, true},
		{StatusPending, StatusRejected, true},
		{StatusProcessing, StatusCompleted, true},
		{StatusProcessing, StatusRejected, true},
		{StatusProcessing, StatusPending, false},
		{StatusCompleted, StatusRejected, false},
		{StatusRejected, StatusPending, false},
		{StatusPending, StatusPending, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("processing")
	assert.NoError(t, err)
	assert.Equal(t, StatusProcessing, s)

	_, err = ParseStatus("approved")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	assert.True(t, StatusCompleted.Terminal())
	assert.False(t, StatusPending.Terminal())
}

func TestEditableOnlyWhilePending(t *testing.T) {
	assert.True(t, Application{Status: StatusPending}.Editable())
	assert.False(t, Application{Status: StatusProcessing}.Editable())
}
