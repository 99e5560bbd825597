package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskTrimsFieldsAndStartsPending(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	task := NewTask("  buy milk  ", " two liters ", now)

	assert.Equal(t, "buy milk", task.Title)
	assert.Equal(t, "two liters", task.Description)
	assert.False(t, task.Completed)
	assert.Equal(t, now, task.CreatedAt)
	assert.Nil(t, task.CompletedAt)
}

func TestTaskCompleteThenReopen(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	done := created.Add(2 * time.Hour)

	task := NewTask("buy milk", "", created)
	task.MarkCompleted(done)
	require.True(t, task.Completed)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, done, *task.CompletedAt)
	assert.Equal(t, "✓", task.StatusGlyph())

	task.MarkPending()
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)
	assert.Equal(t, "○", task.StatusGlyph())
}

func TestValidPosition(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		length int
		want   bool
	}{
		{name: "first", n: 1, length: 3, want: true},
		{name: "last", n: 3, length: 3, want: true},
		{name: "zero", n: 0, length: 3, want: false},
		{name: "negative", n: -1, length: 3, want: false},
		{name: "past end", n: 4, length: 3, want: false},
		{name: "empty list", n: 1, length: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPosition(tt.n, tt.length))
		})
	}
}
