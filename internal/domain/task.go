package domain

import (
	"strings"
	"time"
)

type Task struct {
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

func NewTask(title, description string, now time.Time) Task {
	return Task{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
	}
}

func (t *Task) MarkCompleted(now time.Time) {
	t.Completed = true
	t.CompletedAt = &now
}

func (t *Task) MarkPending() {
	t.Completed = false
	t.CompletedAt = nil
}

func (t Task) StatusGlyph() string {
	if t.Completed {
		return "✓"
	}
	return "○"
}

// ValidPosition reports whether n addresses a task in a list of the given
// length. Positions are 1-based and shift when earlier tasks are deleted.
func ValidPosition(n, length int) bool {
	return n >= 1 && n <= length
}
