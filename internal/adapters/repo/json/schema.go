package json

import (
	"time"

	"github.com/bnema/tasks-cli/internal/domain"
)

type taskRecord struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at,omitempty"`
	CompletedAt string `json:"completed_at,omitempty"`
}

func toRecords(tasks []domain.Task) []taskRecord {
	records := make([]taskRecord, 0, len(tasks))
	for _, task := range tasks {
		record := taskRecord{
			Title:       task.Title,
			Description: task.Description,
			Completed:   task.Completed,
			CreatedAt:   formatTime(task.CreatedAt),
		}
		if task.CompletedAt != nil {
			record.CompletedAt = formatTime(*task.CompletedAt)
		}
		records = append(records, record)
	}

	return records
}

func fromRecords(records []taskRecord) []domain.Task {
	tasks := make([]domain.Task, 0, len(records))
	for _, record := range records {
		task := domain.Task{
			Title:       record.Title,
			Description: record.Description,
			Completed:   record.Completed,
			CreatedAt:   parseTime(record.CreatedAt),
		}
		if completedAt := parseTime(record.CompletedAt); !completedAt.IsZero() {
			task.CompletedAt = &completedAt
		}
		tasks = append(tasks, task)
	}

	return tasks
}

// timeLayouts covers RFC 3339 plus the zone-less ISO 8601 form older export
// files carry.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}

	return time.Time{}
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339Nano)
}
