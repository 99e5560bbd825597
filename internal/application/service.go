package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/tasks-cli/internal/domain"
	"github.com/bnema/tasks-cli/internal/ports"
)

// TaskService owns the in-memory task sequence. The sequence is loaded once
// at construction and written back whole after every mutation. All calls
// happen on the foreground goroutine; a failed write leaves the in-memory
// mutation applied so the session can keep going.
type TaskService struct {
	repo    ports.TaskRepository
	archive ports.TaskArchive
	clock   ports.Clock
	tasks   []domain.Task
}

func NewTaskService(ctx context.Context, repo ports.TaskRepository, archive ports.TaskArchive, clock ports.Clock) (*TaskService, error) {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	tasks, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	return &TaskService{
		repo:    repo,
		archive: archive,
		clock:   clock,
		tasks:   tasks,
	}, nil
}

func (s *TaskService) Add(ctx context.Context, title, description string) (domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return domain.Task{}, domain.ErrEmptyTitle
	}

	task := domain.NewTask(title, description, s.clock.Now())
	s.tasks = append(s.tasks, task)

	if err := s.persist(ctx); err != nil {
		return task, err
	}

	return task, nil
}

// Tasks returns a snapshot copy; callers index it by 1-based position.
func (s *TaskService) Tasks() []domain.Task {
	snapshot := make([]domain.Task, len(s.tasks))
	copy(snapshot, s.tasks)
	return snapshot
}

func (s *TaskService) Complete(ctx context.Context, position int) (domain.Task, error) {
	if !domain.ValidPosition(position, len(s.tasks)) {
		return domain.Task{}, domain.ErrInvalidPosition
	}

	s.tasks[position-1].MarkCompleted(s.clock.Now())

	if err := s.persist(ctx); err != nil {
		return s.tasks[position-1], err
	}

	return s.tasks[position-1], nil
}

func (s *TaskService) Reopen(ctx context.Context, position int) (domain.Task, error) {
	if !domain.ValidPosition(position, len(s.tasks)) {
		return domain.Task{}, domain.ErrInvalidPosition
	}

	s.tasks[position-1].MarkPending()

	if err := s.persist(ctx); err != nil {
		return s.tasks[position-1], err
	}

	return s.tasks[position-1], nil
}

func (s *TaskService) Delete(ctx context.Context, position int) (domain.Task, error) {
	if !domain.ValidPosition(position, len(s.tasks)) {
		return domain.Task{}, domain.ErrInvalidPosition
	}

	removed := s.tasks[position-1]
	s.tasks = append(s.tasks[:position-1], s.tasks[position:]...)

	if err := s.persist(ctx); err != nil {
		return removed, err
	}

	return removed, nil
}

func (s *TaskService) Clear(ctx context.Context) error {
	s.tasks = nil
	return s.persist(ctx)
}

func (s *TaskService) Count() Counts {
	counts := Counts{Total: len(s.tasks)}
	for _, task := range s.tasks {
		if task.Completed {
			counts.Completed++
		}
	}
	counts.Pending = counts.Total - counts.Completed
	return counts
}

func (s *TaskService) Statistics() Statistics {
	counts := s.Count()

	stats := Statistics{Counts: counts}
	if counts.Total > 0 {
		stats.CompletionRate = float64(counts.Completed) / float64(counts.Total) * 100
	}

	return stats
}

func (s *TaskService) History() []domain.Task {
	return s.Tasks()
}

// Export writes the current sequence to path. An empty path picks an
// auto-generated name embedding the current date and time. Returns the path
// actually written.
func (s *TaskService) Export(ctx context.Context, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = fmt.Sprintf("tasks_export_%s.json", s.clock.Now().Format("20060102_150405"))
	}

	if err := s.archive.Write(ctx, path, s.tasks); err != nil {
		return path, fmt.Errorf("export tasks: %w", err)
	}

	return path, nil
}

// Import appends the records found at path onto the sequence and persists
// the merged result. Returns the number of tasks imported.
func (s *TaskService) Import(ctx context.Context, path string) (int, error) {
	imported, err := s.archive.Read(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("import tasks: %w", err)
	}

	s.tasks = append(s.tasks, imported...)

	if err := s.persist(ctx); err != nil {
		return len(imported), err
	}

	return len(imported), nil
}

func (s *TaskService) persist(ctx context.Context) error {
	if err := s.repo.Replace(ctx, s.tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}
