package ports

import (
	"context"

	"github.com/bnema/tasks-cli/internal/domain"
)

type TaskRepository interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Replace(ctx context.Context, tasks []domain.Task) error
}

type TaskArchive interface {
	Write(ctx context.Context, path string, tasks []domain.Task) error
	Read(ctx context.Context, path string) ([]domain.Task, error)
}
