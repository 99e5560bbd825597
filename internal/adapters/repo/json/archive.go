package json

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/tasks-cli/internal/domain"
	"github.com/bnema/tasks-cli/internal/ports"
)

// Archive reads and writes export/import files in the same record format as
// the backing store, at caller-chosen paths.
type Archive struct{}

var _ ports.TaskArchive = Archive{}

func NewArchive() Archive {
	return Archive{}
}

func (Archive) Write(ctx context.Context, path string, tasks []domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := normalizeTasksPath(path)
	if err != nil {
		return err
	}

	return writeRecords(path, toRecords(tasks))
}

// Read decodes an archive file. Unlike the backing store, a missing or
// malformed archive is an error: the user named the file explicitly.
func (Archive) Read(ctx context.Context, path string) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrArchiveNotFound, path)
		}
		return nil, fmt.Errorf("read archive file: %w", err)
	}

	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode archive file: %w", err)
	}

	return fromRecords(records), nil
}
