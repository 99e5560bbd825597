package json

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/tasks-cli/internal/domain"
	"github.com/bnema/tasks-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	tasksPathKey    = "tasks.path"
	tasksFileMode   = 0o600
	tasksDirMode    = 0o700
	tasksConfigDir  = ".tasks"
	tasksDataFile   = "tasks.json"
	tempFilePattern = ".tasks-*.json.tmp"
)

type Repository struct {
	tasksPath string
	mu        *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.TaskRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, tasksConfigDir, tasksDataFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, tasksConfigDir))
	cfg.SetDefault(tasksPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	tasksPath := cfg.GetString(tasksPathKey)
	if tasksPath == "" {
		return nil, errors.New("tasks path is empty")
	}
	tasksPath, err = normalizeTasksPath(tasksPath)
	if err != nil {
		return nil, err
	}

	return &Repository{tasksPath: tasksPath, mu: lockForPath(tasksPath)}, nil
}

// Load reads the whole backing file. A missing or malformed file yields an
// empty sequence rather than an error so a fresh or damaged store starts
// over clean.
func (r *Repository) Load(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.tasksPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read tasks file: %w", err)
	}

	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil
	}

	return fromRecords(records), nil
}

func (r *Repository) Replace(ctx context.Context, tasks []domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return writeRecords(r.tasksPath, toRecords(tasks))
}

func normalizeTasksPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve tasks path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func writeRecords(path string, records []taskRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), tasksDirMode); err != nil {
		return fmt.Errorf("create tasks directory: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp tasks file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp tasks file: %w", err)
	}

	if err := tempFile.Chmod(tasksFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp tasks file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp tasks file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace tasks file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(path, tasksFileMode); err != nil {
		return fmt.Errorf("chmod tasks file: %w", err)
	}

	return nil
}
