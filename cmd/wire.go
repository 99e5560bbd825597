package cmd

import (
	"context"
	"fmt"
	"time"

	jsonrepo "github.com/bnema/tasks-cli/internal/adapters/repo/json"
	"github.com/bnema/tasks-cli/internal/application"
	"github.com/bnema/tasks-cli/internal/ports"
	"github.com/bnema/tasks-cli/internal/session"
	"github.com/spf13/viper"
)

type app struct {
	service        *application.TaskService
	sessionTimeout time.Duration
	pollInterval   time.Duration
}

func wireApp() (*app, error) {
	cfg := viper.New()
	cfg.SetDefault("session.timeout", session.DefaultTimeout)
	cfg.SetDefault("session.poll_interval", time.Second)

	repo, err := jsonrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire task repository: %w", err)
	}

	service, err := application.NewTaskService(context.Background(), repo, jsonrepo.NewArchive(), ports.SystemClock{})
	if err != nil {
		return nil, fmt.Errorf("wire task service: %w", err)
	}

	return &app{
		service:        service,
		sessionTimeout: cfg.GetDuration("session.timeout"),
		pollInterval:   cfg.GetDuration("session.poll_interval"),
	}, nil
}
