package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/bnema/tasks-cli/internal/adapters/render/menu"
	"github.com/bnema/tasks-cli/internal/application"
	"github.com/bnema/tasks-cli/internal/domain"
)

// Loop is the interactive menu session. It alternates between blocking on
// user input and dispatching to the task service, reporting every completed
// read to the watchdog. The run flag is checked once per full iteration;
// a flip during a blocking read takes effect when that read returns.
type Loop struct {
	service  *application.TaskService
	watchdog *Watchdog
	scanner  *bufio.Scanner
	out      io.Writer
	running  atomic.Bool
}

func NewLoop(service *application.TaskService, watchdog *Watchdog, in io.Reader, out io.Writer) *Loop {
	return &Loop{
		service:  service,
		watchdog: watchdog,
		scanner:  bufio.NewScanner(in),
		out:      out,
	}
}

func (l *Loop) Run(ctx context.Context) error {
	l.running.Store(true)
	l.watchdog.BindTarget(&l.running)
	l.watchdog.Start()
	defer l.watchdog.Stop()

	fmt.Fprintln(l.out, "Welcome to the Task Management System!")
	fmt.Fprintf(l.out, "Session timeout: %s of inactivity will auto-exit the app\n", menu.FormatIdlePeriod(l.watchdog.Timeout()))

	for l.running.Load() && ctx.Err() == nil {
		fmt.Fprintln(l.out, "\n"+menu.Menu())

		line, ok := l.prompt("Please select an operation (0-9): ")
		if !ok {
			l.running.Store(false)
			break
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			l.report("Invalid choice, please enter a number between 0-9!")
			l.pause()
			continue
		}

		switch choice {
		case 1:
			l.handleAdd(ctx)
		case 2:
			fmt.Fprintln(l.out, menu.TaskList(l.service.Tasks()))
		case 3:
			l.handleComplete(ctx)
		case 4:
			l.handleDelete(ctx)
		case 5:
			fmt.Fprintln(l.out, menu.Statistics(l.service.Statistics()))
		case 6:
			fmt.Fprintln(l.out, menu.History(l.service.History()))
		case 7:
			l.handleExport(ctx)
		case 8:
			l.handleImport(ctx)
		case 9:
			l.handleClear(ctx)
		case 0:
			fmt.Fprintln(l.out, "Thank you for using! Goodbye!")
			l.running.Store(false)
		default:
			l.report("Invalid choice, please enter a number between 0-9!")
		}

		if l.running.Load() {
			l.pause()
		}
	}

	return ctx.Err()
}

func (l *Loop) handleAdd(ctx context.Context) {
	title, ok := l.prompt("Please enter task title: ")
	if !ok {
		return
	}
	if strings.TrimSpace(title) == "" {
		l.report("Task title cannot be empty!")
		return
	}

	description, ok := l.prompt("Please enter task description (optional): ")
	if !ok {
		return
	}

	task, err := l.service.Add(ctx, title, description)
	if err != nil {
		l.report(err.Error())
		return
	}

	fmt.Fprintf(l.out, "Task '%s' has been added!\n", task.Title)
}

func (l *Loop) handleComplete(ctx context.Context) {
	tasks := l.service.Tasks()
	fmt.Fprintln(l.out, menu.TaskList(tasks))
	if len(tasks) == 0 {
		return
	}

	position, ok := l.promptPosition("Please enter the task number to complete: ")
	if !ok {
		return
	}

	if _, err := l.service.Complete(ctx, position); err != nil {
		l.reportTaskError(err)
		return
	}

	fmt.Fprintf(l.out, "Task %d has been marked as completed!\n", position)
}

func (l *Loop) handleDelete(ctx context.Context) {
	tasks := l.service.Tasks()
	fmt.Fprintln(l.out, menu.TaskList(tasks))
	if len(tasks) == 0 {
		return
	}

	position, ok := l.promptPosition("Please enter the task number to delete: ")
	if !ok {
		return
	}

	removed, err := l.service.Delete(ctx, position)
	if err != nil {
		l.reportTaskError(err)
		return
	}

	fmt.Fprintf(l.out, "Task '%s' has been deleted!\n", removed.Title)
}

func (l *Loop) handleExport(ctx context.Context) {
	path, ok := l.prompt("Enter filename for export (or press Enter for auto-generated name): ")
	if !ok {
		return
	}

	written, err := l.service.Export(ctx, path)
	if err != nil {
		l.report(err.Error())
		return
	}

	fmt.Fprintf(l.out, "Tasks exported to %s\n", written)
}

func (l *Loop) handleImport(ctx context.Context) {
	path, ok := l.prompt("Enter filename to import from: ")
	if !ok {
		return
	}
	path = strings.TrimSpace(path)
	if path == "" {
		l.report("Please enter a valid filename!")
		return
	}

	count, err := l.service.Import(ctx, path)
	if err != nil {
		if errors.Is(err, domain.ErrArchiveNotFound) {
			l.report(fmt.Sprintf("File %s not found!", path))
			return
		}
		l.report(err.Error())
		return
	}

	fmt.Fprintf(l.out, "Successfully imported %d tasks from %s\n", count, path)
}

func (l *Loop) handleClear(ctx context.Context) {
	confirm, ok := l.prompt("Are you sure you want to clear all tasks? (yes/no): ")
	if !ok {
		return
	}

	switch strings.ToLower(strings.TrimSpace(confirm)) {
	case "yes", "y":
		if err := l.service.Clear(ctx); err != nil {
			l.report(err.Error())
			return
		}
		fmt.Fprintln(l.out, "All tasks have been cleared!")
	default:
		fmt.Fprintln(l.out, "Operation cancelled.")
	}
}

// prompt blocks on one line of input and records the interaction with the
// watchdog once the read completes, whatever the input was. ok is false
// when stdin is exhausted.
func (l *Loop) prompt(label string) (string, bool) {
	fmt.Fprint(l.out, label)

	if !l.scanner.Scan() {
		return "", false
	}

	l.watchdog.NotifyActivity()
	return l.scanner.Text(), true
}

func (l *Loop) promptPosition(label string) (int, bool) {
	line, ok := l.prompt(label)
	if !ok {
		return 0, false
	}

	position, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		l.report("Please enter a valid number!")
		return 0, false
	}

	return position, true
}

func (l *Loop) pause() {
	if _, ok := l.prompt("\nPress Enter to continue..."); !ok {
		l.running.Store(false)
	}
}

func (l *Loop) report(text string) {
	fmt.Fprintln(l.out, menu.ErrorMessage(text))
}

func (l *Loop) reportTaskError(err error) {
	if errors.Is(err, domain.ErrInvalidPosition) {
		l.report("Invalid task number!")
		return
	}
	l.report(err.Error())
}
