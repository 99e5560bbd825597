package session

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	jsonrepo "github.com/bnema/tasks-cli/internal/adapters/repo/json"
	"github.com/bnema/tasks-cli/internal/application"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *application.TaskService {
	t.Helper()

	config := viper.New()
	config.Set("tasks.path", filepath.Join(t.TempDir(), "tasks.json"))

	repo, err := jsonrepo.NewRepository(config)
	require.NoError(t, err)

	service, err := application.NewTaskService(context.Background(), repo, jsonrepo.NewArchive(), nil)
	require.NoError(t, err)
	return service
}

func scriptedInput(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestLoopAddListExit(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	wd := NewWatchdog(WithPollInterval(50*time.Millisecond), WithOutput(out))
	loop := NewLoop(newTestService(t), wd, scriptedInput(
		"1", "buy milk", "two liters", "",
		"2", "",
		"0",
	), out)

	require.NoError(t, loop.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Welcome to the Task Management System!")
	assert.Contains(t, output, "Task 'buy milk' has been added!")
	assert.Contains(t, output, "buy milk")
	assert.Contains(t, output, "Thank you for using! Goodbye!")
	assert.False(t, wd.Running(), "loop must stop the watchdog on exit")
}

func TestLoopInvalidChoiceRepromptsInsteadOfExit(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	wd := NewWatchdog(WithPollInterval(50*time.Millisecond), WithOutput(out))
	loop := NewLoop(newTestService(t), wd, scriptedInput("abc", "", "0"), out)

	require.NoError(t, loop.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Invalid choice, please enter a number between 0-9!")
	assert.Contains(t, output, "Thank you for using! Goodbye!")
	assert.Equal(t, 2, strings.Count(output, "Please select an operation (0-9):"),
		"invalid input should re-prompt, not exit")
}

func TestLoopOutOfRangeChoiceReports(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	wd := NewWatchdog(WithPollInterval(50*time.Millisecond), WithOutput(out))
	loop := NewLoop(newTestService(t), wd, scriptedInput("12", "", "0"), out)

	require.NoError(t, loop.Run(context.Background()))
	assert.Contains(t, out.String(), "Invalid choice, please enter a number between 0-9!")
}

func TestLoopCompleteInvalidNumber(t *testing.T) {
	t.Parallel()

	service := newTestService(t)
	_, err := service.Add(context.Background(), "buy milk", "")
	require.NoError(t, err)

	out := &syncBuffer{}
	wd := NewWatchdog(WithPollInterval(50*time.Millisecond), WithOutput(out))
	loop := NewLoop(service, wd, scriptedInput("3", "9", "", "0"), out)

	require.NoError(t, loop.Run(context.Background()))
	assert.Contains(t, out.String(), "Invalid task number!")
}

func TestLoopEmptyTitleRejected(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	wd := NewWatchdog(WithPollInterval(50*time.Millisecond), WithOutput(out))
	loop := NewLoop(newTestService(t), wd, scriptedInput("1", "   ", "", "0"), out)

	require.NoError(t, loop.Run(context.Background()))
	assert.Contains(t, out.String(), "Task title cannot be empty!")
}

func TestLoopClearRequiresConfirmation(t *testing.T) {
	t.Parallel()

	service := newTestService(t)
	_, err := service.Add(context.Background(), "buy milk", "")
	require.NoError(t, err)

	out := &syncBuffer{}
	wd := NewWatchdog(WithPollInterval(50*time.Millisecond), WithOutput(out))
	loop := NewLoop(service, wd, scriptedInput("9", "no", "", "0"), out)

	require.NoError(t, loop.Run(context.Background()))
	assert.Contains(t, out.String(), "Operation cancelled.")
	assert.Equal(t, 1, service.Count().Total)
}

func TestLoopEOFEndsSessionCleanly(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	wd := NewWatchdog(WithPollInterval(50*time.Millisecond), WithOutput(out))
	loop := NewLoop(newTestService(t), wd, strings.NewReader(""), out)

	require.NoError(t, loop.Run(context.Background()))
	assert.False(t, wd.Running())
}

func TestLoopWatchdogExpiryEndsSession(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	wd := NewWatchdog(
		WithTimeout(150*time.Millisecond),
		WithPollInterval(50*time.Millisecond),
		WithOutput(out),
	)

	in, feed := io.Pipe()
	loop := NewLoop(newTestService(t), wd, in, out)

	done := make(chan error, 1)
	go func() {
		done <- loop.Run(context.Background())
	}()

	// One harmless action, then stay idle past the timeout before answering
	// the continue prompt; the loop observes the cleared flag on its next
	// iteration boundary.
	_, err := feed.Write([]byte("5\n"))
	require.NoError(t, err)
	time.Sleep(400 * time.Millisecond)
	_, err = feed.Write([]byte("\n"))
	require.NoError(t, err)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not exit after watchdog expiry")
	}
	require.NoError(t, feed.Close())

	output := out.String()
	assert.Contains(t, output, "Session timeout!")
	assert.NotContains(t, output, "Goodbye")
}
