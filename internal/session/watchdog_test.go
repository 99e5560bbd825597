package session

import (
	"bytes"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer guards writes from the poller goroutine against reads from the
// test goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchdogExpiryClearsRunFlag(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	var flag atomic.Bool
	flag.Store(true)

	wd := NewWatchdog(
		WithTimeout(time.Second),
		WithPollInterval(100*time.Millisecond),
		WithOutput(out),
	)
	wd.BindTarget(&flag)
	wd.Start()
	defer wd.Stop()

	require.Eventually(t, func() bool { return !flag.Load() }, 2*time.Second, 50*time.Millisecond,
		"run flag should clear within one poll tick past the timeout")
	assert.False(t, wd.Running(), "expiry ends the poller without an external Stop")
	assert.Contains(t, out.String(), "Session timeout!")
}

func TestWatchdogActivityKeepsFlagTrue(t *testing.T) {
	t.Parallel()

	var flag atomic.Bool
	flag.Store(true)

	wd := NewWatchdog(
		WithTimeout(time.Second),
		WithPollInterval(100*time.Millisecond),
		WithOutput(&syncBuffer{}),
	)
	wd.BindTarget(&flag)
	wd.Start()
	defer wd.Stop()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		time.Sleep(400 * time.Millisecond)
		wd.NotifyActivity()
		require.True(t, flag.Load(), "regular activity must keep the session alive")
	}
}

func TestWatchdogStopBeforeStart(t *testing.T) {
	t.Parallel()

	wd := NewWatchdog(WithOutput(&syncBuffer{}))
	wd.NotifyActivity()

	started := time.Now()
	wd.Stop()
	assert.Less(t, time.Since(started), 100*time.Millisecond)
	assert.False(t, wd.Running())
}

func TestWatchdogStartIdempotent(t *testing.T) {
	t.Parallel()

	wd := NewWatchdog(WithPollInterval(50*time.Millisecond), WithOutput(&syncBuffer{}))
	wd.Start()
	wd.Start()
	assert.True(t, wd.Running())

	wd.Stop()
	wd.Stop()
	assert.False(t, wd.Running())
}

func TestWatchdogStopAfterExpiryReturnsImmediately(t *testing.T) {
	t.Parallel()

	var flag atomic.Bool
	flag.Store(true)

	wd := NewWatchdog(
		WithTimeout(100*time.Millisecond),
		WithPollInterval(50*time.Millisecond),
		WithOutput(&syncBuffer{}),
	)
	wd.BindTarget(&flag)
	wd.Start()

	require.Eventually(t, func() bool { return !wd.Running() }, time.Second, 20*time.Millisecond)

	started := time.Now()
	wd.Stop()
	assert.Less(t, time.Since(started), 200*time.Millisecond,
		"joining an already-exited poller must not wait out the grace period")
}

func TestWatchdogRestartAfterStop(t *testing.T) {
	t.Parallel()

	var flag atomic.Bool
	flag.Store(true)

	wd := NewWatchdog(
		WithTimeout(time.Second),
		WithPollInterval(50*time.Millisecond),
		WithOutput(&syncBuffer{}),
	)
	wd.BindTarget(&flag)

	wd.Start()
	wd.Stop()
	require.False(t, wd.Running())

	wd.Start()
	assert.True(t, wd.Running())
	assert.True(t, flag.Load())
	wd.Stop()
}
