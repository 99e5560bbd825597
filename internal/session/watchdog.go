package session

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/tasks-cli/internal/adapters/render/menu"
)

const (
	DefaultTimeout      = 180 * time.Second
	defaultPollInterval = time.Second
	defaultStopGrace    = time.Second
)

// Watchdog clears a bound run flag once user inactivity exceeds the
// configured timeout. A background poller wakes once per poll interval and
// compares the last recorded activity against the threshold; resetting the
// threshold is a plain timestamp overwrite, so NotifyActivity never blocks
// the interactive loop.
//
// Start and Stop are called from the foreground goroutine only. The poller
// crosses over in exactly two places: it reads the activity timestamp and,
// on expiry, clears the run flag.
type Watchdog struct {
	timeout  time.Duration
	interval time.Duration
	grace    time.Duration
	out      io.Writer

	target *atomic.Bool

	mu           sync.Mutex
	lastActivity time.Time

	running atomic.Bool
	quit    chan struct{}
	done    chan struct{}
}

type WatchdogOption func(*Watchdog)

// WithTimeout sets the idle threshold. Must be applied before Start.
func WithTimeout(timeout time.Duration) WatchdogOption {
	return func(w *Watchdog) {
		if timeout > 0 {
			w.timeout = timeout
		}
	}
}

func WithPollInterval(interval time.Duration) WatchdogOption {
	return func(w *Watchdog) {
		if interval > 0 {
			w.interval = interval
		}
	}
}

func WithStopGrace(grace time.Duration) WatchdogOption {
	return func(w *Watchdog) {
		if grace > 0 {
			w.grace = grace
		}
	}
}

// WithOutput directs the timeout notice. Defaults to stdout.
func WithOutput(out io.Writer) WatchdogOption {
	return func(w *Watchdog) {
		if out != nil {
			w.out = out
		}
	}
}

func NewWatchdog(opts ...WatchdogOption) *Watchdog {
	w := &Watchdog{
		timeout:  DefaultTimeout,
		interval: defaultPollInterval,
		grace:    defaultStopGrace,
		out:      os.Stdout,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

func (w *Watchdog) Timeout() time.Duration {
	return w.timeout
}

// BindTarget associates the run flag the watchdog clears on expiry. Must be
// called before Start.
func (w *Watchdog) BindTarget(flag *atomic.Bool) {
	w.target = flag
}

// NotifyActivity records now as the last user interaction. Safe to call at
// any time, including before Start or after Stop.
func (w *Watchdog) NotifyActivity() {
	w.mu.Lock()
	w.lastActivity = time.Now()
	w.mu.Unlock()
}

// Start begins the background poller. Calling it while already running is a
// no-op.
func (w *Watchdog) Start() {
	if !w.running.CompareAndSwap(false, true) {
		return
	}

	w.NotifyActivity()
	w.quit = make(chan struct{})
	w.done = make(chan struct{})
	go w.poll(w.quit, w.done)
}

// Stop requests poller exit and waits for it with a bounded grace period.
// Idempotent, and safe to call even if Start never ran or the poller
// already exited on expiry.
func (w *Watchdog) Stop() {
	if w.done == nil {
		w.running.Store(false)
		return
	}

	if w.running.CompareAndSwap(true, false) {
		close(w.quit)
	}

	select {
	case <-w.done:
	case <-time.After(w.grace):
	}
}

// Running reports whether the poller is live. Expiry flips this without an
// external Stop.
func (w *Watchdog) Running() bool {
	return w.running.Load()
}

func (w *Watchdog) poll(quit <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
		}

		if !w.running.Load() {
			return
		}

		if w.idleFor() < w.timeout {
			continue
		}

		fmt.Fprintln(w.out, "\n\n"+menu.TimeoutNotice(w.timeout))
		// Not-running first: anyone who observes the cleared run flag must
		// also see the watchdog as already stopped.
		w.running.Store(false)
		if w.target != nil {
			w.target.Store(false)
		}
		return
	}
}

func (w *Watchdog) idleFor() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	return time.Since(w.lastActivity)
}
