package domain

import (
	"fmt"
	"time"
)

// WindowState is the lifecycle state of a promotion at a given instant.
type WindowState string

const (
	WindowStateScheduled WindowState = "scheduled"
	WindowStateActive    WindowState = "active"
	WindowStateExpired   WindowState = "expired"
)

// ActivityWindow wraps a campaign's start/end timestamps and the
// administrator kill-switch. State is never cached; it is derived from now.
type ActivityWindow struct {
	start   time.Time
	end     time.Time
	enabled bool
}

// NewActivityWindow creates a window; end must be strictly after start.
func NewActivityWindow(start, end time.Time, enabled bool) (ActivityWindow, error) {
	if !end.After(start) {
		return ActivityWindow{}, ErrInvalidWindow
	}
	return ActivityWindow{start: start.UTC(), end: end.UTC(), enabled: enabled}, nil
}

func (w ActivityWindow) Start() time.Time {
	return w.start
}

func (w ActivityWindow) End() time.Time {
	return w.end
}

func (w ActivityWindow) Enabled() bool {
	return w.enabled
}

// Equal reports whether both windows cover the same instants with the same switch.
func (w ActivityWindow) Equal(other ActivityWindow) bool {
	return w.start.Equal(other.start) && w.end.Equal(other.end) && w.enabled == other.enabled
}

// State returns the lifecycle state at now.
// Expired wins over everything once now > end, and a disabled window is
// expired regardless of time.
func (w ActivityWindow) State(now time.Time) WindowState {
	switch {
	case now.After(w.end), !w.enabled:
		return WindowStateExpired
	case now.Before(w.start):
		return WindowStateScheduled
	default:
		return WindowStateActive
	}
}

// IsActiveAt is a shorthand for State(now) == WindowStateActive.
func (w ActivityWindow) IsActiveAt(now time.Time) bool {
	return w.State(now) == WindowStateActive
}

// SecondsRemaining returns whole seconds until end, never negative.
// Callers must not display it unless State(now) is active.
func (w ActivityWindow) SecondsRemaining(now time.Time) int64 {
	d := w.end.Sub(now)
	if d <= 0 {
		return 0
	}
	return int64(d / time.Second)
}

// String returns a string representation of the window.
func (w ActivityWindow) String() string {
	return fmt.Sprintf("%s .. %s (enabled=%t)",
		w.start.Format(time.RFC3339),
		w.end.Format(time.RFC3339),
		w.enabled)
}

// FormatCountdown renders seconds as HH:MM:SS, e.g. 3661 -> "01:01:01".
func FormatCountdown(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
