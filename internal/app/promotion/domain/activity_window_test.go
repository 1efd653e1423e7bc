package domain

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var windowBase = time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC)

func TestNewActivityWindow_RejectsNonPositiveSpan(t *testing.T) {
	_, err := NewActivityWindow(windowBase, windowBase, true)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewActivityWindow(windowBase, windowBase.Add(-time.Second), true)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewActivityWindow(windowBase, windowBase.Add(time.Nanosecond), true)
	assert.NoError(t, err)
}

func TestActivityWindow_State(t *testing.T) {
	start := windowBase
	end := windowBase.Add(time.Hour)

	enabled, err := NewActivityWindow(start, end, true)
	require.NoError(t, err)
	disabled, err := NewActivityWindow(start, end, false)
	require.NoError(t, err)

	tests := []struct {
		name   string
		window ActivityWindow
		now    time.Time
		want   WindowState
	}{
		{"before start", enabled, start.Add(-time.Second), WindowStateScheduled},
		{"at start", enabled, start, WindowStateActive},
		{"inside", enabled, start.Add(30 * time.Minute), WindowStateActive},
		{"at end", enabled, end, WindowStateActive},
		{"after end", enabled, end.Add(time.Nanosecond), WindowStateExpired},
		{"disabled inside", disabled, start.Add(time.Minute), WindowStateExpired},
		{"disabled after end", disabled, end.Add(time.Hour), WindowStateExpired},
		{"disabled before start", disabled, start.Add(-time.Hour), WindowStateExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.window.State(tt.now))
		})
	}
}

func TestProperty_ActivityWindowState(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("active iff start <= now <= end && enabled; expired whenever now > end", prop.ForAll(
		func(startOff, span, nowOff int64, enabled bool) bool {
			start := windowBase.Add(time.Duration(startOff) * time.Second)
			end := start.Add(time.Duration(span) * time.Second)
			now := windowBase.Add(time.Duration(nowOff) * time.Second)

			w, err := NewActivityWindow(start, end, enabled)
			if err != nil {
				return false
			}

			inside := !now.Before(start) && !now.After(end)
			if (w.State(now) == WindowStateActive) != (inside && enabled) {
				return false
			}
			if now.After(end) && w.State(now) != WindowStateExpired {
				return false
			}
			return true
		},
		gen.Int64Range(-10_000, 10_000),
		gen.Int64Range(1, 10_000),
		gen.Int64Range(-20_000, 20_000),
		gen.Bool(),
	))

	properties.Property("secondsRemaining is non-increasing and never negative", prop.ForAll(
		func(span, t1, step int64) bool {
			w, err := NewActivityWindow(windowBase, windowBase.Add(time.Duration(span)*time.Second), true)
			if err != nil {
				return false
			}
			now1 := windowBase.Add(time.Duration(t1) * time.Millisecond)
			now2 := now1.Add(time.Duration(step) * time.Millisecond)

			r1 := w.SecondsRemaining(now1)
			r2 := w.SecondsRemaining(now2)
			return r1 >= 0 && r2 >= 0 && r2 <= r1
		},
		gen.Int64Range(1, 100_000),
		gen.Int64Range(-10_000_000, 200_000_000),
		gen.Int64Range(0, 10_000_000),
	))

	properties.TestingRun(t)
}

func TestActivityWindow_SecondsRemaining(t *testing.T) {
	w, err := NewActivityWindow(windowBase, windowBase.Add(3661*time.Second), true)
	require.NoError(t, err)

	assert.Equal(t, int64(3661), w.SecondsRemaining(windowBase))
	assert.Equal(t, "01:01:01", FormatCountdown(w.SecondsRemaining(windowBase)))

	// Partial seconds are floored.
	assert.Equal(t, int64(3660), w.SecondsRemaining(windowBase.Add(500*time.Millisecond)))

	assert.Equal(t, int64(0), w.SecondsRemaining(windowBase.Add(3661*time.Second)))
	assert.Equal(t, int64(0), w.SecondsRemaining(windowBase.Add(2*time.Hour)))
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatCountdown(0))
	assert.Equal(t, "00:00:59", FormatCountdown(59))
	assert.Equal(t, "26:00:00", FormatCountdown(26*3600))
	assert.Equal(t, "00:00:00", FormatCountdown(-3))
}
