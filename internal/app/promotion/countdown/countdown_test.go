package countdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/clock"
)

var start = time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC)

func window(t *testing.T, from, to time.Time, enabled bool) domain.ActivityWindow {
	t.Helper()
	w, err := domain.NewActivityWindow(from, to, enabled)
	require.NoError(t, err)
	return w
}

func next(t *testing.T, ch <-chan int64) int64 {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("no render")
		return -1
	}
}

func TestRun_CountsDownToZeroAndStops(t *testing.T) {
	clk := clock.NewFake(start)
	w := window(t, start.Add(-time.Hour), start.Add(3*time.Second), true)

	renders := make(chan int64, 8)
	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), clk, w, func(s int64) { renders <- s })
	}()

	assert.Equal(t, int64(3), next(t, renders))
	for _, want := range []int64{2, 1, 0} {
		clk.Advance(time.Second)
		assert.Equal(t, want, next(t, renders))
	}

	require.NoError(t, <-done)
	assert.Equal(t, 0, clk.ActiveTickers())

	// No further renders after zero.
	clk.Advance(time.Second)
	select {
	case v := <-renders:
		t.Fatalf("unexpected render %d after zero", v)
	default:
	}
}

func TestRun_RecomputesFromClockAfterMissedTicks(t *testing.T) {
	clk := clock.NewFake(start)
	w := window(t, start, start.Add(3661*time.Second), true)

	renders := make(chan int64, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = Run(ctx, clk, w, func(s int64) { renders <- s })
	}()

	assert.Equal(t, "01:01:01", domain.FormatCountdown(next(t, renders)))

	// A stalled consumer sees the real remaining time, not a decremented counter.
	clk.Advance(61 * time.Second)
	assert.Equal(t, "01:00:00", domain.FormatCountdown(next(t, renders)))
}

func TestRun_CancelStopsTicker(t *testing.T) {
	clk := clock.NewFake(start)
	w := window(t, start, start.Add(time.Hour), true)

	renders := make(chan int64, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, clk, w, func(s int64) { renders <- s })
	}()

	assert.Equal(t, int64(3600), next(t, renders))
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Equal(t, 0, clk.ActiveTickers())
}

func TestRun_SuppressedWhenNotActive(t *testing.T) {
	tests := []struct {
		name   string
		window domain.ActivityWindow
	}{
		{"scheduled", window(t, start.Add(time.Hour), start.Add(2*time.Hour), true)},
		{"expired", window(t, start.Add(-2*time.Hour), start.Add(-time.Hour), true)},
		{"disabled", window(t, start.Add(-time.Hour), start.Add(time.Hour), false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := clock.NewFake(start)
			rendered := false

			err := Run(context.Background(), clk, tt.window, func(int64) { rendered = true })

			require.NoError(t, err)
			assert.False(t, rendered)
			assert.Equal(t, 0, clk.ActiveTickers())
		})
	}
}

func TestRun_ZeroAtStartRendersOnce(t *testing.T) {
	clk := clock.NewFake(start)
	w := window(t, start.Add(-time.Hour), start, true)

	var got []int64
	require.NoError(t, Run(context.Background(), clk, w, func(s int64) { got = append(got, s) }))
	assert.Equal(t, []int64{0}, got)
}
