// Package countdown drives the per-view "ends in HH:MM:SS" display of a live promotion.
package countdown

import (
	"context"
	"time"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/clock"
)

// Interval between renders.
const Interval = time.Second

// RenderFunc receives each recomputed remaining-seconds value.
type RenderFunc func(secondsRemaining int64)

// Run renders the countdown for window until it reaches zero or ctx is done.
//
// Nothing is rendered when the window is not active at start; a countdown is
// never shown for a scheduled or expired promotion. Every value is recomputed
// from clk.Now(), so a late tick never drifts the display. Run returns nil once
// zero has been rendered and ctx.Err() on cancellation. The ticker is stopped
// on every return path.
func Run(ctx context.Context, clk clock.Clock, window domain.ActivityWindow, render RenderFunc) error {
	if !window.IsActiveAt(clk.Now()) {
		return nil
	}

	ticker := clk.NewTicker(Interval)
	defer ticker.Stop()

	if remaining := window.SecondsRemaining(clk.Now()); emit(render, remaining) {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
			if emit(render, window.SecondsRemaining(clk.Now())) {
				return nil
			}
		}
	}
}

// emit renders s and reports whether the countdown is finished.
func emit(render RenderFunc, s int64) bool {
	render(s)
	return s <= 0
}
