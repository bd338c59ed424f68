package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Adhvay0505/CryptoTrack/internal/provider"
	"github.com/Adhvay0505/CryptoTrack/pkg/models"
)

// DefaultWatchInterval is used when no refresh interval is configured.
const DefaultWatchInterval = 30 * time.Second

// Watcher re-fetches one asset's quote on a fixed interval and redraws a
// single status line until its context is cancelled.
type Watcher struct {
	Asset    string
	Interval time.Duration
	Out      io.Writer

	fetch func(ctx context.Context, asset string) (*models.AssetQuote, error)
}

// NewWatcher builds a Watcher that polls through the given tracker.
func NewWatcher(t *Tracker, asset string, interval time.Duration, out io.Writer) *Watcher {
	return &Watcher{Asset: asset, Interval: interval, Out: out, fetch: t.Price}
}

// Run polls until ctx is cancelled. The first fetch happens immediately,
// subsequent ones on every ticker fire, so a cancellation between tick k and
// k+1 observes exactly k+1 fetches. Transient fetch errors are reported
// inline and polling continues; an unknown asset aborts the watch.
func (w *Watcher) Run(ctx context.Context) error {
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := w.tick(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			// Leave the cursor on a fresh line after the in-place updates.
			fmt.Fprintln(w.Out)
			return nil
		case <-ticker.C:
		}
	}
}

func (w *Watcher) tick(ctx context.Context) error {
	q, err := w.fetch(ctx, w.Asset)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		if errors.Is(err, provider.ErrAssetNotFound) {
			fmt.Fprintln(w.Out)
			return err
		}
		fmt.Fprintf(w.Out, "\r[%s] fetch failed: %v\n", FormatTimestamp(time.Now()), err)
		return nil
	}
	fmt.Fprintf(w.Out, "\r%s", FormatWatchLine(q))
	return nil
}
