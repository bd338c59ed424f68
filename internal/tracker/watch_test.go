package tracker

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Adhvay0505/CryptoTrack/internal/provider"
	"github.com/Adhvay0505/CryptoTrack/pkg/models"
)

func watchQuote(price string) *models.AssetQuote {
	return &models.AssetQuote{
		ID:           "bitcoin",
		Symbol:       "btc",
		Name:         "Bitcoin",
		Price:        decimal.RequireFromString(price),
		ChangePct24h: decimal.RequireFromString("1.2"),
		FetchedAt:    time.Now(),
	}
}

func TestWatcherFetchCountOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var buf strings.Builder
	calls := 0
	w := &Watcher{
		Asset:    "bitcoin",
		Interval: time.Millisecond,
		Out:      &buf,
		fetch: func(context.Context, string) (*models.AssetQuote, error) {
			calls++
			if calls == 3 {
				// Cancelling inside tick 3 means the select observes Done
				// before the ticker can fire again.
				cancel()
			}
			return watchQuote("67000"), nil
		},
	}

	if err := w.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls != 3 {
		t.Fatalf("fetch called %d times, want exactly 3", calls)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Errorf("output does not end with a newline: %q", buf.String())
	}
}

func TestWatcherFirstFetchImmediate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var buf strings.Builder
	w := &Watcher{
		Asset:    "bitcoin",
		Interval: time.Hour,
		Out:      &buf,
		fetch: func(context.Context, string) (*models.AssetQuote, error) {
			cancel()
			return watchQuote("67000"), nil
		},
	}

	if err := w.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(buf.String(), "$67,000.00") {
		t.Errorf("first quote not rendered: %q", buf.String())
	}
}

func TestWatcherUnknownAssetIsFatal(t *testing.T) {
	var buf strings.Builder
	w := &Watcher{
		Asset:    "nope",
		Interval: time.Hour,
		Out:      &buf,
		fetch: func(context.Context, string) (*models.AssetQuote, error) {
			return nil, provider.ErrAssetNotFound
		},
	}

	err := w.Run(context.Background())
	if !errors.Is(err, provider.ErrAssetNotFound) {
		t.Fatalf("expected ErrAssetNotFound, got %v", err)
	}
}

func TestWatcherTransientErrorContinues(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var buf strings.Builder
	calls := 0
	w := &Watcher{
		Asset:    "bitcoin",
		Interval: time.Millisecond,
		Out:      &buf,
		fetch: func(context.Context, string) (*models.AssetQuote, error) {
			calls++
			switch calls {
			case 1:
				return nil, errors.New("connection refused")
			case 2:
				cancel()
			}
			return watchQuote("67000"), nil
		},
	}

	if err := w.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "fetch failed") {
		t.Errorf("transient error not reported: %q", out)
	}
	if !strings.Contains(out, "$67,000.00") {
		t.Errorf("polling did not continue after error: %q", out)
	}
}

func TestWatcherSilentOnContextError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var buf strings.Builder
	w := &Watcher{
		Asset:    "bitcoin",
		Interval: time.Hour,
		Out:      &buf,
		fetch: func(context.Context, string) (*models.AssetQuote, error) {
			cancel()
			return nil, context.Canceled
		},
	}

	if err := w.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(buf.String(), "fetch failed") {
		t.Errorf("cancellation reported as fetch error: %q", buf.String())
	}
}
