// Package coincap implements the CoinCap data provider.
// CoinCap is a free, keyless REST API serving USD-denominated crypto market
// data. Unlike CoinGecko it encodes every numeric field as a string and
// answers unknown asset ids with HTTP 404.
//
// Docs: https://docs.coincap.io
package coincap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Adhvay0505/CryptoTrack/internal/infra"
	"github.com/Adhvay0505/CryptoTrack/internal/provider"
)

const (
	providerName   = "coincap"
	defaultBaseURL = "https://api.coincap.io/v2"
)

// Provider implements provider.Provider for CoinCap. Quotes are USD only.
type Provider struct {
	provider.BaseProvider
	baseURL string
}

// New creates a CoinCap provider and registers all fetchers.
func New(baseURL string) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	p := &Provider{
		BaseProvider: provider.NewBaseProvider(
			providerName,
			"CoinCap - free USD crypto market data",
			"https://coincap.io",
		),
		baseURL: baseURL,
	}

	p.RegisterFetcher(newAssetsFetcher(p))
	p.RegisterFetcher(newAssetFetcher(p))
	p.RegisterFetcher(newSearchFetcher(p))

	return p
}

// Ping checks connectivity to CoinCap.
func (p *Provider) Ping(ctx context.Context) error {
	body, _, err := infra.DoGet(ctx, p.baseURL+"/assets?limit=1", nil)
	if err != nil {
		return fmt.Errorf("coincap ping: %w", err)
	}
	body.Close()
	return nil
}

// fetchJSON performs a GET against the API and decodes the response into
// dest. A 404 maps to ErrAssetNotFound; other transport/HTTP failures pass
// through untouched.
func (p *Provider) fetchJSON(ctx context.Context, path string, dest any) error {
	body, _, err := infra.DoGet(ctx, p.baseURL+path, nil)
	if err != nil {
		var httpErr *infra.ErrHTTP
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return provider.ErrAssetNotFound
		}
		return err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return &provider.ErrDecode{Provider: providerName, Detail: "unparseable JSON", Err: err}
	}
	return nil
}

// newResult wraps data in a FetchResult stamped with the fetch time.
func newResult(data any) *provider.FetchResult {
	return &provider.FetchResult{
		Data:      data,
		FetchedAt: time.Now(),
	}
}
