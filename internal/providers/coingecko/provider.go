// Package coingecko implements the CoinGecko data provider.
// CoinGecko offers free cryptocurrency market data via a REST API with no
// API key. It serves all three query shapes: top-N listing, single-asset
// quote, and free-text search.
//
// Docs: https://docs.coingecko.com/reference/introduction
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Adhvay0505/CryptoTrack/internal/infra"
	"github.com/Adhvay0505/CryptoTrack/internal/provider"
)

const (
	providerName   = "coingecko"
	defaultBaseURL = "https://api.coingecko.com/api/v3"
)

// Provider implements provider.Provider for CoinGecko.
type Provider struct {
	provider.BaseProvider
	baseURL    string
	vsCurrency string
}

// New creates a CoinGecko provider and registers all fetchers. The base URL
// comes from configuration; tests point it at a local server.
func New(baseURL, vsCurrency string) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if vsCurrency == "" {
		vsCurrency = "usd"
	}

	p := &Provider{
		BaseProvider: provider.NewBaseProvider(
			providerName,
			"CoinGecko - free cryptocurrency market data",
			"https://www.coingecko.com",
		),
		baseURL:    baseURL,
		vsCurrency: vsCurrency,
	}

	p.RegisterFetcher(newListFetcher(p))
	p.RegisterFetcher(newQuoteFetcher(p))
	p.RegisterFetcher(newSearchFetcher(p))

	return p
}

// Ping checks connectivity to CoinGecko.
func (p *Provider) Ping(ctx context.Context) error {
	body, _, err := infra.DoGet(ctx, p.baseURL+"/ping", nil)
	if err != nil {
		return fmt.Errorf("coingecko ping: %w", err)
	}
	body.Close()
	return nil
}

// fetchJSON performs a GET against the API and decodes the response into
// dest. Transport failures pass through untouched so callers can tell a
// network error from a malformed payload.
func (p *Provider) fetchJSON(ctx context.Context, path string, dest any) error {
	body, _, err := infra.DoGet(ctx, p.baseURL+path, nil)
	if err != nil {
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
