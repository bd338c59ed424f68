// Package tracker implements the market-data operations exposed by the CLI:
// top-N listings, single-asset quotes, name search, live watch and news.
// It sits on top of the provider registry and is transport-agnostic.
package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/Adhvay0505/CryptoTrack/internal/config"
	"github.com/Adhvay0505/CryptoTrack/internal/provider"
	"github.com/Adhvay0505/CryptoTrack/pkg/models"
)

// Tracker answers market-data queries through the provider registry.
type Tracker struct {
	reg         *provider.Registry
	searchLimit int
}

// New builds a Tracker over the given registry.
func New(reg *provider.Registry, cfg *config.Config) *Tracker {
	limit := 10
	if cfg != nil && cfg.Search.Limit > 0 {
		limit = cfg.Search.Limit
	}
	return &Tracker{reg: reg, searchLimit: limit}
}

// TopAssets returns the n largest assets by market capitalization,
// in descending order.
func (t *Tracker) TopAssets(ctx context.Context, n int) ([]models.AssetQuote, error) {
	if n <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", n)
	}
	res, err := t.reg.Fetch(ctx, provider.ModelCryptoList, provider.QueryParams{
		provider.ParamLimit: fmt.Sprintf("%d", n),
	})
	if err != nil {
		return nil, err
	}
	quotes, ok := res.Data.([]models.AssetQuote)
	if !ok {
		return nil, fmt.Errorf("provider %s returned unexpected data for %s", res.Provider, res.Model)
	}
	return quotes, nil
}

// Price returns the current quote for a single asset. The asset may be a
// canonical id or a well-known symbol alias.
func (t *Tracker) Price(ctx context.Context, asset string) (*models.AssetQuote, error) {
	id := ResolveAssetID(asset)
	if id == "" {
		return nil, fmt.Errorf("asset id must not be empty")
	}
	res, err := t.reg.Fetch(ctx, provider.ModelCryptoQuote, provider.QueryParams{
		provider.ParamID: id,
	})
	if err != nil {
		return nil, err
	}
	quote, ok := res.Data.(*models.AssetQuote)
	if !ok {
		return nil, fmt.Errorf("provider %s returned unexpected data for %s", res.Provider, res.Model)
	}
	return quote, nil
}

// Search looks up assets whose name or symbol matches the query. An empty
// or whitespace-only query returns an empty result without hitting the API.
func (t *Tracker) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.SearchResult{}, nil
	}
	res, err := t.reg.Fetch(ctx, provider.ModelCryptoSearch, provider.QueryParams{
		provider.ParamQuery: query,
		provider.ParamLimit: fmt.Sprintf("%d", t.searchLimit),
	})
	if err != nil {
		return nil, err
	}
	results, ok := res.Data.([]models.SearchResult)
	if !ok {
		return nil, fmt.Errorf("provider %s returned unexpected data for %s", res.Provider, res.Model)
	}
	return results, nil
}
