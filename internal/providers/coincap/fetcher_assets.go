package coincap

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/Adhvay0505/CryptoTrack/internal/provider"
	"github.com/Adhvay0505/CryptoTrack/pkg/models"
)

// --- CryptoList fetcher (top-N by market cap) ---

type assetsFetcher struct {
	provider.BaseFetcher
	p *Provider
}

func newAssetsFetcher(p *Provider) *assetsFetcher {
	return &assetsFetcher{
		BaseFetcher: provider.NewBaseFetcher(
			provider.ModelCryptoList,
			"Top assets ranked by market cap from CoinCap",
			nil,
		),
		p: p,
	}
}

func (f *assetsFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	limit := 10
	if s := params[provider.ParamLimit]; s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid limit %q", s)
		}
		limit = n
	}

	var resp assetListResponse
	if err := f.p.fetchJSON(ctx, fmt.Sprintf("/assets?limit=%d", limit), &resp); err != nil {
		return nil, err
	}

	quotes, err := toQuotes(resp.Data, limit)
	if err != nil {
		return nil, err
	}
	return newResult(quotes), nil
}

// --- CryptoQuote fetcher (single-asset lookup) ---

type assetFetcher struct {
	provider.BaseFetcher
	p *Provider
}

func newAssetFetcher(p *Provider) *assetFetcher {
	return &assetFetcher{
		BaseFetcher: provider.NewBaseFetcher(
			provider.ModelCryptoQuote,
			"Single-asset quote from CoinCap",
			[]string{provider.ParamID},
		),
		p: p,
	}
}

func (f *assetFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	id := params[provider.ParamID]

	var resp assetResponse
	if err := f.p.fetchJSON(ctx, "/assets/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("%q: %w", id, provider.ErrAssetNotFound)
	}

	q, err := resp.Data.toQuote(time.Now())
	if err != nil {
		return nil, err
	}
	return newResult(&q), nil
}

// --- CryptoSearch fetcher ---

type searchFetcher struct {
	provider.BaseFetcher
	p *Provider
}

func newSearchFetcher(p *Provider) *searchFetcher {
	return &searchFetcher{
		BaseFetcher: provider.NewBaseFetcher(
			provider.ModelCryptoSearch,
			"Asset search by name or symbol on CoinCap",
			[]string{provider.ParamQuery},
		),
		p: p,
	}
}

func (f *searchFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	query := params[provider.ParamQuery]

	limit := 10
	if s := params[provider.ParamLimit]; s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}

	var resp assetListResponse
	path := fmt.Sprintf("/assets?search=%s&limit=%d", url.QueryEscape(query), limit)
	if err := f.p.fetchJSON(ctx, path, &resp); err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(resp.Data))
	for i := range resp.Data {
		a := &resp.Data[i]
		if a.ID == nil || *a.ID == "" {
			return nil, &provider.ErrDecode{Provider: providerName, Detail: "search result missing id"}
		}
		r := models.SearchResult{ID: *a.ID}
		if a.Name != nil {
			r.Name = *a.Name
		}
		if a.Symbol != nil {
			r.Symbol = *a.Symbol
		}
		results = append(results, r)
		if len(results) == limit {
			break
		}
	}

	return newResult(results), nil
}

// toQuotes converts asset items, truncating to limit.
func toQuotes(items []assetItem, limit int) ([]models.AssetQuote, error) {
	now := time.Now()
	quotes := make([]models.AssetQuote, 0, len(items))
	for i := range items {
		q, err := items[i].toQuote(now)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
		if len(quotes) == limit {
			break
		}
	}
	return quotes, nil
}
