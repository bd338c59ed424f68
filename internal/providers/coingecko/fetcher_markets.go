package coingecko

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

type listFetcher struct {
	provider.BaseFetcher
	p *Provider
}

func newListFetcher(p *Provider) *listFetcher {
	return &listFetcher{
		BaseFetcher: provider.NewBaseFetcher(
			provider.ModelCryptoList,
			"Top assets ranked by market cap from CoinGecko",
			nil,
		),
		p: p,
	}
}

func (f *listFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	limit := 10
	if s := params[provider.ParamLimit]; s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid limit %q", s)
		}
		limit = n
	}

	path := fmt.Sprintf(
		"/coins/markets?vs_currency=%s&order=market_cap_desc&per_page=%d&page=1&sparkline=false",
		url.QueryEscape(f.p.vsCurrency), limit,
	)

	var items []marketItem
	if err := f.p.fetchJSON(ctx, path, &items); err != nil {
		return nil, err
	}

	now := time.Now()
	quotes := make([]models.AssetQuote, 0, len(items))
	for i := range items {
		q, err := items[i].toQuote(now)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	// The API honours per_page, but a drifting upstream must not leak
	// extra rows to the caller.
	if len(quotes) > limit {
		quotes = quotes[:limit]
	}

	return newResult(quotes), nil
}

// --- CryptoQuote fetcher (single-asset lookup) ---

type quoteFetcher struct {
	provider.BaseFetcher
	p *Provider
}

func newQuoteFetcher(p *Provider) *quoteFetcher {
	return &quoteFetcher{
		BaseFetcher: provider.NewBaseFetcher(
			provider.ModelCryptoQuote,
			"Single-asset quote from CoinGecko",
			[]string{provider.ParamID},
		),
		p: p,
	}
}

func (f *quoteFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	id := params[provider.ParamID]

	path := fmt.Sprintf(
		"/coins/markets?vs_currency=%s&ids=%s",
		url.QueryEscape(f.p.vsCurrency), url.QueryEscape(id),
	)

	var items []marketItem
	if err := f.p.fetchJSON(ctx, path, &items); err != nil {
		return nil, err
	}

	// CoinGecko answers an unknown id with 200 and an empty array.
	if len(items) == 0 {
		return nil, fmt.Errorf("%q: %w", id, provider.ErrAssetNotFound)
	}

	q, err := items[0].toQuote(time.Now())
	if err != nil {
		return nil, err
	}

	return newResult(&q), nil
}
