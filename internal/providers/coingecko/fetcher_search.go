package coingecko

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Adhvay0505/CryptoTrack/internal/provider"
	"github.com/Adhvay0505/CryptoTrack/pkg/models"
)

// --- CryptoSearch fetcher ---

type searchFetcher struct {
	provider.BaseFetcher
	p *Provider
}

func newSearchFetcher(p *Provider) *searchFetcher {
	return &searchFetcher{
		BaseFetcher: provider.NewBaseFetcher(
			provider.ModelCryptoSearch,
			"Asset search by name or symbol on CoinGecko",
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

	var resp searchResponse
	if err := f.p.fetchJSON(ctx, "/search?query="+url.QueryEscape(query), &resp); err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(resp.Coins))
	for _, c := range resp.Coins {
		if c.ID == nil || *c.ID == "" {
			return nil, &provider.ErrDecode{Provider: providerName, Detail: "search result missing id"}
		}
		results = append(results, models.SearchResult{
			ID:     *c.ID,
			Name:   c.Name,
			Symbol: c.Symbol,
			Rank:   c.MarketCapRank,
		})
		if len(results) == limit {
			break
		}
	}

	return newResult(results), nil
}
