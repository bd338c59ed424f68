package coingecko

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Adhvay0505/CryptoTrack/internal/provider"
	"github.com/Adhvay0505/CryptoTrack/pkg/models"
)

// marketItem is one entry of a /coins/markets response. Fields the data
// model cannot do without are pointers so their absence is detectable:
// upstream renaming a field must surface as a decode error, not a zero.
type marketItem struct {
	ID           *string          `json:"id"`
	Symbol       *string          `json:"symbol"`
	Name         *string          `json:"name"`
	CurrentPrice *decimal.Decimal `json:"current_price"`
	ChangePct24h *decimal.Decimal `json:"price_change_percentage_24h"`
	MarketCap    *decimal.Decimal `json:"market_cap"`
	TotalVolume  *decimal.Decimal `json:"total_volume"`
}

// toQuote validates a market item and converts it to an AssetQuote.
// id, symbol, and current_price are required; the statistics fields are
// nullable upstream (fresh listings) and default to zero, and a missing
// name falls back to the id.
func (m *marketItem) toQuote(fetchedAt time.Time) (models.AssetQuote, error) {
	switch {
	case m.ID == nil || *m.ID == "":
		return models.AssetQuote{}, &provider.ErrDecode{Provider: providerName, Detail: "missing field id"}
	case m.Symbol == nil:
		return models.AssetQuote{}, &provider.ErrDecode{Provider: providerName, Detail: "missing field symbol"}
	case m.CurrentPrice == nil:
		return models.AssetQuote{}, &provider.ErrDecode{Provider: providerName, Detail: "missing field current_price"}
	}

	q := models.AssetQuote{
		ID:        *m.ID,
		Symbol:    *m.Symbol,
		Name:      *m.ID,
		Price:     *m.CurrentPrice,
		FetchedAt: fetchedAt,
	}
	if m.Name != nil && *m.Name != "" {
		q.Name = *m.Name
	}
	if m.ChangePct24h != nil {
		q.ChangePct24h = *m.ChangePct24h
	}
	if m.MarketCap != nil {
		q.MarketCap = *m.MarketCap
	}
	if m.TotalVolume != nil {
		q.Volume24h = *m.TotalVolume
	}
	return q, nil
}

// searchResponse is the shape of a /search response.
type searchResponse struct {
	Coins []searchCoin `json:"coins"`
}

type searchCoin struct {
	ID            *string `json:"id"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	MarketCapRank int     `json:"market_cap_rank"`
}
