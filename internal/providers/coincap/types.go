package coincap

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Adhvay0505/CryptoTrack/internal/provider"
	"github.com/Adhvay0505/CryptoTrack/pkg/models"
)

// assetListResponse is the shape of an /assets response.
type assetListResponse struct {
	Data []assetItem `json:"data"`
}

// assetResponse is the shape of an /assets/{id} response.
type assetResponse struct {
	Data *assetItem `json:"data"`
}

// assetItem is one CoinCap asset record. Numerics arrive as strings.
type assetItem struct {
	ID               *string `json:"id"`
	Symbol           *string `json:"symbol"`
	Name             *string `json:"name"`
	PriceUsd         *string `json:"priceUsd"`
	ChangePercent24h *string `json:"changePercent24Hr"`
	MarketCapUsd     *string `json:"marketCapUsd"`
	VolumeUsd24h     *string `json:"volumeUsd24Hr"`
}

// toQuote validates an asset item and converts it to an AssetQuote.
// id, symbol, and priceUsd are required; nullable statistics default to
// zero. CoinCap symbols are upper case upstream; they are lowered here so
// both providers present the same shape.
func (a *assetItem) toQuote(fetchedAt time.Time) (models.AssetQuote, error) {
	switch {
	case a.ID == nil || *a.ID == "":
		return models.AssetQuote{}, &provider.ErrDecode{Provider: providerName, Detail: "missing field id"}
	case a.Symbol == nil:
		return models.AssetQuote{}, &provider.ErrDecode{Provider: providerName, Detail: "missing field symbol"}
	case a.PriceUsd == nil:
		return models.AssetQuote{}, &provider.ErrDecode{Provider: providerName, Detail: "missing field priceUsd"}
	}

	price, err := decimal.NewFromString(*a.PriceUsd)
	if err != nil {
		return models.AssetQuote{}, &provider.ErrDecode{Provider: providerName, Detail: "bad priceUsd", Err: err}
	}

	q := models.AssetQuote{
		ID:        *a.ID,
		Symbol:    strings.ToLower(*a.Symbol),
		Name:      *a.ID,
		Price:     price,
		FetchedAt: fetchedAt,
	}
	if a.Name != nil && *a.Name != "" {
		q.Name = *a.Name
	}
	q.ChangePct24h = optionalDecimal(a.ChangePercent24h)
	q.MarketCap = optionalDecimal(a.MarketCapUsd)
	q.Volume24h = optionalDecimal(a.VolumeUsd24h)
	return q, nil
}

// optionalDecimal parses a nullable string numeric, defaulting to zero on
// null or garbage. Optional statistics never fail the whole record.
func optionalDecimal(s *string) decimal.Decimal {
	if s == nil || *s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
