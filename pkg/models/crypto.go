// Package models defines the data structures shared between providers and
// the tracker core.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetQuote is a price/market snapshot for one asset at fetch time.
// Monetary and percentage fields use decimal.Decimal so display rounding
// never drifts from what the API reported.
type AssetQuote struct {
	ID           string          `json:"id"`     // stable asset id, e.g. "bitcoin"
	Symbol       string          `json:"symbol"` // e.g. "btc"
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	ChangePct24h decimal.Decimal `json:"change_24h_percent"`
	MarketCap    decimal.Decimal `json:"market_cap"`
	Volume24h    decimal.Decimal `json:"volume_24h"`
	FetchedAt    time.Time       `json:"fetched_at"`
}

// SearchResult is the lighter-weight record returned by the search query.
type SearchResult struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Rank   int    `json:"rank,omitempty"`
}

// NewsArticle is a single headline from a crypto news feed.
type NewsArticle struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Summary     string    `json:"summary"`
	PublishedAt time.Time `json:"published_at"`
}
