package coingecko

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Adhvay0505/CryptoTrack/internal/provider"
	"github.com/Adhvay0505/CryptoTrack/pkg/models"
)

// newTestProvider returns a provider pointed at a local server serving the
// given handler.
func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "usd")
}

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func TestProviderInfo(t *testing.T) {
	p := New("", "")
	info := p.Info()
	if info.Name != "coingecko" {
		t.Errorf("name = %q", info.Name)
	}
	if info.Website == "" {
		t.Error("expected non-empty website")
	}
	if len(info.Models) != 3 {
		t.Errorf("expected 3 models, got %d", len(info.Models))
	}
}

func TestProviderFetchers(t *testing.T) {
	p := New("", "")
	for _, m := range []provider.ModelType{
		provider.ModelCryptoList,
		provider.ModelCryptoQuote,
		provider.ModelCryptoSearch,
	} {
		if p.Fetcher(m) == nil {
			t.Errorf("no fetcher for %s", m)
		}
	}
	if p.Fetcher(provider.ModelType("Nonexistent")) != nil {
		t.Error("expected nil fetcher for unsupported model")
	}
}

func TestQuoteFetch(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("ids"); got != "ethereum" {
			t.Errorf("ids param = %q", got)
		}
		if got := r.URL.Query().Get("vs_currency"); got != "usd" {
			t.Errorf("vs_currency param = %q", got)
		}
		w.Write([]byte(`[{"id":"ethereum","symbol":"eth","current_price":3000.50,"price_change_percentage_24h":-2.3}]`))
	})

	res, err := p.Fetcher(provider.ModelCryptoQuote).Fetch(context.Background(),
		provider.QueryParams{provider.ParamID: "ethereum"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	q, ok := res.Data.(*models.AssetQuote)
	if !ok {
		t.Fatalf("Data is %T, want *models.AssetQuote", res.Data)
	}
	if q.ID != "ethereum" {
		t.Errorf("ID = %q", q.ID)
	}
	if q.Price.StringFixed(2) != "3000.50" {
		t.Errorf("Price = %s", q.Price)
	}
	if q.ChangePct24h.StringFixed(1) != "-2.3" {
		t.Errorf("ChangePct24h = %s", q.ChangePct24h)
	}
	if q.FetchedAt.IsZero() {
		t.Error("FetchedAt not stamped")
	}
}

func TestQuoteNotFound(t *testing.T) {
	p := newTestProvider(t, jsonHandler(`[]`))

	_, err := p.Fetcher(provider.ModelCryptoQuote).Fetch(context.Background(),
		provider.QueryParams{provider.ParamID: "doesnotexist"})
	if !errors.Is(err, provider.ErrAssetNotFound) {
		t.Errorf("expected ErrAssetNotFound, got %v", err)
	}
}

func TestQuoteMissingRequiredField(t *testing.T) {
	// current_price renamed upstream: must fail closed, not yield zero.
	p := newTestProvider(t, jsonHandler(`[{"id":"bitcoin","symbol":"btc","price_usd":67000}]`))

	_, err := p.Fetcher(provider.ModelCryptoQuote).Fetch(context.Background(),
		provider.QueryParams{provider.ParamID: "bitcoin"})
	var decodeErr *provider.ErrDecode
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *ErrDecode, got %v", err)
	}
}

func TestQuoteMalformedJSON(t *testing.T) {
	p := newTestProvider(t, jsonHandler(`<html>maintenance</html>`))

	_, err := p.Fetcher(provider.ModelCryptoQuote).Fetch(context.Background(),
		provider.QueryParams{provider.ParamID: "bitcoin"})
	var decodeErr *provider.ErrDecode
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *ErrDecode, got %v", err)
	}
}

const fiveAssets = `[
	{"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":67000,"price_change_percentage_24h":1.2,"market_cap":1320000000000,"total_volume":31000000000},
	{"id":"ethereum","symbol":"eth","name":"Ethereum","current_price":3000.5,"price_change_percentage_24h":-2.3,"market_cap":360000000000,"total_volume":15000000000},
	{"id":"tether","symbol":"usdt","name":"Tether","current_price":1.0,"price_change_percentage_24h":0.01,"market_cap":110000000000,"total_volume":50000000000},
	{"id":"solana","symbol":"sol","name":"Solana","current_price":145.2,"price_change_percentage_24h":5.4,"market_cap":67000000000,"total_volume":3000000000},
	{"id":"ripple","symbol":"xrp","name":"XRP","current_price":0.52,"price_change_percentage_24h":-0.8,"market_cap":29000000000,"total_volume":1200000000}
]`

func TestListTruncatesToLimit(t *testing.T) {
	// A 5-asset response for limit 3 must yield exactly the first 3 rows
	// in the given order, unmodified.
	p := newTestProvider(t, jsonHandler(fiveAssets))

	res, err := p.Fetcher(provider.ModelCryptoList).Fetch(context.Background(),
		provider.QueryParams{provider.ParamLimit: "3"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	quotes, ok := res.Data.([]models.AssetQuote)
	if !ok {
		t.Fatalf("Data is %T, want []models.AssetQuote", res.Data)
	}
	if len(quotes) != 3 {
		t.Fatalf("len = %d, want 3", len(quotes))
	}
	for i, want := range []string{"bitcoin", "ethereum", "tether"} {
		if quotes[i].ID != want {
			t.Errorf("quotes[%d].ID = %q, want %q", i, quotes[i].ID, want)
		}
	}
}

func TestListDefaultLimit(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("per_page"); got != "10" {
			t.Errorf("per_page = %q, want 10", got)
		}
		if got := r.URL.Query().Get("order"); got != "market_cap_desc" {
			t.Errorf("order = %q", got)
		}
		w.Write([]byte(fiveAssets))
	})

	res, err := p.Fetcher(provider.ModelCryptoList).Fetch(context.Background(), provider.QueryParams{})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if quotes := res.Data.([]models.AssetQuote); len(quotes) != 5 {
		t.Errorf("len = %d, want all 5 available", len(quotes))
	}
}

func TestListInvalidLimit(t *testing.T) {
	p := New("http://localhost:0", "usd")
	for _, bad := range []string{"0", "-3", "abc"} {
		_, err := p.Fetcher(provider.ModelCryptoList).Fetch(context.Background(),
			provider.QueryParams{provider.ParamLimit: bad})
		if err == nil {
			t.Errorf("limit %q: expected error", bad)
		}
	}
}

func TestListNullStatsDefaultToZero(t *testing.T) {
	// Newly listed assets carry null stats; those are not schema drift.
	p := newTestProvider(t, jsonHandler(
		`[{"id":"newcoin","symbol":"new","name":"NewCoin","current_price":0.001,"price_change_percentage_24h":null,"market_cap":null,"total_volume":null}]`))

	res, err := p.Fetcher(provider.ModelCryptoList).Fetch(context.Background(), provider.QueryParams{})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	q := res.Data.([]models.AssetQuote)[0]
	if !q.ChangePct24h.IsZero() || !q.MarketCap.IsZero() || !q.Volume24h.IsZero() {
		t.Errorf("null stats should default to zero: %+v", q)
	}
}

func TestSearch(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "doge" {
			t.Errorf("query = %q", got)
		}
		w.Write([]byte(`{"coins":[
			{"id":"dogecoin","name":"Dogecoin","symbol":"DOGE","market_cap_rank":9},
			{"id":"dogelon-mars","name":"Dogelon Mars","symbol":"ELON","market_cap_rank":180}
		]}`))
	})

	res, err := p.Fetcher(provider.ModelCryptoSearch).Fetch(context.Background(),
		provider.QueryParams{provider.ParamQuery: "doge"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	results := res.Data.([]models.SearchResult)
	if len(results) != 2 {
		t.Fatalf("len = %d", len(results))
	}
	if results[0].ID != "dogecoin" || results[0].Rank != 9 {
		t.Errorf("results[0] = %+v", results[0])
	}
}

func TestSearchHonoursLimit(t *testing.T) {
	p := newTestProvider(t, jsonHandler(`{"coins":[
		{"id":"a","name":"A","symbol":"A"},
		{"id":"b","name":"B","symbol":"B"},
		{"id":"c","name":"C","symbol":"C"}
	]}`))

	res, err := p.Fetcher(provider.ModelCryptoSearch).Fetch(context.Background(),
		provider.QueryParams{provider.ParamQuery: "x", provider.ParamLimit: "2"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if results := res.Data.([]models.SearchResult); len(results) != 2 {
		t.Errorf("len = %d, want 2", len(results))
	}
}

func TestPing(t *testing.T) {
	var pinged bool
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ping" {
			pinged = true
		}
		w.Write([]byte(`{"gecko_says":"(V3) To the Moon!"}`))
	})

	if err := p.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if !pinged {
		t.Error("ping endpoint not hit")
	}
}

func TestHTTPErrorPassesThrough(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := p.Fetcher(provider.ModelCryptoList).Fetch(context.Background(), provider.QueryParams{})
	if err == nil {
		t.Fatal("expected error")
	}
	var decodeErr *provider.ErrDecode
	if errors.As(err, &decodeErr) {
		t.Error("HTTP failure should not be reported as a decode error")
	}
}
