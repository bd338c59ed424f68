// Package provider defines the data-provider abstraction: a Provider
// interface, a Fetcher interface per query shape, and a central registry
// that routes requests to the configured provider.
package provider

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ModelType identifies a standard query shape. Each ModelType maps to a
// concrete data structure in pkg/models.
type ModelType string

const (
	// ModelCryptoList is the top-N listing ranked by market cap,
	// yielding []models.AssetQuote.
	ModelCryptoList ModelType = "CryptoList"

	// ModelCryptoQuote is a single-asset lookup, yielding *models.AssetQuote.
	ModelCryptoQuote ModelType = "CryptoQuote"

	// ModelCryptoSearch is a free-text search, yielding []models.SearchResult.
	ModelCryptoSearch ModelType = "CryptoSearch"
)

// ProviderInfo holds metadata about a registered provider.
type ProviderInfo struct {
	Name        string      `json:"name"`        // e.g. "coingecko"
	Description string      `json:"description"` // human-readable description
	Website     string      `json:"website"`
	Models      []ModelType `json:"models"` // supported query shapes
}

// Provider is the interface all data providers implement.
type Provider interface {
	// Info returns metadata about this provider.
	Info() ProviderInfo

	// Fetcher returns the fetcher for the given model type, or nil if
	// unsupported.
	Fetcher(model ModelType) Fetcher

	// SupportedModels returns all model types this provider can fetch.
	SupportedModels() []ModelType

	// Ping verifies connectivity to the upstream API.
	Ping(ctx context.Context) error
}

// QueryParams is the generic parameter map passed to fetchers.
// Common keys:
//   - "id"    : canonical asset id (e.g. "bitcoin")
//   - "query" : free-text search input
//   - "limit" : max results
type QueryParams map[string]string

const (
	ParamID    = "id"
	ParamQuery = "query"
	ParamLimit = "limit"
)

// FetchResult wraps fetched data with metadata.
type FetchResult struct {
	Provider  string    `json:"provider"`
	Model     ModelType `json:"model"`
	Data      any       `json:"data"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Fetcher handles a single query shape for one provider.
type Fetcher interface {
	// ModelType returns the query shape this fetcher handles.
	ModelType() ModelType

	// Description returns a human-readable description.
	Description() string

	// RequiredParams returns the parameter keys this fetcher requires.
	RequiredParams() []string

	// Fetch retrieves data for the given query parameters. The concrete
	// type of FetchResult.Data depends on ModelType.
	Fetch(ctx context.Context, params QueryParams) (*FetchResult, error)
}

// ErrAssetNotFound is returned when the upstream API reports no match for
// an asset lookup. Callers distinguish it from transient failures because
// it is never worth retrying.
var ErrAssetNotFound = errors.New("asset not found")

// ErrProviderNotFound is returned when a requested provider is not registered.
type ErrProviderNotFound struct {
	Name string
}

func (e *ErrProviderNotFound) Error() string {
	return fmt.Sprintf("provider %q not found", e.Name)
}

// ErrModelNotSupported is returned when a provider doesn't support a model type.
type ErrModelNotSupported struct {
	Provider string
	Model    ModelType
}

func (e *ErrModelNotSupported) Error() string {
	return fmt.Sprintf("provider %q does not support model %q", e.Provider, e.Model)
}

// ErrMissingParam is returned when a required query parameter is missing.
type ErrMissingParam struct {
	Param string
}

func (e *ErrMissingParam) Error() string {
	return fmt.Sprintf("missing required parameter %q", e.Param)
}

// ErrDecode is returned when an upstream response is not parseable, or is
// parseable but missing fields the data model requires. Deserialization
// fails closed: schema drift surfaces here instead of as zero values.
type ErrDecode struct {
	Provider string
	Detail   string
	Err      error
}

func (e *ErrDecode) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider %q: bad response: %s: %v", e.Provider, e.Detail, e.Err)
	}
	return fmt.Sprintf("provider %q: bad response: %s", e.Provider, e.Detail)
}

func (e *ErrDecode) Unwrap() error { return e.Err }

// ValidateParams checks that all required parameters are present and non-empty.
func ValidateParams(params QueryParams, required []string) error {
	for _, key := range required {
		if v, ok := params[key]; !ok || v == "" {
			return &ErrMissingParam{Param: key}
		}
	}
	return nil
}
