// Package providers initializes and registers all concrete data providers.
package providers

import (
	"github.com/Adhvay0505/CryptoTrack/internal/config"
	"github.com/Adhvay0505/CryptoTrack/internal/provider"
	"github.com/Adhvay0505/CryptoTrack/internal/providers/coincap"
	"github.com/Adhvay0505/CryptoTrack/internal/providers/coingecko"
)

// RegisterAll creates all available providers, registers them with the given
// registry, and makes the configured provider the default for every query
// shape it supports.
func RegisterAll(reg *provider.Registry, cfg *config.Config) error {
	if err := reg.Register(coingecko.New(cfg.API.Coingecko.BaseURL, cfg.API.VsCurrency)); err != nil {
		return err
	}
	if err := reg.Register(coincap.New(cfg.API.Coincap.BaseURL)); err != nil {
		return err
	}

	if cfg.API.Provider != "" {
		return reg.SetDefault(cfg.API.Provider)
	}
	return nil
}
