// CryptoTrack — cryptocurrency price tracker for the terminal.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Adhvay0505/CryptoTrack/internal/config"
	"github.com/Adhvay0505/CryptoTrack/internal/infra"
	"github.com/Adhvay0505/CryptoTrack/internal/provider"
	"github.com/Adhvay0505/CryptoTrack/internal/providers"
	"github.com/Adhvay0505/CryptoTrack/internal/tracker"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cryptotrack",
	Short: "CryptoTrack — cryptocurrency prices in your terminal",
	Long: `CryptoTrack fetches live cryptocurrency market data from public APIs.

Examples:
  cryptotrack                      top 10 assets by market cap
  cryptotrack --top 25             top 25 assets
  cryptotrack --price btc          current Bitcoin quote
  cryptotrack --search sol         find assets matching "sol"
  cryptotrack --watch eth -i 10    live Ethereum ticker every 10s
  cryptotrack --news               latest crypto headlines
  cryptotrack --interactive        start the interactive shell`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		infra.SetTimeout(cfg.Timeout())
		infra.SetDebug(cfg.Logging.Level == "debug")
		return nil
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")

	rootCmd.Flags().IntP("top", "t", 0, "show the top N assets by market cap")
	rootCmd.Flags().StringP("price", "p", "", "show the current price of one asset")
	rootCmd.Flags().StringP("search", "s", "", "search assets by name or symbol")
	rootCmd.Flags().StringP("watch", "w", "", "watch one asset's price until interrupted")
	rootCmd.Flags().IntP("interval", "i", 0, "watch refresh interval in seconds (default from config)")
	rootCmd.Flags().BoolP("news", "n", false, "show latest crypto news headlines")
	rootCmd.Flags().Bool("interactive", false, "start the interactive shell")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
}

// newTracker wires the configured providers into a registry-backed tracker.
func newTracker() (*tracker.Tracker, error) {
	reg := provider.NewRegistry()
	if err := providers.RegisterAll(reg, cfg); err != nil {
		return nil, err
	}
	return tracker.New(reg, cfg), nil
}

func watchInterval(cmd *cobra.Command) time.Duration {
	if secs, _ := cmd.Flags().GetInt("interval"); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return cfg.WatchInterval()
}

func runRoot(cmd *cobra.Command, args []string) error {
	t, err := newTracker()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	switch {
	case mustBool(cmd, "interactive"):
		news := tracker.NewNews(cfg.News.Feeds)
		repl := tracker.NewREPL(t, news, watchInterval(cmd), cfg.News.Limit)
		return repl.Run(ctx)

	case mustString(cmd, "watch") != "":
		asset := mustString(cmd, "watch")
		interval := watchInterval(cmd)
		wctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		fmt.Printf("Watching %s every %s. Press Ctrl-C to stop.\n", asset, interval)
		w := tracker.NewWatcher(t, asset, interval, os.Stdout)
		return w.Run(wctx)

	case mustString(cmd, "price") != "":
		quote, err := t.Price(ctx, mustString(cmd, "price"))
		if err != nil {
			return err
		}
		tracker.RenderQuote(os.Stdout, quote)
		return nil

	case mustString(cmd, "search") != "":
		query := mustString(cmd, "search")
		results, err := t.Search(ctx, query)
		if err != nil {
			return err
		}
		tracker.RenderSearchResults(os.Stdout, query, results)
		return nil

	case mustBool(cmd, "news"):
		news := tracker.NewNews(cfg.News.Feeds)
		articles, err := news.Headlines(ctx, cfg.News.Limit)
		if err != nil {
			return err
		}
		tracker.RenderNews(os.Stdout, articles)
		return nil

	default:
		n := 10
		if top := mustInt(cmd, "top"); top > 0 {
			n = top
		}
		quotes, err := t.TopAssets(ctx, n)
		if err != nil {
			return err
		}
		tracker.RenderTable(os.Stdout, quotes)
		return nil
	}
}

func mustBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func mustInt(cmd *cobra.Command, name string) int {
	v, _ := cmd.Flags().GetInt(name)
	return v
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("CryptoTrack %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and data source health",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := provider.NewRegistry()
		if err := providers.RegisterAll(reg, cfg); err != nil {
			return err
		}

		fmt.Println("═══════════════════════════════════════")
		fmt.Println("  CryptoTrack — Status")
		fmt.Println("═══════════════════════════════════════")
		fmt.Printf("  Version:   %s (%s)\n", version, commit)
		fmt.Println()
		fmt.Println("  Configuration:")
		fmt.Printf("    Provider:        %s\n", cfg.API.Provider)
		fmt.Printf("    Currency:        %s\n", cfg.API.VsCurrency)
		fmt.Printf("    HTTP Timeout:    %s\n", cfg.Timeout())
		fmt.Printf("    Watch Interval:  %s\n", cfg.WatchInterval())
		fmt.Printf("    News Feeds:      %d\n", len(cfg.News.Feeds))
		fmt.Println()

		// Ping every registered provider concurrently.
		infos := reg.List()
		results := make([]string, len(infos))
		g, ctx := errgroup.WithContext(cmd.Context())
		for i, info := range infos {
			i, info := i, info
			g.Go(func() error {
				p, err := reg.Get(info.Name)
				if err != nil {
					return err
				}
				start := time.Now()
				if err := p.Ping(ctx); err != nil {
					results[i] = fmt.Sprintf("✗ unreachable (%v)", err)
				} else {
					results[i] = fmt.Sprintf("✓ ok (%s)", time.Since(start).Round(time.Millisecond))
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		fmt.Println("  Data Sources:")
		for i, info := range infos {
			fmt.Printf("    %-12s %s\n", info.Name+":", results[i])
		}
		fmt.Println("═══════════════════════════════════════")
		return nil
	},
}
