package tracker

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/Adhvay0505/CryptoTrack/pkg/models"
	"github.com/Adhvay0505/CryptoTrack/pkg/utils"
)

var (
	up   = color.New(color.FgGreen)
	down = color.New(color.FgRed)
	dim  = color.New(color.Faint)
	bold = color.New(color.Bold)
)

// FormatChange renders a 24h percentage change with a direction indicator.
// Zero counts as up.
func FormatChange(pct decimal.Decimal) string {
	if pct.Sign() >= 0 {
		return up.Sprintf("▲ %s", utils.FormatPct(pct))
	}
	return down.Sprintf("▼ %s", utils.FormatPct(pct))
}

// changeCell pads the plain text to width before colorizing so that ANSI
// escape codes do not throw off column alignment.
func changeCell(pct decimal.Decimal, width int) string {
	arrow, c := "▲", up
	if pct.Sign() < 0 {
		arrow, c = "▼", down
	}
	plain := fmt.Sprintf("%-*s", width, arrow+" "+utils.FormatPct(pct))
	return c.Sprint(plain)
}

// RenderQuote writes a multi-line summary card for a single asset.
func RenderQuote(w io.Writer, q *models.AssetQuote) {
	fmt.Fprintf(w, "%s (%s)\n", bold.Sprint(q.Name), strings.ToUpper(q.Symbol))
	fmt.Fprintf(w, "  Price:       %s\n", utils.FormatUSD(q.Price))
	fmt.Fprintf(w, "  24h Change:  %s\n", FormatChange(q.ChangePct24h))
	fmt.Fprintf(w, "  Market Cap:  %s\n", utils.FormatCompactUSD(q.MarketCap))
	fmt.Fprintf(w, "  Volume 24h:  %s\n", utils.FormatCompactUSD(q.Volume24h))
}

// RenderTable writes a ranked table of quotes ordered as given.
func RenderTable(w io.Writer, quotes []models.AssetQuote) {
	if len(quotes) == 0 {
		fmt.Fprintln(w, "No assets to display.")
		return
	}
	header := fmt.Sprintf("%-4s %-8s %-22s %15s %-12s %10s", "#", "Symbol", "Name", "Price", "24h", "Mkt Cap")
	fmt.Fprintln(w, bold.Sprint(header))
	fmt.Fprintln(w, strings.Repeat("-", len(header)))
	for i, q := range quotes {
		fmt.Fprintf(w, "%-4d %-8s %-22s %15s %s %10s\n",
			i+1,
			strings.ToUpper(q.Symbol),
			utils.Truncate(q.Name, 22),
			utils.FormatUSD(q.Price),
			changeCell(q.ChangePct24h, 12),
			utils.FormatCompactUSD(q.MarketCap),
		)
	}
}

// RenderSearchResults writes matching assets, one per line.
func RenderSearchResults(w io.Writer, query string, results []models.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintf(w, "No assets matching %q.\n", query)
		return
	}
	fmt.Fprintf(w, "Assets matching %q:\n", query)
	for _, r := range results {
		rank := ""
		if r.Rank > 0 {
			rank = dim.Sprintf("  (rank #%d)", r.Rank)
		}
		fmt.Fprintf(w, "  %-22s %-8s %s%s\n", utils.Truncate(r.Name, 22), strings.ToUpper(r.Symbol), dim.Sprint(r.ID), rank)
	}
}

// RenderNews writes headlines newest first.
func RenderNews(w io.Writer, articles []models.NewsArticle) {
	if len(articles) == 0 {
		fmt.Fprintln(w, "No news available.")
		return
	}
	for _, a := range articles {
		fmt.Fprintf(w, "%s  %s [%s]\n", dim.Sprint(a.PublishedAt.Format("Jan 02 15:04")), a.Title, a.Source)
		if a.URL != "" {
			fmt.Fprintf(w, "        %s\n", dim.Sprint(a.URL))
		}
	}
}

// FormatWatchLine renders the single-line ticker used by watch mode.
func FormatWatchLine(q *models.AssetQuote) string {
	return fmt.Sprintf("[%s] %s: %s (%s)",
		q.FetchedAt.Local().Format("15:04:05"),
		strings.ToUpper(q.Symbol),
		utils.FormatUSD(q.Price),
		FormatChange(q.ChangePct24h),
	)
}

// FormatTimestamp renders a wall-clock time the way watch lines do.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format("15:04:05")
}
