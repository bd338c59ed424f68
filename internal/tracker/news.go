package tracker

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/Adhvay0505/CryptoTrack/internal/config"
	"github.com/Adhvay0505/CryptoTrack/pkg/models"
)

// NewsSource is a single RSS/Atom feed to aggregate.
type NewsSource struct {
	Name string
	URL  string
}

// News aggregates headlines from a set of crypto news feeds.
type News struct {
	sources []NewsSource
	parser  *gofeed.Parser
}

// NewNews builds an aggregator over the configured feeds.
func NewNews(feeds []config.FeedConfig) *News {
	sources := make([]NewsSource, 0, len(feeds))
	for _, f := range feeds {
		if f.URL == "" {
			continue
		}
		sources = append(sources, NewsSource{Name: f.Name, URL: f.URL})
	}
	return &News{sources: sources, parser: gofeed.NewParser()}
}

// Headlines fetches every source and returns up to limit articles merged
// newest first. Sources that fail to load are skipped; it is an error only
// when no source could be read at all.
func (n *News) Headlines(ctx context.Context, limit int) ([]models.NewsArticle, error) {
	if len(n.sources) == 0 {
		return nil, fmt.Errorf("no news feeds configured")
	}
	var articles []models.NewsArticle
	var failed int
	var lastErr error
	for _, src := range n.sources {
		feed, err := n.parser.ParseURLWithContext(src.URL, ctx)
		if err != nil {
			log.Printf("news: skipping %s: %v", src.Name, err)
			failed++
			lastErr = err
			continue
		}
		for _, item := range feed.Items {
			a := models.NewsArticle{
				Title:   strings.TrimSpace(item.Title),
				URL:     item.Link,
				Source:  src.Name,
				Summary: cleanHTML(item.Description),
			}
			if item.PublishedParsed != nil {
				a.PublishedAt = *item.PublishedParsed
			}
			articles = append(articles, a)
		}
	}
	if failed == len(n.sources) {
		return nil, fmt.Errorf("all news feeds failed: %w", lastErr)
	}
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}

// cleanHTML strips markup from feed descriptions, which frequently embed
// images and tracking pixels.
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}
