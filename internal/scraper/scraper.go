package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"

	pageClientTimeout = 60 * time.Second
)

// Scraper fetches a web page and reduces it to plain text suitable for a
// model prompt.
type Scraper struct {
	client *http.Client
	log    *slog.Logger
}

func New(log *slog.Logger) *Scraper {
	return &Scraper{
		client: &http.Client{Timeout: pageClientTimeout},
		log:    log,
	}
}

// Fetch downloads the page and returns its visible text: scripts, styles and
// noscript blocks are dropped, every line is trimmed, and blank lines are
// collapsed.
func (s *Scraper) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			s.log.ErrorContext(ctx, "Failed to close response body",
				"error", closeErr,
				"pageURL", pageURL)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("do request: unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("create document from reader: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}

	return foldText(text), nil
}

// foldText trims each line, splits run-together headline fragments on double
// spaces, and drops blanks.
func foldText(text string) string {
	var chunks []string

	for _, line := range strings.Split(text, "\n") {
		for _, chunk := range strings.Split(strings.TrimSpace(line), "  ") {
			chunk = strings.TrimSpace(chunk)
			if chunk == "" {
				continue
			}

			chunks = append(chunks, chunk)
		}
	}

	return strings.Join(chunks, "\n")
}
