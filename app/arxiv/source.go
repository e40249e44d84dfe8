package arxiv

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
)

// Source produces a normalized submission collection for one category
// query. The two variants cover the listing-page scrape and the search
// API; callers select one by configuration instead of branching on a mode
// flag throughout the pipeline.
type Source interface {
	Fetch(ctx context.Context, category string) (*Collection, error)
	Mode() SourceMode
}

// ListingSource scrapes the daily "new submissions" page of a category.
type ListingSource struct {
	httpClient *http.Client
	parser     *ListingParser
	listing    ListingMode
	sameDate   bool
	userAgent  string
}

func NewListingSource(httpClient *http.Client, listing ListingMode, sameDate bool, userAgent string) *ListingSource {
	return &ListingSource{
		httpClient: httpClient,
		parser:     NewListingParser(),
		listing:    listing,
		sameDate:   sameDate,
		userAgent:  userAgent,
	}
}

func (s *ListingSource) Mode() SourceMode {
	return SourceListing
}

func (s *ListingSource) Fetch(ctx context.Context, category string) (*Collection, error) {
	pageURL := "https://arxiv.org/list/" + category + "/new"

	data, err := fetchURL(ctx, s.httpClient, pageURL, s.userAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing page: %w", err)
	}

	subs, err := s.parser.Run(data, s.listing, s.sameDate, time.Now())
	if err != nil {
		return nil, err
	}

	collection := NewCollection(SourceListing, category)
	collection.Submissions = subs
	return collection, nil
}

// APISource queries the arXiv search API for the most recent submissions
// of a category.
type APISource struct {
	httpClient *http.Client
	feedParser *gofeed.Parser
	normalizer *FeedNormalizer
	maxResults int
	userAgent  string
}

func NewAPISource(httpClient *http.Client, maxResults int, userAgent string) *APISource {
	return &APISource{
		httpClient: httpClient,
		feedParser: gofeed.NewParser(),
		normalizer: NewFeedNormalizer(),
		maxResults: maxResults,
		userAgent:  userAgent,
	}
}

func (s *APISource) Mode() SourceMode {
	return SourceAPI
}

func (s *APISource) Fetch(ctx context.Context, category string) (*Collection, error) {
	query := url.Values{}
	query.Set("search_query", "cat:"+category)
	query.Set("start", "0")
	query.Set("max_results", fmt.Sprintf("%d", s.maxResults))
	query.Set("sortBy", "submittedDate")
	query.Set("sortOrder", "descending")
	apiURL := "https://export.arxiv.org/api/query?" + query.Encode()

	data, err := fetchURL(ctx, s.httpClient, apiURL, s.userAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch API results: %w", err)
	}

	collection := NewCollection(SourceAPI, category)

	feed, err := s.feedParser.Parse(bytes.NewReader(data))
	if err != nil {
		// Malformed feed counts as a degraded source, not a pipeline error.
		slog.Warn("Failed to parse API feed, returning empty result", "category", category, "error", err)
		return collection, nil
	}

	subs, err := s.normalizer.Run(feed.Items)
	if err != nil {
		return nil, err
	}

	collection.Submissions = subs
	return collection, nil
}

func fetchURL(ctx context.Context, client *http.Client, rawURL string, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
