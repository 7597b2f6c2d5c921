package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.tavily.com"

// Result is one web-search hit, reduced to what prompt enrichment uses.
type Result struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Client abstracts the search tool so pipelines can be tested without
// network access.
type Client interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

type TavilyClient struct {
	apiKey     string
	maxResults int
	baseURL    string
	httpClient *http.Client
}

func NewTavily(apiKey string, maxResults int) *TavilyClient {
	return &TavilyClient{
		apiKey:     apiKey,
		maxResults: maxResults,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type tavilyRequest struct {
	APIKey            string `json:"api_key"`
	Query             string `json:"query"`
	MaxResults        int    `json:"max_results"`
	IncludeAnswer     bool   `json:"include_answer"`
	IncludeRawContent bool   `json:"include_raw_content"`
}

type tavilyResponse struct {
	Results []Result `json:"results"`
}

func (c *TavilyClient) Search(ctx context.Context, query string) ([]Result, error) {
	body, err := json.Marshal(tavilyRequest{
		APIKey:        c.apiKey,
		Query:         query,
		MaxResults:    c.maxResults,
		IncludeAnswer: true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("search returned status %d: %s", resp.StatusCode, bytes.TrimSpace(data))
	}

	var out tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return out.Results, nil
}
