package episodes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the upstream episodes REST API
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// Config holds configuration for the episodes API client
type Config struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewClient creates a new episodes API client
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = "Podcastr/1.0"
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
	}
}

// ListEpisodes fetches episode summaries, e.g.
// GET /episodes?_limit=12&_sort=published_at&_order=desc
func (c *Client) ListEpisodes(ctx context.Context, params ListParams) ([]APIEpisode, error) {
	query := url.Values{}
	if params.Limit > 0 {
		query.Set("_limit", strconv.Itoa(params.Limit))
	}
	if params.Sort != "" {
		query.Set("_sort", params.Sort)
	}
	if params.Order != "" {
		query.Set("_order", params.Order)
	}

	endpoint := "episodes"
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var result []APIEpisode
	if err := c.makeAPIRequest(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetEpisode fetches the full record of one episode, GET /episodes/:id
func (c *Client) GetEpisode(ctx context.Context, id string) (*APIEpisode, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewValidationError("id", "episode id cannot be empty")
	}

	var result APIEpisode
	err := c.makeAPIRequest(ctx, "episodes/"+url.PathEscape(id), &result)
	if err != nil {
		var apiErr APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, NewNotFoundError("episode", id)
		}
		return nil, err
	}

	// json-server answers unknown ids with an empty object on some setups
	if result.ID == "" {
		return nil, NewNotFoundError("episode", id)
	}
	return &result, nil
}

func (c *Client) makeAPIRequest(ctx context.Context, endpoint string, result any) error {
	fullURL := fmt.Sprintf("%s/%s", c.baseURL, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[ERROR] Episodes API returned status %d for %s", resp.StatusCode, fullURL)
		return NewAPIError(endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
