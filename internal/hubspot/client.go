// Package hubspot implements the subset of the HubSpot CRM v3 REST API that
// taxsync needs: batch creation of tax objects, the tax property schema, and
// cursor pagination over the tax object collection.
package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"taxsync/internal/logging"
	"taxsync/internal/util"
)

const (
	// DefaultBaseURL is the production HubSpot API host.
	DefaultBaseURL = "https://api.hubapi.com"

	// MaxBatchSize is HubSpot's documented per-request cap for batch create.
	MaxBatchSize = 100

	batchCreatePath = "/crm/v3/objects/taxes/batch/create"
	listPath        = "/crm/v3/objects/taxes"
	propertiesPath  = "/crm/v3/properties/taxes"
)

// Client is a synchronous HubSpot CRM client. It performs no retries; transport
// failures and non-2xx responses surface as *APIError.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a client for the given API host using the bearer token.
// An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logging.NewLogger("hubspot-client"),
	}
}

// SetHTTPClient replaces the underlying HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// do executes one request and decodes a 2xx JSON response into out. Error
// response bodies are logged before the call fails.
func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", req.URL.Path).Msg("HTTP request failed")
		return &APIError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("url", req.URL.Path).
			Str("body", util.Snippet(body)).
			Msg("API request returned error status")
		return &APIError{StatusCode: resp.StatusCode, Body: util.Snippet(body)}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return &APIError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

// BatchCreate submits one batch of tax property maps to the batch-create
// endpoint and returns the parsed response. The batch must not exceed
// MaxBatchSize entries.
func (c *Client) BatchCreate(ctx context.Context, batch []Properties) (*BatchResponse, error) {
	if len(batch) > MaxBatchSize {
		return nil, fmt.Errorf("batch size %d exceeds maximum of %d", len(batch), MaxBatchSize)
	}

	reqBody := batchCreateRequest{Inputs: make([]batchInput, 0, len(batch))}
	for _, props := range batch {
		reqBody.Inputs = append(reqBody.Inputs, batchInput{Properties: props})
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal batch payload: %w", err)
	}

	c.logger.Debug().
		Int("inputs", len(batch)).
		Str("payload", util.Snippet(payload)).
		Msg("Submitting batch create")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+batchCreatePath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var result BatchResponse
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListProperties fetches the full property-name list for the tax object type.
func (c *Client) ListProperties(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+propertiesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	var schema propertiesResponse
	if err := c.do(req, &schema); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(schema.Results))
	for _, prop := range schema.Results {
		names = append(names, prop.Name)
	}
	c.logger.Debug().Int("properties", len(names)).Msg("Fetched tax property schema")
	return names, nil
}

// ListPage fetches one page of tax objects. An empty after token requests the
// first page.
func (c *Client) ListPage(ctx context.Context, limit int, after string, properties []string) (*TaxPage, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	for _, prop := range properties {
		query.Add("properties", prop)
	}
	if after != "" {
		query.Set("after", after)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+listPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	var page TaxPage
	if err := c.do(req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListAll retrieves the complete tax object collection in page order. It first
// fetches the property schema, then follows the paging cursor until the
// response carries no next token. Any failure aborts immediately, discarding
// partial accumulation.
func (c *Client) ListAll(ctx context.Context, limit int) ([]TaxObject, error) {
	properties, err := c.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch tax properties: %w", err)
	}

	var all []TaxObject
	after := ""
	pageNum := 0
	for {
		page, err := c.ListPage(ctx, limit, after, properties)
		if err != nil {
			return nil, fmt.Errorf("fetch tax page %d: %w", pageNum, err)
		}
		all = append(all, page.Results...)
		pageNum++
		c.logger.Debug().
			Int("page", pageNum).
			Int("page_results", len(page.Results)).
			Int("accumulated", len(all)).
			Msg("Fetched tax page")

		if page.Paging == nil || page.Paging.Next == nil || page.Paging.Next.After == "" {
			break
		}
		after = page.Paging.Next.After
	}

	c.logger.Info().Int("objects", len(all)).Int("pages", pageNum).Msg("Retrieved tax objects")
	return all, nil
}
