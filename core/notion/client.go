package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// apiVersion is the fixed Notion-Version header sent with every request.
const apiVersion = "2022-06-28"

// PageRef identifies a single page returned by a database query.
type PageRef struct {
	ID string `json:"id"`
}

// Client defines the interface for Notion page operations.
type Client interface {
	// VerifyDatabase checks that the credential can see the given database.
	// It returns *AuthError when the credential or database id is rejected.
	VerifyDatabase(ctx context.Context, databaseID string) error
	// QueryPages lists the pages currently in the database. A single query
	// call is issued; cursor following is out of scope.
	QueryPages(ctx context.Context, databaseID string) ([]PageRef, error)
	// ArchivePage soft-deletes a page.
	ArchivePage(ctx context.Context, pageID string) error
	// CreatePage inserts a new page from the given payload.
	CreatePage(ctx context.Context, payload any) error
}

// NewClient creates a new HTTP-backed Notion client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("notion: api key is required")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Custom transport with strict timeouts so a dead API endpoint cannot
	// hang a sync run indefinitely.
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	base := cfg.BaseURL
	if base == "" {
		base = "https://api.notion.com/v1"
	}

	return &httpClient{
		base:   strings.TrimSuffix(base, "/"),
		apiKey: cfg.APIKey,
		hc:     &http.Client{Transport: transport},
	}, nil
}

type httpClient struct {
	base   string
	apiKey string
	hc     *http.Client
}

func (c *httpClient) VerifyDatabase(ctx context.Context, databaseID string) error {
	res, err := c.do(ctx, http.MethodGet, "/databases/"+databaseID, nil)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if isSuccess(res.StatusCode) {
		return nil
	}

	switch res.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return &AuthError{Status: res.StatusCode, Message: apiMessage(res.Body)}
	default:
		return &APIError{Status: res.StatusCode, Message: apiMessage(res.Body)}
	}
}

func (c *httpClient) QueryPages(ctx context.Context, databaseID string) ([]PageRef, error) {
	res, err := c.do(ctx, http.MethodPost, "/databases/"+databaseID+"/query", nil)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if !isSuccess(res.StatusCode) {
		return nil, &APIError{Status: res.StatusCode, Message: apiMessage(res.Body)}
	}

	var body struct {
		Results []PageRef `json:"results"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("notion: decoding query response: %w", err)
	}

	return body.Results, nil
}

func (c *httpClient) ArchivePage(ctx context.Context, pageID string) error {
	res, err := c.do(ctx, http.MethodPatch, "/pages/"+pageID, map[string]bool{"archived": true})
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if !isSuccess(res.StatusCode) {
		return &APIError{Status: res.StatusCode, Message: apiMessage(res.Body)}
	}
	return nil
}

func (c *httpClient) CreatePage(ctx context.Context, payload any) error {
	res, err := c.do(ctx, http.MethodPost, "/pages", payload)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if !isSuccess(res.StatusCode) {
		return &APIError{Status: res.StatusCode, Message: apiMessage(res.Body)}
	}
	return nil
}

// do builds and sends an authenticated request to the Notion API.
func (c *httpClient) do(ctx context.Context, method, endpoint string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("notion: encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("notion: building request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("notion: %s %s: %w", method, endpoint, err)
	}
	return res, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// apiMessage extracts the "message" field from an error response body.
func apiMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	return body.Message
}
