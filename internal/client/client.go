// Package client is the caller side of the association service. Every call
// is bounded by a short timeout; when no timely reply arrives, or the reply is
// the default-choice sentinel, the caller falls back to its own default file.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gcbaptista/smart-selector/config"
	apperrors "github.com/gcbaptista/smart-selector/internal/errors"
	"github.com/gcbaptista/smart-selector/model"
)

const (
	associatePath = "/associate"
	keywordsPath  = "/keywords"
	maxReplyBytes = 1 << 20
)

// Client talks to the association service over HTTP.
type Client struct {
	baseURL     string
	defaultFile string
	httpClient  *http.Client
}

// Choice is the outcome of Choose.
type Choice struct {
	File     string // the file to launch
	Fallback bool   // true when File is the configured default
	Reason   string // why the default was used
}

// New creates a Client from launcher settings.
func New(settings config.LauncherSettings) *Client {
	settings.ApplyDefaults()
	return &Client{
		baseURL:     strings.TrimRight(settings.ServerURL, "/"),
		defaultFile: settings.DefaultFile,
		httpClient: &http.Client{
			Timeout:   settings.Timeout,
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		},
	}
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// DefaultFile returns the file used when no match is available.
func (c *Client) DefaultFile() string {
	return c.defaultFile
}

// Associate sends one request and returns the service's reply.
// A rejected request yields an error matching errors.ErrFormat; a missing or
// late reply yields one matching errors.ErrServiceUnavailable.
func (c *Client) Associate(ctx context.Context, queries, files []string) (model.Associations, error) {
	if files == nil {
		files = []string{}
	}
	body, err := json.Marshal(model.AssociationRequest{Strings: queries, Files: files})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	var reply model.Associations
	if err := c.post(ctx, associatePath, body, &reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// Keywords asks the service for the vocabulary of files.
func (c *Client) Keywords(ctx context.Context, files []string) ([]string, error) {
	if files == nil {
		files = []string{}
	}
	body, err := json.Marshal(model.KeywordsRequest{Files: files})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	var reply model.KeywordsResponse
	if err := c.post(ctx, keywordsPath, body, &reply); err != nil {
		return nil, err
	}
	return reply.Keywords, nil
}

// Choose associates a single query and never fails: any error, or the
// default-choice sentinel, resolves to the configured default file.
func (c *Client) Choose(ctx context.Context, query string, files []string) Choice {
	reply, err := c.Associate(ctx, []string{query}, files)
	if err != nil {
		log.Printf("No server response detected. Default file used: %v", err)
		return Choice{File: c.defaultFile, Fallback: true, Reason: err.Error()}
	}

	chosen, ok := reply[query]
	switch {
	case !ok:
		log.Printf("Reply did not contain %q. Default file used.", query)
		return Choice{File: c.defaultFile, Fallback: true, Reason: "query missing from reply"}
	case chosen == model.DefaultChoice:
		log.Printf("File selected: %s", c.defaultFile)
		return Choice{File: c.defaultFile, Fallback: true, Reason: "no matching file"}
	default:
		log.Printf("File selected: %s", chosen)
		return Choice{File: chosen}
	}
}

func (c *Client) post(ctx context.Context, path string, body []byte, out interface{}) error {
	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewUnavailableError(endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return apperrors.NewUnavailableError(endpoint, err)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return apperrors.NewFormatError("", "request rejected by service")
	case resp.StatusCode != http.StatusOK:
		return apperrors.NewUnavailableError(endpoint, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode reply from %s: %w", endpoint, err)
	}
	log.Printf("Reply received from %s in %s", endpoint, time.Since(start))
	return nil
}
