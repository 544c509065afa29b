// Package rpc implements the JSON-RPC 2.0 HTTP transport shared by all token
// method tables. One Client is bound to one endpoint (and, optionally, one
// bearer token) for its whole lifetime; it holds no mutable state, so a
// single instance is safe for concurrent use.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client issues JSON-RPC calls to a single endpoint. Construct with New;
// the zero value is not usable.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// New constructs a Client bound to endpoint. apiKey may be empty, in which
// case no Authorization header is ever sent. timeout bounds the whole HTTP
// round trip; zero means no client-side limit.
func New(endpoint, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		endpoint: endpoint,
		apiKey:   apiKey,
	}
}

// Endpoint returns the bound endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Call performs one JSON-RPC round trip: POST the request to the endpoint
// root, read the envelope, and return the result string. Exactly one of the
// three Error kinds is produced on failure; no retries, no fallback value.
func (c *Client) Call(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      1,
		Method:  req.Method,
		Params:  req.Params,
	})
	if err != nil {
		return "", newDecodeError("failed to marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", newTransportError(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", newTransportError(err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			zap.L().Error("failed to close response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", newTransportError(fmt.Errorf("unexpected HTTP status %s", resp.Status))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newTransportError(err)
	}

	var envelope response
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", newDecodeError("failed to parse response envelope", err)
	}

	if envelope.Error != nil {
		return "", newNodeError(envelope.Error.Message)
	}
	if envelope.Result == nil {
		return "", newDecodeError("response carries neither result nor error", nil)
	}

	return *envelope.Result, nil
}

// CloseIdleConnections releases pooled connections held by the transport.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}
