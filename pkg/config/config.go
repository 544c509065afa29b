// Package config defines the runtime configuration for the SDK: the JSON-RPC
// endpoint, optional API key, metadata gateways, debug mode, and operation
// timeouts. It also provides validation and defaulting helpers.
package config

import (
	"errors"
	"time"
)

// Config holds all SDK settings required to initialize the RPC and metadata
// clients. Use Validate to fill implicit defaults and to check for required
// fields. Validate and the SDK factory write defaults into the struct in
// place; once construction returns, the SDK only ever reads it.
type Config struct {
	// Endpoint is the Cronos EVM JSON-RPC endpoint URL (required). The value
	// is not checked for well-formedness here; a malformed endpoint surfaces
	// as a transport error on the first call.
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	// APIKey is an optional bearer token. When set, every request carries an
	// "Authorization: Bearer <key>" header; when empty, no authorization
	// header is sent at all.
	APIKey string `json:"api_key" yaml:"api_key"`
	// IpfsURL is the HTTP API endpoint of the IPFS node used to resolve
	// ipfs:// token URIs. Default: https://ipfs.io:443
	IpfsURL string `json:"ipfs_url" yaml:"ipfs_url"`
	// GatewayURL is the HTTP gateway used to fetch content for token URIs
	// that carry a bare CID. Default: https://ipfs.io/ipfs/
	GatewayURL string `json:"gateway_url" yaml:"gateway_url"`
	// Debug enables verbose logging.
	Debug bool `json:"debug" yaml:"debug"`
	// Timeouts configures per-concern timeouts. See Timeouts.WithDefaults for defaults.
	Timeouts Timeouts `json:"timeouts" yaml:"timeouts"`
}

// Timeouts controls SDK operation deadlines.
// Zero values will be replaced by sane defaults in WithDefaults.
type Timeouts struct {
	HTTPRequest   time.Duration // one JSON-RPC round trip
	MetadataFetch time.Duration // token-URI metadata download
}

// Validate normalizes the configuration by applying implicit defaults for
// IpfsURL and GatewayURL and verifies that Endpoint is provided. Returns an
// error when Endpoint is empty.
func (c *Config) Validate() error {

	if c.IpfsURL == "" {
		c.IpfsURL = "https://ipfs.io:443"
	}

	if c.GatewayURL == "" {
		c.GatewayURL = "https://ipfs.io/ipfs/"
	}

	if c.Endpoint == "" {
		return errors.New("endpoint is required")
	}

	return nil
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	HTTPRequest:   30s
//	MetadataFetch: 60s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.HTTPRequest == 0 {
		tt.HTTPRequest = 30 * time.Second
	}
	if tt.MetadataFetch == 0 {
		tt.MetadataFetch = 60 * time.Second
	}
	return tt
}
