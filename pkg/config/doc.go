// Package config provides configuration management for the Cronos CRC SDK.
//
// This package defines the Config structure that controls SDK behavior:
// the JSON-RPC endpoint, optional bearer authentication, metadata gateways,
// and timeouts.
//
// # Basic Configuration
//
// The minimum required configuration is a JSON-RPC endpoint:
//
//	cfg := &config.Config{
//		Endpoint: "https://evm.cronos.org",
//	}
//
// # Authentication
//
// Hosted endpoints usually require an API key. When APIKey is set, every
// request carries an "Authorization: Bearer <key>" header:
//
//	cfg := &config.Config{
//		Endpoint: "https://cronos.w3node.com",
//		APIKey:   "YOUR_API_KEY",
//	}
//
// When APIKey is empty the header is omitted entirely.
//
// # Metadata Gateways
//
// Token metadata referenced by CRC-721 token URIs is fetched through IPFS
// or an HTTP gateway. Default gateways are provided:
//
//	IpfsURL:    "https://ipfs.io:443"
//	GatewayURL: "https://ipfs.io/ipfs/"
//
// # Timeouts
//
// Zero timeout values are replaced by defaults in Timeouts.WithDefaults:
//
//	HTTPRequest:   30s
//	MetadataFetch: 60s
package config
