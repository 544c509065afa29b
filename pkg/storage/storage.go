// Package storage resolves CRC-721 token URIs to their metadata bytes.
// Two backends are supported: IPFS (ipfs:// URIs, fetched through a Kubo
// HTTP API client) and plain HTTP(S) for gateway-hosted metadata. Bare CIDs
// are routed through the configured HTTP gateway.
package storage

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ipfs/kubo/client/rpc"
	"go.uber.org/zap"
)

const (
	// IpfsPrefix is the URI scheme recognized for IPFS-addressed metadata.
	IpfsPrefix = "ipfs://"
)

// IPFSFetcher fetches content addressed by CID from IPFS.
type IPFSFetcher interface {
	Fetch(ctx context.Context, cid string) ([]byte, error)
}

// HTTPFetcher fetches content from a plain HTTP(S) URL.
type HTTPFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Client resolves token URIs against the configured backends. Construct
// with NewStorage; construction performs no network I/O.
type Client struct {
	// GatewayUrl is the base URL used for bare-CID token URIs.
	GatewayUrl string

	ipfsFetcher IPFSFetcher
	httpFetcher HTTPFetcher
}

// NewStorage constructs a metadata client using the provided IPFS API
// endpoint and HTTP gateway URL. timeout bounds each metadata download.
// If the IPFS client fails to initialize, the error is logged and ipfs://
// URIs will fail at fetch time.
func NewStorage(ipfsURL, gatewayURL string, timeout time.Duration) *Client {
	s := &Client{
		GatewayUrl:  gatewayURL,
		httpFetcher: &httpFetcher{client: &http.Client{Timeout: timeout}},
	}

	api, err := newIPFSClient(ipfsURL, timeout)
	if err != nil {
		zap.L().Error("Failed to initialize IPFS client", zap.String("url", ipfsURL), zap.Error(err))
	}
	s.ipfsFetcher = &ipfsFetcher{api: api}

	return s
}

// FetchTokenMetadata downloads the metadata document referenced by a token
// URI. ipfs:// URIs go through the Kubo client; http:// and https:// URIs
// are fetched directly; anything else is treated as a bare CID and routed
// through the gateway.
func (s *Client) FetchTokenMetadata(ctx context.Context, uri string) ([]byte, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, fmt.Errorf("empty token URI")
	}

	switch {
	case strings.HasPrefix(uri, IpfsPrefix):
		return s.ipfsFetcher.Fetch(ctx, strings.TrimPrefix(uri, IpfsPrefix))
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		return s.httpFetcher.Fetch(ctx, uri)
	default:
		return s.httpFetcher.Fetch(ctx, s.GatewayUrl+uri)
	}
}

// newIPFSClient constructs a Kubo HTTP API client pointed at url. The
// returned client holds no connection; dialing happens on first use.
func newIPFSClient(url string, timeout time.Duration) (*rpc.HttpApi, error) {
	httpClient := http.Client{
		Timeout: timeout,
	}
	return rpc.NewURLApiWithClient(url, &httpClient)
}
