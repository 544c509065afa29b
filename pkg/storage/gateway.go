package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// httpFetcher is the concrete HTTPFetcher used for gateway and https token
// URIs.
type httpFetcher struct {
	client *http.Client
}

// Fetch performs an HTTP GET of url and returns the response body. Non-2xx
// statuses are errors; a metadata document behind a 404 is not metadata.
func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	zap.L().Debug("Fetching token metadata over HTTP", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			zap.L().Error("error closing metadata response body", zap.Error(cerr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected HTTP status %s fetching %s", resp.Status, url)
	}

	return io.ReadAll(resp.Body)
}
