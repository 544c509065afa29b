package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ipfs/go-cid"
	"github.com/ipfs/kubo/client/rpc"
	"go.uber.org/zap"
)

// ipfsFetcher is the concrete IPFSFetcher backed by the Kubo HTTP API.
type ipfsFetcher struct {
	api *rpc.HttpApi
}

// Fetch retrieves the content addressed by hash via `ipfs cat`. The hash is
// parsed as a CID before the request so obviously malformed token URIs fail
// without a round trip.
func (f *ipfsFetcher) Fetch(ctx context.Context, hash string) (content []byte, err error) {
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
	}

	if f.api == nil {
		return nil, fmt.Errorf("ipfs client not configured")
	}

	cID, err := cid.Parse(hash)
	if err != nil {
		zap.L().Error("error parsing token URI as CID", zap.String("cid", hash), zap.Error(err))
		return nil, fmt.Errorf("invalid CID %q: %w", hash, err)
	}

	zap.L().Debug("Fetching token metadata from IPFS", zap.String("cid", cID.String()))

	resp, err := f.api.Request("cat", cID.String()).Send(ctx)
	if err != nil {
		zap.L().Error("error executing the cat command in ipfs", zap.String("cid", hash), zap.Error(err))
		return nil, err
	}
	defer func(resp *rpc.Response) {
		if cerr := resp.Close(); cerr != nil {
			zap.L().Error("error closing ipfs response", zap.String("cid", hash), zap.Error(cerr))
		}
	}(resp)

	if resp.Error != nil {
		zap.L().Error("ipfs cat command returned error", zap.String("cid", hash), zap.Error(resp.Error))
		return nil, resp.Error
	}

	content, err = io.ReadAll(resp.Output)
	if err != nil {
		zap.L().Error("error reading token metadata from ipfs", zap.String("cid", hash), zap.Error(err))
		return nil, err
	}

	return content, nil
}
