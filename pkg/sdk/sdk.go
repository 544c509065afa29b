// Package sdk exposes the high-level Cronos CRC SDK entry points. It wires
// the JSON-RPC transport to the CRC-20 and CRC-721 method tables and the
// token-metadata storage backends.
package sdk

import (
	"context"

	"go.uber.org/zap"

	"github.com/cronos-labs/crc-sdk-go/pkg/config"
	"github.com/cronos-labs/crc-sdk-go/pkg/crc20"
	"github.com/cronos-labs/crc-sdk-go/pkg/crc721"
	"github.com/cronos-labs/crc-sdk-go/pkg/rpc"
	"github.com/cronos-labs/crc-sdk-go/pkg/storage"
)

// CronosSDK is the public interface of an initialized SDK instance. Both
// method tables share one transport. NewSDK fills configuration defaults in
// place during construction and never writes to the configuration again, so
// an instance is safe for concurrent use.
type CronosSDK interface {
	// CRC20 returns the fungible-token method table.
	CRC20() *crc20.Client

	// CRC721 returns the non-fungible-token method table.
	CRC721() *crc721.Client

	// TokenMetadata downloads the metadata document behind a token URI
	// (typically the result of CRC721().GetTokenURI).
	TokenMetadata(ctx context.Context, uri string) ([]byte, error)

	// Close releases idle transport connections.
	Close()
}

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// Core is the concrete SDK implementation.
type Core struct {
	rpc     *rpc.Client
	crc20   *crc20.Client
	crc721  *crc721.Client
	storage *storage.Client
	*config.Config
}

// NewSDK initializes the SDK with a validated configuration: one HTTP
// transport bound to the configured endpoint and credential, with both token
// method tables attached. Construction performs no network activity; a bad
// endpoint fails on the first call, not here.
func NewSDK(cfg *config.Config) (CronosSDK, error) {
	if err := cfg.Validate(); err != nil {
		zap.L().Error("Invalid config", zap.Error(err))
		return nil, err
	}

	cfg.Timeouts = cfg.Timeouts.WithDefaults()

	rpcClient := rpc.New(cfg.Endpoint, cfg.APIKey, cfg.Timeouts.HTTPRequest)
	storageClient := storage.NewStorage(cfg.IpfsURL, cfg.GatewayURL, cfg.Timeouts.MetadataFetch)

	if cfg.Debug {
		zap.L().Debug("SDK initialized", zap.String("endpoint", cfg.Endpoint))
	}

	return &Core{
		rpc:     rpcClient,
		crc20:   crc20.NewClient(rpcClient),
		crc721:  crc721.NewClient(rpcClient),
		storage: storageClient,
		Config:  cfg,
	}, nil
}

// CRC20 returns the fungible-token method table.
func (c *Core) CRC20() *crc20.Client {
	return c.crc20
}

// CRC721 returns the non-fungible-token method table.
func (c *Core) CRC721() *crc721.Client {
	return c.crc721
}

// TokenMetadata downloads the metadata document behind a token URI.
func (c *Core) TokenMetadata(ctx context.Context, uri string) ([]byte, error) {
	return c.storage.FetchTokenMetadata(ctx, uri)
}

// Close releases idle connections held by the transport.
func (c *Core) Close() {
	c.rpc.CloseIdleConnections()
}
