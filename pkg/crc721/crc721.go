// Package crc721 exposes the read operations of the CRC-721 non-fungible
// token standard. Same request/decode pipeline as package crc20, with the
// per-standard decoder table: token counts are unscaled integers, ownerOf
// results pass through untouched, and token URIs are ABI strings.
package crc721

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cronos-labs/crc-sdk-go/pkg/codec"
	"github.com/cronos-labs/crc-sdk-go/pkg/rpc"
)

// Client is the CRC-721 method table bound to one transport instance.
type Client struct {
	rpc *rpc.Client
}

// NewClient binds the CRC-721 operations to the given transport.
func NewClient(rpcClient *rpc.Client) *Client {
	return &Client{rpc: rpcClient}
}

// GetBalanceOf returns the number of tokens held by an address as a plain
// decimal string. NFT counts are whole numbers, so no decimal scaling applies.
func (c *Client) GetBalanceOf(ctx context.Context, req rpc.Request) (string, error) {
	return c.call(ctx, "crc721/getBalanceOf", req, func(raw string) (string, error) {
		return codec.HexToScaledDecimal(raw, 0)
	})
}

// GetOwnerOf returns the raw ownerOf result unchanged. The node already
// returns the owner as a hex string; interpreting it is left to the caller.
func (c *Client) GetOwnerOf(ctx context.Context, req rpc.Request) (string, error) {
	return c.call(ctx, "crc721/getOwnerOf", req, nil)
}

// GetTokenURI returns the token's metadata URI decoded from its ABI string
// encoding.
func (c *Client) GetTokenURI(ctx context.Context, req rpc.Request) (string, error) {
	return c.call(ctx, "crc721/getTokenUri", req, codec.DecodeABIString)
}

// call mirrors the crc20 failure boundary. A nil decode passes the raw
// result through.
func (c *Client) call(ctx context.Context, op string, req rpc.Request, decode func(string) (string, error)) (string, error) {
	raw, err := c.rpc.Call(ctx, req)
	if err != nil {
		zap.L().Error("["+op+"] error", zap.Error(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if decode == nil {
		return raw, nil
	}

	out, err := decode(raw)
	if err != nil {
		zap.L().Error("["+op+"] error", zap.Error(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}
