// Package crc20 exposes the read operations of the CRC-20 fungible token
// standard as typed wrappers over a shared JSON-RPC transport. Each operation
// performs exactly one round trip, applies its decoder, and either returns
// the decoded string or fails with an error tagged by the operation name.
package crc20

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cronos-labs/crc-sdk-go/pkg/codec"
	"github.com/cronos-labs/crc-sdk-go/pkg/rpc"
)

// totalSupplyDecimals is the scaling assumed for getTotalSupply results.
// Like the 18-decimal assumption on balances, it is NOT verified against the
// token's on-chain decimals() value: a token with different precision will
// display mis-scaled. Querying decimals() automatically would add a network
// round trip per call, so the assumption is kept explicit instead.
const totalSupplyDecimals int32 = 6

// Client is the CRC-20 method table bound to one transport instance.
type Client struct {
	rpc *rpc.Client
}

// NewClient binds the CRC-20 operations to the given transport.
func NewClient(rpcClient *rpc.Client) *Client {
	return &Client{rpc: rpcClient}
}

// GetBalance returns the account's native balance, scaled from wei to an
// 18-decimal string. The payload is typically
// {Method: "eth_getBalance", Params: [address, "latest"]}.
func (c *Client) GetBalance(ctx context.Context, req rpc.Request) (string, error) {
	return c.call(ctx, "crc20/getBalance", req, func(raw string) (string, error) {
		return codec.HexToScaledDecimal(raw, codec.WeiDecimals)
	})
}

// GetBalanceOf returns a token balance from a balanceOf eth_call, scaled by
// 18 decimals.
func (c *Client) GetBalanceOf(ctx context.Context, req rpc.Request) (string, error) {
	return c.call(ctx, "crc20/getBalanceOf", req, func(raw string) (string, error) {
		return codec.HexToScaledDecimal(raw, codec.WeiDecimals)
	})
}

// GetName returns the token name decoded from its ABI string encoding.
func (c *Client) GetName(ctx context.Context, req rpc.Request) (string, error) {
	return c.call(ctx, "crc20/getName", req, codec.DecodeABIString)
}

// GetSymbol returns the token symbol decoded from its ABI string encoding.
func (c *Client) GetSymbol(ctx context.Context, req rpc.Request) (string, error) {
	return c.call(ctx, "crc20/getSymbol", req, codec.DecodeABIString)
}

// GetTotalSupply returns the token's total supply scaled by 6 decimals.
// See totalSupplyDecimals for the caveat on this assumption.
func (c *Client) GetTotalSupply(ctx context.Context, req rpc.Request) (string, error) {
	return c.call(ctx, "crc20/getTotalSupply", req, func(raw string) (string, error) {
		return codec.HexToScaledDecimal(raw, totalSupplyDecimals)
	})
}

// call is the single failure boundary shared by all operations: request,
// decode, and on any error log once with the operation tag and rewrap.
func (c *Client) call(ctx context.Context, op string, req rpc.Request, decode func(string) (string, error)) (string, error) {
	raw, err := c.rpc.Call(ctx, req)
	if err != nil {
		zap.L().Error("["+op+"] error", zap.Error(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	out, err := decode(raw)
	if err != nil {
		zap.L().Error("["+op+"] error", zap.Error(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}
