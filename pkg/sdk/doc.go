// Package sdk provides the high-level entry point for reading CRC-20 and
// CRC-721 token state from a Cronos EVM node over JSON-RPC.
//
// The SDK is a thin convenience layer: the caller builds the JSON-RPC payload
// (method name plus ABI-encoded call data), the SDK performs one HTTP round
// trip per operation and decodes the raw hexadecimal result into a
// human-readable string.
//
// # Quick Start
//
// Create an SDK instance with configuration, then call through the method
// tables:
//
//	import (
//		"context"
//
//		"github.com/cronos-labs/crc-sdk-go/pkg/config"
//		"github.com/cronos-labs/crc-sdk-go/pkg/rpc"
//		"github.com/cronos-labs/crc-sdk-go/pkg/sdk"
//	)
//
//	func main() {
//		cfg := &config.Config{
//			Endpoint: "https://evm.cronos.org",
//			APIKey:   "YOUR_API_KEY", // optional
//		}
//
//		cronos, err := sdk.NewSDK(cfg)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer cronos.Close()
//
//		balance, err := cronos.CRC20().GetBalance(context.Background(), rpc.Request{
//			Method: "eth_getBalance",
//			Params: []rpc.Param{rpc.BlockTag("0xYourAddress"), rpc.BlockTag("latest")},
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println("balance:", balance)
//	}
//
// # Method Tables
//
// CRC20 (fungible tokens):
//   - GetBalance: wei balance scaled to an 18-decimal string
//   - GetBalanceOf: balanceOf result scaled to an 18-decimal string
//   - GetName: token name (ABI string decoded)
//   - GetSymbol: token symbol (ABI string decoded)
//   - GetTotalSupply: total supply scaled by 6 decimals
//
// CRC721 (non-fungible tokens):
//   - GetBalanceOf: token count, unscaled
//   - GetOwnerOf: raw result passthrough (owner address)
//   - GetTokenURI: metadata URI (ABI string decoded)
//
// The decimal scaling is an assumption, not a lookup: tokens whose on-chain
// decimals() differ from 18 (balances) or 6 (total supply) will display
// mis-scaled. The SDK never issues an extra decimals() round trip on the
// caller's behalf.
//
// # Payloads
//
// Every operation takes the full JSON-RPC payload. The SDK does not encode
// contract calls; use your ABI tooling of choice to build CallObject.Data:
//
//	req := rpc.Request{
//		Method: "eth_call",
//		Params: []rpc.Param{
//			rpc.CallObject{To: tokenAddr, Data: "0x70a08231000..."},
//			rpc.BlockTag("latest"),
//		},
//	}
//
// # Error Handling
//
// Every operation either returns the decoded string or an error tagged with
// the operation identity ("crc20/getBalance: ..."). The underlying *rpc.Error
// is reachable with errors.As and classifies the failure as transport, node,
// or decode:
//
//	_, err := cronos.CRC20().GetBalance(ctx, req)
//	var rpcErr *rpc.Error
//	if errors.As(err, &rpcErr) && rpcErr.Kind == rpc.KindNode {
//		// the node rejected the call; rpcErr.Message is the node's text
//	}
//
// No operation retries, recovers, or substitutes fallback values.
//
// # Token Metadata
//
// CRC-721 token URIs usually point at IPFS or an HTTP gateway. TokenMetadata
// resolves either form:
//
//	uri, _ := cronos.CRC721().GetTokenURI(ctx, req)
//	doc, err := cronos.TokenMetadata(ctx, uri)
//
// # Thread Safety
//
// An SDK instance and its method tables are safe for concurrent use; calls
// share only the transport's connection pool.
//
// # Logging
//
// The package installs a default global zap logger at init. Replace it with
// zap.ReplaceGlobals if the application manages its own logging.
package sdk
