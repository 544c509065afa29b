// Package codec contains the pure decoding functions applied to raw JSON-RPC
// results: hexadecimal big integers scaled to decimal token amounts, and
// ABI-encoded dynamic strings turned back into UTF-8 text. All functions are
// stateless and perform no I/O.
package codec

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
)

const (
	// WeiDecimals is the scaling applied to wei-denominated balances
	// (1 ether = 10^18 wei).
	WeiDecimals int32 = 18

	// abiWordSize is the width of one ABI word in bytes. Dynamic strings are
	// laid out as an offset word, a length word, and the payload right-padded
	// to a word boundary.
	abiWordSize = 32
)

// HexToScaledDecimal parses hexStr ("0x"-prefixed or bare) as an unsigned
// big integer of arbitrary magnitude and returns its decimal string
// representation divided by 10^decimals. The division is exact: fractional
// digits are preserved, never truncated. An empty or all-zero payload
// decodes to "0" regardless of decimals.
func HexToScaledDecimal(hexStr string, decimals int32) (string, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hexStr), "0x")
	if h == "" {
		return "0", nil
	}

	value, ok := new(big.Int).SetString(h, 16)
	if !ok {
		return "", fmt.Errorf("invalid hex integer %q", hexStr)
	}
	if value.Sign() == 0 {
		return "0", nil
	}

	return decimal.NewFromBigInt(value, -decimals).String(), nil
}

// DecodeABIString decodes a hex-encoded EVM string return value into UTF-8
// text. Dynamic strings arrive as offset word + length word + right-padded
// payload; when that layout is present and in-bounds, only the payload bytes
// are returned. Inputs that do not follow the layout (already-plain
// hex-encoded text, or bare padded words) fall back to decoding the whole
// payload with trailing NUL padding trimmed.
func DecodeABIString(hexStr string) (string, error) {
	data, err := decodeHex(hexStr)
	if err != nil {
		return "", fmt.Errorf("invalid hex string: %w", err)
	}
	if len(data) == 0 {
		return "", nil
	}

	if payload, ok := dynamicStringPayload(data); ok {
		return string(payload), nil
	}

	return string(bytes.TrimRight(data, "\x00")), nil
}

// decodeHex decodes hex with or without the "0x" prefix.
func decodeHex(hexStr string) ([]byte, error) {
	s := strings.TrimSpace(hexStr)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return hexutil.Decode("0x" + s[2:])
	}
	return hex.DecodeString(s)
}

// dynamicStringPayload extracts the payload of an ABI dynamic string, if data
// follows that layout. The offset word must point at a length word inside
// data, and the declared length must fit in the remaining bytes. Plain text
// that happens to be 64 bytes or longer fails these bounds checks (its first
// word is not a small offset) and falls through to the caller's fallback.
func dynamicStringPayload(data []byte) ([]byte, bool) {
	if len(data) < 2*abiWordSize {
		return nil, false
	}

	// Compare against the remaining space instead of adding to the untrusted
	// word: off+abiWordSize and start+n can wrap negative for values near
	// MaxInt64 and slip past the check.
	offset := new(big.Int).SetBytes(data[:abiWordSize])
	if !offset.IsInt64() {
		return nil, false
	}
	off := offset.Int64()
	if off < 0 || off > int64(len(data))-abiWordSize {
		return nil, false
	}

	length := new(big.Int).SetBytes(data[off : off+abiWordSize])
	if !length.IsInt64() {
		return nil, false
	}
	n := length.Int64()
	start := off + abiWordSize
	if n < 0 || n > int64(len(data))-start {
		return nil, false
	}

	return data[start : start+n], true
}
