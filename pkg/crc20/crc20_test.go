package crc20

import (
	"context"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cronos-labs/crc-sdk-go/pkg/rpc"
)

// fixedResultServer answers every request with the given JSON-RPC result.
func fixedResultServer(t *testing.T, result string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"` + result + `"}`))
	}))
}

func balanceRequest() rpc.Request {
	return rpc.Request{
		Method: "eth_getBalance",
		Params: []rpc.Param{rpc.BlockTag("0xAccount"), rpc.BlockTag("latest")},
	}
}

func callRequest() rpc.Request {
	return rpc.Request{
		Method: "eth_call",
		Params: []rpc.Param{
			rpc.CallObject{To: "0xToken", Data: "0x18160ddd"},
			rpc.BlockTag("latest"),
		},
	}
}

func TestGetBalance(t *testing.T) {
	srv := fixedResultServer(t, "0x0de0b6b3a7640000") // 1 ether in wei
	defer srv.Close()

	c := NewClient(rpc.New(srv.URL, "", time.Second))
	got, err := c.GetBalance(context.Background(), balanceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1" {
		t.Fatalf("got %q want %q", got, "1")
	}
}

func TestGetBalanceOf(t *testing.T) {
	srv := fixedResultServer(t, "0x3635c9adc5dea00000") // 1000 ether in wei
	defer srv.Close()

	c := NewClient(rpc.New(srv.URL, "", time.Second))
	got, err := c.GetBalanceOf(context.Background(), callRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1000" {
		t.Fatalf("got %q want %q", got, "1000")
	}
}

func TestGetTotalSupply(t *testing.T) {
	srv := fixedResultServer(t, "0xf4240") // 1_000_000 at 6 decimals
	defer srv.Close()

	c := NewClient(rpc.New(srv.URL, "", time.Second))
	got, err := c.GetTotalSupply(context.Background(), callRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1" {
		t.Fatalf("got %q want %q", got, "1")
	}
}

func TestGetNameAndSymbol(t *testing.T) {
	// "Wrapped CRO" in the ABI dynamic-string layout.
	name := "Wrapped CRO"
	payload := make([]byte, 96)
	payload[31] = 0x20
	payload[63] = byte(len(name))
	copy(payload[64:], name)

	srv := fixedResultServer(t, "0x"+hex.EncodeToString(payload))
	defer srv.Close()

	c := NewClient(rpc.New(srv.URL, "", time.Second))

	got, err := c.GetName(context.Background(), callRequest())
	if err != nil {
		t.Fatalf("GetName: %v", err)
	}
	if got != name {
		t.Fatalf("GetName = %q, want %q", got, name)
	}

	got, err = c.GetSymbol(context.Background(), callRequest())
	if err != nil {
		t.Fatalf("GetSymbol: %v", err)
	}
	if got != name {
		t.Fatalf("GetSymbol = %q, want %q", got, name)
	}
}

func TestNodeErrorFailsEveryOperation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"execution reverted"}}`))
	}))
	defer srv.Close()

	c := NewClient(rpc.New(srv.URL, "", time.Second))
	ctx := context.Background()

	ops := map[string]func() (string, error){
		"crc20/getBalance":     func() (string, error) { return c.GetBalance(ctx, balanceRequest()) },
		"crc20/getBalanceOf":   func() (string, error) { return c.GetBalanceOf(ctx, callRequest()) },
		"crc20/getName":        func() (string, error) { return c.GetName(ctx, callRequest()) },
		"crc20/getSymbol":      func() (string, error) { return c.GetSymbol(ctx, callRequest()) },
		"crc20/getTotalSupply": func() (string, error) { return c.GetTotalSupply(ctx, callRequest()) },
	}

	for tag, op := range ops {
		_, err := op()
		if err == nil {
			t.Fatalf("%s: expected error", tag)
		}
		if !strings.Contains(err.Error(), tag) {
			t.Fatalf("%s: error %q lacks the operation tag", tag, err)
		}
		if !strings.Contains(err.Error(), "execution reverted") {
			t.Fatalf("%s: error %q lacks the node message", tag, err)
		}
		var rpcErr *rpc.Error
		if !errors.As(err, &rpcErr) || rpcErr.Kind != rpc.KindNode {
			t.Fatalf("%s: expected a node error, got %v", tag, err)
		}
	}
}

func TestDecodeErrorTagged(t *testing.T) {
	srv := fixedResultServer(t, "0xzz")
	defer srv.Close()

	c := NewClient(rpc.New(srv.URL, "", time.Second))
	_, err := c.GetBalance(context.Background(), balanceRequest())
	if err == nil {
		t.Fatal("expected error for malformed hex result")
	}
	if !strings.Contains(err.Error(), "crc20/getBalance") {
		t.Fatalf("error %q lacks the operation tag", err)
	}
}
