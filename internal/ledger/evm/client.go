// Package evm carries constant contract calls to an EVM JSON-RPC node
// (Base Sepolia in the default deployment) via eth_call.
package evm

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/ledger"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/ledger/abi"
)

const defaultTimeout = 30 * time.Second

type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// Client implements ledger.CallTransport over JSON-RPC 2.0.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("evm: RPC endpoint required")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint:   cfg.Endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type callParams struct {
	To   string `json:"to"`
	Data string `json:"data"`
}

// reverted reports whether the node rejected the call at the EVM level
// rather than at the transport level. Nodes disagree on the error code,
// so the message is checked too.
func reverted(e *rpcError) bool {
	return e.Code == 3 || strings.Contains(strings.ToLower(e.Message), "revert")
}

func (c *Client) Call(ctx context.Context, contractAddress string, call abi.Call) ([]byte, error) {
	method := call.Signature
	req := rpcRequest{
		JSONRPC: "2.0",
		Method:  "eth_call",
		Params: []any{
			callParams{To: contractAddress, Data: "0x" + hex.EncodeToString(call.Data())},
			"latest",
		},
		ID: 1,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &ledger.TransportError{Method: method, Err: fmt.Errorf("marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &ledger.TransportError{Method: method, Err: fmt.Errorf("create request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &ledger.TransportError{Method: method, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ledger.TransportError{Method: method, Err: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ledger.TransportError{Method: method, Err: fmt.Errorf("node returned HTTP %d", resp.StatusCode)}
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return nil, &ledger.TransportError{Method: method, Err: fmt.Errorf("unmarshal response: %w", err)}
	}
	if rpcResp.Error != nil {
		if reverted(rpcResp.Error) {
			return nil, fmt.Errorf("%s: %w", method, ledger.ErrNotFound)
		}
		return nil, &ledger.TransportError{Method: method, Err: rpcResp.Error}
	}

	var resultHex string
	if err := json.Unmarshal(rpcResp.Result, &resultHex); err != nil {
		return nil, &ledger.TransportError{Method: method, Err: fmt.Errorf("unmarshal result: %w", err)}
	}
	out, err := hex.DecodeString(strings.TrimPrefix(resultHex, "0x"))
	if err != nil {
		return nil, &ledger.TransportError{Method: method, Err: fmt.Errorf("decode result hex: %w", err)}
	}
	if len(out) == 0 {
		// eth_call against a missing contract or pruned state yields 0x.
		return nil, fmt.Errorf("%s: empty return: %w", method, ledger.ErrNotFound)
	}
	return out, nil
}

func (c *Client) ParseAddress(s string) (abi.Address, error) {
	return abi.HexToAddress(s)
}

func (c *Client) FormatAddress(a abi.Address) string {
	return a.Hex()
}
