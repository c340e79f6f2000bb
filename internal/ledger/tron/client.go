// Package tron carries constant contract calls to a TronGrid-compatible
// node (Shasta in the default deployment) via
// wallet/triggerconstantcontract. Tron shares the EVM ABI but uses
// base58check addresses with a 0x41 version byte.
package tron

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/mr-tron/base58"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/ledger"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/ledger/abi"
)

const (
	defaultTimeout = 30 * time.Second
	addressPrefix  = 0x41
)

type Config struct {
	Endpoint string
	// OwnerAddress is the caller address TronGrid requires on constant
	// calls; any funded or unfunded account works for reads.
	OwnerAddress string
	Timeout      time.Duration
}

// Client implements ledger.CallTransport over the TronGrid HTTP API.
type Client struct {
	endpoint   string
	owner      string
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("tron: API endpoint required")
	}
	if cfg.OwnerAddress == "" {
		return nil, fmt.Errorf("tron: owner address required")
	}
	owner, err := toTronHex(cfg.OwnerAddress)
	if err != nil {
		return nil, fmt.Errorf("tron: owner address: %w", err)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint:   strings.TrimSuffix(cfg.Endpoint, "/"),
		owner:      owner,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type triggerRequest struct {
	OwnerAddress     string `json:"owner_address"`
	ContractAddress  string `json:"contract_address"`
	FunctionSelector string `json:"function_selector"`
	Parameter        string `json:"parameter"`
}

type triggerResponse struct {
	Result struct {
		Result  bool   `json:"result"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"result"`
	ConstantResult []string `json:"constant_result"`
}

func (c *Client) Call(ctx context.Context, contractAddress string, call abi.Call) ([]byte, error) {
	method := call.Signature
	contract, err := toTronHex(contractAddress)
	if err != nil {
		return nil, &ledger.TransportError{Method: method, Err: fmt.Errorf("contract address: %w", err)}
	}

	body, err := json.Marshal(triggerRequest{
		OwnerAddress:     c.owner,
		ContractAddress:  contract,
		FunctionSelector: call.Signature,
		Parameter:        hex.EncodeToString(call.Parameter()),
	})
	if err != nil {
		return nil, &ledger.TransportError{Method: method, Err: fmt.Errorf("marshal request: %w", err)}
	}

	url := c.endpoint + "/wallet/triggerconstantcontract"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
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

	var trigResp triggerResponse
	if err := json.Unmarshal(respBody, &trigResp); err != nil {
		return nil, &ledger.TransportError{Method: method, Err: fmt.Errorf("unmarshal response: %w", err)}
	}
	if !trigResp.Result.Result {
		// The node executed the call and the contract rejected it.
		return nil, fmt.Errorf("%s: %s: %w", method, decodeMessage(trigResp.Result.Message), ledger.ErrNotFound)
	}
	if len(trigResp.ConstantResult) == 0 {
		return nil, fmt.Errorf("%s: empty constant result: %w", method, ledger.ErrNotFound)
	}

	out, err := hex.DecodeString(trigResp.ConstantResult[0])
	if err != nil {
		return nil, &ledger.TransportError{Method: method, Err: fmt.Errorf("decode constant result: %w", err)}
	}
	return out, nil
}

// decodeMessage turns TronGrid's hex-encoded failure message into text.
func decodeMessage(msg string) string {
	if raw, err := hex.DecodeString(msg); err == nil && len(raw) > 0 {
		return string(raw)
	}
	return msg
}

// ParseAddress accepts both T-prefixed base58check and 0x/41 hex forms.
func (c *Client) ParseAddress(s string) (abi.Address, error) {
	return parseAddress(s)
}

func parseAddress(s string) (abi.Address, error) {
	var a abi.Address
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return abi.HexToAddress(s)
	}
	if strings.HasPrefix(s, "41") && len(s) == 42 {
		return abi.HexToAddress(s[2:])
	}
	payload, err := base58.Decode(s)
	if err != nil {
		return a, fmt.Errorf("tron: bad base58 address %q: %w", s, err)
	}
	if len(payload) != 25 || payload[0] != addressPrefix {
		return a, fmt.Errorf("tron: address %q has wrong payload", s)
	}
	body, check := payload[:21], payload[21:]
	sum := doubleSHA256(body)
	if !bytes.Equal(sum[:4], check) {
		return a, fmt.Errorf("tron: address %q checksum mismatch", s)
	}
	copy(a[:], body[1:])
	return a, nil
}

// FormatAddress renders a 20-byte address in Tron base58check form.
func (c *Client) FormatAddress(a abi.Address) string {
	body := make([]byte, 0, 25)
	body = append(body, addressPrefix)
	body = append(body, a[:]...)
	sum := doubleSHA256(body)
	return base58.Encode(append(body, sum[:4]...))
}

// toTronHex normalizes any accepted address form into the 41-prefixed hex
// the HTTP API expects.
func toTronHex(s string) (string, error) {
	if strings.HasPrefix(s, "41") && len(s) == 42 {
		if _, err := hex.DecodeString(s); err == nil {
			return s, nil
		}
	}
	a, err := parseAddress(s)
	if err != nil {
		return "", err
	}
	return "41" + hex.EncodeToString(a[:]), nil
}

func doubleSHA256(data []byte) [sha256.Size]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}
