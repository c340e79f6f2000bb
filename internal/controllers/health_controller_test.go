package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/structures"
)

func healthConf() *structures.Config {
	return &structures.Config{
		Ledger: structures.LedgerConfig{ChainName: "Base-Sepolia"},
	}
}

func TestHealth_ReturnsOK(t *testing.T) {
	svc := &mockService{backend: "evm"}
	hc := NewHealthController(healthConf(), svc)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Contains(t, resp, "uptime")
	assert.Contains(t, resp, "uptime_seconds")
	assert.Equal(t, "evm", resp["backend"])
	assert.Equal(t, "Base-Sepolia", resp["chain"])
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	hc := NewHealthController(healthConf(), &mockService{})

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0h0m0s"},
		{65 * time.Second, "0h1m5s"},
		{3*time.Hour + 4*time.Minute + 5*time.Second, "3h4m5s"},
		{25 * time.Hour, "25h0m0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatDuration(tt.d))
	}
}
