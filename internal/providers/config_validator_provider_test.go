package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/structures"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
		Ledger: structures.LedgerConfig{
			Backend:     "evm",
			RPCEndpoint: "https://sepolia.base.org",
			ChainName:   "Base-Sepolia",
			Timeout:     30 * time.Second,
			Contracts: structures.ContractAddresses{
				Collection:    "0x25B8dDfe22f8a480eb885775F44072b0333237Ac",
				NFT:           "0x9Ae1B74e105a7f7693EE86B48e3dd7eb68D4b113",
				Metadata:      "0x56b50B13AF1dB55B70C0286b27b2a4DE51AA1D90",
				AccessControl: "0x0224b6AE3c37bFFbB5E5353cc6052a972561DCcC",
			},
		},
		Engine: structures.EngineConfig{
			Workers: 20,
		},
		FileStorage: structures.FileStorageConfig{
			Endpoint: "https://storage.neuranft.com",
		},
		Keys: structures.KeysConfig{
			MasterKey: "test-master-key",
			StoreSize: 1,
			TTL:       24 * time.Hour,
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_BadPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_BadLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_UnknownBackend(t *testing.T) {
	c := validConfig()
	c.Ledger.Backend = "solana"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_BadRPCEndpoint(t *testing.T) {
	c := validConfig()
	c.Ledger.RPCEndpoint = "not-a-url"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_MissingContract(t *testing.T) {
	c := validConfig()
	c.Ledger.Contracts.Metadata = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_MissingMasterKey(t *testing.T) {
	c := validConfig()
	c.Keys.MasterKey = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}
