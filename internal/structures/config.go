package structures

import (
	"net/http"
	"time"
)

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type ContractAddresses struct {
	Collection    string `yaml:"collection" validate:"required"`
	NFT           string `yaml:"nft" validate:"required"`
	Metadata      string `yaml:"metadata" validate:"required"`
	AccessControl string `yaml:"accessControl" validate:"required"`
}

type LedgerConfig struct {
	Backend      string            `yaml:"backend" validate:"required|in:evm,tron"`
	RPCEndpoint  string            `yaml:"rpcEndpoint" validate:"required|fullUrl"`
	ChainName    string            `yaml:"chainName"`
	OwnerAddress string            `yaml:"ownerAddress"`
	Timeout      time.Duration     `yaml:"timeout"`
	Contracts    ContractAddresses `yaml:"contracts"`
}

type EngineConfig struct {
	Workers int `yaml:"workers" validate:"min:1"`
}

type FileStorageConfig struct {
	Endpoint string `yaml:"endpoint" validate:"required|fullUrl"`
}

type KeysConfig struct {
	MasterKey string        `yaml:"masterKey" validate:"required"`
	StoreSize int           `yaml:"storeSize"`
	TTL       time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server            `yaml:"webServer"`
	Logger      LoggerConfig      `yaml:"logger"`
	Ledger      LedgerConfig      `yaml:"ledger"`
	Engine      EngineConfig      `yaml:"engine"`
	FileStorage FileStorageConfig `yaml:"fileStorage"`
	Keys        KeysConfig        `yaml:"keys"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Method  string
	Url     string
	Handler http.Handler
}
