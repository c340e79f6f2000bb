package providers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.BindEnv("logger.level", "NEURANFT_LOG_LEVEL")
	v.BindEnv("ledger.backend", "NEURANFT_LEDGER_BACKEND")
	v.BindEnv("ledger.rpcEndpoint", "NEURANFT_RPC_ENDPOINT")
	v.BindEnv("engine.workers", "NEURANFT_FANOUT_WORKERS")
	v.BindEnv("fileStorage.endpoint", "NEURANFT_FILESTORAGE_ENDPOINT")
	v.BindEnv("keys.masterKey", "NEURANFT_MASTER_API_KEY")
	v.BindEnv("metrics.enabled", "NEURANFT_METRICS_ENABLED")

	v.SetDefault("engine.workers", 20)
	v.SetDefault("ledger.timeout", 30*time.Second)
	v.SetDefault("keys.storeSize", 1)
	v.SetDefault("keys.ttl", 24*time.Hour)

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	if conf.Ledger.ChainName == "" {
		switch conf.Ledger.Backend {
		case "tron":
			conf.Ledger.ChainName = "Tron-Shasta"
		default:
			conf.Ledger.ChainName = "Base-Sepolia"
		}
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "NeuraNFTMasterNode"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
