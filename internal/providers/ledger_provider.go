package providers

import (
	"fmt"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/ledger"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/ledger/evm"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/ledger/tron"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/structures"
)

// NewLedgerProvider builds the ledger reader for the configured backend.
// The contract bindings are shared; only the call transport differs.
func NewLedgerProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) (ledger.Reader, error) {
	var transport ledger.CallTransport
	var err error

	switch conf.Ledger.Backend {
	case "evm":
		transport, err = evm.NewClient(evm.Config{
			Endpoint: conf.Ledger.RPCEndpoint,
			Timeout:  conf.Ledger.Timeout,
		})
	case "tron":
		transport, err = tron.NewClient(tron.Config{
			Endpoint:     conf.Ledger.RPCEndpoint,
			OwnerAddress: conf.Ledger.OwnerAddress,
			Timeout:      conf.Ledger.Timeout,
		})
	default:
		err = fmt.Errorf("unknown ledger backend %q", conf.Ledger.Backend)
	}
	if err != nil {
		return nil, err
	}

	logger.Infof(TypeLedger, "Ledger backend %s via %s", conf.Ledger.Backend, conf.Ledger.RPCEndpoint)

	reader := ledger.NewContractReader(transport, ledger.Addresses{
		Collection:    conf.Ledger.Contracts.Collection,
		NFT:           conf.Ledger.Contracts.NFT,
		Metadata:      conf.Ledger.Contracts.Metadata,
		AccessControl: conf.Ledger.Contracts.AccessControl,
	})

	if !conf.Metrics.Enabled {
		return reader, nil
	}
	return NewMetricsLedgerProvider(reader, metrics), nil
}
