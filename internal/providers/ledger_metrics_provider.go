package providers

import (
	"context"
	"time"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/ledger"
)

// MetricsLedgerProvider decorates a ledger.Reader with per-method call
// counters and latency histograms. It is transparent to callers.
type MetricsLedgerProvider struct {
	inner   ledger.Reader
	metrics MetricsProviderInterface
}

func NewMetricsLedgerProvider(inner ledger.Reader, metrics MetricsProviderInterface) *MetricsLedgerProvider {
	return &MetricsLedgerProvider{inner: inner, metrics: metrics}
}

func (m *MetricsLedgerProvider) observe(method string, start time.Time, err error) {
	m.metrics.ObserveLedgerCallDuration(method, time.Since(start))
	switch {
	case err == nil:
		m.metrics.IncLedgerCalls(method, "ok")
	case ledger.IsNotFound(err):
		m.metrics.IncLedgerCalls(method, "not_found")
	default:
		m.metrics.IncLedgerCalls(method, "error")
	}
}

func (m *MetricsLedgerProvider) AllCollections(ctx context.Context) ([]ledger.CollectionRecord, error) {
	start := time.Now()
	res, err := m.inner.AllCollections(ctx)
	m.observe("AllCollections", start, err)
	return res, err
}

func (m *MetricsLedgerProvider) CollectionMetadata(ctx context.Context, collectionID int) (ledger.CollectionRecord, error) {
	start := time.Now()
	res, err := m.inner.CollectionMetadata(ctx, collectionID)
	m.observe("CollectionMetadata", start, err)
	return res, err
}

func (m *MetricsLedgerProvider) CollectionNFTCount(ctx context.Context, collectionID int) (int, error) {
	start := time.Now()
	res, err := m.inner.CollectionNFTCount(ctx, collectionID)
	m.observe("CollectionNFTCount", start, err)
	return res, err
}

func (m *MetricsLedgerProvider) CollectionOwner(ctx context.Context, collectionID int) (string, error) {
	start := time.Now()
	res, err := m.inner.CollectionOwner(ctx, collectionID)
	m.observe("CollectionOwner", start, err)
	return res, err
}

func (m *MetricsLedgerProvider) CollectionUniqueHolders(ctx context.Context, collectionID int) (int, error) {
	start := time.Now()
	res, err := m.inner.CollectionUniqueHolders(ctx, collectionID)
	m.observe("CollectionUniqueHolders", start, err)
	return res, err
}

func (m *MetricsLedgerProvider) CollectionNFTs(ctx context.Context, collectionID int) ([]int, error) {
	start := time.Now()
	res, err := m.inner.CollectionNFTs(ctx, collectionID)
	m.observe("CollectionNFTs", start, err)
	return res, err
}

func (m *MetricsLedgerProvider) NFTInfo(ctx context.Context, collectionID, nftID int) (ledger.NFTRecord, error) {
	start := time.Now()
	res, err := m.inner.NFTInfo(ctx, collectionID, nftID)
	m.observe("NFTInfo", start, err)
	return res, err
}

func (m *MetricsLedgerProvider) NFTMetadata(ctx context.Context, collectionID, nftID int) (ledger.MetadataRecord, error) {
	start := time.Now()
	res, err := m.inner.NFTMetadata(ctx, collectionID, nftID)
	m.observe("NFTMetadata", start, err)
	return res, err
}

func (m *MetricsLedgerProvider) UsersAccessForNFT(ctx context.Context, collectionID, nftID int) ([]ledger.AccessRecord, error) {
	start := time.Now()
	res, err := m.inner.UsersAccessForNFT(ctx, collectionID, nftID)
	m.observe("UsersAccessForNFT", start, err)
	return res, err
}

func (m *MetricsLedgerProvider) AccessForUser(ctx context.Context, userAddress string) ([]ledger.UserAccessRecord, error) {
	start := time.Now()
	res, err := m.inner.AccessForUser(ctx, userAddress)
	m.observe("AccessForUser", start, err)
	return res, err
}
