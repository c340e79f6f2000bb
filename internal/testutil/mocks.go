package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/ledger"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// CountByLevel returns how many entries were logged at the given level.
func (m *MockLogger) CountByLevel(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockReader implements ledger.Reader with injectable behavior per
// method. Nil funcs return zero values and no error.
type MockReader struct {
	AllCollectionsFn          func(ctx context.Context) ([]ledger.CollectionRecord, error)
	CollectionMetadataFn      func(ctx context.Context, collectionID int) (ledger.CollectionRecord, error)
	CollectionNFTCountFn      func(ctx context.Context, collectionID int) (int, error)
	CollectionOwnerFn         func(ctx context.Context, collectionID int) (string, error)
	CollectionUniqueHoldersFn func(ctx context.Context, collectionID int) (int, error)
	CollectionNFTsFn          func(ctx context.Context, collectionID int) ([]int, error)
	NFTInfoFn                 func(ctx context.Context, collectionID, nftID int) (ledger.NFTRecord, error)
	NFTMetadataFn             func(ctx context.Context, collectionID, nftID int) (ledger.MetadataRecord, error)
	UsersAccessForNFTFn       func(ctx context.Context, collectionID, nftID int) ([]ledger.AccessRecord, error)
	AccessForUserFn           func(ctx context.Context, userAddress string) ([]ledger.UserAccessRecord, error)
}

func (m *MockReader) AllCollections(ctx context.Context) ([]ledger.CollectionRecord, error) {
	if m.AllCollectionsFn != nil {
		return m.AllCollectionsFn(ctx)
	}
	return nil, nil
}

func (m *MockReader) CollectionMetadata(ctx context.Context, collectionID int) (ledger.CollectionRecord, error) {
	if m.CollectionMetadataFn != nil {
		return m.CollectionMetadataFn(ctx, collectionID)
	}
	return ledger.CollectionRecord{}, nil
}

func (m *MockReader) CollectionNFTCount(ctx context.Context, collectionID int) (int, error) {
	if m.CollectionNFTCountFn != nil {
		return m.CollectionNFTCountFn(ctx, collectionID)
	}
	return 0, nil
}

func (m *MockReader) CollectionOwner(ctx context.Context, collectionID int) (string, error) {
	if m.CollectionOwnerFn != nil {
		return m.CollectionOwnerFn(ctx, collectionID)
	}
	return "", nil
}

func (m *MockReader) CollectionUniqueHolders(ctx context.Context, collectionID int) (int, error) {
	if m.CollectionUniqueHoldersFn != nil {
		return m.CollectionUniqueHoldersFn(ctx, collectionID)
	}
	return 0, nil
}

func (m *MockReader) CollectionNFTs(ctx context.Context, collectionID int) ([]int, error) {
	if m.CollectionNFTsFn != nil {
		return m.CollectionNFTsFn(ctx, collectionID)
	}
	return nil, nil
}

func (m *MockReader) NFTInfo(ctx context.Context, collectionID, nftID int) (ledger.NFTRecord, error) {
	if m.NFTInfoFn != nil {
		return m.NFTInfoFn(ctx, collectionID, nftID)
	}
	return ledger.NFTRecord{}, nil
}

func (m *MockReader) NFTMetadata(ctx context.Context, collectionID, nftID int) (ledger.MetadataRecord, error) {
	if m.NFTMetadataFn != nil {
		return m.NFTMetadataFn(ctx, collectionID, nftID)
	}
	return ledger.MetadataRecord{}, nil
}

func (m *MockReader) UsersAccessForNFT(ctx context.Context, collectionID, nftID int) ([]ledger.AccessRecord, error) {
	if m.UsersAccessForNFTFn != nil {
		return m.UsersAccessForNFTFn(ctx, collectionID, nftID)
	}
	return nil, nil
}

func (m *MockReader) AccessForUser(ctx context.Context, userAddress string) ([]ledger.UserAccessRecord, error) {
	if m.AccessForUserFn != nil {
		return m.AccessForUserFn(ctx, userAddress)
	}
	return nil, nil
}

// MockMetrics implements providers.MetricsProviderInterface and counts
// the batch drops per operation.
type MockMetrics struct {
	mu           sync.Mutex
	Requests     map[string]int
	LedgerCalls  map[string]int
	BatchDropped map[string]int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Requests:     make(map[string]int),
		LedgerCalls:  make(map[string]int),
		BatchDropped: make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests[endpoint]++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncLedgerCalls(method, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LedgerCalls[method+":"+outcome]++
}

func (m *MockMetrics) ObserveLedgerCallDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) AddBatchDropped(op string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BatchDropped[op] += n
}

func (m *MockMetrics) DroppedFor(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.BatchDropped[op]
}
