package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/ledger"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/models"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/providers"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/services"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/structures"
)

// --- local mocks (scoped to controller tests) ---

type mockLogger struct{}

func (m *mockLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Close()                                                  {}

type mockService struct {
	collections []models.Collection
	details     *models.CollectionDetails
	nfts        []*models.NFT
	grants      []models.AccessGrant
	compound    *models.CompoundNFT
	catalog     []*models.CompoundNFT
	err         error
	backend     string
}

func (m *mockService) AllCollections(_ context.Context) ([]models.Collection, error) {
	return m.collections, m.err
}
func (m *mockService) CollectionsByOwner(_ context.Context, _ string) ([]models.Collection, error) {
	return m.collections, m.err
}
func (m *mockService) CollectionDetails(_ context.Context, _ int) (*models.CollectionDetails, error) {
	return m.details, m.err
}
func (m *mockService) NFTsOfCollection(_ context.Context, _ int) ([]*models.NFT, error) {
	return m.nfts, m.err
}
func (m *mockService) NFTsAccessibleByUser(_ context.Context, _ string) ([]*models.NFT, error) {
	return m.nfts, m.err
}
func (m *mockService) NFTAccessList(_ context.Context, _, _ int) ([]models.AccessGrant, error) {
	return m.grants, m.err
}
func (m *mockService) NFTWithAccess(_ context.Context, _, _ int) (*models.CompoundNFT, error) {
	return m.compound, m.err
}
func (m *mockService) AllNFTs(_ context.Context) ([]*models.CompoundNFT, error) {
	return m.catalog, m.err
}
func (m *mockService) Backend() string { return m.backend }

type mockKeystore struct {
	data map[string][]byte
}

func newMockKeystore() *mockKeystore {
	return &mockKeystore{data: make(map[string][]byte)}
}

func (m *mockKeystore) Get(key string) ([]byte, bool) {
	v, ok := m.data[key]
	return v, ok
}
func (m *mockKeystore) Set(key string, value []byte) { m.data[key] = value }
func (m *mockKeystore) Del(key string)               { delete(m.data, key) }

func newController(svc *mockService, keystore *mockKeystore) *ApiController {
	conf := &structures.Config{
		Keys: structures.KeysConfig{MasterKey: "master-secret"},
	}
	return NewApiController(conf, &mockLogger{}, svc, keystore)
}

func TestGetCollections_ReturnsJSON(t *testing.T) {
	svc := &mockService{collections: []models.Collection{
		{ID: 1, Name: "alpha", CollectionAddress: "#1"},
	}}
	ac := newController(svc, newMockKeystore())

	req := httptest.NewRequest(http.MethodGet, "/collections", nil)
	rr := httptest.NewRecorder()
	ac.GetCollections(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got []models.Collection
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "alpha", got[0].Name)
	assert.Equal(t, "#1", got[0].CollectionAddress)
}

func TestGetCollections_TransportFailureIs502(t *testing.T) {
	svc := &mockService{err: &ledger.TransportError{Method: "AllCollections", Err: errors.New("rpc down")}}
	ac := newController(svc, newMockKeystore())

	req := httptest.NewRequest(http.MethodGet, "/collections", nil)
	rr := httptest.NewRecorder()
	ac.GetCollections(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGetCollectionsByUser_RequiresAddress(t *testing.T) {
	ac := newController(&mockService{}, newMockKeystore())

	req := httptest.NewRequest(http.MethodGet, "/collections/user", nil)
	rr := httptest.NewRecorder()
	ac.GetCollectionsByUser(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetCollection_RequiresNumericID(t *testing.T) {
	ac := newController(&mockService{}, newMockKeystore())

	for _, q := range []string{"", "?id=abc", "?id=0", "?id=-3"} {
		req := httptest.NewRequest(http.MethodGet, "/collection"+q, nil)
		rr := httptest.NewRecorder()
		ac.GetCollection(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "query %q", q)
	}
}

func TestGetCollection_NotFoundIs404(t *testing.T) {
	svc := &mockService{err: ledger.ErrNotFound}
	ac := newController(svc, newMockKeystore())

	req := httptest.NewRequest(http.MethodGet, "/collection?id=42", nil)
	rr := httptest.NewRecorder()
	ac.GetCollection(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetCollectionNFTs_ReturnsList(t *testing.T) {
	svc := &mockService{nfts: []*models.NFT{{ID: 1, CollectionID: 3}, {ID: 2, CollectionID: 3}}}
	ac := newController(svc, newMockKeystore())

	req := httptest.NewRequest(http.MethodGet, "/collection/nfts?id=3", nil)
	rr := httptest.NewRecorder()
	ac.GetCollectionNFTs(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []models.NFT
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestGetNFT_RequiresBothParams(t *testing.T) {
	ac := newController(&mockService{}, newMockKeystore())

	for _, q := range []string{"", "?collection=1", "?id=1", "?collection=x&id=1"} {
		req := httptest.NewRequest(http.MethodGet, "/nft"+q, nil)
		rr := httptest.NewRecorder()
		ac.GetNFT(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "query %q", q)
	}
}

func TestGetNFT_CompositionFailurePropagatesCause(t *testing.T) {
	svc := &mockService{err: &services.CompositionError{Part: "nft", Err: ledger.ErrNotFound}}
	ac := newController(svc, newMockKeystore())

	req := httptest.NewRequest(http.MethodGet, "/nft?collection=1&id=2", nil)
	rr := httptest.NewRecorder()
	ac.GetNFT(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetNFT_ReturnsCompoundView(t *testing.T) {
	svc := &mockService{compound: &models.CompoundNFT{
		NFT:           models.NFT{ID: 2, CollectionID: 1, Name: "model-nft"},
		TokenID:       2,
		TokenStandard: "NRC-101",
		Attributes: []models.Attribute{
			{TraitType: "MMLU", Value: "78.5"},
		},
	}}
	ac := newController(svc, newMockKeystore())

	req := httptest.NewRequest(http.MethodGet, "/nft?collection=1&id=2", nil)
	rr := httptest.NewRecorder()
	ac.GetNFT(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "NRC-101", got["tokenStandard"])
	assert.Equal(t, "model-nft", got["name"])
}

func TestGetNFTAccess_ReturnsGrants(t *testing.T) {
	svc := &mockService{grants: []models.AccessGrant{
		{User: "0xaaa", AccessLevel: 6},
	}}
	ac := newController(svc, newMockKeystore())

	req := httptest.NewRequest(http.MethodGet, "/nft/access?collection=1&id=2", nil)
	rr := httptest.NewRecorder()
	ac.GetNFTAccess(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "0xaaa", got[0]["user"])
	assert.Equal(t, float64(6), got[0]["accessLevel"])
}

func TestGetCatalog_ReturnsAll(t *testing.T) {
	svc := &mockService{catalog: []*models.CompoundNFT{
		{NFT: models.NFT{ID: 1, CollectionID: 1}},
		{NFT: models.NFT{ID: 1, CollectionID: 2}},
	}}
	ac := newController(svc, newMockKeystore())

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	rr := httptest.NewRecorder()
	ac.GetCatalog(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestIssueKey_RequiresMasterKey(t *testing.T) {
	keystore := newMockKeystore()
	ac := newController(&mockService{}, keystore)

	req := httptest.NewRequest(http.MethodPost, "/keys", nil)
	rr := httptest.NewRecorder()
	ac.IssueKey(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req = httptest.NewRequest(http.MethodPost, "/keys", nil)
	req.Header.Set("X-API-Key", "wrong")
	rr = httptest.NewRecorder()
	ac.IssueKey(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, keystore.data)
}

func TestIssueKey_MintsAndStoresKey(t *testing.T) {
	keystore := newMockKeystore()
	ac := newController(&mockService{}, keystore)

	req := httptest.NewRequest(http.MethodPost, "/keys", nil)
	req.Header.Set("X-API-Key", "master-secret")
	rr := httptest.NewRecorder()
	ac.IssueKey(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var got map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	minted := got["apiKey"]
	require.NotEmpty(t, minted)

	_, ok := keystore.Get(minted)
	assert.True(t, ok, "minted key must be stored")
}
