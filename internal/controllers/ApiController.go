package controllers

import (
	"errors"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/ledger"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/providers"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/services"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/structures"
)

type ApiController struct {
	logger    providers.Logger
	service   services.NFTServiceInterface
	keystore  providers.KeystoreProviderInterface
	masterKey string
}

func NewApiController(conf *structures.Config, logger providers.Logger, service services.NFTServiceInterface, keystore providers.KeystoreProviderInterface) *ApiController {
	return &ApiController{
		logger:    logger,
		service:   service,
		keystore:  keystore,
		masterKey: conf.Keys.MasterKey,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// writeDomainError maps engine errors onto HTTP statuses. Missing ledger
// entities are 404, transport faults are 502, everything else is 500.
func (ac *ApiController) writeDomainError(w http.ResponseWriter, endpoint string, err error) {
	var transportErr *ledger.TransportError
	switch {
	case ledger.IsNotFound(err):
		http.Error(w, "Not Found", http.StatusNotFound)
	case errors.As(err, &transportErr):
		ac.logger.Errorf(providers.TypeHttp, "%s: ledger transport failure: %v", endpoint, err)
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
	default:
		ac.logger.Errorf(providers.TypeHttp, "%s: %v", endpoint, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func intParam(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 1 {
		return 0, false
	}
	return v, true
}

func addressParam(r *http.Request) (string, bool) {
	addr := r.URL.Query().Get("address")
	return addr, addr != ""
}

func (ac *ApiController) GetCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := ac.service.AllCollections(r.Context())
	if err != nil {
		ac.writeDomainError(w, "collections", err)
		return
	}
	writeJSON(w, http.StatusOK, collections)
}

func (ac *ApiController) GetCollectionsByUser(w http.ResponseWriter, r *http.Request) {
	addr, ok := addressParam(r)
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	collections, err := ac.service.CollectionsByOwner(r.Context(), addr)
	if err != nil {
		ac.writeDomainError(w, "collections/user", err)
		return
	}
	writeJSON(w, http.StatusOK, collections)
}

func (ac *ApiController) GetCollection(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	details, err := ac.service.CollectionDetails(r.Context(), id)
	if err != nil {
		ac.writeDomainError(w, "collection", err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (ac *ApiController) GetCollectionNFTs(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	nfts, err := ac.service.NFTsOfCollection(r.Context(), id)
	if err != nil {
		ac.writeDomainError(w, "collection/nfts", err)
		return
	}
	writeJSON(w, http.StatusOK, nfts)
}

func (ac *ApiController) GetNFTsByUser(w http.ResponseWriter, r *http.Request) {
	addr, ok := addressParam(r)
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	nfts, err := ac.service.NFTsAccessibleByUser(r.Context(), addr)
	if err != nil {
		ac.writeDomainError(w, "nfts/user", err)
		return
	}
	writeJSON(w, http.StatusOK, nfts)
}

func (ac *ApiController) GetNFT(w http.ResponseWriter, r *http.Request) {
	collectionID, ok := intParam(r, "collection")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	nftID, ok := intParam(r, "id")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	compound, err := ac.service.NFTWithAccess(r.Context(), collectionID, nftID)
	if err != nil {
		ac.writeDomainError(w, "nft", err)
		return
	}
	writeJSON(w, http.StatusOK, compound)
}

func (ac *ApiController) GetNFTAccess(w http.ResponseWriter, r *http.Request) {
	collectionID, ok := intParam(r, "collection")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	nftID, ok := intParam(r, "id")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	grants, err := ac.service.NFTAccessList(r.Context(), collectionID, nftID)
	if err != nil {
		ac.writeDomainError(w, "nft/access", err)
		return
	}
	writeJSON(w, http.StatusOK, grants)
}

func (ac *ApiController) GetCatalog(w http.ResponseWriter, r *http.Request) {
	nfts, err := ac.service.AllNFTs(r.Context())
	if err != nil {
		ac.writeDomainError(w, "catalog", err)
		return
	}
	writeJSON(w, http.StatusOK, nfts)
}

// IssueKey mints a new API key. Only the master key may mint; issued
// keys live in the keystore until their TTL expires.
func (ac *ApiController) IssueKey(w http.ResponseWriter, r *http.Request) {
	if ac.masterKey == "" || r.Header.Get("X-API-Key") != ac.masterKey {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	key := uuid.NewString()
	ac.keystore.Set(key, []byte("1"))
	ac.logger.Infof(providers.TypeHttp, "issued api key %s...", key[:8])
	writeJSON(w, http.StatusCreated, map[string]string{"apiKey": key})
}
