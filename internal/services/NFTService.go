package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/ledger"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/models"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/providers"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/structures"
)

// Fixed presentation fields of the compound view.
const (
	tokenStandard         = "NRC-101"
	tokenStandardFullform = "Neura Request for Comments 101"
	benchmarkMMLU         = "78.5"
	noOfServers           = 5
)

type NFTServiceInterface interface {
	AllCollections(ctx context.Context) ([]models.Collection, error)
	CollectionsByOwner(ctx context.Context, owner string) ([]models.Collection, error)
	CollectionDetails(ctx context.Context, collectionID int) (*models.CollectionDetails, error)
	NFTsOfCollection(ctx context.Context, collectionID int) ([]*models.NFT, error)
	NFTsAccessibleByUser(ctx context.Context, userAddress string) ([]*models.NFT, error)
	NFTAccessList(ctx context.Context, collectionID, nftID int) ([]models.AccessGrant, error)
	NFTWithAccess(ctx context.Context, collectionID, nftID int) (*models.CompoundNFT, error)
	AllNFTs(ctx context.Context) ([]*models.CompoundNFT, error)
	Backend() string
}

// NFTService aggregates the per-item ledger queries into flattened,
// deterministically ordered views. Every read is fresh; nothing here
// caches or mutates ledger state.
type NFTService struct {
	logger      providers.Logger
	metrics     providers.MetricsProviderInterface
	ledger      ledger.Reader
	workers     int
	fileStorage string
	chainName   string
	backend     string
}

func NewNFTService(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, reader ledger.Reader) NFTServiceInterface {
	workers := conf.Engine.Workers
	if workers <= 0 {
		workers = DefaultFanoutWorkers
	}
	return &NFTService{
		logger:      logger,
		metrics:     metrics,
		ledger:      reader,
		workers:     workers,
		fileStorage: strings.TrimSuffix(conf.FileStorage.Endpoint, "/"),
		chainName:   conf.Ledger.ChainName,
		backend:     conf.Ledger.Backend,
	}
}

func (s *NFTService) Backend() string { return s.backend }

// fallbackMetadata stands in when the secondary metadata query fails.
// Callers cannot tell a defaulted record from a fetched one except by
// these values; only the metadata degrades, never the NFT itself.
func (s *NFTService) fallbackMetadata() ledger.MetadataRecord {
	return ledger.MetadataRecord{
		Image:        s.fileStorage + "/image/default.jpg",
		BaseModel:    "None",
		Data:         "None",
		RAG:          "",
		FineTuneData: "",
		Description:  "Metadata not available",
	}
}

// fetchNFT performs one logical NFT fetch: the primary info query is
// required and its failure fails the fetch; the metadata query is
// optional and degrades to the fallback record.
func (s *NFTService) fetchNFT(ctx context.Context, collectionID, nftID int) (*models.NFT, error) {
	info, err := s.ledger.NFTInfo(ctx, collectionID, nftID)
	if err != nil {
		return nil, fmt.Errorf("nft %d/%d info: %w", collectionID, nftID, err)
	}

	meta, err := s.ledger.NFTMetadata(ctx, collectionID, nftID)
	if err != nil {
		s.logger.Debugf(providers.TypeEngine, "metadata for nft %d/%d unavailable, using defaults: %v", collectionID, nftID, err)
		meta = s.fallbackMetadata()
	}

	return &models.NFT{
		ID:               nftID,
		CollectionID:     collectionID,
		LevelOfOwnership: models.AccessLevel(info.LevelOfOwnership),
		Name:             info.Name,
		Creator:          info.Creator,
		CreationDate:     info.CreationDate,
		Owner:            info.Owner,
		Image:            meta.Image,
		BaseModel:        meta.BaseModel,
		Data:             meta.Data,
		RAG:              meta.RAG,
		FineTuneData:     meta.FineTuneData,
		Description:      meta.Description,
	}, nil
}

func (s *NFTService) AllCollections(ctx context.Context) ([]models.Collection, error) {
	records, err := s.ledger.AllCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	collections := make([]models.Collection, 0, len(records))
	for i, rec := range records {
		id := i + 1
		collections = append(collections, models.Collection{
			ID:                id,
			Name:              rec.Name,
			ContextWindow:     rec.ContextWindow,
			BaseModel:         rec.BaseModel,
			Image:             rec.Image,
			Description:       rec.Description,
			Creator:           rec.Creator,
			Date:              rec.Date,
			Owner:             rec.Owner,
			CollectionAddress: fmt.Sprintf("#%d", id),
		})
	}
	return collections, nil
}

func (s *NFTService) CollectionsByOwner(ctx context.Context, owner string) ([]models.Collection, error) {
	collections, err := s.AllCollections(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Collection, 0, len(collections))
	for _, c := range collections {
		if strings.EqualFold(c.Owner, owner) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *NFTService) CollectionDetails(ctx context.Context, collectionID int) (*models.CollectionDetails, error) {
	meta, err := s.ledger.CollectionMetadata(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("collection %d metadata: %w", collectionID, err)
	}
	count, err := s.ledger.CollectionNFTCount(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("collection %d nft count: %w", collectionID, err)
	}
	owner, err := s.ledger.CollectionOwner(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("collection %d owner: %w", collectionID, err)
	}
	holders, err := s.ledger.CollectionUniqueHolders(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("collection %d unique holders: %w", collectionID, err)
	}

	return &models.CollectionDetails{
		ID:                collectionID,
		Name:              meta.Name,
		ContextWindow:     meta.ContextWindow,
		BaseModel:         meta.BaseModel,
		Image:             meta.Image,
		Description:       meta.Description,
		Creator:           meta.Creator,
		DateCreated:       meta.Date,
		Owner:             owner,
		CollectionAddress: fmt.Sprintf("#%d", collectionID),
		NoOfNFTs:          count,
		UniqueHolders:     holders,
		Model:             meta.BaseModel,
		NoOfServers:       noOfServers,
	}, nil
}

// NFTsOfCollection fans out one fetch per NFT id of the collection and
// returns the survivors sorted ascending by id. Items whose fetch failed
// are dropped; a failed id-list fetch is fatal.
func (s *NFTService) NFTsOfCollection(ctx context.Context, collectionID int) ([]*models.NFT, error) {
	ids, err := s.ledger.CollectionNFTs(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("collection %d nft ids: %w", collectionID, err)
	}

	nfts, dropped := fanOut(ctx, ids, s.workers, func(ctx context.Context, id int) (*models.NFT, error) {
		return s.fetchNFT(ctx, collectionID, id)
	})
	if dropped > 0 {
		s.logger.Warnf(providers.TypeEngine, "collection %d: dropped %d of %d nfts", collectionID, dropped, len(ids))
		s.metrics.AddBatchDropped("collection_nfts", dropped)
	}

	sort.Slice(nfts, func(i, j int) bool { return nfts[i].ID < nfts[j].ID })
	return nfts, nil
}

// NFTsAccessibleByUser fans out one fetch per access entry of the user,
// attaches each entry's access level to its NFT, and sorts by the
// cross-collection catalog key.
func (s *NFTService) NFTsAccessibleByUser(ctx context.Context, userAddress string) ([]*models.NFT, error) {
	entries, err := s.ledger.AccessForUser(ctx, userAddress)
	if err != nil {
		return nil, fmt.Errorf("access for user %s: %w", userAddress, err)
	}

	nfts, dropped := fanOut(ctx, entries, s.workers, func(ctx context.Context, e ledger.UserAccessRecord) (*models.NFT, error) {
		nft, err := s.fetchNFT(ctx, e.CollectionID, e.NFTID)
		if err != nil {
			return nil, err
		}
		nft.AccessLevel = models.AccessLevel(e.Level)
		return nft, nil
	})
	if dropped > 0 {
		s.logger.Warnf(providers.TypeEngine, "user %s: dropped %d of %d accessible nfts", userAddress, dropped, len(entries))
		s.metrics.AddBatchDropped("user_nfts", dropped)
	}

	sort.Slice(nfts, func(i, j int) bool { return nfts[i].CatalogKey() < nfts[j].CatalogKey() })
	return nfts, nil
}

func (s *NFTService) NFTAccessList(ctx context.Context, collectionID, nftID int) ([]models.AccessGrant, error) {
	records, err := s.ledger.UsersAccessForNFT(ctx, collectionID, nftID)
	if err != nil {
		return nil, fmt.Errorf("access list for nft %d/%d: %w", collectionID, nftID, err)
	}
	grants := make([]models.AccessGrant, 0, len(records))
	for _, rec := range records {
		grants = append(grants, models.AccessGrant{User: rec.User, AccessLevel: models.AccessLevel(rec.Level)})
	}
	return grants, nil
}

// NFTWithAccess joins the NFT, its collection and its access list into
// one compound view. Unlike the batch operations this is all-or-nothing:
// any failed constituent fails the whole view.
func (s *NFTService) NFTWithAccess(ctx context.Context, collectionID, nftID int) (*models.CompoundNFT, error) {
	nft, err := s.fetchNFT(ctx, collectionID, nftID)
	if err != nil {
		return nil, &CompositionError{Part: "nft", Err: err}
	}
	details, err := s.CollectionDetails(ctx, collectionID)
	if err != nil {
		return nil, &CompositionError{Part: "collection", Err: err}
	}
	accessList, err := s.NFTAccessList(ctx, collectionID, nftID)
	if err != nil {
		return nil, &CompositionError{Part: "access list", Err: err}
	}

	return &models.CompoundNFT{
		NFT:        *nft,
		AccessList: accessList,
		Model:      nft.BaseModel,
		Collection: details.Name,
		TokenID:    nft.ID,
		TokenStandard:         tokenStandard,
		TokenStandardFullform: tokenStandardFullform,
		Chain:                 s.chainName,
		Attributes: []models.Attribute{
			{TraitType: "MMLU", Value: benchmarkMMLU},
			{TraitType: "Context Window", Value: details.ContextWindow},
			{TraitType: "Model", Value: nft.BaseModel},
			{TraitType: "Total Access", Value: len(accessList)},
		},
	}, nil
}

// AllNFTs walks the whole catalog: every collection, every NFT, each
// enriched through the compound join. A collection whose id-list fetch
// fails drops out in full; a failed compound join drops that NFT alone.
// Both drops are logged, neither fails the walk.
func (s *NFTService) AllNFTs(ctx context.Context) ([]*models.CompoundNFT, error) {
	collections, err := s.ledger.AllCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	catalog := make([]*models.CompoundNFT, 0)
	for collectionID := 1; collectionID <= len(collections); collectionID++ {
		nfts, err := s.NFTsOfCollection(ctx, collectionID)
		if err != nil {
			s.logger.Warnf(providers.TypeEngine, "catalog: skipping collection %d: %v", collectionID, err)
			s.metrics.AddBatchDropped("catalog_collections", 1)
			continue
		}
		for _, nft := range nfts {
			compound, err := s.NFTWithAccess(ctx, collectionID, nft.ID)
			if err != nil {
				s.logger.Warnf(providers.TypeEngine, "catalog: skipping nft %d/%d: %v", collectionID, nft.ID, err)
				s.metrics.AddBatchDropped("catalog_nfts", 1)
				continue
			}
			catalog = append(catalog, compound)
		}
	}
	return catalog, nil
}
