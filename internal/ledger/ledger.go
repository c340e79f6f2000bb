// Package ledger defines the read-only query port onto the NeuraNFT
// contracts and the transports that satisfy it. The aggregation engine
// depends on Reader only; how calls are carried (EVM JSON-RPC, TronGrid)
// is a transport concern.
package ledger

import "context"

// CollectionRecord is the raw tuple of the CollectionContract metadata
// queries, before 1-based ids are assigned by the caller.
type CollectionRecord struct {
	Name          string
	ContextWindow int
	BaseModel     string
	Image         string
	Description   string
	Creator       string
	Date          int64
	Owner         string
}

// NFTRecord holds the required fields of one NFT, from the primary
// getNFTInfo query. Absence of any of these is fatal to the fetch.
type NFTRecord struct {
	LevelOfOwnership int
	Name             string
	Creator          string
	CreationDate     int64
	Owner            string
}

// MetadataRecord holds the optional fields of one NFT, from the secondary
// NFTMetadata query. Callers substitute a fallback record when the query
// fails.
type MetadataRecord struct {
	Image        string
	BaseModel    string
	Data         string
	RAG          string
	FineTuneData string
	Description  string
}

// AccessRecord is one (user, level) entry of an NFT's access list.
type AccessRecord struct {
	User  string
	Level int
}

// UserAccessRecord is one (collection, nft, level) entry of a user's
// access listing.
type UserAccessRecord struct {
	CollectionID int
	NFTID        int
	Level        int
}

// Reader is the query port consumed by the aggregation engine. Every
// method is a single blocking remote read; per-call timeouts belong to
// the transport behind it, retries are not done at this layer.
type Reader interface {
	AllCollections(ctx context.Context) ([]CollectionRecord, error)
	CollectionMetadata(ctx context.Context, collectionID int) (CollectionRecord, error)
	CollectionNFTCount(ctx context.Context, collectionID int) (int, error)
	CollectionOwner(ctx context.Context, collectionID int) (string, error)
	CollectionUniqueHolders(ctx context.Context, collectionID int) (int, error)
	CollectionNFTs(ctx context.Context, collectionID int) ([]int, error)
	NFTInfo(ctx context.Context, collectionID, nftID int) (NFTRecord, error)
	NFTMetadata(ctx context.Context, collectionID, nftID int) (MetadataRecord, error)
	UsersAccessForNFT(ctx context.Context, collectionID, nftID int) ([]AccessRecord, error)
	AccessForUser(ctx context.Context, userAddress string) ([]UserAccessRecord, error)
}
