package models

// CatalogKeyBase spaces out collection ids in the composite catalog sort
// key. NFT ids must stay below this bound for the key to give a total
// order; the contracts mint sequentially per collection so the limit is
// far away in practice, but it is a hard precondition of CatalogKey.
const CatalogKeyBase = 10_000_000

// NFT is a single model NFT, normalized from the primary info query plus
// the (optional) metadata query. AccessLevel is only populated on results
// of the per-user access aggregation.
type NFT struct {
	ID               int         `json:"id"`
	CollectionID     int         `json:"collectionId"`
	LevelOfOwnership AccessLevel `json:"levelOfOwnership"`
	Name             string      `json:"name"`
	Creator          string      `json:"creator"`
	CreationDate     int64       `json:"creationDate"`
	Owner            string      `json:"owner"`
	Image            string      `json:"image"`
	BaseModel        string      `json:"baseModel"`
	Data             string      `json:"data"`
	RAG              string      `json:"rag"`
	FineTuneData     string      `json:"fineTuneData"`
	Description      string      `json:"description"`
	AccessLevel      AccessLevel `json:"accessLevel,omitempty"`
}

// CatalogKey orders NFTs across collections without a secondary sort key.
// Requires ID < CatalogKeyBase.
func (n *NFT) CatalogKey() int64 {
	return int64(n.CollectionID)*CatalogKeyBase + int64(n.ID)
}
