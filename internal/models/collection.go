package models

// Collection is one entry of the on-chain collection listing. The ID is the
// 1-based position in that listing, not a ledger-native identifier; it is the
// stable key used by every downstream query.
type Collection struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	ContextWindow     int    `json:"contextWindow"`
	BaseModel         string `json:"model"`
	Image             string `json:"image"`
	Description       string `json:"description"`
	Creator           string `json:"creator"`
	Date              int64  `json:"date"`
	Owner             string `json:"owner"`
	CollectionAddress string `json:"collectionaddress"`
}

// CollectionDetails is the per-collection detail view, joined from the
// metadata, count, owner and unique-holder queries.
type CollectionDetails struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	ContextWindow     int    `json:"contextWindow"`
	BaseModel         string `json:"baseModel"`
	Image             string `json:"image"`
	Description       string `json:"description"`
	Creator           string `json:"creator"`
	DateCreated       int64  `json:"dateCreated"`
	Owner             string `json:"owner"`
	CollectionAddress string `json:"collectionaddress"`
	NoOfNFTs          int    `json:"noOfNFTs"`
	UniqueHolders     int    `json:"uniqueHolders"`
	Model             string `json:"model"`
	NoOfServers       int    `json:"noOfServers"`
}
