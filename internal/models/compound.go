package models

// Attribute is a display trait of a compound NFT view.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// CompoundNFT joins one NFT, its owning collection and its full access
// list into a single marketplace-ready record. It is assembled per request
// and never persisted.
type CompoundNFT struct {
	NFT
	AccessList            []AccessGrant `json:"accessList"`
	Model                 string        `json:"model"`
	Collection            string        `json:"collection"`
	TokenID               int           `json:"tokenId"`
	TokenStandard         string        `json:"tokenStandard"`
	TokenStandardFullform string        `json:"tokenStandardFullform"`
	Chain                 string        `json:"chain"`
	Attributes            []Attribute   `json:"attributes"`
}
