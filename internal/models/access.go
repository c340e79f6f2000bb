package models

// AccessLevel is the ordinal access rank from the NFTAccessControl
// contract. Higher means broader rights. The engine carries the ordinal
// as opaque data and never reinterprets it.
type AccessLevel int

const (
	AccessNone              AccessLevel = 0
	AccessUseModel          AccessLevel = 1
	AccessResale            AccessLevel = 2
	AccessCreateReplica     AccessLevel = 3
	AccessViewAndDownload   AccessLevel = 4
	AccessEditData          AccessLevel = 5
	AccessAbsoluteOwnership AccessLevel = 6
)

func (l AccessLevel) String() string {
	switch l {
	case AccessUseModel:
		return "UseModel"
	case AccessResale:
		return "Resale"
	case AccessCreateReplica:
		return "CreateReplica"
	case AccessViewAndDownload:
		return "ViewAndDownload"
	case AccessEditData:
		return "EditData"
	case AccessAbsoluteOwnership:
		return "AbsoluteOwnership"
	default:
		return "None"
	}
}

// AccessGrant is one (user, level) pair of an NFT's access list.
type AccessGrant struct {
	User        string      `json:"user"`
	AccessLevel AccessLevel `json:"accessLevel"`
}
