package ledger

import (
	"context"
	"fmt"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/ledger/abi"
)

// CallTransport carries one constant contract call to a chain node.
// Implementations decide how addresses look on their chain and how the
// call goes over the wire; they return ErrNotFound for reverted calls and
// *TransportError for everything else that goes wrong.
type CallTransport interface {
	Call(ctx context.Context, contractAddress string, call abi.Call) ([]byte, error)
	ParseAddress(s string) (abi.Address, error)
	FormatAddress(a abi.Address) string
}

// Addresses holds the four deployed NeuraNFT contract addresses, in the
// transport's native format.
type Addresses struct {
	Collection    string
	NFT           string
	Metadata      string
	AccessControl string
}

// ContractReader implements Reader by binding the NeuraNFT contract
// methods onto a CallTransport. The bindings exist once; both chain
// backends reuse them.
type ContractReader struct {
	transport CallTransport
	addrs     Addresses
}

func NewContractReader(transport CallTransport, addrs Addresses) *ContractReader {
	return &ContractReader{transport: transport, addrs: addrs}
}

func (r *ContractReader) call(ctx context.Context, contract string, call abi.Call) (abi.Frame, error) {
	out, err := r.transport.Call(ctx, contract, call)
	if err != nil {
		return abi.Frame{}, err
	}
	return abi.NewFrame(out), nil
}

// decodeErr tags codec failures as transport problems: the node answered,
// but with something the bindings cannot read.
func decodeErr(method string, err error) error {
	return &TransportError{Method: method, Err: fmt.Errorf("decode result: %w", err)}
}

// collectionRecord decodes one CollectionMetadata tuple:
// (string name, uint256 contextWindow, string baseModel, string image,
// string description, address creator, uint256 date, address owner).
func (r *ContractReader) collectionRecord(tf abi.Frame) (CollectionRecord, error) {
	var rec CollectionRecord
	var err error
	if rec.Name, err = tf.String(0); err != nil {
		return rec, err
	}
	cw, err := tf.Uint(1)
	if err != nil {
		return rec, err
	}
	rec.ContextWindow = int(cw)
	if rec.BaseModel, err = tf.String(2); err != nil {
		return rec, err
	}
	if rec.Image, err = tf.String(3); err != nil {
		return rec, err
	}
	if rec.Description, err = tf.String(4); err != nil {
		return rec, err
	}
	creator, err := tf.Address(5)
	if err != nil {
		return rec, err
	}
	rec.Creator = r.transport.FormatAddress(creator)
	date, err := tf.Uint(6)
	if err != nil {
		return rec, err
	}
	rec.Date = int64(date)
	owner, err := tf.Address(7)
	if err != nil {
		return rec, err
	}
	rec.Owner = r.transport.FormatAddress(owner)
	return rec, nil
}

func (r *ContractReader) AllCollections(ctx context.Context) ([]CollectionRecord, error) {
	const method = "getAllCollections()"
	root, err := r.call(ctx, r.addrs.Collection, abi.NewCall(method))
	if err != nil {
		return nil, err
	}
	n, elems, err := root.Array(0)
	if err != nil {
		return nil, decodeErr(method, err)
	}
	records := make([]CollectionRecord, 0, n)
	for i := 0; i < n; i++ {
		tf, err := elems.Tuple(i)
		if err != nil {
			return nil, decodeErr(method, err)
		}
		rec, err := r.collectionRecord(tf)
		if err != nil {
			return nil, decodeErr(method, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *ContractReader) CollectionMetadata(ctx context.Context, collectionID int) (CollectionRecord, error) {
	const method = "getCollectionMetadata(uint256)"
	root, err := r.call(ctx, r.addrs.Collection, abi.NewCall(method, abi.UintWord(uint64(collectionID))))
	if err != nil {
		return CollectionRecord{}, err
	}
	tf, err := root.Tuple(0)
	if err != nil {
		return CollectionRecord{}, decodeErr(method, err)
	}
	rec, err := r.collectionRecord(tf)
	if err != nil {
		return CollectionRecord{}, decodeErr(method, err)
	}
	return rec, nil
}

func (r *ContractReader) uintQuery(ctx context.Context, contract, method string, args ...[32]byte) (int, error) {
	root, err := r.call(ctx, contract, abi.NewCall(method, args...))
	if err != nil {
		return 0, err
	}
	v, err := root.Uint(0)
	if err != nil {
		return 0, decodeErr(method, err)
	}
	return int(v), nil
}

func (r *ContractReader) CollectionNFTCount(ctx context.Context, collectionID int) (int, error) {
	return r.uintQuery(ctx, r.addrs.NFT, "getCollectionNFTCount(uint256)", abi.UintWord(uint64(collectionID)))
}

func (r *ContractReader) CollectionOwner(ctx context.Context, collectionID int) (string, error) {
	const method = "getCollectionOwner(uint256)"
	root, err := r.call(ctx, r.addrs.Collection, abi.NewCall(method, abi.UintWord(uint64(collectionID))))
	if err != nil {
		return "", err
	}
	owner, err := root.Address(0)
	if err != nil {
		return "", decodeErr(method, err)
	}
	return r.transport.FormatAddress(owner), nil
}

func (r *ContractReader) CollectionUniqueHolders(ctx context.Context, collectionID int) (int, error) {
	return r.uintQuery(ctx, r.addrs.Collection, "getCollectionUniqueHolders(uint256)", abi.UintWord(uint64(collectionID)))
}

func (r *ContractReader) CollectionNFTs(ctx context.Context, collectionID int) ([]int, error) {
	const method = "getCollectionNFTs(uint256)"
	root, err := r.call(ctx, r.addrs.NFT, abi.NewCall(method, abi.UintWord(uint64(collectionID))))
	if err != nil {
		return nil, err
	}
	n, elems, err := root.Array(0)
	if err != nil {
		return nil, decodeErr(method, err)
	}
	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		id, err := elems.Uint(i)
		if err != nil {
			return nil, decodeErr(method, err)
		}
		ids = append(ids, int(id))
	}
	return ids, nil
}

// NFTInfo decodes (uint8 levelOfOwnership, string name, address creator,
// uint256 creationDate, address owner).
func (r *ContractReader) NFTInfo(ctx context.Context, collectionID, nftID int) (NFTRecord, error) {
	const method = "getNFTInfo(uint256,uint256)"
	root, err := r.call(ctx, r.addrs.NFT,
		abi.NewCall(method, abi.UintWord(uint64(collectionID)), abi.UintWord(uint64(nftID))))
	if err != nil {
		return NFTRecord{}, err
	}
	tf, err := root.Tuple(0)
	if err != nil {
		return NFTRecord{}, decodeErr(method, err)
	}
	var rec NFTRecord
	level, err := tf.Uint(0)
	if err != nil {
		return rec, decodeErr(method, err)
	}
	rec.LevelOfOwnership = int(level)
	if rec.Name, err = tf.String(1); err != nil {
		return rec, decodeErr(method, err)
	}
	creator, err := tf.Address(2)
	if err != nil {
		return rec, decodeErr(method, err)
	}
	rec.Creator = r.transport.FormatAddress(creator)
	date, err := tf.Uint(3)
	if err != nil {
		return rec, decodeErr(method, err)
	}
	rec.CreationDate = int64(date)
	owner, err := tf.Address(4)
	if err != nil {
		return rec, decodeErr(method, err)
	}
	rec.Owner = r.transport.FormatAddress(owner)
	return rec, nil
}

// NFTMetadata decodes (string image, string baseModel, string data,
// string rag, string fineTuneData, string description).
func (r *ContractReader) NFTMetadata(ctx context.Context, collectionID, nftID int) (MetadataRecord, error) {
	const method = "getMetadata(uint256,uint256)"
	root, err := r.call(ctx, r.addrs.Metadata,
		abi.NewCall(method, abi.UintWord(uint64(collectionID)), abi.UintWord(uint64(nftID))))
	if err != nil {
		return MetadataRecord{}, err
	}
	tf, err := root.Tuple(0)
	if err != nil {
		return MetadataRecord{}, decodeErr(method, err)
	}
	var rec MetadataRecord
	fields := []*string{&rec.Image, &rec.BaseModel, &rec.Data, &rec.RAG, &rec.FineTuneData, &rec.Description}
	for slot, dst := range fields {
		if *dst, err = tf.String(slot); err != nil {
			return MetadataRecord{}, decodeErr(method, err)
		}
	}
	return rec, nil
}

// UsersAccessForNFT decodes (address user, uint8 level)[], static
// two-word tuples laid out inline.
func (r *ContractReader) UsersAccessForNFT(ctx context.Context, collectionID, nftID int) ([]AccessRecord, error) {
	const method = "getAllUsersAccessForNFT(uint256,uint256)"
	root, err := r.call(ctx, r.addrs.AccessControl,
		abi.NewCall(method, abi.UintWord(uint64(collectionID)), abi.UintWord(uint64(nftID))))
	if err != nil {
		return nil, err
	}
	n, elems, err := root.Array(0)
	if err != nil {
		return nil, decodeErr(method, err)
	}
	records := make([]AccessRecord, 0, n)
	for i := 0; i < n; i++ {
		tf := elems.At(i * 2)
		user, err := tf.Address(0)
		if err != nil {
			return nil, decodeErr(method, err)
		}
		level, err := tf.Uint(1)
		if err != nil {
			return nil, decodeErr(method, err)
		}
		records = append(records, AccessRecord{User: r.transport.FormatAddress(user), Level: int(level)})
	}
	return records, nil
}

// AccessForUser decodes (uint256 collectionId, uint256 nftId, uint8
// level)[], static three-word tuples laid out inline.
func (r *ContractReader) AccessForUser(ctx context.Context, userAddress string) ([]UserAccessRecord, error) {
	const method = "getAllAccessForUser(address)"
	addr, err := r.transport.ParseAddress(userAddress)
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	root, err := r.call(ctx, r.addrs.AccessControl, abi.NewCall(method, abi.AddressWord(addr)))
	if err != nil {
		return nil, err
	}
	n, elems, err := root.Array(0)
	if err != nil {
		return nil, decodeErr(method, err)
	}
	records := make([]UserAccessRecord, 0, n)
	for i := 0; i < n; i++ {
		tf := elems.At(i * 3)
		cid, err := tf.Uint(0)
		if err != nil {
			return nil, decodeErr(method, err)
		}
		nid, err := tf.Uint(1)
		if err != nil {
			return nil, decodeErr(method, err)
		}
		level, err := tf.Uint(2)
		if err != nil {
			return nil, decodeErr(method, err)
		}
		records = append(records, UserAccessRecord{CollectionID: int(cid), NFTID: int(nid), Level: int(level)})
	}
	return records, nil
}
