// Package abi implements the small slice of contract ABI encoding the
// NeuraNFT contracts need: uint256 and address arguments, and result
// frames of words, strings, dynamic arrays and tuples. It is not a
// general ABI library.
package abi

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

const wordSize = 32

// Address is a 20-byte account or contract address.
type Address [20]byte

// HexToAddress parses a 0x-prefixed (or bare) 40-digit hex address.
func HexToAddress(s string) (Address, error) {
	var a Address
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 2*len(a) {
		return a, fmt.Errorf("abi: address must be %d hex digits, got %q", 2*len(a), s)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("abi: bad address %q: %w", s, err)
	}
	copy(a[:], raw)
	return a, nil
}

func (a Address) Hex() string { return "0x" + hex.EncodeToString(a[:]) }

// Keccak256 returns the legacy Keccak-256 digest used for selectors and
// event topics.
func Keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// Call is one constant contract call: a canonical signature plus its
// already-encoded 32-byte argument words. All NeuraNFT call arguments are
// static types, so head-only encoding is sufficient.
type Call struct {
	Signature string
	Args      [][wordSize]byte
}

func NewCall(sig string, args ...[wordSize]byte) Call {
	return Call{Signature: sig, Args: args}
}

// Selector returns the 4-byte method id of the call.
func (c Call) Selector() []byte {
	return Keccak256([]byte(c.Signature))[:4]
}

// Parameter returns the encoded arguments without the selector (the shape
// TronGrid expects).
func (c Call) Parameter() []byte {
	out := make([]byte, 0, len(c.Args)*wordSize)
	for _, a := range c.Args {
		out = append(out, a[:]...)
	}
	return out
}

// Data returns selector plus arguments (the shape eth_call expects).
func (c Call) Data() []byte {
	return append(c.Selector(), c.Parameter()...)
}

// UintWord encodes v as a uint256 word.
func UintWord(v uint64) [wordSize]byte {
	var w [wordSize]byte
	binary.BigEndian.PutUint64(w[wordSize-8:], v)
	return w
}

// AddressWord encodes a as a left-padded address word.
func AddressWord(a Address) [wordSize]byte {
	var w [wordSize]byte
	copy(w[wordSize-len(a):], a[:])
	return w
}

// Frame is a decoding window over ABI return data. Offsets inside a frame
// are relative to the frame start, which matches how solidity encodes
// nested dynamic types: following an offset yields a new frame.
type Frame struct {
	data []byte
}

func NewFrame(data []byte) Frame { return Frame{data: data} }

func (f Frame) word(slot int) ([]byte, error) {
	start := slot * wordSize
	if start < 0 || start+wordSize > len(f.data) {
		return nil, fmt.Errorf("abi: data too short for word %d (%d bytes)", slot, len(f.data))
	}
	return f.data[start : start+wordSize], nil
}

// Uint decodes the static uint256 at slot. Values above 64 bits are
// rejected; nothing the contracts return needs them.
func (f Frame) Uint(slot int) (uint64, error) {
	w, err := f.word(slot)
	if err != nil {
		return 0, err
	}
	for _, b := range w[:wordSize-8] {
		if b != 0 {
			return 0, fmt.Errorf("abi: uint at word %d exceeds 64 bits", slot)
		}
	}
	return binary.BigEndian.Uint64(w[wordSize-8:]), nil
}

// Address decodes the static address at slot.
func (f Frame) Address(slot int) (Address, error) {
	var a Address
	w, err := f.word(slot)
	if err != nil {
		return a, err
	}
	copy(a[:], w[wordSize-len(a):])
	return a, nil
}

// offset follows the dynamic-type head word at slot and returns the frame
// it points at.
func (f Frame) offset(slot int) (Frame, error) {
	off, err := f.Uint(slot)
	if err != nil {
		return Frame{}, err
	}
	if off > uint64(len(f.data)) {
		return Frame{}, fmt.Errorf("abi: offset %d past end of %d-byte frame", off, len(f.data))
	}
	return Frame{data: f.data[off:]}, nil
}

// String decodes the dynamic string whose head word is at slot.
func (f Frame) String(slot int) (string, error) {
	tail, err := f.offset(slot)
	if err != nil {
		return "", err
	}
	n, err := tail.Uint(0)
	if err != nil {
		return "", err
	}
	if uint64(len(tail.data)) < wordSize+n {
		return "", fmt.Errorf("abi: string of %d bytes truncated", n)
	}
	return string(tail.data[wordSize : wordSize+n]), nil
}

// Tuple follows the head word at slot to a dynamic tuple's frame.
func (f Frame) Tuple(slot int) (Frame, error) {
	return f.offset(slot)
}

// Array follows the head word at slot to a dynamic array, returning its
// length and a frame positioned at the first element. Static elements lie
// inline in the returned frame; dynamic elements are reached through
// Tuple with the element index.
func (f Frame) Array(slot int) (int, Frame, error) {
	tail, err := f.offset(slot)
	if err != nil {
		return 0, Frame{}, err
	}
	n, err := tail.Uint(0)
	if err != nil {
		return 0, Frame{}, err
	}
	// Every element occupies at least one word, so the length word bounds
	// the frame from below. A response claiming more is malformed, not a
	// bigger allocation.
	elems := tail.data[wordSize:]
	if n > uint64(len(elems)/wordSize) {
		return 0, Frame{}, fmt.Errorf("abi: array claims %d elements, frame holds %d words", n, len(elems)/wordSize)
	}
	return int(n), Frame{data: elems}, nil
}

// At returns a subframe starting at a static slot. Used to index arrays
// of static tuples, whose elements lie inline.
func (f Frame) At(slot int) Frame {
	start := slot * wordSize
	if start > len(f.data) {
		start = len(f.data)
	}
	return Frame{data: f.data[start:]}
}
