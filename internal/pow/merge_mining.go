// Package pow decodes proof-of-work payloads and measures achieved difficulty.
package pow

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// SeedHashSize is the length of a RandomX seed hash.
const SeedHashSize = 32

// ErrMalformedPowData marks a payload that does not match its declared algorithm.
var ErrMalformedPowData = errors.New("malformed pow data")

// MergeMineData is the RandomX payload: the parent chain header blob, the seed the
// parent chain used, and the auxiliary chain root committed in the parent block.
type MergeMineData struct {
	SeedHash     [SeedHashSize]byte
	ParentBlob   []byte
	AuxChainRoot chainhash.Hash
}

// Encode serializes the payload: var-bytes seed, var-bytes blob, raw 32 byte root.
func (m *MergeMineData) Encode() []byte {
	var buf bytes.Buffer
	_ = wire.WriteVarBytes(&buf, 0, m.SeedHash[:])
	_ = wire.WriteVarBytes(&buf, 0, m.ParentBlob)
	buf.Write(m.AuxChainRoot[:])
	return buf.Bytes()
}

// HashingBlob is the input hashed by the VM.
func (m *MergeMineData) HashingBlob() []byte {
	blob := make([]byte, 0, len(m.ParentBlob)+chainhash.HashSize)
	blob = append(blob, m.ParentBlob...)
	return append(blob, m.AuxChainRoot[:]...)
}

// DecodeMergeMineData parses a RandomX payload. Parent blobs longer than
// maxParentBlob bytes are rejected.
func DecodeMergeMineData(data []byte, maxParentBlob uint32) (*MergeMineData, error) {
	r := bytes.NewReader(data)

	seed, err := wire.ReadVarBytes(r, 0, SeedHashSize, "seed_hash")
	if err != nil {
		return nil, fmt.Errorf("%w: read seed hash: %v", ErrMalformedPowData, err)
	}
	if len(seed) != SeedHashSize {
		return nil, fmt.Errorf("%w: seed hash length %d", ErrMalformedPowData, len(seed))
	}

	blob, err := wire.ReadVarBytes(r, 0, maxParentBlob, "parent_blob")
	if err != nil {
		return nil, fmt.Errorf("%w: read parent blob: %v", ErrMalformedPowData, err)
	}
	if len(blob) == 0 {
		return nil, fmt.Errorf("%w: empty parent blob", ErrMalformedPowData)
	}

	m := &MergeMineData{ParentBlob: blob}
	copy(m.SeedHash[:], seed)
	if _, err := io.ReadFull(r, m.AuxChainRoot[:]); err != nil {
		return nil, fmt.Errorf("%w: read aux chain root: %v", ErrMalformedPowData, err)
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedPowData, r.Len())
	}
	if m.SeedHash == [SeedHashSize]byte{} {
		return nil, fmt.Errorf("%w: zero seed hash", ErrMalformedPowData)
	}
	return m, nil
}
