// Package model defines domain models for block header validation.
package model

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"golang.org/x/crypto/sha3"
)

// BlockHeader is a candidate chain header. It is treated as immutable once built.
type BlockHeader struct {
	Version    uint16
	Height     uint64
	PrevHash   chainhash.Hash
	Timestamp  uint64
	MerkleRoot chainhash.Hash
	Nonce      uint64
	Pow        ProofOfWork
}

// Hash returns the SHA3-256 digest of the full header serialization.
func (h *BlockHeader) Hash() chainhash.Hash {
	var buf bytes.Buffer
	h.writeMiningFields(&buf)
	writeUint64(&buf, h.Nonce)
	// bytes.Buffer writes never fail.
	_ = wire.WriteVarString(&buf, 0, string(h.Pow.Algorithm))
	_ = wire.WriteVarBytes(&buf, 0, h.Pow.Data)
	return chainhash.Hash(sha3.Sum256(buf.Bytes()))
}

// MiningHash returns the digest of the header without nonce and proof of work.
// Merge-mined proofs commit to this value.
func (h *BlockHeader) MiningHash() chainhash.Hash {
	var buf bytes.Buffer
	h.writeMiningFields(&buf)
	return chainhash.Hash(sha3.Sum256(buf.Bytes()))
}

// ID formats the header for logs.
func (h *BlockHeader) ID() string {
	hash := h.Hash()
	return fmt.Sprintf("header #%d (%s)", h.Height, hash.String())
}

func (h *BlockHeader) writeMiningFields(buf *bytes.Buffer) {
	var v [2]byte
	binary.LittleEndian.PutUint16(v[:], h.Version)
	buf.Write(v[:])
	writeUint64(buf, h.Height)
	buf.Write(h.PrevHash[:])
	writeUint64(buf, h.Timestamp)
	buf.Write(h.MerkleRoot[:])
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}
