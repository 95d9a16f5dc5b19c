package pow

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/pow/difficulty"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/pow/randomx"
	"golang.org/x/crypto/sha3"
)

// VMProvider leases seeded VMs. *randomx.Factory implements it.
type VMProvider interface {
	Acquire(seed []byte) (*randomx.Lease, error)
}

// Verifier measures the difficulty a header's proof of work achieved.
type Verifier struct {
	vms           VMProvider
	maxParentBlob uint32
}

func NewVerifier(vms VMProvider, maxParentBlob uint32) *Verifier {
	return &Verifier{vms: vms, maxParentBlob: maxParentBlob}
}

// AchievedDifficulty returns the difficulty achieved by the header. Payload
// errors wrap ErrMalformedPowData; VM failures wrap randomx.ErrConstruction or
// the VM's own error.
func (v *Verifier) AchievedDifficulty(header *model.BlockHeader) (difficulty.Difficulty, error) {
	switch header.Pow.Algorithm {
	case model.Sha3:
		return Sha3Difficulty(header), nil
	case model.RandomX:
		return v.randomXDifficulty(header)
	default:
		return difficulty.Difficulty{}, fmt.Errorf("%w: unsupported algorithm %q", ErrMalformedPowData, header.Pow.Algorithm)
	}
}

func (v *Verifier) randomXDifficulty(header *model.BlockHeader) (difficulty.Difficulty, error) {
	mmd, err := DecodeMergeMineData(header.Pow.Data, v.maxParentBlob)
	if err != nil {
		return difficulty.Difficulty{}, err
	}

	lease, err := v.vms.Acquire(mmd.SeedHash[:])
	if err != nil {
		return difficulty.Difficulty{}, fmt.Errorf("acquire vm: %w", err)
	}
	defer lease.Release()

	hash, err := lease.CalculateHash(mmd.HashingBlob())
	if err != nil {
		return difficulty.Difficulty{}, fmt.Errorf("calculate randomx hash: %w", err)
	}
	return difficulty.FromHash(hash), nil
}

// Sha3Difficulty hashes the mining hash and nonce with double SHA3-256.
func Sha3Difficulty(header *model.BlockHeader) difficulty.Difficulty {
	return difficulty.FromHash(Sha3Hash(header))
}

func Sha3Hash(header *model.BlockHeader) []byte {
	var buf bytes.Buffer
	mining := header.MiningHash()
	buf.Write(mining[:])
	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], header.Nonce)
	buf.Write(nonce[:])
	first := sha3.Sum256(buf.Bytes())
	second := sha3.Sum256(first[:])
	return second[:]
}
