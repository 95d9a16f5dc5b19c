package clickhouse

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/chainstorage"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/pow/difficulty"
)

const headerColumns = `height,
	hash,
	prev_hash,
	version,
	timestamp,
	merkle_root,
	nonce,
	pow_algo,
	pow_data`

const accumulatedColumns = `achieved_difficulty,
	target_difficulty,
	accumulated_randomx_difficulty,
	accumulated_sha3_difficulty,
	total_accumulated_difficulty`

// headerRow mirrors headerColumns.
type headerRow struct {
	Height     uint64
	Hash       string
	PrevHash   string
	Version    uint16
	Timestamp  uint64
	MerkleRoot string
	Nonce      uint64
	PowAlgo    string
	PowData    string
}

func (r *headerRow) dest() []any {
	return []any{
		&r.Height,
		&r.Hash,
		&r.PrevHash,
		&r.Version,
		&r.Timestamp,
		&r.MerkleRoot,
		&r.Nonce,
		&r.PowAlgo,
		&r.PowData,
	}
}

func (r *headerRow) toModel() (*model.BlockHeader, error) {
	prevHash, err := chainhash.NewHashFromStr(r.PrevHash)
	if err != nil {
		return nil, fmt.Errorf("decode prev hash: %w", err)
	}
	merkleRoot, err := chainhash.NewHashFromStr(r.MerkleRoot)
	if err != nil {
		return nil, fmt.Errorf("decode merkle root: %w", err)
	}
	algo, err := model.ParsePowAlgorithm(r.PowAlgo)
	if err != nil {
		return nil, err
	}
	data, err := hex.DecodeString(r.PowData)
	if err != nil {
		return nil, fmt.Errorf("decode pow data: %w", err)
	}
	if len(data) == 0 {
		data = nil
	}

	header := &model.BlockHeader{
		Version:    r.Version,
		Height:     r.Height,
		PrevHash:   *prevHash,
		Timestamp:  r.Timestamp,
		MerkleRoot: *merkleRoot,
		Nonce:      r.Nonce,
		Pow:        model.ProofOfWork{Algorithm: algo, Data: data},
	}
	if hash := header.Hash(); hash.String() != r.Hash {
		return nil, fmt.Errorf("stored hash %s does not match header hash %s", r.Hash, hash)
	}
	return header, nil
}

func headerValues(h *model.BlockHeader) []any {
	hash := h.Hash()
	return []any{
		h.Height,
		hash.String(),
		h.PrevHash.String(),
		h.Version,
		h.Timestamp,
		h.MerkleRoot.String(),
		h.Nonce,
		string(h.Pow.Algorithm),
		hex.EncodeToString(h.Pow.Data),
	}
}

// accumulatedRow mirrors accumulatedColumns. UInt256 columns scan into big.Int.
type accumulatedRow struct {
	Achieved big.Int
	Target   big.Int
	RandomX  big.Int
	Sha3     big.Int
	Total    big.Int
}

func (r *accumulatedRow) dest() []any {
	return []any{&r.Achieved, &r.Target, &r.RandomX, &r.Sha3, &r.Total}
}

func (r *accumulatedRow) toModel(hash chainhash.Hash) (*chainstorage.BlockHeaderAccumulatedData, error) {
	values := make([]difficulty.Difficulty, 0, 5)
	for _, b := range []*big.Int{&r.Achieved, &r.Target, &r.RandomX, &r.Sha3, &r.Total} {
		d, err := difficulty.FromBig(b)
		if err != nil {
			return nil, fmt.Errorf("decode difficulty %s: %w", b, err)
		}
		values = append(values, d)
	}
	return &chainstorage.BlockHeaderAccumulatedData{
		Hash:                         hash,
		AchievedDifficulty:           values[0],
		TargetDifficulty:             values[1],
		AccumulatedRandomXDifficulty: values[2],
		AccumulatedSha3Difficulty:    values[3],
		TotalAccumulatedDifficulty:   values[4],
	}, nil
}

func accumulatedValues(d *chainstorage.BlockHeaderAccumulatedData) []any {
	return []any{
		d.AchievedDifficulty.Big(),
		d.TargetDifficulty.Big(),
		d.AccumulatedRandomXDifficulty.Big(),
		d.AccumulatedSha3Difficulty.Big(),
		d.TotalAccumulatedDifficulty.Big(),
	}
}
