// Package chainstorage defines the chain state consumed and produced by header validation.
package chainstorage

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/pow/difficulty"
)

// BlockHeaderAccumulatedData is the running chain state at a header.
// Values are never modified after Build.
type BlockHeaderAccumulatedData struct {
	Hash                         chainhash.Hash
	AchievedDifficulty           difficulty.Difficulty
	TargetDifficulty             difficulty.Difficulty
	AccumulatedRandomXDifficulty difficulty.Difficulty
	AccumulatedSha3Difficulty    difficulty.Difficulty
	TotalAccumulatedDifficulty   difficulty.Difficulty
}

// Genesis returns accumulated data with zero totals for the genesis header.
func Genesis(hash chainhash.Hash) *BlockHeaderAccumulatedData {
	return &BlockHeaderAccumulatedData{Hash: hash}
}

// Accumulated returns the running total for algo.
func (d *BlockHeaderAccumulatedData) Accumulated(algo model.PowAlgorithm) (difficulty.Difficulty, error) {
	switch algo {
	case model.RandomX:
		return d.AccumulatedRandomXDifficulty, nil
	case model.Sha3:
		return d.AccumulatedSha3Difficulty, nil
	default:
		return difficulty.Difficulty{}, fmt.Errorf("unsupported pow algorithm %q", algo)
	}
}

// BlockHeaderAccumulatedDataBuilder derives the next accumulated data from the previous one.
type BlockHeaderAccumulatedDataBuilder struct {
	previous *BlockHeaderAccumulatedData
	next     BlockHeaderAccumulatedData

	hashSet     bool
	targetSet   bool
	achievedSet bool
}

// NewBlockHeaderAccumulatedDataBuilder starts from previous, carrying its totals.
func NewBlockHeaderAccumulatedDataBuilder(previous *BlockHeaderAccumulatedData) *BlockHeaderAccumulatedDataBuilder {
	b := &BlockHeaderAccumulatedDataBuilder{previous: previous}
	if previous != nil {
		b.next.AccumulatedRandomXDifficulty = previous.AccumulatedRandomXDifficulty
		b.next.AccumulatedSha3Difficulty = previous.AccumulatedSha3Difficulty
		b.next.TotalAccumulatedDifficulty = previous.TotalAccumulatedDifficulty
	}
	return b
}

func (b *BlockHeaderAccumulatedDataBuilder) WithHash(hash chainhash.Hash) *BlockHeaderAccumulatedDataBuilder {
	b.next.Hash = hash
	b.hashSet = true
	return b
}

func (b *BlockHeaderAccumulatedDataBuilder) WithTargetDifficulty(target difficulty.Difficulty) *BlockHeaderAccumulatedDataBuilder {
	b.next.TargetDifficulty = target
	b.targetSet = true
	return b
}

// WithAchievedDifficulty adds achieved to the previous total of algo and to the
// overall total. It fails with difficulty.ErrOverflow instead of wrapping.
func (b *BlockHeaderAccumulatedDataBuilder) WithAchievedDifficulty(algo model.PowAlgorithm, achieved difficulty.Difficulty) error {
	if b.achievedSet {
		return errors.New("achieved difficulty already set")
	}
	prev, err := b.next.Accumulated(algo)
	if err != nil {
		return err
	}
	total, err := prev.Add(achieved)
	if err != nil {
		return fmt.Errorf("accumulate %s difficulty: %w", algo, err)
	}
	overall, err := b.next.TotalAccumulatedDifficulty.Add(achieved)
	if err != nil {
		return fmt.Errorf("accumulate total difficulty: %w", err)
	}

	switch algo {
	case model.RandomX:
		b.next.AccumulatedRandomXDifficulty = total
	case model.Sha3:
		b.next.AccumulatedSha3Difficulty = total
	}
	b.next.TotalAccumulatedDifficulty = overall
	b.next.AchievedDifficulty = achieved
	b.achievedSet = true
	return nil
}

// Previous returns the accumulated data the builder started from.
func (b *BlockHeaderAccumulatedDataBuilder) Previous() *BlockHeaderAccumulatedData {
	return b.previous
}

// Build finalizes the accumulated data. Hash, target and achieved difficulty are required.
func (b *BlockHeaderAccumulatedDataBuilder) Build() (*BlockHeaderAccumulatedData, error) {
	switch {
	case !b.hashSet:
		return nil, errors.New("accumulated data: hash not set")
	case !b.targetSet:
		return nil, errors.New("accumulated data: target difficulty not set")
	case !b.achievedSet:
		return nil, errors.New("accumulated data: achieved difficulty not set")
	}
	out := b.next
	return &out, nil
}
