// Package consensus holds the consensus parameters used by header validation.
package consensus

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/pow/difficulty"
)

const (
	defaultFutureTimeLimitSeconds = 2 * 60 * 60
	defaultMedianTimestampCount   = 11
	defaultMaxRandomXVMs          = 5
	defaultMaxParentBlobSize      = 1024
	defaultTargetTime             = 240
	defaultDifficultyWindow       = 90
)

// Rules is the consensus configuration consumed by the validator, the storage
// backend and the verifier cache.
type Rules struct {
	// FutureTimeLimitSeconds bounds how far ahead of local time a header timestamp may be.
	FutureTimeLimitSeconds uint64
	// MedianTimestampCount is the number of ancestors in the median timestamp check.
	MedianTimestampCount int
	// MaxRandomXVMs bounds the verifier cache.
	MaxRandomXVMs int
	// MaxParentBlobSize bounds the merge-mined parent header blob.
	MaxParentBlobSize uint32
	Retarget          map[model.PowAlgorithm]difficulty.RetargetParams
}

// DefaultRules returns mainnet-like parameters.
func DefaultRules() Rules {
	return Rules{
		FutureTimeLimitSeconds: defaultFutureTimeLimitSeconds,
		MedianTimestampCount:   defaultMedianTimestampCount,
		MaxRandomXVMs:          defaultMaxRandomXVMs,
		MaxParentBlobSize:      defaultMaxParentBlobSize,
		Retarget: map[model.PowAlgorithm]difficulty.RetargetParams{
			model.RandomX: {
				TargetTime:        defaultTargetTime,
				WindowSize:        defaultDifficultyWindow,
				InitialDifficulty: difficulty.FromUint64(60_000),
				MinDifficulty:     difficulty.FromUint64(60_000),
			},
			model.Sha3: {
				TargetTime:        defaultTargetTime,
				WindowSize:        defaultDifficultyWindow,
				InitialDifficulty: difficulty.FromUint64(60_000_000),
				MinDifficulty:     difficulty.FromUint64(60_000_000),
			},
		},
	}
}

// RetargetParams returns the retarget parameters for algo.
func (r Rules) RetargetParams(algo model.PowAlgorithm) (difficulty.RetargetParams, error) {
	p, ok := r.Retarget[algo]
	if !ok {
		return difficulty.RetargetParams{}, fmt.Errorf("no retarget parameters for %q", algo)
	}
	return p, nil
}

// Validate checks that the rules are usable.
func (r Rules) Validate() error {
	if r.FutureTimeLimitSeconds == 0 {
		return errors.New("future time limit must be positive")
	}
	if r.MedianTimestampCount < 1 {
		return errors.New("median timestamp count must be positive")
	}
	if r.MaxRandomXVMs < 1 {
		return errors.New("max randomx vms must be positive")
	}
	if r.MaxParentBlobSize == 0 {
		return errors.New("max parent blob size must be positive")
	}
	for _, algo := range model.PowAlgorithms() {
		p, err := r.RetargetParams(algo)
		if err != nil {
			return err
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("retarget %s: %w", algo, err)
		}
	}
	return nil
}
