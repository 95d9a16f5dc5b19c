package validation

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/chainstorage"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/consensus"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/pow"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/pow/difficulty"
	"github.com/goodnatureofminers/blockinsight7000-headerval/pkg/safe"
)

// CheckTimestampFTL rejects headers timestamped more than ftlSeconds after now.
func CheckTimestampFTL(header *model.BlockHeader, ftlSeconds uint64, now time.Time) error {
	nowSecs, err := safe.Uint64(now.Unix())
	if err != nil {
		nowSecs = 0
	}
	limit, err := safe.AddUint64(nowSecs, ftlSeconds)
	if err != nil {
		limit = math.MaxUint64
	}
	if header.Timestamp > limit {
		return ruleError(ErrFutureTimestamp,
			"%s timestamp %d is beyond the future time limit %d", header.ID(), header.Timestamp, limit)
	}
	return nil
}

// CalcMedianTimestamp returns the median of timestamps. An even count yields
// the floor of the mean of the two middle values. The input is not modified.
func CalcMedianTimestamp(timestamps []uint64) uint64 {
	if len(timestamps) == 0 {
		return 0
	}
	sorted := make([]uint64, len(timestamps))
	copy(sorted, timestamps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	lo, hi := sorted[mid-1], sorted[mid]
	return lo + (hi-lo)/2
}

// CheckHeaderTimestampGreaterThanMedian requires the header timestamp to be
// strictly greater than the median of its ancestors' timestamps.
func CheckHeaderTimestampGreaterThanMedian(header *model.BlockHeader, timestamps []uint64) error {
	if len(timestamps) == 0 {
		return ruleError(ErrTimestampTooLow, "%s has no ancestor timestamps to compare against", header.ID())
	}
	median := CalcMedianTimestamp(timestamps)
	if header.Timestamp <= median {
		return ruleError(ErrTimestampTooLow,
			"%s timestamp %d is not greater than median %d of %d ancestors",
			header.ID(), header.Timestamp, median, len(timestamps))
	}
	return nil
}

// CheckPowData checks that the pow payload is well formed for its algorithm.
func CheckPowData(header *model.BlockHeader, rules consensus.Rules) error {
	if err := pow.CheckPowData(header, rules.MaxParentBlobSize); err != nil {
		return wrapRuleError(ErrInvalidPowData, err, "%s pow data", header.ID())
	}
	return nil
}

// CheckTargetDifficulty computes the achieved difficulty and requires it to
// reach target. The achieved difficulty is returned on success.
func CheckTargetDifficulty(header *model.BlockHeader, target difficulty.Difficulty, verifier PowVerifier) (difficulty.Difficulty, error) {
	achieved, err := verifier.AchievedDifficulty(header)
	if err != nil {
		if errors.Is(err, pow.ErrMalformedPowData) {
			return difficulty.Difficulty{}, wrapRuleError(ErrInvalidPowData, err, "%s pow data", header.ID())
		}
		return difficulty.Difficulty{}, wrapRuleError(ErrPowVerificationFailed, err, "%s pow verification", header.ID())
	}
	if achieved.Less(target) {
		return difficulty.Difficulty{}, ruleError(ErrDifficultyTooLow,
			"%s achieved difficulty %s is below target %s", header.ID(), achieved, target)
	}
	return achieved, nil
}

func checkChainLink(header, previous *model.BlockHeader, previousData *chainstorage.BlockHeaderAccumulatedData) error {
	if previous == nil || previousData == nil {
		return ruleError(ErrInvalidChainLink, "%s: previous header and accumulated data are required", header.ID())
	}
	prevHash := previous.Hash()
	switch {
	case header.PrevHash != prevHash:
		return ruleError(ErrInvalidChainLink, "%s does not reference previous %s", header.ID(), previous.ID())
	case previous.Height == math.MaxUint64 || header.Height != previous.Height+1:
		return ruleError(ErrInvalidChainLink, "%s height does not follow previous %s", header.ID(), previous.ID())
	case previousData.Hash != prevHash:
		return ruleError(ErrInvalidChainLink, "%s accumulated data belongs to %s, not previous %s",
			header.ID(), previousData.Hash, previous.ID())
	}
	return nil
}
