// Package validation checks block headers against the consensus rules before
// they are accepted into the chain.
package validation

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/chainstorage"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/consensus"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/pow/difficulty"
	"go.uber.org/zap"
)

const (
	StageChainLink  = "chain_link"
	StageFTL        = "future_time_limit"
	StageMedian     = "median_timestamp"
	StagePowData    = "pow_data"
	StageDifficulty = "difficulty"
	StageAccumulate = "accumulate"
)

var _ HeaderValidation = (*HeaderValidator)(nil)

// HeaderValidator runs the ordered header checks. It holds no mutable state
// and is safe for concurrent use.
type HeaderValidator struct {
	rules    consensus.Rules
	backend  BlockchainBackend
	verifier PowVerifier
	now      func() time.Time
	logger   *zap.Logger
	metrics  Metrics
}

// Option customizes a HeaderValidator.
type Option func(*HeaderValidator)

// WithNow overrides the wall clock used for the future time limit.
func WithNow(now func() time.Time) Option {
	return func(v *HeaderValidator) {
		if now != nil {
			v.now = now
		}
	}
}

// NewHeaderValidator binds the validator to a storage backend and a pow verifier.
func NewHeaderValidator(
	rules consensus.Rules,
	backend BlockchainBackend,
	verifier PowVerifier,
	logger *zap.Logger,
	metrics Metrics,
	opts ...Option,
) (*HeaderValidator, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if backend == nil {
		return nil, errors.New("blockchain backend is required")
	}
	if verifier == nil {
		return nil, errors.New("pow verifier is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	v := &HeaderValidator{
		rules:    rules,
		backend:  backend,
		verifier: verifier,
		now:      time.Now,
		logger:   logger.Named("header_validator"),
		metrics:  metrics,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Validate checks header as the successor of previousHeader. The checks run in
// a fixed order and stop at the first failure: chain link, future time limit,
// median timestamp, pow data, then target difficulty. On success the returned
// builder carries the header hash, its target and achieved difficulty, and the
// accumulated totals derived from previousData.
func (v *HeaderValidator) Validate(
	ctx context.Context,
	header *model.BlockHeader,
	previousHeader *model.BlockHeader,
	previousData *chainstorage.BlockHeaderAccumulatedData,
) (_ *chainstorage.BlockHeaderAccumulatedDataBuilder, err error) {
	started := time.Now()
	defer func() {
		if v.metrics != nil {
			v.metrics.ObserveValidation(header.Pow.Algorithm, err, started)
		}
	}()

	logger := v.logger.With(zap.String("header", header.ID()))

	if err = v.stage(logger, StageChainLink, func() error {
		return checkChainLink(header, previousHeader, previousData)
	}); err != nil {
		return nil, err
	}

	if err = v.stage(logger, StageFTL, func() error {
		return CheckTimestampFTL(header, v.rules.FutureTimeLimitSeconds, v.now())
	}); err != nil {
		return nil, err
	}

	if err = v.stage(logger, StageMedian, func() error {
		return v.checkMedianTimestamp(ctx, header)
	}); err != nil {
		return nil, err
	}

	if err = v.stage(logger, StagePowData, func() error {
		return CheckPowData(header, v.rules)
	}); err != nil {
		return nil, err
	}

	var achieved, target difficulty.Difficulty
	if err = v.stage(logger, StageDifficulty, func() error {
		var derr error
		achieved, target, derr = v.checkAchievedAndTargetDifficulty(ctx, header)
		return derr
	}); err != nil {
		return nil, err
	}

	builder := chainstorage.NewBlockHeaderAccumulatedDataBuilder(previousData).
		WithHash(header.Hash()).
		WithTargetDifficulty(target)
	if err = v.stage(logger, StageAccumulate, func() error {
		if aerr := builder.WithAchievedDifficulty(header.Pow.Algorithm, achieved); aerr != nil {
			return wrapRuleError(ErrArithmeticOverflow, aerr, "%s accumulated difficulty", header.ID())
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.Debug("header is valid",
		zap.Stringer("achieved", achieved),
		zap.Stringer("target", target),
	)
	return builder, nil
}

func (v *HeaderValidator) stage(logger *zap.Logger, name string, check func() error) error {
	started := time.Now()
	err := check()
	if v.metrics != nil {
		v.metrics.ObserveStage(name, err, started)
	}
	if err != nil {
		logger.Debug("validation stage rejected header",
			zap.String("stage", name),
			zap.String("outcome", "rejected"),
			zap.Error(err),
		)
		return err
	}
	logger.Debug("validation stage passed",
		zap.String("stage", name),
		zap.String("outcome", "ok"),
	)
	return nil
}

func (v *HeaderValidator) checkMedianTimestamp(ctx context.Context, header *model.BlockHeader) error {
	timestamps, err := v.backend.FetchBlockTimestamps(ctx, header.PrevHash)
	if err != nil {
		return wrapRuleError(ErrStorageUnavailable, err, "fetch ancestor timestamps of %s", header.ID())
	}
	return CheckHeaderTimestampGreaterThanMedian(header, timestamps)
}

func (v *HeaderValidator) checkAchievedAndTargetDifficulty(
	ctx context.Context,
	header *model.BlockHeader,
) (achieved, target difficulty.Difficulty, err error) {
	window, err := v.backend.FetchTargetDifficulty(ctx, header.Pow.Algorithm, header.Height)
	if err != nil {
		return achieved, target, wrapRuleError(ErrStorageUnavailable, err,
			"fetch %s difficulty window for %s", header.Pow.Algorithm, header.ID())
	}
	if window == nil {
		return achieved, target, ruleError(ErrStorageUnavailable,
			"no %s difficulty window for %s", header.Pow.Algorithm, header.ID())
	}

	target = window.Calculate()
	achieved, err = CheckTargetDifficulty(header, target, v.verifier)
	if err != nil {
		return difficulty.Difficulty{}, target, err
	}
	return achieved, target, nil
}
