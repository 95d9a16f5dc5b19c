// Package headersync extends the stored header chain with validated candidates.
package headersync

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/chainstorage"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/validation"
	"github.com/goodnatureofminers/blockinsight7000-headerval/pkg/batcher"
	"go.uber.org/zap"
)

// Config tunes the sync loop. Zero fields take defaults.
type Config struct {
	Workers        int
	CandidateLimit int
	IdleSleep      time.Duration
	MinBackoff     time.Duration
	MaxBackoff     time.Duration
	OutcomeBatch   batcher.Config
}

func (c Config) withDefaults() Config {
	if c.Workers < 1 {
		c.Workers = defaultWorkerCount
	}
	if c.CandidateLimit < 1 {
		c.CandidateLimit = defaultCandidateLimit
	}
	if c.IdleSleep <= 0 {
		c.IdleSleep = idleSleepDuration
	}
	if c.MinBackoff <= 0 {
		c.MinBackoff = minBackoff
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = maxBackoff
	}
	if c.OutcomeBatch.Size == 0 {
		c.OutcomeBatch.Size = outcomeFlushSize
	}
	if c.OutcomeBatch.Interval == 0 {
		c.OutcomeBatch.Interval = outcomeFlushInterval
	}
	if c.OutcomeBatch.RPS == 0 {
		c.OutcomeBatch.RPS = outcomeFlushRPS
	}
	return c
}

// Service validates pending headers that extend the chain tip and appends the
// strongest valid one. Rejected headers are remembered until the tip moves.
type Service struct {
	repo      ChainRepository
	validator Validator
	outcomes  OutcomeSink
	metrics   Metrics
	logger    *zap.Logger
	cfg       Config

	sleep   func(context.Context, time.Duration) error
	now     func() time.Time
	backoff *clock.Backoff

	// lifecycle of the outcome batcher, nil when outcomes is injected.
	start func(context.Context)
	stop  func()

	rejected map[chainhash.Hash]struct{}
}

// New builds a Service whose outcomes are batched into repo.
func New(
	repo ChainRepository,
	validator Validator,
	metrics Metrics,
	logger *zap.Logger,
	cfg Config,
) (*Service, error) {
	if repo == nil {
		return nil, errors.New("chain repository is required")
	}
	if validator == nil {
		return nil, errors.New("validator is required")
	}
	if metrics == nil {
		return nil, errors.New("header sync metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.withDefaults()

	b := batcher.New(logger.Named("outcomes"), repo.InsertValidationOutcomes, cfg.OutcomeBatch)
	return &Service{
		repo:      repo,
		validator: validator,
		outcomes:  b,
		metrics:   metrics,
		logger:    logger,
		cfg:       cfg,
		sleep:     clock.SleepWithContext,
		now:       time.Now,
		backoff:   clock.NewBackoff(cfg.MinBackoff, cfg.MaxBackoff),
		start:     b.Start,
		stop:      b.Stop,
		rejected:  make(map[chainhash.Hash]struct{}),
	}, nil
}

// EnsureGenesis stores genesis with zero accumulated difficulty when the chain is empty.
func (s *Service) EnsureGenesis(ctx context.Context, genesis *model.BlockHeader) error {
	tip, _, err := s.repo.ChainTip(ctx)
	switch {
	case err == nil:
		s.logger.Info("chain already initialized", zap.String("tip", tip.ID()))
		return nil
	case !errors.Is(err, chainstorage.ErrNotFound):
		return fmt.Errorf("read chain tip: %w", err)
	}

	if genesis.Height != 0 {
		return fmt.Errorf("genesis header must be at height 0, got %d", genesis.Height)
	}
	if err := s.repo.InsertChainHeader(ctx, genesis, chainstorage.Genesis(genesis.Hash())); err != nil {
		return fmt.Errorf("store genesis: %w", err)
	}
	s.logger.Info("stored genesis header", zap.String("header", genesis.ID()))
	return nil
}

// Run extends the chain until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	if s.start != nil {
		s.start(ctx)
		defer s.stop()
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		advanced, err := s.run(ctx)
		var d time.Duration
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			d = s.backoff.Next()
			s.logger.Warn("sync iteration failed, backing off", zap.Error(err), zap.Duration("sleep", d))
		case advanced:
			s.backoff.Reset()
			continue
		default:
			s.backoff.Reset()
			d = s.cfg.IdleSleep
			s.logger.Debug("no candidate extends the tip; sleeping", zap.Duration("sleep", d))
		}
		if err := s.sleep(ctx, d); err != nil {
			return err
		}
	}
}

// run performs one iteration and reports whether the tip advanced.
func (s *Service) run(ctx context.Context) (advanced bool, err error) {
	started := time.Now()
	candidates := 0
	defer func() {
		s.metrics.ObserveIteration(err, candidates, started)
	}()

	tip, tipData, err := s.repo.ChainTip(ctx)
	if err != nil {
		return false, fmt.Errorf("read chain tip: %w", err)
	}

	next := tip.Height + 1
	pending, err := s.repo.PendingHeaders(ctx, next, s.cfg.CandidateLimit)
	if err != nil {
		return false, fmt.Errorf("read pending headers: %w", err)
	}

	batch := s.candidates(tip, tipData, pending)
	candidates = len(batch)
	if len(batch) == 0 {
		return false, nil
	}

	results, err := s.validator.ValidateMany(ctx, batch, s.cfg.Workers)
	if err != nil {
		return false, fmt.Errorf("validate candidates: %w", err)
	}
	for _, r := range results {
		if r.Err != nil && validation.IsStorageError(r.Err) {
			err = fmt.Errorf("validate %s: %w", r.Candidate.Header.ID(), r.Err)
			return false, err
		}
	}

	best, bestData, err := selectBest(results)
	if err != nil {
		return false, err
	}
	s.recordOutcomes(ctx, results, best)

	if best == nil {
		return false, nil
	}
	if err = s.repo.InsertChainHeader(ctx, best.Candidate.Header, bestData); err != nil {
		return false, fmt.Errorf("store %s: %w", best.Candidate.Header.ID(), err)
	}

	header := best.Candidate.Header
	s.rejected = make(map[chainhash.Hash]struct{})
	s.metrics.ObserveAccepted(header.Pow.Algorithm, header.Height)
	s.logger.Info("extended chain",
		zap.String("header", header.ID()),
		zap.Stringer("achieved", bestData.AchievedDifficulty),
		zap.Stringer("total", bestData.TotalAccumulatedDifficulty),
		zap.Int("candidates", len(batch)),
	)
	return true, nil
}

// candidates keeps pending headers that directly extend the tip and have no
// verdict yet.
func (s *Service) candidates(
	tip *model.BlockHeader,
	tipData *chainstorage.BlockHeaderAccumulatedData,
	pending []*model.BlockHeader,
) []validation.Candidate {
	tipHash := tip.Hash()
	out := make([]validation.Candidate, 0, len(pending))
	for _, h := range pending {
		if h.Height != tip.Height+1 || h.PrevHash != tipHash {
			continue
		}
		if _, ok := s.rejected[h.Hash()]; ok {
			continue
		}
		out = append(out, validation.Candidate{Header: h, Previous: tip, PreviousData: tipData})
	}
	return out
}

// selectBest returns the valid result with the highest achieved difficulty,
// preferring the lower hash on ties. It returns nil when nothing is valid.
func selectBest(results []validation.Result) (*validation.Result, *chainstorage.BlockHeaderAccumulatedData, error) {
	var (
		best     *validation.Result
		bestData *chainstorage.BlockHeaderAccumulatedData
	)
	for i := range results {
		r := &results[i]
		if r.Err != nil {
			continue
		}
		data, err := r.Builder.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("build accumulated data for %s: %w", r.Candidate.Header.ID(), err)
		}
		if best == nil {
			best, bestData = r, data
			continue
		}
		switch c := data.AchievedDifficulty.Cmp(bestData.AchievedDifficulty); {
		case c > 0, c == 0 && bytes.Compare(data.Hash[:], bestData.Hash[:]) < 0:
			best, bestData = r, data
		}
	}
	return best, bestData, nil
}

func (s *Service) recordOutcomes(ctx context.Context, results []validation.Result, best *validation.Result) {
	now := s.now()
	for i := range results {
		r := &results[i]
		h := r.Candidate.Header
		outcome := model.ValidationOutcome{
			Height:      h.Height,
			Hash:        h.Hash(),
			Algorithm:   h.Pow.Algorithm,
			Accepted:    r.Err == nil,
			ValidatedAt: now,
		}
		switch {
		case r.Err != nil:
			outcome.Reason = r.Err.Error()
			s.rejected[outcome.Hash] = struct{}{}
			s.logger.Info("rejected header", zap.String("header", h.ID()), zap.Error(r.Err))
		case r != best:
			outcome.Reason = supersededReason
		}
		if err := s.outcomes.Add(ctx, outcome); err != nil {
			s.logger.Warn("validation outcome dropped", zap.String("header", h.ID()), zap.Error(err))
		}
	}
}
