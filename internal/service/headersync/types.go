package headersync

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/chainstorage"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/validation"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainRepository interface {
		ChainTip(ctx context.Context) (*model.BlockHeader, *chainstorage.BlockHeaderAccumulatedData, error)
		PendingHeaders(ctx context.Context, fromHeight uint64, limit int) ([]*model.BlockHeader, error)
		InsertChainHeader(ctx context.Context, header *model.BlockHeader, data *chainstorage.BlockHeaderAccumulatedData) error
		InsertValidationOutcomes(ctx context.Context, outcomes []model.ValidationOutcome) error
	}
	Validator interface {
		ValidateMany(ctx context.Context, candidates []validation.Candidate, workers int) ([]validation.Result, error)
	}
	// OutcomeSink queues validation outcomes for asynchronous persistence.
	OutcomeSink interface {
		Add(ctx context.Context, outcome model.ValidationOutcome) error
	}
	Metrics interface {
		ObserveIteration(err error, candidates int, started time.Time)
		ObserveAccepted(algo model.PowAlgorithm, height uint64)
	}
)
