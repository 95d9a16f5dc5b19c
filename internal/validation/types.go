//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
package validation

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/chainstorage"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/pow/difficulty"
)

type (
	// HeaderValidation validates a single header against the chain it extends.
	HeaderValidation interface {
		Validate(
			ctx context.Context,
			header *model.BlockHeader,
			previousHeader *model.BlockHeader,
			previousData *chainstorage.BlockHeaderAccumulatedData,
		) (*chainstorage.BlockHeaderAccumulatedDataBuilder, error)
	}

	// BlockchainBackend is the subset of chain storage read during validation.
	BlockchainBackend interface {
		FetchBlockTimestamps(ctx context.Context, hash chainhash.Hash) ([]uint64, error)
		FetchTargetDifficulty(ctx context.Context, algo model.PowAlgorithm, height uint64) (*difficulty.Window, error)
	}

	PowVerifier interface {
		AchievedDifficulty(header *model.BlockHeader) (difficulty.Difficulty, error)
	}

	Metrics interface {
		ObserveStage(stage string, err error, started time.Time)
		ObserveValidation(algo model.PowAlgorithm, err error, started time.Time)
	}
)
